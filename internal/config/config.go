package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds the application settings. They come from an optional JSON or
// YAML file plus OFFICINA_-prefixed environment overrides; secrets (JWT
// secret, admin credentials, database URL) stay in the environment only.
type Config struct {
	Server  ServerConfig  `json:"server"`
	Catalog CatalogConfig `json:"catalog"`
	CORS    CORSConfig    `json:"cors"`
}

type ServerConfig struct {
	Port string `json:"port"`
}

type CatalogConfig struct {
	// Source selects where the workshop catalog is read from: "file" or
	// "postgres".
	Source string `json:"source"`
	Path   string `json:"path"`
	// RefreshSchedule is a cron expression for the periodic catalog reload.
	// Empty disables the job.
	RefreshSchedule string `json:"refreshSchedule"`
}

type CORSConfig struct {
	AllowedOrigins []string `json:"allowedOrigins"`
}

func (c *Config) setDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Catalog.Source == "" {
		c.Catalog.Source = "file"
	}
	if c.Catalog.Path == "" {
		c.Catalog.Path = "workshops.config.json"
	}
	if c.Catalog.RefreshSchedule == "" {
		c.Catalog.RefreshSchedule = "@hourly"
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"*"}
	}
}

func (c *Config) validate() error {
	switch c.Catalog.Source {
	case "file", "postgres":
	default:
		return fmt.Errorf("unsupported catalog source: %s", c.Catalog.Source)
	}
	return nil
}

// Load reads the settings file at path (JSON or YAML by extension), applies
// environment overrides and defaults. An empty path skips the file and uses
// environment plus defaults only.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		var parser koanf.Parser
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", path)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider("OFFICINA_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "officina_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
