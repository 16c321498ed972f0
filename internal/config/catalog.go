package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"

	"officina/internal/entities"
	"officina/internal/logger"
)

// CatalogLoader reads the full workshop catalog from its backing store.
type CatalogLoader interface {
	Load() (*entities.WorkshopCatalog, error)
}

// FileCatalog loads the catalog from a JSON or YAML file.
type FileCatalog struct {
	Path string
}

func NewFileCatalog(path string) *FileCatalog {
	return &FileCatalog{Path: path}
}

func (f *FileCatalog) Load() (*entities.WorkshopCatalog, error) {
	k := koanf.New(".")
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(f.Path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	default:
		parser = json.Parser()
	}
	if err := k.Load(file.Provider(f.Path), parser); err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", f.Path, err)
	}
	var catalog entities.WorkshopCatalog
	if err := k.UnmarshalWithConf("", &catalog, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", f.Path, err)
	}
	return &catalog, nil
}

// ValidateCatalog fails fast on a catalog the engine cannot serve. The engine
// itself assumes these invariants and never re-checks them.
func ValidateCatalog(c *entities.WorkshopCatalog) error {
	if len(c.Workshops) == 0 || len(c.Services) == 0 {
		return errors.New("invalid workshop catalog: workshops and services are required")
	}
	for _, r := range c.Repairs {
		if r.Dependency == "" {
			continue
		}
		if _, ok := c.ServiceByID(r.Dependency); !ok {
			return fmt.Errorf("repair %s depends on unknown service %s", r.ID, r.Dependency)
		}
	}
	for _, w := range c.Workshops {
		if w.WorkingHours.StartHour >= w.WorkingHours.EndHour {
			return fmt.Errorf("workshop %s: working hours %d-%d are inverted", w.ID, w.WorkingHours.StartHour, w.WorkingHours.EndHour)
		}
		for _, day := range w.WorkingDays {
			if day < time.Sunday || day > time.Saturday {
				return fmt.Errorf("workshop %s: invalid working day %d", w.ID, day)
			}
		}
		for _, bay := range w.Bays {
			for _, cap := range bay.Capabilities {
				if cap.Kind != entities.JobKindService && cap.Kind != entities.JobKindRepair {
					return fmt.Errorf("workshop %s bay %s: invalid capability type %q", w.ID, bay.ID, cap.Kind)
				}
				for _, day := range cap.Days {
					if day < time.Sunday || day > time.Saturday {
						return fmt.Errorf("workshop %s bay %s: invalid capability day %d", w.ID, bay.ID, day)
					}
				}
			}
		}
	}
	return nil
}

// CatalogProvider caches a validated catalog and serves it to the engine.
// Reload swaps in a fresh copy only when loading and validation succeed, so
// a broken source never evicts a previously good catalog.
type CatalogProvider struct {
	loader  CatalogLoader
	mu      sync.RWMutex
	current *entities.WorkshopCatalog
	log     zerolog.Logger
}

// NewCatalogProvider performs the initial load and fails fast when the
// catalog is absent or invalid.
func NewCatalogProvider(loader CatalogLoader) (*CatalogProvider, error) {
	p := &CatalogProvider{
		loader: loader,
		log:    logger.New("catalog"),
	}
	if err := p.Reload(); err != nil {
		return nil, err
	}
	return p, nil
}

// Catalog returns the currently cached catalog.
func (p *CatalogProvider) Catalog() *entities.WorkshopCatalog {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Reload re-reads the catalog from the backing store.
func (p *CatalogProvider) Reload() error {
	catalog, err := p.loader.Load()
	if err != nil {
		return err
	}
	if err := ValidateCatalog(catalog); err != nil {
		return err
	}
	p.mu.Lock()
	p.current = catalog
	p.mu.Unlock()
	p.log.Info().
		Int("services", len(catalog.Services)).
		Int("repairs", len(catalog.Repairs)).
		Int("workshops", len(catalog.Workshops)).
		Msg("catalog loaded")
	return nil
}
