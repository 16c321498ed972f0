package main

import (
	"database/sql"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"officina/internal/api"
	"officina/internal/auth"
	"officina/internal/config"
	"officina/internal/logger"
	"officina/internal/metrics"
	"officina/internal/repository"
	"officina/internal/service"
)

func main() {
	godotenv.Load()
	log := logger.New("server")

	cfg, err := config.Load(os.Getenv("OFFICINA_CONFIG"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	var loader config.CatalogLoader
	switch cfg.Catalog.Source {
	case "postgres":
		dbURL := os.Getenv("DATABASE_URL")
		if dbURL == "" {
			log.Fatal().Msg("DATABASE_URL not set")
		}
		db, err := sql.Open("postgres", dbURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open DB")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("failed to connect to DB")
		}
		loader = repository.NewCatalogRepository(db)
	default:
		loader = config.NewFileCatalog(cfg.Catalog.Path)
	}

	provider, err := config.NewCatalogProvider(loader)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load workshop catalog")
	}

	availabilitySvc := service.NewAvailabilityService(provider)
	adminAuthSvc := service.NewAdminAuthService()
	catalogJobSvc := service.NewCatalogJobService(provider)

	availabilityHandler := api.NewAvailabilityHandler(availabilitySvc)
	adminHandler := api.NewAdminHandler(provider)
	adminAuthHandler := api.NewAdminAuthHandler(adminAuthSvc)

	if cfg.Catalog.RefreshSchedule != "" {
		c := cron.New()
		if _, err := c.AddFunc(cfg.Catalog.RefreshSchedule, func() {
			catalogJobSvc.RefreshCatalog()
		}); err != nil {
			log.Fatal().Err(err).Str("schedule", cfg.Catalog.RefreshSchedule).Msg("invalid refresh schedule")
		}
		c.Start()
	}

	r := mux.NewRouter()
	r.Use(api.RequestID)
	r.Use(api.AccessLog(logger.New("http")))

	// Public endpoints
	r.HandleFunc("/api/availability", availabilityHandler.CheckAvailability).Methods("POST")
	r.HandleFunc("/health", availabilityHandler.Health).Methods("GET")
	r.Handle("/metrics", metrics.Handler()).Methods("GET")
	r.HandleFunc("/admin/login", adminAuthHandler.Login).Methods("POST")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware)
	admin.HandleFunc("/catalog", adminHandler.GetCatalog).Methods("GET")
	admin.HandleFunc("/catalog/reload", adminHandler.ReloadCatalog).Methods("POST")

	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.CORS.AllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Server.Port
	}
	log.Info().Str("port", port).Msg("workshop availability service listening")
	if err := http.ListenAndServe(":"+port, handlers.RecoveryHandler()(cors(r))); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
