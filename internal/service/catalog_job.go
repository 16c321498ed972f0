package service

import (
	"fmt"

	"github.com/rs/zerolog"

	"officina/internal/entities"
	"officina/internal/logger"
)

// CatalogReloader is the slice of the catalog provider the refresh job needs.
type CatalogReloader interface {
	Catalog() *entities.WorkshopCatalog
	Reload() error
}

// CatalogJobService runs the scheduled catalog refresh so a long-lived
// process picks up edits to the backing store without a restart.
type CatalogJobService struct {
	Provider CatalogReloader
	log      zerolog.Logger
}

func NewCatalogJobService(provider CatalogReloader) *CatalogJobService {
	return &CatalogJobService{
		Provider: provider,
		log:      logger.New("catalog-job"),
	}
}

// RefreshCatalog reloads the catalog from its source. A failed reload keeps
// the previously cached catalog in service.
func (s *CatalogJobService) RefreshCatalog() error {
	if err := s.Provider.Reload(); err != nil {
		s.log.Error().Err(err).Msg("catalog refresh failed, keeping cached catalog")
		return fmt.Errorf("catalog refresh: %w", err)
	}
	c := s.Provider.Catalog()
	s.log.Info().
		Int("services", len(c.Services)).
		Int("repairs", len(c.Repairs)).
		Int("workshops", len(c.Workshops)).
		Msg("catalog refreshed")
	return nil
}
