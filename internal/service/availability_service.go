package service

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"officina/internal/entities"
	"officina/internal/logger"
)

// CatalogSource hands out the current read-only catalog.
type CatalogSource interface {
	Catalog() *entities.WorkshopCatalog
}

// AvailabilityService answers availability queries: given requested services
// and repairs and a start date, on which dates, at which workshops and on
// which bays can all the work be completed within the query window.
type AvailabilityService struct {
	catalogs CatalogSource
	now      func() time.Time
	log      zerolog.Logger
}

func NewAvailabilityService(catalogs CatalogSource) *AvailabilityService {
	return &AvailabilityService{
		catalogs: catalogs,
		now:      time.Now,
		log:      logger.New("availability"),
	}
}

// CheckAvailability resolves the period start from the request (falling back
// to the current clock) and runs the computation against the current catalog.
func (s *AvailabilityService) CheckAvailability(req entities.AvailabilityRequest) (*entities.AvailabilityResponse, error) {
	periodStart := s.now()
	if req.StartDate != "" {
		parsed, err := time.ParseInLocation(dateLayout, req.StartDate, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("invalid start date %q: %w", req.StartDate, err)
		}
		periodStart = parsed
	}
	return s.Compute(s.catalogs.Catalog(), req, periodStart)
}

// Compute runs the full availability computation. It is a pure function of
// the catalog, the request and the clock reading; it performs no I/O and
// never mutates the catalog.
func (s *AvailabilityService) Compute(catalog *entities.WorkshopCatalog, req entities.AvailabilityRequest, periodStart time.Time) (*entities.AvailabilityResponse, error) {
	startDate := dateOnly(periodStart)
	today := dateOnly(s.now())
	// Never report slots before the present.
	if startDate.Before(today) {
		startDate = today
	}
	endDate := startDate.AddDate(0, 0, queryDays-1)

	services := req.Services
	if services == nil {
		services = []string{}
	}
	repairs := req.Repairs
	if repairs == nil {
		repairs = []string{}
	}

	jobs := buildJobOrder(catalog, services, repairs)

	results := make([]entities.WorkshopAvailabilityResult, 0, len(catalog.Workshops))
	for _, workshop := range catalog.Workshops {
		missing := missingForWorkshop(workshop, catalog, services, repairs)
		result := entities.WorkshopAvailabilityResult{
			WorkshopID:               workshop.ID,
			WorkshopName:             workshop.Name,
			CanFulfillRequest:        len(missing) == 0,
			MissingServicesOrRepairs: missing,
			AvailableSlots:           []entities.AvailableSlot{},
		}
		if result.CanFulfillRequest {
			slots, err := workshopSlots(workshop, jobs, startDate)
			if err != nil {
				return nil, fmt.Errorf("workshop %s: %w", workshop.ID, err)
			}
			result.AvailableSlots = slots
		}
		results = append(results, result)
	}

	s.log.Debug().
		Int("workshops", len(results)).
		Int("jobs", len(jobs)).
		Str("start", startDate.Format(dateLayout)).
		Msg("availability computed")

	return &entities.AvailabilityResponse{
		Success: true,
		Request: entities.RequestSummary{
			Services:            services,
			Repairs:             repairs,
			TotalRequestedHours: totalJobHours(jobs),
			StartDate:           startDate.Format(dateLayout),
			EndDate:             endDate.Format(dateLayout),
		},
		Results: results,
	}, nil
}
