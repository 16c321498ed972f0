package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"officina/internal/entities"
)

// CatalogRepository reads the workshop catalog out of Postgres. Rows are
// returned in their configured position so workshops and bays keep their
// configuration order in API responses.
type CatalogRepository struct {
	DB *sql.DB
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// Load assembles the full catalog from the services, repairs, workshops,
// bays and bay_capabilities tables.
func (r *CatalogRepository) Load() (*entities.WorkshopCatalog, error) {
	services, err := r.loadServices()
	if err != nil {
		return nil, fmt.Errorf("load services: %w", err)
	}
	repairs, err := r.loadRepairs()
	if err != nil {
		return nil, fmt.Errorf("load repairs: %w", err)
	}
	workshops, err := r.loadWorkshops()
	if err != nil {
		return nil, fmt.Errorf("load workshops: %w", err)
	}
	return &entities.WorkshopCatalog{
		Services:  services,
		Repairs:   repairs,
		Workshops: workshops,
	}, nil
}

func (r *CatalogRepository) loadServices() ([]entities.ServiceDef, error) {
	rows, err := r.DB.Query(`SELECT id, name, duration_hours FROM services ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []entities.ServiceDef
	for rows.Next() {
		var s entities.ServiceDef
		if err := rows.Scan(&s.ID, &s.Name, &s.DurationHours); err != nil {
			return nil, err
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

func (r *CatalogRepository) loadRepairs() ([]entities.RepairDef, error) {
	rows, err := r.DB.Query(`SELECT id, name, duration_hours, dependency_service_id FROM repairs ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var repairs []entities.RepairDef
	for rows.Next() {
		var rep entities.RepairDef
		var dep sql.NullString
		if err := rows.Scan(&rep.ID, &rep.Name, &rep.DurationHours, &dep); err != nil {
			return nil, err
		}
		if dep.Valid {
			rep.Dependency = dep.String
		}
		repairs = append(repairs, rep)
	}
	return repairs, rows.Err()
}

func (r *CatalogRepository) loadWorkshops() ([]entities.Workshop, error) {
	rows, err := r.DB.Query(`
	SELECT id, name, start_hour, end_hour, working_days
	FROM workshops
	ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workshops []entities.Workshop
	for rows.Next() {
		var w entities.Workshop
		var days []int64
		if err := rows.Scan(&w.ID, &w.Name, &w.WorkingHours.StartHour, &w.WorkingHours.EndHour, pq.Array(&days)); err != nil {
			return nil, err
		}
		w.WorkingDays = toWeekdays(days)
		workshops = append(workshops, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range workshops {
		bays, err := r.loadBays(workshops[i].ID)
		if err != nil {
			return nil, fmt.Errorf("load bays for workshop %s: %w", workshops[i].ID, err)
		}
		workshops[i].Bays = bays
	}
	return workshops, nil
}

func (r *CatalogRepository) loadBays(workshopID string) ([]entities.Bay, error) {
	rows, err := r.DB.Query(`SELECT id FROM bays WHERE workshop_id = $1 ORDER BY position`, workshopID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bays []entities.Bay
	for rows.Next() {
		var b entities.Bay
		if err := rows.Scan(&b.ID); err != nil {
			return nil, err
		}
		bays = append(bays, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range bays {
		caps, err := r.loadCapabilities(bays[i].ID)
		if err != nil {
			return nil, fmt.Errorf("load capabilities for bay %s: %w", bays[i].ID, err)
		}
		bays[i].Capabilities = caps
	}
	return bays, nil
}

func (r *CatalogRepository) loadCapabilities(bayID string) ([]entities.Capability, error) {
	rows, err := r.DB.Query(`SELECT job_type, job_id, days FROM bay_capabilities WHERE bay_id = $1 ORDER BY position`, bayID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var caps []entities.Capability
	for rows.Next() {
		var c entities.Capability
		var kind string
		var days []int64
		if err := rows.Scan(&kind, &c.ID, pq.Array(&days)); err != nil {
			return nil, err
		}
		c.Kind = entities.JobKind(kind)
		c.Days = toWeekdays(days)
		caps = append(caps, c)
	}
	return caps, rows.Err()
}

func toWeekdays(days []int64) []time.Weekday {
	out := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		out = append(out, time.Weekday(d))
	}
	return out
}
