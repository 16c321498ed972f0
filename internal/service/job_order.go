package service

import "officina/internal/entities"

// buildJobOrder resolves the sequence in which the requested work must be
// scheduled. Services come first in request order, then repairs in request
// order, with each repair's dependency service inserted before it if not
// already present. Identifiers unknown to the catalog are dropped; every
// identifier appears at most once.
func buildJobOrder(catalog *entities.WorkshopCatalog, serviceIDs, repairIDs []string) []entities.Job {
	jobs := make([]entities.Job, 0, len(serviceIDs)+len(repairIDs))
	added := make(map[string]bool)

	addService := func(id string) {
		if added[id] {
			return
		}
		s, ok := catalog.ServiceByID(id)
		if !ok {
			return
		}
		jobs = append(jobs, entities.Job{
			Kind:          entities.JobKindService,
			ID:            s.ID,
			Name:          s.Name,
			DurationHours: s.DurationHours,
		})
		added[id] = true
	}

	for _, id := range serviceIDs {
		addService(id)
	}

	for _, id := range repairIDs {
		if added[id] {
			continue
		}
		r, ok := catalog.RepairByID(id)
		if !ok {
			continue
		}
		if r.Dependency != "" {
			addService(r.Dependency)
		}
		jobs = append(jobs, entities.Job{
			Kind:          entities.JobKindRepair,
			ID:            r.ID,
			Name:          r.Name,
			DurationHours: r.DurationHours,
		})
		added[id] = true
	}

	return jobs
}

// totalJobHours sums the durations of the resolved job order.
func totalJobHours(jobs []entities.Job) int {
	total := 0
	for _, j := range jobs {
		total += j.DurationHours
	}
	return total
}
