package service

import "officina/internal/entities"

// missingForWorkshop checks identifier coverage across all bays of a workshop.
// Weekday restrictions are ignored here; only whether some bay supports each
// requested identifier matters. The returned list holds display names (or the
// raw identifier for ids unknown to the catalog) in request order, services
// before repairs. The workshop is feasible iff the list is empty.
func missingForWorkshop(workshop entities.Workshop, catalog *entities.WorkshopCatalog, serviceIDs, repairIDs []string) []string {
	supportedServices := make(map[string]bool)
	supportedRepairs := make(map[string]bool)
	for _, bay := range workshop.Bays {
		for _, cap := range bay.Capabilities {
			switch cap.Kind {
			case entities.JobKindService:
				supportedServices[cap.ID] = true
			case entities.JobKindRepair:
				supportedRepairs[cap.ID] = true
			}
		}
	}

	var missing []string
	for _, id := range serviceIDs {
		if supportedServices[id] {
			continue
		}
		if s, ok := catalog.ServiceByID(id); ok {
			missing = append(missing, s.Name)
		} else {
			missing = append(missing, id)
		}
	}
	for _, id := range repairIDs {
		if supportedRepairs[id] {
			continue
		}
		if r, ok := catalog.RepairByID(id); ok {
			missing = append(missing, r.Name)
		} else {
			missing = append(missing, id)
		}
	}
	return missing
}
