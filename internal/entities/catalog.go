package entities

import "time"

// JobKind distinguishes the two kinds of work a bay can perform.
type JobKind string

const (
	JobKindService JobKind = "service"
	JobKindRepair  JobKind = "repair"
)

// ServiceDef is a bookable maintenance service from the catalog.
type ServiceDef struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	DurationHours int    `json:"durationHours"`
}

// RepairDef is a bookable repair. Dependency, when set, names a service
// that must be completed before the repair can start.
type RepairDef struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	DurationHours int    `json:"durationHours"`
	Dependency    string `json:"dependency,omitempty"`
}

// Capability describes one job a bay can take on and the weekdays it can do so.
// Weekdays follow time.Weekday numbering (0 = Sunday).
type Capability struct {
	Kind JobKind        `json:"type"`
	ID   string         `json:"id"`
	Days []time.Weekday `json:"days"`
}

type Bay struct {
	ID           string       `json:"id"`
	Capabilities []Capability `json:"capabilities"`
}

type WorkingHours struct {
	StartHour int `json:"startHour"`
	EndHour   int `json:"endHour"`
}

type Workshop struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	WorkingHours WorkingHours   `json:"workingHours"`
	WorkingDays  []time.Weekday `json:"workingDays"`
	Bays         []Bay          `json:"bays"`
}

// WorkshopCatalog is the read-only catalog of services, repairs and workshops.
// It is loaded once at startup and never mutated by the engine.
type WorkshopCatalog struct {
	Services  []ServiceDef `json:"services"`
	Repairs   []RepairDef  `json:"repairs"`
	Workshops []Workshop   `json:"workshops"`
}

// ServiceByID looks up a service definition by identifier.
func (c *WorkshopCatalog) ServiceByID(id string) (ServiceDef, bool) {
	for _, s := range c.Services {
		if s.ID == id {
			return s, true
		}
	}
	return ServiceDef{}, false
}

// RepairByID looks up a repair definition by identifier.
func (c *WorkshopCatalog) RepairByID(id string) (RepairDef, bool) {
	for _, r := range c.Repairs {
		if r.ID == id {
			return r, true
		}
	}
	return RepairDef{}, false
}
