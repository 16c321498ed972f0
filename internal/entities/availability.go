package entities

// AvailabilityRequest is the validated body of an availability query.
// StartDate, when present, is a YYYY-MM-DD string.
type AvailabilityRequest struct {
	Services  []string `json:"services"`
	Repairs   []string `json:"repairs"`
	StartDate string   `json:"startDate,omitempty"`
}

// Job is one unit of work to place, derived from the catalog for a single
// request. It only lives for the duration of the computation.
type Job struct {
	Kind          JobKind
	ID            string
	Name          string
	DurationHours int
}

// ScheduledJob is one placed job within a slot's schedule.
type ScheduledJob struct {
	JobName   string  `json:"jobName"`
	JobKind   JobKind `json:"jobType"`
	BayID     string  `json:"bayId"`
	Date      string  `json:"date"`
	StartHour int     `json:"startHour"`
	EndHour   int     `json:"endHour"`
	Duration  int     `json:"duration"`
}

// AvailableSlot is one complete feasible placement of the requested work.
type AvailableSlot struct {
	CheckIn        string         `json:"checkIn"`
	CheckOut       string         `json:"checkOut"`
	TotalWorkHours int            `json:"totalWorkHours"`
	TotalDays      int            `json:"totalDays"`
	Schedule       []ScheduledJob `json:"schedule"`
}

type WorkshopAvailabilityResult struct {
	WorkshopID               string          `json:"workshopId"`
	WorkshopName             string          `json:"workshopName"`
	CanFulfillRequest        bool            `json:"canFulfillRequest"`
	MissingServicesOrRepairs []string        `json:"missingServicesOrRepairs,omitempty"`
	AvailableSlots           []AvailableSlot `json:"availableSlots"`
}

// RequestSummary echoes the resolved request back to the caller.
type RequestSummary struct {
	Services            []string `json:"services"`
	Repairs             []string `json:"repairs"`
	TotalRequestedHours int      `json:"totalRequestedHours"`
	StartDate           string   `json:"startDate"`
	EndDate             string   `json:"endDate"`
}

type AvailabilityResponse struct {
	Success bool                         `json:"success"`
	Request RequestSummary               `json:"request"`
	Results []WorkshopAvailabilityResult `json:"results"`
}
