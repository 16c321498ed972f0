package service

import (
	"time"

	"officina/internal/entities"
)

var weekdays = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}

// weekdayWorkshop is the canonical fixture: open Mon-Fri 09:00-17:00 with one
// bay that can do MOT and Brakes on any working day.
func weekdayWorkshop() entities.Workshop {
	return entities.Workshop{
		ID:           "w1",
		Name:         "Test Workshop",
		WorkingHours: entities.WorkingHours{StartHour: 9, EndHour: 17},
		WorkingDays:  weekdays,
		Bays: []entities.Bay{
			{
				ID: "Bay-1",
				Capabilities: []entities.Capability{
					{Kind: entities.JobKindService, ID: "MOT", Days: weekdays},
					{Kind: entities.JobKindRepair, ID: "Brakes", Days: weekdays},
				},
			},
		},
	}
}

func motJob() entities.Job {
	return entities.Job{Kind: entities.JobKindService, ID: "MOT", Name: "MOT", DurationHours: 6}
}

func brakesJob() entities.Job {
	return entities.Job{Kind: entities.JobKindRepair, ID: "Brakes", Name: "Brakes", DurationHours: 1}
}

// date builds a UTC calendar date.
func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// mondayFeb9 is a Monday.
var mondayFeb9 = date(2026, time.February, 9)
