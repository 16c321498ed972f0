package service

import (
	"errors"
	"fmt"
	"time"

	"officina/internal/entities"
)

var errEmptySchedule = errors.New("cannot summarize an empty schedule")

// buildSlot summarizes a completed schedule: check-in is the first job's
// start, check-out the last job's end, totalDays the inclusive span of
// calendar days covered. An empty schedule is a programming defect upstream.
func buildSlot(schedule []entities.ScheduledJob) (entities.AvailableSlot, error) {
	if len(schedule) == 0 {
		return entities.AvailableSlot{}, errEmptySchedule
	}
	first := schedule[0]
	last := schedule[len(schedule)-1]

	totalWorkHours := 0
	for _, j := range schedule {
		totalWorkHours += j.Duration
	}

	firstDate, err := time.ParseInLocation(dateLayout, first.Date, time.UTC)
	if err != nil {
		return entities.AvailableSlot{}, fmt.Errorf("bad schedule date %q: %w", first.Date, err)
	}
	lastDate, err := time.ParseInLocation(dateLayout, last.Date, time.UTC)
	if err != nil {
		return entities.AvailableSlot{}, fmt.Errorf("bad schedule date %q: %w", last.Date, err)
	}
	totalDays := int(lastDate.Sub(firstDate).Hours()/24) + 1
	if totalDays < 1 {
		totalDays = 1
	}

	return entities.AvailableSlot{
		CheckIn:        fmt.Sprintf("%sT%02d:00", first.Date, first.StartHour),
		CheckOut:       fmt.Sprintf("%sT%02d:00", last.Date, last.EndHour),
		TotalWorkHours: totalWorkHours,
		TotalDays:      totalDays,
		Schedule:       schedule,
	}, nil
}

// workshopSlots tries every candidate start date in the window and collects
// the feasible placements, deduplicated by (checkIn, checkOut): later trial
// dates landing on an identical placement are suppressed.
func workshopSlots(workshop entities.Workshop, jobs []entities.Job, periodStart time.Time) ([]entities.AvailableSlot, error) {
	slots := []entities.AvailableSlot{}
	seen := make(map[string]bool)

	dates := newStartDateIter(periodStart, workshop)
	for date, ok := dates.Next(); ok; date, ok = dates.Next() {
		schedule, placed := scheduleJobs(workshop, jobs, date)
		if !placed {
			continue
		}
		slot, err := buildSlot(schedule)
		if err != nil {
			return nil, err
		}
		key := slot.CheckIn + "|" + slot.CheckOut
		if seen[key] {
			continue
		}
		seen[key] = true
		slots = append(slots, slot)
	}

	return slots, nil
}
