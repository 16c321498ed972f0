package service

import (
	"time"

	"officina/internal/entities"
)

// cursor marks the next free moment in a workshop's calendar. It is a value:
// placement steps return an advanced copy rather than mutating shared state.
type cursor struct {
	date time.Time
	hour int
}

func (c cursor) nextDay(openingHour int) cursor {
	return cursor{date: c.date.AddDate(0, 0, 1), hour: openingHour}
}

// placeJob finds the first bay/day/hour where one job fits, scanning forward
// from the cursor up to the horizon. The cursor's hour applies only to the
// first day examined; every later day starts at the opening hour. Bays are
// tried in configuration order, first fit wins. On success it returns the
// placement and the cursor advanced past the job's end (rolled to the next
// day's opening hour when the job runs up to closing time).
func placeJob(workshop entities.Workshop, job entities.Job, c cursor) (entities.ScheduledJob, cursor, bool) {
	opening := workshop.WorkingHours.StartHour
	closing := workshop.WorkingHours.EndHour

	for offset := 0; offset < queryDays; offset++ {
		day := c.date.Weekday()
		if !containsDay(workshop.WorkingDays, day) {
			c = c.nextDay(opening)
			continue
		}
		if c.hour+job.DurationHours > closing {
			c = c.nextDay(opening)
			continue
		}
		for _, bay := range workshop.Bays {
			if !bayCanDo(bay, job, day) {
				continue
			}
			placed := entities.ScheduledJob{
				JobName:   job.Name,
				JobKind:   job.Kind,
				BayID:     bay.ID,
				Date:      c.date.Format(dateLayout),
				StartHour: c.hour,
				EndHour:   c.hour + job.DurationHours,
				Duration:  job.DurationHours,
			}
			next := cursor{date: c.date, hour: placed.EndHour}
			if next.hour >= closing {
				next = next.nextDay(opening)
			}
			return placed, next, true
		}
		c = c.nextDay(opening)
	}

	return entities.ScheduledJob{}, cursor{}, false
}

func bayCanDo(bay entities.Bay, job entities.Job, day time.Weekday) bool {
	for _, cap := range bay.Capabilities {
		if cap.Kind == job.Kind && cap.ID == job.ID && containsDay(cap.Days, day) {
			return true
		}
	}
	return false
}

// scheduleJobs greedily places the ordered job list starting at the trial
// date and the workshop's opening hour. All jobs are sequential: each one
// starts no earlier than the previous one ends, even across different bays.
// A single job that cannot be placed within the horizon fails the whole
// trial; there is no backtracking.
func scheduleJobs(workshop entities.Workshop, jobs []entities.Job, trialStart time.Time) ([]entities.ScheduledJob, bool) {
	c := cursor{date: dateOnly(trialStart), hour: workshop.WorkingHours.StartHour}
	schedule := make([]entities.ScheduledJob, 0, len(jobs))
	for _, job := range jobs {
		placed, next, ok := placeJob(workshop, job, c)
		if !ok {
			return nil, false
		}
		schedule = append(schedule, placed)
		c = next
	}
	return schedule, true
}
