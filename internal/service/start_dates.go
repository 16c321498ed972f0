package service

import (
	"time"

	"officina/internal/entities"
)

// queryDays is the fixed search horizon: 60 consecutive calendar days,
// period start inclusive.
const queryDays = 60

const dateLayout = "2006-01-02"

// dateOnly truncates t to a UTC calendar date.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func containsDay(days []time.Weekday, d time.Weekday) bool {
	for _, day := range days {
		if day == d {
			return true
		}
	}
	return false
}

// startDateIter walks the candidate trial start dates for one workshop:
// every date in the query window whose weekday is one of the workshop's
// working days. Each workshop gets its own iterator; Reset rewinds it to
// the beginning of the window.
type startDateIter struct {
	start       time.Time
	end         time.Time // exclusive
	cur         time.Time
	workingDays []time.Weekday
}

func newStartDateIter(periodStart time.Time, workshop entities.Workshop) *startDateIter {
	start := dateOnly(periodStart)
	return &startDateIter{
		start:       start,
		end:         start.AddDate(0, 0, queryDays),
		cur:         start,
		workingDays: workshop.WorkingDays,
	}
}

// Next yields the next candidate date, or false when the window is exhausted.
func (it *startDateIter) Next() (time.Time, bool) {
	for it.cur.Before(it.end) {
		d := it.cur
		it.cur = it.cur.AddDate(0, 0, 1)
		if containsDay(it.workingDays, d.Weekday()) {
			return d, true
		}
	}
	return time.Time{}, false
}

func (it *startDateIter) Reset() {
	it.cur = it.start
}
