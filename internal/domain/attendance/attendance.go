package attendance

import (
	"errors"
	"time"
)

// ErrAlreadyRegistered means the employee already marked today; the state
// resets at the next calendar-day boundary.
var ErrAlreadyRegistered = errors.New("attendance already registered today")

type Record struct {
	ID         int64
	EmployeeID int64
	Day        time.Time
}

// DayOf truncates a timestamp to its calendar day in the given location.
func DayOf(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// RegisteredOn reports whether any record falls on the same calendar day.
func RegisteredOn(records []Record, day time.Time) bool {
	for _, record := range records {
		if sameDay(record.Day, day) {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
