package payroll

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidPeriod = errors.New("invalid period, expected MM/YYYY")

// Period is a calendar month, the unit salaries are settled in.
type Period struct {
	Month time.Month
	Year  int
}

// ParsePeriod accepts "MM/YYYY" with an optional leading zero on the month.
func ParsePeriod(value string) (Period, error) {
	parts := strings.Split(strings.TrimSpace(value), "/")
	if len(parts) != 2 {
		return Period{}, ErrInvalidPeriod
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return Period{}, ErrInvalidPeriod
	}
	if len(parts[1]) != 4 {
		return Period{}, ErrInvalidPeriod
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil || year < 1 {
		return Period{}, ErrInvalidPeriod
	}
	return Period{Month: time.Month(month), Year: year}, nil
}

func (p Period) String() string {
	return fmt.Sprintf("%02d/%04d", int(p.Month), p.Year)
}

// Contains reports whether the day falls inside the period's month.
func (p Period) Contains(day time.Time) bool {
	return day.Year() == p.Year && day.Month() == p.Month
}

// Bounds returns the first day of the period and the first day of the next
// month, for half-open range queries.
func (p Period) Bounds() (time.Time, time.Time) {
	start := time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
