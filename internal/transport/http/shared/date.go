package shared

import "time"

const DateLayout = "2006-01-02"

// ParseDate accepts RFC3339 or YYYY-MM-DD.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Parse(DateLayout, value)
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// YearsBetween is the calendar-year difference, ignoring month and day. Age
// checks deliberately use this: someone turning 18 in December already
// counts as 18 all year.
func YearsBetween(from, to time.Time) int {
	return to.Year() - from.Year()
}
