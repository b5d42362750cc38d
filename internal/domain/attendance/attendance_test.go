package attendance

import (
	"testing"
	"time"
)

func TestDayOfTruncatesToCalendarDay(t *testing.T) {
	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// 01:30 UTC is still the previous day in Buenos Aires (UTC-3).
	stamp := time.Date(2025, 9, 10, 1, 30, 0, 0, time.UTC)
	day := DayOf(stamp, loc)
	if day.Year() != 2025 || day.Month() != time.September || day.Day() != 9 {
		t.Fatalf("expected 2025-09-09, got %v", day)
	}
	if day.Hour() != 0 || day.Minute() != 0 {
		t.Fatalf("expected midnight, got %v", day)
	}
}

func TestRegisteredOn(t *testing.T) {
	records := []Record{
		{ID: 1, Day: time.Date(2025, 9, 8, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Day: time.Date(2025, 9, 9, 0, 0, 0, 0, time.UTC)},
	}

	if !RegisteredOn(records, time.Date(2025, 9, 9, 15, 4, 0, 0, time.UTC)) {
		t.Fatal("expected same-day match regardless of time of day")
	}
	if RegisteredOn(records, time.Date(2025, 9, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatal("expected no match the next day")
	}
	if RegisteredOn(nil, time.Now()) {
		t.Fatal("expected no match for empty history")
	}
}
