package payroll

import (
	"errors"
	"testing"
	"time"
)

func TestParsePeriod(t *testing.T) {
	cases := []struct {
		in    string
		month time.Month
		year  int
	}{
		{"09/2025", time.September, 2025},
		{"9/2025", time.September, 2025},
		{"12/1999", time.December, 1999},
		{"01/2030", time.January, 2030},
	}
	for _, c := range cases {
		p, err := ParsePeriod(c.in)
		if err != nil {
			t.Errorf("ParsePeriod(%q) unexpected error: %v", c.in, err)
			continue
		}
		if p.Month != c.month || p.Year != c.year {
			t.Errorf("ParsePeriod(%q) = %v, want %v/%d", c.in, p, c.month, c.year)
		}
	}
}

func TestParsePeriodRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "13/2025", "0/2025", "09-2025", "09/25", "09/20251", "abc/2025", "9/x025", "9/2025/1"} {
		if _, err := ParsePeriod(in); !errors.Is(err, ErrInvalidPeriod) {
			t.Errorf("ParsePeriod(%q) = %v, want ErrInvalidPeriod", in, err)
		}
	}
}

func TestPeriodString(t *testing.T) {
	p := Period{Month: time.September, Year: 2025}
	if got := p.String(); got != "09/2025" {
		t.Fatalf("String() = %q, want 09/2025", got)
	}
}

func TestPeriodContains(t *testing.T) {
	p := Period{Month: time.September, Year: 2025}
	if !p.Contains(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("first day of the month should be inside")
	}
	if !p.Contains(time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)) {
		t.Error("last day of the month should be inside")
	}
	if p.Contains(time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("next month should be outside")
	}
	if p.Contains(time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC)) {
		t.Error("same month of another year should be outside")
	}
}

func TestNetSalary(t *testing.T) {
	// 20 days at 8 hours of $1000 each.
	if got := NetSalary(20, 8, 1000); got != 160000 {
		t.Fatalf("NetSalary = %v, want 160000", got)
	}
	if got := NetSalary(0, 8, 1000); got != 0 {
		t.Fatalf("NetSalary with no attendance = %v, want 0", got)
	}
}

func TestCountInPeriod(t *testing.T) {
	period := Period{Month: time.September, Year: 2025}
	days := []time.Time{
		time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 8, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
	}
	if got := CountInPeriod(days, period); got != 2 {
		t.Fatalf("CountInPeriod = %d, want 2", got)
	}
}
