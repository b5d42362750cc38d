package payroll

import "time"

// NetSalary is the settlement formula: days worked times the position's
// minimum daily hours times its hourly rate.
func NetSalary(attendanceDays int, minDailyHours, hourlyRate float64) float64 {
	return float64(attendanceDays) * minDailyHours * hourlyRate
}

// CountInPeriod counts attendance days falling inside the period.
func CountInPeriod(days []time.Time, period Period) int {
	count := 0
	for _, day := range days {
		if period.Contains(day) {
			count++
		}
	}
	return count
}
