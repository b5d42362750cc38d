package reports

import (
	"sort"
	"time"

	"adminrec/internal/domain/directory"
)

// Input pairs an employee with their attendance days inside the report range.
type Input struct {
	Employee   directory.Employee
	Attendance []time.Time
}

type EmployeeRow struct {
	Employee          directory.Employee
	RoleLabel         string
	AttendanceDays    int
	AttendancePercent float64
	NetSalary         float64
}

type PositionCost struct {
	Position  string
	Employees int
	Total     float64
}

type SectorCost struct {
	Sector    string
	Employees int
	Total     float64
	Positions []PositionCost
}

// SupervisorHeadcount is the number of non-supervisor employees sharing a
// supervisor's sector.
type SupervisorHeadcount struct {
	DNI        int
	FullName   string
	Sector     string
	Supervised int
}

type Report struct {
	From        time.Time
	To          time.Time
	WorkingDays int
	TotalCost   float64
	Rows        []EmployeeRow
	Sectors     []SectorCost
	Supervisors []SupervisorHeadcount
}

const (
	labelSupervisor = "Supervisor"
	labelEmployee   = "Empleado"
)

// WorkingDays counts Monday through Friday dates between start and end, both
// endpoints included. An inverted range counts zero days.
func WorkingDays(start, end time.Time) int {
	start = dateOnly(start)
	end = dateOnly(end)
	count := 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		switch day.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			count++
		}
	}
	return count
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Aggregate builds the cost report from scratch for the given range. The
// result does not depend on the order of the inputs: rows and rollups are
// sorted before returning.
func Aggregate(inputs []Input, from, to time.Time) Report {
	report := Report{
		From:        dateOnly(from),
		To:          dateOnly(to),
		WorkingDays: WorkingDays(from, to),
	}

	type positionKey struct {
		sector   string
		position string
	}
	sectorTotals := map[string]*SectorCost{}
	positionTotals := map[positionKey]*PositionCost{}
	nonSupervisors := map[string]int{}

	for _, input := range inputs {
		employee := input.Employee
		days := countInRange(input.Attendance, report.From, report.To)
		salary := float64(days) * employee.Position.MinDailyHours * employee.Position.HourlyRate

		percent := 0.0
		if report.WorkingDays > 0 {
			percent = float64(days) / float64(report.WorkingDays) * 100
		}

		label := labelEmployee
		if employee.IsSupervisor {
			label = labelSupervisor
		}

		report.Rows = append(report.Rows, EmployeeRow{
			Employee:          employee,
			RoleLabel:         label,
			AttendanceDays:    days,
			AttendancePercent: percent,
			NetSalary:         salary,
		})
		report.TotalCost += salary

		sectorName := employee.Position.Sector.Name
		sector, ok := sectorTotals[sectorName]
		if !ok {
			sector = &SectorCost{Sector: sectorName}
			sectorTotals[sectorName] = sector
		}
		sector.Employees++
		sector.Total += salary

		key := positionKey{sector: sectorName, position: employee.Position.Name}
		position, ok := positionTotals[key]
		if !ok {
			position = &PositionCost{Position: employee.Position.Name}
			positionTotals[key] = position
		}
		position.Employees++
		position.Total += salary

		if !employee.IsSupervisor {
			nonSupervisors[sectorName]++
		}
	}

	for _, input := range inputs {
		employee := input.Employee
		if !employee.IsSupervisor {
			continue
		}
		report.Supervisors = append(report.Supervisors, SupervisorHeadcount{
			DNI:        employee.DNI,
			FullName:   employee.FirstName + " " + employee.LastName,
			Sector:     employee.Position.Sector.Name,
			Supervised: nonSupervisors[employee.Position.Sector.Name],
		})
	}

	for key, position := range positionTotals {
		sectorTotals[key.sector].Positions = append(sectorTotals[key.sector].Positions, *position)
	}
	for _, sector := range sectorTotals {
		sort.Slice(sector.Positions, func(i, j int) bool {
			return sector.Positions[i].Position < sector.Positions[j].Position
		})
		report.Sectors = append(report.Sectors, *sector)
	}

	sort.Slice(report.Sectors, func(i, j int) bool {
		return report.Sectors[i].Sector < report.Sectors[j].Sector
	})
	sort.Slice(report.Rows, func(i, j int) bool {
		a, b := report.Rows[i].Employee, report.Rows[j].Employee
		if a.LastName != b.LastName {
			return a.LastName < b.LastName
		}
		return a.DNI < b.DNI
	})
	sort.Slice(report.Supervisors, func(i, j int) bool {
		a, b := report.Supervisors[i], report.Supervisors[j]
		if a.Sector != b.Sector {
			return a.Sector < b.Sector
		}
		return a.DNI < b.DNI
	})

	return report
}

func countInRange(days []time.Time, from, to time.Time) int {
	count := 0
	for _, day := range days {
		d := dateOnly(day)
		if !d.Before(from) && !d.After(to) {
			count++
		}
	}
	return count
}
