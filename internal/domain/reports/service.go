package reports

import (
	"context"
	"time"

	"adminrec/internal/domain/attendance"
	"adminrec/internal/domain/directory"
)

type Service struct {
	Directory  *directory.Store
	Attendance *attendance.Store
}

func NewService(dir *directory.Store, att *attendance.Store) *Service {
	return &Service{Directory: dir, Attendance: att}
}

// Costs loads the whole employee roster with the range's attendance and runs
// the aggregation. Every call recomputes from scratch.
func (s *Service) Costs(ctx context.Context, from, to time.Time) (Report, error) {
	employees, err := s.Directory.ListEmployees(ctx)
	if err != nil {
		return Report{}, err
	}
	records, err := s.Attendance.ListInRange(ctx, from, to)
	if err != nil {
		return Report{}, err
	}

	daysByEmployee := make(map[int64][]time.Time, len(employees))
	for _, record := range records {
		daysByEmployee[record.EmployeeID] = append(daysByEmployee[record.EmployeeID], record.Day)
	}

	inputs := make([]Input, 0, len(employees))
	for _, employee := range employees {
		inputs = append(inputs, Input{
			Employee:   employee,
			Attendance: daysByEmployee[employee.ID],
		})
	}
	return Aggregate(inputs, from, to), nil
}
