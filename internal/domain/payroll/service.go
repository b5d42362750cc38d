package payroll

import (
	"context"

	"github.com/google/uuid"

	"adminrec/internal/domain/attendance"
	"adminrec/internal/domain/directory"
)

type Service struct {
	Store      *Store
	Directory  *directory.Store
	Attendance *attendance.Store
}

func NewService(store *Store, dir *directory.Store, att *attendance.Store) *Service {
	return &Service{Store: store, Directory: dir, Attendance: att}
}

// Settle computes and records the salary of one employee for one period. The
// amount is derived server-side from the attendance table and the position's
// current figures; clients only name the employee and the period.
func (s *Service) Settle(ctx context.Context, employeeID int64, period Period) (*Payment, error) {
	employee, err := s.Directory.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	records, err := s.Attendance.ListByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	days := 0
	for _, record := range records {
		if period.Contains(record.Day) {
			days++
		}
	}

	payment := Payment{
		ID:            uuid.New(),
		EmployeeID:    employee.ID,
		DNI:           employee.DNI,
		FirstName:     employee.FirstName,
		LastName:      employee.LastName,
		PositionName:  employee.Position.Name,
		SectorName:    employee.Position.Sector.Name,
		Period:        period,
		DaysWorked:    days,
		MinDailyHours: employee.Position.MinDailyHours,
		HourlyRate:    employee.Position.HourlyRate,
		NetSalary:     NetSalary(days, employee.Position.MinDailyHours, employee.Position.HourlyRate),
	}
	if err := s.Store.Insert(ctx, payment); err != nil {
		return nil, err
	}
	return s.Store.Get(ctx, payment.ID)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]Payment, error) {
	return s.Store.List(ctx, limit, offset)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Payment, error) {
	return s.Store.Get(ctx, id)
}
