package attendance

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) ListByDNI(ctx context.Context, dni int) ([]Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT a.id, a.employee_id, a.day
    FROM attendance a
    JOIN employees e ON a.employee_id = e.id
    WHERE e.dni = $1
    ORDER BY a.day
  `, dni)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var record Record
		if err := rows.Scan(&record.ID, &record.EmployeeID, &record.Day); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *Store) ListByEmployeeID(ctx context.Context, employeeID int64) ([]Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, day
    FROM attendance
    WHERE employee_id = $1
    ORDER BY day
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var record Record
		if err := rows.Scan(&record.ID, &record.EmployeeID, &record.Day); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// ListInRange returns every attendance record with a day inside [from, to],
// across all employees. Used by the cost report.
func (s *Store) ListInRange(ctx context.Context, from, to time.Time) ([]Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, day
    FROM attendance
    WHERE day >= $1 AND day <= $2
    ORDER BY day
  `, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var record Record
		if err := rows.Scan(&record.ID, &record.EmployeeID, &record.Day); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Register inserts one record for the employee on the given day. The unique
// index on (employee_id, day) is the real guard; a conflict maps to
// ErrAlreadyRegistered.
func (s *Store) Register(ctx context.Context, dni int, day time.Time) (*Record, error) {
	var record Record
	err := s.DB.QueryRow(ctx, `
    INSERT INTO attendance (employee_id, day)
    SELECT e.id, $2 FROM employees e WHERE e.dni = $1
    ON CONFLICT (employee_id, day) DO NOTHING
    RETURNING id, employee_id, day
  `, dni, day).Scan(&record.ID, &record.EmployeeID, &record.Day)
	if err != nil {
		return nil, err
	}
	return &record, nil
}
