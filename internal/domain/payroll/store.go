package payroll

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const paymentColumns = `
    id, employee_id, dni, first_name, last_name, position_name, sector_name,
    period_month, period_year, days_worked, min_daily_hours, hourly_rate,
    net_salary, created_at`

func scanPayment(row pgx.Row) (Payment, error) {
	var p Payment
	var month int
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.DNI, &p.FirstName, &p.LastName,
		&p.PositionName, &p.SectorName,
		&month, &p.Period.Year, &p.DaysWorked, &p.MinDailyHours, &p.HourlyRate,
		&p.NetSalary, &p.CreatedAt,
	)
	p.Period.Month = time.Month(month)
	return p, err
}

func (s *Store) Insert(ctx context.Context, p Payment) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO salary_payments (
      id, employee_id, dni, first_name, last_name, position_name, sector_name,
      period_month, period_year, days_worked, min_daily_hours, hourly_rate, net_salary
    ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
  `, p.ID, p.EmployeeID, p.DNI, p.FirstName, p.LastName, p.PositionName, p.SectorName,
		int(p.Period.Month), p.Period.Year, p.DaysWorked, p.MinDailyHours, p.HourlyRate, p.NetSalary)
	return err
}

func (s *Store) Get(ctx context.Context, id uuid.UUID) (*Payment, error) {
	p, err := scanPayment(s.DB.QueryRow(ctx,
		"SELECT"+paymentColumns+" FROM salary_payments WHERE id = $1", id))
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) List(ctx context.Context, limit, offset int) ([]Payment, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT`+paymentColumns+`
    FROM salary_payments
    ORDER BY created_at DESC
    LIMIT $1 OFFSET $2
  `, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
