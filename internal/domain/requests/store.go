package requests

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const requestColumns = `
    r.id, r.request_type, r.duration_days, r.reason, r.status, r.created_at,
    e.id, e.dni, e.first_name, e.last_name, e.email, e.phone, e.address,
    e.birth_date, e.hire_date, e.is_supervisor,
    p.id, p.name, p.hourly_rate, p.min_daily_hours,
    s.id, s.name`

const requestJoins = `
    FROM requests r
    JOIN employees e ON r.employee_id = e.id
    JOIN positions p ON e.position_id = p.id
    JOIN sectors s ON p.sector_id = s.id`

func scanRequest(row pgx.Row) (Request, error) {
	var req Request
	err := row.Scan(
		&req.ID, &req.Type, &req.DurationDays, &req.Reason, &req.Status, &req.CreatedAt,
		&req.Employee.ID, &req.Employee.DNI, &req.Employee.FirstName, &req.Employee.LastName,
		&req.Employee.Email, &req.Employee.Phone, &req.Employee.Address,
		&req.Employee.BirthDate, &req.Employee.HireDate, &req.Employee.IsSupervisor,
		&req.Employee.Position.ID, &req.Employee.Position.Name,
		&req.Employee.Position.HourlyRate, &req.Employee.Position.MinDailyHours,
		&req.Employee.Position.Sector.ID, &req.Employee.Position.Sector.Name,
	)
	return req, err
}

func (s *Store) ListByDNI(ctx context.Context, dni int) ([]Request, error) {
	return s.list(ctx, "SELECT"+requestColumns+requestJoins+" WHERE e.dni = $1 ORDER BY r.created_at DESC", dni)
}

// ListBySector returns every request made by employees of the sector, so a
// supervisor only ever sees their own people.
func (s *Store) ListBySector(ctx context.Context, sectorID int64) ([]Request, error) {
	return s.list(ctx, "SELECT"+requestColumns+requestJoins+" WHERE s.id = $1 ORDER BY r.created_at DESC", sectorID)
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]Request, error) {
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, req)
	}
	return result, rows.Err()
}

func (s *Store) Get(ctx context.Context, id int64) (*Request, error) {
	req, err := scanRequest(s.DB.QueryRow(ctx, "SELECT"+requestColumns+requestJoins+" WHERE r.id = $1", id))
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (s *Store) Create(ctx context.Context, dni int, requestType string, durationDays int, reason string) (*Request, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO requests (employee_id, request_type, duration_days, reason, status)
    SELECT e.id, $2, $3, $4, $5 FROM employees e WHERE e.dni = $1
    RETURNING id
  `, dni, requestType, durationDays, reason, StatusPending).Scan(&id)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// SetStatus moves a pending request into a terminal state. The WHERE guard
// makes the transition atomic: zero affected rows means the request was
// already decided (or never existed).
func (s *Store) SetStatus(ctx context.Context, id int64, status string) (bool, error) {
	tag, err := s.DB.Exec(ctx, `
    UPDATE requests SET status = $2
    WHERE id = $1 AND status = $3
  `, id, status, StatusPending)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
