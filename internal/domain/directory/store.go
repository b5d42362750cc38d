package directory

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adminrec/internal/domain/auth"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const employeeColumns = `
    e.id, e.dni, e.first_name, e.last_name, e.email, e.phone, e.address,
    e.birth_date, e.hire_date, e.is_supervisor,
    p.id, p.name, p.hourly_rate, p.min_daily_hours,
    s.id, s.name`

const employeeJoins = `
    FROM employees e
    JOIN positions p ON e.position_id = p.id
    JOIN sectors s ON p.sector_id = s.id`

func scanEmployee(row pgx.Row) (Employee, error) {
	var emp Employee
	err := row.Scan(
		&emp.ID, &emp.DNI, &emp.FirstName, &emp.LastName, &emp.Email, &emp.Phone, &emp.Address,
		&emp.BirthDate, &emp.HireDate, &emp.IsSupervisor,
		&emp.Position.ID, &emp.Position.Name, &emp.Position.HourlyRate, &emp.Position.MinDailyHours,
		&emp.Position.Sector.ID, &emp.Position.Sector.Name,
	)
	return emp, err
}

func (s *Store) ListEmployees(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, "SELECT"+employeeColumns+employeeJoins+" ORDER BY e.last_name, e.first_name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (s *Store) GetEmployee(ctx context.Context, id int64) (*Employee, error) {
	emp, err := scanEmployee(s.DB.QueryRow(ctx, "SELECT"+employeeColumns+employeeJoins+" WHERE e.id = $1", id))
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *Store) GetEmployeeByDNI(ctx context.Context, dni int) (*Employee, error) {
	emp, err := scanEmployee(s.DB.QueryRow(ctx, "SELECT"+employeeColumns+employeeJoins+" WHERE e.dni = $1", dni))
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

// CreateEmployee inserts the employee, provisions the login account with the
// EMPLOYEE role and opens the first employment-history entry, all in one
// transaction.
func (s *Store) CreateEmployee(ctx context.Context, emp Employee, passwordHash string) (int64, error) {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id int64
	err = tx.QueryRow(ctx, `
    INSERT INTO employees (dni, first_name, last_name, email, phone, address, birth_date, hire_date, position_id, is_supervisor)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,false)
    RETURNING id
  `, emp.DNI, emp.FirstName, emp.LastName, emp.Email, emp.Phone, emp.Address, emp.BirthDate, emp.HireDate, emp.Position.ID).Scan(&id)
	if err != nil {
		return 0, err
	}

	if _, err := tx.Exec(ctx, `
    INSERT INTO employment_history (employee_id, position_id, started_at)
    VALUES ($1, $2, CURRENT_DATE)
  `, id, emp.Position.ID); err != nil {
		return 0, err
	}

	if _, err := tx.Exec(ctx, `
    INSERT INTO accounts (dni, password_hash, role)
    VALUES ($1, $2, $3)
  `, emp.DNI, passwordHash, auth.RoleEmployee); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateEmployee rewrites the profile; a position change closes the open
// history entry and opens a new one dated today.
func (s *Store) UpdateEmployee(ctx context.Context, id int64, emp Employee) error {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var currentPositionID int64
	if err := tx.QueryRow(ctx, "SELECT position_id FROM employees WHERE id = $1", id).Scan(&currentPositionID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `
    UPDATE employees
    SET dni = $2, first_name = $3, last_name = $4, email = $5, phone = $6,
        address = $7, birth_date = $8, hire_date = $9, position_id = $10
    WHERE id = $1
  `, id, emp.DNI, emp.FirstName, emp.LastName, emp.Email, emp.Phone, emp.Address, emp.BirthDate, emp.HireDate, emp.Position.ID); err != nil {
		return err
	}

	if currentPositionID != emp.Position.ID {
		if _, err := tx.Exec(ctx, `
      UPDATE employment_history SET ended_at = CURRENT_DATE
      WHERE employee_id = $1 AND ended_at IS NULL
    `, id); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `
      INSERT INTO employment_history (employee_id, position_id, started_at)
      VALUES ($1, $2, CURRENT_DATE)
    `, id, emp.Position.ID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// DeleteEmployee removes the employee; accounts, attendance, requests and
// history rows go with it via FK cascade.
func (s *Store) DeleteEmployee(ctx context.Context, id int64) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM employees WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
