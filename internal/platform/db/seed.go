package db

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adminrec/internal/domain/auth"
	"adminrec/internal/platform/config"
)

// Seed guarantees a usable admin login and, when enabled, a small demo
// data set. Every step is idempotent.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	sectorID, err := ensureSector(ctx, pool, "Administración")
	if err != nil {
		return err
	}
	positionID, err := ensurePosition(ctx, pool, "Administrador", sectorID, 1500, 8)
	if err != nil {
		return err
	}

	password := cfg.SeedAdminPassword
	if password == "" {
		// development fallback, Validate() rejects this in production
		password = "Admin1234"
	}
	if err := ensureAdminEmployee(ctx, pool, cfg.SeedAdminDNI, positionID, password); err != nil {
		return err
	}

	if cfg.SeedDemoData {
		return seedDemoData(ctx, pool)
	}
	return nil
}

func ensureSector(ctx context.Context, pool *pgxpool.Pool, name string) (int64, error) {
	var id int64
	err := pool.QueryRow(ctx, "SELECT id FROM sectors WHERE name = $1", name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, err
	}
	err = pool.QueryRow(ctx, "INSERT INTO sectors (name) VALUES ($1) RETURNING id", name).Scan(&id)
	return id, err
}

func ensurePosition(ctx context.Context, pool *pgxpool.Pool, name string, sectorID int64, hourlyRate, minHours float64) (int64, error) {
	var id int64
	err := pool.QueryRow(ctx, "SELECT id FROM positions WHERE name = $1 AND sector_id = $2", name, sectorID).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, err
	}
	err = pool.QueryRow(ctx, `
    INSERT INTO positions (name, sector_id, hourly_rate, min_daily_hours)
    VALUES ($1, $2, $3, $4) RETURNING id
  `, name, sectorID, hourlyRate, minHours).Scan(&id)
	return id, err
}

func ensureAdminEmployee(ctx context.Context, pool *pgxpool.Pool, dni int, positionID int64, password string) error {
	var employeeID int64
	err := pool.QueryRow(ctx, "SELECT id FROM employees WHERE dni = $1", dni).Scan(&employeeID)
	if errors.Is(err, pgx.ErrNoRows) {
		birth := time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)
		hire := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
		err = pool.QueryRow(ctx, `
      INSERT INTO employees (dni, first_name, last_name, email, phone, address, birth_date, hire_date, position_id, is_supervisor)
      VALUES ($1, 'Admin', 'Sistema', 'admin@adminrec.local', '0000000000', 'Oficina central', $2, $3, $4, false)
      RETURNING id
    `, dni, birth, hire, positionID).Scan(&employeeID)
		if err != nil {
			return err
		}
		_, err = pool.Exec(ctx, `
      INSERT INTO employment_history (employee_id, position_id, started_at)
      VALUES ($1, $2, $3)
    `, employeeID, positionID, hire)
		if err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	var exists bool
	if err := pool.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM accounts WHERE dni = $1)", dni).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
    INSERT INTO accounts (dni, password_hash, role) VALUES ($1, $2, $3)
  `, dni, hash, auth.RoleAdmin)
	return err
}

func seedDemoData(ctx context.Context, pool *pgxpool.Pool) error {
	sectors := map[string][]struct {
		name     string
		rate     float64
		minHours float64
	}{
		"Ventas":   {{"Vendedor", 1000, 8}, {"Cajero", 1200, 6}},
		"Depósito": {{"Operario", 900, 8}},
	}

	for sectorName, positions := range sectors {
		sectorID, err := ensureSector(ctx, pool, sectorName)
		if err != nil {
			return err
		}
		for _, position := range positions {
			if _, err := ensurePosition(ctx, pool, position.name, sectorID, position.rate, position.minHours); err != nil {
				return err
			}
		}
	}
	return nil
}
