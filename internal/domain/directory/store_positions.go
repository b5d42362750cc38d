package directory

import (
	"context"

	"github.com/jackc/pgx/v5"
)

func (s *Store) ListPositions(ctx context.Context) ([]Position, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT p.id, p.name, p.hourly_rate, p.min_daily_hours, s.id, s.name
    FROM positions p
    JOIN sectors s ON p.sector_id = s.id
    ORDER BY s.name, p.name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var positions []Position
	for rows.Next() {
		var pos Position
		if err := rows.Scan(&pos.ID, &pos.Name, &pos.HourlyRate, &pos.MinDailyHours, &pos.Sector.ID, &pos.Sector.Name); err != nil {
			return nil, err
		}
		positions = append(positions, pos)
	}
	return positions, rows.Err()
}

func (s *Store) GetPosition(ctx context.Context, id int64) (*Position, error) {
	var pos Position
	err := s.DB.QueryRow(ctx, `
    SELECT p.id, p.name, p.hourly_rate, p.min_daily_hours, s.id, s.name
    FROM positions p
    JOIN sectors s ON p.sector_id = s.id
    WHERE p.id = $1
  `, id).Scan(&pos.ID, &pos.Name, &pos.HourlyRate, &pos.MinDailyHours, &pos.Sector.ID, &pos.Sector.Name)
	if err != nil {
		return nil, err
	}
	return &pos, nil
}

func (s *Store) CreatePosition(ctx context.Context, pos Position) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO positions (name, sector_id, hourly_rate, min_daily_hours)
    VALUES ($1, $2, $3, $4)
    RETURNING id
  `, pos.Name, pos.Sector.ID, pos.HourlyRate, pos.MinDailyHours).Scan(&id)
	return id, err
}

func (s *Store) UpdatePosition(ctx context.Context, id int64, pos Position) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE positions
    SET name = $2, sector_id = $3, hourly_rate = $4, min_daily_hours = $5
    WHERE id = $1
  `, id, pos.Name, pos.Sector.ID, pos.HourlyRate, pos.MinDailyHours)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeletePosition refuses while employees still hold the position.
func (s *Store) DeletePosition(ctx context.Context, id int64) error {
	var count int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM employees WHERE position_id = $1", id).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return ErrPositionInUse
	}

	tag, err := s.DB.Exec(ctx, "DELETE FROM positions WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
