package directory

import (
	"context"

	"github.com/jackc/pgx/v5"

	"adminrec/internal/domain/auth"
)

func (s *Store) ListSectors(ctx context.Context) ([]Sector, error) {
	rows, err := s.DB.Query(ctx, "SELECT id, name FROM sectors ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sectors []Sector
	for rows.Next() {
		var sector Sector
		if err := rows.Scan(&sector.ID, &sector.Name); err != nil {
			return nil, err
		}
		sectors = append(sectors, sector)
	}
	return sectors, rows.Err()
}

func (s *Store) ListSectorDetails(ctx context.Context) ([]SectorDetail, error) {
	sectors, err := s.ListSectors(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]SectorDetail, 0, len(sectors))
	for _, sector := range sectors {
		detail, err := s.sectorDetail(ctx, sector)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}
	return details, nil
}

func (s *Store) GetSectorDetail(ctx context.Context, id int64) (*SectorDetail, error) {
	var sector Sector
	if err := s.DB.QueryRow(ctx, "SELECT id, name FROM sectors WHERE id = $1", id).Scan(&sector.ID, &sector.Name); err != nil {
		return nil, err
	}
	detail, err := s.sectorDetail(ctx, sector)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (s *Store) sectorDetail(ctx context.Context, sector Sector) (SectorDetail, error) {
	rows, err := s.DB.Query(ctx, "SELECT"+employeeColumns+employeeJoins+`
    WHERE s.id = $1
    ORDER BY p.name, e.last_name, e.first_name
  `, sector.ID)
	if err != nil {
		return SectorDetail{}, err
	}
	defer rows.Close()

	detail := SectorDetail{Sector: sector}
	byPosition := map[int64]int{}
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return SectorDetail{}, err
		}
		idx, seen := byPosition[emp.Position.ID]
		if !seen {
			detail.Positions = append(detail.Positions, PositionDetail{ID: emp.Position.ID, Name: emp.Position.Name})
			idx = len(detail.Positions) - 1
			byPosition[emp.Position.ID] = idx
		}
		detail.Positions[idx].Employees = append(detail.Positions[idx].Employees, emp)
	}
	if err := rows.Err(); err != nil {
		return SectorDetail{}, err
	}

	// positions without employees still show up in the sector detail
	empty, err := s.DB.Query(ctx, `
    SELECT id, name FROM positions
    WHERE sector_id = $1
    ORDER BY name
  `, sector.ID)
	if err != nil {
		return SectorDetail{}, err
	}
	defer empty.Close()
	for empty.Next() {
		var id int64
		var name string
		if err := empty.Scan(&id, &name); err != nil {
			return SectorDetail{}, err
		}
		if _, seen := byPosition[id]; !seen {
			detail.Positions = append(detail.Positions, PositionDetail{ID: id, Name: name})
			byPosition[id] = len(detail.Positions) - 1
		}
	}
	return detail, empty.Err()
}

// UpdateSectorSupervisors replaces the sector's supervisor set. Every id must
// belong to an employee of the sector. Account roles follow the flag
// (EMPLOYEE↔SUPERVISOR); ADMIN accounts are left alone.
func (s *Store) UpdateSectorSupervisors(ctx context.Context, sectorID int64, supervisorIDs []int64) (*SectorDetail, error) {
	var sector Sector
	if err := s.DB.QueryRow(ctx, "SELECT id, name FROM sectors WHERE id = $1", sectorID).Scan(&sector.ID, &sector.Name); err != nil {
		return nil, err
	}

	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := tx.Query(ctx, `
    SELECT e.id, e.dni, e.is_supervisor
    FROM employees e
    JOIN positions p ON e.position_id = p.id
    WHERE p.sector_id = $1
  `, sectorID)
	if err != nil {
		return nil, err
	}

	type member struct {
		id           int64
		dni          int
		isSupervisor bool
	}
	var members []member
	for rows.Next() {
		var m member
		if err := rows.Scan(&m.id, &m.dni, &m.isSupervisor); err != nil {
			rows.Close()
			return nil, err
		}
		members = append(members, m)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	wanted := make(map[int64]bool, len(supervisorIDs))
	for _, id := range supervisorIDs {
		wanted[id] = true
	}
	for id := range wanted {
		found := false
		for _, m := range members {
			if m.id == id {
				found = true
				break
			}
		}
		if !found {
			return nil, ErrSupervisorOutsideSector
		}
	}

	for _, m := range members {
		shouldBe := wanted[m.id]
		if m.isSupervisor == shouldBe {
			continue
		}
		if _, err := tx.Exec(ctx, "UPDATE employees SET is_supervisor = $2 WHERE id = $1", m.id, shouldBe); err != nil {
			return nil, err
		}
		role := auth.RoleEmployee
		if shouldBe {
			role = auth.RoleSupervisor
		}
		if _, err := tx.Exec(ctx, `
      UPDATE accounts SET role = $2
      WHERE dni = $1 AND role <> $3
    `, m.dni, role, auth.RoleAdmin); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	detail, err := s.sectorDetail(ctx, sector)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}
