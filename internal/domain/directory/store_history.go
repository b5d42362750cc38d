package directory

import "context"

func (s *Store) ListEmployeeHistory(ctx context.Context, employeeID int64) ([]HistoryEntry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT h.id, h.started_at, h.ended_at,
           p.id, p.name, p.hourly_rate, p.min_daily_hours,
           s.id, s.name
    FROM employment_history h
    JOIN positions p ON h.position_id = p.id
    JOIN sectors s ON p.sector_id = s.id
    WHERE h.employee_id = $1
    ORDER BY h.started_at, h.id
  `, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []HistoryEntry
	for rows.Next() {
		var entry HistoryEntry
		if err := rows.Scan(
			&entry.ID, &entry.StartedAt, &entry.EndedAt,
			&entry.Position.ID, &entry.Position.Name, &entry.Position.HourlyRate, &entry.Position.MinDailyHours,
			&entry.Position.Sector.ID, &entry.Position.Sector.Name,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
