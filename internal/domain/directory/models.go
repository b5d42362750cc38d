package directory

import (
	"errors"
	"time"
)

var (
	ErrPositionInUse           = errors.New("position still has employees assigned")
	ErrSupervisorOutsideSector = errors.New("supervisor does not belong to the sector")
)

type Sector struct {
	ID   int64
	Name string
}

type Position struct {
	ID            int64
	Name          string
	Sector        Sector
	HourlyRate    float64
	MinDailyHours float64
}

type Employee struct {
	ID           int64
	DNI          int
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Address      string
	BirthDate    time.Time
	HireDate     time.Time
	Position     Position
	IsSupervisor bool
}

// HistoryEntry is one tenure span in a position; EndedAt is nil while the
// employee still holds the position.
type HistoryEntry struct {
	ID        int64
	Position  Position
	StartedAt time.Time
	EndedAt   *time.Time
}

// SectorDetail is the sector→positions→employees projection consumed by the
// sector and supervisor screens.
type SectorDetail struct {
	Sector
	Positions []PositionDetail
}

type PositionDetail struct {
	ID        int64
	Name      string
	Employees []Employee
}
