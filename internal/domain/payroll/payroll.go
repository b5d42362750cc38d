package payroll

import (
	"time"

	"github.com/google/uuid"
)

// Payment is a settled salary for one employee and period. Employee and
// position figures are snapshotted at settlement time so later raises or
// transfers do not rewrite history.
type Payment struct {
	ID            uuid.UUID
	EmployeeID    int64
	DNI           int
	FirstName     string
	LastName      string
	PositionName  string
	SectorName    string
	Period        Period
	DaysWorked    int
	MinDailyHours float64
	HourlyRate    float64
	NetSalary     float64
	CreatedAt     time.Time
}
