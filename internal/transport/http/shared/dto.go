package shared

import (
	"adminrec/internal/domain/directory"
)

// Wire DTOs for the Spanish JSON contract. Domain models keep English names;
// the mapping lives here so every handler emits the same shapes.

type SectorDTO struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

type PositionDTO struct {
	ID           int64     `json:"id"`
	Nombre       string    `json:"nombre"`
	Sector       SectorDTO `json:"sector"`
	ValorHora    float64   `json:"valorHora"`
	HorasMinimas float64   `json:"horasMinimasTrabajoDiario"`
}

type EmployeeDTO struct {
	ID                   int64       `json:"id"`
	Apellido             string      `json:"apellido"`
	Nombre               string      `json:"nombre"`
	DNI                  int         `json:"dni"`
	Correo               string      `json:"correo"`
	Domicilio            string      `json:"domicilio"`
	FechaNacimiento      string      `json:"fechaNacimiento"`
	FechaContratacion    string      `json:"fechaContratacion"`
	Telefono             string      `json:"telefono"`
	Puesto               PositionDTO `json:"puesto"`
	EsSupervisorDeSector bool        `json:"esSupervisorDeSector"`
}

func ToSectorDTO(sector directory.Sector) SectorDTO {
	return SectorDTO{ID: sector.ID, Nombre: sector.Name}
}

func ToPositionDTO(position directory.Position) PositionDTO {
	return PositionDTO{
		ID:           position.ID,
		Nombre:       position.Name,
		Sector:       ToSectorDTO(position.Sector),
		ValorHora:    position.HourlyRate,
		HorasMinimas: position.MinDailyHours,
	}
}

func ToEmployeeDTO(employee directory.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:                   employee.ID,
		Apellido:             employee.LastName,
		Nombre:               employee.FirstName,
		DNI:                  employee.DNI,
		Correo:               employee.Email,
		Domicilio:            employee.Address,
		FechaNacimiento:      FormatDate(employee.BirthDate),
		FechaContratacion:    FormatDate(employee.HireDate),
		Telefono:             employee.Phone,
		Puesto:               ToPositionDTO(employee.Position),
		EsSupervisorDeSector: employee.IsSupervisor,
	}
}

func ToEmployeeDTOs(employees []directory.Employee) []EmployeeDTO {
	result := make([]EmployeeDTO, 0, len(employees))
	for _, employee := range employees {
		result = append(result, ToEmployeeDTO(employee))
	}
	return result
}
