package reports

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	sheetEmployees   = "Empleados"
	sheetSectors     = "Sectores"
	sheetSupervisors = "Supervisores"
)

// ExportXLSX renders the report as a three-sheet workbook.
func ExportXLSX(report Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetEmployees); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(sheetSectors); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(sheetSupervisors); err != nil {
		return nil, err
	}

	header := []any{"DNI", "Apellido", "Nombre", "Sector", "Puesto", "Rol", "Asistencias", "Asistencia %", "Sueldo neto"}
	if err := setRow(f, sheetEmployees, 1, header); err != nil {
		return nil, err
	}
	for i, row := range report.Rows {
		values := []any{
			row.Employee.DNI, row.Employee.LastName, row.Employee.FirstName,
			row.Employee.Position.Sector.Name, row.Employee.Position.Name,
			row.RoleLabel, row.AttendanceDays, row.AttendancePercent, row.NetSalary,
		}
		if err := setRow(f, sheetEmployees, i+2, values); err != nil {
			return nil, err
		}
	}

	if err := setRow(f, sheetSectors, 1, []any{"Sector", "Puesto", "Empleados", "Costo"}); err != nil {
		return nil, err
	}
	line := 2
	for _, sector := range report.Sectors {
		for _, position := range sector.Positions {
			if err := setRow(f, sheetSectors, line, []any{sector.Sector, position.Position, position.Employees, position.Total}); err != nil {
				return nil, err
			}
			line++
		}
		if err := setRow(f, sheetSectors, line, []any{sector.Sector, "TOTAL", sector.Employees, sector.Total}); err != nil {
			return nil, err
		}
		line++
	}

	if err := setRow(f, sheetSupervisors, 1, []any{"DNI", "Supervisor", "Sector", "Empleados a cargo"}); err != nil {
		return nil, err
	}
	for i, supervisor := range report.Supervisors {
		values := []any{supervisor.DNI, supervisor.FullName, supervisor.Sector, supervisor.Supervised}
		if err := setRow(f, sheetSupervisors, i+2, values); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell := fmt.Sprintf("A%d", row)
	return f.SetSheetRow(sheet, cell, &values)
}
