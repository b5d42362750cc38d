package payroll

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Receipt renders a salary payment as a one-page PDF.
func Receipt(p Payment) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Recibo de sueldo")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Empleado: %s %s (DNI %d)", p.FirstName, p.LastName, p.DNI))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Puesto: %s - Sector %s", p.PositionName, p.SectorName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Periodo: %s", p.Period))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Dias trabajados: %d", p.DaysWorked))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Horas minimas diarias: %.2f", p.MinDailyHours))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Valor hora: %.2f", p.HourlyRate))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Sueldo neto: %.2f", p.NetSalary))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Emitido: %s", p.CreatedAt.Format("2006-01-02")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
