package reportshandler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"adminrec/internal/domain/auth"
	"adminrec/internal/domain/reports"
	"adminrec/internal/requestctx"
	"adminrec/internal/transport/http/api"
	"adminrec/internal/transport/http/middleware"
	"adminrec/internal/transport/http/shared"
)

type Handler struct {
	Service *reports.Service
}

func NewHandler(service *reports.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Use(middleware.RequirePermission(auth.PermGenerateReports))
		r.Get("/costs", h.handleCosts)
		r.Get("/costs/export", h.handleExport)
	})
}

type employeeRowDTO struct {
	Empleado             shared.EmployeeDTO `json:"empleado"`
	Rol                  string             `json:"rol"`
	Asistencias          int                `json:"asistencias"`
	PorcentajeAsistencia float64            `json:"porcentajeAsistencia"`
	SueldoNeto           float64            `json:"sueldoNeto"`
}

type positionCostDTO struct {
	NombrePuesto string  `json:"nombrePuesto"`
	Empleados    int     `json:"empleados"`
	Costo        float64 `json:"costo"`
}

type sectorCostDTO struct {
	NombreSector string            `json:"nombreSector"`
	Empleados    int               `json:"empleados"`
	Costo        float64           `json:"costo"`
	Puestos      []positionCostDTO `json:"puestos"`
}

type supervisorDTO struct {
	DNI             int    `json:"dni"`
	NombreCompleto  string `json:"nombreCompleto"`
	NombreSector    string `json:"nombreSector"`
	EmpleadosACargo int    `json:"empleadosACargo"`
}

type reportDTO struct {
	Desde          string           `json:"desde"`
	Hasta          string           `json:"hasta"`
	DiasLaborables int              `json:"diasLaborables"`
	CostoTotal     float64          `json:"costoTotal"`
	Empleados      []employeeRowDTO `json:"empleados"`
	Sectores       []sectorCostDTO  `json:"sectores"`
	Supervisores   []supervisorDTO  `json:"supervisores"`
}

func toReportDTO(report reports.Report) reportDTO {
	dto := reportDTO{
		Desde:          shared.FormatDate(report.From),
		Hasta:          shared.FormatDate(report.To),
		DiasLaborables: report.WorkingDays,
		CostoTotal:     report.TotalCost,
		Empleados:      make([]employeeRowDTO, 0, len(report.Rows)),
		Sectores:       make([]sectorCostDTO, 0, len(report.Sectors)),
		Supervisores:   make([]supervisorDTO, 0, len(report.Supervisors)),
	}
	for _, row := range report.Rows {
		dto.Empleados = append(dto.Empleados, employeeRowDTO{
			Empleado:             shared.ToEmployeeDTO(row.Employee),
			Rol:                  row.RoleLabel,
			Asistencias:          row.AttendanceDays,
			PorcentajeAsistencia: row.AttendancePercent,
			SueldoNeto:           row.NetSalary,
		})
	}
	for _, sector := range report.Sectors {
		item := sectorCostDTO{
			NombreSector: sector.Sector,
			Empleados:    sector.Employees,
			Costo:        sector.Total,
			Puestos:      make([]positionCostDTO, 0, len(sector.Positions)),
		}
		for _, position := range sector.Positions {
			item.Puestos = append(item.Puestos, positionCostDTO{
				NombrePuesto: position.Position,
				Empleados:    position.Employees,
				Costo:        position.Total,
			})
		}
		dto.Sectores = append(dto.Sectores, item)
	}
	for _, supervisor := range report.Supervisors {
		dto.Supervisores = append(dto.Supervisores, supervisorDTO{
			DNI:             supervisor.DNI,
			NombreCompleto:  supervisor.FullName,
			NombreSector:    supervisor.Sector,
			EmpleadosACargo: supervisor.Supervised,
		})
	}
	return dto
}

// parseRange validates the desde/hasta query pair.
func parseRange(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	v := shared.NewValidator()
	from, fromOK := v.Date("desde", r.URL.Query().Get("desde"))
	to, toOK := v.Date("hasta", r.URL.Query().Get("hasta"))
	if fromOK && toOK {
		v.DateOrder("desde", from, "hasta", to)
	}
	if v.Reject(w) {
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

func (h *Handler) handleCosts(w http.ResponseWriter, r *http.Request) {
	from, to, ok := parseRange(w, r)
	if !ok {
		return
	}

	report, err := h.Service.Costs(r.Context(), from, to)
	if err != nil {
		slog.Error("cost report failed", "err", err, "requestId", requestctx.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	api.Success(w, map[string]any{"reporte": toReportDTO(report)})
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	from, to, ok := parseRange(w, r)
	if !ok {
		return
	}

	report, err := h.Service.Costs(r.Context(), from, to)
	if err != nil {
		slog.Error("cost export failed", "err", err, "requestId", requestctx.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	workbook, err := reports.ExportXLSX(report)
	if err != nil {
		slog.Error("cost export failed", "err", err, "requestId", requestctx.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	filename := fmt.Sprintf("costos-%s-%s.xlsx", shared.FormatDate(from), shared.FormatDate(to))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(workbook); err != nil {
		slog.Warn("write export failed", "err", err)
	}
}
