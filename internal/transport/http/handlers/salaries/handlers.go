package salarieshandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"adminrec/internal/domain/attendance"
	"adminrec/internal/domain/auth"
	"adminrec/internal/domain/directory"
	"adminrec/internal/domain/payroll"
	"adminrec/internal/requestctx"
	"adminrec/internal/transport/http/api"
	"adminrec/internal/transport/http/middleware"
	"adminrec/internal/transport/http/shared"
)

type Handler struct {
	Directory  *directory.Store
	Attendance *attendance.Store
	Payroll    *payroll.Service
}

func NewHandler(dir *directory.Store, att *attendance.Store, pay *payroll.Service) *Handler {
	return &Handler{Directory: dir, Attendance: att, Payroll: pay}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/salaries", func(r chi.Router) {
		r.Use(middleware.RequirePermission(auth.PermCalculateSalaries))
		r.Get("/", h.handleListEmployees)
		r.Get("/payments", h.handleListPayments)
		r.Post("/payments", h.handleSettle)
		r.Get("/payments/{id}/receipt", h.handleReceipt)
		r.Get("/{employeeId}", h.handleEmployeeAttendance)
	})
}

type paymentDTO struct {
	ID             string  `json:"id"`
	IDEmpleado     int64   `json:"idEmpleado"`
	DNI            int     `json:"dni"`
	NombreCompleto string  `json:"nombreCompleto"`
	NombrePuesto   string  `json:"nombrePuesto"`
	NombreSector   string  `json:"nombreSector"`
	Periodo        string  `json:"periodo"`
	DiasTrabajados int     `json:"diasTrabajados"`
	HorasMinimas   float64 `json:"horasMinimasTrabajoDiario"`
	ValorHora      float64 `json:"valorHora"`
	SueldoNeto     float64 `json:"sueldoNeto"`
	Fecha          string  `json:"fecha"`
}

func toPaymentDTO(p payroll.Payment) paymentDTO {
	return paymentDTO{
		ID:             p.ID.String(),
		IDEmpleado:     p.EmployeeID,
		DNI:            p.DNI,
		NombreCompleto: p.FirstName + " " + p.LastName,
		NombrePuesto:   p.PositionName,
		NombreSector:   p.SectorName,
		Periodo:        p.Period.String(),
		DiasTrabajados: p.DaysWorked,
		HorasMinimas:   p.MinDailyHours,
		ValorHora:      p.HourlyRate,
		SueldoNeto:     p.NetSalary,
		Fecha:          shared.FormatDate(p.CreatedAt),
	}
}

func serverError(w http.ResponseWriter, r *http.Request, action string, err error) {
	slog.Error(action, "err", err, "requestId", requestctx.GetRequestID(r.Context()))
	api.Fail(w, http.StatusInternalServerError, "Error interno del servidor")
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Directory.ListEmployees(r.Context())
	if err != nil {
		serverError(w, r, "list salary employees failed", err)
		return
	}
	api.Success(w, map[string]any{"empleados": shared.ToEmployeeDTOs(employees)})
}

func (h *Handler) handleEmployeeAttendance(w http.ResponseWriter, r *http.Request) {
	id, err := shared.ParseID(chi.URLParam(r, "employeeId"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "Identificador inválido")
		return
	}

	if _, err := h.Directory.GetEmployee(r.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			api.Fail(w, http.StatusNotFound, "Empleado no encontrado")
			return
		}
		serverError(w, r, "employee attendance failed", err)
		return
	}

	records, err := h.Attendance.ListByEmployeeID(r.Context(), id)
	if err != nil {
		serverError(w, r, "employee attendance failed", err)
		return
	}

	asistencias := make([]map[string]any, 0, len(records))
	for _, record := range records {
		asistencias = append(asistencias, map[string]any{
			"id":    record.ID,
			"fecha": shared.FormatDate(record.Day),
		})
	}
	api.Success(w, map[string]any{"asistencias": asistencias})
}

type settleRequest struct {
	IDEmpleado int64  `json:"idEmpleado"`
	Periodo    string `json:"periodo"`
}

// handleSettle recomputes the salary server-side; the client never submits
// amounts.
func (h *Handler) handleSettle(w http.ResponseWriter, r *http.Request) {
	var body settleRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.Fail(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	v := shared.NewValidator()
	if body.IDEmpleado <= 0 {
		v.Add("idEmpleado", "El empleado es obligatorio")
	}
	v.Period("periodo", body.Periodo)
	if v.Reject(w) {
		return
	}

	period, err := payroll.ParsePeriod(body.Periodo)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "El periodo debe tener el formato MM/YYYY")
		return
	}

	payment, err := h.Payroll.Settle(r.Context(), body.IDEmpleado, period)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			api.Fail(w, http.StatusNotFound, "Empleado no encontrado")
			return
		}
		serverError(w, r, "settle salary failed", err)
		return
	}
	api.Created(w, map[string]any{
		"mensaje": "Sueldo calculado correctamente",
		"pago":    toPaymentDTO(*payment),
	})
}

func (h *Handler) handleListPayments(w http.ResponseWriter, r *http.Request) {
	page := shared.ParsePagination(r, 50, 200)
	payments, err := h.Payroll.List(r.Context(), page.Limit, page.Offset)
	if err != nil {
		serverError(w, r, "list payments failed", err)
		return
	}
	pagos := make([]paymentDTO, 0, len(payments))
	for _, payment := range payments {
		pagos = append(pagos, toPaymentDTO(payment))
	}
	api.Success(w, map[string]any{"pagos": pagos})
}

func (h *Handler) handleReceipt(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "Identificador inválido")
		return
	}

	payment, err := h.Payroll.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			api.Fail(w, http.StatusNotFound, "Pago no encontrado")
			return
		}
		serverError(w, r, "payment receipt failed", err)
		return
	}

	pdf, err := payroll.Receipt(*payment)
	if err != nil {
		serverError(w, r, "payment receipt failed", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=recibo-%s.pdf", payment.ID))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		slog.Warn("write receipt failed", "err", err)
	}
}
