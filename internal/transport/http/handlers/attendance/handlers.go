package attendancehandler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adminrec/internal/domain/attendance"
	"adminrec/internal/domain/auth"
	"adminrec/internal/requestctx"
	"adminrec/internal/transport/http/api"
	"adminrec/internal/transport/http/middleware"
	"adminrec/internal/transport/http/shared"
)

type Handler struct {
	Service *attendance.Service
}

func NewHandler(service *attendance.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/attendance", func(r chi.Router) {
		r.Use(middleware.RequirePermission(auth.PermRegisterAttendance))
		r.Post("/", h.handleRegister)
		r.Get("/all", h.handleListOwn)
	})
}

type recordDTO struct {
	ID    int64  `json:"id"`
	Fecha string `json:"fecha"`
}

func toRecordDTOs(records []attendance.Record) []recordDTO {
	result := make([]recordDTO, 0, len(records))
	for _, record := range records {
		result = append(result, recordDTO{ID: record.ID, Fecha: shared.FormatDate(record.Day)})
	}
	return result
}

// handleRegister marks today for the authenticated employee. The identity
// comes from the token, never from the body.
func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "Autenticación requerida")
		return
	}

	record, err := h.Service.RegisterToday(r.Context(), user.DNI)
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyRegistered) {
			api.Fail(w, http.StatusConflict, "Ya registraste tu asistencia hoy!")
			return
		}
		slog.Error("register attendance failed", "err", err, "requestId", requestctx.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	api.Created(w, map[string]any{
		"mensaje":    "Asistencia registrada correctamente",
		"asistencia": recordDTO{ID: record.ID, Fecha: shared.FormatDate(record.Day)},
	})
}

func (h *Handler) handleListOwn(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "Autenticación requerida")
		return
	}

	records, err := h.Service.ListForEmployee(r.Context(), user.DNI)
	if err != nil {
		slog.Error("list attendance failed", "err", err, "requestId", requestctx.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}
	api.Success(w, map[string]any{"asistencias": toRecordDTOs(records)})
}
