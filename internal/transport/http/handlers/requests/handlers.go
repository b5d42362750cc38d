package requestshandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5"

	"adminrec/internal/domain/auth"
	"adminrec/internal/domain/requests"
	"adminrec/internal/requestctx"
	"adminrec/internal/transport/http/api"
	"adminrec/internal/transport/http/middleware"
	"adminrec/internal/transport/http/shared"
)

type Handler struct {
	Service *requests.Service
}

func NewHandler(service *requests.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/requests", func(r chi.Router) {
		r.With(middleware.RequirePermission(auth.PermCreateRequest)).Get("/", h.handleListOwn)
		r.With(middleware.RequirePermission(auth.PermCreateRequest)).Post("/", h.handleCreate)
		r.With(middleware.RequirePermission(auth.PermManageRequests)).Get("/all", h.handleListSector)
		r.With(middleware.RequirePermission(auth.PermManageRequests)).Put("/{id}", h.handleDecide)
	})
}

type requestDTO struct {
	ID              int64              `json:"id"`
	TipoSolicitud   string             `json:"tipoSolicitud"`
	DuracionDias    int                `json:"duracionDias"`
	Motivo          string             `json:"motivo"`
	EstadoSolicitud string             `json:"estadoSolicitud"`
	Empleado        shared.EmployeeDTO `json:"empleado"`
}

func toRequestDTO(req requests.Request) requestDTO {
	return requestDTO{
		ID:              req.ID,
		TipoSolicitud:   req.Type,
		DuracionDias:    req.DurationDays,
		Motivo:          req.Reason,
		EstadoSolicitud: req.Status,
		Empleado:        shared.ToEmployeeDTO(req.Employee),
	}
}

func toRequestDTOs(reqs []requests.Request) []requestDTO {
	result := make([]requestDTO, 0, len(reqs))
	for _, req := range reqs {
		result = append(result, toRequestDTO(req))
	}
	return result
}

func serverError(w http.ResponseWriter, r *http.Request, action string, err error) {
	slog.Error(action, "err", err, "requestId", requestctx.GetRequestID(r.Context()))
	api.Fail(w, http.StatusInternalServerError, "Error interno del servidor")
}

func (h *Handler) handleListOwn(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "Autenticación requerida")
		return
	}

	list, err := h.Service.ListForEmployee(r.Context(), user.DNI)
	if err != nil {
		serverError(w, r, "list own requests failed", err)
		return
	}
	api.Success(w, map[string]any{"solicitudes": toRequestDTOs(list)})
}

// handleListSector serves the supervisor inbox: every request from the
// supervisor's own sector.
func (h *Handler) handleListSector(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "Autenticación requerida")
		return
	}

	list, err := h.Service.ListForSupervisor(r.Context(), user.DNI)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			api.Fail(w, http.StatusNotFound, "Empleado no encontrado")
			return
		}
		serverError(w, r, "list sector requests failed", err)
		return
	}
	api.Success(w, map[string]any{"solicitudes": toRequestDTOs(list)})
}

type createRequestBody struct {
	TipoSolicitud string `json:"tipoSolicitud"`
	DuracionDias  int    `json:"duracionDias"`
	Motivo        string `json:"motivo"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "Autenticación requerida")
		return
	}

	var body createRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.Fail(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	v := shared.NewValidator()
	if !requests.ValidType(body.TipoSolicitud) {
		v.Add("tipoSolicitud", "El tipo de solicitud no es válido")
	}
	v.RequestDuration("duracionDias", body.DuracionDias)
	v.RequestReason("motivo", body.Motivo)
	if v.Reject(w) {
		return
	}

	created, err := h.Service.Create(r.Context(), user.DNI, body.TipoSolicitud, body.DuracionDias, body.Motivo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			api.Fail(w, http.StatusNotFound, "Empleado no encontrado")
			return
		}
		serverError(w, r, "create request failed", err)
		return
	}
	api.Created(w, map[string]any{
		"mensaje":   "Solicitud enviada correctamente",
		"solicitud": toRequestDTO(*created),
	})
}

type decideRequestBody struct {
	Estado string `json:"estado"`
}

func (h *Handler) handleDecide(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		api.Fail(w, http.StatusBadRequest, "Identificador inválido")
		return
	}

	var body decideRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.Fail(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	decided, err := h.Service.Decide(r.Context(), id, body.Estado)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			api.Fail(w, http.StatusNotFound, "Solicitud no encontrada")
		case errors.Is(err, requests.ErrInvalidStatus):
			api.Fail(w, http.StatusBadRequest, "El estado debe ser ACEPTADO o RECHAZADO")
		case errors.Is(err, requests.ErrTerminalState):
			api.Fail(w, http.StatusUnprocessableEntity, "La solicitud ya fue resuelta")
		default:
			serverError(w, r, "decide request failed", err)
		}
		return
	}
	api.Success(w, map[string]any{
		"mensaje":   "Solicitud actualizada correctamente",
		"solicitud": toRequestDTO(*decided),
	})
}
