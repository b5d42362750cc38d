package authhandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adminrec/internal/domain/auth"
	"adminrec/internal/requestctx"
	"adminrec/internal/transport/http/api"
	"adminrec/internal/transport/http/shared"
)

type Handler struct {
	Service *auth.Service
}

func NewHandler(service *auth.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/login", h.handleLogin)
}

type loginRequest struct {
	// The form submits the DNI as a number but string payloads show up too.
	DNI        json.Number `json:"dni"`
	Contrasena string      `json:"contrasena"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.Fail(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	v := shared.NewValidator()
	v.DNI("dni", body.DNI.String())
	v.Required("contrasena", body.Contrasena, "La contraseña es obligatoria")
	if v.Reject(w) {
		return
	}

	dni, err := shared.ParseDNI(body.DNI.String())
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "El DNI debe ser un número válido")
		return
	}

	result, err := h.Service.Login(r.Context(), dni, body.Contrasena)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			api.Fail(w, http.StatusBadRequest, "Error al iniciar Sesion")
			return
		}
		slog.Error("login failed", "err", err, "requestId", requestctx.GetRequestID(r.Context()))
		api.Fail(w, http.StatusInternalServerError, "Error interno del servidor")
		return
	}

	api.Success(w, map[string]any{
		"mensaje":                "Inicio de sesión exitoso",
		"token":                  result.Token,
		"role":                   result.Role,
		"employee_complete_name": result.FullName,
	})
}
