package directoryhandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"adminrec/internal/domain/directory"
	"adminrec/internal/transport/http/api"
	"adminrec/internal/transport/http/shared"
)

type positionPayload struct {
	Nombre string `json:"nombre"`
	Sector struct {
		ID int64 `json:"id"`
	} `json:"sector"`
	ValorHora    float64 `json:"valorHora"`
	HorasMinimas float64 `json:"horasMinimasTrabajoDiario"`
}

func (p positionPayload) validate(v *shared.Validator) (directory.Position, bool) {
	trimmed := strings.TrimSpace(p.Nombre)
	switch {
	case trimmed == "":
		v.Add("nombre", "El nombre del puesto es obligatorio")
	case len([]rune(trimmed)) > 50:
		v.Add("nombre", "El nombre del puesto no puede superar los 50 caracteres")
	}
	if p.Sector.ID <= 0 {
		v.Add("sector", "El sector es obligatorio")
	}
	if p.ValorHora <= 0 {
		v.Add("valorHora", "El valor hora debe ser mayor a 0")
	}
	if p.HorasMinimas <= 0 || p.HorasMinimas > 24 {
		v.Add("horasMinimasTrabajoDiario", "Las horas mínimas diarias deben estar entre 0 y 24")
	}
	if v.HasErrors() {
		return directory.Position{}, false
	}
	return directory.Position{
		Name:          trimmed,
		Sector:        directory.Sector{ID: p.Sector.ID},
		HourlyRate:    p.ValorHora,
		MinDailyHours: p.HorasMinimas,
	}, true
}

func (h *Handler) handleListPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.Store.ListPositions(r.Context())
	if err != nil {
		serverError(w, r, "list positions failed", err)
		return
	}
	puestos := make([]shared.PositionDTO, 0, len(positions))
	for _, position := range positions {
		puestos = append(puestos, shared.ToPositionDTO(position))
	}
	api.Success(w, map[string]any{"puestos": puestos})
}

func (h *Handler) handleCreatePosition(w http.ResponseWriter, r *http.Request) {
	var payload positionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	v := shared.NewValidator()
	position, ok := payload.validate(v)
	if v.Reject(w) || !ok {
		return
	}

	id, err := h.Store.CreatePosition(r.Context(), position)
	if err != nil {
		serverError(w, r, "create position failed", err)
		return
	}

	created, err := h.Store.GetPosition(r.Context(), id)
	if err != nil {
		serverError(w, r, "create position failed", err)
		return
	}
	api.Created(w, map[string]any{
		"mensaje": "Puesto creado correctamente",
		"puesto":  shared.ToPositionDTO(*created),
	})
}

func (h *Handler) handleUpdatePosition(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "Identificador inválido")
		return
	}

	var payload positionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	v := shared.NewValidator()
	position, okPayload := payload.validate(v)
	if v.Reject(w) || !okPayload {
		return
	}

	if err := h.Store.UpdatePosition(r.Context(), id, position); err != nil {
		if notFound(err) {
			api.Fail(w, http.StatusNotFound, "Puesto no encontrado")
			return
		}
		serverError(w, r, "update position failed", err)
		return
	}

	updated, err := h.Store.GetPosition(r.Context(), id)
	if err != nil {
		serverError(w, r, "update position failed", err)
		return
	}
	api.Success(w, map[string]any{
		"mensaje": "Puesto actualizado correctamente",
		"puesto":  shared.ToPositionDTO(*updated),
	})
}

func (h *Handler) handleDeletePosition(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "Identificador inválido")
		return
	}
	if err := h.Store.DeletePosition(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, directory.ErrPositionInUse):
			api.Fail(w, http.StatusConflict, "El puesto tiene empleados asignados")
		case notFound(err):
			api.Fail(w, http.StatusNotFound, "Puesto no encontrado")
		default:
			serverError(w, r, "delete position failed", err)
		}
		return
	}
	api.Success(w, map[string]any{"mensaje": "Puesto eliminado correctamente"})
}
