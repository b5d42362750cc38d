package directoryhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"adminrec/internal/domain/directory"
	"adminrec/internal/transport/http/api"
	"adminrec/internal/transport/http/shared"
)

type sectorDetailDTO struct {
	ID      int64               `json:"id"`
	Nombre  string              `json:"nombre"`
	Puestos []positionDetailDTO `json:"puestos"`
}

type positionDetailDTO struct {
	ID        int64                `json:"id"`
	Nombre    string               `json:"nombre"`
	Empleados []shared.EmployeeDTO `json:"empleados"`
}

func toSectorDetailDTO(detail directory.SectorDetail) sectorDetailDTO {
	puestos := make([]positionDetailDTO, 0, len(detail.Positions))
	for _, position := range detail.Positions {
		puestos = append(puestos, positionDetailDTO{
			ID:        position.ID,
			Nombre:    position.Name,
			Empleados: shared.ToEmployeeDTOs(position.Employees),
		})
	}
	return sectorDetailDTO{ID: detail.ID, Nombre: detail.Name, Puestos: puestos}
}

func (h *Handler) handleListSectorDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.Store.ListSectorDetails(r.Context())
	if err != nil {
		serverError(w, r, "list sectors failed", err)
		return
	}
	sectores := make([]sectorDetailDTO, 0, len(details))
	for _, detail := range details {
		sectores = append(sectores, toSectorDetailDTO(detail))
	}
	api.Success(w, map[string]any{"sectores": sectores})
}

func (h *Handler) handleGetSectorDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "Identificador inválido")
		return
	}
	detail, err := h.Store.GetSectorDetail(r.Context(), id)
	if err != nil {
		if notFound(err) {
			api.Fail(w, http.StatusNotFound, "Sector no encontrado")
			return
		}
		serverError(w, r, "get sector failed", err)
		return
	}
	api.Success(w, map[string]any{"sector": toSectorDetailDTO(*detail)})
}

type assignSupervisorsRequest struct {
	IDsSupervisores []int64 `json:"idsSupervisores"`
}

// handleAssignSupervisors replaces the sector's whole supervisor set.
func (h *Handler) handleAssignSupervisors(w http.ResponseWriter, r *http.Request) {
	sectorID, ok := pathID(r, "sectorId")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "Identificador inválido")
		return
	}

	var body assignSupervisorsRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.Fail(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	detail, err := h.Store.UpdateSectorSupervisors(r.Context(), sectorID, body.IDsSupervisores)
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrSupervisorOutsideSector):
			api.Fail(w, http.StatusBadRequest, "Todos los supervisores deben pertenecer al sector")
		case notFound(err):
			api.Fail(w, http.StatusNotFound, "Sector no encontrado")
		default:
			serverError(w, r, "assign supervisors failed", err)
		}
		return
	}
	api.Success(w, map[string]any{
		"mensaje": "Supervisores asignados correctamente",
		"sector":  toSectorDetailDTO(*detail),
	})
}
