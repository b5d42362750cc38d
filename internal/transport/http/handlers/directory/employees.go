package directoryhandler

import (
	"encoding/json"
	"net/http"
	"time"

	"adminrec/internal/domain/auth"
	"adminrec/internal/domain/directory"
	"adminrec/internal/transport/http/api"
	"adminrec/internal/transport/http/shared"
)

type employeePayload struct {
	Apellido          string      `json:"apellido"`
	Nombre            string      `json:"nombre"`
	DNI               json.Number `json:"dni"`
	Correo            string      `json:"correo"`
	Domicilio         string      `json:"domicilio"`
	FechaNacimiento   string      `json:"fechaNacimiento"`
	FechaContratacion string      `json:"fechaContratacion"`
	Telefono          string      `json:"telefono"`
	Puesto            struct {
		ID int64 `json:"id"`
	} `json:"puesto"`
}

type createEmployeeRequest struct {
	Empleado   employeePayload `json:"empleado"`
	Contrasena string          `json:"contrasena"`
}

// validate runs the full form rule set and returns the domain employee when
// every field passed.
func (p employeePayload) validate(v *shared.Validator, now time.Time) (directory.Employee, bool) {
	v.PersonName("nombre", "El nombre", p.Nombre)
	v.PersonName("apellido", "El apellido", p.Apellido)
	v.DNI("dni", p.DNI.String())
	v.Email("correo", p.Correo)
	v.Address("domicilio", p.Domicilio)
	v.Phone("telefono", p.Telefono)
	birth, birthOK := v.BirthDate("fechaNacimiento", p.FechaNacimiento, now)
	hire, hireOK := v.HireDate("fechaContratacion", p.FechaContratacion, birth, now)
	if p.Puesto.ID <= 0 {
		v.Add("puesto", "El puesto es obligatorio")
	}
	if v.HasErrors() || !birthOK || !hireOK {
		return directory.Employee{}, false
	}

	dni, err := shared.ParseDNI(p.DNI.String())
	if err != nil {
		v.Add("dni", "El DNI debe ser un número válido")
		return directory.Employee{}, false
	}

	return directory.Employee{
		DNI:       dni,
		FirstName: p.Nombre,
		LastName:  p.Apellido,
		Email:     p.Correo,
		Phone:     p.Telefono,
		Address:   p.Domicilio,
		BirthDate: birth,
		HireDate:  hire,
		Position:  directory.Position{ID: p.Puesto.ID},
	}, true
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Store.ListEmployees(r.Context())
	if err != nil {
		serverError(w, r, "list employees failed", err)
		return
	}
	api.Success(w, map[string]any{"empleados": shared.ToEmployeeDTOs(employees)})
}

func (h *Handler) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "Identificador inválido")
		return
	}
	employee, err := h.Store.GetEmployee(r.Context(), id)
	if err != nil {
		if notFound(err) {
			api.Fail(w, http.StatusNotFound, "Empleado no encontrado")
			return
		}
		serverError(w, r, "get employee failed", err)
		return
	}
	api.Success(w, map[string]any{"empleado": shared.ToEmployeeDTO(*employee)})
}

func (h *Handler) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	var body createEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.Fail(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	v := shared.NewValidator()
	employee, ok := body.Empleado.validate(v, time.Now())
	v.Password("contrasena", body.Contrasena)
	if v.Reject(w) || !ok {
		return
	}

	if _, err := h.Store.GetPosition(r.Context(), employee.Position.ID); err != nil {
		if notFound(err) {
			api.Fail(w, http.StatusBadRequest, "El puesto indicado no existe")
			return
		}
		serverError(w, r, "create employee failed", err)
		return
	}

	hash, err := auth.HashPassword(body.Contrasena)
	if err != nil {
		serverError(w, r, "create employee failed", err)
		return
	}

	id, err := h.Store.CreateEmployee(r.Context(), employee, hash)
	if err != nil {
		if isUniqueViolation(err) {
			api.Fail(w, http.StatusConflict, "Ya existe un empleado con ese DNI")
			return
		}
		serverError(w, r, "create employee failed", err)
		return
	}

	created, err := h.Store.GetEmployee(r.Context(), id)
	if err != nil {
		serverError(w, r, "create employee failed", err)
		return
	}
	api.Created(w, map[string]any{
		"mensaje":  "Empleado registrado correctamente",
		"empleado": shared.ToEmployeeDTO(*created),
	})
}

func (h *Handler) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "Identificador inválido")
		return
	}

	var payload employeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return
	}

	v := shared.NewValidator()
	employee, okPayload := payload.validate(v, time.Now())
	if v.Reject(w) || !okPayload {
		return
	}

	if _, err := h.Store.GetPosition(r.Context(), employee.Position.ID); err != nil {
		if notFound(err) {
			api.Fail(w, http.StatusBadRequest, "El puesto indicado no existe")
			return
		}
		serverError(w, r, "update employee failed", err)
		return
	}

	if err := h.Store.UpdateEmployee(r.Context(), id, employee); err != nil {
		switch {
		case notFound(err):
			api.Fail(w, http.StatusNotFound, "Empleado no encontrado")
		case isUniqueViolation(err):
			api.Fail(w, http.StatusConflict, "Ya existe un empleado con ese DNI")
		default:
			serverError(w, r, "update employee failed", err)
		}
		return
	}

	updated, err := h.Store.GetEmployee(r.Context(), id)
	if err != nil {
		serverError(w, r, "update employee failed", err)
		return
	}
	api.Success(w, map[string]any{
		"mensaje":  "Empleado actualizado correctamente",
		"empleado": shared.ToEmployeeDTO(*updated),
	})
}

func (h *Handler) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "Identificador inválido")
		return
	}
	if err := h.Store.DeleteEmployee(r.Context(), id); err != nil {
		if notFound(err) {
			api.Fail(w, http.StatusNotFound, "Empleado no encontrado")
			return
		}
		serverError(w, r, "delete employee failed", err)
		return
	}
	api.Success(w, map[string]any{"mensaje": "Empleado eliminado correctamente"})
}

func (h *Handler) handleEmployeeHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "employeeId")
	if !ok {
		api.Fail(w, http.StatusBadRequest, "Identificador inválido")
		return
	}

	employee, err := h.Store.GetEmployee(r.Context(), id)
	if err != nil {
		if notFound(err) {
			api.Fail(w, http.StatusNotFound, "Empleado no encontrado")
			return
		}
		serverError(w, r, "employee history failed", err)
		return
	}

	entries, err := h.Store.ListEmployeeHistory(r.Context(), id)
	if err != nil {
		serverError(w, r, "employee history failed", err)
		return
	}

	historial := make([]map[string]any, 0, len(entries))
	for _, entry := range entries {
		item := map[string]any{
			"id":             entry.ID,
			"nombreCompleto": employee.FirstName + " " + employee.LastName,
			"dni":            employee.DNI,
			"nombrePuesto":   entry.Position.Name,
			"nombreSector":   entry.Position.Sector.Name,
			"fechaIngreso":   shared.FormatDate(entry.StartedAt),
			"fechaSalida":    nil,
		}
		if entry.EndedAt != nil {
			item["fechaSalida"] = shared.FormatDate(*entry.EndedAt)
		}
		historial = append(historial, item)
	}
	api.Success(w, map[string]any{"historial": historial})
}
