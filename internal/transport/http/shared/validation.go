package shared

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"adminrec/internal/transport/http/api"
)

var (
	dniRE      = regexp.MustCompile(`^\d{7,8}$`)
	nameRE     = regexp.MustCompile(`^[a-záéíóúñA-ZÁÉÍÓÚÑ\s]+$`)
	emailRE    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRE    = regexp.MustCompile(`^[\d\s\-\+\(\)]{8,20}$`)
	digitsRE   = regexp.MustCompile(`\d`)
	upperRE    = regexp.MustCompile(`[A-Z]`)
	lowerRE    = regexp.MustCompile(`[a-z]`)
	periodRE   = regexp.MustCompile(`^(0?[1-9]|1[0-2])/\d{4}$`)
	positiveRE = regexp.MustCompile(`^\d+$`)
)

// Validator accumulates field errors; the first failing rule per field wins,
// matching how the forms report inline errors. It never panics: an empty map
// means the payload is valid.
type Validator struct {
	errors map[string]string
}

func NewValidator() *Validator {
	return &Validator{errors: make(map[string]string)}
}

func (v *Validator) Add(field, mensaje string) {
	if _, exists := v.errors[field]; exists {
		return
	}
	v.errors[field] = mensaje
}

func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

func (v *Validator) Errors() map[string]string {
	return v.errors
}

// Reject writes the validation envelope when any rule failed and reports
// whether the request was rejected.
func (v *Validator) Reject(w http.ResponseWriter) bool {
	if !v.HasErrors() {
		return false
	}
	api.FailValidation(w, v.errors)
	return true
}

func (v *Validator) DNI(field, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		v.Add(field, "El DNI es obligatorio")
		return
	}
	if !dniRE.MatchString(value) {
		v.Add(field, "El DNI debe tener 7 u 8 dígitos")
	}
}

func (v *Validator) PersonName(field, label, value string) {
	trimmed := strings.TrimSpace(value)
	switch {
	case trimmed == "":
		v.Add(field, label+" es obligatorio")
	case len([]rune(trimmed)) < 2:
		v.Add(field, label+" debe tener al menos 2 caracteres")
	case len([]rune(trimmed)) > 50:
		v.Add(field, label+" no puede superar los 50 caracteres")
	case !nameRE.MatchString(value):
		v.Add(field, label+" solo puede contener letras y espacios")
	}
}

func (v *Validator) Address(field, value string) {
	trimmed := strings.TrimSpace(value)
	switch {
	case trimmed == "":
		v.Add(field, "El domicilio es obligatorio")
	case len([]rune(trimmed)) < 5:
		v.Add(field, "El domicilio debe tener al menos 5 caracteres")
	case len([]rune(trimmed)) > 100:
		v.Add(field, "El domicilio no puede superar los 100 caracteres")
	}
}

func (v *Validator) Email(field, value string) {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		v.Add(field, "El correo es obligatorio")
	case !emailRE.MatchString(value):
		v.Add(field, "El correo no tiene un formato válido")
	}
}

func (v *Validator) Phone(field, value string) {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		v.Add(field, "El teléfono es obligatorio")
	case !phoneRE.MatchString(value):
		v.Add(field, "El teléfono tiene un formato inválido")
	}
}

// BirthDate enforces 18 <= age <= 100 using the calendar-year difference.
func (v *Validator) BirthDate(field, value string, now time.Time) (time.Time, bool) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "La fecha de nacimiento es obligatoria")
		return time.Time{}, false
	}
	parsed, err := ParseDate(value)
	if err != nil {
		v.Add(field, "La fecha de nacimiento no es válida")
		return time.Time{}, false
	}
	age := YearsBetween(parsed, now)
	if age < 18 {
		v.Add(field, "El empleado debe tener al menos 18 años")
		return parsed, false
	}
	if age > 100 {
		v.Add(field, "La fecha de nacimiento no es válida")
		return parsed, false
	}
	return parsed, true
}

// HireDate must not be in the future and the employee must have been at
// least 18 (by year difference) when hired.
func (v *Validator) HireDate(field, value string, birth time.Time, now time.Time) (time.Time, bool) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "La fecha de contratación es obligatoria")
		return time.Time{}, false
	}
	parsed, err := ParseDate(value)
	if err != nil {
		v.Add(field, "La fecha de contratación no es válida")
		return time.Time{}, false
	}
	if parsed.After(now) {
		v.Add(field, "La fecha de contratación no puede ser futura")
		return parsed, false
	}
	if !birth.IsZero() && YearsBetween(birth, parsed) < 18 {
		v.Add(field, "El empleado debía tener al menos 18 años al ser contratado")
		return parsed, false
	}
	return parsed, true
}

func (v *Validator) Password(field, value string) {
	switch {
	case value == "":
		v.Add(field, "La contraseña es obligatoria")
	case len(value) < 8:
		v.Add(field, "La contraseña debe tener al menos 8 caracteres")
	case !upperRE.MatchString(value):
		v.Add(field, "La contraseña debe incluir una mayúscula")
	case !lowerRE.MatchString(value):
		v.Add(field, "La contraseña debe incluir una minúscula")
	case !digitsRE.MatchString(value):
		v.Add(field, "La contraseña debe incluir un número")
	}
}

func (v *Validator) PasswordConfirmation(field, password, confirmation string) {
	if password != confirmation {
		v.Add(field, "Las contraseñas no coinciden")
	}
}

func (v *Validator) RequestDuration(field string, days int) {
	switch {
	case days <= 0:
		v.Add(field, "La duración debe ser un número positivo de días")
	case days > 365:
		v.Add(field, "La duración no puede superar los 365 días")
	}
}

func (v *Validator) RequestReason(field, value string) {
	trimmed := strings.TrimSpace(value)
	switch {
	case trimmed == "":
		v.Add(field, "El motivo es obligatorio")
	case len([]rune(trimmed)) < 10:
		v.Add(field, "El motivo debe tener al menos 10 caracteres")
	case len([]rune(trimmed)) > 500:
		v.Add(field, "El motivo no puede superar los 500 caracteres")
	}
}

// Period checks the MM/YYYY shape; the month range is part of the regex.
func (v *Validator) Period(field, value string) {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		v.Add(field, "El periodo es obligatorio")
	case !periodRE.MatchString(value):
		v.Add(field, "El periodo debe tener el formato MM/YYYY")
	}
}

func (v *Validator) Date(field, value string) (time.Time, bool) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "La fecha es obligatoria")
		return time.Time{}, false
	}
	parsed, err := ParseDate(value)
	if err != nil {
		v.Add(field, "La fecha debe tener el formato YYYY-MM-DD")
		return time.Time{}, false
	}
	return parsed, true
}

func (v *Validator) DateOrder(startField string, start time.Time, endField string, end time.Time) {
	if start.IsZero() || end.IsZero() {
		return
	}
	if end.Before(start) {
		v.Add(startField, "La fecha de inicio debe ser anterior o igual a la de fin")
		v.Add(endField, "La fecha de fin debe ser posterior o igual a la de inicio")
	}
}

func (v *Validator) Required(field, value, mensaje string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, mensaje)
	}
}

// PositiveInt validates a decimal string used where forms submit numbers as
// text (e.g. the login DNI field).
func PositiveInt(value string) bool {
	return positiveRE.MatchString(strings.TrimSpace(value))
}

// ParseDNI converts a pre-validated DNI string to its numeric form.
func ParseDNI(value string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(value))
}

var ErrInvalidID = errors.New("invalid identifier")

// ParseID parses a positive numeric path parameter.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
