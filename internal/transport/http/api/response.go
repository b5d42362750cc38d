package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// The wire format follows the consumed contract: every body carries a
// "status" of success or error, successful bodies add resource-specific keys
// ("empleados", "solicitud", ...), and errors carry a human-readable
// "mensaje" in the UI's language.

func WriteJSON(w http.ResponseWriter, status int, payload map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

// Success writes a 200 envelope merging data keys into {"status":"success"}.
func Success(w http.ResponseWriter, data map[string]any) {
	successWith(w, http.StatusOK, data)
}

func Created(w http.ResponseWriter, data map[string]any) {
	successWith(w, http.StatusCreated, data)
}

func successWith(w http.ResponseWriter, status int, data map[string]any) {
	payload := map[string]any{"status": "success"}
	for key, value := range data {
		payload[key] = value
	}
	WriteJSON(w, status, payload)
}

func Fail(w http.ResponseWriter, status int, mensaje string) {
	WriteJSON(w, status, map[string]any{"status": "error", "mensaje": mensaje})
}

// FailValidation reports per-field validation messages alongside the generic
// mensaje, mirroring the inline-errors contract of the forms.
func FailValidation(w http.ResponseWriter, errores map[string]string) {
	WriteJSON(w, http.StatusBadRequest, map[string]any{
		"status":  "error",
		"mensaje": "datos inválidos",
		"errores": errores,
	})
}
