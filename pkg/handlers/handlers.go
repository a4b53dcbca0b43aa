// Package handlers provides JSON response helpers shared by all HTTP handlers.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorEnvelope is the stable error body returned to clients.
// Error carries a machine-readable kind; Message is human-readable and
// must never contain credentials or stack traces.
type ErrorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Ray     string `json:"ray,omitempty"`
}

// RespondJSON writes v as a JSON response with the given status code.
func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already written; nothing left to do but log.
		slog.Default().Error("encode response failed", "error", err)
	}
}

// RespondError logs the error and writes a stable error envelope with the
// given status, machine-readable kind, and correlation identifier.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, kind string, err error, ray string) {
	logger.Error(
		"request failed",
		"status", status,
		"kind", kind,
		"error", err,
		"ray", ray,
	)

	RespondJSON(w, status, ErrorEnvelope{
		Error:   kind,
		Message: err.Error(),
		Ray:     ray,
	})
}
