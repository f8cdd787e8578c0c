// Package handlers provides HTTP response helpers shared by the API domains.
// Every JSON body is written through RespondJSON; failures use the
// {"error": "..."} envelope described by the shared OpenAPI responses.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse is the body of every failed API request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondJSON writes data as JSON with the given status code.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError logs err against the request and writes an ErrorResponse.
// Client errors are logged at warn level and server errors at error level.
func RespondError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, status int, err error) {
	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	logger.LogAttrs(r.Context(), level, "request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		slog.String("error", err.Error()),
	)
	RespondJSON(w, status, ErrorResponse{Error: err.Error()})
}

// RespondMapped responds with the status a domain assigns to err.
func RespondMapped(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, status func(error) int) {
	RespondError(w, r, logger, status(err), err)
}
