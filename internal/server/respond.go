package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"trendhub/internal/service"
)

// envelope is the response shape of the account, favorites, and history
// routes. Trend routes return bare arrays instead.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeOK(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Message: message, Data: data})
}

// writeError maps service errors to the envelope and a status code.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalid),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrDuplicateFavorite):
		writeJSON(w, http.StatusBadRequest, envelope{Success: false, Message: err.Error()})
	case errors.Is(err, service.ErrBadCredentials):
		writeJSON(w, http.StatusUnauthorized, envelope{Success: false, Message: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		writeJSON(w, http.StatusNotFound, envelope{Success: false, Message: err.Error()})
	default:
		s.logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, envelope{Success: false, Message: "internal error"})
	}
}
