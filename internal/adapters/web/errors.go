package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"textile-books/internal/core"
	"textile-books/internal/logger"
)

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// writeError writes a structured JSON error response.
func writeError(w http.ResponseWriter, r *http.Request, message, code string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := errorResponse{
		Error:     message,
		Code:      code,
		RequestID: requestIDFromContext(r.Context()),
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// writeJSON writes a JSON response with status 200.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// writeCreated writes a JSON response with status 201.
func writeCreated(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(v)
}

// respondServiceError maps an application error onto the wire. Absent records
// are an ordinary outcome, not a fault: they answer 404 with "no data".
// Domain-rule violations answer 400 with the rule's message. Anything else
// is a server fault: the cause goes to the log, the client gets a generic
// 500 body.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, core.ErrNotFound):
		writeError(w, r, "no data", "NOT_FOUND", http.StatusNotFound)
	case errors.Is(err, core.ErrInvalid):
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
	default:
		logger.LogError("web", "respondServiceError", map[string]string{
			"method":     r.Method,
			"path":       r.URL.Path,
			"request_id": requestIDFromContext(r.Context()),
		}, err)
		writeError(w, r, "internal server error", "INTERNAL_ERROR", http.StatusInternalServerError)
	}
}
