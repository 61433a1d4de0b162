package web

import (
	"net/http"

	"textile-books/internal/app"

	"github.com/go-chi/chi/v5"
)

// createUser handles POST /api/users.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req app.UserRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	result, err := h.svc.CreateUser(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeCreated(w, result)
}

// listUsers handles GET /api/users.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListUsers(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// deactivateUser handles POST /api/users/{username}/deactivate.
func (h *Handler) deactivateUser(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeactivateUser(r.Context(), chi.URLParam(r, "username")); err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
