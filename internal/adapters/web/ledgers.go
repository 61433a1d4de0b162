package web

import (
	"net/http"

	"textile-books/internal/app"

	"github.com/go-chi/chi/v5"
)

// codeParam extracts the {code} URL parameter.
func codeParam(r *http.Request) string {
	return chi.URLParam(r, "code")
}

// createLedger handles POST /api/ledgers.
func (h *Handler) createLedger(w http.ResponseWriter, r *http.Request) {
	var req app.LedgerRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	result, err := h.svc.CreateLedger(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeCreated(w, result)
}

// listLedgers handles GET /api/ledgers?search=.
func (h *Handler) listLedgers(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListLedgers(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// getLedger handles GET /api/ledgers/{code}.
func (h *Handler) getLedger(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetLedger(r.Context(), codeParam(r))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// updateLedger handles PUT /api/ledgers/{code}.
func (h *Handler) updateLedger(w http.ResponseWriter, r *http.Request) {
	var req app.LedgerRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	result, err := h.svc.UpdateLedger(r.Context(), codeParam(r), req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// deactivateLedger handles POST /api/ledgers/{code}/deactivate.
func (h *Handler) deactivateLedger(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeactivateLedger(r.Context(), codeParam(r)); err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
