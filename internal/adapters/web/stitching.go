package web

import (
	"net/http"

	"textile-books/internal/app"

	"github.com/go-chi/chi/v5"
)

func challanNumber(r *http.Request) string {
	return chi.URLParam(r, "challanNumber")
}

// createStitching handles POST /api/stitching.
func (h *Handler) createStitching(w http.ResponseWriter, r *http.Request) {
	var req app.IsteachingChallanRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	result, err := h.svc.CreateIsteachingChallan(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeCreated(w, result)
}

// listStitching handles GET /api/stitching?batch_number=&classification=.
func (h *Handler) listStitching(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := h.svc.ListIsteachingChallans(r.Context(), q.Get("batch_number"), q.Get("classification"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// getStitching handles GET /api/stitching/{challanNumber}.
func (h *Handler) getStitching(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetIsteachingChallan(r.Context(), challanNumber(r))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// updateStitching handles PUT /api/stitching/{challanNumber}.
func (h *Handler) updateStitching(w http.ResponseWriter, r *http.Request) {
	var req app.IsteachingChallanRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	result, err := h.svc.UpdateIsteachingChallan(r.Context(), challanNumber(r), req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// classifyStitching handles POST /api/stitching/{challanNumber}/classify.
func (h *Handler) classifyStitching(w http.ResponseWriter, r *http.Request) {
	var req app.ClassifyRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	if err := h.svc.ClassifyChallan(r.Context(), challanNumber(r), req); err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
