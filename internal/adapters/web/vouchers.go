package web

import (
	"net/http"

	"textile-books/internal/app"
)

// createVoucher handles POST /api/vouchers.
func (h *Handler) createVoucher(w http.ResponseWriter, r *http.Request) {
	var req app.VoucherRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	result, err := h.svc.CreateVoucher(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeCreated(w, result)
}

// updateVoucher handles PUT /api/vouchers/{id}.
func (h *Handler) updateVoucher(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req app.VoucherRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	result, err := h.svc.UpdateVoucher(r.Context(), id, req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// deleteVoucher handles DELETE /api/vouchers/{id}.
func (h *Handler) deleteVoucher(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteVoucher(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// listVouchers handles GET /api/ledgers/{code}/vouchers.
func (h *Handler) listVouchers(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListVouchers(r.Context(), codeParam(r))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}
