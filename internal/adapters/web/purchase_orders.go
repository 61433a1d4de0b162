package web

import (
	"net/http"

	"textile-books/internal/app"
)

// createPurchaseOrder handles POST /api/purchase-orders.
func (h *Handler) createPurchaseOrder(w http.ResponseWriter, r *http.Request) {
	var req app.PurchaseOrderRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	result, err := h.svc.CreatePurchaseOrder(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeCreated(w, result)
}

// listPurchaseOrders handles GET /api/purchase-orders?status=.
func (h *Handler) listPurchaseOrders(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListPurchaseOrders(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// getPurchaseOrder handles GET /api/purchase-orders/{id}.
func (h *Handler) getPurchaseOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	result, err := h.svc.GetPurchaseOrder(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// approvePurchaseOrder handles POST /api/purchase-orders/{id}/approve.
func (h *Handler) approvePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	result, err := h.svc.ApprovePurchaseOrder(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// receivePurchaseOrder handles POST /api/purchase-orders/{id}/receive.
func (h *Handler) receivePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.svc.ReceivePurchaseOrder(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// cancelPurchaseOrder handles POST /api/purchase-orders/{id}/cancel.
func (h *Handler) cancelPurchaseOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.svc.CancelPurchaseOrder(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
