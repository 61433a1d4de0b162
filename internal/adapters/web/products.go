package web

import (
	"net/http"

	"textile-books/internal/app"
)

// createProduct handles POST /api/products.
func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req app.ProductRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	result, err := h.svc.CreateProduct(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeCreated(w, result)
}

// listProducts handles GET /api/products?search=.
func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListProducts(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// getProduct handles GET /api/products/{code}.
func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetProduct(r.Context(), codeParam(r))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// updateProduct handles PUT /api/products/{code}.
func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var req app.ProductRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	result, err := h.svc.UpdateProduct(r.Context(), codeParam(r), req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// deactivateProduct handles POST /api/products/{code}/deactivate.
func (h *Handler) deactivateProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeactivateProduct(r.Context(), codeParam(r)); err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
