package web

import (
	"net/http"
	"strconv"

	"textile-books/internal/app"

	"github.com/go-chi/chi/v5"
)

// batchNumber extracts the {batchNumber} URL parameter.
func batchNumber(r *http.Request) string {
	return chi.URLParam(r, "batchNumber")
}

// idParam extracts the integer {id} URL parameter, writing a 400 on failure.
func idParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "invalid id", "BAD_REQUEST", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// createChallan handles POST /api/challans.
func (h *Handler) createChallan(w http.ResponseWriter, r *http.Request) {
	var req app.WeaverChallanRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	result, err := h.svc.CreateWeaverChallan(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeCreated(w, result)
}

// listChallans handles GET /api/challans?ledger_code=&from=&to=.
func (h *Handler) listChallans(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := h.svc.ListWeaverChallans(r.Context(), q.Get("ledger_code"), q.Get("from"), q.Get("to"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// getChallan handles GET /api/challans/{batchNumber}.
func (h *Handler) getChallan(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetWeaverChallan(r.Context(), batchNumber(r))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// updateChallan handles PUT /api/challans/{batchNumber}.
func (h *Handler) updateChallan(w http.ResponseWriter, r *http.Request) {
	var req app.WeaverChallanRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	result, err := h.svc.UpdateWeaverChallan(r.Context(), batchNumber(r), req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// addShorting handles POST /api/shorting.
func (h *Handler) addShorting(w http.ResponseWriter, r *http.Request) {
	var req app.ShortingRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	result, err := h.svc.AddShorting(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeCreated(w, result)
}

// listShorting handles GET /api/challans/{batchNumber}/shorting.
func (h *Handler) listShorting(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListShorting(r.Context(), batchNumber(r))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// deleteShorting handles DELETE /api/shorting/{id}.
func (h *Handler) deleteShorting(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteShorting(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// addExpense handles POST /api/expenses.
func (h *Handler) addExpense(w http.ResponseWriter, r *http.Request) {
	var req app.ExpenseRequest
	if !h.decodeValid(w, r, &req) {
		return
	}
	result, err := h.svc.AddExpense(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeCreated(w, result)
}

// listExpenses handles GET /api/challans/{batchNumber}/expenses.
func (h *Handler) listExpenses(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListExpenses(r.Context(), batchNumber(r))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// deleteExpense handles DELETE /api/expenses/{id}.
func (h *Handler) deleteExpense(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteExpense(r.Context(), id); err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
