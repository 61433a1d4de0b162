package web

import (
	"fmt"
	"net/http"
)

func writeXLSX(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	_, _ = w.Write(data)
}

// batchReport handles GET /api/challans/{batchNumber}/report. With
// ?format=xlsx the report downloads as a workbook instead of JSON.
func (h *Handler) batchReport(w http.ResponseWriter, r *http.Request) {
	batch := batchNumber(r)
	if r.URL.Query().Get("format") == "xlsx" {
		data, err := h.svc.ExportBatchReport(r.Context(), batch)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		writeXLSX(w, "batch-"+batch+".xlsx", data)
		return
	}

	result, err := h.svc.GetBatchReport(r.Context(), batch)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// ledgerStatement handles GET /api/ledgers/{code}/statement. With
// ?format=xlsx the passbook downloads as a workbook instead of JSON.
func (h *Handler) ledgerStatement(w http.ResponseWriter, r *http.Request) {
	code := codeParam(r)
	if r.URL.Query().Get("format") == "xlsx" {
		data, err := h.svc.ExportLedgerStatement(r.Context(), code)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		writeXLSX(w, "statement-"+code+".xlsx", data)
		return
	}

	result, err := h.svc.GetLedgerStatement(r.Context(), code)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}

// dashboard handles GET /api/dashboard.
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.GetDashboard(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	writeJSON(w, result)
}
