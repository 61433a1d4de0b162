package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"textile-books/internal/core"
)

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return resp
}

func TestRespondServiceError_NotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/ledgers/WVR-001/statement", nil)

	respondServiceError(rec, req, fmt.Errorf("ledger %q: %w", "WVR-001", core.ErrNotFound))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	resp := decodeErrorBody(t, rec)
	if resp.Error != "no data" || resp.Code != "NOT_FOUND" {
		t.Errorf("body = %+v, want no data / NOT_FOUND", resp)
	}
}

func TestRespondServiceError_DomainRule(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/vouchers", nil)

	respondServiceError(rec, req,
		fmt.Errorf("invalid voucher direction %q: %w", "Sideways", core.ErrInvalid))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	resp := decodeErrorBody(t, rec)
	if resp.Code != "BAD_REQUEST" {
		t.Errorf("code = %q, want BAD_REQUEST", resp.Code)
	}
	if !strings.Contains(resp.Error, "invalid voucher direction") {
		t.Errorf("error = %q, want the rule's message", resp.Error)
	}
}

func TestRespondServiceError_ServerFault(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/challans", nil)

	cause := errors.New("failed to connect to host=db (SQLSTATE 08006)")
	respondServiceError(rec, req, fmt.Errorf("query weaver challans: %w", cause))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	resp := decodeErrorBody(t, rec)
	if resp.Error != "internal server error" || resp.Code != "INTERNAL_ERROR" {
		t.Errorf("body = %+v, want generic internal server error", resp)
	}
	// driver detail stays in the log, never in the response
	if strings.Contains(rec.Body.String(), "SQLSTATE") {
		t.Errorf("response leaks internal detail: %s", rec.Body.String())
	}
}
