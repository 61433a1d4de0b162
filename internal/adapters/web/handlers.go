package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"textile-books/internal/app"
	"textile-books/internal/core"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Handler holds the ApplicationService, the chi router, and request validation.
type Handler struct {
	svc       app.ApplicationService
	router    chi.Router
	validate  *validator.Validate
	jwtSecret string
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(svc app.ApplicationService, allowedOrigins, jwtSecret string) http.Handler {
	h := &Handler{
		svc:       svc,
		validate:  validator.New(),
		jwtSecret: jwtSecret,
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))

	// ── Public ────────────────────────────────────────────────────────────────
	r.Get("/api/health", h.health)
	r.Post("/api/auth/login", h.login)
	r.Post("/api/auth/logout", h.logout)

	// ── Protected API (401 JSON if unauthenticated) ───────────────────────────
	r.Group(func(r chi.Router) {
		r.Use(h.RequireAuth)
		r.Use(RequestBodyLimit(1 << 20)) // 1 MB

		r.Get("/api/auth/me", h.me)

		// User administration is admin-only.
		r.Group(func(r chi.Router) {
			r.Use(RequireRole(core.RoleAdmin))
			r.Post("/api/users", h.createUser)
			r.Get("/api/users", h.listUsers)
			r.Post("/api/users/{username}/deactivate", h.deactivateUser)
		})

		// Ledgers
		r.Post("/api/ledgers", h.createLedger)
		r.Get("/api/ledgers", h.listLedgers)
		r.Get("/api/ledgers/{code}", h.getLedger)
		r.Put("/api/ledgers/{code}", h.updateLedger)
		r.Post("/api/ledgers/{code}/deactivate", h.deactivateLedger)
		r.Get("/api/ledgers/{code}/vouchers", h.listVouchers)
		r.Get("/api/ledgers/{code}/statement", h.ledgerStatement)

		// Weaver challans and shorting
		r.Post("/api/challans", h.createChallan)
		r.Get("/api/challans", h.listChallans)
		r.Get("/api/challans/{batchNumber}", h.getChallan)
		r.Put("/api/challans/{batchNumber}", h.updateChallan)
		r.Get("/api/challans/{batchNumber}/shorting", h.listShorting)
		r.Get("/api/challans/{batchNumber}/expenses", h.listExpenses)
		r.Get("/api/challans/{batchNumber}/report", h.batchReport)
		r.Post("/api/shorting", h.addShorting)
		r.Delete("/api/shorting/{id}", h.deleteShorting)

		// Isteaching challans
		r.Post("/api/stitching", h.createStitching)
		r.Get("/api/stitching", h.listStitching)
		r.Get("/api/stitching/{challanNumber}", h.getStitching)
		r.Put("/api/stitching/{challanNumber}", h.updateStitching)
		r.Post("/api/stitching/{challanNumber}/classify", h.classifyStitching)

		// Expenses
		r.Post("/api/expenses", h.addExpense)
		r.Delete("/api/expenses/{id}", h.deleteExpense)

		// Vouchers: money movement needs the accounts desk or an admin.
		r.Group(func(r chi.Router) {
			r.Use(RequireRole(core.RoleAdmin, core.RoleAccounts))
			r.Post("/api/vouchers", h.createVoucher)
			r.Put("/api/vouchers/{id}", h.updateVoucher)
			r.Delete("/api/vouchers/{id}", h.deleteVoucher)
		})

		// Products
		r.Post("/api/products", h.createProduct)
		r.Get("/api/products", h.listProducts)
		r.Get("/api/products/{code}", h.getProduct)
		r.Put("/api/products/{code}", h.updateProduct)
		r.Post("/api/products/{code}/deactivate", h.deactivateProduct)

		// Purchase orders
		r.Post("/api/purchase-orders", h.createPurchaseOrder)
		r.Get("/api/purchase-orders", h.listPurchaseOrders)
		r.Get("/api/purchase-orders/{id}", h.getPurchaseOrder)
		r.Group(func(r chi.Router) {
			r.Use(RequireRole(core.RoleAdmin, core.RoleAccounts))
			r.Post("/api/purchase-orders/{id}/approve", h.approvePurchaseOrder)
			r.Post("/api/purchase-orders/{id}/receive", h.receivePurchaseOrder)
			r.Post("/api/purchase-orders/{id}/cancel", h.cancelPurchaseOrder)
		})

		// Dashboard
		r.Get("/api/dashboard", h.dashboard)
	})

	h.router = r
	return r
}

// health returns service status.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Status string `json:"status"`
	}
	writeJSON(w, response{Status: "ok"})
}

// decodeJSON decodes the request body into v and writes an error response on
// failure. Returns HTTP 413 when the body exceeds the RequestBodyLimit;
// HTTP 400 for all other decode errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, "request body too large", "REQUEST_TOO_LARGE", http.StatusRequestEntityTooLarge)
			return false
		}
		writeError(w, r, "invalid JSON body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return false
	}
	return true
}

// decodeValid decodes the request body into v and runs struct validation.
func (h *Handler) decodeValid(w http.ResponseWriter, r *http.Request, v any) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		writeError(w, r, "validation failed: "+err.Error(), "VALIDATION_FAILED", http.StatusUnprocessableEntity)
		return false
	}
	return true
}
