package app

import "context"

// ApplicationService is the single interface all adapters (web, CLI) call.
// It decouples presentation from business logic; implementations contain no
// display logic.
type ApplicationService interface {
	// Authenticate checks credentials and returns the user's public shape.
	Authenticate(ctx context.Context, req LoginRequest) (*UserResult, error)

	// CreateUser creates a system user (admin only, enforced by adapters).
	CreateUser(ctx context.Context, req UserRequest) (*UserResult, error)

	// ListUsers returns all users.
	ListUsers(ctx context.Context) (*UserListResult, error)

	// DeactivateUser disables a user's login.
	DeactivateUser(ctx context.Context, username string) error

	// CreateLedger creates a business-partner ledger.
	CreateLedger(ctx context.Context, req LedgerRequest) (*LedgerResult, error)

	// UpdateLedger updates an existing ledger identified by code.
	UpdateLedger(ctx context.Context, code string, req LedgerRequest) (*LedgerResult, error)

	// DeactivateLedger soft-deletes a ledger.
	DeactivateLedger(ctx context.Context, code string) error

	// GetLedger returns one ledger by code.
	GetLedger(ctx context.Context, code string) (*LedgerResult, error)

	// ListLedgers returns active ledgers, optionally filtered by search text.
	ListLedgers(ctx context.Context, search string) (*LedgerListResult, error)

	// CreateWeaverChallan records a raw-material receipt and assigns its
	// batch number.
	CreateWeaverChallan(ctx context.Context, req WeaverChallanRequest) (*WeaverChallanResult, error)

	// UpdateWeaverChallan updates a receipt identified by batch number.
	UpdateWeaverChallan(ctx context.Context, batchNumber string, req WeaverChallanRequest) (*WeaverChallanResult, error)

	// GetWeaverChallan returns one receipt by batch number.
	GetWeaverChallan(ctx context.Context, batchNumber string) (*WeaverChallanResult, error)

	// ListWeaverChallans returns receipts, optionally filtered by ledger
	// code and a from/to date window (YYYY-MM-DD, empty for unbounded).
	ListWeaverChallans(ctx context.Context, ledgerCode, from, to string) (*ChallanListResult, error)

	// AddShorting records a quantity reduction against a batch.
	AddShorting(ctx context.Context, req ShortingRequest) (*ShortingResult, error)

	// ListShorting returns the shorting entries for a batch.
	ListShorting(ctx context.Context, batchNumber string) (*ShortingListResult, error)

	// DeleteShorting removes one shorting entry.
	DeleteShorting(ctx context.Context, id int) error

	// CreateIsteachingChallan records a stitching output and assigns its
	// challan number.
	CreateIsteachingChallan(ctx context.Context, req IsteachingChallanRequest) (*IsteachingChallanResult, error)

	// UpdateIsteachingChallan updates a stitching record by challan number.
	UpdateIsteachingChallan(ctx context.Context, challanNumber string, req IsteachingChallanRequest) (*IsteachingChallanResult, error)

	// ClassifyChallan assigns the inventory classification after review.
	ClassifyChallan(ctx context.Context, challanNumber string, req ClassifyRequest) error

	// GetIsteachingChallan returns one stitching record by challan number.
	GetIsteachingChallan(ctx context.Context, challanNumber string) (*IsteachingChallanResult, error)

	// ListIsteachingChallans returns stitching records, optionally filtered
	// by batch number and classification.
	ListIsteachingChallans(ctx context.Context, batchNumber, classification string) (*StitchingListResult, error)

	// AddExpense records a cost entry against a batch.
	AddExpense(ctx context.Context, req ExpenseRequest) (*ExpenseResult, error)

	// ListExpenses returns the expenses for a batch.
	ListExpenses(ctx context.Context, batchNumber string) (*ExpenseListResult, error)

	// DeleteExpense removes one expense entry.
	DeleteExpense(ctx context.Context, id int) error

	// CreateVoucher records a payment voucher.
	CreateVoucher(ctx context.Context, req VoucherRequest) (*VoucherResult, error)

	// UpdateVoucher updates a voucher by id.
	UpdateVoucher(ctx context.Context, id int, req VoucherRequest) (*VoucherResult, error)

	// DeleteVoucher removes a voucher.
	DeleteVoucher(ctx context.Context, id int) error

	// ListVouchers returns a ledger's vouchers, date ascending, with their
	// derived references attached.
	ListVouchers(ctx context.Context, ledgerCode string) (*VoucherListResult, error)

	// CreateProduct creates a product.
	CreateProduct(ctx context.Context, req ProductRequest) (*ProductResult, error)

	// UpdateProduct updates a product by code.
	UpdateProduct(ctx context.Context, code string, req ProductRequest) (*ProductResult, error)

	// DeactivateProduct soft-deletes a product.
	DeactivateProduct(ctx context.Context, code string) error

	// GetProduct returns one product by code.
	GetProduct(ctx context.Context, code string) (*ProductResult, error)

	// ListProducts returns active products, optionally filtered by search text.
	ListProducts(ctx context.Context, search string) (*ProductListResult, error)

	// CreatePurchaseOrder creates a DRAFT purchase order.
	CreatePurchaseOrder(ctx context.Context, req PurchaseOrderRequest) (*PurchaseOrderResult, error)

	// ApprovePurchaseOrder approves a draft PO, assigning its number.
	ApprovePurchaseOrder(ctx context.Context, id int) (*PurchaseOrderResult, error)

	// ReceivePurchaseOrder marks an approved PO as received.
	ReceivePurchaseOrder(ctx context.Context, id int) error

	// CancelPurchaseOrder cancels a draft or approved PO.
	CancelPurchaseOrder(ctx context.Context, id int) error

	// GetPurchaseOrder returns one PO with its lines.
	GetPurchaseOrder(ctx context.Context, id int) (*PurchaseOrderResult, error)

	// ListPurchaseOrders returns POs, optionally filtered by status.
	ListPurchaseOrders(ctx context.Context, status string) (*PurchaseOrderListResult, error)

	// GetBatchReport returns the reconciliation report for one batch.
	GetBatchReport(ctx context.Context, batchNumber string) (*BatchReportResult, error)

	// GetLedgerStatement returns the passbook for one ledger, most recent
	// line first.
	GetLedgerStatement(ctx context.Context, ledgerCode string) (*StatementResult, error)

	// GetDashboard returns per-ledger aggregate positions.
	GetDashboard(ctx context.Context) (*DashboardResult, error)

	// ExportLedgerStatement renders the passbook as an XLSX workbook.
	ExportLedgerStatement(ctx context.Context, ledgerCode string) ([]byte, error)

	// ExportBatchReport renders the batch report as an XLSX workbook.
	ExportBatchReport(ctx context.Context, batchNumber string) ([]byte, error)
}
