package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrder is an order placed with a supplier ledger.
type PurchaseOrder struct {
	ID         int
	PONumber   *string // assigned at approval
	LedgerID   int
	LedgerCode string
	LedgerName string
	Status     PurchaseOrderStatus
	PODate     time.Time
	Notes      *string
	Total      decimal.Decimal
	ApprovedAt *time.Time
	ReceivedAt *time.Time
	CreatedAt  time.Time
	Lines      []PurchaseOrderLine
}

// PurchaseOrderLine is a single line on a purchase order.
type PurchaseOrderLine struct {
	ID          int
	OrderID     int
	LineNumber  int
	Description string
	Quantity    decimal.Decimal
	UnitCost    decimal.Decimal
	LineTotal   decimal.Decimal
}

// PurchaseOrderLineInput holds the fields required to create one PO line.
type PurchaseOrderLineInput struct {
	Description string
	Quantity    decimal.Decimal
	UnitCost    decimal.Decimal
}

// PurchaseOrderService provides the purchase order lifecycle.
type PurchaseOrderService interface {
	// CreatePO creates a DRAFT purchase order with computed line totals.
	CreatePO(ctx context.Context, ledgerCode string, poDate time.Time,
		lines []PurchaseOrderLineInput, notes string) (*PurchaseOrder, error)

	// ApprovePO transitions a DRAFT PO to APPROVED, assigning a gapless
	// PO-{yyyy}-{seq} number inside one transaction. Approving an
	// already-APPROVED PO is a no-op.
	ApprovePO(ctx context.Context, poID int) (*PurchaseOrder, error)

	// ReceivePO marks an APPROVED PO as RECEIVED.
	ReceivePO(ctx context.Context, poID int) error

	// CancelPO cancels a DRAFT or APPROVED PO.
	CancelPO(ctx context.Context, poID int) error

	// GetPO returns one purchase order with its lines, or ErrNotFound.
	GetPO(ctx context.Context, poID int) (*PurchaseOrder, error)

	// ListPOs returns purchase orders, optionally filtered by status,
	// newest first.
	ListPOs(ctx context.Context, status *PurchaseOrderStatus) ([]PurchaseOrder, error)
}
