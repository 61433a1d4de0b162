package core

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// QualityDetail is one per-quality rate/quantity line on a weaver challan.
// The set of lines is stored as a JSON array in the challan row.
type QualityDetail struct {
	Quality  string          `json:"quality"`
	Quantity decimal.Decimal `json:"quantity"`
	Rate     decimal.Decimal `json:"rate"`
}

// ParseQualityDetails decodes the stored JSON breakdown. The stored shape is
// never trusted: anything that does not decode as an array of QualityDetail
// yields an empty slice, not an error.
func ParseQualityDetails(raw []byte) []QualityDetail {
	if len(raw) == 0 {
		return nil
	}
	var details []QualityDetail
	if err := json.Unmarshal(raw, &details); err != nil {
		return nil
	}
	return details
}

// WeaverChallan is a raw-material receipt: one batch of grey cloth received
// from a weaver, optionally carrying the vendor amount and GST rates used by
// the ledger statement.
type WeaverChallan struct {
	ID              int
	BatchNumber     string
	ChallanDate     time.Time
	LedgerID        *int
	LedgerCode      *string
	Quantity        decimal.Decimal // meters received
	QualityDetails  []QualityDetail
	VendorAmount    *decimal.Decimal
	SGST            string // "9%", "18%", "Not Applicable", ...
	CGST            string
	IGST            string
	TransportCharge *decimal.Decimal
	Remark          *string
	CreatedAt       time.Time
}

// ShortingEntry records a reduction in usable raw-material quantity for a
// batch before stitching.
type ShortingEntry struct {
	ID          int
	BatchNumber string
	Quality     string
	Quantity    decimal.Decimal // meters removed
	EntryDate   time.Time
	Remark      *string
	CreatedAt   time.Time
}

// WeaverChallanInput holds the fields required to create or update a weaver
// challan. BatchNumber is assigned by the service on create.
type WeaverChallanInput struct {
	ChallanDate     time.Time
	LedgerCode      string
	Quantity        decimal.Decimal
	QualityDetails  []QualityDetail
	VendorAmount    *decimal.Decimal
	SGST            string
	CGST            string
	IGST            string
	TransportCharge *decimal.Decimal
	Remark          string
}

// ShortingInput holds the fields required to record a shorting entry.
type ShortingInput struct {
	BatchNumber string
	Quality     string
	Quantity    decimal.Decimal
	EntryDate   time.Time
	Remark      string
}

// ChallanFilter narrows ListWeaverChallans.
type ChallanFilter struct {
	LedgerCode string
	From       *time.Time
	To         *time.Time
}

// ChallanService manages weaver challans and their shorting entries.
type ChallanService interface {
	// CreateWeaverChallan inserts a receipt and assigns it a batch number of
	// the form BN{yyyymmdd}{seq}, where seq restarts at 001 each day.
	CreateWeaverChallan(ctx context.Context, input WeaverChallanInput) (*WeaverChallan, error)

	// UpdateWeaverChallan replaces the mutable fields of an existing receipt.
	// The batch number never changes.
	UpdateWeaverChallan(ctx context.Context, batchNumber string, input WeaverChallanInput) (*WeaverChallan, error)

	// GetByBatchNumber returns one receipt, or ErrNotFound.
	GetByBatchNumber(ctx context.Context, batchNumber string) (*WeaverChallan, error)

	// ListWeaverChallans returns receipts matching the filter, newest first.
	ListWeaverChallans(ctx context.Context, filter ChallanFilter) ([]WeaverChallan, error)

	// ListByLedger returns all receipts linked to a ledger, date ascending.
	// Statement input ordering depends on this.
	ListByLedger(ctx context.Context, ledgerCode string) ([]WeaverChallan, error)

	// AddShorting records a quantity reduction against a batch.
	AddShorting(ctx context.Context, input ShortingInput) (*ShortingEntry, error)

	// ListShorting returns all shorting entries for a batch, oldest first.
	ListShorting(ctx context.Context, batchNumber string) ([]ShortingEntry, error)

	// DeleteShorting removes one shorting entry.
	DeleteShorting(ctx context.Context, id int) error
}
