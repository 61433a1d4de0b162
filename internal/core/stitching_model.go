package core

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// SizeDetail is one per-size quantity line on an isteaching challan, stored
// as a JSON array in the challan row.
type SizeDetail struct {
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// ParseSizeDetails decodes the stored per-size JSON breakdown, substituting
// an empty slice when the stored shape does not match.
func ParseSizeDetails(raw []byte) []SizeDetail {
	if len(raw) == 0 {
		return nil
	}
	var details []SizeDetail
	if err := json.Unmarshal(raw, &details); err != nil {
		return nil
	}
	return details
}

// IsteachingChallan is a stitching/production output: pieces produced from
// one or more raw-material batches, later classified by manual review.
//
// Top and bottom meterage carry per-piece divisors (meters of cloth per
// stitched piece). When IsBoth is set the challan consumed a combined
// top+bottom panel and BothTop/BothBottom hold the meterage instead.
type IsteachingChallan struct {
	ID              int
	ChallanNumber   string
	ChallanDate     time.Time
	LedgerID        *int
	LedgerCode      *string
	BatchNumbers    []string
	Quantity        int // pieces produced
	TopQty          *decimal.Decimal
	TopRate         *decimal.Decimal // meters per top piece
	BottomQty       *decimal.Decimal
	BottomRate      *decimal.Decimal // meters per bottom piece
	IsBoth          bool
	BothTop         *decimal.Decimal
	BothBottom      *decimal.Decimal
	Sizes           []SizeDetail
	Classification  Classification
	TransportCharge *decimal.Decimal
	Remark          *string
	CreatedAt       time.Time
}

// IsteachingChallanInput holds the fields required to create or update an
// isteaching challan. ChallanNumber is assigned by the service on create.
type IsteachingChallanInput struct {
	ChallanDate     time.Time
	LedgerCode      string
	BatchNumbers    []string
	Quantity        int
	TopQty          *decimal.Decimal
	TopRate         *decimal.Decimal
	BottomQty       *decimal.Decimal
	BottomRate      *decimal.Decimal
	IsBoth          bool
	BothTop         *decimal.Decimal
	BothBottom      *decimal.Decimal
	Sizes           []SizeDetail
	TransportCharge *decimal.Decimal
	Remark          string
}

// StitchingFilter narrows ListIsteachingChallans.
type StitchingFilter struct {
	BatchNumber    string
	Classification Classification
}

// StitchingService manages isteaching challans and their inventory
// classification.
type StitchingService interface {
	// CreateIsteachingChallan inserts a production record (challan number
	// ISC{yyyymmdd}{seq}) and links it to every referenced batch.
	CreateIsteachingChallan(ctx context.Context, input IsteachingChallanInput) (*IsteachingChallan, error)

	// UpdateIsteachingChallan replaces the mutable fields and batch links of
	// an existing challan. The challan number and classification are kept.
	UpdateIsteachingChallan(ctx context.Context, challanNumber string, input IsteachingChallanInput) (*IsteachingChallan, error)

	// Classify sets the inventory classification tag after manual review.
	Classify(ctx context.Context, challanNumber string, tag Classification) error

	// GetByChallanNumber returns one challan, or ErrNotFound.
	GetByChallanNumber(ctx context.Context, challanNumber string) (*IsteachingChallan, error)

	// ListIsteachingChallans returns challans matching the filter, newest first.
	ListIsteachingChallans(ctx context.Context, filter StitchingFilter) ([]IsteachingChallan, error)

	// ListByBatch returns every challan that consumed the given batch,
	// oldest first. Batch reconciliation input ordering depends on this.
	ListByBatch(ctx context.Context, batchNumber string) ([]IsteachingChallan, error)
}
