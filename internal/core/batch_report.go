package core

import "github.com/shopspring/decimal"

// BatchReport is the reconciliation picture for one production batch:
// received vs. shorted vs. stitched vs. classified, with per-unit cost.
// It is recomputed from source rows on every request and never persisted.
type BatchReport struct {
	WeaverChallan      *WeaverChallan
	ShortingEntries    []ShortingEntry
	IsteachingChallans []IsteachingChallan
	Expenses           []Expense

	TotalShorting     decimal.Decimal // meters removed before stitching
	RemainingQuantity decimal.Decimal // receipt meters − total shorting
	TotalStitching    int             // pieces produced across all outputs
	TotalExpenses     decimal.Decimal

	GoodPieces     int
	BadPieces      int
	WastagePieces  int
	ShortingPieces int

	// CostPerUnit is total expenses divided by good pieces. It is defined
	// only when at least one piece was classified good; CostPerUnitDefined
	// distinguishes "zero cost" from "no good pieces to divide by".
	CostPerUnit        decimal.Decimal
	CostPerUnitDefined bool

	TopMeters    decimal.Decimal
	TopPieces    decimal.Decimal
	BottomMeters decimal.Decimal
	BottomPieces decimal.Decimal

	// UtilizationRate is total stitched pieces over received meters × 100,
	// zero when the receipt quantity is zero.
	UtilizationRate decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// deref treats a missing optional numeric field as zero so it never
// propagates into a sum.
func deref(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// BuildBatchReport reconciles one batch from its already-fetched rows.
// challan must be non-nil; callers map a missing receipt to ErrNotFound
// before ever reaching this function. Empty shorting, output, and expense
// collections are valid and yield zero-valued aggregates.
func BuildBatchReport(challan *WeaverChallan, shortings []ShortingEntry,
	outputs []IsteachingChallan, expenses []Expense) *BatchReport {

	r := &BatchReport{
		WeaverChallan:      challan,
		ShortingEntries:    shortings,
		IsteachingChallans: outputs,
		Expenses:           expenses,
	}

	for _, se := range shortings {
		r.TotalShorting = r.TotalShorting.Add(se.Quantity)
	}
	r.RemainingQuantity = challan.Quantity.Sub(r.TotalShorting)

	for _, e := range expenses {
		r.TotalExpenses = r.TotalExpenses.Add(e.Amount)
	}

	for _, out := range outputs {
		r.TotalStitching += out.Quantity

		switch out.Classification {
		case ClassificationGood:
			r.GoodPieces += out.Quantity
		case ClassificationBad:
			r.BadPieces += out.Quantity
		case ClassificationWastage:
			r.WastagePieces += out.Quantity
		case ClassificationShorting:
			r.ShortingPieces += out.Quantity
		}

		// A "both" challan consumed combined top+bottom panels; its meterage
		// lives in BothTop/BothBottom instead of the plain fields.
		topMeters, bottomMeters := deref(out.TopQty), deref(out.BottomQty)
		if out.IsBoth {
			topMeters, bottomMeters = deref(out.BothTop), deref(out.BothBottom)
		}
		r.TopMeters = r.TopMeters.Add(topMeters)
		r.BottomMeters = r.BottomMeters.Add(bottomMeters)

		if rate := deref(out.TopRate); rate.IsPositive() {
			r.TopPieces = r.TopPieces.Add(topMeters.Div(rate))
		}
		if rate := deref(out.BottomRate); rate.IsPositive() {
			r.BottomPieces = r.BottomPieces.Add(bottomMeters.Div(rate))
		}
	}

	if r.GoodPieces > 0 {
		r.CostPerUnit = r.TotalExpenses.Div(decimal.NewFromInt(int64(r.GoodPieces)))
		r.CostPerUnitDefined = true
	}

	if challan.Quantity.IsPositive() {
		r.UtilizationRate = decimal.NewFromInt(int64(r.TotalStitching)).
			Div(challan.Quantity).Mul(hundred)
	}

	return r
}
