package core_test

import (
	"testing"
	"time"

	"textile-books/internal/core"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBuildBatchReport_FullBatch(t *testing.T) {
	// Receipt of 500m, one shorting of 50m, good 100 + bad 150 pieces,
	// one expense of 2000 → remaining 450, stitched 250, cost/unit 20.
	challan := &core.WeaverChallan{
		BatchNumber: "BN20250101001",
		ChallanDate: day("2025-01-01"),
		Quantity:    dec("500"),
	}
	shortings := []core.ShortingEntry{
		{BatchNumber: "BN20250101001", Quality: "60x60", Quantity: dec("50")},
	}
	outputs := []core.IsteachingChallan{
		{Quantity: 100, Classification: core.ClassificationGood},
		{Quantity: 150, Classification: core.ClassificationBad},
	}
	expenses := []core.Expense{
		{BatchNumber: "BN20250101001", Amount: dec("2000")},
	}

	r := core.BuildBatchReport(challan, shortings, outputs, expenses)

	if !r.TotalShorting.Equal(dec("50")) {
		t.Errorf("TotalShorting = %s, want 50", r.TotalShorting)
	}
	if !r.RemainingQuantity.Equal(dec("450")) {
		t.Errorf("RemainingQuantity = %s, want 450", r.RemainingQuantity)
	}
	if r.TotalStitching != 250 {
		t.Errorf("TotalStitching = %d, want 250", r.TotalStitching)
	}
	if r.GoodPieces != 100 || r.BadPieces != 150 {
		t.Errorf("good/bad = %d/%d, want 100/150", r.GoodPieces, r.BadPieces)
	}
	if !r.TotalExpenses.Equal(dec("2000")) {
		t.Errorf("TotalExpenses = %s, want 2000", r.TotalExpenses)
	}
	if !r.CostPerUnitDefined {
		t.Fatal("CostPerUnitDefined = false, want true")
	}
	if !r.CostPerUnit.Equal(dec("20")) {
		t.Errorf("CostPerUnit = %s, want 20", r.CostPerUnit)
	}
	if want := dec("50"); !r.UtilizationRate.Equal(want) {
		t.Errorf("UtilizationRate = %s, want %s", r.UtilizationRate, want)
	}
}

func TestBuildBatchReport_RemainingInvariant(t *testing.T) {
	tests := []struct {
		name      string
		receipt   string
		shortings []string
		want      string
	}{
		{"no shorting", "500", nil, "500"},
		{"single shorting", "500", []string{"50"}, "450"},
		{"multiple shortings", "1000", []string{"25.5", "74.5", "100"}, "800"},
		{"shorting exceeds receipt", "100", []string{"150"}, "-50"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			challan := &core.WeaverChallan{Quantity: dec(tc.receipt)}
			var shortings []core.ShortingEntry
			for _, q := range tc.shortings {
				shortings = append(shortings, core.ShortingEntry{Quantity: dec(q)})
			}
			r := core.BuildBatchReport(challan, shortings, nil, nil)
			if !r.RemainingQuantity.Equal(dec(tc.want)) {
				t.Errorf("RemainingQuantity = %s, want %s", r.RemainingQuantity, tc.want)
			}
			if !r.RemainingQuantity.Equal(challan.Quantity.Sub(r.TotalShorting)) {
				t.Error("remaining != receipt - totalShorting")
			}
		})
	}
}

func TestBuildBatchReport_NoOutputs(t *testing.T) {
	challan := &core.WeaverChallan{Quantity: dec("300")}
	r := core.BuildBatchReport(challan, nil, nil, nil)

	if r.TotalStitching != 0 {
		t.Errorf("TotalStitching = %d, want 0", r.TotalStitching)
	}
	if !r.TopMeters.IsZero() || !r.BottomMeters.IsZero() ||
		!r.TopPieces.IsZero() || !r.BottomPieces.IsZero() {
		t.Error("top/bottom aggregates should all be zero for a batch with no outputs")
	}
	if !r.UtilizationRate.IsZero() {
		t.Errorf("UtilizationRate = %s, want 0", r.UtilizationRate)
	}
	if r.CostPerUnitDefined {
		t.Error("CostPerUnitDefined = true with no good pieces")
	}
}

func TestBuildBatchReport_NoGoodPieces_NoDivision(t *testing.T) {
	challan := &core.WeaverChallan{Quantity: dec("200")}
	outputs := []core.IsteachingChallan{
		{Quantity: 80, Classification: core.ClassificationBad},
		{Quantity: 20, Classification: core.ClassificationWastage},
	}
	expenses := []core.Expense{{Amount: dec("5000")}}

	r := core.BuildBatchReport(challan, nil, outputs, expenses)
	if r.CostPerUnitDefined {
		t.Error("CostPerUnitDefined = true, want false when goodPieces == 0")
	}
	if !r.CostPerUnit.IsZero() {
		t.Errorf("CostPerUnit = %s, want 0", r.CostPerUnit)
	}
}

func TestBuildBatchReport_ZeroReceiptQuantity(t *testing.T) {
	challan := &core.WeaverChallan{Quantity: decimal.Zero}
	outputs := []core.IsteachingChallan{{Quantity: 10, Classification: core.ClassificationGood}}

	r := core.BuildBatchReport(challan, nil, outputs, nil)
	if !r.UtilizationRate.IsZero() {
		t.Errorf("UtilizationRate = %s, want 0 for zero receipt quantity", r.UtilizationRate)
	}
}

func TestBuildBatchReport_TopBottomAggregates(t *testing.T) {
	challan := &core.WeaverChallan{Quantity: dec("1000")}
	outputs := []core.IsteachingChallan{
		{
			// plain top/bottom: 100m tops at 2m/piece, 60m bottoms at 1.5m/piece
			Quantity:   50,
			TopQty:     decPtr("100"),
			TopRate:    decPtr("2"),
			BottomQty:  decPtr("60"),
			BottomRate: decPtr("1.5"),
		},
		{
			// "both" challan: meterage comes from both_top/both_bottom, the
			// plain fields are ignored
			Quantity:   30,
			IsBoth:     true,
			TopQty:     decPtr("999"),
			BottomQty:  decPtr("999"),
			TopRate:    decPtr("2"),
			BottomRate: decPtr("2"),
			BothTop:    decPtr("40"),
			BothBottom: decPtr("20"),
		},
		{
			// missing optionals count as zero, not a panic
			Quantity: 10,
		},
	}

	r := core.BuildBatchReport(challan, nil, outputs, nil)

	if !r.TopMeters.Equal(dec("140")) {
		t.Errorf("TopMeters = %s, want 140", r.TopMeters)
	}
	if !r.BottomMeters.Equal(dec("80")) {
		t.Errorf("BottomMeters = %s, want 80", r.BottomMeters)
	}
	// 100/2 + 40/2 = 70 top pieces; 60/1.5 + 20/2 = 50 bottom pieces
	if !r.TopPieces.Equal(dec("70")) {
		t.Errorf("TopPieces = %s, want 70", r.TopPieces)
	}
	if !r.BottomPieces.Equal(dec("50")) {
		t.Errorf("BottomPieces = %s, want 50", r.BottomPieces)
	}
}

func TestBuildBatchReport_ClassificationCounts(t *testing.T) {
	challan := &core.WeaverChallan{Quantity: dec("500")}
	outputs := []core.IsteachingChallan{
		{Quantity: 10, Classification: core.ClassificationGood},
		{Quantity: 15, Classification: core.ClassificationGood},
		{Quantity: 5, Classification: core.ClassificationBad},
		{Quantity: 3, Classification: core.ClassificationWastage},
		{Quantity: 2, Classification: core.ClassificationShorting},
		{Quantity: 7, Classification: core.ClassificationUnclassified},
	}

	r := core.BuildBatchReport(challan, nil, outputs, nil)
	if r.GoodPieces != 25 || r.BadPieces != 5 || r.WastagePieces != 3 || r.ShortingPieces != 2 {
		t.Errorf("counts = %d/%d/%d/%d, want 25/5/3/2",
			r.GoodPieces, r.BadPieces, r.WastagePieces, r.ShortingPieces)
	}
	// unclassified pieces still count toward total stitching
	if r.TotalStitching != 42 {
		t.Errorf("TotalStitching = %d, want 42", r.TotalStitching)
	}
}
