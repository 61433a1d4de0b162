package export_test

import (
	"bytes"
	"testing"
	"time"

	"textile-books/internal/core"
	"textile-books/internal/export"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func cell(t *testing.T, f *excelize.File, ref string) string {
	t.Helper()
	v, err := f.GetCellValue("Sheet1", ref)
	if err != nil {
		t.Fatalf("GetCellValue(%s): %v", ref, err)
	}
	return v
}

func TestLedgerStatementXLSX(t *testing.T) {
	ledger := &core.Ledger{LedgerCode: "WVR-001", Name: "Shree Weaving Works"}
	st := &core.LedgerStatement{
		Lines: []core.StatementLine{
			{
				Date:    day(2025, 1, 10),
				Detail:  "BN20250110001",
				Credit:  decimal.NewFromInt(1280),
				Balance: decimal.NewFromInt(1280),
			},
			{
				Date:    day(2025, 1, 28),
				Detail:  "VCH-D-202501-001",
				Debit:   decimal.NewFromInt(500),
				Balance: decimal.NewFromInt(780),
			},
		},
		TotalCredit: decimal.NewFromInt(1280),
		TotalDebit:  decimal.NewFromInt(500),
		Balance:     decimal.NewFromInt(780),
	}

	data, err := export.LedgerStatementXLSX(ledger, st)
	if err != nil {
		t.Fatalf("LedgerStatementXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	if got := cell(t, f, "A2"); got != "WVR-001 — Shree Weaving Works" {
		t.Errorf("header = %q", got)
	}
	// Most recent line first.
	if got := cell(t, f, "B5"); got != "VCH-D-202501-001" {
		t.Errorf("first row detail = %q, want voucher ref", got)
	}
	if got := cell(t, f, "F5"); got != "780.00" {
		t.Errorf("first row balance = %q, want 780.00", got)
	}
	if got := cell(t, f, "B6"); got != "BN20250110001" {
		t.Errorf("second row detail = %q, want batch number", got)
	}
}

func TestBatchReportXLSX(t *testing.T) {
	report := &core.BatchReport{
		WeaverChallan: &core.WeaverChallan{
			BatchNumber: "BN20250110001",
			ChallanDate: day(2025, 1, 10),
			Quantity:    decimal.NewFromInt(500),
		},
		IsteachingChallans: []core.IsteachingChallan{
			{ChallanNumber: "ISC20250120001", ChallanDate: day(2025, 1, 20), Quantity: 100, Classification: core.ClassificationGood},
		},
		TotalShorting:      decimal.NewFromInt(50),
		RemainingQuantity:  decimal.NewFromInt(450),
		TotalStitching:     100,
		TotalExpenses:      decimal.NewFromInt(2000),
		GoodPieces:         100,
		CostPerUnit:        decimal.NewFromInt(20),
		CostPerUnitDefined: true,
		UtilizationRate:    decimal.NewFromInt(20),
	}

	data, err := export.BatchReportXLSX(report)
	if err != nil {
		t.Fatalf("BatchReportXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	if got := cell(t, f, "A2"); got != "BN20250110001" {
		t.Errorf("batch number = %q", got)
	}

	// Find the per-output table row and the cost-per-unit summary line.
	rows, err := f.GetRows("Sheet1")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	foundOutput, foundCost := false, false
	for _, row := range rows {
		if len(row) > 0 && row[0] == "ISC20250120001" {
			foundOutput = true
		}
		if len(row) > 1 && row[0] == "Cost Per Unit" && row[1] == "20.00" {
			foundCost = true
		}
	}
	if !foundOutput {
		t.Error("output challan row missing from workbook")
	}
	if !foundCost {
		t.Error("cost per unit summary missing from workbook")
	}
}
