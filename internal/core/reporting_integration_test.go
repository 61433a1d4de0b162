package core_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"textile-books/internal/core"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func setupTestDB(t *testing.T) *pgxpool.Pool {
	_ = godotenv.Load("../../.env")

	// Use a dedicated TEST database to avoid wiping the live app database.
	// Set TEST_DATABASE_URL in your .env or environment to run integration tests.
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set — skipping integration test to protect live database")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	_, err = pool.Exec(ctx, `
		TRUNCATE TABLE isteaching_challan_batches, isteaching_challans, shorting_entries,
			expenses, payment_vouchers, weaver_challans, purchase_order_lines,
			purchase_orders, products, ledgers, users CASCADE;
	`)
	if err != nil {
		t.Fatalf("Failed to clean test database: %v", err)
	}

	return pool
}

func newServices(pool *pgxpool.Pool) (core.LedgerService, core.ChallanService, core.StitchingService,
	core.ExpenseService, core.VoucherService, core.ReportingService) {
	ledgers := core.NewLedgerService(pool)
	challans := core.NewChallanService(pool)
	stitching := core.NewStitchingService(pool)
	expenses := core.NewExpenseService(pool)
	vouchers := core.NewVoucherService(pool)
	reporting := core.NewReportingService(ledgers, challans, stitching, expenses, vouchers)
	return ledgers, challans, stitching, expenses, vouchers, reporting
}

func TestReporting_BatchReport_EndToEnd(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	ledgers, challans, stitching, expenses, _, reporting := newServices(pool)

	ledger, err := ledgers.CreateLedger(ctx, core.LedgerInput{
		LedgerCode: "L-" + uuid.NewString()[:8], Name: "Test Weaver",
	})
	if err != nil {
		t.Fatalf("CreateLedger failed: %v", err)
	}

	wc, err := challans.CreateWeaverChallan(ctx, core.WeaverChallanInput{
		ChallanDate: day("2025-01-01"),
		LedgerCode:  ledger.LedgerCode,
		Quantity:    dec("500"),
		QualityDetails: []core.QualityDetail{
			{Quality: "60x60", Quantity: dec("500"), Rate: dec("42")},
		},
		SGST: "9%", CGST: "9%", IGST: "Not Applicable",
	})
	if err != nil {
		t.Fatalf("CreateWeaverChallan failed: %v", err)
	}

	if _, err := challans.AddShorting(ctx, core.ShortingInput{
		BatchNumber: wc.BatchNumber, Quality: "60x60",
		Quantity: dec("50"), EntryDate: day("2025-01-02"),
	}); err != nil {
		t.Fatalf("AddShorting failed: %v", err)
	}

	good, err := stitching.CreateIsteachingChallan(ctx, core.IsteachingChallanInput{
		ChallanDate:  day("2025-01-05"),
		BatchNumbers: []string{wc.BatchNumber},
		Quantity:     100,
	})
	if err != nil {
		t.Fatalf("CreateIsteachingChallan failed: %v", err)
	}
	if err := stitching.Classify(ctx, good.ChallanNumber, core.ClassificationGood); err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	bad, err := stitching.CreateIsteachingChallan(ctx, core.IsteachingChallanInput{
		ChallanDate:  day("2025-01-06"),
		BatchNumbers: []string{wc.BatchNumber},
		Quantity:     150,
	})
	if err != nil {
		t.Fatalf("CreateIsteachingChallan failed: %v", err)
	}
	if err := stitching.Classify(ctx, bad.ChallanNumber, core.ClassificationBad); err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	if _, err := expenses.AddExpense(ctx, core.ExpenseInput{
		BatchNumber: wc.BatchNumber, Amount: dec("2000"),
		ExpenseDate: day("2025-01-07"), Reason: "dyeing",
	}); err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}

	report, err := reporting.GetBatchReport(ctx, wc.BatchNumber)
	if err != nil {
		t.Fatalf("GetBatchReport failed: %v", err)
	}
	if !report.RemainingQuantity.Equal(dec("450")) {
		t.Errorf("RemainingQuantity = %s, want 450", report.RemainingQuantity)
	}
	if report.TotalStitching != 250 || report.GoodPieces != 100 {
		t.Errorf("stitching = %d good = %d, want 250/100", report.TotalStitching, report.GoodPieces)
	}
	if !report.CostPerUnitDefined || !report.CostPerUnit.Equal(dec("20")) {
		t.Errorf("CostPerUnit = %s (defined=%v), want 20", report.CostPerUnit, report.CostPerUnitDefined)
	}
}

func TestReporting_BatchReport_NotFound(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	_, _, _, _, _, reporting := newServices(pool)
	_, err := reporting.GetBatchReport(context.Background(), "BN00000000000")
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReporting_LedgerStatement_EndToEnd(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	ledgers, challans, _, _, vouchers, reporting := newServices(pool)

	ledger, err := ledgers.CreateLedger(ctx, core.LedgerInput{
		LedgerCode: "L-" + uuid.NewString()[:8], Name: "Test Partner",
	})
	if err != nil {
		t.Fatalf("CreateLedger failed: %v", err)
	}

	vendorAmount := decimal.NewFromInt(1000)
	transport := decimal.NewFromInt(100)
	if _, err := challans.CreateWeaverChallan(ctx, core.WeaverChallanInput{
		ChallanDate:     day("2025-01-01"),
		LedgerCode:      ledger.LedgerCode,
		Quantity:        dec("500"),
		VendorAmount:    &vendorAmount,
		SGST:            "9%",
		CGST:            "9%",
		IGST:            "Not Applicable",
		TransportCharge: &transport,
	}); err != nil {
		t.Fatalf("CreateWeaverChallan failed: %v", err)
	}

	if _, err := vouchers.CreateVoucher(ctx, core.PaymentVoucherInput{
		LedgerCode: ledger.LedgerCode, VoucherDate: day("2025-01-15"),
		Direction: core.DirectionDebit, Amount: dec("1000"), Purpose: "part payment",
	}); err != nil {
		t.Fatalf("CreateVoucher failed: %v", err)
	}

	st, err := reporting.GetLedgerStatement(ctx, ledger.LedgerCode)
	if err != nil {
		t.Fatalf("GetLedgerStatement failed: %v", err)
	}
	if len(st.Lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(st.Lines))
	}
	if !st.Lines[0].Credit.Equal(dec("1280")) {
		t.Errorf("receipt credit = %s, want 1280", st.Lines[0].Credit)
	}
	if st.Lines[1].Detail != "VCH-D-202501-001" {
		t.Errorf("voucher detail = %q, want VCH-D-202501-001", st.Lines[1].Detail)
	}
	if !st.Balance.Equal(dec("280")) {
		t.Errorf("balance = %s, want 280", st.Balance)
	}
}
