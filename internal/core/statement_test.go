package core_test

import (
	"testing"

	"textile-books/internal/core"

	"github.com/shopspring/decimal"
)

func TestBuildLedgerStatement_ReceiptCreditWithGST(t *testing.T) {
	// vendorAmount=1000, sgst=9%, cgst=9%, igst=NA, transport=100
	// → credit = 100 + (1000 + 90 + 90 + 0) = 1280
	receipts := []core.WeaverChallan{
		{
			BatchNumber:     "BN20250101001",
			ChallanDate:     day("2025-01-01"),
			VendorAmount:    decPtr("1000"),
			SGST:            "9%",
			CGST:            "9%",
			IGST:            "Not Applicable",
			TransportCharge: decPtr("100"),
		},
	}

	st := core.BuildLedgerStatement(receipts, nil)
	if len(st.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(st.Lines))
	}
	if !st.Lines[0].Credit.Equal(dec("1280")) {
		t.Errorf("credit = %s, want 1280", st.Lines[0].Credit)
	}
	if !st.TotalCredit.Equal(dec("1280")) || !st.Balance.Equal(dec("1280")) {
		t.Errorf("summary = %s/%s, want 1280/1280", st.TotalCredit, st.Balance)
	}
}

func TestBuildLedgerStatement_ReceiptMissingOptionals(t *testing.T) {
	// all four amounts absent → zero credit line, not a panic
	receipts := []core.WeaverChallan{
		{BatchNumber: "BN20250102001", ChallanDate: day("2025-01-02")},
	}
	st := core.BuildLedgerStatement(receipts, nil)
	if len(st.Lines) != 1 || !st.Lines[0].Credit.IsZero() {
		t.Fatalf("expected one zero-credit line, got %+v", st.Lines)
	}
}

func TestAssignVoucherRefs(t *testing.T) {
	vouchers := []core.PaymentVoucher{
		{ID: 1, VoucherDate: day("2025-01-05"), Direction: core.DirectionCredit, Amount: dec("500")},
		{ID: 2, VoucherDate: day("2025-01-10"), Direction: core.DirectionCredit, Amount: dec("300")},
		{ID: 3, VoucherDate: day("2025-01-07"), Direction: core.DirectionDebit, Amount: dec("200")},
		{ID: 4, VoucherDate: day("2025-02-01"), Direction: core.DirectionDebit, Amount: dec("100")},
	}

	refs := core.AssignVoucherRefs(vouchers)
	got := map[int]string{}
	for _, r := range refs {
		got[r.VoucherID] = r.Ref
	}

	want := map[int]string{
		1: "VCH-C-202501-001",
		2: "VCH-C-202501-002",
		3: "VCH-D-202501-001",
		4: "VCH-D-202502-002", // debit counter continues across months
	}
	for id, ref := range want {
		if got[id] != ref {
			t.Errorf("voucher %d ref = %q, want %q", id, got[id], ref)
		}
	}
}

func TestAssignVoucherRefs_SequencesIncreaseByDate(t *testing.T) {
	// vouchers supplied out of order; sequences must follow date order
	vouchers := []core.PaymentVoucher{
		{ID: 10, VoucherDate: day("2025-03-20"), Direction: core.DirectionCredit},
		{ID: 11, VoucherDate: day("2025-03-01"), Direction: core.DirectionCredit},
		{ID: 12, VoucherDate: day("2025-03-10"), Direction: core.DirectionCredit},
	}
	refs := core.AssignVoucherRefs(vouchers)
	got := map[int]string{}
	for _, r := range refs {
		got[r.VoucherID] = r.Ref
	}
	if got[11] != "VCH-C-202503-001" || got[12] != "VCH-C-202503-002" || got[10] != "VCH-C-202503-003" {
		t.Errorf("refs out of date order: %v", got)
	}
}

func TestBuildLedgerStatement_VoucherScenario(t *testing.T) {
	// Two credit vouchers, 500 then 300 → totalCredit 800, balance 800.
	vouchers := []core.PaymentVoucher{
		{ID: 1, VoucherDate: day("2025-01-05"), Direction: core.DirectionCredit, Amount: dec("500"), Purpose: "advance"},
		{ID: 2, VoucherDate: day("2025-01-10"), Direction: core.DirectionCredit, Amount: dec("300"), Purpose: "advance"},
	}

	st := core.BuildLedgerStatement(nil, vouchers)
	if len(st.Lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(st.Lines))
	}
	if st.Lines[0].Detail != "VCH-C-202501-001" || st.Lines[1].Detail != "VCH-C-202501-002" {
		t.Errorf("details = %q, %q", st.Lines[0].Detail, st.Lines[1].Detail)
	}
	if !st.TotalCredit.Equal(dec("800")) || !st.TotalDebit.IsZero() || !st.Balance.Equal(dec("800")) {
		t.Errorf("summary = %s/%s/%s, want 800/0/800", st.TotalCredit, st.TotalDebit, st.Balance)
	}
}

func TestBuildLedgerStatement_RunningBalance(t *testing.T) {
	receipts := []core.WeaverChallan{
		{BatchNumber: "BN1", ChallanDate: day("2025-01-01"), VendorAmount: decPtr("1000"),
			SGST: "Not Applicable", CGST: "Not Applicable", IGST: "Not Applicable"},
	}
	vouchers := []core.PaymentVoucher{
		{ID: 1, VoucherDate: day("2025-01-03"), Direction: core.DirectionDebit, Amount: dec("400")},
		{ID: 2, VoucherDate: day("2025-01-06"), Direction: core.DirectionCredit, Amount: dec("150")},
	}

	st := core.BuildLedgerStatement(receipts, vouchers)
	wantBalances := []string{"1000", "600", "750"}
	for i, want := range wantBalances {
		if !st.Lines[i].Balance.Equal(dec(want)) {
			t.Errorf("line %d balance = %s, want %s", i, st.Lines[i].Balance, want)
		}
	}

	// last chronological running balance equals the summary balance
	last := st.Lines[len(st.Lines)-1].Balance
	if !last.Equal(st.Balance) {
		t.Errorf("last running balance %s != summary balance %s", last, st.Balance)
	}
	if !st.Balance.Equal(st.TotalCredit.Sub(st.TotalDebit)) {
		t.Errorf("balance %s != totalCredit - totalDebit", st.Balance)
	}
}

func TestBuildLedgerStatement_SameDayTieBreak(t *testing.T) {
	// Same-day receipt and voucher: the receipt line comes first because
	// receipts are concatenated before vouchers ahead of the stable sort.
	receipts := []core.WeaverChallan{
		{BatchNumber: "BN1", ChallanDate: day("2025-04-01"), VendorAmount: decPtr("100"),
			SGST: "Not Applicable", CGST: "Not Applicable", IGST: "Not Applicable"},
	}
	vouchers := []core.PaymentVoucher{
		{ID: 1, VoucherDate: day("2025-04-01"), Direction: core.DirectionDebit, Amount: dec("100")},
	}

	st := core.BuildLedgerStatement(receipts, vouchers)
	if st.Lines[0].Detail != "BN1" {
		t.Errorf("first same-day line = %q, want the receipt", st.Lines[0].Detail)
	}
	if !st.Lines[0].Balance.Equal(dec("100")) || !st.Lines[1].Balance.IsZero() {
		t.Errorf("balances = %s, %s, want 100, 0", st.Lines[0].Balance, st.Lines[1].Balance)
	}
}

func TestLedgerStatement_DisplayLinesReversed(t *testing.T) {
	vouchers := []core.PaymentVoucher{
		{ID: 1, VoucherDate: day("2025-01-01"), Direction: core.DirectionCredit, Amount: dec("100")},
		{ID: 2, VoucherDate: day("2025-01-02"), Direction: core.DirectionCredit, Amount: dec("50")},
	}
	st := core.BuildLedgerStatement(nil, vouchers)
	display := st.DisplayLines()

	if display[0].Date != day("2025-01-02") {
		t.Errorf("display[0] date = %s, want most recent first", display[0].Date)
	}
	// balances keep their chronological values after reversal
	if !display[0].Balance.Equal(dec("150")) || !display[1].Balance.Equal(dec("100")) {
		t.Errorf("display balances = %s, %s, want 150, 100", display[0].Balance, display[1].Balance)
	}
	// the chronological lines are untouched
	if !st.Lines[0].Balance.Equal(dec("100")) {
		t.Errorf("chronological lines mutated by DisplayLines")
	}
}

func TestBuildLedgerStatement_Empty(t *testing.T) {
	st := core.BuildLedgerStatement(nil, nil)
	if len(st.Lines) != 0 {
		t.Fatalf("got %d lines, want 0", len(st.Lines))
	}
	if !st.TotalCredit.IsZero() || !st.TotalDebit.IsZero() || !st.Balance.IsZero() {
		t.Errorf("summary not zero: %s/%s/%s", st.TotalCredit, st.TotalDebit, st.Balance)
	}
	if len(st.DisplayLines()) != 0 {
		t.Error("DisplayLines on empty statement should be empty")
	}
}

func TestBuildLedgerStatement_DecimalExactness(t *testing.T) {
	// repeated small amounts stay exact in decimal arithmetic
	var vouchers []core.PaymentVoucher
	for i := 0; i < 10; i++ {
		vouchers = append(vouchers, core.PaymentVoucher{
			ID: i + 1, VoucherDate: day("2025-05-01"),
			Direction: core.DirectionCredit, Amount: dec("0.1"),
		})
	}
	st := core.BuildLedgerStatement(nil, vouchers)
	if !st.TotalCredit.Equal(decimal.NewFromInt(1)) {
		t.Errorf("TotalCredit = %s, want exactly 1", st.TotalCredit)
	}
}
