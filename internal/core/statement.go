package core

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// StatementLine is one passbook row in a ledger statement. Balance is the
// running balance after this line, computed in chronological order.
type StatementLine struct {
	Date    time.Time
	Detail  string
	Remark  string
	Credit  decimal.Decimal
	Debit   decimal.Decimal
	Balance decimal.Decimal
}

// LedgerStatement is the passbook plus summary totals for one ledger.
// Lines are chronological (oldest first); DisplayLines returns the
// presentation order.
type LedgerStatement struct {
	Lines       []StatementLine
	TotalCredit decimal.Decimal
	TotalDebit  decimal.Decimal
	Balance     decimal.Decimal
}

// DisplayLines returns the passbook most-recent-first. Running balances
// stay as computed chronologically and are not recomputed for the
// reversed order.
func (s *LedgerStatement) DisplayLines() []StatementLine {
	out := make([]StatementLine, len(s.Lines))
	for i, line := range s.Lines {
		out[len(s.Lines)-1-i] = line
	}
	return out
}

// VoucherRef is the derived human-readable reference for one voucher.
type VoucherRef struct {
	VoucherID int
	Ref       string
}

// AssignVoucherRefs derives VCH-{C|D}-{yyyymm}-{seq} references for a
// ledger's vouchers. Credit and Debit sequences count independently,
// starting at 1, over the vouchers sorted by date ascending. The sequence
// is scoped to the whole ledger, never to a month or page, so the mapping
// is deterministic for any fetch window covering all vouchers.
func AssignVoucherRefs(vouchers []PaymentVoucher) []VoucherRef {
	ordered := make([]PaymentVoucher, len(vouchers))
	copy(ordered, vouchers)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].VoucherDate.Before(ordered[j].VoucherDate)
	})

	refs := make([]VoucherRef, 0, len(ordered))
	creditSeq, debitSeq := 0, 0
	for _, v := range ordered {
		tag := "C"
		var seq int
		if v.Direction == DirectionDebit {
			tag = "D"
			debitSeq++
			seq = debitSeq
		} else {
			creditSeq++
			seq = creditSeq
		}
		refs = append(refs, VoucherRef{
			VoucherID: v.ID,
			Ref:       fmt.Sprintf("VCH-%s-%s-%03d", tag, v.VoucherDate.Format("200601"), seq),
		})
	}
	return refs
}

// BuildLedgerStatement turns a ledger's receipts and vouchers into an
// ordered passbook with running balance plus summary totals.
//
// Each receipt contributes a credit line of transport charge plus the
// vendor amount grossed up by its SGST/CGST/IGST rates. Each voucher
// contributes a credit or debit line per its direction. Receipts are
// concatenated before vouchers and the combined list is stably sorted by
// date, so same-day receipts precede same-day vouchers. The running
// balance is accumulated in a single chronological pass.
//
// A ledger with no rows yields an empty passbook and zero summary.
func BuildLedgerStatement(receipts []WeaverChallan, vouchers []PaymentVoucher) *LedgerStatement {
	st := &LedgerStatement{}

	lines := make([]StatementLine, 0, len(receipts)+len(vouchers))
	for _, wc := range receipts {
		base := deref(wc.VendorAmount)
		credit := deref(wc.TransportCharge).
			Add(WithGST(base, wc.SGST, wc.CGST, wc.IGST))
		remark := ""
		if wc.Remark != nil {
			remark = *wc.Remark
		}
		lines = append(lines, StatementLine{
			Date:   wc.ChallanDate,
			Detail: wc.BatchNumber,
			Remark: remark,
			Credit: credit,
		})
	}

	refByID := make(map[int]string, len(vouchers))
	for _, ref := range AssignVoucherRefs(vouchers) {
		refByID[ref.VoucherID] = ref.Ref
	}
	for _, v := range vouchers {
		line := StatementLine{
			Date:   v.VoucherDate,
			Detail: refByID[v.ID],
			Remark: v.Purpose,
		}
		if v.Direction == DirectionDebit {
			line.Debit = v.Amount
		} else {
			line.Credit = v.Amount
		}
		lines = append(lines, line)
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Date.Before(lines[j].Date)
	})

	balance := decimal.Zero
	for i := range lines {
		balance = balance.Add(lines[i].Credit).Sub(lines[i].Debit)
		lines[i].Balance = balance
		st.TotalCredit = st.TotalCredit.Add(lines[i].Credit)
		st.TotalDebit = st.TotalDebit.Add(lines[i].Debit)
	}
	st.Lines = lines
	st.Balance = st.TotalCredit.Sub(st.TotalDebit)
	return st
}
