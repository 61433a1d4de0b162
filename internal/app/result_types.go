package app

import (
	"textile-books/internal/core"

	"github.com/shopspring/decimal"
)

// Money values are rendered with two decimal places at this boundary;
// internal accumulation stays at full decimal precision.
func money(d decimal.Decimal) string { return d.StringFixed(2) }

func moneyPtr(d *decimal.Decimal) string {
	if d == nil {
		return "0.00"
	}
	return d.StringFixed(2)
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// LedgerResult is the JSON shape of a partner ledger.
type LedgerResult struct {
	LedgerCode    string `json:"ledger_code"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
	GSTIN         string `json:"gstin,omitempty"`
	IsActive      bool   `json:"is_active"`
}

func toLedgerResult(l *core.Ledger) *LedgerResult {
	return &LedgerResult{
		LedgerCode:    l.LedgerCode,
		Name:          l.Name,
		ContactPerson: strOrEmpty(l.ContactPerson),
		Phone:         strOrEmpty(l.Phone),
		Email:         strOrEmpty(l.Email),
		Address:       strOrEmpty(l.Address),
		GSTIN:         strOrEmpty(l.GSTIN),
		IsActive:      l.IsActive,
	}
}

// LedgerListResult wraps a ledger listing.
type LedgerListResult struct {
	Ledgers []LedgerResult `json:"ledgers"`
}

// QualityDetailResult is one per-quality line.
type QualityDetailResult struct {
	Quality  string `json:"quality"`
	Quantity string `json:"quantity"`
	Rate     string `json:"rate"`
}

// WeaverChallanResult is the JSON shape of a raw-material receipt.
type WeaverChallanResult struct {
	BatchNumber     string                `json:"batch_number"`
	ChallanDate     string                `json:"challan_date"`
	LedgerCode      string                `json:"ledger_code,omitempty"`
	Quantity        string                `json:"quantity"`
	QualityDetails  []QualityDetailResult `json:"quality_details"`
	VendorAmount    string                `json:"vendor_amount"`
	SGST            string                `json:"sgst"`
	CGST            string                `json:"cgst"`
	IGST            string                `json:"igst"`
	TransportCharge string                `json:"transport_charge"`
	Remark          string                `json:"remark,omitempty"`
}

func toWeaverChallanResult(wc *core.WeaverChallan) *WeaverChallanResult {
	r := &WeaverChallanResult{
		BatchNumber:     wc.BatchNumber,
		ChallanDate:     wc.ChallanDate.Format("2006-01-02"),
		LedgerCode:      strOrEmpty(wc.LedgerCode),
		Quantity:        wc.Quantity.String(),
		QualityDetails:  []QualityDetailResult{},
		VendorAmount:    moneyPtr(wc.VendorAmount),
		SGST:            wc.SGST,
		CGST:            wc.CGST,
		IGST:            wc.IGST,
		TransportCharge: moneyPtr(wc.TransportCharge),
		Remark:          strOrEmpty(wc.Remark),
	}
	for _, q := range wc.QualityDetails {
		r.QualityDetails = append(r.QualityDetails, QualityDetailResult{
			Quality:  q.Quality,
			Quantity: q.Quantity.String(),
			Rate:     q.Rate.String(),
		})
	}
	return r
}

// ChallanListResult wraps a weaver challan listing.
type ChallanListResult struct {
	Challans []WeaverChallanResult `json:"challans"`
}

// ShortingResult is the JSON shape of a shorting entry.
type ShortingResult struct {
	ID          int    `json:"id"`
	BatchNumber string `json:"batch_number"`
	Quality     string `json:"quality"`
	Quantity    string `json:"quantity"`
	EntryDate   string `json:"entry_date"`
	Remark      string `json:"remark,omitempty"`
}

func toShortingResult(e *core.ShortingEntry) *ShortingResult {
	return &ShortingResult{
		ID:          e.ID,
		BatchNumber: e.BatchNumber,
		Quality:     e.Quality,
		Quantity:    e.Quantity.String(),
		EntryDate:   e.EntryDate.Format("2006-01-02"),
		Remark:      strOrEmpty(e.Remark),
	}
}

// ShortingListResult wraps a shorting listing.
type ShortingListResult struct {
	Entries []ShortingResult `json:"entries"`
}

// SizeDetailResult is one per-size line.
type SizeDetailResult struct {
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// IsteachingChallanResult is the JSON shape of a stitching record.
type IsteachingChallanResult struct {
	ChallanNumber   string             `json:"challan_number"`
	ChallanDate     string             `json:"challan_date"`
	LedgerCode      string             `json:"ledger_code,omitempty"`
	BatchNumbers    []string           `json:"batch_numbers"`
	Quantity        int                `json:"quantity"`
	TopQty          string             `json:"top_qty"`
	TopRate         string             `json:"top_rate"`
	BottomQty       string             `json:"bottom_qty"`
	BottomRate      string             `json:"bottom_rate"`
	IsBoth          bool               `json:"is_both"`
	BothTop         string             `json:"both_top"`
	BothBottom      string             `json:"both_bottom"`
	Sizes           []SizeDetailResult `json:"sizes"`
	Classification  string             `json:"classification"`
	TransportCharge string             `json:"transport_charge"`
	Remark          string             `json:"remark,omitempty"`
}

func toIsteachingChallanResult(ic *core.IsteachingChallan) *IsteachingChallanResult {
	r := &IsteachingChallanResult{
		ChallanNumber:   ic.ChallanNumber,
		ChallanDate:     ic.ChallanDate.Format("2006-01-02"),
		LedgerCode:      strOrEmpty(ic.LedgerCode),
		BatchNumbers:    ic.BatchNumbers,
		Quantity:        ic.Quantity,
		TopQty:          moneyPtr(ic.TopQty),
		TopRate:         moneyPtr(ic.TopRate),
		BottomQty:       moneyPtr(ic.BottomQty),
		BottomRate:      moneyPtr(ic.BottomRate),
		IsBoth:          ic.IsBoth,
		BothTop:         moneyPtr(ic.BothTop),
		BothBottom:      moneyPtr(ic.BothBottom),
		Sizes:           []SizeDetailResult{},
		Classification:  string(ic.Classification),
		TransportCharge: moneyPtr(ic.TransportCharge),
		Remark:          strOrEmpty(ic.Remark),
	}
	if r.BatchNumbers == nil {
		r.BatchNumbers = []string{}
	}
	for _, sd := range ic.Sizes {
		r.Sizes = append(r.Sizes, SizeDetailResult{Size: sd.Size, Quantity: sd.Quantity})
	}
	return r
}

// StitchingListResult wraps an isteaching challan listing.
type StitchingListResult struct {
	Challans []IsteachingChallanResult `json:"challans"`
}

// ExpenseResult is the JSON shape of a cost entry.
type ExpenseResult struct {
	ID          int    `json:"id"`
	BatchNumber string `json:"batch_number"`
	Amount      string `json:"amount"`
	ExpenseDate string `json:"expense_date"`
	Reason      string `json:"reason"`
}

func toExpenseResult(e *core.Expense) *ExpenseResult {
	return &ExpenseResult{
		ID:          e.ID,
		BatchNumber: e.BatchNumber,
		Amount:      money(e.Amount),
		ExpenseDate: e.ExpenseDate.Format("2006-01-02"),
		Reason:      e.Reason,
	}
}

// ExpenseListResult wraps an expense listing.
type ExpenseListResult struct {
	Expenses []ExpenseResult `json:"expenses"`
}

// VoucherResult is the JSON shape of a payment voucher.
type VoucherResult struct {
	ID          int    `json:"id"`
	Ref         string `json:"ref,omitempty"` // derived, present in listings
	LedgerCode  string `json:"ledger_code"`
	VoucherDate string `json:"voucher_date"`
	Direction   string `json:"direction"`
	Amount      string `json:"amount"`
	Purpose     string `json:"purpose,omitempty"`
}

func toVoucherResult(v *core.PaymentVoucher) *VoucherResult {
	return &VoucherResult{
		ID:          v.ID,
		LedgerCode:  v.LedgerCode,
		VoucherDate: v.VoucherDate.Format("2006-01-02"),
		Direction:   string(v.Direction),
		Amount:      money(v.Amount),
		Purpose:     v.Purpose,
	}
}

// VoucherListResult wraps a voucher listing.
type VoucherListResult struct {
	Vouchers []VoucherResult `json:"vouchers"`
}

// ProductResult is the JSON shape of a product.
type ProductResult struct {
	ProductCode string `json:"product_code"`
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Size        string `json:"size,omitempty"`
	Color       string `json:"color,omitempty"`
	UnitPrice   string `json:"unit_price"`
	StockQty    int    `json:"stock_qty"`
	ImageURL    string `json:"image_url,omitempty"`
	IsActive    bool   `json:"is_active"`
}

func toProductResult(p *core.Product) *ProductResult {
	return &ProductResult{
		ProductCode: p.ProductCode,
		Name:        p.Name,
		Category:    strOrEmpty(p.Category),
		Size:        strOrEmpty(p.Size),
		Color:       strOrEmpty(p.Color),
		UnitPrice:   money(p.UnitPrice),
		StockQty:    p.StockQty,
		ImageURL:    strOrEmpty(p.ImageURL),
		IsActive:    p.IsActive,
	}
}

// ProductListResult wraps a product listing.
type ProductListResult struct {
	Products []ProductResult `json:"products"`
}

// PurchaseOrderLineResult is one line on a purchase order.
type PurchaseOrderLineResult struct {
	LineNumber  int    `json:"line_number"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitCost    string `json:"unit_cost"`
	LineTotal   string `json:"line_total"`
}

// PurchaseOrderResult is the JSON shape of a purchase order.
type PurchaseOrderResult struct {
	ID         int                       `json:"id"`
	PONumber   string                    `json:"po_number,omitempty"`
	LedgerCode string                    `json:"ledger_code"`
	LedgerName string                    `json:"ledger_name"`
	Status     string                    `json:"status"`
	PODate     string                    `json:"po_date"`
	Notes      string                    `json:"notes,omitempty"`
	Total      string                    `json:"total"`
	Lines      []PurchaseOrderLineResult `json:"lines,omitempty"`
}

func toPurchaseOrderResult(po *core.PurchaseOrder) *PurchaseOrderResult {
	r := &PurchaseOrderResult{
		ID:         po.ID,
		PONumber:   strOrEmpty(po.PONumber),
		LedgerCode: po.LedgerCode,
		LedgerName: po.LedgerName,
		Status:     string(po.Status),
		PODate:     po.PODate.Format("2006-01-02"),
		Notes:      strOrEmpty(po.Notes),
		Total:      money(po.Total),
	}
	for _, line := range po.Lines {
		r.Lines = append(r.Lines, PurchaseOrderLineResult{
			LineNumber:  line.LineNumber,
			Description: line.Description,
			Quantity:    line.Quantity.String(),
			UnitCost:    money(line.UnitCost),
			LineTotal:   money(line.LineTotal),
		})
	}
	return r
}

// PurchaseOrderListResult wraps a purchase order listing.
type PurchaseOrderListResult struct {
	Orders []PurchaseOrderResult `json:"orders"`
}

// UserResult is the JSON shape of a user; the password hash never leaves
// the core layer.
type UserResult struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

func toUserResult(u *core.User) *UserResult {
	return &UserResult{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		IsActive: u.IsActive,
	}
}

// UserListResult wraps a user listing.
type UserListResult struct {
	Users []UserResult `json:"users"`
}

// BatchReportResult is the JSON shape of a batch reconciliation report.
type BatchReportResult struct {
	WeaverChallan      *WeaverChallanResult      `json:"weaver_challan"`
	ShortingEntries    []ShortingResult          `json:"shorting_entries"`
	IsteachingChallans []IsteachingChallanResult `json:"isteaching_challans"`
	Expenses           []ExpenseResult           `json:"expenses"`

	TotalShorting     string `json:"total_shorting"`
	RemainingQuantity string `json:"remaining_quantity"`
	TotalStitching    int    `json:"total_stitching"`
	TotalExpenses     string `json:"total_expenses"`

	GoodPieces     int `json:"good_pieces"`
	BadPieces      int `json:"bad_pieces"`
	WastagePieces  int `json:"wastage_pieces"`
	ShortingPieces int `json:"shorting_pieces"`

	CostPerUnit        string `json:"cost_per_unit"`
	CostPerUnitDefined bool   `json:"cost_per_unit_defined"`

	TopMeters    string `json:"top_meters"`
	TopPieces    string `json:"top_pieces"`
	BottomMeters string `json:"bottom_meters"`
	BottomPieces string `json:"bottom_pieces"`

	UtilizationRate string `json:"utilization_rate"`
}

func toBatchReportResult(r *core.BatchReport) *BatchReportResult {
	out := &BatchReportResult{
		WeaverChallan:      toWeaverChallanResult(r.WeaverChallan),
		ShortingEntries:    []ShortingResult{},
		IsteachingChallans: []IsteachingChallanResult{},
		Expenses:           []ExpenseResult{},
		TotalShorting:      r.TotalShorting.String(),
		RemainingQuantity:  r.RemainingQuantity.String(),
		TotalStitching:     r.TotalStitching,
		TotalExpenses:      money(r.TotalExpenses),
		GoodPieces:         r.GoodPieces,
		BadPieces:          r.BadPieces,
		WastagePieces:      r.WastagePieces,
		ShortingPieces:     r.ShortingPieces,
		CostPerUnit:        money(r.CostPerUnit),
		CostPerUnitDefined: r.CostPerUnitDefined,
		TopMeters:          r.TopMeters.String(),
		TopPieces:          r.TopPieces.StringFixed(2),
		BottomMeters:       r.BottomMeters.String(),
		BottomPieces:       r.BottomPieces.StringFixed(2),
		UtilizationRate:    r.UtilizationRate.StringFixed(2),
	}
	for i := range r.ShortingEntries {
		out.ShortingEntries = append(out.ShortingEntries, *toShortingResult(&r.ShortingEntries[i]))
	}
	for i := range r.IsteachingChallans {
		out.IsteachingChallans = append(out.IsteachingChallans, *toIsteachingChallanResult(&r.IsteachingChallans[i]))
	}
	for i := range r.Expenses {
		out.Expenses = append(out.Expenses, *toExpenseResult(&r.Expenses[i]))
	}
	return out
}

// StatementLineResult is one passbook row, most recent first.
type StatementLineResult struct {
	Date    string `json:"date"`
	Detail  string `json:"detail"`
	Remark  string `json:"remark,omitempty"`
	Credit  string `json:"credit"`
	Debit   string `json:"debit"`
	Balance string `json:"balance"`
}

// StatementResult is the passbook plus summary for one ledger.
type StatementResult struct {
	LedgerCode  string                `json:"ledger_code"`
	LedgerName  string                `json:"ledger_name"`
	Lines       []StatementLineResult `json:"lines"`
	TotalCredit string                `json:"total_credit"`
	TotalDebit  string                `json:"total_debit"`
	Balance     string                `json:"balance"`
}

func toStatementResult(ledger *core.Ledger, st *core.LedgerStatement) *StatementResult {
	out := &StatementResult{
		LedgerCode:  ledger.LedgerCode,
		LedgerName:  ledger.Name,
		Lines:       []StatementLineResult{},
		TotalCredit: money(st.TotalCredit),
		TotalDebit:  money(st.TotalDebit),
		Balance:     money(st.Balance),
	}
	for _, line := range st.DisplayLines() {
		out.Lines = append(out.Lines, StatementLineResult{
			Date:    line.Date.Format("2006-01-02"),
			Detail:  line.Detail,
			Remark:  line.Remark,
			Credit:  money(line.Credit),
			Debit:   money(line.Debit),
			Balance: money(line.Balance),
		})
	}
	return out
}

// DashboardRow is one ledger's aggregate position.
type DashboardRow struct {
	LedgerCode  string `json:"ledger_code"`
	LedgerName  string `json:"ledger_name"`
	TotalCredit string `json:"total_credit"`
	TotalDebit  string `json:"total_debit"`
	Balance     string `json:"balance"`
}

// DashboardResult is the overview of all ledgers.
type DashboardResult struct {
	Ledgers []DashboardRow `json:"ledgers"`
}
