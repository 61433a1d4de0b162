package app

import (
	"context"
	"fmt"
	"time"

	"textile-books/internal/core"
	"textile-books/internal/export"

	"github.com/shopspring/decimal"
)

type appService struct {
	users     core.UserService
	ledgers   core.LedgerService
	challans  core.ChallanService
	stitching core.StitchingService
	expenses  core.ExpenseService
	vouchers  core.VoucherService
	products  core.ProductService
	orders    core.PurchaseOrderService
	reporting core.ReportingService
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(
	users core.UserService,
	ledgers core.LedgerService,
	challans core.ChallanService,
	stitching core.StitchingService,
	expenses core.ExpenseService,
	vouchers core.VoucherService,
	products core.ProductService,
	orders core.PurchaseOrderService,
	reporting core.ReportingService,
) ApplicationService {
	return &appService{
		users:     users,
		ledgers:   ledgers,
		challans:  challans,
		stitching: stitching,
		expenses:  expenses,
		vouchers:  vouchers,
		products:  products,
		orders:    orders,
		reporting: reporting,
	}
}

// ── parsing helpers ───────────────────────────────────────────────────────────

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, core.ErrInvalid)
	}
	return t, nil
}

func parseAmount(field, s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s %q: %w", field, s, core.ErrInvalid)
	}
	return d, nil
}

// parseOptAmount maps an empty string to nil, so absent numeric fields stay
// NULL in the store and count as zero in the engines.
func parseOptAmount(field, s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	d, err := parseAmount(field, s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ── users ─────────────────────────────────────────────────────────────────────

func (s *appService) Authenticate(ctx context.Context, req LoginRequest) (*UserResult, error) {
	u, err := s.users.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}
	return toUserResult(u), nil
}

func (s *appService) CreateUser(ctx context.Context, req UserRequest) (*UserResult, error) {
	u, err := s.users.CreateUser(ctx, core.UserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return nil, err
	}
	return toUserResult(u), nil
}

func (s *appService) ListUsers(ctx context.Context) (*UserListResult, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	out := &UserListResult{Users: []UserResult{}}
	for i := range users {
		out.Users = append(out.Users, *toUserResult(&users[i]))
	}
	return out, nil
}

func (s *appService) DeactivateUser(ctx context.Context, username string) error {
	return s.users.DeactivateUser(ctx, username)
}

// ── ledgers ───────────────────────────────────────────────────────────────────

func ledgerInput(req LedgerRequest) core.LedgerInput {
	return core.LedgerInput{
		LedgerCode:    req.LedgerCode,
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		GSTIN:         req.GSTIN,
	}
}

func (s *appService) CreateLedger(ctx context.Context, req LedgerRequest) (*LedgerResult, error) {
	l, err := s.ledgers.CreateLedger(ctx, ledgerInput(req))
	if err != nil {
		return nil, err
	}
	return toLedgerResult(l), nil
}

func (s *appService) UpdateLedger(ctx context.Context, code string, req LedgerRequest) (*LedgerResult, error) {
	l, err := s.ledgers.UpdateLedger(ctx, code, ledgerInput(req))
	if err != nil {
		return nil, err
	}
	return toLedgerResult(l), nil
}

func (s *appService) DeactivateLedger(ctx context.Context, code string) error {
	return s.ledgers.DeactivateLedger(ctx, code)
}

func (s *appService) GetLedger(ctx context.Context, code string) (*LedgerResult, error) {
	l, err := s.ledgers.GetLedgerByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return toLedgerResult(l), nil
}

func (s *appService) ListLedgers(ctx context.Context, search string) (*LedgerListResult, error) {
	ledgers, err := s.ledgers.ListLedgers(ctx, search)
	if err != nil {
		return nil, err
	}
	out := &LedgerListResult{Ledgers: []LedgerResult{}}
	for i := range ledgers {
		out.Ledgers = append(out.Ledgers, *toLedgerResult(&ledgers[i]))
	}
	return out, nil
}

// ── weaver challans ───────────────────────────────────────────────────────────

func (s *appService) weaverChallanInput(req WeaverChallanRequest) (core.WeaverChallanInput, error) {
	var input core.WeaverChallanInput
	date, err := parseDate(req.ChallanDate)
	if err != nil {
		return input, err
	}
	qty, err := parseAmount("quantity", req.Quantity)
	if err != nil {
		return input, err
	}
	vendorAmount, err := parseOptAmount("vendor_amount", req.VendorAmount)
	if err != nil {
		return input, err
	}
	transport, err := parseOptAmount("transport_charge", req.TransportCharge)
	if err != nil {
		return input, err
	}

	var qualities []core.QualityDetail
	for _, q := range req.QualityDetails {
		qQty, err := parseAmount("quality quantity", q.Quantity)
		if err != nil {
			return input, err
		}
		rate := decimal.Zero
		if q.Rate != "" {
			if rate, err = parseAmount("quality rate", q.Rate); err != nil {
				return input, err
			}
		}
		qualities = append(qualities, core.QualityDetail{Quality: q.Quality, Quantity: qQty, Rate: rate})
	}

	return core.WeaverChallanInput{
		ChallanDate:     date,
		LedgerCode:      req.LedgerCode,
		Quantity:        qty,
		QualityDetails:  qualities,
		VendorAmount:    vendorAmount,
		SGST:            req.SGST,
		CGST:            req.CGST,
		IGST:            req.IGST,
		TransportCharge: transport,
		Remark:          req.Remark,
	}, nil
}

func (s *appService) CreateWeaverChallan(ctx context.Context, req WeaverChallanRequest) (*WeaverChallanResult, error) {
	input, err := s.weaverChallanInput(req)
	if err != nil {
		return nil, err
	}
	wc, err := s.challans.CreateWeaverChallan(ctx, input)
	if err != nil {
		return nil, err
	}
	return toWeaverChallanResult(wc), nil
}

func (s *appService) UpdateWeaverChallan(ctx context.Context, batchNumber string, req WeaverChallanRequest) (*WeaverChallanResult, error) {
	input, err := s.weaverChallanInput(req)
	if err != nil {
		return nil, err
	}
	wc, err := s.challans.UpdateWeaverChallan(ctx, batchNumber, input)
	if err != nil {
		return nil, err
	}
	return toWeaverChallanResult(wc), nil
}

func (s *appService) GetWeaverChallan(ctx context.Context, batchNumber string) (*WeaverChallanResult, error) {
	wc, err := s.challans.GetByBatchNumber(ctx, batchNumber)
	if err != nil {
		return nil, err
	}
	return toWeaverChallanResult(wc), nil
}

func (s *appService) ListWeaverChallans(ctx context.Context, ledgerCode, from, to string) (*ChallanListResult, error) {
	filter := core.ChallanFilter{LedgerCode: ledgerCode}
	if from != "" {
		t, err := parseDate(from)
		if err != nil {
			return nil, err
		}
		filter.From = &t
	}
	if to != "" {
		t, err := parseDate(to)
		if err != nil {
			return nil, err
		}
		filter.To = &t
	}

	challans, err := s.challans.ListWeaverChallans(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := &ChallanListResult{Challans: []WeaverChallanResult{}}
	for i := range challans {
		out.Challans = append(out.Challans, *toWeaverChallanResult(&challans[i]))
	}
	return out, nil
}

func (s *appService) AddShorting(ctx context.Context, req ShortingRequest) (*ShortingResult, error) {
	date, err := parseDate(req.EntryDate)
	if err != nil {
		return nil, err
	}
	qty, err := parseAmount("quantity", req.Quantity)
	if err != nil {
		return nil, err
	}
	e, err := s.challans.AddShorting(ctx, core.ShortingInput{
		BatchNumber: req.BatchNumber,
		Quality:     req.Quality,
		Quantity:    qty,
		EntryDate:   date,
		Remark:      req.Remark,
	})
	if err != nil {
		return nil, err
	}
	return toShortingResult(e), nil
}

func (s *appService) ListShorting(ctx context.Context, batchNumber string) (*ShortingListResult, error) {
	entries, err := s.challans.ListShorting(ctx, batchNumber)
	if err != nil {
		return nil, err
	}
	out := &ShortingListResult{Entries: []ShortingResult{}}
	for i := range entries {
		out.Entries = append(out.Entries, *toShortingResult(&entries[i]))
	}
	return out, nil
}

func (s *appService) DeleteShorting(ctx context.Context, id int) error {
	return s.challans.DeleteShorting(ctx, id)
}

// ── isteaching challans ───────────────────────────────────────────────────────

func (s *appService) isteachingInput(req IsteachingChallanRequest) (core.IsteachingChallanInput, error) {
	var input core.IsteachingChallanInput
	date, err := parseDate(req.ChallanDate)
	if err != nil {
		return input, err
	}

	opt := func(field, v string) (*decimal.Decimal, error) { return parseOptAmount(field, v) }
	topQty, err := opt("top_qty", req.TopQty)
	if err != nil {
		return input, err
	}
	topRate, err := opt("top_rate", req.TopRate)
	if err != nil {
		return input, err
	}
	bottomQty, err := opt("bottom_qty", req.BottomQty)
	if err != nil {
		return input, err
	}
	bottomRate, err := opt("bottom_rate", req.BottomRate)
	if err != nil {
		return input, err
	}
	bothTop, err := opt("both_top", req.BothTop)
	if err != nil {
		return input, err
	}
	bothBottom, err := opt("both_bottom", req.BothBottom)
	if err != nil {
		return input, err
	}
	transport, err := opt("transport_charge", req.TransportCharge)
	if err != nil {
		return input, err
	}

	var sizes []core.SizeDetail
	for _, sd := range req.Sizes {
		sizes = append(sizes, core.SizeDetail{Size: sd.Size, Quantity: sd.Quantity})
	}

	return core.IsteachingChallanInput{
		ChallanDate:     date,
		LedgerCode:      req.LedgerCode,
		BatchNumbers:    req.BatchNumbers,
		Quantity:        req.Quantity,
		TopQty:          topQty,
		TopRate:         topRate,
		BottomQty:       bottomQty,
		BottomRate:      bottomRate,
		IsBoth:          req.IsBoth,
		BothTop:         bothTop,
		BothBottom:      bothBottom,
		Sizes:           sizes,
		TransportCharge: transport,
		Remark:          req.Remark,
	}, nil
}

func (s *appService) CreateIsteachingChallan(ctx context.Context, req IsteachingChallanRequest) (*IsteachingChallanResult, error) {
	input, err := s.isteachingInput(req)
	if err != nil {
		return nil, err
	}
	ic, err := s.stitching.CreateIsteachingChallan(ctx, input)
	if err != nil {
		return nil, err
	}
	return toIsteachingChallanResult(ic), nil
}

func (s *appService) UpdateIsteachingChallan(ctx context.Context, challanNumber string, req IsteachingChallanRequest) (*IsteachingChallanResult, error) {
	input, err := s.isteachingInput(req)
	if err != nil {
		return nil, err
	}
	ic, err := s.stitching.UpdateIsteachingChallan(ctx, challanNumber, input)
	if err != nil {
		return nil, err
	}
	return toIsteachingChallanResult(ic), nil
}

func (s *appService) ClassifyChallan(ctx context.Context, challanNumber string, req ClassifyRequest) error {
	return s.stitching.Classify(ctx, challanNumber, core.Classification(req.Classification))
}

func (s *appService) GetIsteachingChallan(ctx context.Context, challanNumber string) (*IsteachingChallanResult, error) {
	ic, err := s.stitching.GetByChallanNumber(ctx, challanNumber)
	if err != nil {
		return nil, err
	}
	return toIsteachingChallanResult(ic), nil
}

func (s *appService) ListIsteachingChallans(ctx context.Context, batchNumber, classification string) (*StitchingListResult, error) {
	challans, err := s.stitching.ListIsteachingChallans(ctx, core.StitchingFilter{
		BatchNumber:    batchNumber,
		Classification: core.Classification(classification),
	})
	if err != nil {
		return nil, err
	}
	out := &StitchingListResult{Challans: []IsteachingChallanResult{}}
	for i := range challans {
		out.Challans = append(out.Challans, *toIsteachingChallanResult(&challans[i]))
	}
	return out, nil
}

// ── expenses ──────────────────────────────────────────────────────────────────

func (s *appService) AddExpense(ctx context.Context, req ExpenseRequest) (*ExpenseResult, error) {
	date, err := parseDate(req.ExpenseDate)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount("amount", req.Amount)
	if err != nil {
		return nil, err
	}
	e, err := s.expenses.AddExpense(ctx, core.ExpenseInput{
		BatchNumber: req.BatchNumber,
		Amount:      amount,
		ExpenseDate: date,
		Reason:      req.Reason,
	})
	if err != nil {
		return nil, err
	}
	return toExpenseResult(e), nil
}

func (s *appService) ListExpenses(ctx context.Context, batchNumber string) (*ExpenseListResult, error) {
	expenses, err := s.expenses.ListExpenses(ctx, batchNumber)
	if err != nil {
		return nil, err
	}
	out := &ExpenseListResult{Expenses: []ExpenseResult{}}
	for i := range expenses {
		out.Expenses = append(out.Expenses, *toExpenseResult(&expenses[i]))
	}
	return out, nil
}

func (s *appService) DeleteExpense(ctx context.Context, id int) error {
	return s.expenses.DeleteExpense(ctx, id)
}

// ── vouchers ──────────────────────────────────────────────────────────────────

func (s *appService) voucherInput(req VoucherRequest) (core.PaymentVoucherInput, error) {
	var input core.PaymentVoucherInput
	date, err := parseDate(req.VoucherDate)
	if err != nil {
		return input, err
	}
	amount, err := parseAmount("amount", req.Amount)
	if err != nil {
		return input, err
	}
	return core.PaymentVoucherInput{
		LedgerCode:  req.LedgerCode,
		VoucherDate: date,
		Direction:   core.VoucherDirection(req.Direction),
		Amount:      amount,
		Purpose:     req.Purpose,
	}, nil
}

func (s *appService) CreateVoucher(ctx context.Context, req VoucherRequest) (*VoucherResult, error) {
	input, err := s.voucherInput(req)
	if err != nil {
		return nil, err
	}
	v, err := s.vouchers.CreateVoucher(ctx, input)
	if err != nil {
		return nil, err
	}
	return toVoucherResult(v), nil
}

func (s *appService) UpdateVoucher(ctx context.Context, id int, req VoucherRequest) (*VoucherResult, error) {
	input, err := s.voucherInput(req)
	if err != nil {
		return nil, err
	}
	v, err := s.vouchers.UpdateVoucher(ctx, id, input)
	if err != nil {
		return nil, err
	}
	return toVoucherResult(v), nil
}

func (s *appService) DeleteVoucher(ctx context.Context, id int) error {
	return s.vouchers.DeleteVoucher(ctx, id)
}

func (s *appService) ListVouchers(ctx context.Context, ledgerCode string) (*VoucherListResult, error) {
	vouchers, err := s.vouchers.ListByLedger(ctx, ledgerCode)
	if err != nil {
		return nil, err
	}

	refByID := make(map[int]string, len(vouchers))
	for _, ref := range core.AssignVoucherRefs(vouchers) {
		refByID[ref.VoucherID] = ref.Ref
	}

	out := &VoucherListResult{Vouchers: []VoucherResult{}}
	for i := range vouchers {
		r := toVoucherResult(&vouchers[i])
		r.Ref = refByID[vouchers[i].ID]
		out.Vouchers = append(out.Vouchers, *r)
	}
	return out, nil
}

// ── products ──────────────────────────────────────────────────────────────────

func productInput(req ProductRequest) (core.ProductInput, error) {
	price, err := parseAmount("unit_price", req.UnitPrice)
	if err != nil {
		return core.ProductInput{}, err
	}
	return core.ProductInput{
		ProductCode: req.ProductCode,
		Name:        req.Name,
		Category:    req.Category,
		Size:        req.Size,
		Color:       req.Color,
		UnitPrice:   price,
		StockQty:    req.StockQty,
		ImageURL:    req.ImageURL,
	}, nil
}

func (s *appService) CreateProduct(ctx context.Context, req ProductRequest) (*ProductResult, error) {
	input, err := productInput(req)
	if err != nil {
		return nil, err
	}
	p, err := s.products.CreateProduct(ctx, input)
	if err != nil {
		return nil, err
	}
	return toProductResult(p), nil
}

func (s *appService) UpdateProduct(ctx context.Context, code string, req ProductRequest) (*ProductResult, error) {
	input, err := productInput(req)
	if err != nil {
		return nil, err
	}
	p, err := s.products.UpdateProduct(ctx, code, input)
	if err != nil {
		return nil, err
	}
	return toProductResult(p), nil
}

func (s *appService) DeactivateProduct(ctx context.Context, code string) error {
	return s.products.DeactivateProduct(ctx, code)
}

func (s *appService) GetProduct(ctx context.Context, code string) (*ProductResult, error) {
	p, err := s.products.GetProductByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return toProductResult(p), nil
}

func (s *appService) ListProducts(ctx context.Context, search string) (*ProductListResult, error) {
	products, err := s.products.ListProducts(ctx, search)
	if err != nil {
		return nil, err
	}
	out := &ProductListResult{Products: []ProductResult{}}
	for i := range products {
		out.Products = append(out.Products, *toProductResult(&products[i]))
	}
	return out, nil
}

// ── purchase orders ───────────────────────────────────────────────────────────

func (s *appService) CreatePurchaseOrder(ctx context.Context, req PurchaseOrderRequest) (*PurchaseOrderResult, error) {
	date, err := parseDate(req.PODate)
	if err != nil {
		return nil, err
	}
	var lines []core.PurchaseOrderLineInput
	for i, line := range req.Lines {
		qty, err := parseAmount(fmt.Sprintf("line %d quantity", i+1), line.Quantity)
		if err != nil {
			return nil, err
		}
		cost, err := parseAmount(fmt.Sprintf("line %d unit_cost", i+1), line.UnitCost)
		if err != nil {
			return nil, err
		}
		lines = append(lines, core.PurchaseOrderLineInput{
			Description: line.Description,
			Quantity:    qty,
			UnitCost:    cost,
		})
	}

	po, err := s.orders.CreatePO(ctx, req.LedgerCode, date, lines, req.Notes)
	if err != nil {
		return nil, err
	}
	return toPurchaseOrderResult(po), nil
}

func (s *appService) ApprovePurchaseOrder(ctx context.Context, id int) (*PurchaseOrderResult, error) {
	po, err := s.orders.ApprovePO(ctx, id)
	if err != nil {
		return nil, err
	}
	return toPurchaseOrderResult(po), nil
}

func (s *appService) ReceivePurchaseOrder(ctx context.Context, id int) error {
	return s.orders.ReceivePO(ctx, id)
}

func (s *appService) CancelPurchaseOrder(ctx context.Context, id int) error {
	return s.orders.CancelPO(ctx, id)
}

func (s *appService) GetPurchaseOrder(ctx context.Context, id int) (*PurchaseOrderResult, error) {
	po, err := s.orders.GetPO(ctx, id)
	if err != nil {
		return nil, err
	}
	return toPurchaseOrderResult(po), nil
}

func (s *appService) ListPurchaseOrders(ctx context.Context, status string) (*PurchaseOrderListResult, error) {
	var filter *core.PurchaseOrderStatus
	if status != "" {
		st := core.PurchaseOrderStatus(status)
		filter = &st
	}
	orders, err := s.orders.ListPOs(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := &PurchaseOrderListResult{Orders: []PurchaseOrderResult{}}
	for i := range orders {
		out.Orders = append(out.Orders, *toPurchaseOrderResult(&orders[i]))
	}
	return out, nil
}

// ── reports ───────────────────────────────────────────────────────────────────

func (s *appService) GetBatchReport(ctx context.Context, batchNumber string) (*BatchReportResult, error) {
	report, err := s.reporting.GetBatchReport(ctx, batchNumber)
	if err != nil {
		return nil, err
	}
	return toBatchReportResult(report), nil
}

func (s *appService) GetLedgerStatement(ctx context.Context, ledgerCode string) (*StatementResult, error) {
	ledger, err := s.ledgers.GetLedgerByCode(ctx, ledgerCode)
	if err != nil {
		return nil, err
	}
	st, err := s.reporting.GetLedgerStatement(ctx, ledgerCode)
	if err != nil {
		return nil, err
	}
	return toStatementResult(ledger, st), nil
}

func (s *appService) GetDashboard(ctx context.Context) (*DashboardResult, error) {
	summaries, err := s.reporting.GetDashboard(ctx)
	if err != nil {
		return nil, err
	}
	out := &DashboardResult{Ledgers: []DashboardRow{}}
	for _, sum := range summaries {
		out.Ledgers = append(out.Ledgers, DashboardRow{
			LedgerCode:  sum.Ledger.LedgerCode,
			LedgerName:  sum.Ledger.Name,
			TotalCredit: money(sum.TotalCredit),
			TotalDebit:  money(sum.TotalDebit),
			Balance:     money(sum.Balance),
		})
	}
	return out, nil
}

func (s *appService) ExportLedgerStatement(ctx context.Context, ledgerCode string) ([]byte, error) {
	ledger, err := s.ledgers.GetLedgerByCode(ctx, ledgerCode)
	if err != nil {
		return nil, err
	}
	st, err := s.reporting.GetLedgerStatement(ctx, ledgerCode)
	if err != nil {
		return nil, err
	}
	return export.LedgerStatementXLSX(ledger, st)
}

func (s *appService) ExportBatchReport(ctx context.Context, batchNumber string) ([]byte, error) {
	report, err := s.reporting.GetBatchReport(ctx, batchNumber)
	if err != nil {
		return nil, err
	}
	return export.BatchReportXLSX(report)
}
