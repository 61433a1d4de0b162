package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// LedgerSummary is one row of the dashboard: a ledger with its aggregate
// statement totals.
type LedgerSummary struct {
	Ledger      Ledger
	TotalCredit decimal.Decimal
	TotalDebit  decimal.Decimal
	Balance     decimal.Decimal
}

// ReportingService builds the derived read-only reports. It fetches rows
// once per request and hands them to the pure engines; no report arithmetic
// happens in SQL, and nothing is cached between invocations.
type ReportingService interface {
	// GetBatchReport reconciles one batch. Returns ErrNotFound when no
	// weaver challan exists for the batch number; missing shorting, output,
	// and expense rows are simply empty collections.
	GetBatchReport(ctx context.Context, batchNumber string) (*BatchReport, error)

	// GetLedgerStatement builds the passbook for one ledger. A ledger with
	// no rows yields an empty statement, not an error; an unknown ledger
	// code returns ErrNotFound.
	GetLedgerStatement(ctx context.Context, ledgerCode string) (*LedgerStatement, error)

	// GetDashboard returns per-ledger statement totals for the overview
	// screen, ordered by ledger code.
	GetDashboard(ctx context.Context) ([]LedgerSummary, error)
}

type reportingService struct {
	ledgers   LedgerService
	challans  ChallanService
	stitching StitchingService
	expenses  ExpenseService
	vouchers  VoucherService
}

// NewReportingService constructs a ReportingService over the row-fetching
// services.
func NewReportingService(ledgers LedgerService, challans ChallanService,
	stitching StitchingService, expenses ExpenseService, vouchers VoucherService) ReportingService {
	return &reportingService{
		ledgers:   ledgers,
		challans:  challans,
		stitching: stitching,
		expenses:  expenses,
		vouchers:  vouchers,
	}
}

func (s *reportingService) GetBatchReport(ctx context.Context, batchNumber string) (*BatchReport, error) {
	challan, err := s.challans.GetByBatchNumber(ctx, batchNumber)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("batch %q: %w", batchNumber, ErrNotFound)
		}
		return nil, err
	}

	shortings, err := s.challans.ListShorting(ctx, batchNumber)
	if err != nil {
		return nil, err
	}
	outputs, err := s.stitching.ListByBatch(ctx, batchNumber)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.ListExpenses(ctx, batchNumber)
	if err != nil {
		return nil, err
	}

	return BuildBatchReport(challan, shortings, outputs, expenses), nil
}

func (s *reportingService) GetLedgerStatement(ctx context.Context, ledgerCode string) (*LedgerStatement, error) {
	if _, err := s.ledgers.GetLedgerByCode(ctx, ledgerCode); err != nil {
		return nil, err
	}

	receipts, err := s.challans.ListByLedger(ctx, ledgerCode)
	if err != nil {
		return nil, err
	}
	vouchers, err := s.vouchers.ListByLedger(ctx, ledgerCode)
	if err != nil {
		return nil, err
	}

	return BuildLedgerStatement(receipts, vouchers), nil
}

func (s *reportingService) GetDashboard(ctx context.Context) ([]LedgerSummary, error) {
	ledgers, err := s.ledgers.ListLedgers(ctx, "")
	if err != nil {
		return nil, err
	}

	summaries := make([]LedgerSummary, 0, len(ledgers))
	for _, l := range ledgers {
		st, err := s.GetLedgerStatement(ctx, l.LedgerCode)
		if err != nil {
			return nil, fmt.Errorf("dashboard for ledger %q: %w", l.LedgerCode, err)
		}
		summaries = append(summaries, LedgerSummary{
			Ledger:      l,
			TotalCredit: st.TotalCredit,
			TotalDebit:  st.TotalDebit,
			Balance:     st.Balance,
		})
	}
	return summaries, nil
}
