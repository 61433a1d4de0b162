package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentVoucher is a money movement against a ledger: Credit when the
// partner is owed more, Debit when the partner is paid out.
//
// Vouchers carry no stored reference number. The human-readable reference
// (VCH-C-202501-001) is derived deterministically by the statement engine
// from the ledger's full voucher history; see AssignVoucherRefs.
type PaymentVoucher struct {
	ID          int
	LedgerID    int
	LedgerCode  string
	VoucherDate time.Time
	Direction   VoucherDirection
	Amount      decimal.Decimal
	Purpose     string
	CreatedAt   time.Time
}

// PaymentVoucherInput holds the fields required to create or update a voucher.
type PaymentVoucherInput struct {
	LedgerCode  string
	VoucherDate time.Time
	Direction   VoucherDirection
	Amount      decimal.Decimal
	Purpose     string
}

// VoucherService manages payment vouchers.
type VoucherService interface {
	// CreateVoucher records a payment voucher against a ledger.
	CreateVoucher(ctx context.Context, input PaymentVoucherInput) (*PaymentVoucher, error)

	// UpdateVoucher replaces the mutable fields of an existing voucher.
	UpdateVoucher(ctx context.Context, id int, input PaymentVoucherInput) (*PaymentVoucher, error)

	// DeleteVoucher removes a voucher.
	DeleteVoucher(ctx context.Context, id int) error

	// ListByLedger returns all vouchers for a ledger ordered by voucher date
	// ascending. Reference derivation depends on this ordering.
	ListByLedger(ctx context.Context, ledgerCode string) ([]PaymentVoucher, error)
}
