package core

import "errors"

// ErrNotFound is returned when the primary entity for a requested key does
// not exist. Report builders surface it so adapters can render an empty
// "no data" state instead of a server error.
var ErrNotFound = errors.New("not found")

// ErrInvalid marks a request that fails a domain rule: an unknown enum
// value, a missing required link, a state transition the lifecycle forbids.
// Adapters render it as a client error; anything else is a server fault.
var ErrInvalid = errors.New("invalid input")

// Classification is the inventory tag assigned to a stitching challan after
// manual review.
type Classification string

const (
	ClassificationUnclassified Classification = "unclassified"
	ClassificationGood         Classification = "good"
	ClassificationBad          Classification = "bad"
	ClassificationWastage      Classification = "wastage"
	ClassificationShorting     Classification = "shorting"
)

// Valid reports whether c is one of the known classification tags.
func (c Classification) Valid() bool {
	switch c {
	case ClassificationUnclassified, ClassificationGood, ClassificationBad,
		ClassificationWastage, ClassificationShorting:
		return true
	}
	return false
}

// VoucherDirection marks a payment voucher as money in (Credit) or money
// out (Debit) from the ledger's point of view.
type VoucherDirection string

const (
	DirectionCredit VoucherDirection = "Credit"
	DirectionDebit  VoucherDirection = "Debit"
)

// Valid reports whether d is a known voucher direction.
func (d VoucherDirection) Valid() bool {
	return d == DirectionCredit || d == DirectionDebit
}

// User roles. Admin manages users and may delete anything; accounts handles
// vouchers, expenses and statements; operator handles challans and stitching.
const (
	RoleAdmin    = "admin"
	RoleAccounts = "accounts"
	RoleOperator = "operator"
)

// PurchaseOrderStatus is the purchase order lifecycle state.
type PurchaseOrderStatus string

const (
	POStatusDraft     PurchaseOrderStatus = "DRAFT"
	POStatusApproved  PurchaseOrderStatus = "APPROVED"
	POStatusReceived  PurchaseOrderStatus = "RECEIVED"
	POStatusCancelled PurchaseOrderStatus = "CANCELLED"
)
