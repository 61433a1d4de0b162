package core

import (
	"context"
	"time"
)

// Ledger is a business partner account: a contact directory entry that also
// buckets the partner's credit/debit financial lines.
type Ledger struct {
	ID            int
	LedgerCode    string
	Name          string
	ContactPerson *string
	Phone         *string
	Email         *string
	Address       *string
	GSTIN         *string
	IsActive      bool
	CreatedAt     time.Time
}

// LedgerInput holds the fields required to create or update a ledger.
type LedgerInput struct {
	LedgerCode    string
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
	GSTIN         string
}

// LedgerService provides business-partner master data operations.
type LedgerService interface {
	// CreateLedger creates a new partner ledger.
	CreateLedger(ctx context.Context, input LedgerInput) (*Ledger, error)

	// UpdateLedger replaces the mutable fields of an existing ledger.
	UpdateLedger(ctx context.Context, code string, input LedgerInput) (*Ledger, error)

	// DeactivateLedger soft-deletes a ledger; its rows remain for reporting.
	DeactivateLedger(ctx context.Context, code string) error

	// GetLedgerByCode returns a ledger by its stable partner key.
	// Returns ErrNotFound if no such ledger exists.
	GetLedgerByCode(ctx context.Context, code string) (*Ledger, error)

	// ListLedgers returns active ledgers, optionally filtered by a
	// case-insensitive substring match on name or code.
	ListLedgers(ctx context.Context, search string) ([]Ledger, error)
}
