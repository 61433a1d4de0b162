package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a manufacturing cost entry charged against a batch.
type Expense struct {
	ID          int
	BatchNumber string
	Amount      decimal.Decimal
	ExpenseDate time.Time
	Reason      string
	CreatedAt   time.Time
}

// ExpenseInput holds the fields required to record an expense.
type ExpenseInput struct {
	BatchNumber string
	Amount      decimal.Decimal
	ExpenseDate time.Time
	Reason      string
}

// ExpenseService manages per-batch cost entries.
type ExpenseService interface {
	// AddExpense records a cost entry against a batch.
	AddExpense(ctx context.Context, input ExpenseInput) (*Expense, error)

	// ListExpenses returns all expenses for a batch, oldest first.
	ListExpenses(ctx context.Context, batchNumber string) ([]Expense, error)

	// DeleteExpense removes one expense entry.
	DeleteExpense(ctx context.Context, id int) error
}
