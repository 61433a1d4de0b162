package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type expenseService struct {
	pool *pgxpool.Pool
}

// NewExpenseService constructs an ExpenseService backed by PostgreSQL.
func NewExpenseService(pool *pgxpool.Pool) ExpenseService {
	return &expenseService{pool: pool}
}

func (s *expenseService) AddExpense(ctx context.Context, input ExpenseInput) (*Expense, error) {
	e := &Expense{}
	err := s.pool.QueryRow(ctx, `
		INSERT INTO expenses (batch_number, amount, expense_date, reason)
		VALUES ($1, $2, $3, $4)
		RETURNING id, batch_number, amount, expense_date, reason, created_at`,
		input.BatchNumber, input.Amount, input.ExpenseDate, input.Reason,
	).Scan(&e.ID, &e.BatchNumber, &e.Amount, &e.ExpenseDate, &e.Reason, &e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("add expense for batch %q: %w", input.BatchNumber, err)
	}
	return e, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, batchNumber string) ([]Expense, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, batch_number, amount, expense_date, reason, created_at
		FROM expenses
		WHERE batch_number = $1
		ORDER BY expense_date ASC, id ASC`,
		batchNumber)
	if err != nil {
		return nil, fmt.Errorf("list expenses for batch %q: %w", batchNumber, err)
	}
	defer rows.Close()

	var expenses []Expense
	for rows.Next() {
		var e Expense
		if err := rows.Scan(&e.ID, &e.BatchNumber, &e.Amount, &e.ExpenseDate,
			&e.Reason, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (s *expenseService) DeleteExpense(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete expense %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("expense %d: %w", id, ErrNotFound)
	}
	return nil
}
