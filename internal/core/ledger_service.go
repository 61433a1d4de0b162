package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ledgerService struct {
	pool *pgxpool.Pool
}

// NewLedgerService constructs a LedgerService backed by PostgreSQL.
func NewLedgerService(pool *pgxpool.Pool) LedgerService {
	return &ledgerService{pool: pool}
}

func toPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

const ledgerColumns = `id, ledger_code, name, contact_person, phone, email, address, gstin, is_active, created_at`

func scanLedger(row pgx.Row) (*Ledger, error) {
	l := &Ledger{}
	err := row.Scan(&l.ID, &l.LedgerCode, &l.Name, &l.ContactPerson, &l.Phone,
		&l.Email, &l.Address, &l.GSTIN, &l.IsActive, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (s *ledgerService) CreateLedger(ctx context.Context, input LedgerInput) (*Ledger, error) {
	l, err := scanLedger(s.pool.QueryRow(ctx, `
		INSERT INTO ledgers (ledger_code, name, contact_person, phone, email, address, gstin)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+ledgerColumns,
		input.LedgerCode, input.Name, toPtr(input.ContactPerson), toPtr(input.Phone),
		toPtr(input.Email), toPtr(input.Address), toPtr(input.GSTIN),
	))
	if err != nil {
		return nil, fmt.Errorf("create ledger %q: %w", input.LedgerCode, err)
	}
	return l, nil
}

func (s *ledgerService) UpdateLedger(ctx context.Context, code string, input LedgerInput) (*Ledger, error) {
	l, err := scanLedger(s.pool.QueryRow(ctx, `
		UPDATE ledgers
		SET name = $2, contact_person = $3, phone = $4, email = $5, address = $6, gstin = $7
		WHERE ledger_code = $1
		RETURNING `+ledgerColumns,
		code, input.Name, toPtr(input.ContactPerson), toPtr(input.Phone),
		toPtr(input.Email), toPtr(input.Address), toPtr(input.GSTIN),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("ledger %q: %w", code, ErrNotFound)
		}
		return nil, fmt.Errorf("update ledger %q: %w", code, err)
	}
	return l, nil
}

func (s *ledgerService) DeactivateLedger(ctx context.Context, code string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE ledgers SET is_active = false WHERE ledger_code = $1`, code)
	if err != nil {
		return fmt.Errorf("deactivate ledger %q: %w", code, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ledger %q: %w", code, ErrNotFound)
	}
	return nil
}

func (s *ledgerService) GetLedgerByCode(ctx context.Context, code string) (*Ledger, error) {
	l, err := scanLedger(s.pool.QueryRow(ctx,
		`SELECT `+ledgerColumns+` FROM ledgers WHERE ledger_code = $1`, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("ledger %q: %w", code, ErrNotFound)
		}
		return nil, fmt.Errorf("get ledger %q: %w", code, err)
	}
	return l, nil
}

func (s *ledgerService) ListLedgers(ctx context.Context, search string) ([]Ledger, error) {
	q := `SELECT ` + ledgerColumns + ` FROM ledgers WHERE is_active = true`
	args := []any{}
	if search != "" {
		args = append(args, "%"+search+"%")
		q += ` AND (name ILIKE $1 OR ledger_code ILIKE $1)`
	}
	q += ` ORDER BY ledger_code`

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list ledgers: %w", err)
	}
	defer rows.Close()

	var ledgers []Ledger
	for rows.Next() {
		var l Ledger
		if err := rows.Scan(&l.ID, &l.LedgerCode, &l.Name, &l.ContactPerson, &l.Phone,
			&l.Email, &l.Address, &l.GSTIN, &l.IsActive, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger: %w", err)
		}
		ledgers = append(ledgers, l)
	}
	return ledgers, rows.Err()
}
