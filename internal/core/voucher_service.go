package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type voucherService struct {
	pool *pgxpool.Pool
}

// NewVoucherService constructs a VoucherService backed by PostgreSQL.
func NewVoucherService(pool *pgxpool.Pool) VoucherService {
	return &voucherService{pool: pool}
}

const voucherColumns = `pv.id, pv.ledger_id, l.ledger_code, pv.voucher_date, pv.direction, pv.amount, pv.purpose, pv.created_at`

const voucherFrom = ` FROM payment_vouchers pv JOIN ledgers l ON l.id = pv.ledger_id`

func (s *voucherService) CreateVoucher(ctx context.Context, input PaymentVoucherInput) (*PaymentVoucher, error) {
	if !input.Direction.Valid() {
		return nil, fmt.Errorf("invalid voucher direction %q: %w", input.Direction, ErrInvalid)
	}
	ledgerID, err := resolveLedgerID(ctx, s.pool, input.LedgerCode)
	if err != nil {
		return nil, err
	}
	if ledgerID == nil {
		return nil, fmt.Errorf("voucher requires a ledger: %w", ErrInvalid)
	}

	var id int
	if err := s.pool.QueryRow(ctx, `
		INSERT INTO payment_vouchers (ledger_id, voucher_date, direction, amount, purpose)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		*ledgerID, input.VoucherDate, input.Direction, input.Amount, input.Purpose,
	).Scan(&id); err != nil {
		return nil, fmt.Errorf("create voucher: %w", err)
	}
	return s.getByID(ctx, id)
}

func (s *voucherService) UpdateVoucher(ctx context.Context, id int, input PaymentVoucherInput) (*PaymentVoucher, error) {
	if !input.Direction.Valid() {
		return nil, fmt.Errorf("invalid voucher direction %q: %w", input.Direction, ErrInvalid)
	}
	tag, err := s.pool.Exec(ctx, `
		UPDATE payment_vouchers
		SET voucher_date = $2, direction = $3, amount = $4, purpose = $5
		WHERE id = $1`,
		id, input.VoucherDate, input.Direction, input.Amount, input.Purpose)
	if err != nil {
		return nil, fmt.Errorf("update voucher %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("voucher %d: %w", id, ErrNotFound)
	}
	return s.getByID(ctx, id)
}

func (s *voucherService) getByID(ctx context.Context, id int) (*PaymentVoucher, error) {
	v := &PaymentVoucher{}
	err := s.pool.QueryRow(ctx,
		`SELECT `+voucherColumns+voucherFrom+` WHERE pv.id = $1`, id,
	).Scan(&v.ID, &v.LedgerID, &v.LedgerCode, &v.VoucherDate, &v.Direction,
		&v.Amount, &v.Purpose, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("voucher %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get voucher %d: %w", id, err)
	}
	return v, nil
}

func (s *voucherService) DeleteVoucher(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM payment_vouchers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete voucher %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("voucher %d: %w", id, ErrNotFound)
	}
	return nil
}

func (s *voucherService) ListByLedger(ctx context.Context, ledgerCode string) ([]PaymentVoucher, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+voucherColumns+voucherFrom+`
		 WHERE l.ledger_code = $1
		 ORDER BY pv.voucher_date ASC, pv.id ASC`, ledgerCode)
	if err != nil {
		return nil, fmt.Errorf("list vouchers for ledger %q: %w", ledgerCode, err)
	}
	defer rows.Close()

	var vouchers []PaymentVoucher
	for rows.Next() {
		var v PaymentVoucher
		if err := rows.Scan(&v.ID, &v.LedgerID, &v.LedgerCode, &v.VoucherDate,
			&v.Direction, &v.Amount, &v.Purpose, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan voucher: %w", err)
		}
		vouchers = append(vouchers, v)
	}
	return vouchers, rows.Err()
}
