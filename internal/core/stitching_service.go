package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type stitchingService struct {
	pool *pgxpool.Pool
}

// NewStitchingService constructs a StitchingService backed by PostgreSQL.
func NewStitchingService(pool *pgxpool.Pool) StitchingService {
	return &stitchingService{pool: pool}
}

const isteachingColumns = `ic.id, ic.challan_number, ic.challan_date, ic.ledger_id, l.ledger_code,
	ic.quantity, ic.top_qty, ic.top_rate, ic.bottom_qty, ic.bottom_rate,
	ic.is_both, ic.both_top, ic.both_bottom, ic.sizes, ic.classification,
	ic.transport_charge, ic.remark, ic.created_at`

const isteachingFrom = ` FROM isteaching_challans ic LEFT JOIN ledgers l ON l.id = ic.ledger_id`

func scanIsteachingChallan(row pgx.Row) (*IsteachingChallan, error) {
	ic := &IsteachingChallan{}
	var rawSizes []byte
	err := row.Scan(&ic.ID, &ic.ChallanNumber, &ic.ChallanDate, &ic.LedgerID, &ic.LedgerCode,
		&ic.Quantity, &ic.TopQty, &ic.TopRate, &ic.BottomQty, &ic.BottomRate,
		&ic.IsBoth, &ic.BothTop, &ic.BothBottom, &rawSizes, &ic.Classification,
		&ic.TransportCharge, &ic.Remark, &ic.CreatedAt)
	if err != nil {
		return nil, err
	}
	ic.Sizes = ParseSizeDetails(rawSizes)
	return ic, nil
}

func (s *stitchingService) CreateIsteachingChallan(ctx context.Context, input IsteachingChallanInput) (*IsteachingChallan, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	ledgerID, err := resolveLedgerID(ctx, tx, input.LedgerCode)
	if err != nil {
		return nil, err
	}

	// Per-day sequence, serialized the same way as batch numbering.
	day := input.ChallanDate.Format("20060102")
	if err := lockSequence(ctx, tx, "ISC"+day); err != nil {
		return nil, err
	}
	var seq int
	if err := tx.QueryRow(ctx, `
		SELECT COUNT(*) + 1 FROM isteaching_challans
		WHERE challan_number LIKE $1`,
		"ISC"+day+"%",
	).Scan(&seq); err != nil {
		return nil, fmt.Errorf("next challan sequence: %w", err)
	}
	challanNumber := fmt.Sprintf("ISC%s%03d", day, seq)

	sizes, err := json.Marshal(input.Sizes)
	if err != nil {
		return nil, fmt.Errorf("encode sizes: %w", err)
	}

	var id int
	if err := tx.QueryRow(ctx, `
		INSERT INTO isteaching_challans
			(challan_number, challan_date, ledger_id, quantity,
			 top_qty, top_rate, bottom_qty, bottom_rate,
			 is_both, both_top, both_bottom, sizes, classification,
			 transport_charge, remark)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`,
		challanNumber, input.ChallanDate, ledgerID, input.Quantity,
		input.TopQty, input.TopRate, input.BottomQty, input.BottomRate,
		input.IsBoth, input.BothTop, input.BothBottom, sizes, ClassificationUnclassified,
		input.TransportCharge, toPtr(input.Remark),
	).Scan(&id); err != nil {
		return nil, fmt.Errorf("create isteaching challan: %w", err)
	}

	if err := s.linkBatches(ctx, tx, id, input.BatchNumbers); err != nil {
		return nil, err
	}

	ic, err := scanIsteachingChallan(tx.QueryRow(ctx,
		`SELECT `+isteachingColumns+isteachingFrom+` WHERE ic.id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("reload isteaching challan: %w", err)
	}
	ic.BatchNumbers = input.BatchNumbers
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return ic, nil
}

// linkBatches replaces the challan's batch links. Every referenced batch
// must exist; a dangling batch number aborts the transaction.
func (s *stitchingService) linkBatches(ctx context.Context, tx pgx.Tx, challanID int, batchNumbers []string) error {
	if _, err := tx.Exec(ctx,
		`DELETE FROM isteaching_challan_batches WHERE challan_id = $1`, challanID); err != nil {
		return fmt.Errorf("unlink batches: %w", err)
	}
	for _, bn := range batchNumbers {
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM weaver_challans WHERE batch_number = $1)`, bn,
		).Scan(&exists); err != nil {
			return fmt.Errorf("check batch %q: %w", bn, err)
		}
		if !exists {
			return fmt.Errorf("batch %q: %w", bn, ErrNotFound)
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO isteaching_challan_batches (challan_id, batch_number)
			VALUES ($1, $2)`, challanID, bn); err != nil {
			return fmt.Errorf("link batch %q: %w", bn, err)
		}
	}
	return nil
}

func (s *stitchingService) UpdateIsteachingChallan(ctx context.Context, challanNumber string, input IsteachingChallanInput) (*IsteachingChallan, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	ledgerID, err := resolveLedgerID(ctx, tx, input.LedgerCode)
	if err != nil {
		return nil, err
	}
	sizes, err := json.Marshal(input.Sizes)
	if err != nil {
		return nil, fmt.Errorf("encode sizes: %w", err)
	}

	var id int
	err = tx.QueryRow(ctx, `
		UPDATE isteaching_challans
		SET challan_date = $2, ledger_id = $3, quantity = $4,
		    top_qty = $5, top_rate = $6, bottom_qty = $7, bottom_rate = $8,
		    is_both = $9, both_top = $10, both_bottom = $11, sizes = $12,
		    transport_charge = $13, remark = $14
		WHERE challan_number = $1
		RETURNING id`,
		challanNumber, input.ChallanDate, ledgerID, input.Quantity,
		input.TopQty, input.TopRate, input.BottomQty, input.BottomRate,
		input.IsBoth, input.BothTop, input.BothBottom, sizes,
		input.TransportCharge, toPtr(input.Remark),
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("isteaching challan %q: %w", challanNumber, ErrNotFound)
		}
		return nil, fmt.Errorf("update isteaching challan %q: %w", challanNumber, err)
	}

	if err := s.linkBatches(ctx, tx, id, input.BatchNumbers); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return s.GetByChallanNumber(ctx, challanNumber)
}

func (s *stitchingService) Classify(ctx context.Context, challanNumber string, tag Classification) error {
	if !tag.Valid() {
		return fmt.Errorf("invalid classification %q: %w", tag, ErrInvalid)
	}
	res, err := s.pool.Exec(ctx, `
		UPDATE isteaching_challans SET classification = $2 WHERE challan_number = $1`,
		challanNumber, tag)
	if err != nil {
		return fmt.Errorf("classify challan %q: %w", challanNumber, err)
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("isteaching challan %q: %w", challanNumber, ErrNotFound)
	}
	return nil
}

func (s *stitchingService) GetByChallanNumber(ctx context.Context, challanNumber string) (*IsteachingChallan, error) {
	ic, err := scanIsteachingChallan(s.pool.QueryRow(ctx,
		`SELECT `+isteachingColumns+isteachingFrom+` WHERE ic.challan_number = $1`, challanNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("isteaching challan %q: %w", challanNumber, ErrNotFound)
		}
		return nil, fmt.Errorf("get isteaching challan %q: %w", challanNumber, err)
	}
	if err := s.loadBatchNumbers(ctx, ic); err != nil {
		return nil, err
	}
	return ic, nil
}

func (s *stitchingService) loadBatchNumbers(ctx context.Context, ic *IsteachingChallan) error {
	rows, err := s.pool.Query(ctx, `
		SELECT batch_number FROM isteaching_challan_batches
		WHERE challan_id = $1 ORDER BY batch_number`, ic.ID)
	if err != nil {
		return fmt.Errorf("load batch links: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var bn string
		if err := rows.Scan(&bn); err != nil {
			return fmt.Errorf("scan batch link: %w", err)
		}
		ic.BatchNumbers = append(ic.BatchNumbers, bn)
	}
	return rows.Err()
}

func (s *stitchingService) ListIsteachingChallans(ctx context.Context, filter StitchingFilter) ([]IsteachingChallan, error) {
	q := `SELECT ` + isteachingColumns + isteachingFrom
	args := []any{}
	if filter.BatchNumber != "" {
		args = append(args, filter.BatchNumber)
		q += ` JOIN isteaching_challan_batches icb ON icb.challan_id = ic.id AND icb.batch_number = $1`
	}
	q += ` WHERE 1=1`
	if filter.Classification != "" {
		args = append(args, filter.Classification)
		q += fmt.Sprintf(" AND ic.classification = $%d", len(args))
	}
	q += ` ORDER BY ic.challan_date DESC, ic.id DESC`
	return s.queryChallans(ctx, q, args...)
}

func (s *stitchingService) ListByBatch(ctx context.Context, batchNumber string) ([]IsteachingChallan, error) {
	return s.queryChallans(ctx,
		`SELECT `+isteachingColumns+isteachingFrom+`
		 JOIN isteaching_challan_batches icb ON icb.challan_id = ic.id AND icb.batch_number = $1
		 WHERE 1=1
		 ORDER BY ic.challan_date ASC, ic.id ASC`, batchNumber)
}

func (s *stitchingService) queryChallans(ctx context.Context, q string, args ...any) ([]IsteachingChallan, error) {
	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query isteaching challans: %w", err)
	}
	defer rows.Close()

	var challans []IsteachingChallan
	for rows.Next() {
		var ic IsteachingChallan
		var rawSizes []byte
		if err := rows.Scan(&ic.ID, &ic.ChallanNumber, &ic.ChallanDate, &ic.LedgerID, &ic.LedgerCode,
			&ic.Quantity, &ic.TopQty, &ic.TopRate, &ic.BottomQty, &ic.BottomRate,
			&ic.IsBoth, &ic.BothTop, &ic.BothBottom, &rawSizes, &ic.Classification,
			&ic.TransportCharge, &ic.Remark, &ic.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan isteaching challan: %w", err)
		}
		ic.Sizes = ParseSizeDetails(rawSizes)
		challans = append(challans, ic)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range challans {
		if err := s.loadBatchNumbers(ctx, &challans[i]); err != nil {
			return nil, err
		}
	}
	return challans, nil
}
