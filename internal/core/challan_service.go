package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type challanService struct {
	pool *pgxpool.Pool
}

// NewChallanService constructs a ChallanService backed by PostgreSQL.
func NewChallanService(pool *pgxpool.Pool) ChallanService {
	return &challanService{pool: pool}
}

const weaverChallanColumns = `wc.id, wc.batch_number, wc.challan_date, wc.ledger_id, l.ledger_code,
	wc.quantity, wc.quality_details, wc.vendor_amount, wc.sgst, wc.cgst, wc.igst,
	wc.transport_charge, wc.remark, wc.created_at`

const weaverChallanFrom = ` FROM weaver_challans wc LEFT JOIN ledgers l ON l.id = wc.ledger_id`

func scanWeaverChallan(row pgx.Row) (*WeaverChallan, error) {
	wc := &WeaverChallan{}
	var rawQualities []byte
	err := row.Scan(&wc.ID, &wc.BatchNumber, &wc.ChallanDate, &wc.LedgerID, &wc.LedgerCode,
		&wc.Quantity, &rawQualities, &wc.VendorAmount, &wc.SGST, &wc.CGST, &wc.IGST,
		&wc.TransportCharge, &wc.Remark, &wc.CreatedAt)
	if err != nil {
		return nil, err
	}
	wc.QualityDetails = ParseQualityDetails(rawQualities)
	return wc, nil
}

// lockSequence serializes document numbering for one prefix. The advisory
// lock is transaction-scoped and released automatically at commit or
// rollback.
func lockSequence(ctx context.Context, tx pgx.Tx, prefix string) error {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, prefix); err != nil {
		return fmt.Errorf("lock sequence %q: %w", prefix, err)
	}
	return nil
}

// resolveLedgerID maps an optional ledger code to its primary key. An empty
// code means an unlinked challan.
func resolveLedgerID(ctx context.Context, q interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}, ledgerCode string) (*int, error) {
	if ledgerCode == "" {
		return nil, nil
	}
	var id int
	err := q.QueryRow(ctx, `SELECT id FROM ledgers WHERE ledger_code = $1`, ledgerCode).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("ledger %q: %w", ledgerCode, ErrNotFound)
		}
		return nil, fmt.Errorf("resolve ledger %q: %w", ledgerCode, err)
	}
	return &id, nil
}

func (s *challanService) CreateWeaverChallan(ctx context.Context, input WeaverChallanInput) (*WeaverChallan, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	ledgerID, err := resolveLedgerID(ctx, tx, input.LedgerCode)
	if err != nil {
		return nil, err
	}

	// Per-day sequence: BN20250101001, BN20250101002, ... The advisory lock
	// serializes numbering for the day; a bare COUNT under READ COMMITTED
	// would let two concurrent creates compute the same number.
	day := input.ChallanDate.Format("20060102")
	if err := lockSequence(ctx, tx, "BN"+day); err != nil {
		return nil, err
	}
	var seq int
	if err := tx.QueryRow(ctx, `
		SELECT COUNT(*) + 1 FROM weaver_challans
		WHERE batch_number LIKE $1`,
		"BN"+day+"%",
	).Scan(&seq); err != nil {
		return nil, fmt.Errorf("next batch sequence: %w", err)
	}
	batchNumber := fmt.Sprintf("BN%s%03d", day, seq)

	qualities, err := json.Marshal(input.QualityDetails)
	if err != nil {
		return nil, fmt.Errorf("encode quality details: %w", err)
	}

	var id int
	if err := tx.QueryRow(ctx, `
		INSERT INTO weaver_challans
			(batch_number, challan_date, ledger_id, quantity, quality_details,
			 vendor_amount, sgst, cgst, igst, transport_charge, remark)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		batchNumber, input.ChallanDate, ledgerID, input.Quantity, qualities,
		input.VendorAmount, normalizeRate(input.SGST), normalizeRate(input.CGST),
		normalizeRate(input.IGST), input.TransportCharge, toPtr(input.Remark),
	).Scan(&id); err != nil {
		return nil, fmt.Errorf("create weaver challan: %w", err)
	}

	wc, err := scanWeaverChallan(tx.QueryRow(ctx,
		`SELECT `+weaverChallanColumns+weaverChallanFrom+` WHERE wc.id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("reload weaver challan: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return wc, nil
}

// normalizeRate maps an empty stored rate to the explicit "Not Applicable"
// marker so statement math never sees a blank.
func normalizeRate(rate string) string {
	if rate == "" {
		return GSTNotApplicable
	}
	return rate
}

func (s *challanService) UpdateWeaverChallan(ctx context.Context, batchNumber string, input WeaverChallanInput) (*WeaverChallan, error) {
	ledgerID, err := resolveLedgerID(ctx, s.pool, input.LedgerCode)
	if err != nil {
		return nil, err
	}
	qualities, err := json.Marshal(input.QualityDetails)
	if err != nil {
		return nil, fmt.Errorf("encode quality details: %w", err)
	}

	var id int
	err = s.pool.QueryRow(ctx, `
		UPDATE weaver_challans
		SET challan_date = $2, ledger_id = $3, quantity = $4, quality_details = $5,
		    vendor_amount = $6, sgst = $7, cgst = $8, igst = $9,
		    transport_charge = $10, remark = $11
		WHERE batch_number = $1
		RETURNING id`,
		batchNumber, input.ChallanDate, ledgerID, input.Quantity, qualities,
		input.VendorAmount, normalizeRate(input.SGST), normalizeRate(input.CGST),
		normalizeRate(input.IGST), input.TransportCharge, toPtr(input.Remark),
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("weaver challan %q: %w", batchNumber, ErrNotFound)
		}
		return nil, fmt.Errorf("update weaver challan %q: %w", batchNumber, err)
	}
	return s.GetByBatchNumber(ctx, batchNumber)
}

func (s *challanService) GetByBatchNumber(ctx context.Context, batchNumber string) (*WeaverChallan, error) {
	wc, err := scanWeaverChallan(s.pool.QueryRow(ctx,
		`SELECT `+weaverChallanColumns+weaverChallanFrom+` WHERE wc.batch_number = $1`, batchNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("weaver challan %q: %w", batchNumber, ErrNotFound)
		}
		return nil, fmt.Errorf("get weaver challan %q: %w", batchNumber, err)
	}
	return wc, nil
}

func (s *challanService) ListWeaverChallans(ctx context.Context, filter ChallanFilter) ([]WeaverChallan, error) {
	q := `SELECT ` + weaverChallanColumns + weaverChallanFrom + ` WHERE 1=1`
	args := []any{}
	if filter.LedgerCode != "" {
		args = append(args, filter.LedgerCode)
		q += fmt.Sprintf(" AND l.ledger_code = $%d", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		q += fmt.Sprintf(" AND wc.challan_date >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		q += fmt.Sprintf(" AND wc.challan_date <= $%d", len(args))
	}
	q += ` ORDER BY wc.challan_date DESC, wc.id DESC`
	return s.queryChallans(ctx, q, args...)
}

func (s *challanService) ListByLedger(ctx context.Context, ledgerCode string) ([]WeaverChallan, error) {
	return s.queryChallans(ctx,
		`SELECT `+weaverChallanColumns+weaverChallanFrom+`
		 WHERE l.ledger_code = $1
		 ORDER BY wc.challan_date ASC, wc.id ASC`, ledgerCode)
}

func (s *challanService) queryChallans(ctx context.Context, q string, args ...any) ([]WeaverChallan, error) {
	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query weaver challans: %w", err)
	}
	defer rows.Close()

	var challans []WeaverChallan
	for rows.Next() {
		var wc WeaverChallan
		var rawQualities []byte
		if err := rows.Scan(&wc.ID, &wc.BatchNumber, &wc.ChallanDate, &wc.LedgerID, &wc.LedgerCode,
			&wc.Quantity, &rawQualities, &wc.VendorAmount, &wc.SGST, &wc.CGST, &wc.IGST,
			&wc.TransportCharge, &wc.Remark, &wc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan weaver challan: %w", err)
		}
		wc.QualityDetails = ParseQualityDetails(rawQualities)
		challans = append(challans, wc)
	}
	return challans, rows.Err()
}

func (s *challanService) AddShorting(ctx context.Context, input ShortingInput) (*ShortingEntry, error) {
	e := &ShortingEntry{}
	err := s.pool.QueryRow(ctx, `
		INSERT INTO shorting_entries (batch_number, quality, quantity, entry_date, remark)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, batch_number, quality, quantity, entry_date, remark, created_at`,
		input.BatchNumber, input.Quality, input.Quantity, input.EntryDate, toPtr(input.Remark),
	).Scan(&e.ID, &e.BatchNumber, &e.Quality, &e.Quantity, &e.EntryDate, &e.Remark, &e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("add shorting for batch %q: %w", input.BatchNumber, err)
	}
	return e, nil
}

func (s *challanService) ListShorting(ctx context.Context, batchNumber string) ([]ShortingEntry, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, batch_number, quality, quantity, entry_date, remark, created_at
		FROM shorting_entries
		WHERE batch_number = $1
		ORDER BY entry_date ASC, id ASC`,
		batchNumber)
	if err != nil {
		return nil, fmt.Errorf("list shorting for batch %q: %w", batchNumber, err)
	}
	defer rows.Close()

	var entries []ShortingEntry
	for rows.Next() {
		var e ShortingEntry
		if err := rows.Scan(&e.ID, &e.BatchNumber, &e.Quality, &e.Quantity,
			&e.EntryDate, &e.Remark, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan shorting entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *challanService) DeleteShorting(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM shorting_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete shorting %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shorting %d: %w", id, ErrNotFound)
	}
	return nil
}
