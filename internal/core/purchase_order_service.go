package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type purchaseOrderService struct {
	pool *pgxpool.Pool
}

// NewPurchaseOrderService constructs a PurchaseOrderService backed by PostgreSQL.
func NewPurchaseOrderService(pool *pgxpool.Pool) PurchaseOrderService {
	return &purchaseOrderService{pool: pool}
}

const poColumns = `po.id, po.po_number, po.ledger_id, l.ledger_code, l.name, po.status,
	po.po_date, po.notes, po.total, po.approved_at, po.received_at, po.created_at`

const poFrom = ` FROM purchase_orders po JOIN ledgers l ON l.id = po.ledger_id`

func (s *purchaseOrderService) CreatePO(ctx context.Context, ledgerCode string, poDate time.Time,
	lines []PurchaseOrderLineInput, notes string) (*PurchaseOrder, error) {

	if len(lines) == 0 {
		return nil, fmt.Errorf("purchase order requires at least one line: %w", ErrInvalid)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	ledgerID, err := resolveLedgerID(ctx, tx, ledgerCode)
	if err != nil {
		return nil, err
	}
	if ledgerID == nil {
		return nil, fmt.Errorf("purchase order requires a supplier ledger: %w", ErrInvalid)
	}

	total := decimalSumLines(lines)
	var poID int
	if err := tx.QueryRow(ctx, `
		INSERT INTO purchase_orders (ledger_id, status, po_date, notes, total)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		*ledgerID, POStatusDraft, poDate, toPtr(notes), total,
	).Scan(&poID); err != nil {
		return nil, fmt.Errorf("create purchase order: %w", err)
	}

	for i, line := range lines {
		lineTotal := line.Quantity.Mul(line.UnitCost)
		if _, err := tx.Exec(ctx, `
			INSERT INTO purchase_order_lines (order_id, line_number, description, quantity, unit_cost, line_total)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			poID, i+1, line.Description, line.Quantity, line.UnitCost, lineTotal,
		); err != nil {
			return nil, fmt.Errorf("create purchase order line %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return s.GetPO(ctx, poID)
}

func decimalSumLines(lines []PurchaseOrderLineInput) (total decimal.Decimal) {
	for _, line := range lines {
		total = total.Add(line.Quantity.Mul(line.UnitCost))
	}
	return total
}

func (s *purchaseOrderService) ApprovePO(ctx context.Context, poID int) (*PurchaseOrder, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	var status PurchaseOrderStatus
	var poDate time.Time
	err = tx.QueryRow(ctx,
		`SELECT status, po_date FROM purchase_orders WHERE id = $1 FOR UPDATE`, poID,
	).Scan(&status, &poDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("purchase order %d: %w", poID, ErrNotFound)
		}
		return nil, fmt.Errorf("load purchase order %d: %w", poID, err)
	}

	switch status {
	case POStatusApproved:
		// idempotent
		if err := tx.Commit(ctx); err != nil {
			return nil, fmt.Errorf("commit: %w", err)
		}
		return s.GetPO(ctx, poID)
	case POStatusDraft:
	default:
		return nil, fmt.Errorf("purchase order %d is %s, cannot approve: %w", poID, status, ErrInvalid)
	}

	// Gapless per-year numbering. The FOR UPDATE above only covers this PO's
	// row; the advisory lock serializes the count across concurrent
	// approvals of different orders.
	year := poDate.Format("2006")
	if err := lockSequence(ctx, tx, "PO-"+year); err != nil {
		return nil, err
	}
	var seq int
	if err := tx.QueryRow(ctx, `
		SELECT COUNT(*) + 1 FROM purchase_orders
		WHERE po_number LIKE $1`,
		"PO-"+year+"-%",
	).Scan(&seq); err != nil {
		return nil, fmt.Errorf("next po sequence: %w", err)
	}
	poNumber := fmt.Sprintf("PO-%s-%04d", year, seq)

	if _, err := tx.Exec(ctx, `
		UPDATE purchase_orders
		SET status = $2, po_number = $3, approved_at = NOW()
		WHERE id = $1`,
		poID, POStatusApproved, poNumber,
	); err != nil {
		return nil, fmt.Errorf("approve purchase order %d: %w", poID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return s.GetPO(ctx, poID)
}

func (s *purchaseOrderService) ReceivePO(ctx context.Context, poID int) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE purchase_orders
		SET status = $2, received_at = NOW()
		WHERE id = $1 AND status = $3`,
		poID, POStatusReceived, POStatusApproved)
	if err != nil {
		return fmt.Errorf("receive purchase order %d: %w", poID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("purchase order %d is not APPROVED: %w", poID, ErrNotFound)
	}
	return nil
}

func (s *purchaseOrderService) CancelPO(ctx context.Context, poID int) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE purchase_orders
		SET status = $2
		WHERE id = $1 AND status IN ($3, $4)`,
		poID, POStatusCancelled, POStatusDraft, POStatusApproved)
	if err != nil {
		return fmt.Errorf("cancel purchase order %d: %w", poID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("purchase order %d cannot be cancelled: %w", poID, ErrNotFound)
	}
	return nil
}

func (s *purchaseOrderService) GetPO(ctx context.Context, poID int) (*PurchaseOrder, error) {
	po := &PurchaseOrder{}
	err := s.pool.QueryRow(ctx,
		`SELECT `+poColumns+poFrom+` WHERE po.id = $1`, poID,
	).Scan(&po.ID, &po.PONumber, &po.LedgerID, &po.LedgerCode, &po.LedgerName, &po.Status,
		&po.PODate, &po.Notes, &po.Total, &po.ApprovedAt, &po.ReceivedAt, &po.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("purchase order %d: %w", poID, ErrNotFound)
		}
		return nil, fmt.Errorf("get purchase order %d: %w", poID, err)
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id, order_id, line_number, description, quantity, unit_cost, line_total
		FROM purchase_order_lines
		WHERE order_id = $1
		ORDER BY line_number`, poID)
	if err != nil {
		return nil, fmt.Errorf("get purchase order %d lines: %w", poID, err)
	}
	defer rows.Close()
	for rows.Next() {
		var line PurchaseOrderLine
		if err := rows.Scan(&line.ID, &line.OrderID, &line.LineNumber,
			&line.Description, &line.Quantity, &line.UnitCost, &line.LineTotal); err != nil {
			return nil, fmt.Errorf("scan purchase order line: %w", err)
		}
		po.Lines = append(po.Lines, line)
	}
	return po, rows.Err()
}

func (s *purchaseOrderService) ListPOs(ctx context.Context, status *PurchaseOrderStatus) ([]PurchaseOrder, error) {
	q := `SELECT ` + poColumns + poFrom
	args := []any{}
	if status != nil {
		args = append(args, *status)
		q += ` WHERE po.status = $1`
	}
	q += ` ORDER BY po.created_at DESC, po.id DESC`

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()

	var orders []PurchaseOrder
	for rows.Next() {
		var po PurchaseOrder
		if err := rows.Scan(&po.ID, &po.PONumber, &po.LedgerID, &po.LedgerCode, &po.LedgerName,
			&po.Status, &po.PODate, &po.Notes, &po.Total, &po.ApprovedAt, &po.ReceivedAt,
			&po.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		orders = append(orders, po)
	}
	return orders, rows.Err()
}
