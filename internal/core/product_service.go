package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type productService struct {
	pool *pgxpool.Pool
}

// NewProductService constructs a ProductService backed by PostgreSQL.
func NewProductService(pool *pgxpool.Pool) ProductService {
	return &productService{pool: pool}
}

const productColumns = `id, product_code, name, category, size, color, unit_price, stock_qty, image_url, is_active, created_at`

func scanProduct(row pgx.Row) (*Product, error) {
	p := &Product{}
	err := row.Scan(&p.ID, &p.ProductCode, &p.Name, &p.Category, &p.Size, &p.Color,
		&p.UnitPrice, &p.StockQty, &p.ImageURL, &p.IsActive, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *productService) CreateProduct(ctx context.Context, input ProductInput) (*Product, error) {
	p, err := scanProduct(s.pool.QueryRow(ctx, `
		INSERT INTO products (product_code, name, category, size, color, unit_price, stock_qty, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+productColumns,
		input.ProductCode, input.Name, toPtr(input.Category), toPtr(input.Size),
		toPtr(input.Color), input.UnitPrice, input.StockQty, toPtr(input.ImageURL),
	))
	if err != nil {
		return nil, fmt.Errorf("create product %q: %w", input.ProductCode, err)
	}
	return p, nil
}

func (s *productService) UpdateProduct(ctx context.Context, code string, input ProductInput) (*Product, error) {
	p, err := scanProduct(s.pool.QueryRow(ctx, `
		UPDATE products
		SET name = $2, category = $3, size = $4, color = $5,
		    unit_price = $6, stock_qty = $7, image_url = $8
		WHERE product_code = $1
		RETURNING `+productColumns,
		code, input.Name, toPtr(input.Category), toPtr(input.Size), toPtr(input.Color),
		input.UnitPrice, input.StockQty, toPtr(input.ImageURL),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("product %q: %w", code, ErrNotFound)
		}
		return nil, fmt.Errorf("update product %q: %w", code, err)
	}
	return p, nil
}

func (s *productService) DeactivateProduct(ctx context.Context, code string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE products SET is_active = false WHERE product_code = $1`, code)
	if err != nil {
		return fmt.Errorf("deactivate product %q: %w", code, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %q: %w", code, ErrNotFound)
	}
	return nil
}

func (s *productService) GetProductByCode(ctx context.Context, code string) (*Product, error) {
	p, err := scanProduct(s.pool.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE product_code = $1`, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("product %q: %w", code, ErrNotFound)
		}
		return nil, fmt.Errorf("get product %q: %w", code, err)
	}
	return p, nil
}

func (s *productService) ListProducts(ctx context.Context, search string) ([]Product, error) {
	q := `SELECT ` + productColumns + ` FROM products WHERE is_active = true`
	args := []any{}
	if search != "" {
		args = append(args, "%"+search+"%")
		q += ` AND (name ILIKE $1 OR product_code ILIKE $1 OR category ILIKE $1)`
	}
	q += ` ORDER BY product_code`

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.ProductCode, &p.Name, &p.Category, &p.Size, &p.Color,
			&p.UnitPrice, &p.StockQty, &p.ImageURL, &p.IsActive, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
