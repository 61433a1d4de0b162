package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Product is a finished-goods catalog entry.
type Product struct {
	ID          int
	ProductCode string
	Name        string
	Category    *string
	Size        *string
	Color       *string
	UnitPrice   decimal.Decimal
	StockQty    int
	ImageURL    *string
	IsActive    bool
	CreatedAt   time.Time
}

// ProductInput holds the fields required to create or update a product.
type ProductInput struct {
	ProductCode string
	Name        string
	Category    string
	Size        string
	Color       string
	UnitPrice   decimal.Decimal
	StockQty    int
	ImageURL    string
}

// ProductService provides product master data operations.
type ProductService interface {
	CreateProduct(ctx context.Context, input ProductInput) (*Product, error)
	UpdateProduct(ctx context.Context, code string, input ProductInput) (*Product, error)
	DeactivateProduct(ctx context.Context, code string) error

	// GetProductByCode returns one product, or ErrNotFound.
	GetProductByCode(ctx context.Context, code string) (*Product, error)

	// ListProducts returns active products, optionally filtered by a
	// case-insensitive substring match on name, code, or category.
	ListProducts(ctx context.Context, search string) ([]Product, error)
}
