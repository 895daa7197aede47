package products

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Variant is a named, priced sub-option of a product (e.g. a size).
type Variant struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type Product struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	CategoryID   *int64          `json:"category_id"`
	CategoryName *string         `json:"category_name"`
	ImagePath    *string         `json:"image_path"`
	ImageURL     *string         `json:"image_url,omitempty"`
	Variants     []Variant       `json:"variants"`
	InStock      bool            `json:"in_stock"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Filter selects the products returned by List. Zero-value fields do not filter.
type Filter struct {
	// Category matches the joined category name exactly (case sensitive).
	Category string
	// Search matches name or description, case insensitive substring.
	Search string
	Limit  int
	Offset int
}

type Store interface {
	List(ctx context.Context, f Filter) ([]*Product, int, error)
	GetByID(ctx context.Context, id int64) (*Product, error)
	Create(ctx context.Context, p *Product) (*Product, error)
	Update(ctx context.Context, p *Product) (*Product, error)
	// Delete removes the product and returns the row as it was, so callers
	// can release its image afterwards.
	Delete(ctx context.Context, id int64) (*Product, error)
}
