package dashboard

import (
	"context"

	"github.com/shopspring/decimal"
)

// UncategorizedName labels the bucket of products without a category.
const UncategorizedName = "Uncategorized"

type Stats struct {
	TotalProducts      int64           `json:"totalProducts"`
	TotalCategories    int64           `json:"totalCategories"`
	InStockProducts    int64           `json:"inStockProducts"`
	OutOfStockProducts int64           `json:"outOfStockProducts"`
	TotalValue         decimal.Decimal `json:"totalValue"`   // sum of in-stock prices
	AveragePrice       decimal.Decimal `json:"averagePrice"` // 0 when nothing is in stock
	CategoryStats      []CategoryStat  `json:"categoryStats"`
}

type CategoryStat struct {
	CategoryID   *int64 `json:"category_id"`
	CategoryName string `json:"category_name"`
	ProductCount int64  `json:"product_count"`
}

type Store interface {
	GetStats(ctx context.Context) (*Stats, error)
}
