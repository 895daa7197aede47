package dashboard

import (
	"context"
	"fmt"

	"storefront/internal/infra/dbx"
)

type Repository struct {
	db dbx.Querier
}

func NewRepository(q dbx.Querier) *Repository {
	return &Repository{db: q}
}

func (r *Repository) GetStats(ctx context.Context) (*Stats, error) {
	const totalsQ = `
		SELECT
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM categories),
			(SELECT COUNT(*) FROM products WHERE in_stock),
			(SELECT COUNT(*) FROM products WHERE NOT in_stock),
			(SELECT COALESCE(SUM(price), 0) FROM products WHERE in_stock),
			(SELECT COALESCE(ROUND(AVG(price), 2), 0) FROM products WHERE in_stock)
	`

	var s Stats
	err := r.db.QueryRow(ctx, totalsQ).Scan(
		&s.TotalProducts,
		&s.TotalCategories,
		&s.InStockProducts,
		&s.OutOfStockProducts,
		&s.TotalValue,
		&s.AveragePrice,
	)
	if err != nil {
		return nil, fmt.Errorf("get dashboard totals: %w", err)
	}

	breakdown, err := r.categoryBreakdown(ctx)
	if err != nil {
		return nil, err
	}
	s.CategoryStats = breakdown

	return &s, nil
}

// categoryBreakdown counts products per category, plus one bucket for
// products whose category is NULL when there are any.
func (r *Repository) categoryBreakdown(ctx context.Context) ([]CategoryStat, error) {
	q := `
		SELECT id, name, product_count FROM (
			SELECT c.id, c.name, COUNT(p.id) AS product_count
			FROM categories c
			LEFT JOIN products p ON p.category_id = c.id
			GROUP BY c.id, c.name

			UNION ALL

			SELECT NULL::bigint, $1::text, COUNT(*)
			FROM products
			WHERE category_id IS NULL
			HAVING COUNT(*) > 0
		) s
		ORDER BY product_count DESC, name ASC`

	rows, err := r.db.Query(ctx, q, UncategorizedName)
	if err != nil {
		return nil, fmt.Errorf("category breakdown: %w", err)
	}
	defer rows.Close()

	out := make([]CategoryStat, 0)
	for rows.Next() {
		var cs CategoryStat
		if err := rows.Scan(&cs.CategoryID, &cs.CategoryName, &cs.ProductCount); err != nil {
			return nil, fmt.Errorf("scan category stat: %w", err)
		}
		out = append(out, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}
	return out, nil
}
