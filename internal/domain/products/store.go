package products

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"storefront/internal/infra/dbx"
	"storefront/internal/params"
)

var (
	ErrNotFound        = errors.New("product not found")
	ErrInvalidCategory = errors.New("category does not exist")
)

type Repository struct {
	db dbx.Querier
}

func NewRepository(q dbx.Querier) *Repository {
	return &Repository{db: q}
}

func scanProduct(row pgx.Row) (*Product, error) {
	var (
		p        Product
		variants []byte
	)
	if err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID, &p.CategoryName,
		&p.ImagePath, &variants, &p.InStock, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	v, err := decodeVariants(variants)
	if err != nil {
		return nil, err
	}
	p.Variants = v
	return &p, nil
}

// List returns one page of products matching f, newest first, plus the total
// number of matching rows. The total is counted before the page is read.
func (r *Repository) List(ctx context.Context, f Filter) ([]*Product, int, error) {
	if f.Limit <= 0 {
		f.Limit = params.DefaultLimit
	}
	if f.Limit > params.MaxLimit {
		f.Limit = params.MaxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	countQ, countArgs := f.countQuery()
	var total int
	if err := r.db.QueryRow(ctx, countQ, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	pageQ, pageArgs := f.pageQuery()
	rows, err := r.db.Query(ctx, pageQ, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	items := make([]*Product, 0, f.Limit)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration: %w", err)
	}

	return items, total, nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Product, error) {
	q := productSelect + productFrom + ` WHERE p.id = $1`

	p, err := scanProduct(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get product by id: %w", err)
	}
	return p, nil
}

func (r *Repository) Create(ctx context.Context, p *Product) (*Product, error) {
	variants, err := encodeVariants(p.Variants)
	if err != nil {
		return nil, fmt.Errorf("encode variants: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, `
		INSERT INTO products (name, description, price, category_id, image_path, variants, in_stock)
		VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7)
		RETURNING id`,
		p.Name, p.Description, p.Price, p.CategoryID, p.ImagePath, variants, p.InStock,
	).Scan(&id)
	if err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return nil, ErrInvalidCategory
		}
		return nil, fmt.Errorf("create product: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *Repository) Update(ctx context.Context, p *Product) (*Product, error) {
	variants, err := encodeVariants(p.Variants)
	if err != nil {
		return nil, fmt.Errorf("encode variants: %w", err)
	}

	cmd, err := r.db.Exec(ctx, `
		UPDATE products
		SET name = $1, description = $2, price = $3, category_id = $4,
		    image_path = $5, variants = $6::jsonb, in_stock = $7, updated_at = now()
		WHERE id = $8`,
		p.Name, p.Description, p.Price, p.CategoryID, p.ImagePath, variants, p.InStock, p.ID,
	)
	if err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return nil, ErrInvalidCategory
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, ErrNotFound
	}

	return r.GetByID(ctx, p.ID)
}

func (r *Repository) Delete(ctx context.Context, id int64) (*Product, error) {
	var (
		p        Product
		variants []byte
	)
	err := r.db.QueryRow(ctx, `
		DELETE FROM products
		WHERE id = $1
		RETURNING id, name, description, price, category_id, image_path, variants, in_stock, created_at, updated_at`,
		id,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.CategoryID, &p.ImagePath, &variants, &p.InStock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("delete product: %w", err)
	}

	if p.Variants, err = decodeVariants(variants); err != nil {
		return nil, err
	}
	return &p, nil
}
