package products_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/db/dbtest"
	"storefront/internal/domain/categories"
	"storefront/internal/domain/products"
)

func ptr[T any](v T) *T { return &v }

func TestRepository(t *testing.T) {
	pool := dbtest.Open(t)
	repo := products.NewRepository(pool)
	cats := categories.NewRepository(pool)
	ctx := context.Background()

	bread, err := cats.Create(ctx, &categories.Category{Name: "Bread"})
	require.NoError(t, err)
	cake, err := cats.Create(ctx, &categories.Category{Name: "Cake"})
	require.NoError(t, err)

	seed := []products.Product{
		{Name: "Roti Coklat", Description: "Isi coklat lumer", Price: decimal.NewFromInt(12000), CategoryID: &bread.ID, InStock: true},
		{Name: "Roti Keju", Description: "Keju cheddar", Price: decimal.NewFromInt(14000), CategoryID: &bread.ID, InStock: true},
		{Name: "Brownies", Description: "Fudgy 100% coklat", Price: decimal.NewFromInt(45000), CategoryID: &cake.ID, InStock: false},
		{Name: "Donat", Description: "Gula halus", Price: decimal.NewFromInt(6000), InStock: true},
	}
	for i := range seed {
		_, err := repo.Create(ctx, &seed[i])
		require.NoError(t, err)
	}

	t.Run("list all newest first", func(t *testing.T) {
		items, total, err := repo.List(ctx, products.Filter{Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 4, total)
		require.Len(t, items, 4)
		assert.Equal(t, "Donat", items[0].Name)
		assert.Nil(t, items[0].CategoryName)
	})

	t.Run("filter by category name", func(t *testing.T) {
		items, total, err := repo.List(ctx, products.Filter{Category: "Bread", Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		for _, p := range items {
			require.NotNil(t, p.CategoryName)
			assert.Equal(t, "Bread", *p.CategoryName)
		}

		_, total, err = repo.List(ctx, products.Filter{Category: "bread", Limit: 10})
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("search is case insensitive over name and description", func(t *testing.T) {
		_, total, err := repo.List(ctx, products.Filter{Search: "COKLAT", Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
	})

	t.Run("search treats wildcards literally", func(t *testing.T) {
		items, total, err := repo.List(ctx, products.Filter{Search: "100%", Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, "Brownies", items[0].Name)

		_, total, err = repo.List(ctx, products.Filter{Search: "_", Limit: 10})
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("pages do not overlap", func(t *testing.T) {
		first, total, err := repo.List(ctx, products.Filter{Limit: 3})
		require.NoError(t, err)
		second, _, err := repo.List(ctx, products.Filter{Limit: 3, Offset: 3})
		require.NoError(t, err)
		beyond, _, err := repo.List(ctx, products.Filter{Limit: 3, Offset: 6})
		require.NoError(t, err)

		assert.Equal(t, 4, total)
		assert.Len(t, first, 3)
		assert.Len(t, second, 1)
		assert.Empty(t, beyond)
		assert.NotNil(t, beyond)
	})

	t.Run("variants round trip", func(t *testing.T) {
		in := &products.Product{
			Name:    "Bolu",
			Price:   decimal.NewFromInt(30000),
			InStock: true,
			Variants: []products.Variant{
				{Name: "Small", Price: decimal.NewFromInt(10000)},
				{Name: "Large", Price: decimal.NewFromInt(15000)},
			},
		}
		created, err := repo.Create(ctx, in)
		require.NoError(t, err)

		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.Len(t, got.Variants, 2)
		assert.Equal(t, "Small", got.Variants[0].Name)
		assert.True(t, got.Variants[0].Price.Equal(decimal.NewFromInt(10000)))
		assert.Equal(t, "Large", got.Variants[1].Name)
		assert.True(t, got.Variants[1].Price.Equal(decimal.NewFromInt(15000)))
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		_, err := repo.Create(ctx, &products.Product{Name: "x", Price: decimal.Zero, CategoryID: ptr(int64(999999))})
		assert.ErrorIs(t, err, products.ErrInvalidCategory)
	})

	t.Run("update and delete", func(t *testing.T) {
		p, err := repo.Create(ctx, &products.Product{Name: "Croissant", Price: decimal.NewFromInt(18000), InStock: true, ImagePath: ptr("image-1.jpg")})
		require.NoError(t, err)

		p.Name = "Croissant Almond"
		p.InStock = false
		updated, err := repo.Update(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, "Croissant Almond", updated.Name)
		assert.False(t, updated.InStock)

		deleted, err := repo.Delete(ctx, p.ID)
		require.NoError(t, err)
		require.NotNil(t, deleted.ImagePath)
		assert.Equal(t, "image-1.jpg", *deleted.ImagePath)

		_, err = repo.GetByID(ctx, p.ID)
		assert.ErrorIs(t, err, products.ErrNotFound)
		_, err = repo.Delete(ctx, p.ID)
		assert.ErrorIs(t, err, products.ErrNotFound)
		_, err = repo.Update(ctx, p)
		assert.ErrorIs(t, err, products.ErrNotFound)
	})

	t.Run("deleting a category nulls product references", func(t *testing.T) {
		require.NoError(t, cats.Delete(ctx, cake.ID))

		items, _, err := repo.List(ctx, products.Filter{Search: "Brownies", Limit: 10})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Nil(t, items[0].CategoryID)
		assert.Nil(t, items[0].CategoryName)
	})
}
