package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/categories"
	"storefront/internal/domain/dashboard"
	"storefront/internal/domain/products"
)

func TestDashboardStats(t *testing.T) {
	env := newTestApplication(t)

	t.Run("empty store", func(t *testing.T) {
		rr, body := env.do(t, env.asAdmin(httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{
			"totalProducts": 0,
			"totalCategories": 0,
			"inStockProducts": 0,
			"outOfStockProducts": 0,
			"totalValue": 0,
			"averagePrice": 0,
			"categoryStats": []
		}`, string(body.Data))
	})

	t.Run("populated", func(t *testing.T) {
		ctx := testContext(t)
		cat, err := fakeCategories{env.catalog}.Create(ctx, &categories.Category{Name: "Roti"})
		require.NoError(t, err)

		store := fakeProducts{env.catalog}
		for _, p := range []*products.Product{
			{Name: "A", Price: decimal.NewFromInt(10000), InStock: true, CategoryID: &cat.ID},
			{Name: "B", Price: decimal.NewFromInt(25000), InStock: true},
			{Name: "C", Price: decimal.NewFromInt(99000), InStock: false, CategoryID: &cat.ID},
		} {
			_, err := store.Create(ctx, p)
			require.NoError(t, err)
		}

		_, body := env.do(t, env.asAdmin(httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)))
		stats := decodeData[dashboard.Stats](t, body)
		assert.EqualValues(t, 3, stats.TotalProducts)
		assert.EqualValues(t, 2, stats.InStockProducts)
		assert.EqualValues(t, 1, stats.OutOfStockProducts)
		assert.True(t, decimal.NewFromInt(35000).Equal(stats.TotalValue))
		assert.True(t, decimal.NewFromInt(17500).Equal(stats.AveragePrice))

		require.Len(t, stats.CategoryStats, 2)
		assert.Equal(t, "Roti", stats.CategoryStats[0].CategoryName)
		assert.EqualValues(t, 2, stats.CategoryStats[0].ProductCount)
		assert.Equal(t, dashboard.UncategorizedName, stats.CategoryStats[1].CategoryName)
		assert.Nil(t, stats.CategoryStats[1].CategoryID)
	})
}
