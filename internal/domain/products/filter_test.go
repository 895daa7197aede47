package products

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterWhere(t *testing.T) {
	t.Run("no filters", func(t *testing.T) {
		where, args := Filter{}.where()
		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("category only", func(t *testing.T) {
		where, args := Filter{Category: "Roti Manis"}.where()
		assert.Equal(t, " WHERE c.name = $1", where)
		assert.Equal(t, []any{"Roti Manis"}, args)
	})

	t.Run("search only reuses one placeholder", func(t *testing.T) {
		where, args := Filter{Search: "  coklat "}.where()
		assert.Equal(t, " WHERE (p.name ILIKE $1 OR p.description ILIKE $1)", where)
		assert.Equal(t, []any{"%coklat%"}, args)
	})

	t.Run("both are AND-ed", func(t *testing.T) {
		where, args := Filter{Category: "Kue", Search: "keju"}.where()
		assert.Equal(t, " WHERE c.name = $1 AND (p.name ILIKE $2 OR p.description ILIKE $2)", where)
		assert.Equal(t, []any{"Kue", "%keju%"}, args)
	})

	t.Run("wildcards in search are literal", func(t *testing.T) {
		_, args := Filter{Search: `50%_off\`}.where()
		assert.Equal(t, []any{`%50\%\_off\\%`}, args)
	})
}

func TestFilterQueries(t *testing.T) {
	f := Filter{Category: "Kue", Search: "keju", Limit: 10, Offset: 20}

	countQ, countArgs := f.countQuery()
	pageQ, pageArgs := f.pageQuery()

	assert.True(t, strings.HasPrefix(countQ, "SELECT COUNT(*)"))
	assert.Equal(t, []any{"Kue", "%keju%"}, countArgs)

	assert.Contains(t, pageQ, "ORDER BY p.created_at DESC, p.id DESC")
	assert.Contains(t, pageQ, "LIMIT $3 OFFSET $4")
	assert.Equal(t, []any{"Kue", "%keju%", 10, 20}, pageArgs)

	// count and page share the same predicate
	where, _ := f.where()
	assert.Contains(t, countQ, where)
	assert.Contains(t, pageQ, where)
}

func TestFilterQueries_PaginationOnly(t *testing.T) {
	pageQ, args := Filter{Limit: 12}.pageQuery()
	assert.Contains(t, pageQ, "LIMIT $1 OFFSET $2")
	assert.Equal(t, []any{12, 0}, args)
}
