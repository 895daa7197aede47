package ordering

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatIDR(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "Rp 0"},
		{"500", "Rp 500"},
		{"10000", "Rp 10.000"},
		{"12500.00", "Rp 12.500"},
		{"1250000.5", "Rp 1.250.000,5"},
		{"999.999", "Rp 1.000"},
		{"-15000", "Rp -15.000"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatIDR(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "62123456789", NormalizePhone("+62 123-456 789"))
	assert.Equal(t, "", NormalizePhone("n/a"))
}

func TestBuild(t *testing.T) {
	l, err := NewLinker("test-salt")
	require.NoError(t, err)
	l.now = func() time.Time { return time.Unix(1700000000, 0) }

	order := Order{
		ProductID:   7,
		ProductName: "Roti Coklat",
		Variant:     "Large",
		Quantity:    3,
		UnitPrice:   decimal.NewFromInt(15000),
	}

	t.Run("link", func(t *testing.T) {
		link, err := l.Build("+62 123 456 789", order)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(link.URL, "https://wa.me/62123456789?text="), link.URL)
		assert.NotContains(t, link.URL, "+")
		assert.True(t, link.Total.Equal(decimal.NewFromInt(45000)))

		u, err := url.Parse(link.URL)
		require.NoError(t, err)
		text := u.Query().Get("text")
		assert.Equal(t, link.Message, text)
		assert.Contains(t, text, "*Roti Coklat*\nVarian: Large")
		assert.Contains(t, text, "Jumlah: 3 pcs")
		assert.Contains(t, text, "Harga per item: Rp 15.000")
		assert.Contains(t, text, "Total: Rp 45.000")
		assert.Contains(t, text, "Ref: "+link.Reference)
	})

	t.Run("no variant line without variant", func(t *testing.T) {
		o := order
		o.Variant = ""
		link, err := l.Build("62123", o)
		require.NoError(t, err)
		assert.NotContains(t, link.Message, "Varian:")
	})

	t.Run("reference decodes back", func(t *testing.T) {
		link, err := l.Build("62123", order)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(link.Reference, "ORD-"))

		nums, err := l.DecodeReference(link.Reference)
		require.NoError(t, err)
		assert.Equal(t, []int64{7, 3, 1700000000}, nums)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := l.Build("", order)
		assert.ErrorIs(t, err, ErrNoPhone)

		o := order
		o.Quantity = 0
		_, err = l.Build("62123", o)
		assert.ErrorIs(t, err, ErrInvalidQuantity)

		_, err = l.DecodeReference("XYZ")
		assert.Error(t, err)
	})
}
