package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppliedBetween(t *testing.T) {
	tests := []struct {
		name          string
		before, after uint
		want          []string
	}{
		{"fresh database", 0, 2, []string{"000001_init", "000002_products_search"}},
		{"one pending", 1, 2, []string{"000002_products_search"}},
		{"up to date", 2, 2, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := appliedBetween(tt.before, tt.after)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
