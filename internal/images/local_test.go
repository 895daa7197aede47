package images

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	s, err := NewLocalStore(dir, "")
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("save, url and delete", func(t *testing.T) {
		ref, err := s.Save(ctx, strings.NewReader("data"), "image-1.png")
		require.NoError(t, err)
		assert.Equal(t, "image-1.png", ref)
		assert.Equal(t, "/uploads/image-1.png", s.URL(ref))

		b, err := os.ReadFile(filepath.Join(dir, ref))
		require.NoError(t, err)
		assert.Equal(t, "data", string(b))

		require.NoError(t, s.Delete(ctx, ref))
		assert.NoFileExists(t, filepath.Join(dir, ref))
	})

	t.Run("existing name is not overwritten", func(t *testing.T) {
		_, err := s.Save(ctx, strings.NewReader("a"), "image-2.png")
		require.NoError(t, err)
		_, err = s.Save(ctx, strings.NewReader("b"), "image-2.png")
		assert.Error(t, err)

		b, err := os.ReadFile(filepath.Join(dir, "image-2.png"))
		require.NoError(t, err)
		assert.Equal(t, "a", string(b))
	})

	t.Run("missing file deletes cleanly", func(t *testing.T) {
		assert.NoError(t, s.Delete(ctx, "image-404.png"))
	})

	t.Run("public path prefix is accepted", func(t *testing.T) {
		_, err := s.Save(ctx, strings.NewReader("x"), "image-3.png")
		require.NoError(t, err)
		require.NoError(t, s.Delete(ctx, "/uploads/image-3.png"))
		assert.NoFileExists(t, filepath.Join(dir, "image-3.png"))
	})

	t.Run("path traversal is rejected", func(t *testing.T) {
		for _, ref := range []string{"../secret", "a/b.png", `a\b.png`, "..", ""} {
			assert.ErrorIs(t, s.Delete(ctx, ref), ErrInvalidRef, ref)
			_, err := s.Save(ctx, strings.NewReader("x"), ref)
			assert.ErrorIs(t, err, ErrInvalidRef, ref)
		}
	})
}

func TestPublicIDFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://res.cloudinary.com/demo/image/upload/v1712345678/products/image-1.jpg", "products/image-1"},
		{"https://res.cloudinary.com/demo/image/upload/products/image-1.png", "products/image-1"},
		{"https://res.cloudinary.com/demo/image/upload/image-2", "image-2"},
	}
	for _, tt := range tests {
		got, err := publicIDFromURL(tt.url)
		require.NoError(t, err, tt.url)
		assert.Equal(t, tt.want, got)
	}

	_, err := publicIDFromURL("https://example.com/image.jpg")
	assert.ErrorIs(t, err, ErrInvalidRef)
}
