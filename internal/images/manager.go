package images

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxUploadBytes caps a single image.
const MaxUploadBytes = 5 << 20

// extensions maps the accepted sniffed types to the stored file extension.
var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Manager validates uploads and owns the lifecycle of stored images.
type Manager struct {
	store    Store
	logger   *zap.SugaredLogger
	maxBytes int64
	now      func() time.Time
}

func NewManager(store Store, logger *zap.SugaredLogger) *Manager {
	return &Manager{
		store:    store,
		logger:   logger,
		maxBytes: MaxUploadBytes,
		now:      time.Now,
	}
}

// Upload checks size and content type, then saves the image under a fresh
// name and returns its reference.
func (m *Manager) Upload(ctx context.Context, r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, m.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > m.maxBytes {
		return "", ErrTooLarge
	}

	contentType := http.DetectContentType(data)
	ext, ok := extensions[contentType]
	if !ok {
		return "", fmt.Errorf("%w: got %s", ErrUnsupportedType, contentType)
	}

	ref, err := m.store.Save(ctx, bytes.NewReader(data), m.newName(ext))
	if err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}
	return ref, nil
}

func (m *Manager) newName(ext string) string {
	return fmt.Sprintf("image-%d-%s%s", m.now().UnixMilli(), uuid.NewString(), ext)
}

// Discard deletes an image without failing the caller; errors are logged.
// A nil or empty reference is ignored.
func (m *Manager) Discard(ctx context.Context, ref *string) {
	if ref == nil || *ref == "" {
		return
	}
	if err := m.store.Delete(ctx, *ref); err != nil {
		m.logger.Warnw("failed to delete image", "ref", *ref, "error", err)
	}
}

// URL resolves a stored reference; nil stays nil.
func (m *Manager) URL(ref *string) *string {
	if ref == nil || *ref == "" {
		return nil
	}
	u := m.store.URL(*ref)
	return &u
}
