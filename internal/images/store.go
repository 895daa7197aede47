// Package images stores product pictures on local disk, Cloudinary or S3 and
// keeps uploads restricted to a small set of image formats.
package images

import (
	"context"
	"errors"
	"io"
)

var (
	ErrUnsupportedType = errors.New("only image files are allowed")
	ErrTooLarge        = errors.New("image exceeds the upload size limit")
	ErrInvalidRef      = errors.New("invalid image reference")
)

// Store persists image bytes under an opaque reference. The reference is what
// gets written to products.image_path.
type Store interface {
	Save(ctx context.Context, r io.Reader, name string) (string, error)
	// Delete removes the image. A reference that no longer exists is not an error.
	Delete(ctx context.Context, ref string) error
	URL(ref string) string
}
