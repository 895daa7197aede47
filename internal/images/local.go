package images

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPublicPath is where the API serves the upload directory.
const DefaultPublicPath = "/uploads"

type LocalStore struct {
	dir        string
	publicPath string
}

// NewLocalStore creates dir when needed. Files are served under publicPath.
func NewLocalStore(dir, publicPath string) (*LocalStore, error) {
	if dir == "" {
		return nil, errors.New("upload directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	if publicPath == "" {
		publicPath = DefaultPublicPath
	}
	return &LocalStore{dir: dir, publicPath: strings.TrimRight(publicPath, "/")}, nil
}

func (s *LocalStore) Dir() string { return s.dir }

func (s *LocalStore) Save(_ context.Context, r io.Reader, name string) (string, error) {
	p, err := s.path(name)
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(p)
		return "", fmt.Errorf("write image file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(p)
		return "", fmt.Errorf("close image file: %w", err)
	}

	return name, nil
}

func (s *LocalStore) Delete(_ context.Context, ref string) error {
	p, err := s.path(s.trimPublic(ref))
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove image file: %w", err)
	}
	return nil
}

func (s *LocalStore) URL(ref string) string {
	return s.publicPath + "/" + s.trimPublic(ref)
}

// trimPublic accepts refs stored with the public prefix ("/uploads/x.jpg").
func (s *LocalStore) trimPublic(ref string) string {
	return strings.TrimPrefix(ref, s.publicPath+"/")
}

func (s *LocalStore) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidRef, name)
	}
	return filepath.Join(s.dir, name), nil
}
