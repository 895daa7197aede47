package images

import (
	"bytes"
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"go.uber.org/zap/zapcore"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type memStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	delErr  error
}

func newMemStore() *memStore { return &memStore{objects: map[string][]byte{}} }

func (m *memStore) Save(_ context.Context, r io.Reader, name string) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[name] = b
	return name, nil
}

func (m *memStore) Delete(_ context.Context, ref string) error {
	if m.delErr != nil {
		return m.delErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, ref)
	return nil
}

func (m *memStore) URL(ref string) string { return "mem://" + ref }

func TestManagerUpload(t *testing.T) {
	store := newMemStore()
	m := NewManager(store, zap.NewNop().Sugar())
	m.now = func() time.Time { return time.UnixMilli(1700000000000) }
	ctx := context.Background()

	t.Run("png is stored under a generated name", func(t *testing.T) {
		ref, err := m.Upload(ctx, bytes.NewReader(pngHeader))
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^image-1700000000000-[0-9a-f-]{36}\.png$`), ref)
		assert.Equal(t, pngHeader, store.objects[ref])
	})

	t.Run("names do not collide", func(t *testing.T) {
		a, err := m.Upload(ctx, bytes.NewReader(pngHeader))
		require.NoError(t, err)
		b, err := m.Upload(ctx, bytes.NewReader(pngHeader))
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("non image is rejected", func(t *testing.T) {
		_, err := m.Upload(ctx, strings.NewReader("hello, plain text"))
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("oversized upload is rejected", func(t *testing.T) {
		small := NewManager(store, zap.NewNop().Sugar())
		small.maxBytes = 8
		_, err := small.Upload(ctx, bytes.NewReader(pngHeader))
		assert.ErrorIs(t, err, ErrTooLarge)
	})
}

func TestManagerDiscard(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	store := newMemStore()
	m := NewManager(store, zap.New(core).Sugar())
	ctx := context.Background()

	ref, err := m.Upload(ctx, bytes.NewReader(pngHeader))
	require.NoError(t, err)

	m.Discard(ctx, &ref)
	assert.NotContains(t, store.objects, ref)

	m.Discard(ctx, nil)
	assert.Zero(t, logs.Len())

	store.delErr = errors.New("disk on fire")
	m.Discard(ctx, &ref)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "failed to delete image", logs.All()[0].Message)
}

func TestManagerURL(t *testing.T) {
	m := NewManager(newMemStore(), zap.NewNop().Sugar())
	empty := ""
	ref := "a.png"

	assert.Nil(t, m.URL(nil))
	assert.Nil(t, m.URL(&empty))
	require.NotNil(t, m.URL(&ref))
	assert.Equal(t, "mem://a.png", *m.URL(&ref))
}

type fakeS3 struct {
	put []*s3.PutObjectInput
	del []*s3.DeleteObjectInput
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.put = append(f.put, in)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.del = append(f.del, in)
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Store(t *testing.T) {
	client := &fakeS3{}
	s := newS3Store(client, "shop-images", "/products/", "https://cdn.example.com/")
	ctx := context.Background()

	ref, err := s.Save(ctx, bytes.NewReader(pngHeader), "image-1.png")
	require.NoError(t, err)
	assert.Equal(t, "products/image-1.png", ref)
	assert.Equal(t, "https://cdn.example.com/products/image-1.png", s.URL(ref))

	require.Len(t, client.put, 1)
	assert.Equal(t, "shop-images", *client.put[0].Bucket)
	assert.Equal(t, "image/png", *client.put[0].ContentType)

	require.NoError(t, s.Delete(ctx, ref))
	require.Len(t, client.del, 1)
	assert.Equal(t, "products/image-1.png", *client.del[0].Key)

	assert.ErrorIs(t, s.Delete(ctx, ""), ErrInvalidRef)
}
