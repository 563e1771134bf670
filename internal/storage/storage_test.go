package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStorage(t *testing.T, s FileStorage) {
	t.Helper()
	ctx := context.Background()

	ref, err := s.Upload(ctx, strings.NewReader("png-bytes"), "logos/a.png", "image/png")
	require.NoError(t, err)
	assert.Equal(t, "logos/a.png", ref)

	exists, err := s.Exists(ctx, ref)
	require.NoError(t, err)
	assert.True(t, exists)

	rc, err := s.Download(ctx, ref)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "png-bytes", string(data))

	require.NoError(t, s.Delete(ctx, ref))
	exists, err = s.Exists(ctx, ref)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = s.Download(ctx, ref)
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting twice is fine
	assert.NoError(t, s.Delete(ctx, ref))
}

func TestMemoryStorage(t *testing.T) {
	exerciseStorage(t, NewMemoryStorage())
}

func TestLocalStorage(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir)
	require.NoError(t, err)

	exerciseStorage(t, s)

	t.Run("stays inside base path", func(t *testing.T) {
		ref, err := s.Upload(context.Background(), strings.NewReader("x"), "../../escape.png", "image/png")
		require.NoError(t, err)

		_, statErr := os.Stat(filepath.Join(dir, "escape.png"))
		assert.NoError(t, statErr)
		require.NoError(t, s.Delete(context.Background(), ref))
	})
}

func TestNew(t *testing.T) {
	s, err := New(BackendLocal, t.TempDir(), nil)
	require.NoError(t, err)
	assert.IsType(t, &LocalStorage{}, s)

	_, err = New(BackendDatabase, "", nil)
	assert.Error(t, err)

	_, err = New("s3", "", nil)
	assert.Error(t, err)
}
