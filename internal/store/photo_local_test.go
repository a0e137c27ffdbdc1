package store

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocalPhotoStorage_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "public", "uploads")

	_, err := NewLocalPhotoStorage(dir, logger.Nop())
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLocalPhotoStorage_SavePhoto(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalPhotoStorage(dir, logger.Nop())
	require.NoError(t, err)

	content := []byte("\x89PNG\r\n\x1a\nfake")
	err = storage.SavePhoto(context.Background(), "photo_r-1.png", bytes.NewReader(content), int64(len(content)), "image/png")
	require.NoError(t, err)

	saved, err := os.ReadFile(filepath.Join(dir, "photo_r-1.png"))
	require.NoError(t, err)
	assert.Equal(t, content, saved)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary upload file must not remain")
}

func TestLocalPhotoStorage_SavePhoto_Overwrites(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalPhotoStorage(dir, logger.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, storage.SavePhoto(ctx, "photo_r-1.jpg", strings.NewReader("old"), 3, "image/jpeg"))
	require.NoError(t, storage.SavePhoto(ctx, "photo_r-1.jpg", strings.NewReader("newer"), 5, "image/jpeg"))

	saved, err := os.ReadFile(filepath.Join(dir, "photo_r-1.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "newer", string(saved))
}

func TestLocalPhotoStorage_SavePhoto_RejectsPaths(t *testing.T) {
	storage, err := NewLocalPhotoStorage(t.TempDir(), logger.Nop())
	require.NoError(t, err)

	for _, name := range []string{"", "../evil.png", "nested/photo.png"} {
		t.Run(name, func(t *testing.T) {
			err := storage.SavePhoto(context.Background(), name, strings.NewReader("x"), 1, "image/png")
			assert.ErrorIs(t, err, ErrPhotoNotSaved)
		})
	}
}

func TestLocalPhotoStorage_SavePhoto_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalPhotoStorage(dir, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = storage.SavePhoto(ctx, "photo_r-1.png", strings.NewReader("data"), 4, "image/png")
	assert.ErrorIs(t, err, ErrPhotoNotSaved)
	assert.ErrorIs(t, err, context.Canceled)

	_, statErr := os.Stat(filepath.Join(dir, "photo_r-1.png"))
	assert.True(t, os.IsNotExist(statErr))
}
