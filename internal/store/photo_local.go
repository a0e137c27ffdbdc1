package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-recipe-book/internal/logger"
)

// localPhotoStorage writes photos into a directory on the local filesystem.
// Files are written to a temporary name in the same directory and renamed
// into place, so readers never observe a partially written photo.
type localPhotoStorage struct {
	dir    string
	logger *logger.Logger
}

// NewLocalPhotoStorage creates dir when missing and returns a [PhotoStorage]
// writing into it.
func NewLocalPhotoStorage(dir string, logger *logger.Logger) (PhotoStorage, error) {
	logger.Debug().Str("dir", dir).Msg("creating local photo storage")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating photo directory: %w", err)
	}

	return &localPhotoStorage{dir: dir, logger: logger}, nil
}

func (s *localPhotoStorage) SavePhoto(ctx context.Context, name string, content io.Reader, size int64, contentType string) error {
	log := logger.FromContext(ctx)

	if name == "" || filepath.Base(name) != name {
		return fmt.Errorf("%w: invalid file name %q", ErrPhotoNotSaved, name)
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		log.Err(err).Str("func", "*localPhotoStorage.SavePhoto").Msg("error creating temp file")
		return fmt.Errorf("%w: %w", ErrPhotoNotSaved, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err = io.Copy(tmp, newContextReader(ctx, content)); err != nil {
		tmp.Close()
		log.Err(err).Str("func", "*localPhotoStorage.SavePhoto").Msg("error writing photo")
		return fmt.Errorf("%w: %w", ErrPhotoNotSaved, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrPhotoNotSaved, err)
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrPhotoNotSaved, err)
	}

	if err = os.Rename(tmpName, filepath.Join(s.dir, name)); err != nil {
		log.Err(err).Str("func", "*localPhotoStorage.SavePhoto").Msg("error moving photo into place")
		return fmt.Errorf("%w: %w", ErrPhotoNotSaved, err)
	}

	log.Debug().Str("photo", name).Int64("size", size).Str("content_type", contentType).Msg("photo saved")
	return nil
}

// contextReader stops a copy once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func newContextReader(ctx context.Context, r io.Reader) io.Reader {
	return &contextReader{ctx: ctx, r: r}
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
