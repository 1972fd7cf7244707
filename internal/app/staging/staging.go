// Package staging owns the temporary-file lifecycle of uploaded audio:
// every upload is written under one scoped directory and deleted again
// before the request that staged it returns.
package staging

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	apierrors "meetscribe/internal/api/errors"
)

// MaxUploadBytes caps accepted audio files at 50 MiB.
const MaxUploadBytes = 50 << 20

// StagedFile is an uploaded audio file persisted under the staging
// directory. It belongs to exactly one request and must be released
// before that request's handler returns.
type StagedFile struct {
	Path         string
	OriginalName string
	Size         int64
	ContentType  string
}

// Release deletes the staged file from disk. Call it exactly once.
func (f *StagedFile) Release() error {
	return os.Remove(f.Path)
}

// Store writes uploads into a scoped staging directory.
type Store struct {
	dir string
}

// NewStore creates the staging directory if it does not exist yet.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create staging directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the staging directory path.
func (s *Store) Dir() string {
	return s.dir
}

// Stage persists one multipart upload under a unique path. Size and
// presence are checked before any byte is written, so oversize or
// missing uploads never reach a provider. The caller owns the returned
// file.
func (s *Store) Stage(header *multipart.FileHeader) (*StagedFile, error) {
	if header == nil {
		return nil, apierrors.NewValidationError("No audio file uploaded")
	}
	if header.Size > MaxUploadBytes {
		return nil, apierrors.NewValidationError(
			fmt.Sprintf("Audio file exceeds the %dMB limit", MaxUploadBytes>>20))
	}

	src, err := header.Open()
	if err != nil {
		return nil, apierrors.NewValidationError("Uploaded audio file is not readable")
	}
	defer src.Close()

	// Keep the original extension so the provider can recognize the
	// container format; uniqueness comes from the uuid.
	path := filepath.Join(s.dir, uuid.New().String()+filepath.Ext(header.Filename))
	dst, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("stage upload: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return nil, fmt.Errorf("stage upload: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("stage upload: %w", err)
	}

	return &StagedFile{
		Path:         path,
		OriginalName: header.Filename,
		Size:         header.Size,
		ContentType:  header.Header.Get("Content-Type"),
	}, nil
}

// With stages the upload, runs fn against the staged file, and
// guarantees the file is deleted on every exit path: normal return,
// error, or a panic inside fn.
func (s *Store) With(header *multipart.FileHeader, fn func(f *StagedFile) error) error {
	f, err := s.Stage(header)
	if err != nil {
		return err
	}
	defer f.Release()
	return fn(f)
}
