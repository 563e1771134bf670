package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	apperrors "collab-backend/internal/errors"
	"collab-backend/internal/imaging"
	"collab-backend/internal/storage"

	"github.com/google/uuid"
)

// LogoUpload is an uploaded logo file
type LogoUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// LogoService turns uploads into bounded PNG blobs and keeps the blob store in sync
type LogoService struct {
	files     storage.FileStorage
	maxWidth  int
	maxHeight int
	maxPixels int
	maxBytes  int64
}

// NewLogoService creates a new logo service. maxPixels bounds the declared size of an upload,
// zero selects imaging.DefaultMaxPixels.
func NewLogoService(files storage.FileStorage, maxWidth, maxHeight, maxPixels int, maxBytes int64) *LogoService {
	return &LogoService{
		files:     files,
		maxWidth:  maxWidth,
		maxHeight: maxHeight,
		maxPixels: maxPixels,
		maxBytes:  maxBytes,
	}
}

// Prepare validates an upload and encodes it as a PNG within the configured bounds.
// Every rejection is a single ValidationError on the logo field.
func (s *LogoService) Prepare(upload *LogoUpload) ([]byte, error) {
	if upload == nil || upload.Reader == nil {
		return nil, apperrors.ErrMissingLogo
	}
	if s.maxBytes > 0 && upload.Size > s.maxBytes {
		return nil, apperrors.NewValidationError("logo", fmt.Sprintf("is too large (maximum is %d bytes)", s.maxBytes))
	}

	data, err := imaging.Thumbnail(upload.ContentType, upload.Reader, s.maxWidth, s.maxHeight, s.maxPixels)
	if err != nil {
		switch {
		case errors.Is(err, imaging.ErrUnsupportedType):
			return nil, apperrors.NewValidationError("logo", "Unsupported format")
		case errors.Is(err, imaging.ErrInvalidImage):
			return nil, apperrors.NewValidationError("logo", "Invalid data")
		default:
			return nil, fmt.Errorf("failed to process logo: %w", err)
		}
	}
	return data, nil
}

// Store saves an encoded logo under a fresh reference
func (s *LogoService) Store(ctx context.Context, data []byte) (string, error) {
	ref := fmt.Sprintf("logos/%s.png", uuid.NewString())
	stored, err := s.files.Upload(ctx, bytes.NewReader(data), ref, imaging.PNGContentType)
	if err != nil {
		return "", fmt.Errorf("failed to store logo: %w", err)
	}
	return stored, nil
}

// Release deletes the blob behind ref. A nil ref is a no-op.
func (s *LogoService) Release(ctx context.Context, ref *string) error {
	if ref == nil {
		return nil
	}
	if err := s.files.Delete(ctx, *ref); err != nil {
		return fmt.Errorf("failed to delete logo %s: %w", *ref, err)
	}
	return nil
}

// Open returns the stored logo
func (s *LogoService) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	rc, err := s.files.Download(ctx, ref)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.ErrLogoNotFound
		}
		return nil, fmt.Errorf("failed to open logo: %w", err)
	}
	return rc, nil
}
