package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"collab-backend/internal/database/models"

	"gorm.io/gorm"
)

// DatabaseStorage stores objects as rows of the file_blobs table
type DatabaseStorage struct {
	db *gorm.DB
}

var _ FileStorage = (*DatabaseStorage)(nil)

// NewDatabaseStorage creates a DatabaseStorage
func NewDatabaseStorage(db *gorm.DB) *DatabaseStorage {
	return &DatabaseStorage{db: db}
}

// Upload implements FileStorage.
func (s *DatabaseStorage) Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	blob := &models.FileBlob{
		Ref:         path,
		ContentType: contentType,
		Size:        int64(len(data)),
		Data:        data,
	}
	if err := s.db.WithContext(ctx).Save(blob).Error; err != nil {
		return "", fmt.Errorf("failed to store file: %w", err)
	}
	return path, nil
}

// Download implements FileStorage.
func (s *DatabaseStorage) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	var blob models.FileBlob
	if err := s.db.WithContext(ctx).First(&blob, "ref = ?", path).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to load file: %w", err)
	}
	return io.NopCloser(bytes.NewReader(blob.Data)), nil
}

// Delete implements FileStorage.
func (s *DatabaseStorage) Delete(ctx context.Context, path string) error {
	if err := s.db.WithContext(ctx).Delete(&models.FileBlob{}, "ref = ?", path).Error; err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// Exists implements FileStorage.
func (s *DatabaseStorage) Exists(ctx context.Context, path string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.FileBlob{}).Where("ref = ?", path).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
