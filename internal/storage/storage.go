// Package storage keeps uploaded binary objects such as company logos.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no object is stored under a path
var ErrNotFound = errors.New("file not found")

// Backend names accepted by New
const (
	BackendLocal    = "local"
	BackendDatabase = "database"
)

// FileStorage stores objects under caller-chosen paths
type FileStorage interface {
	// Upload stores a file and returns its path/key
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Download retrieves a file
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file. Deleting a missing file is not an error.
	Delete(ctx context.Context, path string) error

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)
}

// New creates the storage backend named by backend
func New(backend, basePath string, db *gorm.DB) (FileStorage, error) {
	switch backend {
	case BackendLocal, "":
		return NewLocalStorage(basePath)
	case BackendDatabase:
		if db == nil {
			return nil, errors.New("database storage requires a database connection")
		}
		return NewDatabaseStorage(db), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", backend)
	}
}
