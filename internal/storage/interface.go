package storage

import (
	"context"
	"time"
)

// StorageClient abstracts where generated forecast reports are persisted.
type StorageClient interface {
	// Close closes the storage client
	Close() error

	// StoreFile stores a file in the report folder derived from timestamp
	StoreFile(ctx context.Context, fileData []byte, filename string, timestamp time.Time) error

	// GetFile retrieves a file from the specified path
	GetFile(ctx context.Context, filePath string) ([]byte, error)

	// ListReports lists recent report pages, newest first
	ListReports(ctx context.Context, limit int) ([]string, error)

	// GetLatestReport returns the path of the most recent report page
	GetLatestReport() (string, error)
}
