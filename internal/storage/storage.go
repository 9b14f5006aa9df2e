package storage

import (
	"context"
	"time"
)

// DefaultPresignedURLExpiry bounds how long a generated URL stays usable.
const DefaultPresignedURLExpiry = 15 * time.Minute

// FileStorage defines the interface for object storage operations backing
// plan media (trainer-attached videos and images).
type FileStorage interface {
	// GeneratePresignedUploadURL creates a temporary URL allowing a PUT of
	// an object directly to the storage provider.
	GeneratePresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error)

	// GeneratePresignedDownloadURL creates a temporary URL allowing a GET of
	// an object directly from the storage provider.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// DeleteObject removes an object from the storage provider.
	DeleteObject(ctx context.Context, objectKey string) error
}
