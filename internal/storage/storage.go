// Package storage abstracts the object store documents are uploaded to.
// The rest of the application only sees this narrow interface so the
// backend can be swapped or mocked.
package storage

import (
	"context"
	"time"
)

// UploadOptions control a single object write.
type UploadOptions struct {
	ContentType string
	// Upsert allows overwriting an existing object at the same path,
	// which happens when an upload is retried within one call.
	Upsert bool
}

// ObjectStorage is the contract every storage backend implements.
type ObjectStorage interface {
	// Upload writes data to path, creating or overwriting the object.
	Upload(ctx context.Context, path string, data []byte, opts UploadOptions) error

	// CreateSignedURL returns a time-limited authenticated link for path.
	CreateSignedURL(ctx context.Context, path string, ttl time.Duration) (string, error)

	// GetPublicURL returns the unauthenticated URL for path, or "" when
	// the bucket has no public access.
	GetPublicURL(path string) string
}
