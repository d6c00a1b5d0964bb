// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package provider

import (
	"context"
	"time"
)

// BlobProvider abstracts the object store behind gallery and avatar uploads.
// Uploads go browser-to-bucket through presigned URLs; this service never
// proxies file bytes.
type BlobProvider interface {
	// GeneratePresignedUploadURL returns a PUT URL bound to the exact content
	// type and length, valid for expiresIn.
	GeneratePresignedUploadURL(ctx context.Context, key string, contentType string, contentLength int64, expiresIn time.Duration) (string, error)

	// GeneratePresignedDownloadURL returns a GET URL. When a public CDN base
	// is configured it is returned directly instead of a presigned URL.
	GeneratePresignedDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error)

	// Delete removes the object
	Delete(ctx context.Context, key string) error

	// GetMetadata confirms the object exists and returns its size
	GetMetadata(ctx context.Context, key string) (size int64, err error)
}
