// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	uuid "github.com/gofrs/uuid"

	"github.com/ankitsaini000/rwew-sub002/media/models"
	"github.com/ankitsaini000/rwew-sub002/media/provider"
)

const (
	uploadURLTTL   = 15 * time.Minute
	downloadURLTTL = time.Hour
	maxImageBytes  = 10 * 1024 * 1024
	maxVideoBytes  = 200 * 1024 * 1024
)

var allowedContentTypes = map[string]int64{
	"image/jpeg": maxImageBytes,
	"image/png":  maxImageBytes,
	"image/webp": maxImageBytes,
	"image/gif":  maxImageBytes,
	"video/mp4":  maxVideoBytes,
	"video/webm": maxVideoBytes,
}

// MediaService issues presigned uploads for gallery and avatar assets
type MediaService interface {
	RequestUpload(ctx context.Context, userID uuid.UUID, req *models.UploadRequest) (*models.UploadTicket, error)
	Delete(ctx context.Context, userID uuid.UUID, key string) error
}

type service struct {
	blobs provider.BlobProvider
}

// NewService constructs a media service
func NewService(blobs provider.BlobProvider) MediaService {
	return &service{blobs: blobs}
}

// RequestUpload validates the file and returns a presigned PUT grant. Keys
// are namespaced per user so deletes can be ownership-checked.
func (s *service) RequestUpload(ctx context.Context, userID uuid.UUID, req *models.UploadRequest) (*models.UploadTicket, error) {
	if req == nil {
		return nil, fmt.Errorf("missing upload request")
	}

	maxSize, ok := allowedContentTypes[req.ContentType]
	if !ok {
		return nil, fmt.Errorf("unsupported content type: %s", req.ContentType)
	}
	if req.Size <= 0 {
		return nil, fmt.Errorf("file size is required")
	}
	if req.Size > maxSize {
		return nil, fmt.Errorf("file exceeds the %d byte limit for %s", maxSize, req.ContentType)
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("failed to generate object id: %w", err)
	}

	ext := strings.ToLower(path.Ext(req.FileName))
	key := fmt.Sprintf("creators/%s/%s%s", userID, id, ext)

	uploadURL, err := s.blobs.GeneratePresignedUploadURL(ctx, key, req.ContentType, req.Size, uploadURLTTL)
	if err != nil {
		return nil, err
	}

	publicURL, err := s.blobs.GeneratePresignedDownloadURL(ctx, key, downloadURLTTL)
	if err != nil {
		return nil, err
	}

	return &models.UploadTicket{
		Key:       key,
		UploadURL: uploadURL,
		PublicURL: publicURL,
		ExpiresIn: int64(uploadURLTTL.Seconds()),
	}, nil
}

// Delete removes an object the user owns. The key prefix is the ownership
// check; there is no separate file table.
func (s *service) Delete(ctx context.Context, userID uuid.UUID, key string) error {
	prefix := fmt.Sprintf("creators/%s/", userID)
	if !strings.HasPrefix(key, prefix) || strings.Contains(key, "..") {
		return fmt.Errorf("key does not belong to the requesting user")
	}
	return s.blobs.Delete(ctx, key)
}
