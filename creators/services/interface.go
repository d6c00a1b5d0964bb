package services

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/ankitsaini000/rwew-sub002/creators/models"
	"github.com/ankitsaini000/rwew-sub002/creators/repository"
)

// CreatorService owns the creator profile lifecycle: drafting, section
// submits, completion tracking, publish, and the public read side.
type CreatorService interface {
	CreateProfile(ctx context.Context, userID uuid.UUID, req *models.CreateCreatorRequest) (*models.Creator, error)

	GetMyProfile(ctx context.Context, userID uuid.UUID) (*models.Creator, error)
	GetByUsername(ctx context.Context, username string) (*models.Creator, error)
	GetProfileData(ctx context.Context, userID uuid.UUID) (*models.Creator, error)
	GetCompletionStatus(ctx context.Context, userID uuid.UUID) (*models.CompletionStatusResponse, error)
	CheckUsername(ctx context.Context, username string) (*models.UsernameAvailabilityResponse, error)

	UpdateSections(ctx context.Context, userID uuid.UUID, req *models.UpdateSectionsRequest) (*models.Creator, error)
	ResetDrafts(ctx context.Context, userID uuid.UUID) error

	// PublishProfile flips a draft to published once verification completed.
	// Gating re-checks required-section completeness server side.
	PublishProfile(ctx context.Context, userID uuid.UUID) (*models.Creator, error)

	// Admin operations
	ListCreators(ctx context.Context, filter repository.CreatorFilter, page, limit int) (*models.CreatorsResponse, error)
	UpdateCreatorStatus(ctx context.Context, userID uuid.UUID, status string) error
}

// Notifier is the subset of the notification service the creator service
// needs to announce lifecycle events.
type Notifier interface {
	ProfilePublished(ctx context.Context, userID uuid.UUID, username string)
	ProfileStatusChanged(ctx context.Context, userID uuid.UUID, status string)
}
