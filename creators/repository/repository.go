// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/ankitsaini000/rwew-sub002/creators/models"
)

// CreatorFilter represents filtering criteria for querying creators
type CreatorFilter struct {
	Status     *string
	SearchText *string
}

// CreatorRepository defines the interface for creator-specific database
// operations. This is a domain-specific repository that knows exactly what a
// "Creator" is and how to execute optimized SQL queries for that domain.
type CreatorRepository interface {
	// Create inserts a new creator profile
	Create(ctx context.Context, creator *models.Creator) error

	// FindByUserID retrieves a creator by owning user ID
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Creator, error)

	// FindByUsername retrieves a creator by username (unique)
	FindByUsername(ctx context.Context, username string) (*models.Creator, error)

	// UsernameExists reports whether a username is already claimed
	UsernameExists(ctx context.Context, username string) (bool, error)

	// Update persists the full creator document
	Update(ctx context.Context, creator *models.Creator) error

	// UpdateStatus transitions the profile lifecycle status
	UpdateStatus(ctx context.Context, userID uuid.UUID, status string) error

	// Find retrieves creators matching the filter criteria with pagination
	Find(ctx context.Context, filter CreatorFilter, limit, offset int) ([]*models.Creator, error)

	// Count returns the number of creators matching the filter criteria
	Count(ctx context.Context, filter CreatorFilter) (int64, error)

	// Delete removes a creator profile by user ID
	Delete(ctx context.Context, userID uuid.UUID) error
}
