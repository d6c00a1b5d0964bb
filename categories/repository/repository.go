// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	"github.com/ankitsaini000/rwew-sub002/categories/models"
)

// CategoryRepository defines the interface for category database operations
type CategoryRepository interface {
	// List returns all categories in display order
	List(ctx context.Context) ([]*models.Category, error)

	// FindBySlug retrieves a single category by its slug
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)

	// Create inserts a new category
	Create(ctx context.Context, category *models.Category) error
}
