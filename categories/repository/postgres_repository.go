// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	uuid "github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ankitsaini000/rwew-sub002/categories/models"
	"github.com/ankitsaini000/rwew-sub002/internal/database/postgres"
)

type postgresCategoryRepository struct {
	client *postgres.Client
}

// NewPostgresCategoryRepository creates a new PostgreSQL repository for categories
func NewPostgresCategoryRepository(client *postgres.Client) CategoryRepository {
	return &postgresCategoryRepository{
		client: client,
	}
}

// List returns all categories in display order
func (r *postgresCategoryRepository) List(ctx context.Context) ([]*models.Category, error) {
	query := `
		SELECT id, name, slug, subcategories, sort_order, created_at
		FROM categories
		ORDER BY sort_order ASC, name ASC
	`

	var categories []models.Category
	err := sqlx.SelectContext(ctx, r.client.DB(), &categories, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	result := make([]*models.Category, len(categories))
	for i := range categories {
		result[i] = &categories[i]
	}

	return result, nil
}

// FindBySlug retrieves a single category by its slug
func (r *postgresCategoryRepository) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	query := `
		SELECT id, name, slug, subcategories, sort_order, created_at
		FROM categories
		WHERE slug = $1
	`

	var category models.Category
	err := sqlx.GetContext(ctx, r.client.DB(), &category, query, slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("category not found: %w", err)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	return &category, nil
}

// Create inserts a new category
func (r *postgresCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	if category.ObjectId == uuid.Nil {
		id, err := uuid.NewV4()
		if err != nil {
			return fmt.Errorf("failed to generate category id: %w", err)
		}
		category.ObjectId = id
	}
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO categories (id, name, slug, subcategories, sort_order, created_at)
		VALUES (:id, :name, :slug, :subcategories, :sort_order, :created_at)
	`

	_, err := sqlx.NamedExecContext(ctx, r.client.DB(), query, category)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return fmt.Errorf("category slug already exists: %w", err)
		}
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}
