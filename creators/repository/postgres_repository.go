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

	"github.com/ankitsaini000/rwew-sub002/creators/models"
	"github.com/ankitsaini000/rwew-sub002/internal/database/postgres"
)

// postgresCreatorRepository implements CreatorRepository using raw SQL queries
type postgresCreatorRepository struct {
	client *postgres.Client
}

// NewPostgresCreatorRepository creates a new PostgreSQL repository for creators
func NewPostgresCreatorRepository(client *postgres.Client) CreatorRepository {
	return &postgresCreatorRepository{
		client: client,
	}
}

// getExecutor returns either the transaction from context or the DB connection
func (r *postgresCreatorRepository) getExecutor(ctx context.Context) sqlx.ExtContext {
	if txVal := ctx.Value("tx"); txVal != nil {
		if tx, ok := txVal.(*sqlx.Tx); ok {
			return tx
		}
	}
	return r.client.DB()
}

const creatorColumns = `
	user_id, username, status, onboarding_step,
	personal_info, professional_info, description_faq,
	pricing, gallery_portfolio, social_media,
	completion_status, profile_url, created_at, updated_at`

// Create inserts a new creator profile
func (r *postgresCreatorRepository) Create(ctx context.Context, creator *models.Creator) error {
	if creator.CreatedAt.IsZero() {
		creator.CreatedAt = time.Now()
	}
	if creator.UpdatedAt.IsZero() {
		creator.UpdatedAt = time.Now()
	}

	query := `
		INSERT INTO creators (
			user_id, username, status, onboarding_step,
			personal_info, professional_info, description_faq,
			pricing, gallery_portfolio, social_media,
			completion_status, profile_url, created_at, updated_at
		) VALUES (
			:user_id, :username, :status, :onboarding_step,
			:personal_info, :professional_info, :description_faq,
			:pricing, :gallery_portfolio, :social_media,
			:completion_status, :profile_url, :created_at, :updated_at
		)`

	_, err := sqlx.NamedExecContext(ctx, r.getExecutor(ctx), query, creator)
	if err != nil {
		if strings.Contains(err.Error(), "idx_creators_username") || strings.Contains(err.Error(), "duplicate key") {
			return fmt.Errorf("username already exists: %w", err)
		}
		return fmt.Errorf("failed to create creator: %w", err)
	}

	return nil
}

// FindByUserID retrieves a creator by owning user ID
func (r *postgresCreatorRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Creator, error) {
	query := `SELECT ` + creatorColumns + ` FROM creators WHERE user_id = $1`

	var creator models.Creator
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &creator, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("creator not found: %w", err)
		}
		return nil, fmt.Errorf("failed to find creator: %w", err)
	}

	return &creator, nil
}

// FindByUsername retrieves a creator by username
func (r *postgresCreatorRepository) FindByUsername(ctx context.Context, username string) (*models.Creator, error) {
	query := `SELECT ` + creatorColumns + ` FROM creators WHERE LOWER(username) = LOWER($1)`

	var creator models.Creator
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &creator, query, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("creator not found: %w", err)
		}
		return nil, fmt.Errorf("failed to find creator: %w", err)
	}

	return &creator, nil
}

// UsernameExists reports whether a username is already claimed
func (r *postgresCreatorRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM creators WHERE LOWER(username) = LOWER($1))`

	var exists bool
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &exists, query, username)
	if err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}

	return exists, nil
}

// Update persists the full creator document
func (r *postgresCreatorRepository) Update(ctx context.Context, creator *models.Creator) error {
	creator.UpdatedAt = time.Now()

	query := `
		UPDATE creators SET
			username = :username,
			status = :status,
			onboarding_step = :onboarding_step,
			personal_info = :personal_info,
			professional_info = :professional_info,
			description_faq = :description_faq,
			pricing = :pricing,
			gallery_portfolio = :gallery_portfolio,
			social_media = :social_media,
			completion_status = :completion_status,
			profile_url = :profile_url,
			updated_at = :updated_at
		WHERE user_id = :user_id
	`

	result, err := sqlx.NamedExecContext(ctx, r.getExecutor(ctx), query, creator)
	if err != nil {
		if strings.Contains(err.Error(), "idx_creators_username") || strings.Contains(err.Error(), "duplicate key") {
			return fmt.Errorf("username already exists: %w", err)
		}
		return fmt.Errorf("failed to update creator: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("creator not found")
	}

	return nil
}

// UpdateStatus transitions the profile lifecycle status
func (r *postgresCreatorRepository) UpdateStatus(ctx context.Context, userID uuid.UUID, status string) error {
	query := `
		UPDATE creators
		SET status = $1, updated_at = NOW()
		WHERE user_id = $2
	`

	result, err := r.getExecutor(ctx).ExecContext(ctx, query, status, userID)
	if err != nil {
		return fmt.Errorf("failed to update creator status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("creator not found")
	}

	return nil
}

// Find retrieves creators matching the filter criteria with pagination
func (r *postgresCreatorRepository) Find(ctx context.Context, filter CreatorFilter, limit, offset int) ([]*models.Creator, error) {
	query, args := r.buildFindQuery(filter, limit, offset)

	var creators []models.Creator
	err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &creators, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find creators: %w", err)
	}

	result := make([]*models.Creator, len(creators))
	for i := range creators {
		result[i] = &creators[i]
	}

	return result, nil
}

// Count returns the number of creators matching the filter criteria
func (r *postgresCreatorRepository) Count(ctx context.Context, filter CreatorFilter) (int64, error) {
	query, args := r.buildCountQuery(filter)

	var count int64
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &count, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to count creators: %w", err)
	}

	return count, nil
}

// Delete removes a creator profile by user ID
func (r *postgresCreatorRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM creators WHERE user_id = $1`

	result, err := r.getExecutor(ctx).ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to delete creator: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("creator not found")
	}

	return nil
}

// buildFindQuery constructs a SQL query with WHERE clause based on filter criteria
func (r *postgresCreatorRepository) buildFindQuery(filter CreatorFilter, limit, offset int) (string, []interface{}) {
	query := `SELECT ` + creatorColumns + ` FROM creators WHERE 1=1`

	var args []interface{}
	argIndex := 1

	if filter.Status != nil && *filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, *filter.Status)
		argIndex++
	}

	if filter.SearchText != nil && *filter.SearchText != "" {
		// Search across username and the display name stored in personal_info
		query += fmt.Sprintf(` AND (
			username ILIKE '%%' || $%d || '%%' OR
			personal_info->>'firstName' ILIKE '%%' || $%d || '%%' OR
			personal_info->>'lastName' ILIKE '%%' || $%d || '%%'
		)`, argIndex, argIndex, argIndex)
		args = append(args, *filter.SearchText)
		argIndex++
	}

	query += " ORDER BY created_at DESC"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, offset)

	return query, args
}

// buildCountQuery constructs a COUNT query with WHERE clause based on filter criteria
func (r *postgresCreatorRepository) buildCountQuery(filter CreatorFilter) (string, []interface{}) {
	query := "SELECT COUNT(*) FROM creators WHERE 1=1"

	var args []interface{}
	argIndex := 1

	if filter.Status != nil && *filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, *filter.Status)
		argIndex++
	}

	if filter.SearchText != nil && *filter.SearchText != "" {
		query += fmt.Sprintf(` AND (
			username ILIKE '%%' || $%d || '%%' OR
			personal_info->>'firstName' ILIKE '%%' || $%d || '%%' OR
			personal_info->>'lastName' ILIKE '%%' || $%d || '%%'
		)`, argIndex, argIndex, argIndex)
		args = append(args, *filter.SearchText)
		argIndex++
	}

	return query, args
}
