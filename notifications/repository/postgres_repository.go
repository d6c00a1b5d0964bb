// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"fmt"
	"time"

	uuid "github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ankitsaini000/rwew-sub002/internal/database/postgres"
	"github.com/ankitsaini000/rwew-sub002/notifications/models"
)

// postgresNotificationRepository implements NotificationRepository using raw SQL queries
type postgresNotificationRepository struct {
	client *postgres.Client
}

// NewPostgresNotificationRepository creates a new PostgreSQL repository for notifications
func NewPostgresNotificationRepository(client *postgres.Client) NotificationRepository {
	return &postgresNotificationRepository{
		client: client,
	}
}

func (r *postgresNotificationRepository) getExecutor(ctx context.Context) sqlx.ExtContext {
	if txVal := ctx.Value("tx"); txVal != nil {
		if tx, ok := txVal.(*sqlx.Tx); ok {
			return tx
		}
	}
	return r.client.DB()
}

// Create inserts a new notification
func (r *postgresNotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	if notification.ObjectId == uuid.Nil {
		id, err := uuid.NewV4()
		if err != nil {
			return fmt.Errorf("failed to generate notification id: %w", err)
		}
		notification.ObjectId = id
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}
	notification.UpdatedAt = notification.CreatedAt

	query := `
		INSERT INTO notifications (
			id, user_id, type, title, message, url, from_user, conversation_id, is_read, created_at, updated_at
		) VALUES (
			:id, :user_id, :type, :title, :message, :url, :from_user, :conversation_id, :is_read, :created_at, :updated_at
		)`

	_, err := sqlx.NamedExecContext(ctx, r.getExecutor(ctx), query, notification)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

// FindByUser retrieves a user's notifications, newest first
func (r *postgresNotificationRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.Notification, error) {
	query := `
		SELECT id, user_id, type, title, message, url, from_user, conversation_id, is_read, created_at, updated_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var notifications []models.Notification
	err := sqlx.SelectContext(ctx, r.getExecutor(ctx), &notifications, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to find notifications: %w", err)
	}

	result := make([]*models.Notification, len(notifications))
	for i := range notifications {
		result[i] = &notifications[i]
	}

	return result, nil
}

// CountUnread returns the number of unread notifications for a user
func (r *postgresNotificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE`

	var count int64
	err := sqlx.GetContext(ctx, r.getExecutor(ctx), &count, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

// MarkRead marks a single notification as read
func (r *postgresNotificationRepository) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	query := `
		UPDATE notifications
		SET is_read = TRUE, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`

	result, err := r.getExecutor(ctx).ExecContext(ctx, query, notificationID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("notification not found")
	}

	return nil
}

// MarkAllRead marks every unread notification for the user as read
func (r *postgresNotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	query := `UPDATE notifications SET is_read = TRUE, updated_at = NOW() WHERE user_id = $1 AND is_read = FALSE`

	_, err := r.getExecutor(ctx).ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return nil
}

// Delete removes a notification owned by the user
func (r *postgresNotificationRepository) Delete(ctx context.Context, userID, notificationID uuid.UUID) error {
	query := `DELETE FROM notifications WHERE id = $1 AND user_id = $2`

	result, err := r.getExecutor(ctx).ExecContext(ctx, query, notificationID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("notification not found")
	}

	return nil
}
