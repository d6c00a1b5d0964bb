// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/ankitsaini000/rwew-sub002/notifications/models"
)

// NotificationRepository defines the interface for notification-specific
// database operations.
type NotificationRepository interface {
	// Create inserts a new notification
	Create(ctx context.Context, notification *models.Notification) error

	// FindByUser retrieves a user's notifications, newest first
	FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.Notification, error)

	// CountUnread returns the number of unread notifications for a user
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkRead marks a single notification as read; the user scoping prevents
	// cross-user updates
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error

	// MarkAllRead marks every unread notification for the user as read
	MarkAllRead(ctx context.Context, userID uuid.UUID) error

	// Delete removes a notification owned by the user
	Delete(ctx context.Context, userID, notificationID uuid.UUID) error
}
