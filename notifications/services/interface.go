package services

import (
	"context"

	uuid "github.com/gofrs/uuid"

	"github.com/ankitsaini000/rwew-sub002/notifications/models"
)

// NotificationService owns the in-app notification feed and the realtime
// push channel.
type NotificationService interface {
	Create(ctx context.Context, req *models.CreateNotificationRequest) (*models.Notification, error)
	List(ctx context.Context, userID uuid.UUID, page, limit int) (*models.NotificationsResponse, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	Delete(ctx context.Context, userID, notificationID uuid.UUID) error
}

// Pusher is the realtime fan-out the service publishes to. The websocket hub
// implements it.
type Pusher interface {
	Send(userID uuid.UUID, event interface{})
}
