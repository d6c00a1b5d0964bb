// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package services

import (
	"context"
	"fmt"
	"strings"

	uuid "github.com/gofrs/uuid"

	notificationErrors "github.com/ankitsaini000/rwew-sub002/notifications/errors"
	"github.com/ankitsaini000/rwew-sub002/notifications/models"
	"github.com/ankitsaini000/rwew-sub002/notifications/repository"
)

type service struct {
	repo   repository.NotificationRepository
	pusher Pusher
}

var _ NotificationService = (*service)(nil)

// NewService constructs a notification service. The pusher may be nil; the
// feed then works without realtime delivery.
func NewService(repo repository.NotificationRepository, pusher Pusher) NotificationService {
	return &service{repo: repo, pusher: pusher}
}

// Create persists the notification and pushes it to any live sockets of the
// recipient. Push failures never fail the write.
func (s *service) Create(ctx context.Context, req *models.CreateNotificationRequest) (*models.Notification, error) {
	if req == nil || req.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: recipient is required", notificationErrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", notificationErrors.ErrValidationFailed)
	}
	if req.Type == "" {
		req.Type = models.TypeSystem
	}

	notification := &models.Notification{
		UserID:         req.UserID,
		Type:           req.Type,
		Title:          req.Title,
		Message:        req.Message,
		URL:            req.URL,
		FromUser:       req.FromUser,
		ConversationID: req.ConversationID,
	}

	if err := s.repo.Create(ctx, notification); err != nil {
		return nil, fmt.Errorf("%w: %v", notificationErrors.ErrDatabaseOperation, err)
	}

	if s.pusher != nil {
		s.pusher.Send(req.UserID, models.WSEvent{
			Event:   models.EventNewNotification,
			Payload: notification,
		})
	}

	return notification, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID, page, limit int) (*models.NotificationsResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	notifications, err := s.repo.FindByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", notificationErrors.ErrDatabaseOperation, err)
	}
	if notifications == nil {
		notifications = []*models.Notification{}
	}

	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", notificationErrors.ErrDatabaseOperation, err)
	}

	return &models.NotificationsResponse{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}

func (s *service) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := s.repo.MarkRead(ctx, userID, notificationID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return notificationErrors.ErrNotificationNotFound
		}
		return fmt.Errorf("%w: %v", notificationErrors.ErrDatabaseOperation, err)
	}
	return nil
}

func (s *service) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.MarkAllRead(ctx, userID); err != nil {
		return fmt.Errorf("%w: %v", notificationErrors.ErrDatabaseOperation, err)
	}
	return nil
}

func (s *service) Delete(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, notificationID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return notificationErrors.ErrNotificationNotFound
		}
		return fmt.Errorf("%w: %v", notificationErrors.ErrDatabaseOperation, err)
	}
	return nil
}
