package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	notificationErrors "github.com/ankitsaini000/rwew-sub002/notifications/errors"
	"github.com/ankitsaini000/rwew-sub002/notifications/models"
)

// recordingPusher captures pushed events per user.
type recordingPusher struct {
	mu     sync.Mutex
	events map[uuid.UUID][]interface{}
}

func newRecordingPusher() *recordingPusher {
	return &recordingPusher{events: make(map[uuid.UUID][]interface{})}
}

func (p *recordingPusher) Send(userID uuid.UUID, event interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events[userID] = append(p.events[userID], event)
}

func TestCreateNotification(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())

	t.Run("persists and pushes to the recipient", func(t *testing.T) {
		mockRepo := new(MockNotificationRepository)
		pusher := newRecordingPusher()
		mockRepo.On("Create", ctx, mock.MatchedBy(func(n *models.Notification) bool {
			return n.UserID == userID && n.Type == models.TypeProfilePublished
		})).Return(nil).Once()

		svc := NewService(mockRepo, pusher)
		notification, err := svc.Create(ctx, &models.CreateNotificationRequest{
			UserID: userID,
			Type:   models.TypeProfilePublished,
			Title:  "Your profile is live",
		})

		require.NoError(t, err)
		require.Equal(t, userID, notification.UserID)
		require.Len(t, pusher.events[userID], 1)

		event, ok := pusher.events[userID][0].(models.WSEvent)
		require.True(t, ok)
		require.Equal(t, models.EventNewNotification, event.Event)
		mockRepo.AssertExpectations(t)
	})

	t.Run("defaults the type", func(t *testing.T) {
		mockRepo := new(MockNotificationRepository)
		mockRepo.On("Create", ctx, mock.MatchedBy(func(n *models.Notification) bool {
			return n.Type == models.TypeSystem
		})).Return(nil).Once()

		svc := NewService(mockRepo, nil)
		_, err := svc.Create(ctx, &models.CreateNotificationRequest{
			UserID: userID,
			Title:  "Welcome",
		})

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("carries the sender and conversation through", func(t *testing.T) {
		sender := uuid.Must(uuid.NewV4())
		conversation := uuid.Must(uuid.NewV4())

		mockRepo := new(MockNotificationRepository)
		mockRepo.On("Create", ctx, mock.MatchedBy(func(n *models.Notification) bool {
			return n.Type == models.TypeMessage &&
				n.FromUser != nil && n.FromUser.ID == sender &&
				n.ConversationID != nil && *n.ConversationID == conversation
		})).Return(nil).Once()

		svc := NewService(mockRepo, nil)
		_, err := svc.Create(ctx, &models.CreateNotificationRequest{
			UserID:         userID,
			Type:           models.TypeMessage,
			Title:          "New message",
			Message:        "Hey, are you available next week?",
			FromUser:       &models.Actor{ID: sender, FullName: "Acme Brand"},
			ConversationID: &conversation,
		})

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("requires a recipient and title", func(t *testing.T) {
		svc := NewService(new(MockNotificationRepository), nil)

		_, err := svc.Create(ctx, &models.CreateNotificationRequest{Title: "no recipient"})
		require.ErrorIs(t, err, notificationErrors.ErrValidationFailed)

		_, err = svc.Create(ctx, &models.CreateNotificationRequest{UserID: userID})
		require.ErrorIs(t, err, notificationErrors.ErrValidationFailed)
	})

	t.Run("does not push when the write fails", func(t *testing.T) {
		mockRepo := new(MockNotificationRepository)
		pusher := newRecordingPusher()
		mockRepo.On("Create", ctx, mock.Anything).Return(errors.New("db down")).Once()

		svc := NewService(mockRepo, pusher)
		_, err := svc.Create(ctx, &models.CreateNotificationRequest{
			UserID: userID,
			Title:  "Hello",
		})

		require.ErrorIs(t, err, notificationErrors.ErrDatabaseOperation)
		require.Empty(t, pusher.events[userID])
	})
}

func TestListNotifications(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())

	mockRepo := new(MockNotificationRepository)
	mockRepo.On("FindByUser", ctx, userID, 20, 0).Return([]*models.Notification{
		{UserID: userID, Title: "one", IsRead: false},
		{UserID: userID, Title: "two", IsRead: true},
	}, nil).Once()
	mockRepo.On("CountUnread", ctx, userID).Return(int64(1), nil).Once()

	svc := NewService(mockRepo, nil)
	resp, err := svc.List(ctx, userID, 1, 20)

	require.NoError(t, err)
	require.Len(t, resp.Notifications, 2)
	require.Equal(t, int64(1), resp.UnreadCount)
	mockRepo.AssertExpectations(t)
}

// memoryRepo keeps notifications in a slice so read flips stay observable
// across calls.
type memoryRepo struct {
	notifications []*models.Notification
}

func (r *memoryRepo) Create(_ context.Context, n *models.Notification) error {
	r.notifications = append(r.notifications, n)
	return nil
}

func (r *memoryRepo) FindByUser(_ context.Context, userID uuid.UUID, limit, offset int) ([]*models.Notification, error) {
	var out []*models.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *memoryRepo) CountUnread(_ context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, n := range r.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *memoryRepo) MarkRead(_ context.Context, userID, notificationID uuid.UUID) error {
	for _, n := range r.notifications {
		if n.UserID == userID && n.ObjectId == notificationID {
			n.IsRead = true
			return nil
		}
	}
	return errors.New("notification not found")
}

func (r *memoryRepo) MarkAllRead(_ context.Context, userID uuid.UUID) error {
	for _, n := range r.notifications {
		if n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}

func (r *memoryRepo) Delete(_ context.Context, userID, notificationID uuid.UUID) error {
	for i, n := range r.notifications {
		if n.UserID == userID && n.ObjectId == notificationID {
			r.notifications = append(r.notifications[:i], r.notifications[i+1:]...)
			return nil
		}
	}
	return errors.New("notification not found")
}

func TestMarkAllRead(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())
	otherID := uuid.Must(uuid.NewV4())

	repo := &memoryRepo{}
	svc := NewService(repo, nil)

	for _, title := range []string{"one", "two", "three"} {
		_, err := svc.Create(ctx, &models.CreateNotificationRequest{UserID: userID, Title: title})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, &models.CreateNotificationRequest{UserID: otherID, Title: "elsewhere"})
	require.NoError(t, err)

	require.NoError(t, svc.MarkAllRead(ctx, userID))

	resp, err := svc.List(ctx, userID, 1, 20)
	require.NoError(t, err)
	require.Equal(t, int64(0), resp.UnreadCount)
	for _, n := range resp.Notifications {
		require.True(t, n.IsRead)
	}

	// other users' feeds are untouched
	otherResp, err := svc.List(ctx, otherID, 1, 20)
	require.NoError(t, err)
	require.Equal(t, int64(1), otherResp.UnreadCount)
}

func TestMarkRead(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())
	notificationID := uuid.Must(uuid.NewV4())

	t.Run("marks a single notification", func(t *testing.T) {
		mockRepo := new(MockNotificationRepository)
		mockRepo.On("MarkRead", ctx, userID, notificationID).Return(nil).Once()

		svc := NewService(mockRepo, nil)
		require.NoError(t, svc.MarkRead(ctx, userID, notificationID))
		mockRepo.AssertExpectations(t)
	})

	t.Run("maps missing rows to not found", func(t *testing.T) {
		mockRepo := new(MockNotificationRepository)
		mockRepo.On("MarkRead", ctx, userID, notificationID).Return(errors.New("notification not found")).Once()

		svc := NewService(mockRepo, nil)
		err := svc.MarkRead(ctx, userID, notificationID)

		require.ErrorIs(t, err, notificationErrors.ErrNotificationNotFound)
	})
}

func TestLifecycleNotifier(t *testing.T) {
	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())

	mockRepo := new(MockNotificationRepository)
	mockRepo.On("Create", ctx, mock.MatchedBy(func(n *models.Notification) bool {
		return n.Type == models.TypeProfilePublished && n.URL == "/creator/jane_doe"
	})).Return(nil).Once()

	notifier := NewLifecycleNotifier(NewService(mockRepo, nil))
	notifier.ProfilePublished(ctx, userID, "jane_doe")

	mockRepo.AssertExpectations(t)
}
