package services

import (
	"context"
	"fmt"

	uuid "github.com/gofrs/uuid"

	"github.com/ankitsaini000/rwew-sub002/internal/pkg/log"
	"github.com/ankitsaini000/rwew-sub002/notifications/models"
)

// LifecycleNotifier translates creator lifecycle events into notifications.
// It satisfies the creator module's Notifier dependency.
type LifecycleNotifier struct {
	notifications NotificationService
}

func NewLifecycleNotifier(notifications NotificationService) *LifecycleNotifier {
	return &LifecycleNotifier{notifications: notifications}
}

// ProfilePublished congratulates the creator when their profile goes live.
func (n *LifecycleNotifier) ProfilePublished(ctx context.Context, userID uuid.UUID, username string) {
	_, err := n.notifications.Create(ctx, &models.CreateNotificationRequest{
		UserID:  userID,
		Type:    models.TypeProfilePublished,
		Title:   "Your profile is live",
		Message: "Your creator profile is now visible to brands.",
		URL:     "/creator/" + username,
	})
	if err != nil {
		log.WarnWithContext(ctx, "publish notification for %s failed: %v", userID, err)
	}
}

// ProfileStatusChanged informs the creator about moderation actions.
func (n *LifecycleNotifier) ProfileStatusChanged(ctx context.Context, userID uuid.UUID, status string) {
	_, err := n.notifications.Create(ctx, &models.CreateNotificationRequest{
		UserID:  userID,
		Type:    models.TypeProfileStatusChanged,
		Title:   "Profile status updated",
		Message: fmt.Sprintf("Your profile status changed to %s.", status),
	})
	if err != nil {
		log.WarnWithContext(ctx, "status notification for %s failed: %v", userID, err)
	}
}
