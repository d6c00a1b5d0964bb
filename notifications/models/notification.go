package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	uuid "github.com/gofrs/uuid"
)

// Notification types. The marketplace types come from brand/creator activity;
// the profile ones are emitted by the publish lifecycle.
const (
	TypeMessage      = "message"
	TypeLike         = "like"
	TypeOrder        = "order"
	TypePromotion    = "promotion"
	TypeQuoteRequest = "quote_request"

	TypeProfilePublished     = "profile_published"
	TypeProfileStatusChanged = "profile_status_changed"
	TypeSystem               = "system"
)

// Actor identifies the user a notification originates from, when there is one
type Actor struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"fullName"`
	Avatar   string    `json:"avatar,omitempty"`
}

func (a Actor) Value() (driver.Value, error) { return json.Marshal(a) }

func (a *Actor) Scan(src interface{}) error {
	switch data := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(data, a)
	case string:
		return json.Unmarshal([]byte(data), a)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", src)
	}
}

// Notification is a single in-app notification addressed to one user
type Notification struct {
	ObjectId       uuid.UUID  `json:"objectId" db:"id"`
	UserID         uuid.UUID  `json:"userId" db:"user_id"`
	Type           string     `json:"type" db:"type"`
	Title          string     `json:"title" db:"title"`
	Message        string     `json:"message" db:"message"`
	URL            string     `json:"url" db:"url"`
	FromUser       *Actor     `json:"fromUser,omitempty" db:"from_user"`
	ConversationID *uuid.UUID `json:"conversationId,omitempty" db:"conversation_id"`
	IsRead         bool       `json:"isRead" db:"is_read"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at"`
}

// CreateNotificationRequest is used by the internal create endpoint
type CreateNotificationRequest struct {
	UserID         uuid.UUID  `json:"userId"`
	Type           string     `json:"type"`
	Title          string     `json:"title"`
	Message        string     `json:"message"`
	URL            string     `json:"url,omitempty"`
	FromUser       *Actor     `json:"fromUser,omitempty"`
	ConversationID *uuid.UUID `json:"conversationId,omitempty"`
}

// NotificationsResponse is the paginated listing payload. UnreadCount is
// always counted from is_read, never read from a stored counter.
type NotificationsResponse struct {
	Notifications []*Notification `json:"notifications"`
	UnreadCount   int64           `json:"unreadCount"`
}

// WSEvent is the envelope pushed over the notification channel
type WSEvent struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// EventNewNotification is pushed whenever a notification is created for a
// connected user.
const EventNewNotification = "newNotification"
