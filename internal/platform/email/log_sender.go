package email

import (
	"context"

	"github.com/ankitsaini000/rwew-sub002/internal/pkg/log"
)

// LogSender writes messages to the log instead of delivering them. Used in
// development where no SMTP relay is configured.
type LogSender struct{}

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (s *LogSender) Send(ctx context.Context, msg Message) error {
	log.InfoWithContext(ctx, "email (log only) to=%v subject=%q body=%q", msg.To, msg.Subject, msg.Body)
	return nil
}
