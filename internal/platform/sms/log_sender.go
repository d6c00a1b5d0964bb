package sms

import (
	"context"

	"github.com/ankitsaini000/rwew-sub002/internal/pkg/log"
)

// LogSender writes messages to the log instead of delivering them. Used in
// development where no SMS provider is configured.
type LogSender struct{}

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (s *LogSender) Send(ctx context.Context, msg Message) error {
	log.InfoWithContext(ctx, "sms (log only) to=%s text=%q", msg.To, msg.Text)
	return nil
}
