package sms

import "context"

// Message represents a text message to be sent.
type Message struct {
	To   string
	Text string
}

// Sender abstracts SMS delivery for DI and testing.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
