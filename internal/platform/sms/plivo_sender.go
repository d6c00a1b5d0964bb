package sms

import (
	"context"
	"fmt"

	plivo "github.com/plivo/plivo-go"
)

// PlivoSender sends SMS through the Plivo messaging API.
type PlivoSender struct {
	client *plivo.Client
	source string
}

// NewPlivoSender creates a Plivo-backed sender. All three parameters are
// required.
func NewPlivoSender(authID, authToken, sourceNumber string) (*PlivoSender, error) {
	if authID == "" || authToken == "" {
		return nil, fmt.Errorf("plivo auth ID and token are required")
	}
	if sourceNumber == "" {
		return nil, fmt.Errorf("plivo source number is required")
	}

	client, err := plivo.NewClient(authID, authToken, &plivo.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to create plivo client: %w", err)
	}

	return &PlivoSender{client: client, source: sourceNumber}, nil
}

func (s *PlivoSender) Send(ctx context.Context, msg Message) error {
	_, err := s.client.Messages.Create(plivo.MessageCreateParams{
		Src:  s.source,
		Dst:  msg.To,
		Text: msg.Text,
	})
	if err != nil {
		return fmt.Errorf("plivo send failed: %w", err)
	}
	return nil
}
