package email

import (
	"context"
	"fmt"
	"log/slog"
)

// TagCartAbandonment tags every message in the cart abandonment sequence.
const TagCartAbandonment = "cart-abandonment"

// Service renders transactional emails and hands them to a Sender
type Service struct {
	sender Sender
}

// NewService creates a new email service delivering through sender
func NewService(sender Sender) *Service {
	if sender == nil {
		sender = LogSender{}
	}
	return &Service{sender: sender}
}

// Send sends a prepared message
func (s *Service) Send(ctx context.Context, msg *Message) error {
	if err := s.sender.Send(ctx, msg); err != nil {
		slog.Error("failed to send email", "error", err, "to", msg.To, "subject", msg.Subject)
		return err
	}

	slog.Info("email sent successfully", "to", msg.To, "subject", msg.Subject)
	return nil
}

// SendCartAbandonment renders and sends one email of the cart abandonment
// sequence. The rendered email is returned even when delivery fails so the
// caller can record what was attempted.
func (s *Service) SendCartAbandonment(ctx context.Context, to string, data *CartAbandonmentContext) (*RenderedEmail, error) {
	rendered, err := RenderCartAbandonment(data)
	if err != nil {
		return nil, err
	}

	err = s.Send(ctx, &Message{
		To:      []string{to},
		Subject: rendered.Subject,
		HTML:    rendered.HTML,
		Text:    rendered.Text,
		Tag:     TagCartAbandonment,
	})
	if err != nil {
		return rendered, fmt.Errorf("failed to send %s email: %w", rendered.Tier, err)
	}

	return rendered, nil
}
