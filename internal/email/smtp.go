package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPSender delivers email through an SMTP relay.
type SMTPSender struct {
	dialer  *gomail.Dialer
	from    string
	replyTo string
}

func NewSMTPSender(cfg Config) (*SMTPSender, error) {
	if cfg.SMTPHost == "" || cfg.From == "" {
		return nil, fmt.Errorf("%w: missing SMTP_HOST or EMAIL_FROM", ErrNotConfigured)
	}

	return &SMTPSender{
		dialer:  gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:    cfg.From,
		replyTo: cfg.ReplyTo,
	}, nil
}

// newMessage builds the MIME message: plain text first, HTML as the alternative.
func (s *SMTPSender) newMessage(msg *Message) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)

	replyTo := msg.ReplyTo
	if replyTo == "" {
		replyTo = s.replyTo
	}
	if replyTo != "" {
		m.SetHeader("Reply-To", replyTo)
	}

	switch {
	case msg.Text != "" && msg.HTML != "":
		m.SetBody("text/plain", msg.Text)
		m.AddAlternative("text/html", msg.HTML)
	case msg.HTML != "":
		m.SetBody("text/html", msg.HTML)
	default:
		m.SetBody("text/plain", msg.Text)
	}

	return m
}

func (s *SMTPSender) Send(ctx context.Context, msg *Message) error {
	if err := msg.validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.dialer.DialAndSend(s.newMessage(msg)); err != nil {
		return fmt.Errorf("failed to send email via smtp: %w", err)
	}

	return nil
}
