package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

var (
	// ErrNotConfigured is returned when a provider is selected without its credentials.
	ErrNotConfigured = errors.New("email service not configured")
	// ErrNoRecipients is returned for messages without a To address.
	ErrNoRecipients = errors.New("email has no recipients")
)

// Provider names accepted in Config.Provider.
const (
	ProviderPostmark = "postmark"
	ProviderSMTP     = "smtp"
	ProviderLog      = "log"
)

// Config selects and configures the delivery provider.
type Config struct {
	Provider string `env:"EMAIL_PROVIDER" envDefault:"log"`
	From     string `env:"EMAIL_FROM" envDefault:"BeDaie <noreply@bedaie.com>"`
	ReplyTo  string `env:"EMAIL_REPLY_TO"`

	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
}

// Message represents an email message
type Message struct {
	To      []string
	Subject string
	HTML    string
	Text    string
	ReplyTo string
	Tag     string
}

func (m *Message) validate() error {
	if len(m.To) == 0 {
		return ErrNoRecipients
	}
	return nil
}

// Sender delivers a message through a provider.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

// NewSender builds the sender selected by cfg.Provider.
func NewSender(cfg Config) (Sender, error) {
	switch strings.ToLower(cfg.Provider) {
	case ProviderPostmark:
		return NewPostmarkSender(cfg)
	case ProviderSMTP:
		return NewSMTPSender(cfg)
	case ProviderLog, "":
		return LogSender{}, nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
	}
}

// LogSender writes messages to the log instead of delivering them.
type LogSender struct{}

func (LogSender) Send(_ context.Context, msg *Message) error {
	if err := msg.validate(); err != nil {
		return err
	}
	slog.Info("email delivery skipped (log provider)",
		"to", msg.To,
		"subject", msg.Subject,
		"tag", msg.Tag,
		"html_bytes", len(msg.HTML),
	)
	slog.Debug("email text body", "to", msg.To, "body", msg.Text)
	return nil
}
