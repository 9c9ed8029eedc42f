package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wneessen/go-mail"

	"museum/internal/platform/config"
)

// SMTPTransport delivers messages through an SMTP relay.
type SMTPTransport struct {
	client *mail.Client
	sender string
}

// NewSMTPTransport builds an SMTP client for cfg. Credentials are optional;
// relays that accept unauthenticated mail work with an empty Username.
func NewSMTPTransport(cfg config.MailConfig) (*SMTPTransport, error) {
	if cfg.Sender == "" {
		return nil, fmt.Errorf("SENDER_EMAIL is required when SMTP_HOST is set")
	}
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}
	return &SMTPTransport{client: client, sender: cfg.Sender}, nil
}

func (t *SMTPTransport) Send(ctx context.Context, m Message) error {
	msg := mail.NewMsg()
	if err := msg.From(t.sender); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(m.To); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(m.Subject)
	msg.SetBodyString(mail.TypeTextPlain, m.Text)
	msg.AddAlternativeString(mail.TypeTextHTML, m.HTML)

	if err := t.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp deliver: %w", err)
	}
	return nil
}

// LogTransport records messages instead of sending them. Used when no SMTP
// relay is configured so local development still exercises every flow.
type LogTransport struct {
	logger *slog.Logger
}

func NewLogTransport(logger *slog.Logger) *LogTransport {
	return &LogTransport{logger: logger}
}

func (t *LogTransport) Send(ctx context.Context, m Message) error {
	t.logger.InfoContext(ctx, "email not delivered: smtp not configured",
		"to", m.To,
		"subject", m.Subject,
	)
	return nil
}

// NewTransport picks SMTP when a host is configured and logging otherwise.
func NewTransport(cfg config.MailConfig, logger *slog.Logger) (Transport, error) {
	if cfg.Host == "" {
		return NewLogTransport(logger), nil
	}
	return NewSMTPTransport(cfg)
}
