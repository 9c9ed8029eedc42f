// Package mailer renders the museum's transactional emails and hands them to
// a Transport (SMTP in production, a logging transport in development).
package mailer

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"museum/pkg/email"
)

//go:embed templates/*.html
var templateFS embed.FS

// Message is a rendered email ready for delivery.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Transport delivers rendered messages.
type Transport interface {
	Send(ctx context.Context, msg Message) error
}

// TrainingConfirmation is the data shown in the training registration email.
type TrainingConfirmation struct {
	RegistrationID   int64
	Name             string
	Email            string
	TrainingTrack    string
	TrainingMode     string
	RegistrationDate time.Time
}

// Mailer renders templates and delivers them through a Transport.
type Mailer struct {
	transport Transport
	templates *template.Template
	otpTTL    time.Duration
	logger    *slog.Logger
}

type Option func(*Mailer)

func WithLogger(logger *slog.Logger) Option {
	return func(m *Mailer) {
		m.logger = logger
	}
}

// WithOTPTTL sets the validity window quoted in OTP emails.
func WithOTPTTL(ttl time.Duration) Option {
	return func(m *Mailer) {
		m.otpTTL = ttl
	}
}

// New parses the embedded templates.
func New(transport Transport, opts ...Option) (*Mailer, error) {
	if transport == nil {
		return nil, fmt.Errorf("mail transport is required")
	}
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse email templates: %w", err)
	}
	m := &Mailer{
		transport: transport,
		templates: tmpl,
		otpTTL:    24 * time.Hour,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

func (m *Mailer) SendWelcome(ctx context.Context, to, name string) error {
	data := map[string]any{"Name": email.DisplayName(name, to), "Email": to}
	return m.send(ctx, to, "Welcome to Isi Nri Museum", "welcome", data,
		fmt.Sprintf("Welcome to Isi Nri Museum. Your account has been created with the email %s.", to))
}

func (m *Mailer) SendVerifyOTP(ctx context.Context, to, otp string) error {
	data := map[string]any{"Email": to, "OTP": otp, "ValidFor": humanDuration(m.otpTTL)}
	return m.send(ctx, to, "Account Verification OTP", "verify_otp", data,
		fmt.Sprintf("Your OTP is %s. Verify your account using this OTP.", otp))
}

func (m *Mailer) SendResetOTP(ctx context.Context, to, otp string) error {
	data := map[string]any{"Email": to, "OTP": otp, "ValidFor": humanDuration(m.otpTTL)}
	return m.send(ctx, to, "Isi Nri Museum Password Reset OTP", "reset_otp", data,
		fmt.Sprintf("Your OTP for resetting your password is %s.", otp))
}

func (m *Mailer) SendTrainingConfirmation(ctx context.Context, c TrainingConfirmation) error {
	data := map[string]any{
		"RegistrationID":   c.RegistrationID,
		"Name":             email.DisplayName(c.Name, c.Email),
		"Email":            c.Email,
		"TrainingTrack":    c.TrainingTrack,
		"TrainingMode":     c.TrainingMode,
		"RegistrationDate": c.RegistrationDate.Format("2 January 2006"),
	}
	text := fmt.Sprintf("Dear %s, Thank you for registering for the Kachi James Initiative Training Program. Your registration for %s has been confirmed.",
		data["Name"], c.TrainingTrack)
	return m.send(ctx, c.Email, "Registration Confirmed - Kachi James Initiative Training Program",
		"training_confirmation", data, text)
}

func (m *Mailer) send(ctx context.Context, to, subject, tmpl string, data any, text string) error {
	var buf bytes.Buffer
	if err := m.templates.ExecuteTemplate(&buf, tmpl, data); err != nil {
		return fmt.Errorf("render %s email: %w", tmpl, err)
	}
	msg := Message{To: to, Subject: subject, HTML: buf.String(), Text: text}
	if err := m.transport.Send(ctx, msg); err != nil {
		return fmt.Errorf("send %s email: %w", tmpl, err)
	}
	m.logger.DebugContext(ctx, "email sent", "template", tmpl)
	return nil
}

func humanDuration(d time.Duration) string {
	if d >= time.Hour && d%time.Hour == 0 {
		hours := int(d / time.Hour)
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	}
	return fmt.Sprintf("%d minutes", int(d/time.Minute))
}
