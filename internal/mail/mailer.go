package mail

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nookofwelshpool/nook-server/internal/config"
	"github.com/resend/resend-go/v2"
)

// OrderEmailItem is one order line rendered into confirmation emails.
type OrderEmailItem struct {
	CategoryName string
	Quantity     int
	TotalPrice   float64
}

// OrderEmailData carries everything the order templates need.
type OrderEmailData struct {
	OrderNumber     string
	TotalAmount     float64
	DeliveryType    string
	DeliveryAddress string
	RequestedDate   string
	RequestedTime   string
	EstimatedTime   string
	PhoneNumber     string
	CustomerEmail   string
	Items           []OrderEmailItem
}

// Mailer sends transactional email. Failures are always non-fatal to the
// operation that triggered the send.
type Mailer interface {
	SendVerificationEmail(to, token string) error
	SendPasswordResetEmail(to, token string) error
	SendOrderConfirmationEmail(to string, data OrderEmailData) error
	SendBusinessNotificationEmail(to string, data OrderEmailData) error
}

// ResendMailer sends through the Resend API.
type ResendMailer struct {
	client    *resend.Client
	from      string
	emailName string
	baseURL   string
}

func NewResendMailer(cfg *config.Config) *ResendMailer {
	return &ResendMailer{
		client:    resend.NewClient(cfg.ResendAPIKey),
		from:      fmt.Sprintf("%s <%s>", cfg.EmailName, cfg.EmailFrom),
		emailName: cfg.EmailName,
		baseURL:   cfg.BaseURL,
	}
}

func (m *ResendMailer) send(to, subject, html, text string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	_, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
		Text:    text,
	})
	if err != nil {
		return fmt.Errorf("resend send: %w", err)
	}
	return nil
}

func (m *ResendMailer) SendVerificationEmail(to, token string) error {
	url := fmt.Sprintf("%s/api/auth/verify-email?token=%s", m.baseURL, token)
	subject := fmt.Sprintf("Verify your email - %s", m.emailName)
	return m.send(to, subject, verificationHTML(m.emailName, url), verificationText(m.emailName, url))
}

func (m *ResendMailer) SendPasswordResetEmail(to, token string) error {
	url := fmt.Sprintf("%s/api/auth/reset-password?token=%s", m.baseURL, token)
	subject := fmt.Sprintf("Reset your password - %s", m.emailName)
	return m.send(to, subject, passwordResetHTML(m.emailName, url), passwordResetText(m.emailName, url))
}

func (m *ResendMailer) SendOrderConfirmationEmail(to string, data OrderEmailData) error {
	subject := fmt.Sprintf("Order confirmation %s - %s", data.OrderNumber, m.emailName)
	return m.send(to, subject, orderConfirmationHTML(m.emailName, data), orderConfirmationText(m.emailName, data))
}

func (m *ResendMailer) SendBusinessNotificationEmail(to string, data OrderEmailData) error {
	subject := fmt.Sprintf("New order %s", data.OrderNumber)
	return m.send(to, subject, businessNotificationHTML(m.emailName, data), businessNotificationText(data))
}

// LogOnly is used when no Resend API key is configured: every send is
// recorded in the log and reported as failed so callers fall back to
// their non-fatal path.
type LogOnly struct{}

func (LogOnly) SendVerificationEmail(to, token string) error {
	slog.Warn("mail disabled, skipping verification email", "to", to)
	return fmt.Errorf("mail disabled")
}

func (LogOnly) SendPasswordResetEmail(to, token string) error {
	slog.Warn("mail disabled, skipping password reset email", "to", to)
	return fmt.Errorf("mail disabled")
}

func (LogOnly) SendOrderConfirmationEmail(to string, data OrderEmailData) error {
	slog.Warn("mail disabled, skipping order confirmation", "to", to, "order", data.OrderNumber)
	return fmt.Errorf("mail disabled")
}

func (LogOnly) SendBusinessNotificationEmail(to string, data OrderEmailData) error {
	slog.Warn("mail disabled, skipping business notification", "to", to, "order", data.OrderNumber)
	return fmt.Errorf("mail disabled")
}

// New returns the Resend mailer when configured, LogOnly otherwise.
func New(cfg *config.Config) Mailer {
	if cfg.ResendAPIKey == "" {
		return LogOnly{}
	}
	return NewResendMailer(cfg)
}
