package email

import (
	"context"
	"fmt"
	"html"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"

	"github.com/roamstone/esim-portal/internal/core/ports"
)

// EmailConfig holds email service configuration
type EmailConfig struct {
	SendGridAPIKey string
	FromEmail      string
	FromName       string
	ContactInbox   string
	CompanyName    string
}

// EmailService implements the EmailService interface
type EmailService struct {
	config *EmailConfig
	logger *logrus.Logger
	client *sendgrid.Client
}

// NewEmailService creates a new email service instance
func NewEmailService(config *EmailConfig, logger *logrus.Logger) (ports.EmailService, error) {
	if config.ContactInbox == "" {
		return nil, fmt.Errorf("contact inbox address is required")
	}
	return &EmailService{
		config: config,
		logger: logger,
		client: sendgrid.NewSendClient(config.SendGridAPIKey),
	}, nil
}

// SendContactMessage forwards a contact-form submission to the support inbox.
func (s *EmailService) SendContactMessage(ctx context.Context, name, replyTo, message string) error {
	from := mail.NewEmail(s.config.FromName, s.config.FromEmail)
	to := mail.NewEmail(s.config.CompanyName, s.config.ContactInbox)
	subject := fmt.Sprintf("Contact form: %s", name)

	plain := fmt.Sprintf("From: %s <%s>\n\n%s", name, replyTo, message)
	htmlBody := fmt.Sprintf("<p><strong>From:</strong> %s &lt;%s&gt;</p><p>%s</p>",
		html.EscapeString(name), html.EscapeString(replyTo), html.EscapeString(message))

	m := mail.NewSingleEmail(from, subject, to, plain, htmlBody)
	m.ReplyTo = mail.NewEmail(name, replyTo)

	resp, err := s.client.SendWithContext(ctx, m)
	if err != nil {
		return fmt.Errorf("failed to send contact message: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"reply_to": replyTo}).Info("contact message relayed")
	}
	return nil
}
