package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/roamstone/esim-portal/internal/core/ports"
)

// ContactService relays contact-form submissions to the support inbox.
type ContactService struct {
	email  ports.EmailService
	logger *logrus.Logger
}

func NewContactService(email ports.EmailService, logger *logrus.Logger) ports.ContactService {
	return &ContactService{email: email, logger: logger}
}

func (s *ContactService) Submit(ctx context.Context, name, email, message string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)

	if name == "" || message == "" {
		return fmt.Errorf("name and message are required")
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("a valid reply address is required")
	}

	if err := s.email.SendContactMessage(ctx, name, email, message); err != nil {
		if s.logger != nil {
			s.logger.WithError(err).Warn("failed to relay contact message")
		}
		return fmt.Errorf("failed to submit contact message: %w", err)
	}
	return nil
}
