package ports

import (
	"context"
)

// EmailService defines the interface for email operations
type EmailService interface {
	SendContactMessage(ctx context.Context, name, replyTo, message string) error
}
