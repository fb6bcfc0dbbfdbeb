package ports

import (
	"context"

	"github.com/roamstone/esim-portal/internal/core/domain/subscriber"
)

// PartnerClient talks to the external subscriber API. Both calls are opaque
// GET endpoints authenticated by partner headers; response shapes are messy
// and absorbed by the datausage parser downstream.
type PartnerClient interface {
	EsimStatus(ctx context.Context, subscriberID string) ([]subscriber.PartnerPackage, error)
	SubscriberDetails(ctx context.Context, subscriberID string) (*subscriber.Details, error)
}

// SubscriberService runs a balance check. It never fails on upstream
// trouble: unusable responses are replaced by canned values and tagged with
// mock provenance so the caller always gets a displayable result.
type SubscriberService interface {
	CheckBalance(ctx context.Context, subscriberID string) (*subscriber.Status, error)
}

// ContactService relays contact-form submissions to the support inbox.
type ContactService interface {
	Submit(ctx context.Context, name, email, message string) error
}
