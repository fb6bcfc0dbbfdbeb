package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/roamstone/esim-portal/internal/core/domain/datausage"
	"github.com/roamstone/esim-portal/internal/core/domain/subscriber"
	"github.com/roamstone/esim-portal/internal/core/ports"
)

// mockICCID is the canned value substituted when the details call fails.
const mockICCID = "8990000000000000000"

// mockPartnerPackage is served when the status call fails, returns non-OK,
// or returns an empty list. It carries an explicit remaining amount so the
// result is non-zero and self-consistent even with demo fill disabled.
func mockPartnerPackage(now time.Time) subscriber.PartnerPackage {
	return subscriber.PartnerPackage{
		Status:         "active",
		PackageSize:    float64(5),
		RemainingData:  "3.50GB",
		ActivationDate: now.AddDate(0, 0, -15).Format(time.RFC3339),
		ExpiresAt:      now.AddDate(0, 0, 15).Format(time.RFC3339),
		Validity:       30,
	}
}

// SubscriberServiceConfig tunes the balance checker.
type SubscriberServiceConfig struct {
	// DemoFill enables the placeholder 30% usage split when the upstream
	// reports neither used nor remaining data for a sized plan.
	DemoFill bool
}

// SubscriberService runs balance checks against the partner API. Upstream
// failure is recovered locally: the caller always receives a displayable
// status, with Provenance distinguishing live data from substitutes.
type SubscriberService struct {
	partner ports.PartnerClient
	config  SubscriberServiceConfig
	logger  *logrus.Logger
	now     func() time.Time
}

func NewSubscriberService(partner ports.PartnerClient, config SubscriberServiceConfig, logger *logrus.Logger) *SubscriberService {
	return &SubscriberService{
		partner: partner,
		config:  config,
		logger:  logger,
		now:     time.Now,
	}
}

// CheckBalance resolves the current status for a subscriber. Results are
// never cached; every check recomputes from the upstream responses.
func (s *SubscriberService) CheckBalance(ctx context.Context, subscriberID string) (*subscriber.Status, error) {
	if subscriberID == "" {
		return nil, fmt.Errorf("subscriber id is required")
	}

	now := s.now()
	provenance := subscriber.ProvenanceReal

	// Status and details are fetched independently: a failure in one never
	// blocks the other, and neither surfaces to the caller as an error.
	var pkg subscriber.PartnerPackage
	packages, err := s.partner.EsimStatus(ctx, subscriberID)
	if err != nil || len(packages) == 0 {
		if s.logger != nil {
			s.logger.WithError(err).WithField("subscriber_id", subscriberID).Info("esim status unavailable, substituting mock payload")
		}
		pkg = mockPartnerPackage(now)
		provenance = subscriber.ProvenanceMock
	} else {
		pkg = packages[0]
	}

	iccid := mockICCID
	if details, err := s.partner.SubscriberDetails(ctx, subscriberID); err == nil && details.ICCID != "" {
		iccid = details.ICCID
	} else if s.logger != nil {
		s.logger.WithError(err).WithField("subscriber_id", subscriberID).Debug("subscriber details unavailable, substituting iccid")
	}

	total := s.packageSizeBytes(pkg.PackageSize)
	used, remaining := s.deriveUsage(pkg, total)

	status := &subscriber.Status{
		SubscriberID:   subscriberID,
		ICCID:          iccid,
		State:          pkg.Status,
		PackageSize:    total,
		DataUsed:       used,
		DataRemaining:  remaining,
		DataUsedText:   datausage.Format(used),
		DataLeftText:   datausage.Format(remaining),
		UsagePercent:   datausage.Percent(used, total),
		ActivationDate: pkg.ActivationDate,
		ExpiresAt:      pkg.ExpiresAt,
		Validity:       pkg.Validity,
		Provenance:     provenance,
	}

	if expiry, err := time.Parse(time.RFC3339, pkg.ExpiresAt); err == nil {
		status.RemainingDays, status.Expired = datausage.RemainingDays(expiry, now)
	}

	return status, nil
}

// packageSizeBytes interprets the upstream package_size field: numeric
// values are gigabyte counts, strings carry their own unit suffix.
func (s *SubscriberService) packageSizeBytes(v any) int64 {
	switch t := v.(type) {
	case nil:
		return 0
	case string:
		b, err := datausage.Parse(t)
		if err != nil {
			return 0
		}
		return b
	case float64:
		return datausage.GBToBytes(t)
	case int:
		return datausage.GBToBytes(float64(t))
	default:
		return 0
	}
}

// deriveUsage turns whatever usage numbers the payload carries into a
// self-consistent used/remaining pair. When the plan size is known the pair
// always sums to it; a fully unreported (or zero/zero) payload is filled by
// the demo placeholder split rather than shown as 0/0.
func (s *SubscriberService) deriveUsage(pkg subscriber.PartnerPackage, total int64) (used, remaining int64) {
	remainingVal, remErr := datausage.ParseValue(pkg.RemainingData)
	usedVal, usedErr := datausage.ParseValue(pkg.UsedData)

	haveRemaining := remErr == nil && remainingVal > 0
	haveUsed := usedErr == nil && usedVal > 0

	switch {
	case haveRemaining && haveUsed:
		return usedVal, remainingVal
	case haveRemaining && total > 0:
		used = total - remainingVal
		if used < 0 {
			used = 0
		}
		return used, remainingVal
	case haveRemaining:
		return 0, remainingVal
	case haveUsed && total > 0:
		remaining = total - usedVal
		if remaining < 0 {
			remaining = 0
		}
		return usedVal, remaining
	case haveUsed:
		return usedVal, 0
	case s.config.DemoFill && total > 0:
		return datausage.SynthesizeUsage(total)
	default:
		return 0, 0
	}
}
