package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	impl "github.com/roamstone/esim-portal/internal/application/services"
	"github.com/roamstone/esim-portal/internal/core/domain/datausage"
	"github.com/roamstone/esim-portal/internal/core/domain/subscriber"
	"github.com/roamstone/esim-portal/test/mocks"
)

func TestCheckBalanceUpstreamDownServesMock(t *testing.T) {
	// Default mock fails both partner calls.
	svc := impl.NewSubscriberService(&mocks.PartnerClientMock{}, impl.SubscriberServiceConfig{DemoFill: true}, nil)

	status, err := svc.CheckBalance(context.Background(), "sub-1")
	require.NoError(t, err, "upstream failure must not surface as an error")
	require.NotNil(t, status)

	assert.Equal(t, subscriber.ProvenanceMock, status.Provenance)
	assert.NotEmpty(t, status.ICCID)
	assert.Equal(t, "active", status.State)
	assert.Positive(t, status.PackageSize)
	assert.Positive(t, status.DataRemaining, "substituted payload must never render as 0/0")
	assert.Equal(t, status.PackageSize, status.DataUsed+status.DataRemaining)
	assert.False(t, status.Expired)
	assert.Positive(t, status.RemainingDays)
}

func TestCheckBalanceEmptyPackageListServesMock(t *testing.T) {
	client := &mocks.PartnerClientMock{
		EsimStatusFn: func(ctx context.Context, id string) ([]subscriber.PartnerPackage, error) {
			return []subscriber.PartnerPackage{}, nil
		},
	}
	svc := impl.NewSubscriberService(client, impl.SubscriberServiceConfig{}, nil)

	status, err := svc.CheckBalance(context.Background(), "sub-1")
	require.NoError(t, err)
	assert.Equal(t, subscriber.ProvenanceMock, status.Provenance)
}

func TestCheckBalanceDerivesUsedFromRemaining(t *testing.T) {
	expires := time.Now().AddDate(0, 0, 10).Format(time.RFC3339)
	client := &mocks.PartnerClientMock{
		EsimStatusFn: func(ctx context.Context, id string) ([]subscriber.PartnerPackage, error) {
			return []subscriber.PartnerPackage{{
				Status:        "active",
				PackageSize:   float64(7), // gigabyte count
				RemainingData: "4.9GB",
				UsedData:      float64(0),
				ExpiresAt:     expires,
				Validity:      30,
			}}, nil
		},
		SubscriberDetailsFn: func(ctx context.Context, id string) (*subscriber.Details, error) {
			return &subscriber.Details{SubscriberID: id, ICCID: "8988303000000000001"}, nil
		},
	}
	svc := impl.NewSubscriberService(client, impl.SubscriberServiceConfig{DemoFill: true}, nil)

	status, err := svc.CheckBalance(context.Background(), "sub-1")
	require.NoError(t, err)

	total := datausage.GBToBytes(7)
	remaining := datausage.GBToBytes(4.9)
	assert.Equal(t, subscriber.ProvenanceReal, status.Provenance)
	assert.Equal(t, "8988303000000000001", status.ICCID)
	assert.Equal(t, total, status.PackageSize)
	assert.Equal(t, remaining, status.DataRemaining)
	assert.Equal(t, total-remaining, status.DataUsed)
	assert.Equal(t, "4.90 GB", status.DataLeftText)
	assert.Equal(t, 30, status.UsagePercent)
	assert.Equal(t, 10, status.RemainingDays)
	assert.False(t, status.Expired)
}

func TestCheckBalanceDerivesRemainingFromUsed(t *testing.T) {
	client := &mocks.PartnerClientMock{
		EsimStatusFn: func(ctx context.Context, id string) ([]subscriber.PartnerPackage, error) {
			return []subscriber.PartnerPackage{{
				Status:      "active",
				PackageSize: float64(5),
				UsedData:    "1GB",
			}}, nil
		},
	}
	svc := impl.NewSubscriberService(client, impl.SubscriberServiceConfig{}, nil)

	status, err := svc.CheckBalance(context.Background(), "sub-1")
	require.NoError(t, err)
	assert.Equal(t, datausage.GBToBytes(1), status.DataUsed)
	assert.Equal(t, datausage.GBToBytes(4), status.DataRemaining)
	// Details call failed, so the iccid is the canned substitute, but the
	// package itself is live data.
	assert.Equal(t, subscriber.ProvenanceReal, status.Provenance)
}

func TestCheckBalanceZeroUsageSynthesizedWhenDemoFillOn(t *testing.T) {
	pkg := subscriber.PartnerPackage{Status: "active", PackageSize: float64(10)}
	client := &mocks.PartnerClientMock{
		EsimStatusFn: func(ctx context.Context, id string) ([]subscriber.PartnerPackage, error) {
			return []subscriber.PartnerPackage{pkg}, nil
		},
	}

	svc := impl.NewSubscriberService(client, impl.SubscriberServiceConfig{DemoFill: true}, nil)
	status, err := svc.CheckBalance(context.Background(), "sub-1")
	require.NoError(t, err)
	wantUsed, wantRemaining := datausage.SynthesizeUsage(datausage.GBToBytes(10))
	assert.Equal(t, wantUsed, status.DataUsed)
	assert.Equal(t, wantRemaining, status.DataRemaining)

	svc = impl.NewSubscriberService(client, impl.SubscriberServiceConfig{DemoFill: false}, nil)
	status, err = svc.CheckBalance(context.Background(), "sub-1")
	require.NoError(t, err)
	assert.Zero(t, status.DataUsed)
	assert.Zero(t, status.DataRemaining)
}

func TestCheckBalanceExpiredPlan(t *testing.T) {
	client := &mocks.PartnerClientMock{
		EsimStatusFn: func(ctx context.Context, id string) ([]subscriber.PartnerPackage, error) {
			return []subscriber.PartnerPackage{{
				Status:        "inactive",
				PackageSize:   float64(5),
				RemainingData: "0.5GB",
				ExpiresAt:     time.Now().AddDate(0, 0, -2).Format(time.RFC3339),
			}}, nil
		},
	}
	svc := impl.NewSubscriberService(client, impl.SubscriberServiceConfig{}, nil)

	status, err := svc.CheckBalance(context.Background(), "sub-1")
	require.NoError(t, err)
	assert.True(t, status.Expired)
	assert.Zero(t, status.RemainingDays)
}

func TestCheckBalanceRequiresSubscriberID(t *testing.T) {
	svc := impl.NewSubscriberService(&mocks.PartnerClientMock{}, impl.SubscriberServiceConfig{}, nil)
	status, err := svc.CheckBalance(context.Background(), "")
	assert.Nil(t, status)
	assert.Error(t, err)
}
