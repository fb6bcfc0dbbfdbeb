package partnerapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	return NewClient(&ClientConfig{
		BaseURL:     baseURL,
		PartnerName: "roamstone",
		PartnerKey:  "secret",
		Timeout:     2 * time.Second,
	}, nil).(*Client)
}

func TestEsimStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/esim-status", r.URL.Path)
		assert.Equal(t, "sub-42", r.URL.Query().Get("id"))
		assert.Equal(t, "roamstone", r.Header.Get("X-Partner-Name"))
		assert.Equal(t, "secret", r.Header.Get("X-Partner-Key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"status":"active","package_size":7,"remaining_data":"4.9GB","expires_at":"2026-01-01T00:00:00Z","validity":30}]`))
	}))
	defer srv.Close()

	packages, err := newTestClient(srv.URL).EsimStatus(context.Background(), "sub-42")
	require.NoError(t, err)
	require.Len(t, packages, 1)
	assert.Equal(t, "active", packages[0].Status)
	assert.Equal(t, float64(7), packages[0].PackageSize)
	assert.Equal(t, "4.9GB", packages[0].RemainingData)
	assert.Nil(t, packages[0].UsedData)
}

func TestEsimStatusNonOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).EsimStatus(context.Background(), "sub-42")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestSubscriberDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/subscriber", r.URL.Path)
		assert.Equal(t, "sub-42", r.URL.Query().Get("subscriber_id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"subscriber_id":"sub-42","iccid":"8990000000000012345"}`))
	}))
	defer srv.Close()

	details, err := newTestClient(srv.URL).SubscriberDetails(context.Background(), "sub-42")
	require.NoError(t, err)
	assert.Equal(t, "8990000000000012345", details.ICCID)
}

func TestSubscriberDetailsMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).SubscriberDetails(context.Background(), "sub-42")
	require.Error(t, err)
}
