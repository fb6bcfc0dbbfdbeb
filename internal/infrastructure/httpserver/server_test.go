package httpserver_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roamstone/esim-portal/internal/application/services"
	"github.com/roamstone/esim-portal/internal/core/domain/catalog"
	"github.com/roamstone/esim-portal/internal/infrastructure/cache"
	"github.com/roamstone/esim-portal/internal/infrastructure/httpserver"
	"github.com/roamstone/esim-portal/test/mocks"
)

const testAdminKey = "test-admin-key"

func newTestServer(countries *mocks.CountryRepositoryMock) *httpserver.Server {
	packages := &mocks.PackageRepositoryMock{}
	combos := &mocks.ComboPackageRepositoryMock{}
	regions := &mocks.RegionRepositoryMock{}
	pages := &mocks.PageRepositoryMock{}

	catalogSvc := services.NewCatalogService(services.CatalogDeps{
		Countries: countries,
		Packages:  packages,
		Combos:    combos,
		Regions:   regions,
		Pages:     pages,
		Cache:     cache.NewMemoryCache(),
		Fallback:  &mocks.FallbackProviderMock{},
	}, services.CatalogServiceConfig{TTL: time.Minute, QueryTimeout: time.Second}, nil)
	adminSvc := services.NewCatalogAdminService(services.CatalogAdminDeps{
		Countries:   countries,
		Packages:    packages,
		Combos:      combos,
		Regions:     regions,
		Pages:       pages,
		Invalidator: catalogSvc,
	}, nil)

	return httpserver.NewServer(&httpserver.ServerConfig{
		Host:        "127.0.0.1",
		Port:        "0",
		AdminAPIKey: testAdminKey,
	}, nil, httpserver.ServerDeps{
		CatalogService:    catalogSvc,
		AdminService:      adminSvc,
		SubscriberService: services.NewSubscriberService(&mocks.PartnerClientMock{}, services.SubscriberServiceConfig{DemoFill: true}, nil),
		ContactService:    services.NewContactService(&mocks.EmailServiceMock{}, nil),
	})
}

func TestListCountriesEnvelope(t *testing.T) {
	repo := &mocks.CountryRepositoryMock{
		ListFn: func(ctx context.Context, f catalog.CountryFilter) ([]catalog.Country, error) {
			return []catalog.Country{{Code: "tr"}}, nil
		},
	}
	srv := newTestServer(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/countries?status=active", nil)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data     []catalog.Country `json:"data"`
		Fallback bool              `json:"fallback"`
		Error    *string           `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data, 1)
	assert.False(t, body.Fallback)
	assert.Nil(t, body.Error)
}

func TestListCountriesDegradedEnvelope(t *testing.T) {
	repo := &mocks.CountryRepositoryMock{
		ListFn: func(ctx context.Context, f catalog.CountryFilter) ([]catalog.Country, error) {
			return nil, fmt.Errorf("store down")
		},
	}
	srv := newTestServer(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/countries", nil)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	// Degraded, not broken: 200 with fallback data and the error attached.
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data     []catalog.Country `json:"data"`
		Fallback bool              `json:"fallback"`
		Error    *string           `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Data)
	assert.True(t, body.Fallback)
	require.NotNil(t, body.Error)
}

func TestGetCountryNotFoundReturns404(t *testing.T) {
	srv := newTestServer(&mocks.CountryRepositoryMock{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/countries/zz", nil)
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminRoutesRequireKey(t *testing.T) {
	srv := newTestServer(&mocks.CountryRepositoryMock{})

	body := strings.NewReader(`{"code":"tr"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/countries", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/admin/countries", strings.NewReader(`{"code":"tr"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Admin-Key", testAdminKey)
	rec = httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCheckBalanceHandler(t *testing.T) {
	srv := newTestServer(&mocks.CountryRepositoryMock{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/balance", strings.NewReader(`{"subscriber_id":"sub-1"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var status map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "mock", status["provenance"])

	req = httptest.NewRequest(http.MethodPost, "/api/v1/balance", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitContactHandler(t *testing.T) {
	srv := newTestServer(&mocks.CountryRepositoryMock{})

	payload := `{"name":"Ada","email":"ada@example.com","message":"hello"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusAccepted, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(`{"name":"Ada"}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	srv.Echo().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
