package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	impl "github.com/roamstone/esim-portal/internal/application/services"
	"github.com/roamstone/esim-portal/internal/core/domain/catalog"
	"github.com/roamstone/esim-portal/internal/infrastructure/cache"
	"github.com/roamstone/esim-portal/test/mocks"
)

func newAdminService(countries *mocks.CountryRepositoryMock, inv *mocks.LoaderInvalidatorMock) *impl.CatalogAdminService {
	svc := impl.NewCatalogAdminService(impl.CatalogAdminDeps{
		Countries:   countries,
		Packages:    &mocks.PackageRepositoryMock{},
		Combos:      &mocks.ComboPackageRepositoryMock{},
		Regions:     &mocks.RegionRepositoryMock{},
		Pages:       &mocks.PageRepositoryMock{},
		Invalidator: inv,
	}, nil)
	return svc.(*impl.CatalogAdminService)
}

func TestCreateCountryInvalidatesLoaders(t *testing.T) {
	repo := &mocks.CountryRepositoryMock{}
	inv := &mocks.LoaderInvalidatorMock{}
	svc := newAdminService(repo, inv)

	c, err := svc.CreateCountry(context.Background(), &catalog.CreateCountryRequest{
		Code:   "tr",
		Region: "europe",
	})
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, catalog.StatusActive, c.Status)
	assert.NotNil(t, c.Features, "created entity must be normalized")
	assert.NotEmpty(t, c.CoverImage)

	require.Len(t, inv.Calls, 1)
	assert.Contains(t, inv.Calls[0], catalog.LoaderCountries)
	assert.Contains(t, inv.Calls[0], catalog.LoaderCountry)
}

func TestCreateCountryRejectsDuplicateCode(t *testing.T) {
	repo := &mocks.CountryRepositoryMock{
		GetByCodeFn: func(ctx context.Context, code string) (*catalog.Country, error) {
			return &catalog.Country{Code: code}, nil
		},
	}
	inv := &mocks.LoaderInvalidatorMock{}
	svc := newAdminService(repo, inv)

	_, err := svc.CreateCountry(context.Background(), &catalog.CreateCountryRequest{Code: "tr"})
	require.Error(t, err)
	assert.Empty(t, inv.Calls, "failed mutation must not invalidate anything")
}

func TestUpdateCountryPatchesOnlyProvidedFields(t *testing.T) {
	id := uuid.New()
	var saved *catalog.Country
	repo := &mocks.CountryRepositoryMock{
		GetByIDFn: func(ctx context.Context, got uuid.UUID) (*catalog.Country, error) {
			return &catalog.Country{ID: id, Code: "tr", Region: "europe", Status: catalog.StatusActive}, nil
		},
		UpdateFn: func(ctx context.Context, c *catalog.Country) error {
			saved = c
			return nil
		},
	}
	inv := &mocks.LoaderInvalidatorMock{}
	svc := newAdminService(repo, inv)

	status := catalog.StatusInactive
	_, err := svc.UpdateCountry(context.Background(), id, &catalog.UpdateCountryRequest{Status: &status})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, catalog.StatusInactive, saved.Status)
	assert.Equal(t, "europe", saved.Region, "absent fields keep their value")
	require.Len(t, inv.Calls, 1)
}

func TestDeleteCountryAlsoInvalidatesPackages(t *testing.T) {
	repo := &mocks.CountryRepositoryMock{
		DeleteFn: func(ctx context.Context, id uuid.UUID) error { return nil },
	}
	inv := &mocks.LoaderInvalidatorMock{}
	svc := newAdminService(repo, inv)

	require.NoError(t, svc.DeleteCountry(context.Background(), uuid.New()))
	require.Len(t, inv.Calls, 1)
	assert.Contains(t, inv.Calls[0], catalog.LoaderPackages)
}

func TestReorderCountries(t *testing.T) {
	var got []uuid.UUID
	repo := &mocks.CountryRepositoryMock{
		ReorderFn: func(ctx context.Context, ids []uuid.UUID) error {
			got = ids
			return nil
		},
	}
	inv := &mocks.LoaderInvalidatorMock{}
	svc := newAdminService(repo, inv)

	ids := []uuid.UUID{uuid.New(), uuid.New()}
	require.NoError(t, svc.ReorderCountries(context.Background(), ids))
	assert.Equal(t, ids, got)
	require.Len(t, inv.Calls, 1)
	assert.Equal(t, []string{catalog.LoaderCountries}, inv.Calls[0])
}

// End-to-end: a write through the admin service must be visible on the very
// next catalog read when the catalog service itself is the invalidator.
func TestMutationInvalidatesCatalogCache(t *testing.T) {
	listCalls := 0
	repo := &mocks.CountryRepositoryMock{
		ListFn: func(ctx context.Context, f catalog.CountryFilter) ([]catalog.Country, error) {
			listCalls++
			return []catalog.Country{{Code: "tr"}}, nil
		},
		CreateFn: func(ctx context.Context, c *catalog.Country) error { return nil },
	}
	catalogSvc := impl.NewCatalogService(impl.CatalogDeps{
		Countries: repo,
		Packages:  &mocks.PackageRepositoryMock{},
		Combos:    &mocks.ComboPackageRepositoryMock{},
		Regions:   &mocks.RegionRepositoryMock{},
		Pages:     &mocks.PageRepositoryMock{},
		Cache:     cache.NewMemoryCache(),
		Fallback:  &mocks.FallbackProviderMock{},
	}, impl.CatalogServiceConfig{TTL: time.Minute, QueryTimeout: time.Second}, nil)

	adminSvc := impl.NewCatalogAdminService(impl.CatalogAdminDeps{
		Countries:   repo,
		Packages:    &mocks.PackageRepositoryMock{},
		Combos:      &mocks.ComboPackageRepositoryMock{},
		Regions:     &mocks.RegionRepositoryMock{},
		Pages:       &mocks.PageRepositoryMock{},
		Invalidator: catalogSvc,
	}, nil)

	ctx := context.Background()
	_, _, _ = catalogSvc.ListCountries(ctx, catalog.CountryFilter{})
	_, err := adminSvc.CreateCountry(ctx, &catalog.CreateCountryRequest{Code: "us"})
	require.NoError(t, err)
	_, _, _ = catalogSvc.ListCountries(ctx, catalog.CountryFilter{})

	assert.Equal(t, 2, listCalls, "mutation must evict the cached list")
}

// Without any invalidator wired, reads keep serving the cached snapshot for
// the full TTL even after a write. That window is the cost of running the
// admin service without handing it the catalog service.
func TestMutationWithoutInvalidatorLeavesCacheStale(t *testing.T) {
	listCalls := 0
	repo := &mocks.CountryRepositoryMock{
		ListFn: func(ctx context.Context, f catalog.CountryFilter) ([]catalog.Country, error) {
			listCalls++
			return []catalog.Country{{Code: "tr"}}, nil
		},
		CreateFn: func(ctx context.Context, c *catalog.Country) error { return nil },
	}
	catalogSvc := newCatalogService(repo, time.Minute)
	adminSvc := newAdminService(repo, &mocks.LoaderInvalidatorMock{})

	ctx := context.Background()
	_, _, _ = catalogSvc.ListCountries(ctx, catalog.CountryFilter{})
	_, err := adminSvc.CreateCountry(ctx, &catalog.CreateCountryRequest{Code: "us"})
	require.NoError(t, err)
	_, _, _ = catalogSvc.ListCountries(ctx, catalog.CountryFilter{})

	assert.Equal(t, 1, listCalls)
}
