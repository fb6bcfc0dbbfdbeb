package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	impl "github.com/roamstone/esim-portal/internal/application/services"
	"github.com/roamstone/esim-portal/internal/core/domain/catalog"
	"github.com/roamstone/esim-portal/internal/infrastructure/cache"
	"github.com/roamstone/esim-portal/test/mocks"
)

func newCatalogService(countries *mocks.CountryRepositoryMock, ttl time.Duration) *impl.CatalogService {
	return impl.NewCatalogService(impl.CatalogDeps{
		Countries: countries,
		Packages:  &mocks.PackageRepositoryMock{},
		Combos:    &mocks.ComboPackageRepositoryMock{},
		Regions:   &mocks.RegionRepositoryMock{},
		Pages:     &mocks.PageRepositoryMock{},
		Cache:     cache.NewMemoryCache(),
		Fallback:  &mocks.FallbackProviderMock{},
	}, impl.CatalogServiceConfig{TTL: ttl, QueryTimeout: time.Second}, nil)
}

func TestListCountriesCachesWithinTTL(t *testing.T) {
	calls := 0
	repo := &mocks.CountryRepositoryMock{
		ListFn: func(ctx context.Context, f catalog.CountryFilter) ([]catalog.Country, error) {
			calls++
			return []catalog.Country{{Code: "tr", Region: "europe"}}, nil
		},
	}
	svc := newCatalogService(repo, time.Minute)
	ctx := context.Background()

	// Two invocations with equal filter values; identity of the filter
	// struct is irrelevant to the fingerprint.
	for i := 0; i < 2; i++ {
		f := catalog.CountryFilter{Status: catalog.StatusActive}
		data, fromFallback, err := svc.ListCountries(ctx, f)
		if err != nil || fromFallback {
			t.Fatalf("unexpected err=%v fallback=%v", err, fromFallback)
		}
		if len(data) != 1 || data[0].Code != "tr" {
			t.Fatalf("unexpected data: %+v", data)
		}
	}
	if calls != 1 {
		t.Errorf("expected exactly one store query within TTL, got %d", calls)
	}
}

func TestListCountriesDifferentFiltersMissSeparately(t *testing.T) {
	calls := 0
	repo := &mocks.CountryRepositoryMock{
		ListFn: func(ctx context.Context, f catalog.CountryFilter) ([]catalog.Country, error) {
			calls++
			return []catalog.Country{}, nil
		},
	}
	svc := newCatalogService(repo, time.Minute)
	ctx := context.Background()

	_, _, _ = svc.ListCountries(ctx, catalog.CountryFilter{Region: "europe"})
	_, _, _ = svc.ListCountries(ctx, catalog.CountryFilter{Region: "asia"})
	if calls != 2 {
		t.Errorf("distinct filters must not share an entry, got %d calls", calls)
	}
}

func TestListCountriesReloadsAfterTTL(t *testing.T) {
	calls := 0
	repo := &mocks.CountryRepositoryMock{
		ListFn: func(ctx context.Context, f catalog.CountryFilter) ([]catalog.Country, error) {
			calls++
			return []catalog.Country{{Code: "tr"}}, nil
		},
	}
	svc := newCatalogService(repo, 20*time.Millisecond)
	ctx := context.Background()

	_, _, _ = svc.ListCountries(ctx, catalog.CountryFilter{})
	time.Sleep(30 * time.Millisecond)
	_, _, _ = svc.ListCountries(ctx, catalog.CountryFilter{})

	if calls != 2 {
		t.Errorf("expected exactly one new query after TTL elapsed, got %d", calls)
	}
}

func TestListCountriesFallbackOnFailureNotCached(t *testing.T) {
	calls := 0
	repo := &mocks.CountryRepositoryMock{
		ListFn: func(ctx context.Context, f catalog.CountryFilter) ([]catalog.Country, error) {
			calls++
			return nil, fmt.Errorf("connection refused")
		},
	}
	svc := newCatalogService(repo, time.Minute)
	ctx := context.Background()

	data, fromFallback, err := svc.ListCountries(ctx, catalog.CountryFilter{})
	if err == nil {
		t.Fatal("expected error flag alongside fallback data")
	}
	if !fromFallback || len(data) == 0 {
		t.Fatalf("expected non-empty fallback data, got %d rows fallback=%v", len(data), fromFallback)
	}

	// Fallback data must never be cached: the next call retries the store.
	_, _, _ = svc.ListCountries(ctx, catalog.CountryFilter{})
	if calls != 2 {
		t.Errorf("fallback result was cached, got %d calls", calls)
	}
}

func TestListCountriesNormalizesRows(t *testing.T) {
	repo := &mocks.CountryRepositoryMock{
		ListFn: func(ctx context.Context, f catalog.CountryFilter) ([]catalog.Country, error) {
			return []catalog.Country{{Code: "xx"}}, nil
		},
	}
	svc := newCatalogService(repo, time.Minute)

	data, _, err := svc.ListCountries(context.Background(), catalog.CountryFilter{})
	if err != nil {
		t.Fatal(err)
	}
	c := data[0]
	if c.Features == nil || c.Networks == nil || c.Languages == nil {
		t.Error("loader must materialize array fields")
	}
	if c.CoverImage == "" {
		t.Error("loader must inject a cover image")
	}
}

func TestGetCountryNotFound(t *testing.T) {
	repo := &mocks.CountryRepositoryMock{} // default GetByCode yields ErrNotFound
	svc := newCatalogService(repo, time.Minute)

	c, err := svc.GetCountry(context.Background(), "nope")
	if c != nil {
		t.Fatal("single-entity miss must yield nil data")
	}
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected typed not-found, got %v", err)
	}
}

func TestGetCountryTransportError(t *testing.T) {
	repo := &mocks.CountryRepositoryMock{
		GetByCodeFn: func(ctx context.Context, code string) (*catalog.Country, error) {
			return nil, fmt.Errorf("timeout")
		},
	}
	svc := newCatalogService(repo, time.Minute)

	c, err := svc.GetCountry(context.Background(), "tr")
	if c != nil || err == nil {
		t.Fatalf("expected nil data and error, got %+v %v", c, err)
	}
	if errors.Is(err, catalog.ErrNotFound) {
		t.Error("transport failure must stay distinct from not-found")
	}
}

func TestGetCountryCachesHit(t *testing.T) {
	calls := 0
	repo := &mocks.CountryRepositoryMock{
		GetByCodeFn: func(ctx context.Context, code string) (*catalog.Country, error) {
			calls++
			return &catalog.Country{Code: code}, nil
		},
	}
	svc := newCatalogService(repo, time.Minute)
	ctx := context.Background()

	_, _ = svc.GetCountry(ctx, "tr")
	_, _ = svc.GetCountry(ctx, "tr")
	if calls != 1 {
		t.Errorf("expected cached single-entity hit, got %d calls", calls)
	}
}

func TestInvalidateForcesReload(t *testing.T) {
	calls := 0
	repo := &mocks.CountryRepositoryMock{
		ListFn: func(ctx context.Context, f catalog.CountryFilter) ([]catalog.Country, error) {
			calls++
			return []catalog.Country{{Code: "tr"}}, nil
		},
	}
	svc := newCatalogService(repo, time.Minute)
	ctx := context.Background()

	_, _, _ = svc.ListCountries(ctx, catalog.CountryFilter{})
	svc.Invalidate(ctx, catalog.LoaderCountries)
	_, _, _ = svc.ListCountries(ctx, catalog.CountryFilter{})

	if calls != 2 {
		t.Errorf("invalidation must force the next read past the cache, got %d calls", calls)
	}
}

// A load that was already in flight when an invalidation lands must not
// repopulate the cache with its (now superseded) rows.
func TestSupersededLoadDoesNotRepopulateCache(t *testing.T) {
	var svc *impl.CatalogService
	calls := 0
	repo := &mocks.CountryRepositoryMock{}
	repo.ListFn = func(ctx context.Context, f catalog.CountryFilter) ([]catalog.Country, error) {
		calls++
		if calls == 1 {
			// Invalidation arrives while this load is still in flight.
			svc.Invalidate(context.Background(), catalog.LoaderCountries)
		}
		return []catalog.Country{{Code: "tr"}}, nil
	}
	svc = newCatalogService(repo, time.Minute)
	ctx := context.Background()

	if _, _, err := svc.ListCountries(ctx, catalog.CountryFilter{}); err != nil {
		t.Fatal(err)
	}
	// The first load's rows must have been discarded, so this goes back to
	// the store instead of reading a stale entry.
	_, _, _ = svc.ListCountries(ctx, catalog.CountryFilter{})
	if calls != 2 {
		t.Errorf("superseded load repopulated the cache, got %d calls", calls)
	}
}
