package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/roamstone/esim-portal/internal/core/domain/catalog"
	"github.com/roamstone/esim-portal/internal/core/ports"
)

var (
	cacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_cache_hits_total",
			Help: "Catalog loads served from cache",
		},
		[]string{"loader"},
	)
	cacheMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_cache_misses_total",
			Help: "Catalog loads that went to the content store",
		},
		[]string{"loader"},
	)
	fallbackServes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_fallback_serves_total",
			Help: "Catalog loads served from static fallback data",
		},
		[]string{"loader"},
	)
)

func init() {
	prometheus.MustRegister(cacheHits, cacheMisses, fallbackServes)
}

// CatalogServiceConfig carries the cache-aside tuning knobs. TTL is a single
// process-wide value shared by every loader.
type CatalogServiceConfig struct {
	TTL          time.Duration
	QueryTimeout time.Duration
}

// CatalogService implements the read side of the catalog: cache-aside
// loaders per entity type, with static fallback data when the content store
// is unreachable. Loads are keyed by a fingerprint (loader name + serialized
// filter) so two calls with equal filter values share one cache entry
// regardless of filter identity.
type CatalogService struct {
	countries ports.CountryRepository
	packages  ports.PackageRepository
	combos    ports.ComboPackageRepository
	regions   ports.RegionRepository
	pages     ports.PageRepository
	cache     ports.Cache
	fallback  ports.FallbackProvider
	config    CatalogServiceConfig
	logger    *logrus.Logger

	sf singleflight.Group

	// Per-loader generation counters. Invalidate bumps a loader's counter,
	// and a load that started under an older generation will not commit its
	// rows to the cache, so stale responses cannot overwrite fresher state.
	mu   sync.Mutex
	gens map[string]uint64
}

type CatalogDeps struct {
	Countries ports.CountryRepository
	Packages  ports.PackageRepository
	Combos    ports.ComboPackageRepository
	Regions   ports.RegionRepository
	Pages     ports.PageRepository
	Cache     ports.Cache
	Fallback  ports.FallbackProvider
}

func NewCatalogService(deps CatalogDeps, config CatalogServiceConfig, logger *logrus.Logger) *CatalogService {
	if config.TTL <= 0 {
		config.TTL = 5 * time.Minute
	}
	if config.QueryTimeout <= 0 {
		config.QueryTimeout = 10 * time.Second
	}
	return &CatalogService{
		countries: deps.Countries,
		packages:  deps.Packages,
		combos:    deps.Combos,
		regions:   deps.Regions,
		pages:     deps.Pages,
		cache:     deps.Cache,
		fallback:  deps.Fallback,
		config:    config,
		logger:    logger,
		gens:      make(map[string]uint64),
	}
}

// fingerprint builds the deterministic cache key for a loader invocation.
// encoding/json emits struct fields in declaration order, so equal filter
// values always serialize identically.
func fingerprint(loader string, filter any) string {
	b, err := json.Marshal(filter)
	if err != nil {
		return loader + ":{}"
	}
	return loader + ":" + string(b)
}

func (s *CatalogService) generation(loader string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gens[loader]
}

// Invalidate implements ports.LoaderInvalidator: it drops every cached entry
// for the named loaders and retires in-flight loads by bumping their
// generation.
func (s *CatalogService) Invalidate(ctx context.Context, loaders ...string) {
	s.mu.Lock()
	for _, loader := range loaders {
		s.gens[loader]++
	}
	s.mu.Unlock()

	for _, loader := range loaders {
		if err := s.cache.DeletePrefix(ctx, loader+":"); err != nil && s.logger != nil {
			s.logger.WithError(err).WithField("loader", loader).Warn("cache invalidation failed")
		}
	}
}

// Utility helpers, shared by every loader.

func cacheSetSilently(c ports.Cache, ctx context.Context, key string, v any, ttl time.Duration) {
	if c == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = c.Set(ctx, key, b, ttl)
}

func cacheGet[T any](c ports.Cache, ctx context.Context, key string) (*T, bool) {
	if c == nil {
		return nil, false
	}
	b, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return nil, false
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, false
	}
	return &v, true
}

// loadList is the generic list-loader algorithm: fresh cache hit wins, a
// miss coalesces through singleflight into one bounded store query, and a
// failure degrades to the fallback dataset without caching it, so the next
// call retries the store.
func loadList[T any](ctx context.Context, s *CatalogService, loader string, filter any,
	query func(context.Context) ([]T, error), fallback func() []T) ([]T, bool, error) {

	fp := fingerprint(loader, filter)
	if v, ok := cacheGet[[]T](s.cache, ctx, fp); ok {
		cacheHits.WithLabelValues(loader).Inc()
		return *v, false, nil
	}
	cacheMisses.WithLabelValues(loader).Inc()

	gen := s.generation(loader)
	res, err, _ := s.sf.Do(fp, func() (any, error) {
		if v, ok := cacheGet[[]T](s.cache, ctx, fp); ok {
			return *v, nil
		}
		qctx, cancel := context.WithTimeout(ctx, s.config.QueryTimeout)
		defer cancel()
		rows, err := query(qctx)
		if err != nil {
			return nil, err
		}
		if rows == nil {
			rows = []T{}
		}
		if s.generation(loader) == gen {
			cacheSetSilently(s.cache, ctx, fp, rows, s.config.TTL)
		}
		return rows, nil
	})
	if err != nil {
		if s.logger != nil {
			s.logger.WithError(err).WithField("loader", loader).Warn("content store load failed, serving fallback")
		}
		fallbackServes.WithLabelValues(loader).Inc()
		return fallback(), true, fmt.Errorf("failed to load %s: %w", loader, err)
	}
	rows, ok := res.([]T)
	if !ok {
		return fallback(), true, fmt.Errorf("unexpected type from singleflight result")
	}
	return rows, false, nil
}

// loadOne is the single-entity variant: no fallback, a miss stays a typed
// not-found error and is never cached.
func loadOne[T any](ctx context.Context, s *CatalogService, loader, key string,
	query func(context.Context) (*T, error)) (*T, error) {

	fp := loader + ":" + key
	if v, ok := cacheGet[T](s.cache, ctx, fp); ok {
		cacheHits.WithLabelValues(loader).Inc()
		return v, nil
	}
	cacheMisses.WithLabelValues(loader).Inc()

	gen := s.generation(loader)
	res, err, _ := s.sf.Do(fp, func() (any, error) {
		if v, ok := cacheGet[T](s.cache, ctx, fp); ok {
			return v, nil
		}
		qctx, cancel := context.WithTimeout(ctx, s.config.QueryTimeout)
		defer cancel()
		v, err := query(qctx)
		if err != nil {
			return nil, err
		}
		if s.generation(loader) == gen {
			cacheSetSilently(s.cache, ctx, fp, v, s.config.TTL)
		}
		return v, nil
	})
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, err
		}
		if s.logger != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{"loader": loader, "key": key}).Warn("content store load failed")
		}
		return nil, fmt.Errorf("failed to load %s: %w", loader, err)
	}
	v, ok := res.(*T)
	if !ok {
		return nil, fmt.Errorf("unexpected type from singleflight result")
	}
	return v, nil
}

// ListCountries loads countries matching the filter.
func (s *CatalogService) ListCountries(ctx context.Context, f catalog.CountryFilter) ([]catalog.Country, bool, error) {
	return loadList(ctx, s, catalog.LoaderCountries, f,
		func(qctx context.Context) ([]catalog.Country, error) {
			rows, err := s.countries.List(qctx, f)
			if err != nil {
				return nil, err
			}
			for i := range rows {
				rows[i].Normalize()
			}
			return rows, nil
		},
		s.fallback.Countries,
	)
}

// GetCountry loads a single country by code.
func (s *CatalogService) GetCountry(ctx context.Context, code string) (*catalog.Country, error) {
	return loadOne(ctx, s, catalog.LoaderCountry, code,
		func(qctx context.Context) (*catalog.Country, error) {
			c, err := s.countries.GetByCode(qctx, code)
			if err != nil {
				return nil, err
			}
			c.Normalize()
			return c, nil
		},
	)
}

// ListPackages loads packages matching the filter.
func (s *CatalogService) ListPackages(ctx context.Context, f catalog.PackageFilter) ([]catalog.Package, bool, error) {
	return loadList(ctx, s, catalog.LoaderPackages, f,
		func(qctx context.Context) ([]catalog.Package, error) {
			rows, err := s.packages.List(qctx, f)
			if err != nil {
				return nil, err
			}
			for i := range rows {
				rows[i].Normalize()
			}
			return rows, nil
		},
		s.fallback.Packages,
	)
}

// ListComboPackages loads combo packages matching the filter.
func (s *CatalogService) ListComboPackages(ctx context.Context, f catalog.ComboPackageFilter) ([]catalog.ComboPackage, bool, error) {
	return loadList(ctx, s, catalog.LoaderComboPackages, f,
		func(qctx context.Context) ([]catalog.ComboPackage, error) {
			rows, err := s.combos.List(qctx, f)
			if err != nil {
				return nil, err
			}
			for i := range rows {
				rows[i].Normalize()
			}
			return rows, nil
		},
		s.fallback.ComboPackages,
	)
}

// ListRegions loads regions matching the filter.
func (s *CatalogService) ListRegions(ctx context.Context, f catalog.RegionFilter) ([]catalog.Region, bool, error) {
	return loadList(ctx, s, catalog.LoaderRegions, f,
		func(qctx context.Context) ([]catalog.Region, error) {
			rows, err := s.regions.List(qctx, f)
			if err != nil {
				return nil, err
			}
			for i := range rows {
				rows[i].Normalize()
			}
			return rows, nil
		},
		s.fallback.Regions,
	)
}

// GetPage loads a single page by slug.
func (s *CatalogService) GetPage(ctx context.Context, slug string) (*catalog.Page, error) {
	return loadOne(ctx, s, catalog.LoaderPages, slug,
		func(qctx context.Context) (*catalog.Page, error) {
			p, err := s.pages.GetBySlug(qctx, slug)
			if err != nil {
				return nil, err
			}
			p.Normalize()
			return p, nil
		},
	)
}
