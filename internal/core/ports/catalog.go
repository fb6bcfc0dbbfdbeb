package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/roamstone/esim-portal/internal/core/domain/catalog"
)

// Repository ports for the remote content store. List queries accept a
// filter and return rows in stored sort order; single lookups return
// catalog.ErrNotFound (wrapped) on a miss.

type CountryRepository interface {
	List(ctx context.Context, f catalog.CountryFilter) ([]catalog.Country, error)
	GetByCode(ctx context.Context, code string) (*catalog.Country, error)
	Create(ctx context.Context, c *catalog.Country) error
	Update(ctx context.Context, c *catalog.Country) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*catalog.Country, error)
	Reorder(ctx context.Context, ids []uuid.UUID) error
}

type PackageRepository interface {
	List(ctx context.Context, f catalog.PackageFilter) ([]catalog.Package, error)
	GetByID(ctx context.Context, id uuid.UUID) (*catalog.Package, error)
	Create(ctx context.Context, p *catalog.Package) error
	Update(ctx context.Context, p *catalog.Package) error
	Delete(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, ids []uuid.UUID) error
}

type ComboPackageRepository interface {
	List(ctx context.Context, f catalog.ComboPackageFilter) ([]catalog.ComboPackage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*catalog.ComboPackage, error)
	Create(ctx context.Context, p *catalog.ComboPackage) error
	Update(ctx context.Context, p *catalog.ComboPackage) error
	Delete(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, ids []uuid.UUID) error
}

type RegionRepository interface {
	List(ctx context.Context, f catalog.RegionFilter) ([]catalog.Region, error)
	GetByID(ctx context.Context, id uuid.UUID) (*catalog.Region, error)
	Create(ctx context.Context, r *catalog.Region) error
	Update(ctx context.Context, r *catalog.Region) error
	Delete(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, ids []uuid.UUID) error
}

type PageRepository interface {
	GetBySlug(ctx context.Context, slug string) (*catalog.Page, error)
	GetByID(ctx context.Context, id uuid.UUID) (*catalog.Page, error)
	List(ctx context.Context) ([]catalog.Page, error)
	Create(ctx context.Context, p *catalog.Page) error
	Update(ctx context.Context, p *catalog.Page) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CatalogService is the read side: cache-aside loaders over the content
// store. List methods return (data, fromFallback, err); on failure the data
// is the fallback dataset and err carries the cause, so callers can always
// render something while still surfacing an error flag.
type CatalogService interface {
	ListCountries(ctx context.Context, f catalog.CountryFilter) ([]catalog.Country, bool, error)
	GetCountry(ctx context.Context, code string) (*catalog.Country, error)
	ListPackages(ctx context.Context, f catalog.PackageFilter) ([]catalog.Package, bool, error)
	ListComboPackages(ctx context.Context, f catalog.ComboPackageFilter) ([]catalog.ComboPackage, bool, error)
	ListRegions(ctx context.Context, f catalog.RegionFilter) ([]catalog.Region, bool, error)
	GetPage(ctx context.Context, slug string) (*catalog.Page, error)
}

// LoaderInvalidator drops cached entries for the named loaders and retires
// any loads already in flight for them, so a write deterministically forces
// the next read back to the store.
type LoaderInvalidator interface {
	Invalidate(ctx context.Context, loaders ...string)
}

// CatalogAdminService is the write side: pass-through mutations to the
// content store that invalidate the affected loaders on success.
type CatalogAdminService interface {
	CreateCountry(ctx context.Context, req *catalog.CreateCountryRequest) (*catalog.Country, error)
	UpdateCountry(ctx context.Context, id uuid.UUID, req *catalog.UpdateCountryRequest) (*catalog.Country, error)
	DeleteCountry(ctx context.Context, id uuid.UUID) error
	ReorderCountries(ctx context.Context, ids []uuid.UUID) error

	CreatePackage(ctx context.Context, req *catalog.CreatePackageRequest) (*catalog.Package, error)
	UpdatePackage(ctx context.Context, id uuid.UUID, req *catalog.UpdatePackageRequest) (*catalog.Package, error)
	DeletePackage(ctx context.Context, id uuid.UUID) error
	ReorderPackages(ctx context.Context, ids []uuid.UUID) error

	CreateComboPackage(ctx context.Context, req *catalog.CreateComboPackageRequest) (*catalog.ComboPackage, error)
	UpdateComboPackage(ctx context.Context, id uuid.UUID, req *catalog.UpdateComboPackageRequest) (*catalog.ComboPackage, error)
	DeleteComboPackage(ctx context.Context, id uuid.UUID) error
	ReorderComboPackages(ctx context.Context, ids []uuid.UUID) error

	CreateRegion(ctx context.Context, req *catalog.CreateRegionRequest) (*catalog.Region, error)
	UpdateRegion(ctx context.Context, id uuid.UUID, req *catalog.UpdateRegionRequest) (*catalog.Region, error)
	DeleteRegion(ctx context.Context, id uuid.UUID) error
	ReorderRegions(ctx context.Context, ids []uuid.UUID) error

	CreatePage(ctx context.Context, req *catalog.CreatePageRequest) (*catalog.Page, error)
	UpdatePage(ctx context.Context, id uuid.UUID, req *catalog.UpdatePageRequest) (*catalog.Page, error)
	DeletePage(ctx context.Context, id uuid.UUID) error
}

// FallbackProvider supplies the static substitute datasets served when the
// content store is unreachable. Fixtures conform to the same normalized
// shape as live rows so downstream code cannot tell them apart.
type FallbackProvider interface {
	Countries() []catalog.Country
	Regions() []catalog.Region
	Packages() []catalog.Package
	ComboPackages() []catalog.ComboPackage
}
