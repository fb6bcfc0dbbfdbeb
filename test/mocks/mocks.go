package mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/roamstone/esim-portal/internal/core/domain/catalog"
	"github.com/roamstone/esim-portal/internal/core/domain/subscriber"
)

// CountryRepositoryMock is a lightweight mock for CountryRepository
type CountryRepositoryMock struct {
	ListFn      func(ctx context.Context, f catalog.CountryFilter) ([]catalog.Country, error)
	GetByCodeFn func(ctx context.Context, code string) (*catalog.Country, error)
	GetByIDFn   func(ctx context.Context, id uuid.UUID) (*catalog.Country, error)
	CreateFn    func(ctx context.Context, c *catalog.Country) error
	UpdateFn    func(ctx context.Context, c *catalog.Country) error
	DeleteFn    func(ctx context.Context, id uuid.UUID) error
	ReorderFn   func(ctx context.Context, ids []uuid.UUID) error
}

func (m *CountryRepositoryMock) List(ctx context.Context, f catalog.CountryFilter) ([]catalog.Country, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, nil
}
func (m *CountryRepositoryMock) GetByCode(ctx context.Context, code string) (*catalog.Country, error) {
	if m.GetByCodeFn != nil {
		return m.GetByCodeFn(ctx, code)
	}
	return nil, fmt.Errorf("country %q: %w", code, catalog.ErrNotFound)
}
func (m *CountryRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Country, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, fmt.Errorf("country %s: %w", id, catalog.ErrNotFound)
}
func (m *CountryRepositoryMock) Create(ctx context.Context, c *catalog.Country) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}
func (m *CountryRepositoryMock) Update(ctx context.Context, c *catalog.Country) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, c)
	}
	return nil
}
func (m *CountryRepositoryMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
func (m *CountryRepositoryMock) Reorder(ctx context.Context, ids []uuid.UUID) error {
	if m.ReorderFn != nil {
		return m.ReorderFn(ctx, ids)
	}
	return nil
}

// PackageRepositoryMock is a lightweight mock for PackageRepository
type PackageRepositoryMock struct {
	ListFn    func(ctx context.Context, f catalog.PackageFilter) ([]catalog.Package, error)
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*catalog.Package, error)
	CreateFn  func(ctx context.Context, p *catalog.Package) error
	UpdateFn  func(ctx context.Context, p *catalog.Package) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error
	ReorderFn func(ctx context.Context, ids []uuid.UUID) error
}

func (m *PackageRepositoryMock) List(ctx context.Context, f catalog.PackageFilter) ([]catalog.Package, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, nil
}
func (m *PackageRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Package, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, fmt.Errorf("package %s: %w", id, catalog.ErrNotFound)
}
func (m *PackageRepositoryMock) Create(ctx context.Context, p *catalog.Package) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}
func (m *PackageRepositoryMock) Update(ctx context.Context, p *catalog.Package) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, p)
	}
	return nil
}
func (m *PackageRepositoryMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
func (m *PackageRepositoryMock) Reorder(ctx context.Context, ids []uuid.UUID) error {
	if m.ReorderFn != nil {
		return m.ReorderFn(ctx, ids)
	}
	return nil
}

// ComboPackageRepositoryMock is a lightweight mock for ComboPackageRepository
type ComboPackageRepositoryMock struct {
	ListFn    func(ctx context.Context, f catalog.ComboPackageFilter) ([]catalog.ComboPackage, error)
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*catalog.ComboPackage, error)
	CreateFn  func(ctx context.Context, p *catalog.ComboPackage) error
	UpdateFn  func(ctx context.Context, p *catalog.ComboPackage) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error
	ReorderFn func(ctx context.Context, ids []uuid.UUID) error
}

func (m *ComboPackageRepositoryMock) List(ctx context.Context, f catalog.ComboPackageFilter) ([]catalog.ComboPackage, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, nil
}
func (m *ComboPackageRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (*catalog.ComboPackage, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, fmt.Errorf("combo package %s: %w", id, catalog.ErrNotFound)
}
func (m *ComboPackageRepositoryMock) Create(ctx context.Context, p *catalog.ComboPackage) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}
func (m *ComboPackageRepositoryMock) Update(ctx context.Context, p *catalog.ComboPackage) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, p)
	}
	return nil
}
func (m *ComboPackageRepositoryMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
func (m *ComboPackageRepositoryMock) Reorder(ctx context.Context, ids []uuid.UUID) error {
	if m.ReorderFn != nil {
		return m.ReorderFn(ctx, ids)
	}
	return nil
}

// RegionRepositoryMock is a lightweight mock for RegionRepository
type RegionRepositoryMock struct {
	ListFn    func(ctx context.Context, f catalog.RegionFilter) ([]catalog.Region, error)
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*catalog.Region, error)
	CreateFn  func(ctx context.Context, r *catalog.Region) error
	UpdateFn  func(ctx context.Context, r *catalog.Region) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error
	ReorderFn func(ctx context.Context, ids []uuid.UUID) error
}

func (m *RegionRepositoryMock) List(ctx context.Context, f catalog.RegionFilter) ([]catalog.Region, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, nil
}
func (m *RegionRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Region, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, fmt.Errorf("region %s: %w", id, catalog.ErrNotFound)
}
func (m *RegionRepositoryMock) Create(ctx context.Context, r *catalog.Region) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}
func (m *RegionRepositoryMock) Update(ctx context.Context, r *catalog.Region) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, r)
	}
	return nil
}
func (m *RegionRepositoryMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
func (m *RegionRepositoryMock) Reorder(ctx context.Context, ids []uuid.UUID) error {
	if m.ReorderFn != nil {
		return m.ReorderFn(ctx, ids)
	}
	return nil
}

// PageRepositoryMock is a lightweight mock for PageRepository
type PageRepositoryMock struct {
	GetBySlugFn func(ctx context.Context, slug string) (*catalog.Page, error)
	GetByIDFn   func(ctx context.Context, id uuid.UUID) (*catalog.Page, error)
	ListFn      func(ctx context.Context) ([]catalog.Page, error)
	CreateFn    func(ctx context.Context, p *catalog.Page) error
	UpdateFn    func(ctx context.Context, p *catalog.Page) error
	DeleteFn    func(ctx context.Context, id uuid.UUID) error
}

func (m *PageRepositoryMock) GetBySlug(ctx context.Context, slug string) (*catalog.Page, error) {
	if m.GetBySlugFn != nil {
		return m.GetBySlugFn(ctx, slug)
	}
	return nil, fmt.Errorf("page %q: %w", slug, catalog.ErrNotFound)
}
func (m *PageRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Page, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, fmt.Errorf("page %s: %w", id, catalog.ErrNotFound)
}
func (m *PageRepositoryMock) List(ctx context.Context) ([]catalog.Page, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
func (m *PageRepositoryMock) Create(ctx context.Context, p *catalog.Page) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}
func (m *PageRepositoryMock) Update(ctx context.Context, p *catalog.Page) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, p)
	}
	return nil
}
func (m *PageRepositoryMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

// FallbackProviderMock is a lightweight mock for FallbackProvider
type FallbackProviderMock struct {
	CountriesFn     func() []catalog.Country
	RegionsFn       func() []catalog.Region
	PackagesFn      func() []catalog.Package
	ComboPackagesFn func() []catalog.ComboPackage
}

func (m *FallbackProviderMock) Countries() []catalog.Country {
	if m.CountriesFn != nil {
		return m.CountriesFn()
	}
	return []catalog.Country{{Code: "tr", Status: catalog.StatusActive}}
}
func (m *FallbackProviderMock) Regions() []catalog.Region {
	if m.RegionsFn != nil {
		return m.RegionsFn()
	}
	return []catalog.Region{{Code: "europe", Status: catalog.StatusActive}}
}
func (m *FallbackProviderMock) Packages() []catalog.Package {
	if m.PackagesFn != nil {
		return m.PackagesFn()
	}
	return []catalog.Package{{CountryCode: "tr", Status: catalog.StatusActive}}
}
func (m *FallbackProviderMock) ComboPackages() []catalog.ComboPackage {
	if m.ComboPackagesFn != nil {
		return m.ComboPackagesFn()
	}
	return []catalog.ComboPackage{{Status: catalog.StatusActive}}
}

// PartnerClientMock is a lightweight mock for PartnerClient
type PartnerClientMock struct {
	EsimStatusFn        func(ctx context.Context, subscriberID string) ([]subscriber.PartnerPackage, error)
	SubscriberDetailsFn func(ctx context.Context, subscriberID string) (*subscriber.Details, error)
}

func (m *PartnerClientMock) EsimStatus(ctx context.Context, subscriberID string) ([]subscriber.PartnerPackage, error) {
	if m.EsimStatusFn != nil {
		return m.EsimStatusFn(ctx, subscriberID)
	}
	return nil, fmt.Errorf("esim status unavailable")
}
func (m *PartnerClientMock) SubscriberDetails(ctx context.Context, subscriberID string) (*subscriber.Details, error) {
	if m.SubscriberDetailsFn != nil {
		return m.SubscriberDetailsFn(ctx, subscriberID)
	}
	return nil, fmt.Errorf("subscriber details unavailable")
}

// EmailServiceMock is a lightweight mock for EmailService
type EmailServiceMock struct {
	SendContactMessageFn func(ctx context.Context, name, replyTo, message string) error
}

func (m *EmailServiceMock) SendContactMessage(ctx context.Context, name, replyTo, message string) error {
	if m.SendContactMessageFn != nil {
		return m.SendContactMessageFn(ctx, name, replyTo, message)
	}
	return nil
}

// LoaderInvalidatorMock records which loaders were invalidated.
type LoaderInvalidatorMock struct {
	InvalidateFn func(ctx context.Context, loaders ...string)
	Calls        [][]string
}

func (m *LoaderInvalidatorMock) Invalidate(ctx context.Context, loaders ...string) {
	m.Calls = append(m.Calls, loaders)
	if m.InvalidateFn != nil {
		m.InvalidateFn(ctx, loaders...)
	}
}
