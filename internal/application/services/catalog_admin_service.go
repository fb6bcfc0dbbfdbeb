package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/roamstone/esim-portal/internal/core/domain/catalog"
	"github.com/roamstone/esim-portal/internal/core/ports"
)

// CatalogAdminService is the write side of the catalog: each mutation passes
// straight through to the content store and, on success, invalidates the
// loaders whose cached lists the write made stale. Reads issued after a
// successful write therefore always see the written state once the store
// query completes.
type CatalogAdminService struct {
	countries   ports.CountryRepository
	packages    ports.PackageRepository
	combos      ports.ComboPackageRepository
	regions     ports.RegionRepository
	pages       ports.PageRepository
	invalidator ports.LoaderInvalidator
	logger      *logrus.Logger
}

type CatalogAdminDeps struct {
	Countries   ports.CountryRepository
	Packages    ports.PackageRepository
	Combos      ports.ComboPackageRepository
	Regions     ports.RegionRepository
	Pages       ports.PageRepository
	Invalidator ports.LoaderInvalidator
}

func NewCatalogAdminService(deps CatalogAdminDeps, logger *logrus.Logger) ports.CatalogAdminService {
	return &CatalogAdminService{
		countries:   deps.Countries,
		packages:    deps.Packages,
		combos:      deps.Combos,
		regions:     deps.Regions,
		pages:       deps.Pages,
		invalidator: deps.Invalidator,
		logger:      logger,
	}
}

func (s *CatalogAdminService) invalidate(ctx context.Context, loaders ...string) {
	if s.invalidator != nil {
		s.invalidator.Invalidate(ctx, loaders...)
	}
}

// Countries

func (s *CatalogAdminService) CreateCountry(ctx context.Context, req *catalog.CreateCountryRequest) (*catalog.Country, error) {
	if req.Code == "" {
		return nil, fmt.Errorf("country code is required")
	}
	if existing, err := s.countries.GetByCode(ctx, req.Code); err == nil && existing != nil {
		return nil, fmt.Errorf("country code %q is already taken", req.Code)
	}

	status := req.Status
	if status == "" {
		status = catalog.StatusActive
	}
	c := &catalog.Country{
		ID:             uuid.New(),
		Code:           req.Code,
		Region:         req.Region,
		Status:         status,
		TopDestination: req.TopDestination,
		CoverImage:     req.CoverImage,
		Translations:   req.Translations,
		Features:       req.Features,
		Networks:       req.Networks,
		Languages:      req.Languages,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	c.Normalize()

	if err := s.countries.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create country: %w", err)
	}
	s.invalidate(ctx, catalog.LoaderCountries, catalog.LoaderCountry)
	return c, nil
}

func (s *CatalogAdminService) UpdateCountry(ctx context.Context, id uuid.UUID, req *catalog.UpdateCountryRequest) (*catalog.Country, error) {
	c, err := s.countries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Region != nil {
		c.Region = *req.Region
	}
	if req.Status != nil {
		c.Status = *req.Status
	}
	if req.TopDestination != nil {
		c.TopDestination = *req.TopDestination
	}
	if req.CoverImage != nil {
		c.CoverImage = *req.CoverImage
	}
	if req.Translations != nil {
		c.Translations = req.Translations
	}
	if req.Features != nil {
		c.Features = req.Features
	}
	if req.Networks != nil {
		c.Networks = req.Networks
	}
	if req.Languages != nil {
		c.Languages = req.Languages
	}
	c.Normalize()
	c.UpdatedAt = time.Now()

	if err := s.countries.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to update country: %w", err)
	}
	s.invalidate(ctx, catalog.LoaderCountries, catalog.LoaderCountry)
	return c, nil
}

func (s *CatalogAdminService) DeleteCountry(ctx context.Context, id uuid.UUID) error {
	if err := s.countries.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, catalog.LoaderCountries, catalog.LoaderCountry, catalog.LoaderPackages)
	return nil
}

func (s *CatalogAdminService) ReorderCountries(ctx context.Context, ids []uuid.UUID) error {
	if err := s.countries.Reorder(ctx, ids); err != nil {
		return err
	}
	s.invalidate(ctx, catalog.LoaderCountries)
	return nil
}

// Packages

func (s *CatalogAdminService) CreatePackage(ctx context.Context, req *catalog.CreatePackageRequest) (*catalog.Package, error) {
	if req.CountryCode == "" {
		return nil, fmt.Errorf("country code is required")
	}
	if req.DataAmount == "" {
		return nil, fmt.Errorf("data amount is required")
	}

	status := req.Status
	if status == "" {
		status = catalog.StatusActive
	}
	p := &catalog.Package{
		ID:           uuid.New(),
		CountryCode:  req.CountryCode,
		Status:       status,
		DataAmount:   req.DataAmount,
		ValidityDays: req.ValidityDays,
		PriceCents:   req.PriceCents,
		Currency:     req.Currency,
		Translations: req.Translations,
		Features:     req.Features,
		Networks:     req.Networks,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	p.Normalize()

	if err := s.packages.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create package: %w", err)
	}
	s.invalidate(ctx, catalog.LoaderPackages)
	return p, nil
}

func (s *CatalogAdminService) UpdatePackage(ctx context.Context, id uuid.UUID, req *catalog.UpdatePackageRequest) (*catalog.Package, error) {
	p, err := s.packages.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.DataAmount != nil {
		p.DataAmount = *req.DataAmount
	}
	if req.ValidityDays != nil {
		p.ValidityDays = *req.ValidityDays
	}
	if req.PriceCents != nil {
		p.PriceCents = *req.PriceCents
	}
	if req.Currency != nil {
		p.Currency = *req.Currency
	}
	if req.Translations != nil {
		p.Translations = req.Translations
	}
	if req.Features != nil {
		p.Features = req.Features
	}
	if req.Networks != nil {
		p.Networks = req.Networks
	}
	p.Normalize()
	p.UpdatedAt = time.Now()

	if err := s.packages.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update package: %w", err)
	}
	s.invalidate(ctx, catalog.LoaderPackages)
	return p, nil
}

func (s *CatalogAdminService) DeletePackage(ctx context.Context, id uuid.UUID) error {
	if err := s.packages.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, catalog.LoaderPackages)
	return nil
}

func (s *CatalogAdminService) ReorderPackages(ctx context.Context, ids []uuid.UUID) error {
	if err := s.packages.Reorder(ctx, ids); err != nil {
		return err
	}
	s.invalidate(ctx, catalog.LoaderPackages)
	return nil
}

// Combo packages

func (s *CatalogAdminService) CreateComboPackage(ctx context.Context, req *catalog.CreateComboPackageRequest) (*catalog.ComboPackage, error) {
	if req.DataAmount == "" {
		return nil, fmt.Errorf("data amount is required")
	}
	if len(req.Countries) == 0 {
		return nil, fmt.Errorf("combo package needs at least one country")
	}

	status := req.Status
	if status == "" {
		status = catalog.StatusActive
	}
	p := &catalog.ComboPackage{
		ID:           uuid.New(),
		Status:       status,
		DataAmount:   req.DataAmount,
		ValidityDays: req.ValidityDays,
		PriceCents:   req.PriceCents,
		Currency:     req.Currency,
		Countries:    req.Countries,
		Translations: req.Translations,
		Features:     req.Features,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	p.Normalize()

	if err := s.combos.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create combo package: %w", err)
	}
	s.invalidate(ctx, catalog.LoaderComboPackages)
	return p, nil
}

func (s *CatalogAdminService) UpdateComboPackage(ctx context.Context, id uuid.UUID, req *catalog.UpdateComboPackageRequest) (*catalog.ComboPackage, error) {
	p, err := s.combos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.DataAmount != nil {
		p.DataAmount = *req.DataAmount
	}
	if req.ValidityDays != nil {
		p.ValidityDays = *req.ValidityDays
	}
	if req.PriceCents != nil {
		p.PriceCents = *req.PriceCents
	}
	if req.Currency != nil {
		p.Currency = *req.Currency
	}
	if req.Countries != nil {
		p.Countries = req.Countries
	}
	if req.Translations != nil {
		p.Translations = req.Translations
	}
	if req.Features != nil {
		p.Features = req.Features
	}
	p.Normalize()
	p.UpdatedAt = time.Now()

	if err := s.combos.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update combo package: %w", err)
	}
	s.invalidate(ctx, catalog.LoaderComboPackages)
	return p, nil
}

func (s *CatalogAdminService) DeleteComboPackage(ctx context.Context, id uuid.UUID) error {
	if err := s.combos.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, catalog.LoaderComboPackages)
	return nil
}

func (s *CatalogAdminService) ReorderComboPackages(ctx context.Context, ids []uuid.UUID) error {
	if err := s.combos.Reorder(ctx, ids); err != nil {
		return err
	}
	s.invalidate(ctx, catalog.LoaderComboPackages)
	return nil
}

// Regions

func (s *CatalogAdminService) CreateRegion(ctx context.Context, req *catalog.CreateRegionRequest) (*catalog.Region, error) {
	if req.Code == "" {
		return nil, fmt.Errorf("region code is required")
	}

	status := req.Status
	if status == "" {
		status = catalog.StatusActive
	}
	r := &catalog.Region{
		ID:           uuid.New(),
		Code:         req.Code,
		Status:       status,
		CoverImage:   req.CoverImage,
		Translations: req.Translations,
		Countries:    req.Countries,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	r.Normalize()

	if err := s.regions.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to create region: %w", err)
	}
	s.invalidate(ctx, catalog.LoaderRegions)
	return r, nil
}

func (s *CatalogAdminService) UpdateRegion(ctx context.Context, id uuid.UUID, req *catalog.UpdateRegionRequest) (*catalog.Region, error) {
	r, err := s.regions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		r.Status = *req.Status
	}
	if req.CoverImage != nil {
		r.CoverImage = *req.CoverImage
	}
	if req.Translations != nil {
		r.Translations = req.Translations
	}
	if req.Countries != nil {
		r.Countries = req.Countries
	}
	r.Normalize()
	r.UpdatedAt = time.Now()

	if err := s.regions.Update(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to update region: %w", err)
	}
	s.invalidate(ctx, catalog.LoaderRegions)
	return r, nil
}

func (s *CatalogAdminService) DeleteRegion(ctx context.Context, id uuid.UUID) error {
	if err := s.regions.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, catalog.LoaderRegions)
	return nil
}

func (s *CatalogAdminService) ReorderRegions(ctx context.Context, ids []uuid.UUID) error {
	if err := s.regions.Reorder(ctx, ids); err != nil {
		return err
	}
	s.invalidate(ctx, catalog.LoaderRegions)
	return nil
}

// Pages

func (s *CatalogAdminService) CreatePage(ctx context.Context, req *catalog.CreatePageRequest) (*catalog.Page, error) {
	if req.Slug == "" {
		return nil, fmt.Errorf("page slug is required")
	}
	if existing, err := s.pages.GetBySlug(ctx, req.Slug); err == nil && existing != nil {
		return nil, fmt.Errorf("page slug %q is already taken", req.Slug)
	}

	status := req.Status
	if status == "" {
		status = catalog.PageStatusDraft
	}
	p := &catalog.Page{
		ID:           uuid.New(),
		Slug:         req.Slug,
		Status:       status,
		Translations: req.Translations,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	p.Normalize()

	if err := s.pages.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	s.invalidate(ctx, catalog.LoaderPages)
	return p, nil
}

func (s *CatalogAdminService) UpdatePage(ctx context.Context, id uuid.UUID, req *catalog.UpdatePageRequest) (*catalog.Page, error) {
	p, err := s.pages.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.Translations != nil {
		p.Translations = req.Translations
	}
	p.Normalize()
	p.UpdatedAt = time.Now()

	if err := s.pages.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update page: %w", err)
	}
	s.invalidate(ctx, catalog.LoaderPages)
	return p, nil
}

func (s *CatalogAdminService) DeletePage(ctx context.Context, id uuid.UUID) error {
	if err := s.pages.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, catalog.LoaderPages)
	return nil
}
