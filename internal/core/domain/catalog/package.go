package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Package is a single-country data plan.
type Package struct {
	ID           uuid.UUID              `json:"id" db:"id"`
	CountryCode  string                 `json:"country_code" db:"country_code"`
	Status       Status                 `json:"status" db:"status"`
	DataAmount   string                 `json:"data_amount" db:"data_amount"`
	ValidityDays int                    `json:"validity_days" db:"validity_days"`
	PriceCents   int64                  `json:"price_cents" db:"price_cents"`
	Currency     string                 `json:"currency" db:"currency"`
	SortOrder    int                    `json:"sort_order" db:"sort_order"`
	Translations map[string]Translation `json:"translations"`
	Features     []string               `json:"features"`
	Networks     []string               `json:"networks"`
	CreatedAt    time.Time              `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at" db:"updated_at"`
}

func (p *Package) Normalize() {
	if p.Translations == nil {
		p.Translations = map[string]Translation{}
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	if p.Networks == nil {
		p.Networks = []string{}
	}
	if p.Currency == "" {
		p.Currency = "USD"
	}
}

// ComboPackage is a multi-country data plan; Countries lists its coverage.
type ComboPackage struct {
	ID           uuid.UUID              `json:"id" db:"id"`
	Status       Status                 `json:"status" db:"status"`
	DataAmount   string                 `json:"data_amount" db:"data_amount"`
	ValidityDays int                    `json:"validity_days" db:"validity_days"`
	PriceCents   int64                  `json:"price_cents" db:"price_cents"`
	Currency     string                 `json:"currency" db:"currency"`
	SortOrder    int                    `json:"sort_order" db:"sort_order"`
	Countries    []string               `json:"countries"`
	Translations map[string]Translation `json:"translations"`
	Features     []string               `json:"features"`
	CreatedAt    time.Time              `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at" db:"updated_at"`
}

func (p *ComboPackage) Normalize() {
	if p.Translations == nil {
		p.Translations = map[string]Translation{}
	}
	if p.Countries == nil {
		p.Countries = []string{}
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	if p.Currency == "" {
		p.Currency = "USD"
	}
}

type PackageFilter struct {
	CountryCode string `json:"country_code,omitempty"`
	Status      Status `json:"status,omitempty"`
}

type ComboPackageFilter struct {
	Status  Status `json:"status,omitempty"`
	Country string `json:"country,omitempty"`
}

type CreatePackageRequest struct {
	CountryCode  string                 `json:"country_code" validate:"required"`
	Status       Status                 `json:"status"`
	DataAmount   string                 `json:"data_amount" validate:"required"`
	ValidityDays int                    `json:"validity_days" validate:"required"`
	PriceCents   int64                  `json:"price_cents" validate:"required"`
	Currency     string                 `json:"currency"`
	Translations map[string]Translation `json:"translations"`
	Features     []string               `json:"features"`
	Networks     []string               `json:"networks"`
}

type UpdatePackageRequest struct {
	Status       *Status                `json:"status,omitempty"`
	DataAmount   *string                `json:"data_amount,omitempty"`
	ValidityDays *int                   `json:"validity_days,omitempty"`
	PriceCents   *int64                 `json:"price_cents,omitempty"`
	Currency     *string                `json:"currency,omitempty"`
	Translations map[string]Translation `json:"translations,omitempty"`
	Features     []string               `json:"features,omitempty"`
	Networks     []string               `json:"networks,omitempty"`
}

type CreateComboPackageRequest struct {
	Status       Status                 `json:"status"`
	DataAmount   string                 `json:"data_amount" validate:"required"`
	ValidityDays int                    `json:"validity_days" validate:"required"`
	PriceCents   int64                  `json:"price_cents" validate:"required"`
	Currency     string                 `json:"currency"`
	Countries    []string               `json:"countries" validate:"required"`
	Translations map[string]Translation `json:"translations"`
	Features     []string               `json:"features"`
}

type UpdateComboPackageRequest struct {
	Status       *Status                `json:"status,omitempty"`
	DataAmount   *string                `json:"data_amount,omitempty"`
	ValidityDays *int                   `json:"validity_days,omitempty"`
	PriceCents   *int64                 `json:"price_cents,omitempty"`
	Currency     *string                `json:"currency,omitempty"`
	Countries    []string               `json:"countries,omitempty"`
	Translations map[string]Translation `json:"translations,omitempty"`
	Features     []string               `json:"features,omitempty"`
}
