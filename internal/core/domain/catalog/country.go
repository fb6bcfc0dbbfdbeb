package catalog

import (
	"time"

	"github.com/google/uuid"
)

type Country struct {
	ID             uuid.UUID              `json:"id" db:"id"`
	Code           string                 `json:"code" db:"code"`
	Region         string                 `json:"region" db:"region"`
	Status         Status                 `json:"status" db:"status"`
	TopDestination bool                   `json:"top_destination" db:"top_destination"`
	CoverImage     string                 `json:"cover_image" db:"cover_image"`
	SortOrder      int                    `json:"sort_order" db:"sort_order"`
	Translations   map[string]Translation `json:"translations"`
	Features       []string               `json:"features"`
	Networks       []string               `json:"networks"`
	Languages      []string               `json:"languages"`
	CreatedAt      time.Time              `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at" db:"updated_at"`
}

// Normalize coerces a raw store row into the canonical shape: array fields
// are never nil, the translations map always exists, and a missing cover
// image is filled from the static per-code table.
func (c *Country) Normalize() {
	if c.Translations == nil {
		c.Translations = map[string]Translation{}
	}
	if c.Features == nil {
		c.Features = []string{}
	}
	if c.Networks == nil {
		c.Networks = []string{}
	}
	if c.Languages == nil {
		c.Languages = []string{}
	}
	if c.CoverImage == "" {
		c.CoverImage = CoverImageFor(c.Code)
	}
}

// CountryFilter narrows a country list load. Zero values mean "no filter".
type CountryFilter struct {
	Status         Status   `json:"status,omitempty"`
	Region         string   `json:"region,omitempty"`
	TopDestination *bool    `json:"top_destination,omitempty"`
	Codes          []string `json:"codes,omitempty"`
}

type CreateCountryRequest struct {
	Code           string                 `json:"code" validate:"required"`
	Region         string                 `json:"region" validate:"required"`
	Status         Status                 `json:"status"`
	TopDestination bool                   `json:"top_destination"`
	CoverImage     string                 `json:"cover_image"`
	Translations   map[string]Translation `json:"translations"`
	Features       []string               `json:"features"`
	Networks       []string               `json:"networks"`
	Languages      []string               `json:"languages"`
}

type UpdateCountryRequest struct {
	Region         *string                `json:"region,omitempty"`
	Status         *Status                `json:"status,omitempty"`
	TopDestination *bool                  `json:"top_destination,omitempty"`
	CoverImage     *string                `json:"cover_image,omitempty"`
	Translations   map[string]Translation `json:"translations,omitempty"`
	Features       []string               `json:"features,omitempty"`
	Networks       []string               `json:"networks,omitempty"`
	Languages      []string               `json:"languages,omitempty"`
}
