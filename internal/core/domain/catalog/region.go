package catalog

import (
	"time"

	"github.com/google/uuid"
)

type Region struct {
	ID           uuid.UUID              `json:"id" db:"id"`
	Code         string                 `json:"code" db:"code"`
	Status       Status                 `json:"status" db:"status"`
	CoverImage   string                 `json:"cover_image" db:"cover_image"`
	SortOrder    int                    `json:"sort_order" db:"sort_order"`
	Translations map[string]Translation `json:"translations"`
	Countries    []string               `json:"countries"`
	CreatedAt    time.Time              `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at" db:"updated_at"`
}

func (r *Region) Normalize() {
	if r.Translations == nil {
		r.Translations = map[string]Translation{}
	}
	if r.Countries == nil {
		r.Countries = []string{}
	}
	if r.CoverImage == "" {
		r.CoverImage = CoverImageFor(r.Code)
	}
}

type RegionFilter struct {
	Status Status `json:"status,omitempty"`
}

type CreateRegionRequest struct {
	Code         string                 `json:"code" validate:"required"`
	Status       Status                 `json:"status"`
	CoverImage   string                 `json:"cover_image"`
	Translations map[string]Translation `json:"translations"`
	Countries    []string               `json:"countries"`
}

type UpdateRegionRequest struct {
	Status       *Status                `json:"status,omitempty"`
	CoverImage   *string                `json:"cover_image,omitempty"`
	Translations map[string]Translation `json:"translations,omitempty"`
	Countries    []string               `json:"countries,omitempty"`
}
