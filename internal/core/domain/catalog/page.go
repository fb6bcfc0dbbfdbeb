package catalog

import (
	"time"

	"github.com/google/uuid"
)

// PageTranslation carries one language's title and body for a CMS page.
type PageTranslation struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Page is a slug-addressed content page (about, FAQ, terms and so on).
type Page struct {
	ID           uuid.UUID                  `json:"id" db:"id"`
	Slug         string                     `json:"slug" db:"slug"`
	Status       PageStatus                 `json:"status" db:"status"`
	Translations map[string]PageTranslation `json:"translations"`
	CreatedAt    time.Time                  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time                  `json:"updated_at" db:"updated_at"`
}

func (p *Page) Normalize() {
	if p.Translations == nil {
		p.Translations = map[string]PageTranslation{}
	}
}

type CreatePageRequest struct {
	Slug         string                     `json:"slug" validate:"required"`
	Status       PageStatus                 `json:"status"`
	Translations map[string]PageTranslation `json:"translations"`
}

type UpdatePageRequest struct {
	Status       *PageStatus                `json:"status,omitempty"`
	Translations map[string]PageTranslation `json:"translations,omitempty"`
}
