// Package catalog holds the content entities the portal renders: countries,
// regions, packages, combo packages and CMS pages. The remote content store
// owns canonical state; the service layer holds a time-bounded read-through
// copy, so every entity carries a Normalize method that guarantees the shape
// downstream code relies on (array fields materialized, cover images present).
package catalog

import "errors"

// ErrNotFound marks a single-entity lookup miss, as opposed to a transport
// failure reaching the content store.
var ErrNotFound = errors.New("not found")

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type PageStatus string

const (
	PageStatusDraft     PageStatus = "draft"
	PageStatusPublished PageStatus = "published"
	PageStatusArchived  PageStatus = "archived"
)

// Translation is one language's rendering of an entity's text fields,
// keyed by language code in the entity's Translations map.
type Translation struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Loader names. They prefix cache fingerprints and identify which loader's
// entries a mutation invalidates.
const (
	LoaderCountries     = "countries"
	LoaderCountry       = "country"
	LoaderPackages      = "packages"
	LoaderComboPackages = "combo-packages"
	LoaderRegions       = "regions"
	LoaderPages         = "pages"
)
