// Package fallback holds the static substitute catalog served when the
// content store is unreachable. The fixtures go through the same Normalize
// path as live rows, so the only way downstream code can tell them apart is
// the loader's error flag.
package fallback

import (
	"github.com/google/uuid"

	"github.com/roamstone/esim-portal/internal/core/domain/catalog"
	"github.com/roamstone/esim-portal/internal/core/ports"
)

// StaticProvider implements ports.FallbackProvider with hand-authored data.
type StaticProvider struct{}

func NewStaticProvider() ports.FallbackProvider {
	return &StaticProvider{}
}

func (p *StaticProvider) Countries() []catalog.Country {
	countries := []catalog.Country{
		{
			ID:             uuid.MustParse("0a3a52e4-7a38-4bd0-8a0e-0b1f2b6a5a01"),
			Code:           "tr",
			Region:         "europe",
			Status:         catalog.StatusActive,
			TopDestination: true,
			Translations: map[string]catalog.Translation{
				"en": {Name: "Turkey", Description: "Stay connected across Istanbul and beyond."},
				"tr": {Name: "Türkiye", Description: "İstanbul ve ötesinde bağlantıda kalın."},
			},
			Features:  []string{"5G", "Hotspot", "Instant activation"},
			Networks:  []string{"Turkcell", "Vodafone TR"},
			Languages: []string{"tr", "en"},
		},
		{
			ID:             uuid.MustParse("0a3a52e4-7a38-4bd0-8a0e-0b1f2b6a5a02"),
			Code:           "us",
			Region:         "americas",
			Status:         catalog.StatusActive,
			TopDestination: true,
			Translations: map[string]catalog.Translation{
				"en": {Name: "United States", Description: "Coast-to-coast coverage on major carriers."},
			},
			Features:  []string{"5G", "Hotspot"},
			Networks:  []string{"T-Mobile", "AT&T"},
			Languages: []string{"en"},
		},
		{
			ID:     uuid.MustParse("0a3a52e4-7a38-4bd0-8a0e-0b1f2b6a5a03"),
			Code:   "gb",
			Region: "europe",
			Status: catalog.StatusActive,
			Translations: map[string]catalog.Translation{
				"en": {Name: "United Kingdom", Description: "Reliable data throughout the UK."},
			},
			Features:  []string{"5G", "Hotspot"},
			Networks:  []string{"EE", "O2"},
			Languages: []string{"en"},
		},
		{
			ID:     uuid.MustParse("0a3a52e4-7a38-4bd0-8a0e-0b1f2b6a5a04"),
			Code:   "jp",
			Region: "asia",
			Status: catalog.StatusActive,
			Translations: map[string]catalog.Translation{
				"en": {Name: "Japan", Description: "Fast data from Tokyo to Okinawa."},
				"ja": {Name: "日本", Description: "東京から沖縄まで高速データ通信。"},
			},
			Features:  []string{"5G", "Unlimited options"},
			Networks:  []string{"NTT Docomo", "SoftBank"},
			Languages: []string{"ja", "en"},
		},
	}
	for i := range countries {
		countries[i].SortOrder = i
		countries[i].Normalize()
	}
	return countries
}

func (p *StaticProvider) Regions() []catalog.Region {
	regions := []catalog.Region{
		{
			ID:     uuid.MustParse("1b4b63f5-8b49-4ce1-9b1f-1c2a3b7c6b01"),
			Code:   "europe",
			Status: catalog.StatusActive,
			Translations: map[string]catalog.Translation{
				"en": {Name: "Europe", Description: "One plan for 30+ European countries."},
			},
			Countries: []string{"tr", "gb", "de", "fr", "es", "it"},
		},
		{
			ID:     uuid.MustParse("1b4b63f5-8b49-4ce1-9b1f-1c2a3b7c6b02"),
			Code:   "asia",
			Status: catalog.StatusActive,
			Translations: map[string]catalog.Translation{
				"en": {Name: "Asia", Description: "Travel light across Asia with a single eSIM."},
			},
			Countries: []string{"jp", "th", "sg", "kr"},
		},
	}
	for i := range regions {
		regions[i].SortOrder = i
		regions[i].Normalize()
	}
	return regions
}

func (p *StaticProvider) Packages() []catalog.Package {
	packages := []catalog.Package{
		{
			ID:           uuid.MustParse("2c5c74a6-9c5a-4df2-ac2a-2d3b4c8d7c01"),
			CountryCode:  "tr",
			Status:       catalog.StatusActive,
			DataAmount:   "5GB",
			ValidityDays: 30,
			PriceCents:   1199,
			Currency:     "USD",
			Translations: map[string]catalog.Translation{
				"en": {Name: "Turkey 5GB", Description: "5GB of data, valid 30 days."},
			},
			Features: []string{"Hotspot", "Top-up available"},
		},
		{
			ID:           uuid.MustParse("2c5c74a6-9c5a-4df2-ac2a-2d3b4c8d7c02"),
			CountryCode:  "us",
			Status:       catalog.StatusActive,
			DataAmount:   "10GB",
			ValidityDays: 30,
			PriceCents:   2499,
			Currency:     "USD",
			Translations: map[string]catalog.Translation{
				"en": {Name: "USA 10GB", Description: "10GB of data, valid 30 days."},
			},
			Features: []string{"Hotspot"},
		},
	}
	for i := range packages {
		packages[i].SortOrder = i
		packages[i].Normalize()
	}
	return packages
}

func (p *StaticProvider) ComboPackages() []catalog.ComboPackage {
	packages := []catalog.ComboPackage{
		{
			ID:           uuid.MustParse("3d6d85b7-ad6b-4ea3-bd3b-3e4c5d9e8d01"),
			Status:       catalog.StatusActive,
			DataAmount:   "10GB",
			ValidityDays: 30,
			PriceCents:   2999,
			Currency:     "USD",
			Countries:    []string{"tr", "gb", "de", "fr"},
			Translations: map[string]catalog.Translation{
				"en": {Name: "Europe Combo 10GB", Description: "One eSIM for your whole European trip."},
			},
			Features: []string{"Hotspot", "Multi-country"},
		},
	}
	for i := range packages {
		packages[i].SortOrder = i
		packages[i].Normalize()
	}
	return packages
}
