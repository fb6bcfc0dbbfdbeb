package catalog

import "testing"

func TestCountryNormalizeMaterializesArrays(t *testing.T) {
	c := Country{Code: "xx"}
	c.Normalize()

	if c.Features == nil || c.Networks == nil || c.Languages == nil {
		t.Fatal("array fields must be materialized, not nil")
	}
	if len(c.Features) != 0 {
		t.Errorf("expected empty features, got %v", c.Features)
	}
	if c.Translations == nil {
		t.Fatal("translations map must exist")
	}
	if c.CoverImage != defaultCoverImage {
		t.Errorf("unknown code should get the generic placeholder, got %q", c.CoverImage)
	}
}

func TestCountryNormalizeKeepsExistingValues(t *testing.T) {
	c := Country{Code: "tr", CoverImage: "https://cdn.example.com/tr.jpg", Features: []string{"5G"}}
	c.Normalize()

	if c.CoverImage != "https://cdn.example.com/tr.jpg" {
		t.Error("stored cover image must not be overwritten")
	}
	if len(c.Features) != 1 || c.Features[0] != "5G" {
		t.Error("existing features must survive normalization")
	}
}

func TestCoverImageFor(t *testing.T) {
	if CoverImageFor("tr") == defaultCoverImage {
		t.Error("known code should resolve from the table")
	}
	if CoverImageFor("zz") != defaultCoverImage {
		t.Error("unknown code should fall through to the placeholder")
	}
}

func TestComboPackageNormalize(t *testing.T) {
	p := ComboPackage{}
	p.Normalize()
	if p.Countries == nil || p.Features == nil {
		t.Fatal("combo package arrays must be materialized")
	}
	if p.Currency != "USD" {
		t.Errorf("default currency = %q, want USD", p.Currency)
	}
}

func TestRegionNormalize(t *testing.T) {
	r := Region{Code: "europe"}
	r.Normalize()
	if r.Countries == nil {
		t.Fatal("region countries must be materialized")
	}
	if r.CoverImage == "" {
		t.Error("region cover image must be filled from the table")
	}
}
