package catalog

// Static cover-image fallback table consulted during normalization when a
// stored entity has no cover image of its own.
var coverImages = map[string]string{
	"tr":     "https://images.unsplash.com/photo-1524231757912-21f4fe3a7200?w=1200",
	"us":     "https://images.unsplash.com/photo-1485871981521-5b1fd3805eee?w=1200",
	"gb":     "https://images.unsplash.com/photo-1513635269975-59663e0ac1ad?w=1200",
	"de":     "https://images.unsplash.com/photo-1467269204594-9661b134dd2b?w=1200",
	"fr":     "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?w=1200",
	"es":     "https://images.unsplash.com/photo-1539037116277-4db20889f2d4?w=1200",
	"it":     "https://images.unsplash.com/photo-1552832230-c0197dd311b5?w=1200",
	"jp":     "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?w=1200",
	"th":     "https://images.unsplash.com/photo-1506665531195-3566af2b4dfa?w=1200",
	"ae":     "https://images.unsplash.com/photo-1512453979798-5ea266f8880c?w=1200",
	"europe": "https://images.unsplash.com/photo-1471874276752-65e2d717604a?w=1200",
	"asia":   "https://images.unsplash.com/photo-1535139262971-c51845709a48?w=1200",
}

const defaultCoverImage = "https://images.unsplash.com/photo-1436491865332-7a61a109cc05?w=1200"

// CoverImageFor resolves the cover image for a country or region code,
// falling through to a generic travel placeholder.
func CoverImageFor(code string) string {
	if url, ok := coverImages[code]; ok {
		return url
	}
	return defaultCoverImage
}
