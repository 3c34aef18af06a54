package usecase

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
	"github.com/shopfront/backend/internal/domain"
)

var (
	// A bare ASIN or ISBN-10
	asinPattern = regexp.MustCompile(`^[A-Za-z0-9]{10}$`)

	// ASIN inside an Amazon product URL: /dp/X, /gp/product/X, /gp/aw/d/X, /ASIN/X
	asinURLPattern = regexp.MustCompile(`(?i)/(?:dp|gp/product|gp/aw/d|o/ASIN|exec/obidos/ASIN)/([A-Z0-9]{10})(?:[/?#]|$)`)
)

// searchIndexes are the PA-API search indexes, keyed by lower case name
var searchIndexes = lo.SliceToMap([]string{
	"All", "AmazonVideo", "Apparel", "Appliances", "ArtsAndCrafts", "Automotive",
	"Baby", "Beauty", "Books", "Classical", "Collectibles", "Computers",
	"CreditCards", "DigitalMusic", "Electronics", "EverythingElse", "Fashion",
	"FashionBaby", "FashionMen", "FashionWomen", "ForeignBooks", "GardenAndOutdoor",
	"GiftCards", "GroceryAndGourmetFood", "Handmade", "HealthPersonalCare",
	"Hobbies", "HomeAndKitchen", "Industrial", "Jewelry", "KindleStore",
	"LocalServices", "Luggage", "LuxuryBeauty", "Magazines", "MobileApps",
	"MoviesAndTV", "Music", "MusicalInstruments", "OfficeProducts", "PetSupplies",
	"Photo", "Shoes", "Software", "SportsAndOutdoors", "ToolsAndHomeImprovement",
	"Toys", "VHS", "VideoGames", "Watches",
}, func(name string) (string, string) {
	return strings.ToLower(name), name
})

// NormalizeKeywords trims keywords and collapses runs of whitespace,
// including full-width spaces, into a single space
func NormalizeKeywords(keywords string) string {
	return strings.Join(strings.Fields(keywords), " ")
}

// NormalizeSearchIndex returns the canonical spelling of a search index.
// Empty input means "All"; unknown names are passed through trimmed.
func NormalizeSearchIndex(index string) string {
	index = strings.TrimSpace(index)
	if index == "" {
		return domain.DefaultSearchIndex
	}
	if canonical, ok := searchIndexes[strings.ToLower(index)]; ok {
		return canonical
	}
	return index
}

// ExtractASIN returns the ASIN in s, which may be a bare ASIN or an Amazon product URL
func ExtractASIN(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if asinPattern.MatchString(s) {
		return strings.ToUpper(s), true
	}
	if m := asinURLPattern.FindStringSubmatch(s); m != nil {
		return strings.ToUpper(m[1]), true
	}
	return "", false
}

// ExtractASINs extracts ASINs from ids, dropping unusable entries and duplicates while keeping order
func ExtractASINs(ids []string) []string {
	return lo.Uniq(lo.FilterMap(ids, func(id string, _ int) (string, bool) {
		return ExtractASIN(id)
	}))
}
