package paapi

// SearchResources are requested for keyword searches
var SearchResources = []string{
	"ItemInfo.Title",
	"ItemInfo.ByLineInfo",
	"ItemInfo.Features",
	"Images.Primary.Large",
	"Offers.Listings.Price",
	"Offers.Listings.DeliveryInfo.IsPrimeEligible",
}

// LookupResources are requested for ASIN lookups
var LookupResources = []string{
	"ItemInfo.Title",
	"ItemInfo.ByLineInfo",
	"ItemInfo.Features",
	"ItemInfo.ContentInfo",
	"ItemInfo.ProductInfo",
	"ItemInfo.TechnicalInfo",
	"Images.Primary.Large",
	"Images.Variants.Large",
	"Offers.Listings.Price",
	"Offers.Listings.DeliveryInfo.IsPrimeEligible",
}

// BrowseNodeResources are requested for browse node lookups
var BrowseNodeResources = []string{
	"BrowseNodes.Ancestor",
	"BrowseNodes.Children",
}

// MaxItemIDsPerRequest is the GetItems limit on ItemIds
const MaxItemIDsPerRequest = 10

// MaxSearchItemCount is the SearchItems limit on ItemCount
const MaxSearchItemCount = 10
