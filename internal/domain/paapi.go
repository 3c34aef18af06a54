package domain

import "github.com/shopspring/decimal"

// Product Advertising API 5.0 payloads. Optional containers are pointers so an
// absent block can be told apart from an empty one.

// PartnerTypeAssociates is the only partner type PA-API accepts
const PartnerTypeAssociates = "Associates"

// SearchItemsRequest is the body of a SearchItems call
type SearchItemsRequest struct {
	Keywords    string   `json:"Keywords"`
	SearchIndex string   `json:"SearchIndex,omitempty"`
	ItemCount   int      `json:"ItemCount,omitempty"`
	Resources   []string `json:"Resources,omitempty"`
	PartnerTag  string   `json:"PartnerTag"`
	PartnerType string   `json:"PartnerType"`
	Marketplace string   `json:"Marketplace,omitempty"`
}

// GetItemsRequest is the body of a GetItems call
type GetItemsRequest struct {
	ItemIDs     []string `json:"ItemIds"`
	ItemIDType  string   `json:"ItemIdType,omitempty"`
	Resources   []string `json:"Resources,omitempty"`
	PartnerTag  string   `json:"PartnerTag"`
	PartnerType string   `json:"PartnerType"`
	Marketplace string   `json:"Marketplace,omitempty"`
}

// GetBrowseNodesRequest is the body of a GetBrowseNodes call
type GetBrowseNodesRequest struct {
	BrowseNodeIDs []string `json:"BrowseNodeIds"`
	Resources     []string `json:"Resources,omitempty"`
	PartnerTag    string   `json:"PartnerTag"`
	PartnerType   string   `json:"PartnerType"`
	Marketplace   string   `json:"Marketplace,omitempty"`
}

// SearchItemsResponse is returned by SearchItems
type SearchItemsResponse struct {
	SearchResult *SearchResult `json:"SearchResult,omitempty"`
	Errors       []APIError    `json:"Errors,omitempty"`
}

// SearchResult holds the matched items of a search
type SearchResult struct {
	Items            []Item `json:"Items"`
	TotalResultCount int    `json:"TotalResultCount"`
	SearchURL        string `json:"SearchURL,omitempty"`
}

// GetItemsResponse is returned by GetItems
type GetItemsResponse struct {
	ItemsResult *ItemsResult `json:"ItemsResult,omitempty"`
	Errors      []APIError   `json:"Errors,omitempty"`
}

// ItemsResult holds the items found by GetItems
type ItemsResult struct {
	Items []Item `json:"Items"`
}

// GetBrowseNodesResponse is returned by GetBrowseNodes
type GetBrowseNodesResponse struct {
	BrowseNodesResult *BrowseNodesResult `json:"BrowseNodesResult,omitempty"`
	Errors            []APIError         `json:"Errors,omitempty"`
}

// BrowseNodesResult holds the nodes found by GetBrowseNodes
type BrowseNodesResult struct {
	BrowseNodes []BrowseNode `json:"BrowseNodes"`
}

// APIError is a single entry of the Errors list
type APIError struct {
	Code    string `json:"Code"`
	Message string `json:"Message"`
}

// Item is a catalog item
type Item struct {
	ASIN          string    `json:"ASIN"`
	DetailPageURL string    `json:"DetailPageURL"`
	ItemInfo      *ItemInfo `json:"ItemInfo,omitempty"`
	Images        *Images   `json:"Images,omitempty"`
	Offers        *Offers   `json:"Offers,omitempty"`
}

// ItemInfo groups the descriptive attributes of an item
type ItemInfo struct {
	Title      *DisplayValue      `json:"Title,omitempty"`
	Features   *MultiValuedString `json:"Features,omitempty"`
	ByLineInfo *ByLineInfo        `json:"ByLineInfo,omitempty"`
}

// DisplayValue is a single localized attribute
type DisplayValue struct {
	DisplayValue string `json:"DisplayValue"`
	Label        string `json:"Label,omitempty"`
	Locale       string `json:"Locale,omitempty"`
}

// MultiValuedString is a localized attribute with several values
type MultiValuedString struct {
	DisplayValues []string `json:"DisplayValues"`
	Label         string   `json:"Label,omitempty"`
	Locale        string   `json:"Locale,omitempty"`
}

// ByLineInfo carries brand and manufacturer
type ByLineInfo struct {
	Brand        *DisplayValue `json:"Brand,omitempty"`
	Manufacturer *DisplayValue `json:"Manufacturer,omitempty"`
}

// Images groups the primary and variant images
type Images struct {
	Primary  *ImageType  `json:"Primary,omitempty"`
	Variants []ImageType `json:"Variants,omitempty"`
}

// ImageType holds an image in each requested size
type ImageType struct {
	Small  *ImageSize `json:"Small,omitempty"`
	Medium *ImageSize `json:"Medium,omitempty"`
	Large  *ImageSize `json:"Large,omitempty"`
}

// ImageSize is a single rendition of an image
type ImageSize struct {
	URL    string `json:"URL"`
	Height int    `json:"Height"`
	Width  int    `json:"Width"`
}

// Offers carries the listings for an item
type Offers struct {
	Listings []OfferListing `json:"Listings"`
}

// OfferListing is a single offer
type OfferListing struct {
	ID           string        `json:"Id,omitempty"`
	Price        *OfferPrice   `json:"Price,omitempty"`
	DeliveryInfo *DeliveryInfo `json:"DeliveryInfo,omitempty"`
}

// OfferPrice is the listing price. Amount and Currency are reported independently.
type OfferPrice struct {
	Amount        *decimal.Decimal `json:"Amount,omitempty"`
	Currency      *string          `json:"Currency,omitempty"`
	DisplayAmount string           `json:"DisplayAmount,omitempty"`
}

// DeliveryInfo describes how a listing ships
type DeliveryInfo struct {
	IsPrimeEligible *bool `json:"IsPrimeEligible,omitempty"`
}

// BrowseNode is a catalog category
type BrowseNode struct {
	ID              string       `json:"Id"`
	DisplayName     string       `json:"DisplayName"`
	ContextFreeName string       `json:"ContextFreeName,omitempty"`
	IsRoot          bool         `json:"IsRoot,omitempty"`
	Ancestor        *BrowseNode  `json:"Ancestor,omitempty"`
	Children        []BrowseNode `json:"Children,omitempty"`
}
