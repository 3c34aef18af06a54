package domain

import "github.com/shopspring/decimal"

// ProductRecord is the flattened view of a catalog item handed to the CLI and
// the web layer. Optional vendor fields stay nil when the API omits them.
type ProductRecord struct {
	ASIN     string           `json:"asin"`
	Title    *string          `json:"title"`
	URL      string           `json:"url"`
	Image    *string          `json:"image"`
	Price    *decimal.Decimal `json:"price"`
	Currency *string          `json:"currency"`
	Features []string         `json:"features"`
	Prime    *bool            `json:"prime"`
}

// CategoryNode is a browse node with its direct children
type CategoryNode struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Children []CategoryRef `json:"children"`
}

// CategoryRef identifies a child browse node
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DefaultSearchIndex searches across every category
const DefaultSearchIndex = "All"

// DefaultBrowseNodeID is the Electronics node on amazon.co.jp
const DefaultBrowseNodeID = "2275256051"
