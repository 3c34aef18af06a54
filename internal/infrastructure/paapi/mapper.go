package paapi

import (
	"github.com/samber/lo"
	"github.com/shopfront/backend/internal/domain"
)

// MapToProductRecord flattens a catalog item. ok is false when the item lacks
// the ASIN or detail page URL every record needs.
func MapToProductRecord(item domain.Item) (record domain.ProductRecord, ok bool) {
	if item.ASIN == "" || item.DetailPageURL == "" {
		return domain.ProductRecord{}, false
	}

	record = domain.ProductRecord{
		ASIN:     item.ASIN,
		URL:      item.DetailPageURL,
		Features: []string{},
	}

	if info := item.ItemInfo; info != nil {
		if info.Title != nil {
			record.Title = lo.ToPtr(info.Title.DisplayValue)
		}
		if info.Features != nil && len(info.Features.DisplayValues) > 0 {
			record.Features = append([]string{}, info.Features.DisplayValues...)
		}
	}

	if img := item.Images; img != nil && img.Primary != nil && img.Primary.Large != nil && img.Primary.Large.URL != "" {
		record.Image = lo.ToPtr(img.Primary.Large.URL)
	}

	if listing, found := firstListing(item.Offers); found {
		if price := listing.Price; price != nil {
			if price.Amount != nil {
				record.Price = lo.ToPtr(*price.Amount)
			}
			if price.Currency != nil {
				record.Currency = lo.ToPtr(*price.Currency)
			}
		}
		if listing.DeliveryInfo != nil && listing.DeliveryInfo.IsPrimeEligible != nil {
			record.Prime = lo.ToPtr(*listing.DeliveryInfo.IsPrimeEligible)
		}
	}

	return record, true
}

// MapToProductRecords maps every usable item, preserving order
func MapToProductRecords(items []domain.Item) []domain.ProductRecord {
	return lo.FilterMap(items, func(item domain.Item, _ int) (domain.ProductRecord, bool) {
		return MapToProductRecord(item)
	})
}

// MapToCategoryNode converts a browse node and its direct children
func MapToCategoryNode(node domain.BrowseNode) domain.CategoryNode {
	return domain.CategoryNode{
		ID:   node.ID,
		Name: node.DisplayName,
		Children: lo.Map(node.Children, func(child domain.BrowseNode, _ int) domain.CategoryRef {
			return domain.CategoryRef{ID: child.ID, Name: child.DisplayName}
		}),
	}
}

// MapToCategoryNodes maps browse nodes, preserving order
func MapToCategoryNodes(nodes []domain.BrowseNode) []domain.CategoryNode {
	return lo.Map(nodes, func(node domain.BrowseNode, _ int) domain.CategoryNode {
		return MapToCategoryNode(node)
	})
}

// firstListing returns the featured offer, the one PA-API lists first
func firstListing(offers *domain.Offers) (domain.OfferListing, bool) {
	if offers == nil || len(offers.Listings) == 0 {
		return domain.OfferListing{}, false
	}
	return offers.Listings[0], true
}
