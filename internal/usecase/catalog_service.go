package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/shopfront/backend/internal/domain"
	"github.com/shopfront/backend/internal/infrastructure/paapi"
)

// CatalogService runs product searches, ASIN lookups and browse node lookups
// against the catalog and returns flattened records
type CatalogService struct {
	client domain.CatalogClient
	log    zerolog.Logger
}

// NewCatalogService creates a new catalog service with its client dependency
func NewCatalogService(client domain.CatalogClient, log zerolog.Logger) *CatalogService {
	return &CatalogService{
		client: client,
		log:    log.With().Str("component", "catalog").Logger(),
	}
}

// SearchProducts searches by keywords within a search index ("All" when empty).
// A search without hits returns an empty slice and no error.
func (s *CatalogService) SearchProducts(ctx context.Context, keywords, category string) ([]domain.ProductRecord, error) {
	return s.SearchProductsLimit(ctx, keywords, category, 0)
}

// SearchProductsLimit is SearchProducts asking the API for at most limit
// items. Zero or less leaves the count to the API; the API caps it at
// paapi.MaxSearchItemCount.
func (s *CatalogService) SearchProductsLimit(ctx context.Context, keywords, category string, limit int) ([]domain.ProductRecord, error) {
	keywords = NormalizeKeywords(keywords)
	if keywords == "" {
		return nil, fmt.Errorf("%w: keywords are required", domain.ErrInvalidRequest)
	}
	index := NormalizeSearchIndex(category)

	resp, err := s.client.SearchItems(ctx, &domain.SearchItemsRequest{
		Keywords:    keywords,
		SearchIndex: index,
		ItemCount:   min(max(limit, 0), paapi.MaxSearchItemCount),
		Resources:   paapi.SearchResources,
	})
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			s.log.Debug().Str("keywords", keywords).Str("search_index", index).Msg("no search results")
			return []domain.ProductRecord{}, nil
		}
		return nil, fmt.Errorf("search %q in %s: %w", keywords, index, err)
	}

	if resp == nil || resp.SearchResult == nil {
		return []domain.ProductRecord{}, nil
	}
	return paapi.MapToProductRecords(resp.SearchResult.Items), nil
}

// LookupProducts fetches items by ASIN or product URL. Ids are deduplicated
// and sent in batches of paapi.MaxItemIDsPerRequest. Unknown ASINs are
// left out of the result.
func (s *CatalogService) LookupProducts(ctx context.Context, ids []string) ([]domain.ProductRecord, error) {
	asins := ExtractASINs(ids)
	if len(asins) == 0 {
		return nil, fmt.Errorf("%w: no valid ASIN in %q", domain.ErrInvalidRequest, strings.Join(ids, ","))
	}

	records := []domain.ProductRecord{}
	for _, batch := range lo.Chunk(asins, paapi.MaxItemIDsPerRequest) {
		resp, err := s.client.GetItems(ctx, &domain.GetItemsRequest{
			ItemIDs:   batch,
			Resources: paapi.LookupResources,
		})
		if err != nil {
			if isNoData(err) {
				s.log.Debug().Err(err).Strs("asins", batch).Msg("items not found")
				continue
			}
			return nil, fmt.Errorf("lookup %s: %w", strings.Join(batch, ","), err)
		}
		if resp == nil {
			continue
		}

		for _, apiErr := range resp.Errors {
			s.log.Debug().Str("code", apiErr.Code).Msg(apiErr.Message)
		}
		if resp.ItemsResult != nil {
			records = append(records, paapi.MapToProductRecords(resp.ItemsResult.Items)...)
		}
	}

	return records, nil
}

// GetProduct fetches a single item by ASIN or product URL
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.ProductRecord, error) {
	records, err := s.LookupProducts(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
	}
	return &records[0], nil
}

// GetBrowseNodes fetches a browse node and its children. An empty id looks up
// domain.DefaultBrowseNodeID.
func (s *CatalogService) GetBrowseNodes(ctx context.Context, nodeID string) ([]domain.CategoryNode, error) {
	nodeID = strings.TrimSpace(nodeID)
	if nodeID == "" {
		nodeID = domain.DefaultBrowseNodeID
	}

	resp, err := s.client.GetBrowseNodes(ctx, &domain.GetBrowseNodesRequest{
		BrowseNodeIDs: []string{nodeID},
		Resources:     paapi.BrowseNodeResources,
	})
	if err != nil {
		if isNoData(err) {
			s.log.Debug().Err(err).Str("browse_node_id", nodeID).Msg("browse node not found")
			return []domain.CategoryNode{}, nil
		}
		return nil, fmt.Errorf("browse node %s: %w", nodeID, err)
	}

	if resp == nil || resp.BrowseNodesResult == nil {
		return []domain.CategoryNode{}, nil
	}
	return paapi.MapToCategoryNodes(resp.BrowseNodesResult.BrowseNodes), nil
}

// isNoData reports whether err means the catalog simply has nothing for the
// ids asked, which PA-API signals as NoResults or as an invalid id
func isNoData(err error) bool {
	return errors.Is(err, domain.ErrProductNotFound) || errors.Is(err, domain.ErrInvalidRequest)
}
