package domain

import "context"

// CatalogClient defines the interface for interacting with the Product Advertising API
type CatalogClient interface {
	SearchItems(ctx context.Context, req *SearchItemsRequest) (*SearchItemsResponse, error)
	GetItems(ctx context.Context, req *GetItemsRequest) (*GetItemsResponse, error)
	GetBrowseNodes(ctx context.Context, req *GetBrowseNodesRequest) (*GetBrowseNodesResponse, error)
}
