package paapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopfront/backend/internal/domain"
	"golang.org/x/time/rate"
)

const (
	targetPrefix    = "com.amazon.paapi5.v1.ProductAdvertisingAPIv1."
	maxResponseSize = 4 << 20
)

// Config configures a Product Advertising API client
type Config struct {
	AccessKey  string
	SecretKey  string
	PartnerTag string
	Country    string
	// Throttle is the minimum interval between two API calls. Zero disables throttling.
	Throttle time.Duration
	Timeout  time.Duration
	// BaseURL overrides https://<marketplace host>
	BaseURL    string
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// Client handles communication with the Product Advertising API 5.0
type Client struct {
	httpClient  *http.Client
	baseURL     string
	partnerTag  string
	marketplace Marketplace
	signer      *signer
	rateLimiter *rate.Limiter
	log         zerolog.Logger
}

// NewClient creates a new PA-API client. The client is safe for concurrent
// use and every caller shares its throttle.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.AccessKey) == "" || strings.TrimSpace(cfg.SecretKey) == "" {
		return nil, fmt.Errorf("access key and secret key are required")
	}
	if strings.TrimSpace(cfg.PartnerTag) == "" {
		return nil, fmt.Errorf("partner tag is required")
	}

	marketplace, err := LookupMarketplace(cfg.Country)
	if err != nil {
		return nil, err
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = "https://" + marketplace.Host
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	var limiter *rate.Limiter
	if cfg.Throttle > 0 {
		limiter = rate.NewLimiter(rate.Every(cfg.Throttle), 1)
	}

	return &Client{
		httpClient:  httpClient,
		baseURL:     baseURL,
		partnerTag:  cfg.PartnerTag,
		marketplace: marketplace,
		signer:      newSigner(cfg.AccessKey, cfg.SecretKey, marketplace.Region),
		rateLimiter: limiter,
		log:         cfg.Logger.With().Str("component", "paapi").Str("marketplace", marketplace.Domain).Logger(),
	}, nil
}

// Marketplace returns the marketplace the client talks to
func (c *Client) Marketplace() Marketplace {
	return c.marketplace
}

// SearchItems searches the catalog by keywords
func (c *Client) SearchItems(ctx context.Context, req *domain.SearchItemsRequest) (*domain.SearchItemsResponse, error) {
	body := *req
	body.PartnerTag = c.partnerTag
	body.PartnerType = domain.PartnerTypeAssociates
	body.Marketplace = c.marketplace.Domain

	var resp domain.SearchItemsResponse
	if err := c.call(ctx, "SearchItems", &body, &resp); err != nil {
		return nil, err
	}

	count := 0
	if resp.SearchResult != nil {
		count = len(resp.SearchResult.Items)
	}
	c.log.Debug().Str("keywords", req.Keywords).Str("search_index", req.SearchIndex).Int("items", count).Msg("search completed")
	return &resp, nil
}

// GetItems looks up at most 10 items by ASIN
func (c *Client) GetItems(ctx context.Context, req *domain.GetItemsRequest) (*domain.GetItemsResponse, error) {
	body := *req
	if body.ItemIDType == "" {
		body.ItemIDType = "ASIN"
	}
	body.PartnerTag = c.partnerTag
	body.PartnerType = domain.PartnerTypeAssociates
	body.Marketplace = c.marketplace.Domain

	var resp domain.GetItemsResponse
	if err := c.call(ctx, "GetItems", &body, &resp); err != nil {
		return nil, err
	}

	count := 0
	if resp.ItemsResult != nil {
		count = len(resp.ItemsResult.Items)
	}
	c.log.Debug().Strs("asins", req.ItemIDs).Int("items", count).Msg("lookup completed")
	return &resp, nil
}

// GetBrowseNodes looks up browse nodes by id
func (c *Client) GetBrowseNodes(ctx context.Context, req *domain.GetBrowseNodesRequest) (*domain.GetBrowseNodesResponse, error) {
	body := *req
	body.PartnerTag = c.partnerTag
	body.PartnerType = domain.PartnerTypeAssociates
	body.Marketplace = c.marketplace.Domain

	var resp domain.GetBrowseNodesResponse
	if err := c.call(ctx, "GetBrowseNodes", &body, &resp); err != nil {
		return nil, err
	}

	c.log.Debug().Strs("browse_node_ids", req.BrowseNodeIDs).Msg("browse node lookup completed")
	return &resp, nil
}

// call waits for the throttle, sends one signed request and decodes a 200 response into out
func (c *Client) call(ctx context.Context, operation string, in, out interface{}) error {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter error: %w", err)
		}
	}

	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", operation, err)
	}

	reqURL := c.baseURL + "/paapi5/" + strings.ToLower(operation)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Encoding", "amz-1.0")
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("X-Amz-Target", targetPrefix+operation)
	req.Header.Set("User-Agent", "shopfront/1.0")
	if err := c.signer.sign(req, payload); err != nil {
		return fmt.Errorf("failed to sign request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("operation", operation).Msg("request failed")
		return fmt.Errorf("%w: %v", domain.ErrCatalogAPIFailure, err)
	}
	defer resp.Body.Close()

	body, err := readLimitedBody(resp.Body, maxResponseSize)
	if err != nil {
		return fmt.Errorf("%w: reading %s response: %v", domain.ErrCatalogAPIFailure, operation, err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := newRequestError(operation, resp.StatusCode, body)
		c.log.Warn().Str("operation", operation).Int("status", resp.StatusCode).Str("code", apiErr.Code).Msg(apiErr.Message)
		return apiErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.log.Warn().Err(err).Str("operation", operation).Msg("undecodable response")
		return fmt.Errorf("%w: failed to decode response: %v", domain.ErrCatalogAPIFailure, err)
	}

	return nil
}

// readLimitedBody reads at most limit bytes from r
func readLimitedBody(r io.Reader, limit int64) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, limit))
}
