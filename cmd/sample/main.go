// Command sample runs a keyword search, an ASIN lookup and a browse node
// lookup against the Product Advertising API and prints the results as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/shopfront/backend/config"
	"github.com/shopfront/backend/internal/domain"
	"github.com/shopfront/backend/internal/infrastructure/paapi"
	"github.com/shopfront/backend/internal/logger"
	"github.com/shopfront/backend/internal/usecase"
	"github.com/shopspring/decimal"
)

type options struct {
	Keywords string
	Category string
	ASINs    []string
	NodeID   string
	Limit    int
}

type catalog interface {
	SearchProductsLimit(ctx context.Context, keywords, category string, limit int) ([]domain.ProductRecord, error)
	LookupProducts(ctx context.Context, ids []string) ([]domain.ProductRecord, error)
	GetBrowseNodes(ctx context.Context, nodeID string) ([]domain.CategoryNode, error)
}

func main() {
	var (
		keywords = flag.String("keywords", "Python プログラミング", "keywords to search for")
		category = flag.String("category", "Books", "search index to search in")
		asins    = flag.String("asin", "B07G9NLF5C", "comma separated ASINs or product URLs to look up")
		node     = flag.String("node", domain.DefaultBrowseNodeID, "browse node id to look up")
		limit    = flag.Int("limit", 3, "number of search results to print (0 prints all)")
		timeout  = flag.Duration("timeout", 2*time.Minute, "overall timeout for API calls")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Environment: cfg.Server.Environment,
		Level:       cfg.Log.Level,
		Output:      os.Stderr,
	})
	if cfg.Amazon.UsesPlaceholders() {
		log.Warn().Msg("Amazon credentials are placeholders (set AMAZON_ACCESS_KEY, AMAZON_SECRET_KEY, AMAZON_ASSOCIATE_TAG)")
	}

	decimal.MarshalJSONWithoutQuotes = true

	client, err := paapi.NewClient(paapi.Config{
		AccessKey:  cfg.Amazon.AccessKey,
		SecretKey:  cfg.Amazon.SecretKey,
		PartnerTag: cfg.Amazon.AssociateTag,
		Country:    cfg.Amazon.Country,
		Throttle:   cfg.Amazon.Throttle,
		Timeout:    cfg.Amazon.Timeout,
		BaseURL:    cfg.Amazon.BaseURL(),
		Logger:     log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("create PA-API client")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	opts := options{
		Keywords: *keywords,
		Category: *category,
		ASINs:    splitList(*asins),
		NodeID:   *node,
		Limit:    *limit,
	}
	if err := run(ctx, os.Stdout, usecase.NewCatalogService(client, log), opts, log); err != nil {
		log.Fatal().Err(err).Msg("write output")
	}
}

// run prints the three sections. Catalog errors are logged and printed as an
// empty list; only write errors are returned.
func run(ctx context.Context, out io.Writer, svc catalog, opts options, log zerolog.Logger) error {
	products, err := svc.SearchProductsLimit(ctx, opts.Keywords, opts.Category, opts.Limit)
	if err != nil {
		log.Error().Err(err).Str("keywords", opts.Keywords).Msg("search failed")
		products = []domain.ProductRecord{}
	}
	if opts.Limit > 0 && len(products) > opts.Limit {
		products = products[:opts.Limit]
	}
	if err := printSection(out, "キーワード検索", products); err != nil {
		return err
	}

	items, err := svc.LookupProducts(ctx, opts.ASINs)
	if err != nil {
		log.Error().Err(err).Strs("asins", opts.ASINs).Msg("lookup failed")
		items = []domain.ProductRecord{}
	}
	if err := printSection(out, "特定商品情報", items); err != nil {
		return err
	}

	nodes, err := svc.GetBrowseNodes(ctx, opts.NodeID)
	if err != nil {
		log.Error().Err(err).Str("browse_node_id", opts.NodeID).Msg("browse node lookup failed")
		nodes = []domain.CategoryNode{}
	}
	return printSection(out, "カテゴリ情報", nodes)
}

func printSection(out io.Writer, title string, v any) error {
	if _, err := fmt.Fprintf(out, "\n=== %s ===\n", title); err != nil {
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(v)
}

func splitList(s string) []string {
	return lo.Compact(lo.Map(strings.Split(s, ","), func(part string, _ int) string {
		return strings.TrimSpace(part)
	}))
}
