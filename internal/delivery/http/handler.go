package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopfront/backend/internal/domain"
)

// Version is reported by the health check
const Version = "1.0.0"

const (
	msgKeywordsRequired = "キーワードを入力してください"
	msgProductNotFound  = "商品が見つかりませんでした"
)

// CatalogService is the part of usecase.CatalogService the web layer needs
type CatalogService interface {
	SearchProducts(ctx context.Context, keywords, category string) ([]domain.ProductRecord, error)
	GetProduct(ctx context.Context, id string) (*domain.ProductRecord, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalog CatalogService
	log     zerolog.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(catalog CatalogService, log zerolog.Logger) *Handler {
	return &Handler{
		catalog: catalog,
		log:     log.With().Str("component", "http").Logger(),
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "shopfront",
		"version": Version,
	})
}

// Index renders the search page
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Categories": searchCategories,
	})
}

// SearchProducts handles GET /api/search?q=&category=
//
// Catalog failures are logged and answered with an empty product list so the
// page keeps working while the API is throttled or misconfigured.
func (h *Handler) SearchProducts(c *gin.Context) {
	keywords := strings.TrimSpace(c.Query("q"))
	if keywords == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgKeywordsRequired})
		return
	}
	category := c.Query("category")

	products, err := h.catalog.SearchProducts(c.Request.Context(), keywords, category)
	if err != nil {
		h.requestLog(c).Error().Err(err).Str("keywords", keywords).Str("category", category).Msg("search failed")
		products = []domain.ProductRecord{}
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProduct handles GET /api/product/:asin
func (h *Handler) GetProduct(c *gin.Context) {
	product, ok := h.lookup(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": msgProductNotFound})
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// ProductPage renders the detail page for /product/:asin
func (h *Handler) ProductPage(c *gin.Context) {
	product, ok := h.lookup(c)
	if !ok {
		// the error page carries 404 like the JSON endpoint
		c.HTML(http.StatusNotFound, "error.html", gin.H{"Message": msgProductNotFound})
		return
	}

	c.HTML(http.StatusOK, "product.html", gin.H{
		"Product": product,
		"Prime":   product.Prime != nil && *product.Prime,
	})
}

// lookup fetches the product named by the asin path parameter. Any failure
// counts as not found; only unexpected ones are logged as errors.
func (h *Handler) lookup(c *gin.Context) (*domain.ProductRecord, bool) {
	asin := c.Param("asin")

	product, err := h.catalog.GetProduct(c.Request.Context(), asin)
	if err != nil {
		level := zerolog.ErrorLevel
		if errors.Is(err, domain.ErrProductNotFound) || errors.Is(err, domain.ErrInvalidRequest) {
			level = zerolog.InfoLevel
		}
		h.requestLog(c).WithLevel(level).Err(err).Str("asin", asin).Msg("product lookup failed")
		return nil, false
	}
	return product, true
}

func (h *Handler) requestLog(c *gin.Context) *zerolog.Logger {
	l := h.log.With().Str("request_id", c.GetString(requestIDKey)).Logger()
	return &l
}

// searchCategories populate the category select on the index page
var searchCategories = []struct {
	Value string
	Label string
}{
	{"All", "すべて"},
	{"Books", "本"},
	{"Electronics", "家電&カメラ"},
	{"Computers", "パソコン・周辺機器"},
	{"VideoGames", "ゲーム"},
	{"Music", "ミュージック"},
	{"HomeAndKitchen", "ホーム&キッチン"},
	{"Toys", "おもちゃ"},
}
