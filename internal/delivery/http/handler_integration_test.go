package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/shopfront/backend/config"
	"github.com/shopfront/backend/internal/domain"
	"github.com/shopfront/backend/internal/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain sets up test environment before running tests
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	// as set by cmd/server
	decimal.MarshalJSONWithoutQuotes = true
	os.Exit(m.Run())
}

// mockCatalog is a mock implementation of CatalogService
type mockCatalog struct {
	products  map[string]domain.ProductRecord
	search    []domain.ProductRecord
	searchErr error
	lookupErr error

	gotKeywords string
	gotCategory string
}

func (m *mockCatalog) SearchProducts(ctx context.Context, keywords, category string) ([]domain.ProductRecord, error) {
	m.gotKeywords = keywords
	m.gotCategory = category
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	return m.search, nil
}

func (m *mockCatalog) GetProduct(ctx context.Context, id string) (*domain.ProductRecord, error) {
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	p, ok := m.products[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrProductNotFound, id)
	}
	return &p, nil
}

func echoDot() domain.ProductRecord {
	price := decimal.NewFromInt(5980)
	return domain.ProductRecord{
		ASIN:     "B07G9NLF5C",
		Title:    lo.ToPtr("Echo Dot 第3世代 <スマートスピーカー>"),
		URL:      "https://www.amazon.co.jp/dp/B07G9NLF5C",
		Image:    lo.ToPtr("https://m.media-amazon.com/images/I/echo.jpg"),
		Price:    &price,
		Currency: lo.ToPtr("JPY"),
		Features: []string{"Alexa対応"},
		Prime:    lo.ToPtr(true),
	}
}

// setupTestRouter creates a test router with default configuration
func setupTestRouter(catalog CatalogService) *gin.Engine {
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:           "5000",
			Environment:    "test",
			AllowedOrigins: []string{"http://localhost:*"},
		},
	}

	handler := NewHandler(catalog, logger.Nop())
	return SetupRouter(cfg, handler, logger.Nop())
}

func get(router *gin.Engine, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheckEndpoint(t *testing.T) {
	t.Run("returns healthy status", func(t *testing.T) {
		w := get(setupTestRouter(&mockCatalog{}), "/health")

		require.Equal(t, http.StatusOK, w.Code)
		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "healthy", response["status"])
		assert.Equal(t, "shopfront", response["service"])
		assert.Equal(t, Version, response["version"])
	})

	t.Run("accepts GET requests only", func(t *testing.T) {
		router := setupTestRouter(&mockCatalog{})

		for _, method := range []string{"POST", "PUT", "DELETE", "PATCH"} {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(method, "/health", nil))

			if w.Code != http.StatusNotFound {
				t.Errorf("Method %s: Status = %d, want %d", method, w.Code, http.StatusNotFound)
			}
		}
	})
}

func TestSearchEndpoint(t *testing.T) {
	t.Run("returns products", func(t *testing.T) {
		catalog := &mockCatalog{search: []domain.ProductRecord{echoDot()}}
		router := setupTestRouter(catalog)

		w := get(router, "/api/search?q="+url.QueryEscape("echo dot")+"&category=Electronics")

		require.Equal(t, http.StatusOK, w.Code)
		var response struct {
			Products []map[string]interface{} `json:"products"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Products, 1)
		assert.Equal(t, "B07G9NLF5C", response.Products[0]["asin"])
		assert.Equal(t, "https://www.amazon.co.jp/dp/B07G9NLF5C", response.Products[0]["url"])
		assert.Equal(t, "echo dot", catalog.gotKeywords)
		assert.Equal(t, "Electronics", catalog.gotCategory)
	})

	t.Run("optional fields encode as null", func(t *testing.T) {
		catalog := &mockCatalog{search: []domain.ProductRecord{{
			ASIN:     "4873119324",
			URL:      "https://www.amazon.co.jp/dp/4873119324",
			Features: []string{},
		}}}

		w := get(setupTestRouter(catalog), "/api/search?q=python")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"products":[{
			"asin":"4873119324","title":null,"url":"https://www.amazon.co.jp/dp/4873119324",
			"image":null,"price":null,"currency":null,"features":[],"prime":null}]}`, w.Body.String())
	})

	t.Run("prices encode as JSON numbers", func(t *testing.T) {
		price := decimal.RequireFromString("4180.5")
		catalog := &mockCatalog{search: []domain.ProductRecord{{
			ASIN:     "4873119324",
			URL:      "https://www.amazon.co.jp/dp/4873119324",
			Price:    &price,
			Currency: lo.ToPtr("JPY"),
			Features: []string{},
		}}}

		w := get(setupTestRouter(catalog), "/api/search?q=python")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"price":4180.5`)
		assert.Contains(t, w.Body.String(), `"currency":"JPY"`)
	})

	t.Run("no results is an empty list", func(t *testing.T) {
		w := get(setupTestRouter(&mockCatalog{search: []domain.ProductRecord{}}), "/api/search?q=zzzz")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"products":[]}`, w.Body.String())
	})

	t.Run("catalog failure degrades to an empty list", func(t *testing.T) {
		catalog := &mockCatalog{searchErr: domain.ErrThrottled}

		w := get(setupTestRouter(catalog), "/api/search?q=echo")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"products":[]}`, w.Body.String())
	})

	for _, target := range []string{"/api/search", "/api/search?q=", "/api/search?q=%20%20"} {
		t.Run("rejects missing keywords: "+target, func(t *testing.T) {
			catalog := &mockCatalog{}

			w := get(setupTestRouter(catalog), target)

			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"キーワードを入力してください"}`, w.Body.String())
			assert.Empty(t, catalog.gotKeywords)
		})
	}
}

func TestProductEndpoint(t *testing.T) {
	catalog := &mockCatalog{products: map[string]domain.ProductRecord{"B07G9NLF5C": echoDot()}}
	router := setupTestRouter(catalog)

	t.Run("returns the product", func(t *testing.T) {
		w := get(router, "/api/product/B07G9NLF5C")

		require.Equal(t, http.StatusOK, w.Code)
		var response struct {
			Product map[string]interface{} `json:"product"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "B07G9NLF5C", response.Product["asin"])
		assert.Equal(t, true, response.Product["prime"])
		assert.Equal(t, []interface{}{"Alexa対応"}, response.Product["features"])
	})

	t.Run("unknown ASIN is 404", func(t *testing.T) {
		w := get(router, "/api/product/B000000000")

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"商品が見つかりませんでした"}`, w.Body.String())
	})

	t.Run("catalog failure is 404", func(t *testing.T) {
		w := get(setupTestRouter(&mockCatalog{lookupErr: domain.ErrInvalidCredentials}), "/api/product/B07G9NLF5C")

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "error")
	})
}

func TestProductPage(t *testing.T) {
	catalog := &mockCatalog{products: map[string]domain.ProductRecord{"B07G9NLF5C": echoDot()}}
	router := setupTestRouter(catalog)

	t.Run("renders the product", func(t *testing.T) {
		w := get(router, "/product/B07G9NLF5C")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		body := w.Body.String()
		assert.Contains(t, body, "Echo Dot 第3世代 &lt;スマートスピーカー&gt;")
		assert.Contains(t, body, "5980 JPY")
		assert.Contains(t, body, "Alexa対応")
		assert.Contains(t, body, `href="https://www.amazon.co.jp/dp/B07G9NLF5C"`)
		assert.Contains(t, body, `class="prime"`)
	})

	t.Run("unknown ASIN renders the error page", func(t *testing.T) {
		w := get(router, "/product/B000000000")

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "商品が見つかりませんでした")
	})
}

func TestIndexPage(t *testing.T) {
	router := setupTestRouter(&mockCatalog{})

	w := get(router, "/")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `<html lang="ja">`)
	assert.Contains(t, body, `<option value="Books">`)
	assert.Contains(t, body, `src="/static/app.js"`)

	t.Run("serves the page script", func(t *testing.T) {
		w := get(router, "/static/app.js")

		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.Contains(w.Body.String(), "/api/search"))
	})
}

func TestRouterSetsRequestID(t *testing.T) {
	w := get(setupTestRouter(&mockCatalog{}), "/health")

	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}
