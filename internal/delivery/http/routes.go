package http

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopfront/backend/config"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, log zerolog.Logger) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RequestIDMiddleware())
	router.Use(RecoveryMiddleware(log))
	router.Use(LoggerMiddleware(log))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	router.StaticFS("/static", http.FS(static))

	router.GET("/health", handler.HealthCheck)

	// Pages
	router.GET("/", handler.Index)
	router.GET("/product/:asin", handler.ProductPage)

	// JSON API
	api := router.Group("/api")
	{
		api.GET("/search", handler.SearchProducts)
		api.GET("/product/:asin", handler.GetProduct)
	}

	return router
}
