package main

import (
	"fmt"
	"os"

	"github.com/shopfront/backend/config"
	httpDelivery "github.com/shopfront/backend/internal/delivery/http"
	"github.com/shopfront/backend/internal/infrastructure/paapi"
	"github.com/shopfront/backend/internal/logger"
	"github.com/shopfront/backend/internal/usecase"
	"github.com/shopspring/decimal"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Environment: cfg.Server.Environment,
		Level:       cfg.Log.Level,
	})

	log.Info().
		Str("version", httpDelivery.Version).
		Str("environment", cfg.Server.Environment).
		Str("port", cfg.Server.Port).
		Msg("Starting shopfront")

	if cfg.Amazon.UsesPlaceholders() {
		log.Warn().Msg("Amazon credentials are placeholders (set AMAZON_ACCESS_KEY, AMAZON_SECRET_KEY, AMAZON_ASSOCIATE_TAG) - API calls will fail!")
	}

	// Prices go out as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	// One client for the whole process so every request shares the throttle
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
		log.Fatal().Err(err).Msg("Failed to create PA-API client")
	}

	log.Info().
		Str("marketplace", client.Marketplace().Domain).
		Dur("throttle", cfg.Amazon.Throttle).
		Msg("PA-API configured")

	catalog := usecase.NewCatalogService(client, log)

	handler := httpDelivery.NewHandler(catalog, log)
	router := httpDelivery.SetupRouter(cfg, handler, log)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("Server listening")

	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
