package main

import (
	"fmt"
	"log"
	"os"

	"github.com/driftline/storefront/config"
	httpDelivery "github.com/driftline/storefront/internal/delivery/http"
	"github.com/driftline/storefront/internal/infrastructure/cache"
	"github.com/driftline/storefront/internal/infrastructure/catalog"
	"github.com/driftline/storefront/internal/infrastructure/recs"
	"github.com/driftline/storefront/internal/infrastructure/searchapi"
	"github.com/driftline/storefront/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	debug := cfg.Server.Environment == "development"

	log.Printf("Starting Storefront Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	store := catalog.NewStore()
	if err := store.LoadDir(cfg.Catalog.Dir); err != nil {
		log.Printf("WARNING: catalog dir %s unavailable: %v (starting with empty catalog)", cfg.Catalog.Dir, err)
	}

	searchClient := searchapi.NewClient(searchapi.ClientConfig{
		Endpoint:  cfg.Search.Endpoint,
		Limit:     cfg.Search.Limit,
		Timeout:   cfg.Search.Timeout,
		PerSecond: cfg.RateLimit.SearchPerSec,
		Burst:     cfg.RateLimit.SearchBurst,
	})
	if debug {
		searchClient.SetDebug(true)
		log.Printf("Search client debug mode enabled")
	}
	log.Printf("Search endpoint configured: %s.json (limit=%d, locale=%s)",
		cfg.Search.Endpoint, cfg.Search.Limit, cfg.Search.DefaultLocale)

	var suggestionCache *cache.MemoryCache
	if cfg.Cache.Enabled {
		suggestionCache = cache.NewMemoryCache()
		log.Printf("Suggestion cache enabled (TTL: %s)", cfg.Cache.TTL)
	}

	// Initialize usecase layer
	var suggest *usecase.SuggestService
	if suggestionCache != nil {
		suggest = usecase.NewSuggestService(searchClient, suggestionCache, usecase.SuggestServiceConfig{
			CacheTTL:           cfg.Cache.TTL,
			EnableDebugLogging: debug,
		})
	} else {
		suggest = usecase.NewSuggestService(searchClient, nil, usecase.SuggestServiceConfig{
			EnableDebugLogging: debug,
		})
	}

	recsFetcher := recs.NewFetcher(cfg.Recommendations.BaseURL, cfg.Recommendations.Timeout)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(suggest, store, recsFetcher, httpDelivery.HandlerConfig{
		MinQueryLength: cfg.Search.MinQueryLength,
		DefaultLocale:  cfg.Search.DefaultLocale,
	})

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
