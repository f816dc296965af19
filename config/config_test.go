package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("STOREFRONT_SERVER_PORT")
		os.Unsetenv("STOREFRONT_SERVER_ENVIRONMENT")
		os.Unsetenv("STOREFRONT_SEARCH_ENDPOINT")
		os.Unsetenv("STOREFRONT_SEARCH_DEFAULT_LOCALE")
		os.Unsetenv("STOREFRONT_SEARCH_LIMIT")
		os.Unsetenv("STOREFRONT_SEARCH_MIN_QUERY_LENGTH")
		os.Unsetenv("STOREFRONT_SEARCH_DEBOUNCE_MS")
		os.Unsetenv("STOREFRONT_CATALOG_DIR")
		os.Unsetenv("STOREFRONT_CACHE_ENABLED")
		os.Unsetenv("STOREFRONT_CACHE_TTL")
		os.Unsetenv("STOREFRONT_RATELIMIT_PER_IP")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		// Set required endpoint
		os.Setenv("STOREFRONT_SEARCH_ENDPOINT", "https://shop.example.com/search/suggest")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Search.DefaultLocale != "en" {
			t.Errorf("Search.DefaultLocale = %s, want en", cfg.Search.DefaultLocale)
		}
		if cfg.Search.Limit != 6 {
			t.Errorf("Search.Limit = %d, want 6", cfg.Search.Limit)
		}
		if cfg.Search.MinQueryLength != 2 {
			t.Errorf("Search.MinQueryLength = %d, want 2", cfg.Search.MinQueryLength)
		}
		if cfg.Search.DebounceMS != 220 {
			t.Errorf("Search.DebounceMS = %d, want 220", cfg.Search.DebounceMS)
		}
		if cfg.Search.Debounce() != 220*time.Millisecond {
			t.Errorf("Search.Debounce() = %v, want 220ms", cfg.Search.Debounce())
		}
		if cfg.Catalog.Dir != "./catalog" {
			t.Errorf("Catalog.Dir = %s, want ./catalog", cfg.Catalog.Dir)
		}
		if !cfg.Cache.Enabled {
			t.Error("Cache.Enabled = false, want true")
		}
		if cfg.Cache.TTL != 5*time.Minute {
			t.Errorf("Cache.TTL = %v, want 5m", cfg.Cache.TTL)
		}
		if cfg.RateLimit.PerIP != 100 {
			t.Errorf("RateLimit.PerIP = %d, want 100", cfg.RateLimit.PerIP)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("STOREFRONT_SERVER_PORT", "9090")
		os.Setenv("STOREFRONT_SERVER_ENVIRONMENT", "production")
		os.Setenv("STOREFRONT_SEARCH_ENDPOINT", "https://custom.example.com/suggest")
		os.Setenv("STOREFRONT_SEARCH_DEFAULT_LOCALE", "fr")
		os.Setenv("STOREFRONT_SEARCH_LIMIT", "10")
		os.Setenv("STOREFRONT_SEARCH_MIN_QUERY_LENGTH", "3")
		os.Setenv("STOREFRONT_SEARCH_DEBOUNCE_MS", "150")
		os.Setenv("STOREFRONT_CATALOG_DIR", "/var/lib/storefront/catalog")
		os.Setenv("STOREFRONT_CACHE_TTL", "30m")
		os.Setenv("STOREFRONT_RATELIMIT_PER_IP", "200")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Search.Endpoint != "https://custom.example.com/suggest" {
			t.Errorf("Search.Endpoint = %s, want custom endpoint", cfg.Search.Endpoint)
		}
		if cfg.Search.DefaultLocale != "fr" {
			t.Errorf("Search.DefaultLocale = %s, want fr", cfg.Search.DefaultLocale)
		}
		if cfg.Search.Limit != 10 {
			t.Errorf("Search.Limit = %d, want 10", cfg.Search.Limit)
		}
		if cfg.Search.MinQueryLength != 3 {
			t.Errorf("Search.MinQueryLength = %d, want 3", cfg.Search.MinQueryLength)
		}
		if cfg.Search.Debounce() != 150*time.Millisecond {
			t.Errorf("Search.Debounce() = %v, want 150ms", cfg.Search.Debounce())
		}
		if cfg.Catalog.Dir != "/var/lib/storefront/catalog" {
			t.Errorf("Catalog.Dir = %s, want /var/lib/storefront/catalog", cfg.Catalog.Dir)
		}
		if cfg.Cache.TTL != 30*time.Minute {
			t.Errorf("Cache.TTL = %v, want 30m", cfg.Cache.TTL)
		}
		if cfg.RateLimit.PerIP != 200 {
			t.Errorf("RateLimit.PerIP = %d, want 200", cfg.RateLimit.PerIP)
		}
	})

	t.Run("fails validation when search endpoint is missing", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for missing search endpoint")
		}
	})

	t.Run("fails validation for non-positive debounce", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("STOREFRONT_SEARCH_ENDPOINT", "https://shop.example.com/search/suggest")
		os.Setenv("STOREFRONT_SEARCH_DEBOUNCE_MS", "0")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for zero debounce")
		}
	})

	t.Run("fails validation for zero min query length", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("STOREFRONT_SEARCH_ENDPOINT", "https://shop.example.com/search/suggest")
		os.Setenv("STOREFRONT_SEARCH_MIN_QUERY_LENGTH", "0")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for zero min query length")
		}
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Search: SearchConfig{
				Endpoint:       "https://shop.example.com/search/suggest",
				Limit:          6,
				MinQueryLength: 2,
				DebounceMS:     220,
			},
		}
	}

	t.Run("validates successfully with all required fields", func(t *testing.T) {
		if err := validate(valid()); err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("fails when endpoint is empty", func(t *testing.T) {
		cfg := valid()
		cfg.Search.Endpoint = ""
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for empty endpoint")
		}
	})

	t.Run("fails for non-positive limit", func(t *testing.T) {
		cfg := valid()
		cfg.Search.Limit = 0
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for zero limit")
		}
	})

	t.Run("fails for negative debounce", func(t *testing.T) {
		cfg := valid()
		cfg.Search.DebounceMS = -1
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for negative debounce")
		}
	})
}
