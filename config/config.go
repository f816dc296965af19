package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server          ServerConfig
	Search          SearchConfig
	Catalog         CatalogConfig
	Cache           CacheConfig
	Recommendations RecommendationsConfig
	RateLimit       RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SearchConfig holds predictive search configuration
type SearchConfig struct {
	Endpoint       string        `mapstructure:"endpoint"`
	DefaultLocale  string        `mapstructure:"default_locale"`
	Limit          int           `mapstructure:"limit"`
	MinQueryLength int           `mapstructure:"min_query_length"`
	DebounceMS     int           `mapstructure:"debounce_ms"`
	Timeout        time.Duration `mapstructure:"timeout"`
}

// Debounce returns the configured debounce as a duration.
func (s SearchConfig) Debounce() time.Duration {
	return time.Duration(s.DebounceMS) * time.Millisecond
}

// CatalogConfig holds product snapshot configuration
type CatalogConfig struct {
	Dir string `mapstructure:"dir"`
}

// CacheConfig holds suggestion cache configuration
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// RecommendationsConfig holds the recommendations rendering endpoint
type RecommendationsConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP        int     `mapstructure:"per_ip"`
	SearchPerSec float64 `mapstructure:"search_per_sec"`
	SearchBurst  int     `mapstructure:"search_burst"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/storefront/")

	// Environment variable settings
	v.SetEnvPrefix("STOREFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Search defaults (endpoint has no default; registering the key
	// makes it overridable from the environment)
	v.SetDefault("search.endpoint", "")
	v.SetDefault("search.default_locale", "en")
	v.SetDefault("search.limit", 6)
	v.SetDefault("search.min_query_length", 2)
	v.SetDefault("search.debounce_ms", 220)
	v.SetDefault("search.timeout", "10s")

	// Catalog defaults
	v.SetDefault("catalog.dir", "./catalog")

	// Cache defaults
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl", "5m")

	// Recommendations defaults
	v.SetDefault("recommendations.timeout", "10s")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
	v.SetDefault("ratelimit.search_per_sec", 10)
	v.SetDefault("ratelimit.search_burst", 5)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Search.Endpoint == "" {
		return fmt.Errorf("search endpoint is required (set STOREFRONT_SEARCH_ENDPOINT)")
	}

	if config.Search.MinQueryLength < 1 {
		return fmt.Errorf("search min_query_length must be at least 1, got: %d", config.Search.MinQueryLength)
	}

	if config.Search.DebounceMS <= 0 {
		return fmt.Errorf("search debounce_ms must be positive, got: %d", config.Search.DebounceMS)
	}

	if config.Search.Limit <= 0 {
		return fmt.Errorf("search limit must be positive, got: %d", config.Search.Limit)
	}

	return nil
}
