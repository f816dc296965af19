package usecase

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/driftline/storefront/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// SuggestServiceConfig holds configuration for the suggest service.
type SuggestServiceConfig struct {
	CacheTTL           time.Duration
	EnableDebugLogging bool
}

// SuggestService wraps a search client with an advisory result cache.
// It implements domain.SearchClient, so controllers and handlers sit
// on top of it unchanged. Cache errors are treated as misses; caching
// failures never fail a lookup.
type SuggestService struct {
	client domain.SearchClient
	cache  domain.SuggestionCache
	ttl    time.Duration
	debug  bool
}

// NewSuggestService creates a suggest service. A nil cache disables
// memoization entirely.
func NewSuggestService(client domain.SearchClient, cache domain.SuggestionCache, cfg SuggestServiceConfig) *SuggestService {
	ttl := cfg.CacheTTL
	if ttl == 0 {
		ttl = 5 * time.Minute
	}

	return &SuggestService{
		client: client,
		cache:  cache,
		ttl:    ttl,
		debug:  cfg.EnableDebugLogging,
	}
}

// Suggest looks up suggestions for a query.
// Flow: check cache -> query endpoint -> cache -> return.
func (s *SuggestService) Suggest(ctx context.Context, query, locale string) (*domain.SuggestionSet, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrInvalidRequest
	}

	cacheKey := s.cacheKey(query, locale)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != nil {
			if s.debug {
				log.Printf("[SUGGEST] cache hit for %q", query)
			}
			return cached, nil
		}
	}

	set, err := s.client.Suggest(ctx, query, locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSearchFailed, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, set, s.ttl); err != nil && s.debug {
			log.Printf("[SUGGEST] cache store failed for %q: %v", query, err)
		}
	}

	return set, nil
}

// cacheKey builds a normalized cache key.
// Format: "suggest:{locale}:{normalized_query}"
func (s *SuggestService) cacheKey(query, locale string) string {
	return fmt.Sprintf("suggest:%s:%s", strings.ToLower(locale), normalizeForCacheKey(query))
}

// normalizeForCacheKey normalizes a string for use as cache key component.
// Converts to lowercase, removes special characters, and trims whitespace.
func normalizeForCacheKey(s string) string {
	if s == "" {
		return ""
	}
	result := strings.ToLower(s)
	result = nonAlphanumericRegex.ReplaceAllString(result, "")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}
