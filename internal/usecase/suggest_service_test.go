package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/driftline/storefront/internal/domain"
)

// fakeCache records Get/Set traffic for the suggest service tests.
type fakeCache struct {
	data    map[string]*domain.SuggestionSet
	gets    int
	sets    int
	failGet bool
	failSet bool
	lastTTL time.Duration
	lastKey string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string]*domain.SuggestionSet{}}
}

func (c *fakeCache) Get(ctx context.Context, key string) (*domain.SuggestionSet, error) {
	c.gets++
	if c.failGet {
		return nil, errors.New("cache unavailable")
	}
	if set, ok := c.data[key]; ok {
		return set, nil
	}
	return nil, domain.ErrCacheMiss
}

func (c *fakeCache) Set(ctx context.Context, key string, set *domain.SuggestionSet, ttl time.Duration) error {
	c.sets++
	c.lastKey = key
	c.lastTTL = ttl
	if c.failSet {
		return errors.New("cache unavailable")
	}
	c.data[key] = set
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, key string) error {
	delete(c.data, key)
	return nil
}

func TestNewSuggestService_DefaultTTL(t *testing.T) {
	svc := NewSuggestService(&stubClient{}, newFakeCache(), SuggestServiceConfig{})
	if svc.ttl != 5*time.Minute {
		t.Errorf("ttl = %v, want 5m default", svc.ttl)
	}
}

func TestSuggestService_Suggest(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects blank query", func(t *testing.T) {
		svc := NewSuggestService(&stubClient{}, nil, SuggestServiceConfig{})
		_, err := svc.Suggest(ctx, "   ", "en")
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest", err)
		}
	})

	t.Run("caches after network lookup", func(t *testing.T) {
		client := &stubClient{set: productSet("Shirt")}
		cache := newFakeCache()
		svc := NewSuggestService(client, cache, SuggestServiceConfig{CacheTTL: time.Minute})

		set, err := svc.Suggest(ctx, "shirt", "en")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(set.Products) != 1 {
			t.Fatalf("products = %d, want 1", len(set.Products))
		}
		if cache.sets != 1 {
			t.Errorf("cache sets = %d, want 1", cache.sets)
		}
		if cache.lastTTL != time.Minute {
			t.Errorf("cache ttl = %v, want 1m", cache.lastTTL)
		}

		// Second lookup only touches the cache.
		if _, err := svc.Suggest(ctx, "shirt", "en"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if client.callCount() != 1 {
			t.Errorf("client calls = %d, want 1 (second lookup served from cache)", client.callCount())
		}
	})

	t.Run("normalizes cache key", func(t *testing.T) {
		client := &stubClient{set: productSet("Shirt")}
		cache := newFakeCache()
		svc := NewSuggestService(client, cache, SuggestServiceConfig{})

		if _, err := svc.Suggest(ctx, "Blue  Shirt!", "EN"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cache.lastKey != "suggest:en:blue shirt" {
			t.Errorf("cache key = %q, want suggest:en:blue shirt", cache.lastKey)
		}
	})

	t.Run("cache errors fall through to network", func(t *testing.T) {
		client := &stubClient{set: productSet("Shirt")}
		cache := newFakeCache()
		cache.failGet = true
		cache.failSet = true
		svc := NewSuggestService(client, cache, SuggestServiceConfig{})

		set, err := svc.Suggest(ctx, "shirt", "en")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(set.Products) != 1 {
			t.Errorf("products = %d, want 1", len(set.Products))
		}
	})

	t.Run("nil cache disables memoization", func(t *testing.T) {
		client := &stubClient{set: productSet("Shirt")}
		svc := NewSuggestService(client, nil, SuggestServiceConfig{})

		svc.Suggest(ctx, "shirt", "en")
		svc.Suggest(ctx, "shirt", "en")

		if client.callCount() != 2 {
			t.Errorf("client calls = %d, want 2 without cache", client.callCount())
		}
	})

	t.Run("wraps client failures", func(t *testing.T) {
		client := &stubClient{err: errors.New("boom")}
		svc := NewSuggestService(client, nil, SuggestServiceConfig{})

		_, err := svc.Suggest(ctx, "shirt", "en")
		if !errors.Is(err, domain.ErrSearchFailed) {
			t.Errorf("error = %v, want ErrSearchFailed", err)
		}
	})
}
