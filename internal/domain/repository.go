package domain

import (
	"context"
	"time"
)

// SearchClient defines the interface for querying the remote predictive
// search endpoint.
type SearchClient interface {
	Suggest(ctx context.Context, query, locale string) (*SuggestionSet, error)
}

// SuggestionCache defines the interface for memoizing suggestion result
// sets. The cache is advisory only: callers must treat any error as a
// miss and go to the network.
type SuggestionCache interface {
	Get(ctx context.Context, key string) (*SuggestionSet, error)
	Set(ctx context.Context, key string, set *SuggestionSet, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// CatalogRepository defines the interface for looking up product
// snapshots by handle.
type CatalogRepository interface {
	Product(handle string) (*Product, error)
	Handles() []string
}

// Scheduler abstracts deferred execution so debounce behavior can be
// driven by virtual time in tests. AfterFunc returns a cancel function;
// canceling after the callback has fired is a no-op.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (cancel func())
}
