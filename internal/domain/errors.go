package domain

import "errors"

var (
	// ErrProductNotFound is returned when a product handle has no catalog entry
	ErrProductNotFound = errors.New("product not found in catalog")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrSearchFailed is returned when the predictive search request fails
	ErrSearchFailed = errors.New("predictive search request failed")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrURLUpdateUnsupported is returned when the surface cannot mirror
	// state into the page URL
	ErrURLUpdateUnsupported = errors.New("url update not supported by surface")
)
