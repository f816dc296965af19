// Package searchapi implements the client for the remote predictive
// search endpoint.
package searchapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/driftline/storefront/internal/domain"
	"golang.org/x/time/rate"
)

// DefaultResultLimit caps suggestions per resource group.
const DefaultResultLimit = 6

// resultFields is the fixed projection requested from the endpoint.
const resultFields = "title,product_type,variants.title"

// ClientConfig holds configuration for the search endpoint client.
type ClientConfig struct {
	// Endpoint is the base search URL; ".json" is appended per request.
	Endpoint string
	// Limit caps results per resource group; zero uses DefaultResultLimit.
	Limit int
	// Timeout bounds one request; zero uses 10s.
	Timeout time.Duration
	// PerSecond/Burst shape outbound request volume; zero disables limiting.
	PerSecond float64
	Burst     int
}

// Client queries the remote predictive search endpoint. Failures are
// reported, never retried: the user's next keystroke is the natural
// retry trigger.
type Client struct {
	httpClient  *http.Client
	endpoint    string
	limit       int
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a search endpoint client.
func NewClient(cfg ClientConfig) *Client {
	limit := cfg.Limit
	if limit <= 0 {
		limit = DefaultResultLimit
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	var limiter *rate.Limiter
	if cfg.PerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.PerSecond), burst)
	}

	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		endpoint:    cfg.Endpoint,
		limit:       limit,
		rateLimiter: limiter,
	}
}

// SetDebug toggles request logging.
func (c *Client) SetDebug(enabled bool) { c.debug = enabled }

// Suggest queries the endpoint for type-ahead suggestions.
func (c *Client) Suggest(ctx context.Context, query, locale string) (*domain.SuggestionSet, error) {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}
	}

	reqURL := c.buildRequestURL(query, locale)
	if c.debug {
		log.Printf("[SEARCH] GET %s", reqURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSearchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		if c.debug {
			log.Printf("[SEARCH] endpoint error - Status: %d, Body: %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("%w: status %d", domain.ErrSearchFailed, resp.StatusCode)
	}

	var envelope responseEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", domain.ErrSearchFailed, err)
	}

	return envelope.toSuggestionSet(), nil
}

// buildRequestURL assembles "<endpoint>.json" with the fixed parameter
// set: resource types, result cap, field projection, hidden
// unavailable products, and the active locale.
func (c *Client) buildRequestURL(query, locale string) string {
	params := url.Values{}
	params.Add("q", query)
	params.Add("resources[type]", "product,article,page")
	params.Add("resources[limit]", strconv.Itoa(c.limit))
	params.Add("resources[options][fields]", resultFields)
	params.Add("resources[options][unavailable_products]", "hide")
	params.Add("locale", locale)

	return fmt.Sprintf("%s.json?%s", c.endpoint, params.Encode())
}

// responseEnvelope mirrors the endpoint's JSON shape.
type responseEnvelope struct {
	Resources struct {
		Results struct {
			Products []resultItem `json:"products"`
			Pages    []resultItem `json:"pages"`
			Articles []resultItem `json:"articles"`
		} `json:"results"`
	} `json:"resources"`
}

type resultItem struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

func (e *responseEnvelope) toSuggestionSet() *domain.SuggestionSet {
	set := &domain.SuggestionSet{}
	for _, item := range e.Resources.Results.Products {
		set.Products = append(set.Products, domain.Suggestion{Title: item.Title, URL: item.URL, Kind: domain.KindProduct})
	}
	for _, item := range e.Resources.Results.Pages {
		set.Pages = append(set.Pages, domain.Suggestion{Title: item.Title, URL: item.URL, Kind: domain.KindPage})
	}
	for _, item := range e.Resources.Results.Articles {
		set.Articles = append(set.Articles, domain.Suggestion{Title: item.Title, URL: item.URL, Kind: domain.KindArticle})
	}
	return set
}
