// Package recs fetches the rendered recommendations fragment for a
// product. The panel contract is swap-or-delete: a non-empty fragment
// replaces the panel's markup, anything else removes the panel.
package recs

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// fragmentSelector marks the recommendations region inside the fetched
// markup.
const fragmentSelector = "[data-product-recommendations]"

// Fetcher retrieves rendered recommendation markup.
type Fetcher struct {
	httpClient *http.Client
	baseURL    string
}

// NewFetcher creates a fetcher against the rendering endpoint.
func NewFetcher(baseURL string, timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Fetcher{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// Fragment fetches and extracts the recommendations fragment for a
// product handle. An empty return value means the caller should remove
// its panel; failures surface as errors and callers treat them the
// same way.
func (f *Fetcher) Fragment(ctx context.Context, handle string) (string, error) {
	reqURL := fmt.Sprintf("%s?product=%s", f.baseURL, url.QueryEscape(handle))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("recommendations request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("recommendations request failed with status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}

	section := doc.Find(fragmentSelector).First()
	if section.Length() == 0 {
		return "", nil
	}

	html, err := section.Html()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(html), nil
}
