package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/driftline/storefront/internal/domain"
	"github.com/driftline/storefront/internal/sanitize"
)

const (
	// DefaultDebounce is the quiet period after the last keystroke
	// before a query is issued. A new keystroke restarts it; only the
	// trailing call fires.
	DefaultDebounce = 220 * time.Millisecond

	// DefaultMinQueryLength is the shortest trimmed input that reaches
	// the network.
	DefaultMinQueryLength = 2
)

// EmptyStateHTML is the explicit "no suggestions" rendering, distinct
// from the hidden idle state.
const EmptyStateHTML = `<p class="predictive-search__empty">No suggestions found.</p>`

// PredictiveSearchConfig holds configuration for a
// PredictiveSearchController.
type PredictiveSearchConfig struct {
	Debounce           time.Duration
	MinQueryLength     int
	Locale             string
	Scheduler          domain.Scheduler
	EnableDebugLogging bool
}

// PredictiveSearchController owns one search widget: it debounces
// keystrokes, queries the search client, and renders sanitized
// suggestions into its results panel. Responses are applied in issue
// order: a monotonically increasing token is captured when a query is
// issued and checked before any render side effect, so a slow stale
// response can never overwrite a newer display.
type PredictiveSearchController struct {
	client    domain.SearchClient
	panel     domain.SearchSurface
	scheduler domain.Scheduler
	debounce  time.Duration
	minQuery  int
	locale    string
	debug     bool

	mu            sync.Mutex
	token         uint64
	cancelPending  func()             // pending debounce timer
	cancelInFlight context.CancelFunc // superseded queries get canceled on the wire too
}

// NewPredictiveSearchController creates a controller bound to one
// results panel. Zero config fields fall back to defaults.
func NewPredictiveSearchController(client domain.SearchClient, panel domain.SearchSurface, cfg PredictiveSearchConfig) *PredictiveSearchController {
	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	minQuery := cfg.MinQueryLength
	if minQuery <= 0 {
		minQuery = DefaultMinQueryLength
	}
	locale := cfg.Locale
	if locale == "" {
		locale = "en"
	}
	scheduler := cfg.Scheduler
	if scheduler == nil {
		scheduler = SystemScheduler{}
	}

	return &PredictiveSearchController{
		client:    client,
		panel:     panel,
		scheduler: scheduler,
		debounce:  debounce,
		minQuery:  minQuery,
		locale:    locale,
		debug:     cfg.EnableDebugLogging,
	}
}

// OnInput reacts to a keystroke. Short input clears and hides the panel
// immediately, supersedes any in-flight query, and never touches the
// network; anything else restarts the debounce timer.
func (c *PredictiveSearchController) OnInput(raw string) {
	query := strings.TrimSpace(raw)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancelPending != nil {
		c.cancelPending()
		c.cancelPending = nil
	}

	if utf8.RuneCountInString(query) < c.minQuery {
		c.token++ // invalidate any in-flight response
		c.abortInFlightLocked()
		c.panel.SetHidden(true)
		c.panel.SetHTML("")
		return
	}

	c.cancelPending = c.scheduler.AfterFunc(c.debounce, func() {
		c.runQuery(query)
	})
}

// OnFocus re-shows previously rendered results without re-querying.
func (c *PredictiveSearchController) OnFocus() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if strings.TrimSpace(c.panel.HTML()) != "" {
		c.panel.SetHidden(false)
	}
}

// OnClickOutside hides the panel when focus leaves the widget region.
func (c *PredictiveSearchController) OnClickOutside() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.panel.SetHidden(true)
}

// Close tears the controller down: the pending timer and any in-flight
// query are canceled and late completions are discarded.
func (c *PredictiveSearchController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token++
	if c.cancelPending != nil {
		c.cancelPending()
		c.cancelPending = nil
	}
	c.abortInFlightLocked()
}

func (c *PredictiveSearchController) abortInFlightLocked() {
	if c.cancelInFlight != nil {
		c.cancelInFlight()
		c.cancelInFlight = nil
	}
}

// runQuery issues one query. It runs on the scheduler's goroutine and
// blocks there until the client completes; the token captured here
// decides whether the completion may still render.
func (c *PredictiveSearchController) runQuery(query string) {
	c.mu.Lock()
	c.token++
	token := c.token
	c.abortInFlightLocked()
	ctx, cancel := context.WithCancel(context.Background())
	c.cancelInFlight = cancel
	c.mu.Unlock()

	set, err := c.client.Suggest(ctx, query, c.locale)

	c.mu.Lock()
	defer c.mu.Unlock()

	if token != c.token {
		// A newer query or a cleared input superseded this response.
		if c.debug {
			log.Printf("[SEARCH] discarding stale response for %q", query)
		}
		return
	}
	c.cancelInFlight = nil

	if err != nil {
		if c.debug {
			log.Printf("[SEARCH] query %q failed: %v", query, err)
		}
		c.panel.SetHidden(true)
		return
	}

	c.panel.SetHTML(RenderSuggestionsHTML(set))
	c.panel.SetHidden(false)
}

// RenderSuggestionsHTML builds the suggestion list fragment: products,
// then pages, then articles, each group in its original order. Title
// and URL are escaped before interpolation and the assembled fragment
// passes the sanitizer policy.
func RenderSuggestionsHTML(set *domain.SuggestionSet) string {
	combined := set.Combined()
	if len(combined) == 0 {
		return EmptyStateHTML
	}

	var b strings.Builder
	b.WriteString(`<ul class="predictive-search__list">`)
	for _, item := range combined {
		href := item.URL
		if href == "" {
			href = "#"
		}
		fmt.Fprintf(&b,
			`<li class="predictive-search__item"><a href="%s"><span>%s</span></a></li>`,
			sanitize.EscapeText(href), sanitize.EscapeText(item.Title))
	}
	b.WriteString(`</ul>`)
	return sanitize.Fragment(b.String())
}
