package http

import (
	"context"
	"log"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/driftline/storefront/internal/domain"
	"github.com/driftline/storefront/internal/render"
	"github.com/driftline/storefront/internal/usecase"
)

// RecommendationsFetcher retrieves rendered recommendation markup.
type RecommendationsFetcher interface {
	Fragment(ctx context.Context, handle string) (string, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	search         domain.SearchClient
	catalog        domain.CatalogRepository
	recs           RecommendationsFetcher
	minQueryLength int
	defaultLocale  string
}

// HandlerConfig wires handler behavior knobs.
type HandlerConfig struct {
	MinQueryLength int
	DefaultLocale  string
}

// NewHandler creates a new HTTP handler
func NewHandler(search domain.SearchClient, catalog domain.CatalogRepository, recs RecommendationsFetcher, cfg HandlerConfig) *Handler {
	minQuery := cfg.MinQueryLength
	if minQuery <= 0 {
		minQuery = usecase.DefaultMinQueryLength
	}
	locale := cfg.DefaultLocale
	if locale == "" {
		locale = "en"
	}

	return &Handler{
		search:         search,
		catalog:        catalog,
		recs:           recs,
		minQueryLength: minQuery,
		defaultLocale:  locale,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "storefront-backend",
		"version": "1.0.0",
	})
}

// Suggest serves rendered type-ahead suggestions. It mirrors the
// widget's policy over HTTP: short queries and failed lookups both
// answer with the hidden marker, never an error page.
func (h *Handler) Suggest(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	locale := c.DefaultQuery("locale", h.defaultLocale)

	if utf8.RuneCountInString(query) < h.minQueryLength {
		c.JSON(http.StatusOK, gin.H{"hidden": true, "html": "", "count": 0})
		return
	}

	set, err := h.search.Suggest(c.Request.Context(), query, locale)
	if err != nil {
		log.Printf("[SEARCH] suggest %q failed: %v", query, err)
		c.JSON(http.StatusOK, gin.H{"hidden": true, "html": "", "count": 0})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"hidden": false,
		"html":   usecase.RenderSuggestionsHTML(set),
		"count":  len(set.Combined()),
	})
}

// ListProducts returns every catalog handle.
func (h *Handler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"handles": h.catalog.Handles()})
}

// GetProduct returns one product snapshot.
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.catalog.Product(c.Param("handle"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// syncRequest carries the option state of one product form.
type syncRequest struct {
	Selections []domain.OptionInput `json:"selections"`
	VariantID  string               `json:"variant_id"`
}

// syncResponse is the UI patch a host page applies after a sync.
type syncResponse struct {
	Matched      bool              `json:"matched"`
	VariantID    string            `json:"variant_id,omitempty"`
	Price        string            `json:"price,omitempty"`
	Compare      compareState      `json:"compare"`
	Availability string            `json:"availability,omitempty"`
	AddToCart    addToCartState    `json:"add_to_cart"`
	ActiveMedia  string            `json:"active_media_id,omitempty"`
	HiddenMedia  []string          `json:"hidden_media_ids,omitempty"`
	URLParams    map[string]string `json:"url_params,omitempty"`
}

type compareState struct {
	Visible bool   `json:"visible"`
	Text    string `json:"text"`
}

type addToCartState struct {
	Enabled bool   `json:"enabled"`
	Label   string `json:"label"`
}

// SyncProduct replays a resolve-and-apply against a recording surface
// and returns the resulting patch. A resolution miss answers
// matched:false with no patch, matching the widget's stale-on-miss
// policy.
func (h *Handler) SyncProduct(c *gin.Context) {
	product, err := h.catalog.Product(c.Param("handle"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	var req syncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	explicitID := req.VariantID
	if explicitID == "" {
		explicitID = product.SelectedVariantID
	}

	if _, ok := usecase.ResolveVariant(product.Variants, req.Selections, explicitID); !ok {
		c.JSON(http.StatusOK, syncResponse{Matched: false})
		return
	}

	surface := render.NewMemorySurface(render.SurfaceConfig{
		Hooks: []string{
			domain.HookVariantInput, domain.HookPrice, domain.HookCompare,
			domain.HookAvailability, domain.HookAddToCart,
		},
		OptionInputs:      req.Selections,
		ExplicitVariantID: explicitID,
		MediaIDs:          product.MediaIDs,
		ExclusiveMedia:    product.MediaBehavior == "single",
	})
	usecase.NewProductSyncController(surface, product.Variants, usecase.ProductSyncConfig{})

	resp := syncResponse{
		Matched:   true,
		VariantID: surface.Value(domain.HookVariantInput),
		Price:     surface.Text(domain.HookPrice),
		Compare: compareState{
			Visible: !surface.Hidden(domain.HookCompare),
			Text:    surface.Text(domain.HookCompare),
		},
		Availability: surface.Text(domain.HookAvailability),
		AddToCart: addToCartState{
			Enabled: surface.Enabled(domain.HookAddToCart),
			Label:   surface.Text(domain.HookAddToCart),
		},
		ActiveMedia: surface.ActiveMediaID(),
		URLParams:   map[string]string{},
	}
	for _, id := range surface.MediaIDs() {
		if surface.MediaHidden(id) {
			resp.HiddenMedia = append(resp.HiddenMedia, id)
		}
	}
	if v, ok := surface.URLParam("variant"); ok {
		resp.URLParams["variant"] = v
	}

	c.JSON(http.StatusOK, resp)
}

// Recommendations returns the rendered recommendations fragment, or
// the removal marker when the fragment is empty or the fetch failed.
func (h *Handler) Recommendations(c *gin.Context) {
	handle := c.Param("handle")

	fragment, err := h.recs.Fragment(c.Request.Context(), handle)
	if err != nil {
		log.Printf("[RECS] fetch for %q failed: %v", handle, err)
		c.JSON(http.StatusOK, gin.H{"remove": true, "html": ""})
		return
	}
	if fragment == "" {
		c.JSON(http.StatusOK, gin.H{"remove": true, "html": ""})
		return
	}

	c.JSON(http.StatusOK, gin.H{"remove": false, "html": fragment})
}
