package usecase

import (
	"log"

	"github.com/driftline/storefront/internal/domain"
)

// Display labels applied during a sync.
const (
	labelInStock   = "In stock"
	labelSoldOut   = "Sold out"
	labelAddToCart = "Add to cart"
)

// urlParamVariant is the query parameter mirroring the resolved id.
const urlParamVariant = "variant"

// ProductSyncConfig holds configuration for a ProductSyncController.
type ProductSyncConfig struct {
	EnableDebugLogging bool
}

// ProductSyncController owns one product form's UI surface. It holds an
// immutable variant catalog and, on every option-change event, resolves
// the current selections and applies the matching variant's attributes
// to the surface. A resolution miss leaves the surface in its
// last-synced state: no partial update, no error.
type ProductSyncController struct {
	surface domain.ProductSurface
	catalog []domain.Variant
	debug   bool
}

// NewProductSyncController binds a controller to its surface and
// catalog and performs the construction-time sync.
func NewProductSyncController(surface domain.ProductSurface, catalog []domain.Variant, cfg ProductSyncConfig) *ProductSyncController {
	c := &ProductSyncController{
		surface: surface,
		catalog: append([]domain.Variant(nil), catalog...),
		debug:   cfg.EnableDebugLogging,
	}
	c.OnOptionChange()
	return c
}

// OnOptionChange re-reads the surface's option state, resolves, and on
// a match applies the variant. Stale-on-miss is deliberate policy.
func (c *ProductSyncController) OnOptionChange() {
	variant, ok := ResolveVariant(c.catalog, c.surface.OptionInputs(), c.surface.ExplicitVariantID())
	if !ok {
		if c.debug {
			log.Printf("[SYNC] no variant for current selections, surface left as-is")
		}
		return
	}

	if c.debug {
		log.Printf("[SYNC] resolved variant %s (available=%v)", variant.ID, variant.Available)
	}
	c.apply(variant)
}

func (c *ProductSyncController) apply(variant domain.Variant) {
	if c.surface.HasHook(domain.HookVariantInput) {
		c.surface.SetValue(domain.HookVariantInput, variant.ID)
	}

	if c.surface.HasHook(domain.HookPrice) {
		c.surface.SetText(domain.HookPrice, variant.PriceFormatted)
	}

	if c.surface.HasHook(domain.HookCompare) {
		if variant.HasCompareAt() {
			c.surface.SetHidden(domain.HookCompare, false)
			c.surface.SetText(domain.HookCompare, variant.CompareAtFormatted)
		} else {
			c.surface.SetHidden(domain.HookCompare, true)
			c.surface.SetText(domain.HookCompare, "")
		}
	}

	if c.surface.HasHook(domain.HookAvailability) {
		text := labelSoldOut
		if variant.Available {
			text = labelInStock
		}
		c.surface.SetText(domain.HookAvailability, text)
	}

	if c.surface.HasHook(domain.HookAddToCart) {
		c.surface.SetEnabled(domain.HookAddToCart, variant.Available)
		label := labelSoldOut
		if variant.Available {
			label = labelAddToCart
		}
		c.surface.SetText(domain.HookAddToCart, label)
	}

	c.syncMedia(variant)

	// URL mirroring runs last and is best-effort: a surface without the
	// capability must not block any other step.
	if err := c.surface.ReplaceURLParam(urlParamVariant, variant.ID); err != nil && c.debug {
		log.Printf("[SYNC] url mirror skipped: %v", err)
	}
}

// syncMedia marks the gallery item matching the variant's featured
// media as the sole active item. Without a featured media id or any
// media items this is a no-op; it never clears a previously active
// item in that case.
func (c *ProductSyncController) syncMedia(variant domain.Variant) {
	mediaIDs := c.surface.MediaIDs()
	if len(mediaIDs) == 0 || variant.FeaturedMediaID == "" {
		return
	}

	activeID := ""
	for _, id := range mediaIDs {
		active := sameID(id, variant.FeaturedMediaID)
		c.surface.SetMediaActive(id, active)
		if active {
			activeID = id
		}
	}

	if activeID != "" && c.surface.ExclusiveMedia() {
		for _, id := range mediaIDs {
			c.surface.SetMediaHidden(id, id != activeID)
		}
	}
}
