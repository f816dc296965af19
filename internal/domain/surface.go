package domain

// Hook names for the product UI surface. A surface may expose any
// subset of these; a missing hook degrades only the step that writes
// to it.
const (
	HookVariantInput = "variant-input"
	HookPrice        = "price"
	HookCompare      = "compare"
	HookAvailability = "availability"
	HookAddToCart    = "add-to-cart"
)

// ProductSurface is the render target one ProductSyncController is
// bound to. Implementations are not shared between controllers and are
// only touched from the controller's own event reactions, so they need
// no internal locking beyond what the implementation itself requires.
type ProductSurface interface {
	// HasHook reports whether the surface exposes the named hook point.
	HasHook(hook string) bool
	SetText(hook, text string)
	SetValue(hook, value string)
	SetHidden(hook string, hidden bool)
	SetEnabled(hook string, enabled bool)

	// OptionInputs returns the current state of every option control in
	// declaration order, including unselected choice controls.
	OptionInputs() []OptionInput
	// ExplicitVariantID returns the direct variant selector's current
	// value, or "" when the surface has none.
	ExplicitVariantID() string

	MediaIDs() []string
	SetMediaActive(id string, active bool)
	SetMediaHidden(id string, hidden bool)
	// ExclusiveMedia reports whether the product root requests that
	// non-active media items be hidden.
	ExclusiveMedia() bool

	// ReplaceURLParam mirrors a key/value pair into the page URL without
	// navigating. Surfaces without the capability return
	// ErrURLUpdateUnsupported; callers treat any error as best-effort.
	ReplaceURLParam(key, value string) error
}

// SearchSurface is the render target one PredictiveSearchController is
// bound to: the results container of a search widget.
type SearchSurface interface {
	SetHTML(html string)
	HTML() string
	SetHidden(hidden bool)
	Hidden() bool
}
