package domain

// Variant represents one purchasable configuration of a product.
// Options is ordered by option position; position indexes are shared
// across every variant of the same product.
type Variant struct {
	ID                 string   `json:"id"`
	Options            []string `json:"options"`
	Price              int64    `json:"price"`
	CompareAtPrice     int64    `json:"compare_at_price,omitempty"`
	PriceFormatted     string   `json:"price_formatted"`
	CompareAtFormatted string   `json:"compare_at_price_formatted,omitempty"`
	Available          bool     `json:"available"`
	FeaturedMediaID    string   `json:"featured_media_id,omitempty"`
}

// HasCompareAt reports whether the variant carries a compare-at price
// worth displaying: present and strictly greater than the current price.
func (v Variant) HasCompareAt() bool {
	return v.CompareAtPrice > 0 && v.CompareAtPrice > v.Price
}

// Product is an immutable snapshot of one product as embedded in the
// host page. It is loaded once when a controller attaches and never
// mutated afterwards.
type Product struct {
	Handle            string    `json:"handle"`
	Title             string    `json:"title"`
	Currency          string    `json:"currency,omitempty"`
	OptionNames       []string  `json:"options,omitempty"`
	MediaIDs          []string  `json:"media_ids,omitempty"`
	MediaBehavior     string    `json:"media_behavior,omitempty"` // "single" hides non-active media
	SelectedVariantID string    `json:"selected_variant_id,omitempty"`
	Variants          []Variant `json:"variants"`
}

// OptionInput represents one selectable control for one option position.
// Several inputs may share a position (e.g. a radio group); at most one
// of them is considered selected.
type OptionInput struct {
	Position string `json:"position"`
	Value    string `json:"value"`
	Selected bool   `json:"selected"`
}
