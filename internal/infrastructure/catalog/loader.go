// Package catalog loads the embedded product snapshots that product
// controllers are constructed against.
package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/driftline/storefront/internal/domain"
)

// flexID accepts identifiers serialized as JSON numbers or strings.
// Matching later normalizes numeric representations, so "0042" and 42
// both resolve the same variant.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*f = ""
		return nil
	}
	s = strings.Trim(s, `"`)
	*f = flexID(s)
	return nil
}

// flexMoney accepts an amount serialized as integer cents, a numeric
// string, or a pre-formatted display string.
type flexMoney struct {
	cents     int64
	formatted string
}

func (m *flexMoney) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return nil
		}
		if n, err := strconv.ParseInt(strings.TrimSpace(str), 10, 64); err == nil {
			m.cents = n
			return nil
		}
		m.formatted = str
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return nil
	}
	if i, err := n.Int64(); err == nil {
		m.cents = i
	} else if f, err := n.Float64(); err == nil {
		m.cents = int64(f)
	}
	return nil
}

type variantSnapshot struct {
	ID                 flexID    `json:"id"`
	Options            []string  `json:"options"`
	Price              flexMoney `json:"price"`
	CompareAtPrice     flexMoney `json:"compare_at_price"`
	PriceFormatted     string    `json:"price_formatted"`
	CompareAtFormatted string    `json:"compare_at_price_formatted"`
	Available          bool      `json:"available"`
	FeaturedMediaID    flexID    `json:"featured_media_id"`
}

type productSnapshot struct {
	Handle            string            `json:"handle"`
	Title             string            `json:"title"`
	Currency          string            `json:"currency"`
	OptionNames       []string          `json:"options"`
	MediaIDs          []flexID          `json:"media_ids"`
	MediaBehavior     string            `json:"media_behavior"`
	SelectedVariantID flexID            `json:"selected_variant_id"`
	Variants          []variantSnapshot `json:"variants"`
}

// ParseProduct decodes one embedded product snapshot. Malformed data
// yields a product with an empty catalog; nothing propagates past the
// parse boundary.
func ParseProduct(data []byte) *domain.Product {
	var snapshot productSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return &domain.Product{}
	}
	return snapshot.toProduct()
}

// ParseVariants decodes a bare variant-array snapshot the same way.
func ParseVariants(data []byte) []domain.Variant {
	var snapshots []variantSnapshot
	if err := json.Unmarshal(data, &snapshots); err != nil {
		return nil
	}
	variants := make([]domain.Variant, 0, len(snapshots))
	for _, vs := range snapshots {
		variants = append(variants, vs.toVariant(""))
	}
	return variants
}

func (p *productSnapshot) toProduct() *domain.Product {
	product := &domain.Product{
		Handle:            p.Handle,
		Title:             p.Title,
		Currency:          p.Currency,
		OptionNames:       p.OptionNames,
		MediaBehavior:     p.MediaBehavior,
		SelectedVariantID: string(p.SelectedVariantID),
	}
	for _, id := range p.MediaIDs {
		product.MediaIDs = append(product.MediaIDs, string(id))
	}
	for _, vs := range p.Variants {
		product.Variants = append(product.Variants, vs.toVariant(p.Currency))
	}
	return product
}

func (v *variantSnapshot) toVariant(currency string) domain.Variant {
	variant := domain.Variant{
		ID:                 string(v.ID),
		Options:            v.Options,
		Price:              v.Price.cents,
		CompareAtPrice:     v.CompareAtPrice.cents,
		PriceFormatted:     v.PriceFormatted,
		CompareAtFormatted: v.CompareAtFormatted,
		Available:          v.Available,
		FeaturedMediaID:    string(v.FeaturedMediaID),
	}
	if variant.PriceFormatted == "" {
		if v.Price.formatted != "" {
			variant.PriceFormatted = v.Price.formatted
		} else {
			variant.PriceFormatted = FormatMoney(currency, variant.Price)
		}
	}
	if variant.CompareAtFormatted == "" {
		if v.CompareAtPrice.formatted != "" {
			variant.CompareAtFormatted = v.CompareAtPrice.formatted
		} else if variant.CompareAtPrice > 0 {
			variant.CompareAtFormatted = FormatMoney(currency, variant.CompareAtPrice)
		}
	}
	return variant
}

// FormatMoney renders an amount of cents with its currency symbol.
func FormatMoney(currency string, cents int64) string {
	major := float64(cents) / 100.0
	switch currency {
	case "", "USD":
		return fmt.Sprintf("$%.2f", major)
	case "EUR":
		return fmt.Sprintf("€%.2f", major)
	case "GBP":
		return fmt.Sprintf("£%.2f", major)
	default:
		return fmt.Sprintf("%.2f %s", major, currency)
	}
}
