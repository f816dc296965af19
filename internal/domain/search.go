package domain

// SuggestionKind identifies which catalog resource a suggestion came from.
type SuggestionKind string

const (
	KindProduct SuggestionKind = "product"
	KindPage    SuggestionKind = "page"
	KindArticle SuggestionKind = "article"
)

// Suggestion is one type-ahead search hit. Title and URL are untrusted
// remote text and must be escaped before interpolation into markup.
type Suggestion struct {
	Title string         `json:"title"`
	URL   string         `json:"url"`
	Kind  SuggestionKind `json:"kind"`
}

// SuggestionSet holds the per-resource result groups in the order the
// endpoint returned them.
type SuggestionSet struct {
	Products []Suggestion `json:"products"`
	Pages    []Suggestion `json:"pages"`
	Articles []Suggestion `json:"articles"`
}

// Combined flattens the set into display order: products, then pages,
// then articles, preserving each group's original order.
func (s *SuggestionSet) Combined() []Suggestion {
	combined := make([]Suggestion, 0, len(s.Products)+len(s.Pages)+len(s.Articles))
	combined = append(combined, s.Products...)
	combined = append(combined, s.Pages...)
	combined = append(combined, s.Articles...)
	return combined
}

// Empty reports whether the set contains no suggestions at all.
func (s *SuggestionSet) Empty() bool {
	return len(s.Products) == 0 && len(s.Pages) == 0 && len(s.Articles) == 0
}
