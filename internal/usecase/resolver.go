package usecase

import (
	"strconv"
	"strings"

	"github.com/driftline/storefront/internal/domain"
)

// ResolveVariant matches the current option selections against a
// product's variant catalog. It is pure: no side effects, no I/O.
//
// An empty catalog resolves to nothing. A product with no option
// controls resolves through the explicit selected-id field when one is
// set, falling back to the first catalog entry. Otherwise the selection
// vector is derived from the option inputs and a variant matches only
// when its options sequence equals that vector element-wise.
func ResolveVariant(catalog []domain.Variant, inputs []domain.OptionInput, explicitID string) (domain.Variant, bool) {
	if len(catalog) == 0 {
		return domain.Variant{}, false
	}

	if len(inputs) == 0 {
		if explicitID != "" {
			for _, variant := range catalog {
				if sameID(variant.ID, explicitID) {
					return variant, true
				}
			}
		}
		return catalog[0], true
	}

	selections := selectionVector(inputs)
	for _, variant := range catalog {
		if matchesSelections(variant.Options, selections) {
			return variant, true
		}
	}
	return domain.Variant{}, false
}

// selectionVector derives the chosen value for each distinct option
// position, positions ordered by first declaration in the form. Per
// position the first selected input wins; with no selected input the
// first declared input's value is the fallback, so single-valued
// non-interactive option rows still resolve.
func selectionVector(inputs []domain.OptionInput) []string {
	var positions []string
	firstValue := make(map[string]string)
	selectedValue := make(map[string]string)

	for _, input := range inputs {
		if _, seen := firstValue[input.Position]; !seen {
			positions = append(positions, input.Position)
			firstValue[input.Position] = input.Value
		}
		if input.Selected {
			if _, chosen := selectedValue[input.Position]; !chosen {
				selectedValue[input.Position] = input.Value
			}
		}
	}

	vector := make([]string, 0, len(positions))
	for _, position := range positions {
		if value, ok := selectedValue[position]; ok {
			vector = append(vector, value)
			continue
		}
		vector = append(vector, firstValue[position])
	}
	return vector
}

// matchesSelections requires full element-wise equality; there is no
// partial or best-effort match.
func matchesSelections(options, selections []string) bool {
	if len(options) != len(selections) {
		return false
	}
	for i := range options {
		if options[i] != selections[i] {
			return false
		}
	}
	return true
}

// sameID compares identifiers by normalized value so numeric ids match
// regardless of representation ("0042" equals "42").
func sameID(a, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == b {
		return true
	}
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	return errA == nil && errB == nil && na == nb
}
