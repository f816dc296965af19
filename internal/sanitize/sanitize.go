// Package sanitize guards every point where untrusted catalog or
// endpoint text is interpolated into rendered markup.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeText escapes markup-significant characters so the value renders
// as literal text. A title containing "<script>" must survive as text,
// never as an element.
func EscapeText(value string) string {
	return escaper.Replace(value)
}

// newFragmentPolicy builds the policy applied to assembled suggestion
// fragments. Anchors keep their hrefs; everything active is stripped.
func newFragmentPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").OnElements("ul", "li", "p", "span", "a")
	// Suggestion links point at the shop itself, not user-submitted sites.
	policy.RequireNoFollowOnLinks(false)
	return policy
}

var fragmentPolicy = newFragmentPolicy()

// Fragment sanitizes an assembled HTML fragment before it is handed to
// a render surface. Item text is already escaped via EscapeText; this
// pass exists so a bug upstream cannot smuggle active content through.
func Fragment(html string) string {
	return fragmentPolicy.Sanitize(html)
}
