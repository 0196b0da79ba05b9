package catalog

import (
	"net/url"
	"regexp"
	"sort"
	"strings"
)

var originPattern = regexp.MustCompile(`(?i)^https?://[^/]+`)

func safeDecode(value string) string {
	if decoded, err := url.QueryUnescape(value); err == nil {
		return decoded
	}
	return value
}

// NormalizeSlug reduces arbitrary input (raw slug, product URL, or id) to a
// canonical lower-cased slug: origin and query/fragment stripped, surrounding
// slashes trimmed, last path segment kept.
func NormalizeSlug(value string) string {
	decoded := strings.TrimSpace(safeDecode(value))
	withoutOrigin := originPattern.ReplaceAllString(decoded, "")
	if idx := strings.IndexAny(withoutOrigin, "#?"); idx >= 0 {
		withoutOrigin = withoutOrigin[:idx]
	}
	trimmed := strings.Trim(withoutOrigin, "/")
	parts := strings.Split(trimmed, "/")
	return strings.ToLower(parts[len(parts)-1])
}

// CategorySentinel represents "no category filter".
const CategorySentinel = "All Product"

var whitespacePattern = regexp.MustCompile(`\s+`)

// NormalizeCategory lower-cases a category name and collapses whitespace
// runs into hyphens, matching how category URL parameters are written.
func NormalizeCategory(value string) string {
	return whitespacePattern.ReplaceAllString(strings.ToLower(strings.TrimSpace(value)), "-")
}

// CategoryParam maps a category name to its URL parameter; the sentinel
// maps to the literal token "all".
func CategoryParam(category string) string {
	if category == CategorySentinel {
		return "all"
	}
	return NormalizeCategory(category)
}

// MatchesCategory reports whether a product belongs to the category named
// by a URL parameter. An empty or "all" parameter matches every product.
func MatchesCategory(categoryParam string, product Product) bool {
	if categoryParam == "" || categoryParam == "all" {
		return true
	}
	return NormalizeCategory(product.Category) == NormalizeCategory(categoryParam)
}

// BuildCategories derives the category list from a product set: the
// sentinel first, then the distinct categories sorted.
func BuildCategories(items []Product) []string {
	seen := make(map[string]struct{}, len(items))
	var names []string
	for _, item := range items {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		names = append(names, item.Category)
	}
	sort.Strings(names)
	return append([]string{CategorySentinel}, names...)
}
