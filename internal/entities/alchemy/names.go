package alchemy

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

var (
	trailingParenthetical = regexp.MustCompile(`\s*\([^()]*\)\s*$`)
	whitespaceRun         = regexp.MustCompile(`\s+`)
	nonSlugRun            = regexp.MustCompile(`[^a-z0-9]+`)
)

// BaseName groups level variants of the same item: "Tanglefoot Bag (Greater)"
// and "Tanglefoot Bag" both become "tanglefoot bag". A trailing parenthetical
// group and everything after the first comma are removed before folding.
func BaseName(name string) string {
	base := name
	if idx := strings.Index(base, ","); idx >= 0 {
		base = base[:idx]
	}
	base = trailingParenthetical.ReplaceAllString(base, "")
	base = cases.Fold().String(base)
	base = whitespaceRun.ReplaceAllString(base, " ")
	return strings.TrimSpace(base)
}

// Slugify derives a slug from a display name
func Slugify(name string) string {
	slug := cases.Fold().String(name)
	slug = strings.ReplaceAll(slug, "'", "")
	slug = nonSlugRun.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
