// internal/utils/slug.go
package utils

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonSlugRe    = regexp.MustCompile(`[^a-z0-9-]`)
)

// Slugify derives a URL slug from a display name: lower-case, whitespace
// runs collapsed to single hyphens, everything outside [a-z0-9-] stripped.
// Used when promoting a submission to a published tool.
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = whitespaceRe.ReplaceAllString(slug, "-")
	return nonSlugRe.ReplaceAllString(slug, "")
}

// TagSlug is the laxer variant used for tags and target audiences: only
// lower-cases and hyphenates whitespace. Punctuation is kept as-is.
func TagSlug(name string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(name), "-")
}
