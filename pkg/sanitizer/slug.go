package sanitizer

import (
	"regexp"
)

// SlugFallback is used when a title yields no slug material at all,
// e.g. a title consisting only of punctuation.
const SlugFallback = "untitled"

var (
	reSlugStrip    = regexp.MustCompile(`[^\w\s-]+`)
	reSlugHyphens  = regexp.MustCompile(`[\s_-]+`)
	reSlugPattern  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Slugify derives a URL-safe slug from a title: lowercase, word characters
// only, whitespace and underscore runs folded into single hyphens, no
// leading or trailing hyphens. An empty result falls back to SlugFallback.
func Slugify(title string) string {
	p := Pipeline{
		trimAndLower,
		func(s string) string { return reSlugStrip.ReplaceAllString(s, "") },
		func(s string) string { return reSlugHyphens.ReplaceAllString(s, "-") },
		trimHyphens,
	}

	slug := p.Apply(title)
	if slug == "" {
		return SlugFallback
	}
	return slug
}

// IsSlug reports whether s is already in canonical slug form.
func IsSlug(s string) bool {
	return reSlugPattern.MatchString(s)
}
