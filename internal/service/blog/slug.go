package blog

import (
	"regexp"
	"strings"
)

var reSlug = regexp.MustCompile(`^[a-z0-9-]+$`)

// Slugs that would shadow a route on the public site. A post or category
// published under one of these would be unreachable.
var reservedSlugs = map[string]struct{}{
	"admin":    {},
	"api":      {},
	"blog":     {},
	"category": {},
	"new":      {},
	"edit":     {},
	"draft":    {},
}

// ValidateSlug enforces the URL-safe slug alphabet and the reserved list.
func ValidateSlug(slug string) error {
	if !reSlug.MatchString(slug) {
		return ErrInvalidSlug
	}
	if _, ok := reservedSlugs[slug]; ok {
		return ErrReservedSlug
	}
	return nil
}

// Slugify derives a slug from free text: lowercase, non-alphanumerics
// collapsed to single hyphens, no leading or trailing hyphen. The result
// still has to pass ValidateSlug, since it may land on a reserved word or
// come out empty.
func Slugify(s string) string {
	var b strings.Builder
	prevHyphen := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevHyphen = false
		default:
			if !prevHyphen {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
