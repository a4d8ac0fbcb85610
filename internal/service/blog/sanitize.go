package blog

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

const excerptLen = 300

var (
	// sanitizePolicy keeps user-facing markup from the editor while
	// stripping scripts, event handlers and anything else executable.
	sanitizePolicy = bluemonday.UGCPolicy()

	// stripPolicy removes all tags; used for plain-text derivations.
	stripPolicy = bluemonday.StrictPolicy()
)

// SanitizeHTML cleans editor output before it is stored. Stored content is
// trusted by the renderer, so this is the only place sanitization happens.
func SanitizeHTML(html string) string {
	return sanitizePolicy.Sanitize(html)
}

// Excerpt derives a plain-text preview from post content: tags stripped,
// whitespace collapsed, truncated to a fixed length with an ellipsis.
func Excerpt(content string) string {
	plain := strings.Join(strings.Fields(stripPolicy.Sanitize(content)), " ")
	runes := []rune(plain)
	if len(runes) <= excerptLen {
		return plain
	}
	return string(runes[:excerptLen]) + "..."
}
