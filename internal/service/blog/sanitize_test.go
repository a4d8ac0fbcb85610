package blog

import (
	"strings"
	"testing"
)

func TestSanitizeHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "script tag removed",
			in:   `<p>hello</p><script>alert(1)</script>`,
			want: `<p>hello</p>`,
		},
		{
			name: "event handler stripped",
			in:   `<a href="https://example.com" onclick="steal()">link</a>`,
			want: `<a href="https://example.com" rel="nofollow">link</a>`,
		},
		{
			name: "plain markup kept",
			in:   `<h2>Title</h2><p><strong>bold</strong> text</p>`,
			want: `<h2>Title</h2><p><strong>bold</strong> text</p>`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeHTML(tc.in); got != tc.want {
				t.Errorf("SanitizeHTML() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestExcerpt(t *testing.T) {
	t.Run("strips tags and collapses whitespace", func(t *testing.T) {
		got := Excerpt("<p>Hello   <b>world</b></p>\n<p>again</p>")
		if got != "Hello world again" {
			t.Errorf("Excerpt() = %q", got)
		}
	})

	t.Run("short content untouched", func(t *testing.T) {
		if got := Excerpt("short"); got != "short" {
			t.Errorf("Excerpt() = %q", got)
		}
	})

	t.Run("long content truncated with ellipsis", func(t *testing.T) {
		got := Excerpt(strings.Repeat("a", excerptLen+100))
		if len([]rune(got)) != excerptLen+3 {
			t.Errorf("len = %d, want %d", len([]rune(got)), excerptLen+3)
		}
		if !strings.HasSuffix(got, "...") {
			t.Errorf("Excerpt() = %q, want ellipsis suffix", got)
		}
	})
}
