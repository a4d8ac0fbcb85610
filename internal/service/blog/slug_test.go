package blog

import (
	"errors"
	"testing"
)

func TestValidateSlug(t *testing.T) {
	tests := []struct {
		slug    string
		wantErr error
	}{
		{"getting-started", nil},
		{"release-2025", nil},
		{"a", nil},
		{"", ErrInvalidSlug},
		{"Hello-World", ErrInvalidSlug},
		{"with space", ErrInvalidSlug},
		{"under_score", ErrInvalidSlug},
		{"café", ErrInvalidSlug},
		{"admin", ErrReservedSlug},
		{"api", ErrReservedSlug},
		{"blog", ErrReservedSlug},
		{"category", ErrReservedSlug},
		{"new", ErrReservedSlug},
		{"edit", ErrReservedSlug},
		{"draft", ErrReservedSlug},
	}

	for _, tc := range tests {
		t.Run(tc.slug, func(t *testing.T) {
			if err := ValidateSlug(tc.slug); !errors.Is(err, tc.wantErr) {
				t.Errorf("ValidateSlug(%q) = %v, want %v", tc.slug, err, tc.wantErr)
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Getting Started", "getting-started"},
		{"  Release 2025!  ", "release-2025"},
		{"What's new?", "what-s-new"},
		{"already-a-slug", "already-a-slug"},
		{"---", ""},
		{"", ""},
	}

	for _, tc := range tests {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
