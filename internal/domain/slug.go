package domain

import (
	"strings"
	"unicode"
)

// Slugify derives a URL slug from a display name:
//   - converts to lowercase and trims surrounding whitespace
//   - replaces each run of whitespace with a single hyphen
//   - drops every character outside [a-z0-9-]
//
// The result is not guaranteed to be unique.
func Slugify(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(name))
	prevSpace := false
	for _, r := range name {
		if unicode.IsSpace(r) {
			if !prevSpace {
				b.WriteByte('-')
			}
			prevSpace = true
			continue
		}
		prevSpace = false
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
