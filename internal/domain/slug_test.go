package domain

import (
	"regexp"
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Acme Press", "acme-press"},
		{"trim", "  Acme Press  ", "acme-press"},
		{"whitespace run", "Acme \t\n  Press", "acme-press"},
		{"punctuation stripped", "Acme, Press!", "acme-press"},
		{"digits kept", "Press 42", "press-42"},
		{"existing hyphen", "north-west books", "north-west-books"},
		{"non ascii dropped", "Café Éditions", "caf-ditions"},
		{"symbol between words", "Ink & Paper", "ink--paper"},
		{"empty", "", ""},
		{"only spaces", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSlugify_Charset(t *testing.T) {
	t.Parallel()

	allowed := regexp.MustCompile(`^[a-z0-9-]*$`)
	inputs := []string{
		"Acme Press", "THE BIG   BOOK", "  leading and trailing  ", "tabs\tand\nnewlines",
		"Ünïcödé Tïtlé", "emoji 📚 shelf", "under_score", "MiXeD 123 cAsE",
	}
	for _, in := range inputs {
		got := Slugify(in)
		if !allowed.MatchString(got) {
			t.Errorf("Slugify(%q) = %q contains characters outside [a-z0-9-]", in, got)
		}
		if got != strings.ToLower(got) {
			t.Errorf("Slugify(%q) = %q is not lowercase", in, got)
		}
		if strings.HasPrefix(got, "-") || strings.HasSuffix(got, "-") {
			t.Errorf("Slugify(%q) = %q has a whitespace hyphen at an edge", in, got)
		}
	}
}
