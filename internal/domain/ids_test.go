package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewID_Unique(t *testing.T) {
	t.Parallel()

	const n = 10000
	seen := make(map[string]struct{}, n)
	for range n {
		id := NewID()
		if _, err := uuid.Parse(id); err != nil {
			t.Fatalf("NewID() = %q is not a canonical UUID: %v", id, err)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id after %d generations: %s", len(seen), id)
		}
		seen[id] = struct{}{}
	}
}

func TestDefaultID(t *testing.T) {
	t.Parallel()

	if got := DefaultID("book-1"); got != "book-1" {
		t.Errorf("DefaultID kept id: got %q, want %q", got, "book-1")
	}
	if got := DefaultID("  "); got == "" || got == "  " {
		t.Errorf("DefaultID(blank) = %q, want generated id", got)
	}
}
