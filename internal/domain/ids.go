package domain

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a fresh random identifier in canonical UUID form.
func NewID() string {
	return uuid.NewString()
}

// DefaultID returns id unchanged, or a new identifier when id is blank.
func DefaultID(id string) string {
	if strings.TrimSpace(id) == "" {
		return NewID()
	}
	return id
}
