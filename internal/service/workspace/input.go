package workspace

import (
	"strings"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

// CreateInput holds the parameters for creating a workspace.
type CreateInput struct {
	ID          string
	Name        string
	Slug        string
	Description *string
	Settings    map[string]any
	OwnerID     *string
	ImageURL    string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(i.Name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the parameters for updating a workspace.
type UpdateInput struct {
	ID          string
	Name        *string
	Slug        *string
	Description *string
	ImageURL    *string
	Settings    map[string]any
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name != nil && strings.TrimSpace(*i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
