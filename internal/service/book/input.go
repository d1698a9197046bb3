package book

import (
	"strings"
	"time"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

// CreateInput holds the parameters for creating a book.
type CreateInput struct {
	ID          string
	WorkspaceID string
	Name        string
	Description *string
	Priority    string
	Status      string
	Type        *string
	StartDate   *time.Time
	EndDate     *time.Time
	TeamLead    *string
	Progress    *int
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.WorkspaceID) == "" {
		errs = append(errs, domain.FieldError{Field: "workspace_id", Message: "required"})
	}
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.Priority != "" && !domain.BookPriority(i.Priority).IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be LOW, MEDIUM or HIGH"})
	}
	if i.Status != "" && !domain.BookStatus(i.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}
	errs = validateProgress(errs, i.Progress)
	errs = validateRange(errs, i.StartDate, i.EndDate)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the parameters for updating a book.
type UpdateInput struct {
	ID     string
	Params domain.BookUpdateParams
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	p := i.Params
	if i.ID == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if p.Priority != nil && !domain.BookPriority(*p.Priority).IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be LOW, MEDIUM or HIGH"})
	}
	if p.Status != nil && !domain.BookStatus(*p.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}
	errs = validateProgress(errs, p.Progress)
	errs = validateRange(errs, p.StartDate, p.EndDate)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateStageInput holds the parameters for adding a publishing stage.
type CreateStageInput struct {
	ID          string
	BookID      string
	Name        string
	Description *string
	Order       int
	CompletedAt *time.Time
}

// Validate checks all fields and collects all errors.
func (i CreateStageInput) Validate() error {
	var errs []domain.FieldError

	if i.BookID == "" {
		errs = append(errs, domain.FieldError{Field: "book_id", Message: "required"})
	}
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.Order < 0 {
		errs = append(errs, domain.FieldError{Field: "order", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateStageInput holds the parameters for updating a publishing stage.
type UpdateStageInput struct {
	ID     string
	Params domain.StageUpdateParams
}

// Validate checks all fields and collects all errors.
func (i UpdateStageInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Params.Name != nil && strings.TrimSpace(*i.Params.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.Params.Order != nil && *i.Params.Order < 0 {
		errs = append(errs, domain.FieldError{Field: "order", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateRoyaltyInput holds the parameters for adding a royalty.
type CreateRoyaltyInput struct {
	ID              string
	BookID          string
	SharePercentage float64
	Earnings        float64
}

// Validate checks all fields and collects all errors.
func (i CreateRoyaltyInput) Validate() error {
	var errs []domain.FieldError

	if i.BookID == "" {
		errs = append(errs, domain.FieldError{Field: "book_id", Message: "required"})
	}
	if i.SharePercentage < 0 || i.SharePercentage > 100 {
		errs = append(errs, domain.FieldError{Field: "share_percentage", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateLaunchPlanInput holds the parameters for adding a launch plan.
type CreateLaunchPlanInput struct {
	ID                string
	BookID            string
	LaunchDate        *time.Time
	Status            *string
	MarketingBudget   float64
	PromotionChannels []string
	Notes             *string
}

// Validate checks all fields and collects all errors.
func (i CreateLaunchPlanInput) Validate() error {
	var errs []domain.FieldError

	if i.BookID == "" {
		errs = append(errs, domain.FieldError{Field: "book_id", Message: "required"})
	}
	if i.MarketingBudget < 0 {
		errs = append(errs, domain.FieldError{Field: "marketing_budget", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateProgress(errs []domain.FieldError, progress *int) []domain.FieldError {
	if progress != nil && (*progress < 0 || *progress > 100) {
		errs = append(errs, domain.FieldError{Field: "progress", Message: "must be between 0 and 100"})
	}
	return errs
}

func validateRange(errs []domain.FieldError, start, end *time.Time) []domain.FieldError {
	if start != nil && end != nil && end.Before(*start) {
		errs = append(errs, domain.FieldError{Field: "end_date", Message: "must not be before start_date"})
	}
	return errs
}
