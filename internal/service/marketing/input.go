package marketing

import (
	"strings"
	"time"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

// CampaignInput holds the parameters for creating a campaign.
type CampaignInput struct {
	ID               string
	WorkspaceID      string
	Title            string
	StartDate        *time.Time
	EndDate          *time.Time
	Status           *string
	Platforms        []string
	BudgetZAR        float64
	Books            []string
	PerformanceStats map[string]any
}

// Validate checks all fields and collects all errors.
func (i CampaignInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.WorkspaceID) == "" {
		errs = append(errs, domain.FieldError{Field: "workspace_id", Message: "required"})
	}
	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if i.BudgetZAR < 0 {
		errs = append(errs, domain.FieldError{Field: "budget_zar", Message: "must be non-negative"})
	}
	if i.StartDate != nil && i.EndDate != nil && i.EndDate.Before(*i.StartDate) {
		errs = append(errs, domain.FieldError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SaleInput holds the parameters for recording a sale.
type SaleInput struct {
	ID         string
	BookID     string
	Platform   string
	RevenueZAR float64
	Units      int
	SaleDate   time.Time
}

// Validate checks all fields and collects all errors.
func (i SaleInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.BookID) == "" {
		errs = append(errs, domain.FieldError{Field: "book_id", Message: "required"})
	}
	if strings.TrimSpace(i.Platform) == "" {
		errs = append(errs, domain.FieldError{Field: "platform", Message: "required"})
	}
	if i.Units < 0 {
		errs = append(errs, domain.FieldError{Field: "units", Message: "must be non-negative"})
	}
	if i.SaleDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "sale_date", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
