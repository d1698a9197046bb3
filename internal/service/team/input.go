package team

import (
	"strings"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

// InviteInput holds the parameters for inviting someone to a workspace.
type InviteInput struct {
	Email       string
	WorkspaceID string
	Role        string
}

// Validate checks all fields and collects all errors.
func (i InviteInput) Validate() error {
	var errs []domain.FieldError

	email := strings.TrimSpace(i.Email)
	if email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if !strings.Contains(email, "@") {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	if strings.TrimSpace(i.WorkspaceID) == "" {
		errs = append(errs, domain.FieldError{Field: "workspace_id", Message: "required"})
	}
	if strings.TrimSpace(i.Role) == "" {
		errs = append(errs, domain.FieldError{Field: "role", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the parameters for updating a team member.
type UpdateInput struct {
	ID     string
	Params domain.TeamMemberUpdateParams
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Params.Role != nil && strings.TrimSpace(*i.Params.Role) == "" {
		errs = append(errs, domain.FieldError{Field: "role", Message: "required"})
	}
	if i.Params.Status != nil && !domain.MemberStatus(*i.Params.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be pending or active"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AssignInput links a team member to a book.
type AssignInput struct {
	BookID       string
	TeamMemberID string
}

// Validate checks all fields and collects all errors.
func (i AssignInput) Validate() error {
	var errs []domain.FieldError

	if i.BookID == "" {
		errs = append(errs, domain.FieldError{Field: "book_id", Message: "required"})
	}
	if i.TeamMemberID == "" {
		errs = append(errs, domain.FieldError{Field: "team_member_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
