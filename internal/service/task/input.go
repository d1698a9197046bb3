package task

import (
	"strings"
	"time"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

// CreateInput holds the parameters for creating a task.
type CreateInput struct {
	ID                string
	BookID            string
	PublishingStageID *string
	Title             string
	Description       *string
	Status            string
	Type              *string
	Priority          *string
	AssigneeID        *string
	DueDate           *time.Time
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.BookID) == "" {
		errs = append(errs, domain.FieldError{Field: "book_id", Message: "required"})
	}
	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if i.Status != "" && !domain.TaskStatus(i.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be TODO, IN_PROGRESS or DONE"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the parameters for updating a task.
type UpdateInput struct {
	ID     string
	Params domain.TaskUpdateParams
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Params.Title != nil && strings.TrimSpace(*i.Params.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if i.Params.Status != nil && !domain.TaskStatus(*i.Params.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be TODO, IN_PROGRESS or DONE"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CommentInput holds the parameters for adding a comment. An empty UserID
// is filled from the caller.
type CommentInput struct {
	ID      string
	TaskID  string
	UserID  string
	Content string
}

// Validate checks all fields and collects all errors.
func (i CommentInput) Validate() error {
	var errs []domain.FieldError

	if i.TaskID == "" {
		errs = append(errs, domain.FieldError{Field: "task_id", Message: "required"})
	}
	if strings.TrimSpace(i.UserID) == "" {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if len(i.Content) > 10000 {
		errs = append(errs, domain.FieldError{Field: "content", Message: "max 10000 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
