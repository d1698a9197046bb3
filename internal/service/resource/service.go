package resource

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/inkhouse/publishing-backend/internal/domain"
	"github.com/inkhouse/publishing-backend/pkg/ctxutil"
)

type resourceRepo interface {
	List(ctx context.Context, filter domain.ResourceFilter) ([]domain.Resource, error)
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
	Create(ctx context.Context, r domain.Resource) (*domain.Resource, error)
	Update(ctx context.Context, id string, params domain.ResourceUpdateParams) (*domain.Resource, error)
	IncrementViews(ctx context.Context, id string) (*domain.Resource, error)
	Delete(ctx context.Context, id string) error
}

// Service manages shared workspace resources and print partner entries.
type Service struct {
	resources resourceRepo
	log       *slog.Logger
}

// NewService creates a new resource service.
func NewService(log *slog.Logger, resources resourceRepo) *Service {
	return &Service{
		resources: resources,
		log:       log.With("service", "resource"),
	}
}

// CreateInput holds the parameters for creating a resource.
type CreateInput struct {
	ID          string
	WorkspaceID string
	Title       string
	Category    string
	Description *string
	URL         *string
	UploadedBy  *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.WorkspaceID) == "" {
		errs = append(errs, domain.FieldError{Field: "workspace_id", Message: "required"})
	}
	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if strings.TrimSpace(i.Category) == "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validSort(sort domain.ResourceSort) bool {
	switch sort {
	case domain.ResourceSortTitle, domain.ResourceSortViews, domain.ResourceSortRecentlyAdded:
		return true
	}
	return false
}

// List returns resources matching the filter.
func (s *Service) List(ctx context.Context, filter domain.ResourceFilter) ([]domain.Resource, error) {
	if !validSort(filter.SortBy) {
		return nil, domain.NewValidationError("sort_by", "must be views or recently_added")
	}
	filter.SearchTerm = strings.TrimSpace(filter.SearchTerm)

	resources, err := s.resources.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}
	return resources, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Resource, error) {
	r, err := s.resources.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get resource: %w", err)
	}
	return r, nil
}

// Create stores a new resource. The uploader defaults to the caller.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Resource, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	uploadedBy := input.UploadedBy
	if uploadedBy == nil {
		if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
			uploadedBy = &userID
		}
	}

	r, err := s.resources.Create(ctx, domain.Resource{
		ID:          domain.DefaultID(input.ID),
		WorkspaceID: input.WorkspaceID,
		Title:       strings.TrimSpace(input.Title),
		Category:    strings.TrimSpace(input.Category),
		Description: input.Description,
		URL:         input.URL,
		UploadedBy:  uploadedBy,
	})
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	s.log.InfoContext(ctx, "resource created",
		slog.String("resource_id", r.ID),
		slog.String("workspace_id", r.WorkspaceID),
		slog.Bool("print_partner", r.IsPrintPartner()),
	)

	return r, nil
}

func (s *Service) Update(ctx context.Context, id string, params domain.ResourceUpdateParams) (*domain.Resource, error) {
	if params.Title != nil && strings.TrimSpace(*params.Title) == "" {
		return nil, domain.NewValidationError("title", "required")
	}
	if params.Category != nil && strings.TrimSpace(*params.Category) == "" {
		return nil, domain.NewValidationError("category", "required")
	}

	r, err := s.resources.Update(ctx, id, params)
	if err != nil {
		return nil, fmt.Errorf("update resource: %w", err)
	}

	s.log.InfoContext(ctx, "resource updated", slog.String("resource_id", r.ID))
	return r, nil
}

// RecordView increments the view counter atomically and returns the
// updated resource.
func (s *Service) RecordView(ctx context.Context, id string) (*domain.Resource, error) {
	r, err := s.resources.IncrementViews(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("record resource view: %w", err)
	}
	return r, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.resources.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete resource: %w", err)
	}

	s.log.InfoContext(ctx, "resource deleted", slog.String("resource_id", id))
	return nil
}
