package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/inkhouse/publishing-backend/internal/domain"
	"github.com/inkhouse/publishing-backend/pkg/ctxutil"
)

// List returns all workspaces.
func (s *Service) List(ctx context.Context) ([]domain.Workspace, error) {
	workspaces, err := s.workspaces.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	return workspaces, nil
}

// Get returns a single workspace.
func (s *Service) Get(ctx context.Context, id string) (*domain.Workspace, error) {
	w, err := s.workspaces.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get workspace: %w", err)
	}
	return w, nil
}

// Create stores a new workspace. A blank id is generated, a blank slug is
// derived from the name and the owner defaults to the caller.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Workspace, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	slug := strings.TrimSpace(input.Slug)
	if slug == "" {
		slug = domain.Slugify(name)
	}

	settings := input.Settings
	if settings == nil {
		settings = map[string]any{}
	}

	owner := input.OwnerID
	if owner == nil {
		if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
			owner = &userID
		}
	}

	w, err := s.workspaces.Create(ctx, domain.Workspace{
		ID:          domain.DefaultID(input.ID),
		Name:        name,
		Slug:        slug,
		Description: input.Description,
		Settings:    settings,
		OwnerID:     owner,
		ImageURL:    input.ImageURL,
	})
	if err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}

	s.log.InfoContext(ctx, "workspace created",
		slog.String("workspace_id", w.ID),
		slog.String("slug", w.Slug),
	)

	return w, nil
}

// Update changes the provided fields of a workspace.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Workspace, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.WorkspaceUpdateParams{
		Name:        trimmed(input.Name),
		Slug:        input.Slug,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Settings:    input.Settings,
	}
	if params.Slug != nil && strings.TrimSpace(*params.Slug) == "" && params.Name != nil {
		derived := domain.Slugify(*params.Name)
		params.Slug = &derived
	}

	w, err := s.workspaces.Update(ctx, input.ID, params)
	if err != nil {
		return nil, fmt.Errorf("update workspace: %w", err)
	}

	s.log.InfoContext(ctx, "workspace updated", slog.String("workspace_id", w.ID))
	return w, nil
}

// Delete removes a workspace and everything it owns.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.workspaces.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete workspace: %w", err)
	}

	s.log.InfoContext(ctx, "workspace deleted", slog.String("workspace_id", id))
	return nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
