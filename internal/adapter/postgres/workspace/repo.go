// Package workspace implements the Workspace repository using PostgreSQL.
package workspace

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/inkhouse/publishing-backend/internal/adapter/postgres"
	"github.com/inkhouse/publishing-backend/internal/domain"
)

var columns = []string{
	"id", "name", "slug", "description", "settings",
	"owner_id", "image_url", "created_at", "updated_at",
}

// Repo provides workspace persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new workspace repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns all workspaces, newest first.
func (r *Repo) List(ctx context.Context) ([]domain.Workspace, error) {
	q := postgres.Builder.Select(columns...).From("workspaces").OrderBy("created_at DESC")

	workspaces := []domain.Workspace{}
	if err := postgres.SelectAll(ctx, postgres.QuerierFromCtx(ctx, r.db), &workspaces, q); err != nil {
		return nil, postgres.MapError(err, "workspace", "list")
	}
	return workspaces, nil
}

// GetByID returns a workspace by primary key.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Workspace, error) {
	q := postgres.Builder.Select(columns...).From("workspaces").Where(sq.Eq{"id": id})

	var w domain.Workspace
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &w, q); err != nil {
		return nil, postgres.MapError(err, "workspace", id)
	}
	return &w, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a workspace. ID and slug must already be set.
func (r *Repo) Create(ctx context.Context, w domain.Workspace) (*domain.Workspace, error) {
	settings := w.Settings
	if settings == nil {
		settings = map[string]any{}
	}

	const query = `
INSERT INTO workspaces (id, name, slug, description, settings, owner_id, image_url)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, name, slug, description, settings, owner_id, image_url, created_at, updated_at`

	var out domain.Workspace
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query,
		w.ID, w.Name, w.Slug, w.Description, settings, w.OwnerID, w.ImageURL)
	if err != nil {
		return nil, postgres.MapError(err, "workspace", w.ID)
	}
	return &out, nil
}

// Update applies the non-nil fields of params.
func (r *Repo) Update(ctx context.Context, id string, params domain.WorkspaceUpdateParams) (*domain.Workspace, error) {
	q := postgres.Touch("workspaces", columns).Where(sq.Eq{"id": id})
	q = postgres.Set(q, "name", params.Name)
	q = postgres.Set(q, "slug", params.Slug)
	q = postgres.Set(q, "description", params.Description)
	q = postgres.Set(q, "image_url", params.ImageURL)
	q = postgres.SetValue(q, "settings", params.Settings, params.Settings != nil)

	var out domain.Workspace
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "workspace", id)
	}
	return &out, nil
}

// Delete removes a workspace and, through cascades, everything it owns.
func (r *Repo) Delete(ctx context.Context, id string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM workspaces WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "workspace", id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("workspace", id)
	}
	return nil
}
