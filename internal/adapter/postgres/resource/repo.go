// Package resource implements the Resource repository using PostgreSQL.
package resource

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/inkhouse/publishing-backend/internal/adapter/postgres"
	"github.com/inkhouse/publishing-backend/internal/domain"
)

var columns = []string{
	"id", "workspace_id", "title", "category", "description", "url",
	"views", "uploaded_by", "created_at", "updated_at",
}

// Repo provides resource persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new resource repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// List returns resources matching the filter in the requested order.
func (r *Repo) List(ctx context.Context, filter domain.ResourceFilter) ([]domain.Resource, error) {
	q := postgres.Builder.Select(columns...).From("resources")

	if filter.WorkspaceID != "" {
		q = q.Where(sq.Eq{"workspace_id": filter.WorkspaceID})
	}
	if filter.Category != "" {
		q = q.Where(sq.Eq{"category": filter.Category})
	}
	if filter.SearchTerm != "" {
		pattern := "%" + filter.SearchTerm + "%"
		q = q.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"description": pattern},
			sq.ILike{"category": pattern},
		})
	}

	switch filter.SortBy {
	case domain.ResourceSortViews:
		q = q.OrderBy("views DESC", "title")
	case domain.ResourceSortRecentlyAdded:
		q = q.OrderBy("created_at DESC")
	default:
		q = q.OrderBy("title")
	}

	resources := []domain.Resource{}
	if err := postgres.SelectAll(ctx, postgres.QuerierFromCtx(ctx, r.db), &resources, q); err != nil {
		return nil, postgres.MapError(err, "resource", "list")
	}
	return resources, nil
}

// GetByID returns a resource by primary key.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Resource, error) {
	q := postgres.Builder.Select(columns...).From("resources").Where(sq.Eq{"id": id})

	var res domain.Resource
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &res, q); err != nil {
		return nil, postgres.MapError(err, "resource", id)
	}
	return &res, nil
}

// Create inserts a resource with zero views.
func (r *Repo) Create(ctx context.Context, res domain.Resource) (*domain.Resource, error) {
	q := postgres.Builder.Insert("resources").
		Columns("id", "workspace_id", "title", "category", "description", "url", "uploaded_by").
		Values(res.ID, res.WorkspaceID, res.Title, res.Category, res.Description, res.URL, res.UploadedBy).
		Suffix(postgres.Returning(columns))

	var out domain.Resource
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "resource", res.ID)
	}
	return &out, nil
}

// Update applies the non-nil fields of params.
func (r *Repo) Update(ctx context.Context, id string, params domain.ResourceUpdateParams) (*domain.Resource, error) {
	q := postgres.Touch("resources", columns).Where(sq.Eq{"id": id})
	q = postgres.Set(q, "title", params.Title)
	q = postgres.Set(q, "category", params.Category)
	q = postgres.Set(q, "description", params.Description)
	q = postgres.Set(q, "url", params.URL)

	var out domain.Resource
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "resource", id)
	}
	return &out, nil
}

// IncrementViews atomically adds one to the view counter.
func (r *Repo) IncrementViews(ctx context.Context, id string) (*domain.Resource, error) {
	q := postgres.Builder.Update("resources").
		Set("views", sq.Expr("views + 1")).
		Where(sq.Eq{"id": id}).
		Suffix(postgres.Returning(columns))

	var out domain.Resource
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "resource", id)
	}
	return &out, nil
}

// Delete removes a resource.
func (r *Repo) Delete(ctx context.Context, id string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM resources WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "resource", id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("resource", id)
	}
	return nil
}
