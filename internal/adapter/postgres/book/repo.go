// Package book implements the Book repository using PostgreSQL.
package book

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/inkhouse/publishing-backend/internal/adapter/postgres"
	"github.com/inkhouse/publishing-backend/internal/domain"
)

var columns = []string{
	"id", "workspace_id", "name", "description", "priority", "status", "type",
	"start_date", "end_date", "team_lead", "progress", "created_at", "updated_at",
}

// Repo provides book persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new book repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns books matching the filter, oldest first.
func (r *Repo) List(ctx context.Context, filter domain.BookFilter) ([]domain.Book, error) {
	q := postgres.Builder.Select(columns...).From("books").OrderBy("created_at", "id")
	if filter.WorkspaceID != "" {
		q = q.Where(sq.Eq{"workspace_id": filter.WorkspaceID})
	}

	books := []domain.Book{}
	if err := postgres.SelectAll(ctx, postgres.QuerierFromCtx(ctx, r.db), &books, q); err != nil {
		return nil, postgres.MapError(err, "book", "list")
	}
	return books, nil
}

// GetByID returns a book by primary key.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Book, error) {
	q := postgres.Builder.Select(columns...).From("books").Where(sq.Eq{"id": id})

	var b domain.Book
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &b, q); err != nil {
		return nil, postgres.MapError(err, "book", id)
	}
	return &b, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a book. ID, status and priority must already be defaulted.
func (r *Repo) Create(ctx context.Context, b domain.Book) (*domain.Book, error) {
	q := postgres.Builder.Insert("books").
		Columns("id", "workspace_id", "name", "description", "priority", "status",
			"type", "start_date", "end_date", "team_lead", "progress").
		Values(b.ID, b.WorkspaceID, b.Name, b.Description, b.Priority, b.Status,
			b.Type, b.StartDate, b.EndDate, b.TeamLead, b.Progress).
		Suffix(postgres.Returning(columns))

	var out domain.Book
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "book", b.ID)
	}
	return &out, nil
}

// Update applies the non-nil fields of params.
func (r *Repo) Update(ctx context.Context, id string, params domain.BookUpdateParams) (*domain.Book, error) {
	q := postgres.Touch("books", columns).Where(sq.Eq{"id": id})
	q = postgres.Set(q, "name", params.Name)
	q = postgres.Set(q, "description", params.Description)
	q = postgres.Set(q, "priority", params.Priority)
	q = postgres.Set(q, "status", params.Status)
	q = postgres.Set(q, "type", params.Type)
	q = postgres.Set(q, "start_date", params.StartDate)
	q = postgres.Set(q, "end_date", params.EndDate)
	q = postgres.Set(q, "team_lead", params.TeamLead)
	q = postgres.Set(q, "progress", params.Progress)

	var out domain.Book
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "book", id)
	}
	return &out, nil
}

// Delete removes a book; tasks, stages, royalties, launch plans, sales and
// assignments go with it.
func (r *Repo) Delete(ctx context.Context, id string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "book", id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("book", id)
	}
	return nil
}
