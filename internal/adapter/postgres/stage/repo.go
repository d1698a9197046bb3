// Package stage implements the PublishingStage repository using PostgreSQL.
package stage

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/inkhouse/publishing-backend/internal/adapter/postgres"
	"github.com/inkhouse/publishing-backend/internal/domain"
)

var columns = []string{
	"id", "book_id", "name", "description", `"order"`, "completed_at", "created_at", "updated_at",
}

// Repo provides publishing stage persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new stage repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ListByBook returns the stages of a book in pipeline order.
func (r *Repo) ListByBook(ctx context.Context, bookID string) ([]domain.PublishingStage, error) {
	return r.ListByBookIDs(ctx, []string{bookID})
}

// ListByBookIDs returns stages for several books (batch for DataLoader),
// ordered by book then pipeline order.
func (r *Repo) ListByBookIDs(ctx context.Context, bookIDs []string) ([]domain.PublishingStage, error) {
	stages := []domain.PublishingStage{}
	if len(bookIDs) == 0 {
		return stages, nil
	}

	q := postgres.Builder.Select(columns...).
		From("publishing_stages").
		Where("book_id = ANY(?)", bookIDs).
		OrderBy("book_id", `"order"`, "created_at")

	if err := postgres.SelectAll(ctx, postgres.QuerierFromCtx(ctx, r.db), &stages, q); err != nil {
		return nil, postgres.MapError(err, "publishing stage", "list")
	}
	return stages, nil
}

// Create inserts a stage.
func (r *Repo) Create(ctx context.Context, s domain.PublishingStage) (*domain.PublishingStage, error) {
	q := postgres.Builder.Insert("publishing_stages").
		Columns("id", "book_id", "name", "description", `"order"`, "completed_at").
		Values(s.ID, s.BookID, s.Name, s.Description, s.Order, s.CompletedAt).
		Suffix(postgres.Returning(columns))

	var out domain.PublishingStage
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "publishing stage", s.ID)
	}
	return &out, nil
}

// Update applies the non-nil fields of params.
func (r *Repo) Update(ctx context.Context, id string, params domain.StageUpdateParams) (*domain.PublishingStage, error) {
	q := postgres.Touch("publishing_stages", columns).Where(sq.Eq{"id": id})
	q = postgres.Set(q, "name", params.Name)
	q = postgres.Set(q, "description", params.Description)
	q = postgres.Set(q, `"order"`, params.Order)
	q = postgres.Set(q, "completed_at", params.CompletedAt)

	var out domain.PublishingStage
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "publishing stage", id)
	}
	return &out, nil
}
