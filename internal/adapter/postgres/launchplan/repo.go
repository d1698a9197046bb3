// Package launchplan implements the LaunchPlan repository using PostgreSQL.
package launchplan

import (
	"context"

	"github.com/inkhouse/publishing-backend/internal/adapter/postgres"
	"github.com/inkhouse/publishing-backend/internal/domain"
)

var columns = []string{
	"id", "book_id", "launch_date", "status", "marketing_budget",
	"promotion_channels", "notes", "created_at", "updated_at",
}

// Repo provides launch plan persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new launch plan repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ListByBook returns the launch plans of a book.
func (r *Repo) ListByBook(ctx context.Context, bookID string) ([]domain.LaunchPlan, error) {
	return r.ListByBookIDs(ctx, []string{bookID})
}

// ListByBookIDs returns launch plans for several books (batch for DataLoader).
func (r *Repo) ListByBookIDs(ctx context.Context, bookIDs []string) ([]domain.LaunchPlan, error) {
	plans := []domain.LaunchPlan{}
	if len(bookIDs) == 0 {
		return plans, nil
	}

	q := postgres.Builder.Select(columns...).
		From("launch_plans").
		Where("book_id = ANY(?)", bookIDs).
		OrderBy("book_id", "created_at")

	if err := postgres.SelectAll(ctx, postgres.QuerierFromCtx(ctx, r.db), &plans, q); err != nil {
		return nil, postgres.MapError(err, "launch plan", "list")
	}
	return plans, nil
}

// Create inserts a launch plan.
func (r *Repo) Create(ctx context.Context, p domain.LaunchPlan) (*domain.LaunchPlan, error) {
	channels := p.PromotionChannels
	if channels == nil {
		channels = []string{}
	}

	q := postgres.Builder.Insert("launch_plans").
		Columns("id", "book_id", "launch_date", "status", "marketing_budget", "promotion_channels", "notes").
		Values(p.ID, p.BookID, p.LaunchDate, p.Status, p.MarketingBudget, channels, p.Notes).
		Suffix(postgres.Returning(columns))

	var out domain.LaunchPlan
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "launch plan", p.ID)
	}
	return &out, nil
}
