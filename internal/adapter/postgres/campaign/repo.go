// Package campaign implements the Campaign repository using PostgreSQL.
package campaign

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/inkhouse/publishing-backend/internal/adapter/postgres"
	"github.com/inkhouse/publishing-backend/internal/domain"
)

var columns = []string{
	"id", "workspace_id", "title", "start_date", "end_date", "status",
	"platforms", "budget_zar", "books", "performance_stats", "created_at", "updated_at",
}

// Repo provides campaign persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new campaign repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// List returns campaigns matching the filter, latest start first.
func (r *Repo) List(ctx context.Context, filter domain.CampaignFilter) ([]domain.Campaign, error) {
	q := postgres.Builder.Select(columns...).
		From("campaigns").
		OrderBy("start_date DESC NULLS LAST", "created_at DESC")

	if filter.WorkspaceID != "" {
		q = q.Where(sq.Eq{"workspace_id": filter.WorkspaceID})
	}
	if filter.Status != "" {
		q = q.Where(sq.Eq{"status": filter.Status})
	}

	campaigns := []domain.Campaign{}
	if err := postgres.SelectAll(ctx, postgres.QuerierFromCtx(ctx, r.db), &campaigns, q); err != nil {
		return nil, postgres.MapError(err, "campaign", "list")
	}
	return campaigns, nil
}

// GetByID returns a campaign by primary key.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	q := postgres.Builder.Select(columns...).From("campaigns").Where(sq.Eq{"id": id})

	var c domain.Campaign
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &c, q); err != nil {
		return nil, postgres.MapError(err, "campaign", id)
	}
	return &c, nil
}

// Create inserts a campaign.
func (r *Repo) Create(ctx context.Context, c domain.Campaign) (*domain.Campaign, error) {
	q := postgres.Builder.Insert("campaigns").
		Columns("id", "workspace_id", "title", "start_date", "end_date", "status",
			"platforms", "budget_zar", "books", "performance_stats").
		Values(c.ID, c.WorkspaceID, c.Title, c.StartDate, c.EndDate, c.Status,
			orEmpty(c.Platforms), c.BudgetZAR, orEmpty(c.Books), orEmptyMap(c.PerformanceStats)).
		Suffix(postgres.Returning(columns))

	var out domain.Campaign
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "campaign", c.ID)
	}
	return &out, nil
}

// Update applies the non-nil fields of params.
func (r *Repo) Update(ctx context.Context, id string, params domain.CampaignUpdateParams) (*domain.Campaign, error) {
	q := postgres.Touch("campaigns", columns).Where(sq.Eq{"id": id})
	q = postgres.Set(q, "title", params.Title)
	q = postgres.Set(q, "start_date", params.StartDate)
	q = postgres.Set(q, "end_date", params.EndDate)
	q = postgres.Set(q, "status", params.Status)
	q = postgres.SetValue(q, "platforms", params.Platforms, params.Platforms != nil)
	q = postgres.Set(q, "budget_zar", params.BudgetZAR)
	q = postgres.SetValue(q, "books", params.Books, params.Books != nil)
	q = postgres.SetValue(q, "performance_stats", params.PerformanceStats, params.PerformanceStats != nil)

	var out domain.Campaign
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "campaign", id)
	}
	return &out, nil
}

// Delete removes a campaign.
func (r *Repo) Delete(ctx context.Context, id string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "campaign", id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("campaign", id)
	}
	return nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func orEmptyMap(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return m
}
