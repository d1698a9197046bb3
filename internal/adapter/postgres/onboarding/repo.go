// Package onboarding implements the AuthorOnboarding repository using PostgreSQL.
package onboarding

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/inkhouse/publishing-backend/internal/adapter/postgres"
	"github.com/inkhouse/publishing-backend/internal/domain"
)

var columns = []string{"user_id", "workspace_id", "steps_completed", "progress_percent", "last_updated"}

// Repo provides onboarding persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new onboarding repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Get returns the onboarding record of a user.
func (r *Repo) Get(ctx context.Context, userID string) (*domain.AuthorOnboarding, error) {
	q := postgres.Builder.Select(columns...).From("author_onboarding").Where(sq.Eq{"user_id": userID})

	var o domain.AuthorOnboarding
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &o, q); err != nil {
		return nil, postgres.MapError(err, "onboarding", userID)
	}
	return &o, nil
}

// Create inserts a record. A second create for the same user returns
// ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, o domain.AuthorOnboarding) (*domain.AuthorOnboarding, error) {
	steps := o.StepsCompleted
	if steps == nil {
		steps = []string{}
	}

	q := postgres.Builder.Insert("author_onboarding").
		Columns("user_id", "workspace_id", "steps_completed", "progress_percent").
		Values(o.UserID, o.WorkspaceID, steps, o.ProgressPercent).
		Suffix(postgres.Returning(columns))

	var out domain.AuthorOnboarding
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "onboarding", o.UserID)
	}
	return &out, nil
}

// InsertDefault stores an empty record unless one exists, then returns the
// stored row.
func (r *Repo) InsertDefault(ctx context.Context, userID string) (*domain.AuthorOnboarding, error) {
	const query = `
WITH ins AS (
    INSERT INTO author_onboarding (user_id) VALUES ($1)
    ON CONFLICT (user_id) DO NOTHING
    RETURNING user_id, workspace_id, steps_completed, progress_percent, last_updated
)
SELECT user_id, workspace_id, steps_completed, progress_percent, last_updated FROM ins
UNION ALL
SELECT user_id, workspace_id, steps_completed, progress_percent, last_updated
FROM author_onboarding WHERE user_id = $1
LIMIT 1`

	var out domain.AuthorOnboarding
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, userID); err != nil {
		return nil, postgres.MapError(err, "onboarding", userID)
	}
	return &out, nil
}

// Update applies the non-nil fields of params and stamps last_updated.
func (r *Repo) Update(ctx context.Context, userID string, params domain.OnboardingUpdateParams) (*domain.AuthorOnboarding, error) {
	q := postgres.Builder.Update("author_onboarding").
		Set("last_updated", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID}).
		Suffix(postgres.Returning(columns))
	q = postgres.Set(q, "workspace_id", params.WorkspaceID)
	q = postgres.SetValue(q, "steps_completed", params.StepsCompleted, params.StepsCompleted != nil)
	q = postgres.Set(q, "progress_percent", params.ProgressPercent)

	var out domain.AuthorOnboarding
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "onboarding", userID)
	}
	return &out, nil
}
