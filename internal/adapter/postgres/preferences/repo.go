// Package preferences implements the UserPreferences repository using PostgreSQL.
package preferences

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/inkhouse/publishing-backend/internal/adapter/postgres"
	"github.com/inkhouse/publishing-backend/internal/domain"
)

var columns = []string{
	"user_id", "theme_preference", "language_preference", "notifications", "created_at", "updated_at",
}

const upsertSQL = `
INSERT INTO user_preferences (user_id, theme_preference, language_preference, notifications)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id) DO UPDATE SET
    theme_preference    = EXCLUDED.theme_preference,
    language_preference = EXCLUDED.language_preference,
    notifications       = EXCLUDED.notifications,
    updated_at          = now()
RETURNING user_id, theme_preference, language_preference, notifications, created_at, updated_at`

const insertDefaultSQL = `
INSERT INTO user_preferences (user_id, theme_preference, language_preference, notifications)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id) DO NOTHING`

// Repo provides preferences persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new preferences repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Get returns the preferences of a user.
func (r *Repo) Get(ctx context.Context, userID string) (*domain.UserPreferences, error) {
	q := postgres.Builder.Select(columns...).From("user_preferences").Where(sq.Eq{"user_id": userID})

	var p domain.UserPreferences
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &p, q); err != nil {
		return nil, postgres.MapError(err, "preferences", userID)
	}
	return &p, nil
}

// Upsert creates or replaces the preferences of p.UserID.
func (r *Repo) Upsert(ctx context.Context, p domain.UserPreferences) (*domain.UserPreferences, error) {
	var out domain.UserPreferences
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, upsertSQL,
		p.UserID, p.ThemePreference, p.LanguagePreference, notificationsOrEmpty(p.Notifications))
	if err != nil {
		return nil, postgres.MapError(err, "preferences", p.UserID)
	}
	return &out, nil
}

// InsertDefault stores p unless the user already has preferences. A
// concurrent first read therefore never overwrites a real row.
func (r *Repo) InsertDefault(ctx context.Context, p domain.UserPreferences) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertDefaultSQL,
		p.UserID, p.ThemePreference, p.LanguagePreference, notificationsOrEmpty(p.Notifications))
	if err != nil {
		return postgres.MapError(err, "preferences", p.UserID)
	}
	return nil
}

// Update applies the non-nil fields of params.
func (r *Repo) Update(ctx context.Context, userID string, params domain.PreferencesUpdateParams) (*domain.UserPreferences, error) {
	q := postgres.Touch("user_preferences", columns).Where(sq.Eq{"user_id": userID})
	q = postgres.Set(q, "theme_preference", params.ThemePreference)
	q = postgres.Set(q, "language_preference", params.LanguagePreference)
	q = postgres.SetValue(q, "notifications", params.Notifications, params.Notifications != nil)

	var out domain.UserPreferences
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "preferences", userID)
	}
	return &out, nil
}

func notificationsOrEmpty(n map[string]bool) map[string]bool {
	if n == nil {
		return map[string]bool{}
	}
	return n
}
