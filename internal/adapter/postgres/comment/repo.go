// Package comment implements the Comment repository using PostgreSQL.
// Reads join the local users table for author display fields.
package comment

import (
	"context"

	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/inkhouse/publishing-backend/internal/adapter/postgres"
	"github.com/inkhouse/publishing-backend/internal/domain"
)

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new comment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const listByTaskIDsSQL = `
SELECT
    c.id, c.task_id, c.user_id, c.content, c.created_at, c.updated_at,
    u.name AS user_name, u.email AS user_email, u.image AS user_image
FROM comments c
LEFT JOIN users u ON u.id = c.user_id
WHERE c.task_id = ANY($1)
ORDER BY c.task_id, c.created_at, c.id`

const createSQL = `
WITH inserted AS (
    INSERT INTO comments (id, task_id, user_id, content)
    VALUES ($1, $2, $3, $4)
    RETURNING id, task_id, user_id, content, created_at, updated_at
)
SELECT
    i.id, i.task_id, i.user_id, i.content, i.created_at, i.updated_at,
    u.name AS user_name, u.email AS user_email, u.image AS user_image
FROM inserted i
LEFT JOIN users u ON u.id = i.user_id`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// ListByTask returns the comments of a task, oldest first.
func (r *Repo) ListByTask(ctx context.Context, taskID string) ([]domain.Comment, error) {
	return r.ListByTaskIDs(ctx, []string{taskID})
}

// ListByTaskIDs returns comments for several tasks (batch for DataLoader).
func (r *Repo) ListByTaskIDs(ctx context.Context, taskIDs []string) ([]domain.Comment, error) {
	comments := []domain.Comment{}
	if len(taskIDs) == 0 {
		return comments, nil
	}

	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &comments, listByTaskIDsSQL, taskIDs); err != nil {
		return nil, postgres.MapError(err, "comment", "list")
	}
	return comments, nil
}

// Create inserts a comment and returns it with author fields joined in.
func (r *Repo) Create(ctx context.Context, c domain.Comment) (*domain.Comment, error) {
	var out domain.Comment
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, createSQL,
		c.ID, c.TaskID, c.UserID, c.Content)
	if err != nil {
		return nil, postgres.MapError(err, "comment", c.ID)
	}
	return &out, nil
}
