// Package task implements the Task repository using PostgreSQL.
package task

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/inkhouse/publishing-backend/internal/adapter/postgres"
	"github.com/inkhouse/publishing-backend/internal/domain"
)

var columns = []string{
	"id", "book_id", "publishing_stage_id", "title", "description", "status",
	"type", "priority", "assignee_id", "due_date", "created_at", "updated_at",
}

// Repo provides task persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new task repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a task by primary key.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	q := postgres.Builder.Select(columns...).From("tasks").Where(sq.Eq{"id": id})

	var t domain.Task
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &t, q); err != nil {
		return nil, postgres.MapError(err, "task", id)
	}
	return &t, nil
}

// ListByBook returns the tasks of a book, oldest first.
func (r *Repo) ListByBook(ctx context.Context, bookID string) ([]domain.Task, error) {
	return r.ListByBookIDs(ctx, []string{bookID})
}

// ListByBookIDs returns tasks for several books (batch for DataLoader).
func (r *Repo) ListByBookIDs(ctx context.Context, bookIDs []string) ([]domain.Task, error) {
	tasks := []domain.Task{}
	if len(bookIDs) == 0 {
		return tasks, nil
	}

	q := postgres.Builder.Select(columns...).
		From("tasks").
		Where("book_id = ANY(?)", bookIDs).
		OrderBy("book_id", "created_at", "id")

	if err := postgres.SelectAll(ctx, postgres.QuerierFromCtx(ctx, r.db), &tasks, q); err != nil {
		return nil, postgres.MapError(err, "task", "list")
	}
	return tasks, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a task. ID and status must already be defaulted.
func (r *Repo) Create(ctx context.Context, t domain.Task) (*domain.Task, error) {
	q := postgres.Builder.Insert("tasks").
		Columns("id", "book_id", "publishing_stage_id", "title", "description", "status",
			"type", "priority", "assignee_id", "due_date").
		Values(t.ID, t.BookID, t.PublishingStageID, t.Title, t.Description, t.Status,
			t.Type, t.Priority, t.AssigneeID, t.DueDate).
		Suffix(postgres.Returning(columns))

	var out domain.Task
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "task", t.ID)
	}
	return &out, nil
}

// Update applies the non-nil fields of params.
func (r *Repo) Update(ctx context.Context, id string, params domain.TaskUpdateParams) (*domain.Task, error) {
	q := postgres.Touch("tasks", columns).Where(sq.Eq{"id": id})
	q = postgres.Set(q, "publishing_stage_id", params.PublishingStageID)
	q = postgres.Set(q, "title", params.Title)
	q = postgres.Set(q, "description", params.Description)
	q = postgres.Set(q, "status", params.Status)
	q = postgres.Set(q, "type", params.Type)
	q = postgres.Set(q, "priority", params.Priority)
	q = postgres.Set(q, "assignee_id", params.AssigneeID)
	q = postgres.Set(q, "due_date", params.DueDate)

	var out domain.Task
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "task", id)
	}
	return &out, nil
}

// Delete removes a task and its comments.
func (r *Repo) Delete(ctx context.Context, id string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "task", id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("task", id)
	}
	return nil
}
