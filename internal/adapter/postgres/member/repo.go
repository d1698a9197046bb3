// Package member implements the TeamMember repository using PostgreSQL,
// including book assignments via the books_team_members join table.
package member

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/inkhouse/publishing-backend/internal/adapter/postgres"
	"github.com/inkhouse/publishing-backend/internal/domain"
)

var columns = []string{
	"id", "user_id", "email", "invitation_id", "workspace_id",
	"role", "status", "created_at", "updated_at",
}

// Repo provides team member persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new team member repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns members matching the filter, oldest first. A BookID filter
// restricts to members assigned to that book.
func (r *Repo) List(ctx context.Context, filter domain.TeamMemberFilter) ([]domain.TeamMember, error) {
	q := postgres.Builder.Select(qualified("tm")...).
		From("team_members tm").
		OrderBy("tm.created_at", "tm.id")

	if filter.WorkspaceID != "" {
		q = q.Where(sq.Eq{"tm.workspace_id": filter.WorkspaceID})
	}
	if filter.BookID != "" {
		q = q.Join("books_team_members btm ON btm.team_member_id = tm.id").
			Where(sq.Eq{"btm.book_id": filter.BookID})
	}

	members := []domain.TeamMember{}
	if err := postgres.SelectAll(ctx, postgres.QuerierFromCtx(ctx, r.db), &members, q); err != nil {
		return nil, postgres.MapError(err, "team member", "list")
	}
	return members, nil
}

// GetByID returns a member by primary key.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.TeamMember, error) {
	q := postgres.Builder.Select(columns...).From("team_members").Where(sq.Eq{"id": id})

	var m domain.TeamMember
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &m, q); err != nil {
		return nil, postgres.MapError(err, "team member", id)
	}
	return &m, nil
}

// GetByWorkspaceAndUser returns the member row linking userID to the workspace.
func (r *Repo) GetByWorkspaceAndUser(ctx context.Context, workspaceID, userID string) (*domain.TeamMember, error) {
	q := postgres.Builder.Select(columns...).
		From("team_members").
		Where(sq.Eq{"workspace_id": workspaceID, "user_id": userID}).
		OrderBy("created_at").
		Limit(1)

	var m domain.TeamMember
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &m, q); err != nil {
		return nil, postgres.MapError(err, "team member", userID)
	}
	return &m, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a member row.
func (r *Repo) Create(ctx context.Context, m domain.TeamMember) (*domain.TeamMember, error) {
	q := postgres.Builder.Insert("team_members").
		Columns("id", "user_id", "email", "invitation_id", "workspace_id", "role", "status").
		Values(m.ID, m.UserID, m.Email, m.InvitationID, m.WorkspaceID, m.Role, m.Status).
		Suffix(postgres.Returning(columns))

	var out domain.TeamMember
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "team member", m.ID)
	}
	return &out, nil
}

// Update applies the non-nil fields of params.
func (r *Repo) Update(ctx context.Context, id string, params domain.TeamMemberUpdateParams) (*domain.TeamMember, error) {
	q := postgres.Touch("team_members", columns).Where(sq.Eq{"id": id})
	q = postgres.Set(q, "role", params.Role)
	q = postgres.Set(q, "status", params.Status)
	q = postgres.Set(q, "user_id", params.UserID)
	q = postgres.Set(q, "email", params.Email)

	var out domain.TeamMember
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "team member", id)
	}
	return &out, nil
}

// Delete removes a member and its book assignments.
func (r *Repo) Delete(ctx context.Context, id string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "team member", id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("team member", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Book assignments
// ---------------------------------------------------------------------------

// Assign links a member to a book. Assigning twice returns ErrAlreadyExists.
func (r *Repo) Assign(ctx context.Context, bookID, memberID string) (*domain.BookAssignment, error) {
	const query = `
INSERT INTO books_team_members (book_id, team_member_id)
VALUES ($1, $2)
RETURNING book_id, team_member_id, created_at`

	var out domain.BookAssignment
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, bookID, memberID); err != nil {
		return nil, postgres.MapError(err, "assignment", bookID+"/"+memberID)
	}
	return &out, nil
}

// Unassign removes a book assignment.
func (r *Repo) Unassign(ctx context.Context, bookID, memberID string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`DELETE FROM books_team_members WHERE book_id = $1 AND team_member_id = $2`, bookID, memberID)
	if err != nil {
		return postgres.MapError(err, "assignment", bookID+"/"+memberID)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("assignment", bookID+"/"+memberID)
	}
	return nil
}

func qualified(alias string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}
