package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func exec(t *testing.T, pool *pgxpool.Pool, name, sql string, args ...any) {
	t.Helper()
	if _, err := pool.Exec(context.Background(), sql, args...); err != nil {
		t.Fatalf("testhelper: %s: %v", name, err)
	}
}

// SeedUser inserts a local user profile and returns its id.
func SeedUser(t *testing.T, pool *pgxpool.Pool, name string) string {
	t.Helper()
	id := "user_" + uniqueSuffix()
	exec(t, pool, "SeedUser",
		`INSERT INTO users (id, name, email, image) VALUES ($1, $2, $3, $4)`,
		id, name, id+"@example.com", "https://img.example.com/"+id,
	)
	return id
}

// SeedWorkspace inserts a workspace and returns its id.
func SeedWorkspace(t *testing.T, pool *pgxpool.Pool) string {
	t.Helper()
	suffix := uniqueSuffix()
	id := "ws_" + suffix
	exec(t, pool, "SeedWorkspace",
		`INSERT INTO workspaces (id, name, slug) VALUES ($1, $2, $3)`,
		id, "Workspace "+suffix, "workspace-"+suffix,
	)
	return id
}

// SeedBook inserts a PLANNING book into the workspace and returns its id.
func SeedBook(t *testing.T, pool *pgxpool.Pool, workspaceID string) string {
	t.Helper()
	id := "book_" + uniqueSuffix()
	exec(t, pool, "SeedBook",
		`INSERT INTO books (id, workspace_id, name) VALUES ($1, $2, $3)`,
		id, workspaceID, "Book "+id,
	)
	return id
}

// SeedTask inserts a TODO task on the book and returns its id.
func SeedTask(t *testing.T, pool *pgxpool.Pool, bookID string) string {
	t.Helper()
	id := "task_" + uniqueSuffix()
	exec(t, pool, "SeedTask",
		`INSERT INTO tasks (id, book_id, title) VALUES ($1, $2, $3)`,
		id, bookID, "Task "+id,
	)
	return id
}

// SeedTeamMember inserts a pending invitation into the workspace and returns its id.
func SeedTeamMember(t *testing.T, pool *pgxpool.Pool, workspaceID string) string {
	t.Helper()
	suffix := uniqueSuffix()
	id := "tm_" + suffix
	exec(t, pool, "SeedTeamMember",
		`INSERT INTO team_members (id, invitation_id, email, workspace_id, role, status)
		 VALUES ($1, $2, $3, $4, 'member', 'pending')`,
		id, "inv_"+suffix, "invitee-"+suffix+"@example.com", workspaceID,
	)
	return id
}
