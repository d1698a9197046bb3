package apiclient

import (
	"context"
	"net/url"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

// Workspace fetches one workspace.
func (c *Client) Workspace(ctx context.Context, id string) (*domain.Workspace, error) {
	var ws domain.Workspace
	if err := c.get(ctx, "/api/workspaces/"+url.PathEscape(id), nil, &ws); err != nil {
		return nil, err
	}
	return &ws, nil
}

// BooksByWorkspace lists the books of a workspace.
func (c *Client) BooksByWorkspace(ctx context.Context, workspaceID string) ([]domain.Book, error) {
	var books []domain.Book
	err := c.get(ctx, "/api/books", url.Values{"workspace_id": {workspaceID}}, &books)
	return books, err
}

// Tasks lists the tasks of a book.
func (c *Client) Tasks(ctx context.Context, bookID string) ([]domain.Task, error) {
	var tasks []domain.Task
	err := c.get(ctx, bookPath(bookID, "tasks"), nil, &tasks)
	return tasks, err
}

// Stages lists the publishing stages of a book.
func (c *Client) Stages(ctx context.Context, bookID string) ([]domain.PublishingStage, error) {
	var stages []domain.PublishingStage
	err := c.get(ctx, bookPath(bookID, "publishingStages"), nil, &stages)
	return stages, err
}

// Royalties lists the royalties of a book.
func (c *Client) Royalties(ctx context.Context, bookID string) ([]domain.Royalty, error) {
	var royalties []domain.Royalty
	err := c.get(ctx, bookPath(bookID, "royalties"), nil, &royalties)
	return royalties, err
}

// LaunchPlans lists the launch plans of a book.
func (c *Client) LaunchPlans(ctx context.Context, bookID string) ([]domain.LaunchPlan, error) {
	var plans []domain.LaunchPlan
	err := c.get(ctx, bookPath(bookID, "launchPlans"), nil, &plans)
	return plans, err
}

// Comments lists the comments of a task.
func (c *Client) Comments(ctx context.Context, taskID string) ([]domain.Comment, error) {
	var comments []domain.Comment
	err := c.get(ctx, "/api/tasks/"+url.PathEscape(taskID)+"/comments", nil, &comments)
	return comments, err
}

// Overview fetches the server-side aggregate of a workspace.
func (c *Client) Overview(ctx context.Context, workspaceID string) (*domain.WorkspaceOverview, error) {
	var ov domain.WorkspaceOverview
	if err := c.get(ctx, "/api/workspaces/"+url.PathEscape(workspaceID)+"/overview", nil, &ov); err != nil {
		return nil, err
	}
	return &ov, nil
}

// Roster fetches the merged team roster of a workspace.
func (c *Client) Roster(ctx context.Context, workspaceID string) ([]domain.RosterEntry, error) {
	var entries []domain.RosterEntry
	err := c.get(ctx, "/api/workspaces/"+url.PathEscape(workspaceID)+"/members", nil, &entries)
	return entries, err
}

func bookPath(bookID, child string) string {
	return "/api/books/" + url.PathEscape(bookID) + "/" + child
}
