// Package overview assembles the denormalized workspace read model: a
// workspace with its books and every book's tasks, comments, publishing
// stages, royalties and launch plans.
package overview

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

// Source provides the reads the aggregator fans out over. It is implemented
// by the batching repository source and by the REST API client.
type Source interface {
	Workspace(ctx context.Context, id string) (*domain.Workspace, error)
	BooksByWorkspace(ctx context.Context, workspaceID string) ([]domain.Book, error)
	Tasks(ctx context.Context, bookID string) ([]domain.Task, error)
	Stages(ctx context.Context, bookID string) ([]domain.PublishingStage, error)
	Royalties(ctx context.Context, bookID string) ([]domain.Royalty, error)
	LaunchPlans(ctx context.Context, bookID string) ([]domain.LaunchPlan, error)
	Comments(ctx context.Context, taskID string) ([]domain.Comment, error)
}

// DefaultConcurrency bounds in-flight reads when no limit is configured.
const DefaultConcurrency = 8

// Aggregator builds workspace overviews from a Source.
type Aggregator struct {
	src   Source
	limit int
}

// NewAggregator creates an aggregator that keeps at most limit reads in
// flight.
func NewAggregator(src Source, limit int) *Aggregator {
	if limit <= 0 {
		limit = DefaultConcurrency
	}
	return &Aggregator{src: src, limit: limit}
}

// Build fetches the workspace, its books, every book's children and every
// task's comments. Any failed read fails the whole build. Output order
// follows source order and empty child sets are empty slices.
func (a *Aggregator) Build(ctx context.Context, workspaceID string) (*domain.WorkspaceOverview, error) {
	ws, err := a.src.Workspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("fetch workspace: %w", err)
	}

	books, err := a.src.BooksByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("fetch books: %w", err)
	}

	out := &domain.WorkspaceOverview{
		Workspace: *ws,
		Books:     make([]domain.BookOverview, len(books)),
	}
	for i, b := range books {
		out.Books[i] = domain.BookOverview{Book: b}
	}

	tasks := make([][]domain.Task, len(books))
	if err := a.fetchBookChildren(ctx, out.Books, tasks); err != nil {
		return nil, err
	}

	if err := a.fetchComments(ctx, out.Books, tasks); err != nil {
		return nil, err
	}

	return out, nil
}

// fetchBookChildren fills stages, royalties and launch plans in place and
// collects each book's tasks into tasks[i].
func (a *Aggregator) fetchBookChildren(ctx context.Context, books []domain.BookOverview, tasks [][]domain.Task) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.limit)

	for i := range books {
		bookID := books[i].ID

		g.Go(func() error {
			v, err := a.src.Tasks(gctx, bookID)
			if err != nil {
				return fmt.Errorf("fetch tasks for book %s: %w", bookID, err)
			}
			tasks[i] = v
			return nil
		})
		g.Go(func() error {
			v, err := a.src.Stages(gctx, bookID)
			if err != nil {
				return fmt.Errorf("fetch stages for book %s: %w", bookID, err)
			}
			books[i].PublishingStages = orEmpty(v)
			return nil
		})
		g.Go(func() error {
			v, err := a.src.Royalties(gctx, bookID)
			if err != nil {
				return fmt.Errorf("fetch royalties for book %s: %w", bookID, err)
			}
			books[i].Royalties = orEmpty(v)
			return nil
		})
		g.Go(func() error {
			v, err := a.src.LaunchPlans(gctx, bookID)
			if err != nil {
				return fmt.Errorf("fetch launch plans for book %s: %w", bookID, err)
			}
			books[i].LaunchPlans = orEmpty(v)
			return nil
		})
	}

	return g.Wait()
}

func (a *Aggregator) fetchComments(ctx context.Context, books []domain.BookOverview, tasks [][]domain.Task) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.limit)

	for i := range books {
		books[i].Tasks = make([]domain.TaskOverview, len(tasks[i]))

		for j, t := range tasks[i] {
			books[i].Tasks[j] = domain.TaskOverview{Task: t}
			target := &books[i].Tasks[j]

			g.Go(func() error {
				v, err := a.src.Comments(gctx, t.ID)
				if err != nil {
					return fmt.Errorf("fetch comments for task %s: %w", t.ID, err)
				}
				target.Comments = orEmpty(v)
				return nil
			})
		}
	}

	return g.Wait()
}

func orEmpty[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}
