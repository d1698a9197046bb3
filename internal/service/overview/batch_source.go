package overview

import (
	"context"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type workspaceRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Workspace, error)
}

type bookRepo interface {
	List(ctx context.Context, filter domain.BookFilter) ([]domain.Book, error)
}

type taskRepo interface {
	ListByBookIDs(ctx context.Context, bookIDs []string) ([]domain.Task, error)
}

type stageRepo interface {
	ListByBookIDs(ctx context.Context, bookIDs []string) ([]domain.PublishingStage, error)
}

type royaltyRepo interface {
	ListByBookIDs(ctx context.Context, bookIDs []string) ([]domain.Royalty, error)
}

type launchPlanRepo interface {
	ListByBookIDs(ctx context.Context, bookIDs []string) ([]domain.LaunchPlan, error)
}

type commentRepo interface {
	ListByTaskIDs(ctx context.Context, taskIDs []string) ([]domain.Comment, error)
}

type authorFiller interface {
	FillAuthors(ctx context.Context, comments []domain.Comment)
}

// Repos holds the repositories the batching source reads from. Authors is
// optional; when set, comment authors missing locally are resolved the same
// way the comments endpoint resolves them.
type Repos struct {
	Workspaces  workspaceRepo
	Books       bookRepo
	Tasks       taskRepo
	Stages      stageRepo
	Royalties   royaltyRepo
	LaunchPlans launchPlanRepo
	Comments    commentRepo
	Authors     authorFiller
}

// BatchSource is a Source that collapses concurrent per-parent child reads
// into one query per child type. Create one per Build; loaders cache.
type BatchSource struct {
	repos       *Repos
	tasks       *dataloader.Loader[string, []domain.Task]
	stages      *dataloader.Loader[string, []domain.PublishingStage]
	royalties   *dataloader.Loader[string, []domain.Royalty]
	launchPlans *dataloader.Loader[string, []domain.LaunchPlan]
	comments    *dataloader.Loader[string, []domain.Comment]
}

// NewBatchSource creates a batching source over repos.
func NewBatchSource(repos *Repos) *BatchSource {
	return &BatchSource{
		repos: repos,
		tasks: newLoader(batchBy(repos.Tasks.ListByBookIDs, func(t domain.Task) string {
			return t.BookID
		})),
		stages: newLoader(batchBy(repos.Stages.ListByBookIDs, func(s domain.PublishingStage) string {
			return s.BookID
		})),
		royalties: newLoader(batchBy(repos.Royalties.ListByBookIDs, func(r domain.Royalty) string {
			return r.BookID
		})),
		launchPlans: newLoader(batchBy(repos.LaunchPlans.ListByBookIDs, func(p domain.LaunchPlan) string {
			return p.BookID
		})),
		comments: newLoader(batchBy(repos.Comments.ListByTaskIDs, func(c domain.Comment) string {
			return c.TaskID
		})),
	}
}

func (s *BatchSource) Workspace(ctx context.Context, id string) (*domain.Workspace, error) {
	return s.repos.Workspaces.GetByID(ctx, id)
}

func (s *BatchSource) BooksByWorkspace(ctx context.Context, workspaceID string) ([]domain.Book, error) {
	return s.repos.Books.List(ctx, domain.BookFilter{WorkspaceID: workspaceID})
}

func (s *BatchSource) Tasks(ctx context.Context, bookID string) ([]domain.Task, error) {
	return s.tasks.Load(ctx, bookID)()
}

func (s *BatchSource) Stages(ctx context.Context, bookID string) ([]domain.PublishingStage, error) {
	return s.stages.Load(ctx, bookID)()
}

func (s *BatchSource) Royalties(ctx context.Context, bookID string) ([]domain.Royalty, error) {
	return s.royalties.Load(ctx, bookID)()
}

func (s *BatchSource) LaunchPlans(ctx context.Context, bookID string) ([]domain.LaunchPlan, error) {
	return s.launchPlans.Load(ctx, bookID)()
}

func (s *BatchSource) Comments(ctx context.Context, taskID string) ([]domain.Comment, error) {
	cached, err := s.comments.Load(ctx, taskID)()
	if err != nil || s.repos.Authors == nil || len(cached) == 0 {
		return cached, err
	}

	comments := make([]domain.Comment, len(cached))
	copy(comments, cached)
	s.repos.Authors.FillAuthors(ctx, comments)
	return comments, nil
}

func newLoader[V any](batchFn dataloader.BatchFunc[string, V]) *dataloader.Loader[string, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[string, V](wait),
		dataloader.WithBatchCapacity[string, V](maxBatch),
	)
}

// batchBy adapts a multi-parent list query into a batch function. Rows are
// grouped by parent key; keys without rows get an empty slice. Row order
// within a group follows the query order.
func batchBy[T any](
	list func(ctx context.Context, keys []string) ([]T, error),
	parent func(T) string,
) dataloader.BatchFunc[string, []T] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[[]T] {
		rows, err := list(ctx, keys)
		if err != nil {
			results := make([]*dataloader.Result[[]T], len(keys))
			for i := range results {
				results[i] = &dataloader.Result[[]T]{Error: err}
			}
			return results
		}

		grouped := make(map[string][]T, len(keys))
		for _, row := range rows {
			k := parent(row)
			grouped[k] = append(grouped[k], row)
		}

		results := make([]*dataloader.Result[[]T], len(keys))
		for i, k := range keys {
			v, ok := grouped[k]
			if !ok {
				v = []T{}
			}
			results[i] = &dataloader.Result[[]T]{Data: v}
		}
		return results
	}
}
