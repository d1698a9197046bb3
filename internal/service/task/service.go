package task

import (
	"context"
	"log/slog"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

type taskRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	ListByBook(ctx context.Context, bookID string) ([]domain.Task, error)
	Create(ctx context.Context, t domain.Task) (*domain.Task, error)
	Update(ctx context.Context, id string, params domain.TaskUpdateParams) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}

type commentRepo interface {
	ListByTask(ctx context.Context, taskID string) ([]domain.Comment, error)
	Create(ctx context.Context, c domain.Comment) (*domain.Comment, error)
}

// profileLookup resolves display data for comment authors missing from the
// local users table.
type profileLookup interface {
	LookupUser(ctx context.Context, userID string) (*domain.UserProfile, error)
}

// Service manages tasks and their comments.
type Service struct {
	tasks    taskRepo
	comments commentRepo
	profiles profileLookup
	log      *slog.Logger
}

// NewService creates a new task service.
func NewService(log *slog.Logger, tasks taskRepo, comments commentRepo, profiles profileLookup) *Service {
	return &Service{
		tasks:    tasks,
		comments: comments,
		profiles: profiles,
		log:      log.With("service", "task"),
	}
}
