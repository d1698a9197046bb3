package workspace

import (
	"context"
	"log/slog"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

type workspaceRepo interface {
	List(ctx context.Context) ([]domain.Workspace, error)
	GetByID(ctx context.Context, id string) (*domain.Workspace, error)
	Create(ctx context.Context, w domain.Workspace) (*domain.Workspace, error)
	Update(ctx context.Context, id string, params domain.WorkspaceUpdateParams) (*domain.Workspace, error)
	Delete(ctx context.Context, id string) error
}

// Service manages workspaces.
type Service struct {
	workspaces workspaceRepo
	log        *slog.Logger
}

// NewService creates a new workspace service.
func NewService(log *slog.Logger, workspaces workspaceRepo) *Service {
	return &Service{
		workspaces: workspaces,
		log:        log.With("service", "workspace"),
	}
}
