package workspace

import (
	"context"
	"sync"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

var _ workspaceRepo = &workspaceRepoMock{}

type workspaceRepoMock struct {
	ListFunc    func(ctx context.Context) ([]domain.Workspace, error)
	GetByIDFunc func(ctx context.Context, id string) (*domain.Workspace, error)
	CreateFunc  func(ctx context.Context, w domain.Workspace) (*domain.Workspace, error)
	UpdateFunc  func(ctx context.Context, id string, params domain.WorkspaceUpdateParams) (*domain.Workspace, error)
	DeleteFunc  func(ctx context.Context, id string) error

	calls struct {
		Create []struct {
			W domain.Workspace
		}
		Update []struct {
			ID     string
			Params domain.WorkspaceUpdateParams
		}
	}
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
}

func (mock *workspaceRepoMock) List(ctx context.Context) ([]domain.Workspace, error) {
	if mock.ListFunc == nil {
		panic("workspaceRepoMock.ListFunc: method is nil but workspaceRepo.List was just called")
	}
	return mock.ListFunc(ctx)
}

func (mock *workspaceRepoMock) GetByID(ctx context.Context, id string) (*domain.Workspace, error) {
	if mock.GetByIDFunc == nil {
		panic("workspaceRepoMock.GetByIDFunc: method is nil but workspaceRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *workspaceRepoMock) Create(ctx context.Context, w domain.Workspace) (*domain.Workspace, error) {
	if mock.CreateFunc == nil {
		panic("workspaceRepoMock.CreateFunc: method is nil but workspaceRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ W domain.Workspace }{W: w})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, w)
}

func (mock *workspaceRepoMock) CreateCalls() []struct{ W domain.Workspace } {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *workspaceRepoMock) Update(ctx context.Context, id string, params domain.WorkspaceUpdateParams) (*domain.Workspace, error) {
	if mock.UpdateFunc == nil {
		panic("workspaceRepoMock.UpdateFunc: method is nil but workspaceRepo.Update was just called")
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, struct {
		ID     string
		Params domain.WorkspaceUpdateParams
	}{ID: id, Params: params})
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *workspaceRepoMock) UpdateCalls() []struct {
	ID     string
	Params domain.WorkspaceUpdateParams
} {
	mock.lockUpdate.RLock()
	defer mock.lockUpdate.RUnlock()
	return mock.calls.Update
}

func (mock *workspaceRepoMock) Delete(ctx context.Context, id string) error {
	if mock.DeleteFunc == nil {
		panic("workspaceRepoMock.DeleteFunc: method is nil but workspaceRepo.Delete was just called")
	}
	return mock.DeleteFunc(ctx, id)
}
