package task

import (
	"context"
	"sync"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

var (
	_ taskRepo      = &taskRepoMock{}
	_ commentRepo   = &commentRepoMock{}
	_ profileLookup = &profileLookupMock{}
)

type taskRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id string) (*domain.Task, error)
	ListByBookFunc func(ctx context.Context, bookID string) ([]domain.Task, error)
	CreateFunc     func(ctx context.Context, t domain.Task) (*domain.Task, error)
	UpdateFunc     func(ctx context.Context, id string, params domain.TaskUpdateParams) (*domain.Task, error)
	DeleteFunc     func(ctx context.Context, id string) error
}

func (mock *taskRepoMock) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	if mock.GetByIDFunc == nil {
		panic("taskRepoMock.GetByIDFunc: method is nil but taskRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *taskRepoMock) ListByBook(ctx context.Context, bookID string) ([]domain.Task, error) {
	if mock.ListByBookFunc == nil {
		panic("taskRepoMock.ListByBookFunc: method is nil but taskRepo.ListByBook was just called")
	}
	return mock.ListByBookFunc(ctx, bookID)
}

func (mock *taskRepoMock) Create(ctx context.Context, t domain.Task) (*domain.Task, error) {
	if mock.CreateFunc == nil {
		panic("taskRepoMock.CreateFunc: method is nil but taskRepo.Create was just called")
	}
	return mock.CreateFunc(ctx, t)
}

func (mock *taskRepoMock) Update(ctx context.Context, id string, params domain.TaskUpdateParams) (*domain.Task, error) {
	if mock.UpdateFunc == nil {
		panic("taskRepoMock.UpdateFunc: method is nil but taskRepo.Update was just called")
	}
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *taskRepoMock) Delete(ctx context.Context, id string) error {
	if mock.DeleteFunc == nil {
		panic("taskRepoMock.DeleteFunc: method is nil but taskRepo.Delete was just called")
	}
	return mock.DeleteFunc(ctx, id)
}

type commentRepoMock struct {
	ListByTaskFunc func(ctx context.Context, taskID string) ([]domain.Comment, error)
	CreateFunc     func(ctx context.Context, c domain.Comment) (*domain.Comment, error)
}

func (mock *commentRepoMock) ListByTask(ctx context.Context, taskID string) ([]domain.Comment, error) {
	if mock.ListByTaskFunc == nil {
		panic("commentRepoMock.ListByTaskFunc: method is nil but commentRepo.ListByTask was just called")
	}
	return mock.ListByTaskFunc(ctx, taskID)
}

func (mock *commentRepoMock) Create(ctx context.Context, c domain.Comment) (*domain.Comment, error) {
	if mock.CreateFunc == nil {
		panic("commentRepoMock.CreateFunc: method is nil but commentRepo.Create was just called")
	}
	return mock.CreateFunc(ctx, c)
}

type profileLookupMock struct {
	LookupUserFunc func(ctx context.Context, userID string) (*domain.UserProfile, error)

	calls struct {
		LookupUser []struct {
			UserID string
		}
	}
	lockLookupUser sync.RWMutex
}

func (mock *profileLookupMock) LookupUser(ctx context.Context, userID string) (*domain.UserProfile, error) {
	if mock.LookupUserFunc == nil {
		panic("profileLookupMock.LookupUserFunc: method is nil but profileLookup.LookupUser was just called")
	}
	mock.lockLookupUser.Lock()
	mock.calls.LookupUser = append(mock.calls.LookupUser, struct{ UserID string }{UserID: userID})
	mock.lockLookupUser.Unlock()
	return mock.LookupUserFunc(ctx, userID)
}

func (mock *profileLookupMock) LookupUserCalls() []struct{ UserID string } {
	mock.lockLookupUser.RLock()
	defer mock.lockLookupUser.RUnlock()
	return mock.calls.LookupUser
}
