package book

import (
	"context"
	"sync"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

var (
	_ bookRepo       = &bookRepoMock{}
	_ stageRepo      = &stageRepoMock{}
	_ royaltyRepo    = &royaltyRepoMock{}
	_ launchPlanRepo = &launchPlanRepoMock{}
)

type bookRepoMock struct {
	ListFunc    func(ctx context.Context, filter domain.BookFilter) ([]domain.Book, error)
	GetByIDFunc func(ctx context.Context, id string) (*domain.Book, error)
	CreateFunc  func(ctx context.Context, b domain.Book) (*domain.Book, error)
	UpdateFunc  func(ctx context.Context, id string, params domain.BookUpdateParams) (*domain.Book, error)
	DeleteFunc  func(ctx context.Context, id string) error

	calls struct {
		Create []struct {
			B domain.Book
		}
	}
	lockCreate sync.RWMutex
}

func (mock *bookRepoMock) List(ctx context.Context, filter domain.BookFilter) ([]domain.Book, error) {
	if mock.ListFunc == nil {
		panic("bookRepoMock.ListFunc: method is nil but bookRepo.List was just called")
	}
	return mock.ListFunc(ctx, filter)
}

func (mock *bookRepoMock) GetByID(ctx context.Context, id string) (*domain.Book, error) {
	if mock.GetByIDFunc == nil {
		panic("bookRepoMock.GetByIDFunc: method is nil but bookRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *bookRepoMock) Create(ctx context.Context, b domain.Book) (*domain.Book, error) {
	if mock.CreateFunc == nil {
		panic("bookRepoMock.CreateFunc: method is nil but bookRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ B domain.Book }{B: b})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, b)
}

func (mock *bookRepoMock) CreateCalls() []struct{ B domain.Book } {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *bookRepoMock) Update(ctx context.Context, id string, params domain.BookUpdateParams) (*domain.Book, error) {
	if mock.UpdateFunc == nil {
		panic("bookRepoMock.UpdateFunc: method is nil but bookRepo.Update was just called")
	}
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *bookRepoMock) Delete(ctx context.Context, id string) error {
	if mock.DeleteFunc == nil {
		panic("bookRepoMock.DeleteFunc: method is nil but bookRepo.Delete was just called")
	}
	return mock.DeleteFunc(ctx, id)
}

type stageRepoMock struct {
	ListByBookFunc func(ctx context.Context, bookID string) ([]domain.PublishingStage, error)
	CreateFunc     func(ctx context.Context, s domain.PublishingStage) (*domain.PublishingStage, error)
	UpdateFunc     func(ctx context.Context, id string, params domain.StageUpdateParams) (*domain.PublishingStage, error)
}

func (mock *stageRepoMock) ListByBook(ctx context.Context, bookID string) ([]domain.PublishingStage, error) {
	if mock.ListByBookFunc == nil {
		panic("stageRepoMock.ListByBookFunc: method is nil but stageRepo.ListByBook was just called")
	}
	return mock.ListByBookFunc(ctx, bookID)
}

func (mock *stageRepoMock) Create(ctx context.Context, s domain.PublishingStage) (*domain.PublishingStage, error) {
	if mock.CreateFunc == nil {
		panic("stageRepoMock.CreateFunc: method is nil but stageRepo.Create was just called")
	}
	return mock.CreateFunc(ctx, s)
}

func (mock *stageRepoMock) Update(ctx context.Context, id string, params domain.StageUpdateParams) (*domain.PublishingStage, error) {
	if mock.UpdateFunc == nil {
		panic("stageRepoMock.UpdateFunc: method is nil but stageRepo.Update was just called")
	}
	return mock.UpdateFunc(ctx, id, params)
}

type royaltyRepoMock struct {
	ListByBookFunc func(ctx context.Context, bookID string) ([]domain.Royalty, error)
	CreateFunc     func(ctx context.Context, r domain.Royalty) (*domain.Royalty, error)
}

func (mock *royaltyRepoMock) ListByBook(ctx context.Context, bookID string) ([]domain.Royalty, error) {
	if mock.ListByBookFunc == nil {
		panic("royaltyRepoMock.ListByBookFunc: method is nil but royaltyRepo.ListByBook was just called")
	}
	return mock.ListByBookFunc(ctx, bookID)
}

func (mock *royaltyRepoMock) Create(ctx context.Context, r domain.Royalty) (*domain.Royalty, error) {
	if mock.CreateFunc == nil {
		panic("royaltyRepoMock.CreateFunc: method is nil but royaltyRepo.Create was just called")
	}
	return mock.CreateFunc(ctx, r)
}

type launchPlanRepoMock struct {
	ListByBookFunc func(ctx context.Context, bookID string) ([]domain.LaunchPlan, error)
	CreateFunc     func(ctx context.Context, p domain.LaunchPlan) (*domain.LaunchPlan, error)
}

func (mock *launchPlanRepoMock) ListByBook(ctx context.Context, bookID string) ([]domain.LaunchPlan, error) {
	if mock.ListByBookFunc == nil {
		panic("launchPlanRepoMock.ListByBookFunc: method is nil but launchPlanRepo.ListByBook was just called")
	}
	return mock.ListByBookFunc(ctx, bookID)
}

func (mock *launchPlanRepoMock) Create(ctx context.Context, p domain.LaunchPlan) (*domain.LaunchPlan, error) {
	if mock.CreateFunc == nil {
		panic("launchPlanRepoMock.CreateFunc: method is nil but launchPlanRepo.Create was just called")
	}
	return mock.CreateFunc(ctx, p)
}
