package book

import (
	"context"
	"log/slog"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

type bookRepo interface {
	List(ctx context.Context, filter domain.BookFilter) ([]domain.Book, error)
	GetByID(ctx context.Context, id string) (*domain.Book, error)
	Create(ctx context.Context, b domain.Book) (*domain.Book, error)
	Update(ctx context.Context, id string, params domain.BookUpdateParams) (*domain.Book, error)
	Delete(ctx context.Context, id string) error
}

type stageRepo interface {
	ListByBook(ctx context.Context, bookID string) ([]domain.PublishingStage, error)
	Create(ctx context.Context, s domain.PublishingStage) (*domain.PublishingStage, error)
	Update(ctx context.Context, id string, params domain.StageUpdateParams) (*domain.PublishingStage, error)
}

type royaltyRepo interface {
	ListByBook(ctx context.Context, bookID string) ([]domain.Royalty, error)
	Create(ctx context.Context, r domain.Royalty) (*domain.Royalty, error)
}

type launchPlanRepo interface {
	ListByBook(ctx context.Context, bookID string) ([]domain.LaunchPlan, error)
	Create(ctx context.Context, p domain.LaunchPlan) (*domain.LaunchPlan, error)
}

// Service manages books and the per-book pipeline records: publishing
// stages, royalties and launch plans.
type Service struct {
	books       bookRepo
	stages      stageRepo
	royalties   royaltyRepo
	launchPlans launchPlanRepo
	log         *slog.Logger
}

// NewService creates a new book service.
func NewService(
	log *slog.Logger,
	books bookRepo,
	stages stageRepo,
	royalties royaltyRepo,
	launchPlans launchPlanRepo,
) *Service {
	return &Service{
		books:       books,
		stages:      stages,
		royalties:   royalties,
		launchPlans: launchPlans,
		log:         log.With("service", "book"),
	}
}
