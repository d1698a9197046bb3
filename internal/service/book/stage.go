package book

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

// ListStages returns a book's publishing stages in pipeline order.
func (s *Service) ListStages(ctx context.Context, bookID string) ([]domain.PublishingStage, error) {
	stages, err := s.stages.ListByBook(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}
	return stages, nil
}

func (s *Service) CreateStage(ctx context.Context, input CreateStageInput) (*domain.PublishingStage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	stage, err := s.stages.Create(ctx, domain.PublishingStage{
		ID:          domain.DefaultID(input.ID),
		BookID:      input.BookID,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Order:       input.Order,
		CompletedAt: input.CompletedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("create stage: %w", err)
	}

	s.log.InfoContext(ctx, "stage created",
		slog.String("stage_id", stage.ID),
		slog.String("book_id", stage.BookID),
		slog.Int("order", stage.Order),
	)

	return stage, nil
}

func (s *Service) UpdateStage(ctx context.Context, input UpdateStageInput) (*domain.PublishingStage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	stage, err := s.stages.Update(ctx, input.ID, input.Params)
	if err != nil {
		return nil, fmt.Errorf("update stage: %w", err)
	}

	s.log.InfoContext(ctx, "stage updated", slog.String("stage_id", stage.ID))
	return stage, nil
}
