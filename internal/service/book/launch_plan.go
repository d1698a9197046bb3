package book

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

func (s *Service) ListLaunchPlans(ctx context.Context, bookID string) ([]domain.LaunchPlan, error) {
	plans, err := s.launchPlans.ListByBook(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("list launch plans: %w", err)
	}
	return plans, nil
}

func (s *Service) CreateLaunchPlan(ctx context.Context, input CreateLaunchPlanInput) (*domain.LaunchPlan, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	channels := input.PromotionChannels
	if channels == nil {
		channels = []string{}
	}

	p, err := s.launchPlans.Create(ctx, domain.LaunchPlan{
		ID:                domain.DefaultID(input.ID),
		BookID:            input.BookID,
		LaunchDate:        input.LaunchDate,
		Status:            input.Status,
		MarketingBudget:   input.MarketingBudget,
		PromotionChannels: channels,
		Notes:             input.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("create launch plan: %w", err)
	}

	s.log.InfoContext(ctx, "launch plan created",
		slog.String("launch_plan_id", p.ID),
		slog.String("book_id", p.BookID),
	)

	return p, nil
}
