package marketing

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

func (s *Service) ListCampaigns(ctx context.Context, filter domain.CampaignFilter) ([]domain.Campaign, error) {
	campaigns, err := s.campaigns.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return campaigns, nil
}

func (s *Service) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	c, err := s.campaigns.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}
	return c, nil
}

// CreateCampaign stores a new campaign. Lists and stats default to empty.
func (s *Service) CreateCampaign(ctx context.Context, input CampaignInput) (*domain.Campaign, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.campaigns.Create(ctx, domain.Campaign{
		ID:               domain.DefaultID(input.ID),
		WorkspaceID:      input.WorkspaceID,
		Title:            strings.TrimSpace(input.Title),
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		Status:           input.Status,
		Platforms:        input.Platforms,
		BudgetZAR:        input.BudgetZAR,
		Books:            input.Books,
		PerformanceStats: input.PerformanceStats,
	})
	if err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}

	s.log.InfoContext(ctx, "campaign created",
		slog.String("campaign_id", c.ID),
		slog.String("workspace_id", c.WorkspaceID),
	)

	return c, nil
}

func (s *Service) UpdateCampaign(ctx context.Context, id string, params domain.CampaignUpdateParams) (*domain.Campaign, error) {
	if params.Title != nil && strings.TrimSpace(*params.Title) == "" {
		return nil, domain.NewValidationError("title", "required")
	}
	if params.BudgetZAR != nil && *params.BudgetZAR < 0 {
		return nil, domain.NewValidationError("budget_zar", "must be non-negative")
	}

	c, err := s.campaigns.Update(ctx, id, params)
	if err != nil {
		return nil, fmt.Errorf("update campaign: %w", err)
	}

	s.log.InfoContext(ctx, "campaign updated", slog.String("campaign_id", c.ID))
	return c, nil
}

func (s *Service) DeleteCampaign(ctx context.Context, id string) error {
	if err := s.campaigns.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}

	s.log.InfoContext(ctx, "campaign deleted", slog.String("campaign_id", id))
	return nil
}
