package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

// Onboarding returns a user's onboarding record, creating an empty one on
// first access.
func (s *Service) Onboarding(ctx context.Context, userID string) (*domain.AuthorOnboarding, error) {
	o, err := s.onboarding.Get(ctx, userID)
	if err == nil {
		return o, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get onboarding: %w", err)
	}

	o, err = s.onboarding.InsertDefault(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("create default onboarding: %w", err)
	}

	s.log.InfoContext(ctx, "onboarding initialized", slog.String("user_id", userID))
	return o, nil
}

// StartOnboarding creates an onboarding record. A second call for the same
// user fails with ErrAlreadyExists.
func (s *Service) StartOnboarding(ctx context.Context, input OnboardingInput) (*domain.AuthorOnboarding, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	steps := input.StepsCompleted
	if steps == nil {
		steps = []string{}
	}

	o, err := s.onboarding.Create(ctx, domain.AuthorOnboarding{
		UserID:          input.UserID,
		WorkspaceID:     input.WorkspaceID,
		StepsCompleted:  steps,
		ProgressPercent: input.ProgressPercent,
	})
	if err != nil {
		return nil, fmt.Errorf("create onboarding: %w", err)
	}

	s.log.InfoContext(ctx, "onboarding created", slog.String("user_id", o.UserID))
	return o, nil
}

// UpdateOnboarding records progress.
func (s *Service) UpdateOnboarding(ctx context.Context, userID string, params domain.OnboardingUpdateParams) (*domain.AuthorOnboarding, error) {
	if params.ProgressPercent != nil && (*params.ProgressPercent < 0 || *params.ProgressPercent > 100) {
		return nil, domain.NewValidationError("progress_percent", "must be between 0 and 100")
	}

	o, err := s.onboarding.Update(ctx, userID, params)
	if err != nil {
		return nil, fmt.Errorf("update onboarding: %w", err)
	}

	s.log.InfoContext(ctx, "onboarding updated",
		slog.String("user_id", userID),
		slog.Int("progress_percent", o.ProgressPercent),
	)

	return o, nil
}
