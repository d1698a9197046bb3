package account

import (
	"context"
	"log/slog"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

type preferencesRepo interface {
	Get(ctx context.Context, userID string) (*domain.UserPreferences, error)
	Upsert(ctx context.Context, p domain.UserPreferences) (*domain.UserPreferences, error)
	InsertDefault(ctx context.Context, p domain.UserPreferences) error
	Update(ctx context.Context, userID string, params domain.PreferencesUpdateParams) (*domain.UserPreferences, error)
}

type onboardingRepo interface {
	Get(ctx context.Context, userID string) (*domain.AuthorOnboarding, error)
	Create(ctx context.Context, o domain.AuthorOnboarding) (*domain.AuthorOnboarding, error)
	InsertDefault(ctx context.Context, userID string) (*domain.AuthorOnboarding, error)
	Update(ctx context.Context, userID string, params domain.OnboardingUpdateParams) (*domain.AuthorOnboarding, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages per-user preferences and author onboarding progress.
type Service struct {
	preferences preferencesRepo
	onboarding  onboardingRepo
	tx          txManager
	log         *slog.Logger
}

// NewService creates a new account service.
func NewService(log *slog.Logger, preferences preferencesRepo, onboarding onboardingRepo, tx txManager) *Service {
	return &Service{
		preferences: preferences,
		onboarding:  onboarding,
		tx:          tx,
		log:         log.With("service", "account"),
	}
}
