package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

// Preferences returns a user's preferences, storing the defaults on first
// access.
func (s *Service) Preferences(ctx context.Context, userID string) (*domain.UserPreferences, error) {
	var out *domain.UserPreferences

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.preferences.Get(ctx, userID)
		if err == nil {
			out = p
			return nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}

		if err := s.preferences.InsertDefault(ctx, domain.DefaultPreferences(userID)); err != nil {
			return err
		}
		out, err = s.preferences.Get(ctx, userID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get preferences: %w", err)
	}
	return out, nil
}

// SavePreferences creates or replaces a user's preferences. Blank values
// take the defaults.
func (s *Service) SavePreferences(ctx context.Context, input PreferencesInput) (*domain.UserPreferences, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p := domain.DefaultPreferences(input.UserID)
	if input.ThemePreference != "" {
		p.ThemePreference = input.ThemePreference
	}
	if input.LanguagePreference != "" {
		p.LanguagePreference = input.LanguagePreference
	}
	if input.Notifications != nil {
		p.Notifications = input.Notifications
	}

	saved, err := s.preferences.Upsert(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("save preferences: %w", err)
	}

	s.log.InfoContext(ctx, "preferences saved", slog.String("user_id", saved.UserID))
	return saved, nil
}

// UpdatePreferences changes the provided fields. Missing preferences are
// not created.
func (s *Service) UpdatePreferences(ctx context.Context, userID string, params domain.PreferencesUpdateParams) (*domain.UserPreferences, error) {
	if err := validatePreferencesUpdate(params); err != nil {
		return nil, err
	}

	p, err := s.preferences.Update(ctx, userID, params)
	if err != nil {
		return nil, fmt.Errorf("update preferences: %w", err)
	}

	s.log.InfoContext(ctx, "preferences updated", slog.String("user_id", userID))
	return p, nil
}
