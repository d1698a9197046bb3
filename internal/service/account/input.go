package account

import (
	"strings"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

var validThemes = map[string]bool{"light": true, "dark": true, "system": true}

const maxLanguageLen = 16

// PreferencesInput holds a full set of preferences for an upsert.
type PreferencesInput struct {
	UserID             string
	ThemePreference    string
	LanguagePreference string
	Notifications      map[string]bool
}

// Validate checks all fields and collects all errors.
func (i PreferencesInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.UserID) == "" {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.ThemePreference != "" && !validThemes[i.ThemePreference] {
		errs = append(errs, domain.FieldError{Field: "theme_preference", Message: "must be light, dark or system"})
	}
	if len(i.LanguagePreference) > maxLanguageLen {
		errs = append(errs, domain.FieldError{Field: "language_preference", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validatePreferencesUpdate(p domain.PreferencesUpdateParams) error {
	var errs []domain.FieldError

	if p.ThemePreference != nil && !validThemes[*p.ThemePreference] {
		errs = append(errs, domain.FieldError{Field: "theme_preference", Message: "must be light, dark or system"})
	}
	if p.LanguagePreference != nil && (*p.LanguagePreference == "" || len(*p.LanguagePreference) > maxLanguageLen) {
		errs = append(errs, domain.FieldError{Field: "language_preference", Message: "invalid language"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// OnboardingInput holds the parameters for creating an onboarding record.
type OnboardingInput struct {
	UserID          string
	WorkspaceID     *string
	StepsCompleted  []string
	ProgressPercent int
}

// Validate checks all fields and collects all errors.
func (i OnboardingInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.UserID) == "" {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.ProgressPercent < 0 || i.ProgressPercent > 100 {
		errs = append(errs, domain.FieldError{Field: "progress_percent", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
