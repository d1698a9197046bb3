package domain

import "time"

// Preference defaults applied when a user has no stored preferences.
const (
	DefaultTheme    = "light"
	DefaultLanguage = "en"
)

// UserPreferences holds per-user UI settings.
type UserPreferences struct {
	UserID             string          `json:"user_id"             db:"user_id"`
	ThemePreference    string          `json:"theme_preference"    db:"theme_preference"`
	LanguagePreference string          `json:"language_preference" db:"language_preference"`
	Notifications      map[string]bool `json:"notifications"       db:"notifications"`
	CreatedAt          time.Time       `json:"created_at"          db:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"          db:"updated_at"`
}

// DefaultPreferences returns the preferences a new user starts with.
func DefaultPreferences(userID string) UserPreferences {
	return UserPreferences{
		UserID:             userID,
		ThemePreference:    DefaultTheme,
		LanguagePreference: DefaultLanguage,
		Notifications:      map[string]bool{},
	}
}

// AuthorOnboarding tracks an author's progress through onboarding steps.
type AuthorOnboarding struct {
	UserID          string    `json:"user_id"          db:"user_id"`
	WorkspaceID     *string   `json:"workspace_id"     db:"workspace_id"`
	StepsCompleted  []string  `json:"steps_completed"  db:"steps_completed"`
	ProgressPercent int       `json:"progress_percent" db:"progress_percent"`
	LastUpdated     time.Time `json:"last_updated"     db:"last_updated"`
}
