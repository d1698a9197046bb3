package domain

import "time"

// Update params carry only the fields a caller wants to change. A nil
// pointer (or nil map/slice) leaves the stored value untouched.

type WorkspaceUpdateParams struct {
	Name        *string
	Slug        *string
	Description *string
	ImageURL    *string
	Settings    map[string]any
}

type BookUpdateParams struct {
	Name        *string
	Description *string
	Priority    *string
	Status      *string
	Type        *string
	StartDate   *time.Time
	EndDate     *time.Time
	TeamLead    *string
	Progress    *int
}

type StageUpdateParams struct {
	Name        *string
	Description *string
	Order       *int
	CompletedAt *time.Time
}

type TaskUpdateParams struct {
	PublishingStageID *string
	Title             *string
	Description       *string
	Status            *string
	Type              *string
	Priority          *string
	AssigneeID        *string
	DueDate           *time.Time
}

type TeamMemberUpdateParams struct {
	Role   *string
	Status *string
	UserID *string
	Email  *string
}

type ResourceUpdateParams struct {
	Title       *string
	Category    *string
	Description *string
	URL         *string
}

type CampaignUpdateParams struct {
	Title            *string
	StartDate        *time.Time
	EndDate          *time.Time
	Status           *string
	Platforms        []string
	BudgetZAR        *float64
	Books            []string
	PerformanceStats map[string]any
}

type PreferencesUpdateParams struct {
	ThemePreference    *string
	LanguagePreference *string
	Notifications      map[string]bool
}

type OnboardingUpdateParams struct {
	WorkspaceID     *string
	StepsCompleted  []string
	ProgressPercent *int
}
