package domain

import "time"

// Book is an author project inside a workspace.
type Book struct {
	ID          string     `json:"id"           db:"id"`
	WorkspaceID string     `json:"workspace_id" db:"workspace_id"`
	Name        string     `json:"name"         db:"name"`
	Description *string    `json:"description"  db:"description"`
	Priority    string     `json:"priority"     db:"priority"`
	Status      string     `json:"status"       db:"status"`
	Type        *string    `json:"type"         db:"type"`
	StartDate   *time.Time `json:"start_date"   db:"start_date"`
	EndDate     *time.Time `json:"end_date"     db:"end_date"`
	TeamLead    *string    `json:"team_lead"    db:"team_lead"`
	Progress    int        `json:"progress"     db:"progress"`
	CreatedAt   time.Time  `json:"created_at"   db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"   db:"updated_at"`
}

// IsHybrid reports whether royalties are meaningful for the book.
func (b Book) IsHybrid() bool {
	return b.Type != nil && *b.Type == BookTypeHybrid
}

// BookFilter narrows a book listing.
type BookFilter struct {
	WorkspaceID string
}

// PublishingStage is one ordered step of a book's publishing pipeline.
type PublishingStage struct {
	ID          string     `json:"id"           db:"id"`
	BookID      string     `json:"book_id"      db:"book_id"`
	Name        string     `json:"name"         db:"name"`
	Description *string    `json:"description"  db:"description"`
	Order       int        `json:"order"        db:"order"`
	CompletedAt *time.Time `json:"completed_at" db:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"   db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"   db:"updated_at"`
}

// Royalty is a share of a book's earnings.
type Royalty struct {
	ID              string    `json:"id"               db:"id"`
	BookID          string    `json:"book_id"          db:"book_id"`
	SharePercentage float64   `json:"share_percentage" db:"share_percentage"`
	Earnings        float64   `json:"earnings"         db:"earnings"`
	CreatedAt       time.Time `json:"created_at"       db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"       db:"updated_at"`
}

// LaunchPlan describes how a book is brought to market.
type LaunchPlan struct {
	ID                string     `json:"id"                 db:"id"`
	BookID            string     `json:"book_id"            db:"book_id"`
	LaunchDate        *time.Time `json:"launch_date"        db:"launch_date"`
	Status            *string    `json:"status"             db:"status"`
	MarketingBudget   float64    `json:"marketing_budget"   db:"marketing_budget"`
	PromotionChannels []string   `json:"promotion_channels" db:"promotion_channels"`
	Notes             *string    `json:"notes"              db:"notes"`
	CreatedAt         time.Time  `json:"created_at"         db:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"         db:"updated_at"`
}
