package domain

import "time"

// Campaign is a marketing push across platforms for one or more books.
type Campaign struct {
	ID               string         `json:"id"                db:"id"`
	WorkspaceID      string         `json:"workspace_id"      db:"workspace_id"`
	Title            string         `json:"title"             db:"title"`
	StartDate        *time.Time     `json:"start_date"        db:"start_date"`
	EndDate          *time.Time     `json:"end_date"          db:"end_date"`
	Status           *string        `json:"status"            db:"status"`
	Platforms        []string       `json:"platforms"         db:"platforms"`
	BudgetZAR        float64        `json:"budget_zar"        db:"budget_zar"`
	Books            []string       `json:"books"             db:"books"`
	PerformanceStats map[string]any `json:"performance_stats" db:"performance_stats"`
	CreatedAt        time.Time      `json:"created_at"        db:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"        db:"updated_at"`
}

// CampaignFilter narrows a campaign listing.
type CampaignFilter struct {
	WorkspaceID string
	Status      string
}

// BookSale is a sales record for a book on one platform.
type BookSale struct {
	ID         string    `json:"id"          db:"id"`
	BookID     string    `json:"book_id"     db:"book_id"`
	Platform   string    `json:"platform"    db:"platform"`
	RevenueZAR float64   `json:"revenue_zar" db:"revenue_zar"`
	Units      int       `json:"units"       db:"units"`
	SaleDate   time.Time `json:"sale_date"   db:"sale_date"`
	CreatedAt  time.Time `json:"created_at"  db:"created_at"`
}

// SaleFilter narrows a sales listing. Date bounds are inclusive. When
// EndIsDay is set, EndDate names a calendar day and every sale on that day
// matches.
type SaleFilter struct {
	BookID    string
	Platform  string
	StartDate *time.Time
	EndDate   *time.Time
	EndIsDay  bool
}
