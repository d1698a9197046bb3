package domain

import "time"

// Workspace is a tenant. It owns books, team members, resources and campaigns.
type Workspace struct {
	ID          string         `json:"id"          db:"id"`
	Name        string         `json:"name"        db:"name"`
	Slug        string         `json:"slug"        db:"slug"`
	Description *string        `json:"description" db:"description"`
	Settings    map[string]any `json:"settings"    db:"settings"`
	OwnerID     *string        `json:"owner_id"    db:"owner_id"`
	ImageURL    string         `json:"image_url"   db:"image_url"`
	CreatedAt   time.Time      `json:"created_at"  db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"  db:"updated_at"`
}

// User is a locally cached profile of an identity-provider user.
type User struct {
	ID    string  `json:"id"    db:"id"`
	Name  *string `json:"name"  db:"name"`
	Email *string `json:"email" db:"email"`
	Image *string `json:"image" db:"image"`
}
