package domain

import "time"

// Resource is a shared workspace link or document.
type Resource struct {
	ID          string    `json:"id"           db:"id"`
	WorkspaceID string    `json:"workspace_id" db:"workspace_id"`
	Title       string    `json:"title"        db:"title"`
	Category    string    `json:"category"     db:"category"`
	Description *string   `json:"description"  db:"description"`
	URL         *string   `json:"url"          db:"url"`
	Views       int       `json:"views"        db:"views"`
	UploadedBy  *string   `json:"uploaded_by"  db:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"   db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"   db:"updated_at"`
}

// IsPrintPartner reports whether the resource lists a print partner.
func (r Resource) IsPrintPartner() bool {
	return r.Category == CategoryPrintPartner
}

// ResourceFilter narrows and orders a resource listing.
type ResourceFilter struct {
	WorkspaceID string
	Category    string
	SearchTerm  string
	SortBy      ResourceSort
}
