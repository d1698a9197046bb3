package domain

import (
	"strings"
	"time"
)

// TeamMember is a workspace membership. A row with no user id but an
// invitation id is a pending invitation.
type TeamMember struct {
	ID           string    `json:"id"            db:"id"`
	UserID       *string   `json:"user_id"       db:"user_id"`
	Email        *string   `json:"email"         db:"email"`
	InvitationID *string   `json:"invitation_id" db:"invitation_id"`
	WorkspaceID  string    `json:"workspace_id"  db:"workspace_id"`
	Role         string    `json:"role"          db:"role"`
	Status       string    `json:"status"        db:"status"`
	CreatedAt    time.Time `json:"created_at"    db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"    db:"updated_at"`
}

// IsLinked reports whether the member is bound to an identity-provider user.
func (m TeamMember) IsLinked() bool {
	return m.UserID != nil && *m.UserID != ""
}

// IsPendingInvite reports whether the member is an invitation that was never
// linked to a user.
func (m TeamMember) IsPendingInvite() bool {
	return m.Email != nil && *m.Email != "" && m.InvitationID != nil && *m.InvitationID != ""
}

// TeamMemberFilter narrows a team member listing.
type TeamMemberFilter struct {
	WorkspaceID string
	BookID      string
}

// BookAssignment links a team member to a book.
type BookAssignment struct {
	BookID       string    `json:"book_id"        db:"book_id"`
	TeamMemberID string    `json:"team_member_id" db:"team_member_id"`
	CreatedAt    time.Time `json:"created_at"     db:"created_at"`
}

// RosterEntry is a team member merged with display data. Email shadows the
// member's stored email.
type RosterEntry struct {
	TeamMember
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	ProfileImageURL string `json:"profile_image_url"`
	IsPending       bool   `json:"isPending,omitempty"`
}

// InvitedMember is the result of issuing an invitation.
type InvitedMember struct {
	TeamMember
	InvitationExternalID string `json:"invitation_external_id"`
	InvitationStatus     string `json:"invitation_status"`
}

// Roster display fallbacks.
const (
	UnknownUserName  = "Unknown User"
	UnknownUserEmail = "N/A"
)

// Invitation is an identity-provider invitation (or a local placeholder).
type Invitation struct {
	ID        string
	Status    string
	AcceptURL string
}

// InvitationParams describes an invitation to create.
type InvitationParams struct {
	OrganizationID string
	Email          string
	Role           string
	RedirectURL    string
}

// UserProfile is identity-provider user data used for display.
type UserProfile struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	ImageURL  string `json:"image_url"`
}

// FullName joins first and last name, trimmed.
func (p UserProfile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// InvitationEmail is the content of an invitation notification.
type InvitationEmail struct {
	To            string
	WorkspaceName string
	Role          string
	AcceptURL     string
}
