package clerk

import (
	"context"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

// Disabled is used when no Clerk secret key is configured. Invitations get a
// local placeholder id so they can still be recorded; lookups fail.
type Disabled struct{}

// CreateInvitation returns a pending placeholder invitation.
func (Disabled) CreateInvitation(_ context.Context, _ domain.InvitationParams) (*domain.Invitation, error) {
	return &domain.Invitation{
		ID:        domain.NewID(),
		Status:    "pending",
		AcceptURL: "#",
	}, nil
}

// LookupUser always fails with domain.ErrIdentityDisabled.
func (Disabled) LookupUser(_ context.Context, _ string) (*domain.UserProfile, error) {
	return nil, domain.ErrIdentityDisabled
}
