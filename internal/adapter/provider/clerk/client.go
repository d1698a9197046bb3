// Package clerk bridges workspace membership to the Clerk identity provider.
// A Client talks to the Clerk Backend API; Disabled stands in when no secret
// key is configured.
package clerk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	sdk "github.com/clerk/clerk-sdk-go/v2"
	"github.com/clerk/clerk-sdk-go/v2/organizationinvitation"
	"github.com/clerk/clerk-sdk-go/v2/user"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

// Client calls the Clerk Backend API.
type Client struct {
	invitations *organizationinvitation.Client
	users       *user.Client
	log         *slog.Logger
}

// NewClient creates a Clerk client. An empty apiURL uses Clerk's default
// endpoint.
func NewClient(secretKey, apiURL string, logger *slog.Logger) *Client {
	cfg := &sdk.ClientConfig{}
	cfg.Key = sdk.String(secretKey)
	cfg.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	if apiURL != "" {
		cfg.URL = sdk.String(apiURL)
	}

	return &Client{
		invitations: organizationinvitation.NewClient(cfg),
		users:       user.NewClient(cfg),
		log:         logger.With("adapter", "clerk"),
	}
}

// CreateInvitation creates an organization invitation. The workspace id is
// used as the Clerk organization id. Clerk rejections are returned unmapped
// so callers report them as server errors.
func (c *Client) CreateInvitation(ctx context.Context, params domain.InvitationParams) (*domain.Invitation, error) {
	create := &organizationinvitation.CreateParams{
		OrganizationID: params.OrganizationID,
		EmailAddress:   sdk.String(params.Email),
		Role:           sdk.String(params.Role),
	}
	if params.RedirectURL != "" {
		create.RedirectURL = sdk.String(params.RedirectURL)
	}

	inv, err := c.invitations.Create(ctx, create)
	if err != nil {
		return nil, fmt.Errorf("clerk: create invitation: %w", err)
	}

	c.log.InfoContext(ctx, "invitation created",
		slog.String("organization_id", params.OrganizationID),
		slog.String("invitation_id", inv.ID),
	)

	acceptURL := params.RedirectURL
	if acceptURL == "" {
		acceptURL = "#"
	}

	return &domain.Invitation{
		ID:        inv.ID,
		Status:    inv.Status,
		AcceptURL: acceptURL,
	}, nil
}

// LookupUser fetches display data for a Clerk user.
func (c *Client) LookupUser(ctx context.Context, userID string) (*domain.UserProfile, error) {
	u, err := c.users.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("clerk: get user %s: %w", userID, lookupError(err))
	}

	return &domain.UserProfile{
		ID:        u.ID,
		FirstName: deref(u.FirstName),
		LastName:  deref(u.LastName),
		Email:     primaryEmail(u),
		ImageURL:  deref(u.ImageURL),
	}, nil
}

// primaryEmail returns the primary address, falling back to the first one.
func primaryEmail(u *sdk.User) string {
	if len(u.EmailAddresses) == 0 {
		return ""
	}
	if u.PrimaryEmailAddressID != nil {
		for _, e := range u.EmailAddresses {
			if e != nil && e.ID == *u.PrimaryEmailAddressID {
				return e.EmailAddress
			}
		}
	}
	if u.EmailAddresses[0] == nil {
		return ""
	}
	return u.EmailAddresses[0].EmailAddress
}

// lookupError marks unknown users as domain.ErrNotFound.
func lookupError(err error) error {
	var apiErr *sdk.APIErrorResponse
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, apiErr.Error())
	}
	return err
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
