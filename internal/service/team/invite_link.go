package team

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/inkhouse/publishing-backend/internal/domain"
	"github.com/inkhouse/publishing-backend/pkg/ctxutil"
)

// CreateInviteLink returns a signed link that admits its holder to the
// workspace with role. Role defaults to member. Links are signed locally, so
// without a signer they are unavailable even when the identity provider is
// configured.
func (s *Service) CreateInviteLink(ctx context.Context, workspaceID, role string) (string, error) {
	if s.signer == nil {
		return "", fmt.Errorf("invite links: %w", domain.ErrNotConfigured)
	}

	role = strings.TrimSpace(role)
	if role == "" {
		role = domain.RoleMember
	}

	ws, err := s.workspaces.GetByID(ctx, workspaceID)
	if err != nil {
		return "", fmt.Errorf("get workspace: %w", err)
	}

	token, expiresAt, err := s.signer.Sign(ws.ID, role)
	if err != nil {
		return "", fmt.Errorf("sign invite link: %w", err)
	}

	s.log.InfoContext(ctx, "invite link created",
		slog.String("workspace_id", ws.ID),
		slog.String("role", role),
		slog.Time("expires_at", expiresAt),
	)

	return strings.TrimRight(s.cfg.AppBaseURL, "/") + "/invite?token=" + url.QueryEscape(token), nil
}

// AcceptInvite makes the caller an active member of the workspace named in
// token. Accepting twice returns the existing membership.
func (s *Service) AcceptInvite(ctx context.Context, token string) (*domain.TeamMember, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if s.signer == nil {
		return nil, fmt.Errorf("invite links: %w", domain.ErrNotConfigured)
	}
	if strings.TrimSpace(token) == "" {
		return nil, domain.NewValidationError("token", "required")
	}

	grant, err := s.signer.Verify(token)
	if err != nil {
		return nil, domain.NewValidationError("token", "invalid or expired")
	}

	existing, err := s.members.GetByWorkspaceAndUser(ctx, grant.WorkspaceID, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get team member: %w", err)
	}

	m := domain.TeamMember{
		ID:          domain.NewID(),
		UserID:      &userID,
		WorkspaceID: grant.WorkspaceID,
		Role:        grant.Role,
		Status:      domain.MemberStatusActive.String(),
	}
	if p, err := s.identity.LookupUser(ctx, userID); err == nil && p.Email != "" {
		m.Email = &p.Email
	}

	created, err := s.members.Create(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("create team member: %w", err)
	}

	s.log.InfoContext(ctx, "invite link accepted",
		slog.String("team_member_id", created.ID),
		slog.String("workspace_id", created.WorkspaceID),
		slog.String("user_id", userID),
	)

	return created, nil
}
