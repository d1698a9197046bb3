package team

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

// Invite issues an invitation for email to join a workspace and records a
// pending team member. The email notification is best-effort.
func (s *Service) Invite(ctx context.Context, input InviteInput) (*domain.InvitedMember, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(input.Email)

	ws, err := s.workspaces.GetByID(ctx, input.WorkspaceID)
	if err != nil {
		return nil, fmt.Errorf("get workspace: %w", err)
	}

	inv, err := s.identity.CreateInvitation(ctx, domain.InvitationParams{
		OrganizationID: ws.ID,
		Email:          email,
		Role:           domain.OrgRole(input.Role),
		RedirectURL:    s.cfg.InviteRedirectURL,
	})
	if err != nil {
		return nil, fmt.Errorf("create invitation: %w", err)
	}

	m, err := s.members.Create(ctx, domain.TeamMember{
		ID:           domain.NewID(),
		Email:        &email,
		InvitationID: &inv.ID,
		WorkspaceID:  ws.ID,
		Role:         input.Role,
		Status:       domain.MemberStatusPending.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("create team member: %w", err)
	}

	if err := s.mailer.SendInvitation(ctx, domain.InvitationEmail{
		To:            email,
		WorkspaceName: ws.Name,
		Role:          input.Role,
		AcceptURL:     inv.AcceptURL,
	}); err != nil {
		s.log.WarnContext(ctx, "invitation email failed",
			slog.String("team_member_id", m.ID),
			slog.String("error", err.Error()),
		)
	}

	s.log.InfoContext(ctx, "team member invited",
		slog.String("team_member_id", m.ID),
		slog.String("workspace_id", ws.ID),
		slog.String("invitation_id", inv.ID),
	)

	return &domain.InvitedMember{
		TeamMember:           *m,
		InvitationExternalID: inv.ID,
		InvitationStatus:     inv.Status,
	}, nil
}
