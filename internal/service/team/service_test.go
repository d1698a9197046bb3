package team

import (
	"context"
	"log/slog"
	"testing"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

type deps struct {
	members    *memberRepoMock
	workspaces *workspaceReaderMock
	identity   *identityMock
	mailer     *mailerMock
	signer     *inviteSignerMock
}

func defaultDeps() *deps {
	return &deps{
		members: &memberRepoMock{
			CreateFunc: func(ctx context.Context, m domain.TeamMember) (*domain.TeamMember, error) {
				return &m, nil
			},
		},
		workspaces: &workspaceReaderMock{
			GetByIDFunc: func(ctx context.Context, id string) (*domain.Workspace, error) {
				return &domain.Workspace{ID: id, Name: "Acme Press"}, nil
			},
		},
		identity: &identityMock{
			CreateInvitationFunc: func(ctx context.Context, p domain.InvitationParams) (*domain.Invitation, error) {
				return &domain.Invitation{ID: "inv_1", Status: "pending", AcceptURL: "https://accept"}, nil
			},
			LookupUserFunc: func(ctx context.Context, userID string) (*domain.UserProfile, error) {
				return nil, domain.ErrIdentityDisabled
			},
		},
		mailer: &mailerMock{
			SendInvitationFunc: func(ctx context.Context, inv domain.InvitationEmail) error { return nil },
		},
	}
}

func newTestService(t *testing.T, d *deps) *Service {
	t.Helper()
	var signer inviteSigner
	if d.signer != nil {
		signer = d.signer
	}
	return NewService(slog.Default(), d.members, d.workspaces, d.identity, d.mailer, signer, Config{
		RosterConcurrency: 4,
		InviteRedirectURL: "https://app.example.com/accept",
		AppBaseURL:        "https://app.example.com/",
	})
}

func strPtr(s string) *string { return &s }
