package team

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkhouse/publishing-backend/internal/auth"
	"github.com/inkhouse/publishing-backend/internal/domain"
	"github.com/inkhouse/publishing-backend/pkg/ctxutil"
)

func TestInvite_Success(t *testing.T) {
	t.Parallel()

	d := defaultDeps()
	svc := newTestService(t, d)

	got, err := svc.Invite(context.Background(), InviteInput{Email: " a@b.com ", WorkspaceID: "ws-1", Role: "member"})
	require.NoError(t, err)

	assert.Equal(t, "inv_1", got.InvitationExternalID)
	assert.Equal(t, "pending", got.InvitationStatus)
	assert.Equal(t, "pending", got.Status)
	assert.Equal(t, "a@b.com", *got.Email)
	assert.Equal(t, "inv_1", *got.InvitationID)
	assert.Nil(t, got.UserID)
	assert.NotEmpty(t, got.ID)

	inv := d.identity.CreateInvitationCalls()[0].Params
	assert.Equal(t, domain.InvitationParams{
		OrganizationID: "ws-1",
		Email:          "a@b.com",
		Role:           domain.OrgRoleMember,
		RedirectURL:    "https://app.example.com/accept",
	}, inv)

	mail := d.mailer.SendInvitationCalls()[0].Inv
	assert.Equal(t, "Acme Press", mail.WorkspaceName)
	assert.Equal(t, "https://accept", mail.AcceptURL)
}

func TestInvite_RoleMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		role string
		want string
	}{
		{"admin", domain.OrgRoleAdmin},
		{"member", domain.OrgRoleMember},
		{"editor", domain.OrgRoleMember},
		{"author", domain.OrgRoleMember},
		{"superuser", domain.OrgRoleMember},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			t.Parallel()

			d := defaultDeps()
			svc := newTestService(t, d)

			got, err := svc.Invite(context.Background(), InviteInput{Email: "a@b.com", WorkspaceID: "ws-1", Role: tt.role})
			require.NoError(t, err)

			assert.Equal(t, tt.want, d.identity.CreateInvitationCalls()[0].Params.Role)
			assert.Equal(t, tt.role, got.Role, "local row keeps the requested role")
		})
	}
}

func TestInvite_Validation(t *testing.T) {
	t.Parallel()

	d := defaultDeps()
	svc := newTestService(t, d)

	_, err := svc.Invite(context.Background(), InviteInput{Email: "not-an-email"})

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Errors, 3)
	assert.Empty(t, d.identity.CreateInvitationCalls())
}

func TestInvite_WorkspaceNotFound(t *testing.T) {
	t.Parallel()

	d := defaultDeps()
	d.workspaces.GetByIDFunc = func(ctx context.Context, id string) (*domain.Workspace, error) {
		return nil, domain.NewNotFound("workspace", id)
	}
	svc := newTestService(t, d)

	_, err := svc.Invite(context.Background(), InviteInput{Email: "a@b.com", WorkspaceID: "ghost", Role: "member"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, d.identity.CreateInvitationCalls())
}

func TestInvite_ProviderErrorSurfaces(t *testing.T) {
	t.Parallel()

	d := defaultDeps()
	boom := errors.New("clerk 503")
	d.identity.CreateInvitationFunc = func(ctx context.Context, p domain.InvitationParams) (*domain.Invitation, error) {
		return nil, boom
	}
	svc := newTestService(t, d)

	_, err := svc.Invite(context.Background(), InviteInput{Email: "a@b.com", WorkspaceID: "ws-1", Role: "member"})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, d.members.CreateCalls())
}

func TestInvite_EmailFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	d := defaultDeps()
	d.mailer.SendInvitationFunc = func(ctx context.Context, inv domain.InvitationEmail) error {
		return errors.New("resend rejected")
	}
	svc := newTestService(t, d)

	got, err := svc.Invite(context.Background(), InviteInput{Email: "a@b.com", WorkspaceID: "ws-1", Role: "member"})
	require.NoError(t, err)
	assert.Equal(t, "pending", got.Status)
	assert.Len(t, d.members.CreateCalls(), 1)
}

func TestCreateInviteLink_NotConfigured(t *testing.T) {
	t.Parallel()

	// The identity provider is configured; only the link signer is missing.
	svc := newTestService(t, defaultDeps())

	_, err := svc.CreateInviteLink(context.Background(), "ws-1", "member")
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestCreateInviteLink_Success(t *testing.T) {
	t.Parallel()

	d := defaultDeps()
	var signedRole string
	d.signer = &inviteSignerMock{
		SignFunc: func(workspaceID, role string) (string, time.Time, error) {
			signedRole = role
			return "tok+en", time.Now().Add(time.Hour), nil
		},
	}
	svc := newTestService(t, d)

	link, err := svc.CreateInviteLink(context.Background(), "ws-1", "")
	require.NoError(t, err)

	assert.Equal(t, "https://app.example.com/invite?token=tok%2Ben", link)
	assert.Equal(t, domain.RoleMember, signedRole)
}

func TestAcceptInvite_RequiresAuth(t *testing.T) {
	t.Parallel()

	d := defaultDeps()
	d.signer = &inviteSignerMock{}
	svc := newTestService(t, d)

	_, err := svc.AcceptInvite(context.Background(), "token")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAcceptInvite_InvalidToken(t *testing.T) {
	t.Parallel()

	d := defaultDeps()
	d.signer = &inviteSignerMock{
		VerifyFunc: func(token string) (auth.InviteGrant, error) {
			return auth.InviteGrant{}, errors.New("expired")
		},
	}
	svc := newTestService(t, d)
	ctx := ctxutil.WithUserID(context.Background(), "user_1")

	_, err := svc.AcceptInvite(ctx, "token")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAcceptInvite_CreatesActiveMember(t *testing.T) {
	t.Parallel()

	d := defaultDeps()
	d.signer = &inviteSignerMock{
		VerifyFunc: func(token string) (auth.InviteGrant, error) {
			return auth.InviteGrant{WorkspaceID: "ws-1", Role: "editor"}, nil
		},
	}
	d.members.GetByWorkspaceAndUserFunc = func(ctx context.Context, wsID, userID string) (*domain.TeamMember, error) {
		return nil, domain.NewNotFound("team member", userID)
	}
	d.identity.LookupUserFunc = func(ctx context.Context, userID string) (*domain.UserProfile, error) {
		return &domain.UserProfile{ID: userID, Email: "u@x.com"}, nil
	}
	svc := newTestService(t, d)
	ctx := ctxutil.WithUserID(context.Background(), "user_1")

	m, err := svc.AcceptInvite(ctx, "token")
	require.NoError(t, err)

	assert.Equal(t, "active", m.Status)
	assert.Equal(t, "editor", m.Role)
	assert.Equal(t, "user_1", *m.UserID)
	assert.Equal(t, "u@x.com", *m.Email)
}

func TestAcceptInvite_ExistingMemberIsReturned(t *testing.T) {
	t.Parallel()

	d := defaultDeps()
	d.signer = &inviteSignerMock{
		VerifyFunc: func(token string) (auth.InviteGrant, error) {
			return auth.InviteGrant{WorkspaceID: "ws-1", Role: "member"}, nil
		},
	}
	d.members.GetByWorkspaceAndUserFunc = func(ctx context.Context, wsID, userID string) (*domain.TeamMember, error) {
		return &domain.TeamMember{ID: "m-existing", WorkspaceID: wsID, UserID: &userID}, nil
	}
	svc := newTestService(t, d)
	ctx := ctxutil.WithUserID(context.Background(), "user_1")

	m, err := svc.AcceptInvite(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "m-existing", m.ID)
	assert.Empty(t, d.members.CreateCalls())
}

func TestUnassign_NotFound(t *testing.T) {
	t.Parallel()

	d := defaultDeps()
	d.members.UnassignFunc = func(ctx context.Context, bookID, memberID string) error {
		return domain.NewNotFound("assignment", bookID+"/"+memberID)
	}
	svc := newTestService(t, d)

	err := svc.Unassign(context.Background(), AssignInput{BookID: "b1", TeamMemberID: "m1"})

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "assignment", nf.Entity)
}
