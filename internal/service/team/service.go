package team

import (
	"context"
	"log/slog"
	"time"

	"github.com/inkhouse/publishing-backend/internal/auth"
	"github.com/inkhouse/publishing-backend/internal/domain"
)

type memberRepo interface {
	List(ctx context.Context, filter domain.TeamMemberFilter) ([]domain.TeamMember, error)
	GetByID(ctx context.Context, id string) (*domain.TeamMember, error)
	GetByWorkspaceAndUser(ctx context.Context, workspaceID, userID string) (*domain.TeamMember, error)
	Create(ctx context.Context, m domain.TeamMember) (*domain.TeamMember, error)
	Update(ctx context.Context, id string, params domain.TeamMemberUpdateParams) (*domain.TeamMember, error)
	Delete(ctx context.Context, id string) error
	Assign(ctx context.Context, bookID, memberID string) (*domain.BookAssignment, error)
	Unassign(ctx context.Context, bookID, memberID string) error
}

type workspaceReader interface {
	GetByID(ctx context.Context, id string) (*domain.Workspace, error)
}

// identity is the identity provider capability. Both the configured client
// and the disabled variant satisfy it.
type identity interface {
	CreateInvitation(ctx context.Context, params domain.InvitationParams) (*domain.Invitation, error)
	LookupUser(ctx context.Context, userID string) (*domain.UserProfile, error)
}

type mailer interface {
	SendInvitation(ctx context.Context, inv domain.InvitationEmail) error
}

type inviteSigner interface {
	Sign(workspaceID, role string) (string, time.Time, error)
	Verify(token string) (auth.InviteGrant, error)
}

// Config holds team service settings.
type Config struct {
	// RosterConcurrency bounds concurrent identity lookups per roster.
	RosterConcurrency int
	// InviteRedirectURL is where the identity provider sends accepted invitees.
	InviteRedirectURL string
	// AppBaseURL prefixes generated invite links.
	AppBaseURL string
}

// Service manages team members, invitations and book assignments.
type Service struct {
	members    memberRepo
	workspaces workspaceReader
	identity   identity
	mailer     mailer
	signer     inviteSigner
	cfg        Config
	log        *slog.Logger
}

// NewService creates a new team service. signer may be nil, which disables
// invite links.
func NewService(
	log *slog.Logger,
	members memberRepo,
	workspaces workspaceReader,
	identity identity,
	mailer mailer,
	signer inviteSigner,
	cfg Config,
) *Service {
	if cfg.RosterConcurrency <= 0 {
		cfg.RosterConcurrency = 8
	}
	return &Service{
		members:    members,
		workspaces: workspaces,
		identity:   identity,
		mailer:     mailer,
		signer:     signer,
		cfg:        cfg,
		log:        log.With("service", "team"),
	}
}
