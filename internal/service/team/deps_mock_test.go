package team

import (
	"context"
	"sync"
	"time"

	"github.com/inkhouse/publishing-backend/internal/auth"
	"github.com/inkhouse/publishing-backend/internal/domain"
)

var (
	_ memberRepo      = &memberRepoMock{}
	_ workspaceReader = &workspaceReaderMock{}
	_ identity        = &identityMock{}
	_ mailer          = &mailerMock{}
	_ inviteSigner    = &inviteSignerMock{}
)

type memberRepoMock struct {
	ListFunc                  func(ctx context.Context, filter domain.TeamMemberFilter) ([]domain.TeamMember, error)
	GetByIDFunc               func(ctx context.Context, id string) (*domain.TeamMember, error)
	GetByWorkspaceAndUserFunc func(ctx context.Context, workspaceID, userID string) (*domain.TeamMember, error)
	CreateFunc                func(ctx context.Context, m domain.TeamMember) (*domain.TeamMember, error)
	UpdateFunc                func(ctx context.Context, id string, params domain.TeamMemberUpdateParams) (*domain.TeamMember, error)
	DeleteFunc                func(ctx context.Context, id string) error
	AssignFunc                func(ctx context.Context, bookID, memberID string) (*domain.BookAssignment, error)
	UnassignFunc              func(ctx context.Context, bookID, memberID string) error

	calls struct {
		Create []struct {
			M domain.TeamMember
		}
	}
	lockCreate sync.RWMutex
}

func (mock *memberRepoMock) List(ctx context.Context, filter domain.TeamMemberFilter) ([]domain.TeamMember, error) {
	if mock.ListFunc == nil {
		panic("memberRepoMock.ListFunc: method is nil but memberRepo.List was just called")
	}
	return mock.ListFunc(ctx, filter)
}

func (mock *memberRepoMock) GetByID(ctx context.Context, id string) (*domain.TeamMember, error) {
	if mock.GetByIDFunc == nil {
		panic("memberRepoMock.GetByIDFunc: method is nil but memberRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *memberRepoMock) GetByWorkspaceAndUser(ctx context.Context, workspaceID, userID string) (*domain.TeamMember, error) {
	if mock.GetByWorkspaceAndUserFunc == nil {
		panic("memberRepoMock.GetByWorkspaceAndUserFunc: method is nil but memberRepo.GetByWorkspaceAndUser was just called")
	}
	return mock.GetByWorkspaceAndUserFunc(ctx, workspaceID, userID)
}

func (mock *memberRepoMock) Create(ctx context.Context, m domain.TeamMember) (*domain.TeamMember, error) {
	if mock.CreateFunc == nil {
		panic("memberRepoMock.CreateFunc: method is nil but memberRepo.Create was just called")
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ M domain.TeamMember }{M: m})
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *memberRepoMock) CreateCalls() []struct{ M domain.TeamMember } {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *memberRepoMock) Update(ctx context.Context, id string, params domain.TeamMemberUpdateParams) (*domain.TeamMember, error) {
	if mock.UpdateFunc == nil {
		panic("memberRepoMock.UpdateFunc: method is nil but memberRepo.Update was just called")
	}
	return mock.UpdateFunc(ctx, id, params)
}

func (mock *memberRepoMock) Delete(ctx context.Context, id string) error {
	if mock.DeleteFunc == nil {
		panic("memberRepoMock.DeleteFunc: method is nil but memberRepo.Delete was just called")
	}
	return mock.DeleteFunc(ctx, id)
}

func (mock *memberRepoMock) Assign(ctx context.Context, bookID, memberID string) (*domain.BookAssignment, error) {
	if mock.AssignFunc == nil {
		panic("memberRepoMock.AssignFunc: method is nil but memberRepo.Assign was just called")
	}
	return mock.AssignFunc(ctx, bookID, memberID)
}

func (mock *memberRepoMock) Unassign(ctx context.Context, bookID, memberID string) error {
	if mock.UnassignFunc == nil {
		panic("memberRepoMock.UnassignFunc: method is nil but memberRepo.Unassign was just called")
	}
	return mock.UnassignFunc(ctx, bookID, memberID)
}

type workspaceReaderMock struct {
	GetByIDFunc func(ctx context.Context, id string) (*domain.Workspace, error)
}

func (mock *workspaceReaderMock) GetByID(ctx context.Context, id string) (*domain.Workspace, error) {
	if mock.GetByIDFunc == nil {
		panic("workspaceReaderMock.GetByIDFunc: method is nil but workspaceReader.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

type identityMock struct {
	CreateInvitationFunc func(ctx context.Context, params domain.InvitationParams) (*domain.Invitation, error)
	LookupUserFunc       func(ctx context.Context, userID string) (*domain.UserProfile, error)

	calls struct {
		CreateInvitation []struct {
			Params domain.InvitationParams
		}
	}
	lockCreateInvitation sync.RWMutex
}

func (mock *identityMock) CreateInvitation(ctx context.Context, params domain.InvitationParams) (*domain.Invitation, error) {
	if mock.CreateInvitationFunc == nil {
		panic("identityMock.CreateInvitationFunc: method is nil but identity.CreateInvitation was just called")
	}
	mock.lockCreateInvitation.Lock()
	mock.calls.CreateInvitation = append(mock.calls.CreateInvitation, struct{ Params domain.InvitationParams }{Params: params})
	mock.lockCreateInvitation.Unlock()
	return mock.CreateInvitationFunc(ctx, params)
}

func (mock *identityMock) CreateInvitationCalls() []struct{ Params domain.InvitationParams } {
	mock.lockCreateInvitation.RLock()
	defer mock.lockCreateInvitation.RUnlock()
	return mock.calls.CreateInvitation
}

func (mock *identityMock) LookupUser(ctx context.Context, userID string) (*domain.UserProfile, error) {
	if mock.LookupUserFunc == nil {
		panic("identityMock.LookupUserFunc: method is nil but identity.LookupUser was just called")
	}
	return mock.LookupUserFunc(ctx, userID)
}

type mailerMock struct {
	SendInvitationFunc func(ctx context.Context, inv domain.InvitationEmail) error

	calls struct {
		SendInvitation []struct {
			Inv domain.InvitationEmail
		}
	}
	lockSendInvitation sync.RWMutex
}

func (mock *mailerMock) SendInvitation(ctx context.Context, inv domain.InvitationEmail) error {
	if mock.SendInvitationFunc == nil {
		panic("mailerMock.SendInvitationFunc: method is nil but mailer.SendInvitation was just called")
	}
	mock.lockSendInvitation.Lock()
	mock.calls.SendInvitation = append(mock.calls.SendInvitation, struct{ Inv domain.InvitationEmail }{Inv: inv})
	mock.lockSendInvitation.Unlock()
	return mock.SendInvitationFunc(ctx, inv)
}

func (mock *mailerMock) SendInvitationCalls() []struct{ Inv domain.InvitationEmail } {
	mock.lockSendInvitation.RLock()
	defer mock.lockSendInvitation.RUnlock()
	return mock.calls.SendInvitation
}

type inviteSignerMock struct {
	SignFunc   func(workspaceID, role string) (string, time.Time, error)
	VerifyFunc func(token string) (auth.InviteGrant, error)
}

func (mock *inviteSignerMock) Sign(workspaceID, role string) (string, time.Time, error) {
	if mock.SignFunc == nil {
		panic("inviteSignerMock.SignFunc: method is nil but inviteSigner.Sign was just called")
	}
	return mock.SignFunc(workspaceID, role)
}

func (mock *inviteSignerMock) Verify(token string) (auth.InviteGrant, error) {
	if mock.VerifyFunc == nil {
		panic("inviteSignerMock.VerifyFunc: method is nil but inviteSigner.Verify was just called")
	}
	return mock.VerifyFunc(token)
}
