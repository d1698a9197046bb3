package rest

import (
	"context"

	"github.com/inkhouse/publishing-backend/internal/domain"
	"github.com/inkhouse/publishing-backend/internal/service/account"
	"github.com/inkhouse/publishing-backend/internal/service/book"
	"github.com/inkhouse/publishing-backend/internal/service/marketing"
	"github.com/inkhouse/publishing-backend/internal/service/task"
	"github.com/inkhouse/publishing-backend/internal/service/team"
	"github.com/inkhouse/publishing-backend/internal/service/workspace"
)

// Fakes embed the service interface so a test only stubs what it calls;
// anything else panics on the nil embedded value.

type fakeWorkspaces struct {
	workspaceService
	create func(workspace.CreateInput) (*domain.Workspace, error)
	get    func(id string) (*domain.Workspace, error)
	list   func() ([]domain.Workspace, error)
	delete func(id string) error
}

func (f *fakeWorkspaces) Create(_ context.Context, in workspace.CreateInput) (*domain.Workspace, error) {
	return f.create(in)
}

func (f *fakeWorkspaces) Get(_ context.Context, id string) (*domain.Workspace, error) {
	return f.get(id)
}

func (f *fakeWorkspaces) List(context.Context) ([]domain.Workspace, error) { return f.list() }

func (f *fakeWorkspaces) Delete(_ context.Context, id string) error { return f.delete(id) }

type fakeOverview func(id string) (*domain.WorkspaceOverview, error)

func (f fakeOverview) Overview(_ context.Context, id string) (*domain.WorkspaceOverview, error) {
	return f(id)
}

type fakeBooks struct {
	bookService
	create func(book.CreateInput) (*domain.Book, error)
	update func(book.UpdateInput) (*domain.Book, error)
	list   func(domain.BookFilter) ([]domain.Book, error)
}

func (f *fakeBooks) Create(_ context.Context, in book.CreateInput) (*domain.Book, error) {
	return f.create(in)
}

func (f *fakeBooks) Update(_ context.Context, in book.UpdateInput) (*domain.Book, error) {
	return f.update(in)
}

func (f *fakeBooks) List(_ context.Context, filter domain.BookFilter) ([]domain.Book, error) {
	return f.list(filter)
}

type fakeTasks struct {
	taskService
	addComment func(context.Context, task.CommentInput) (*domain.Comment, error)
}

func (f *fakeTasks) AddComment(ctx context.Context, in task.CommentInput) (*domain.Comment, error) {
	return f.addComment(ctx, in)
}

type fakeTeam struct {
	teamService
	list       func(domain.TeamMemberFilter) ([]domain.RosterEntry, error)
	invite     func(team.InviteInput) (*domain.InvitedMember, error)
	unassign   func(team.AssignInput) error
	inviteLink func(wsID, role string) (string, error)
	accept     func(ctx context.Context, token string) (*domain.TeamMember, error)
}

func (f *fakeTeam) List(_ context.Context, filter domain.TeamMemberFilter) ([]domain.RosterEntry, error) {
	return f.list(filter)
}

func (f *fakeTeam) Invite(_ context.Context, in team.InviteInput) (*domain.InvitedMember, error) {
	return f.invite(in)
}

func (f *fakeTeam) Unassign(_ context.Context, in team.AssignInput) error { return f.unassign(in) }

func (f *fakeTeam) CreateInviteLink(_ context.Context, wsID, role string) (string, error) {
	return f.inviteLink(wsID, role)
}

func (f *fakeTeam) AcceptInvite(ctx context.Context, token string) (*domain.TeamMember, error) {
	return f.accept(ctx, token)
}

type fakeMarketing struct {
	marketingService
	listSales  func(domain.SaleFilter) ([]domain.BookSale, error)
	recordSale func(marketing.SaleInput) (*domain.BookSale, error)
}

func (f *fakeMarketing) ListSales(_ context.Context, filter domain.SaleFilter) ([]domain.BookSale, error) {
	return f.listSales(filter)
}

func (f *fakeMarketing) RecordSale(_ context.Context, in marketing.SaleInput) (*domain.BookSale, error) {
	return f.recordSale(in)
}

type fakeAccount struct {
	accountService
	save func(account.PreferencesInput) (*domain.UserPreferences, error)
}

func (f *fakeAccount) SavePreferences(_ context.Context, in account.PreferencesInput) (*domain.UserPreferences, error) {
	return f.save(in)
}

type fakeResources struct {
	resourceService
	list func(domain.ResourceFilter) ([]domain.Resource, error)
}

func (f *fakeResources) List(_ context.Context, filter domain.ResourceFilter) ([]domain.Resource, error) {
	return f.list(filter)
}
