package rest

import (
	"net/http"

	"github.com/inkhouse/publishing-backend/internal/transport/middleware"
)

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health    *HealthHandler
	Workspace *WorkspaceHandler
	Book      *BookHandler
	Task      *TaskHandler
	Team      *TeamHandler
	Resource  *ResourceHandler
	Marketing *MarketingHandler
	Account   *AccountHandler
}

// RouteLimits holds route-level rate limiting.
type RouteLimits struct {
	Limiter          *middleware.RateLimiter
	InvitesPerMinute int
}

// NewRouter registers every API route on a ServeMux.
func NewRouter(h Handlers, limits RouteLimits) *http.ServeMux {
	mux := http.NewServeMux()

	limited := func(scope string, fn http.HandlerFunc, extra ...middleware.Middleware) http.Handler {
		mws := extra
		if limits.Limiter != nil {
			mws = append([]middleware.Middleware{limits.Limiter.Limit(scope, limits.InvitesPerMinute)}, extra...)
		}
		return middleware.Wrap(fn, mws...)
	}

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /api/workspaces", h.Workspace.List)
	mux.HandleFunc("POST /api/workspaces", h.Workspace.Create)
	mux.HandleFunc("GET /api/workspaces/{id}", h.Workspace.Get)
	mux.HandleFunc("PUT /api/workspaces/{id}", h.Workspace.Update)
	mux.HandleFunc("DELETE /api/workspaces/{id}", h.Workspace.Delete)
	mux.HandleFunc("GET /api/workspaces/{id}/overview", h.Workspace.Overview)
	mux.HandleFunc("GET /api/workspaces/{id}/members", h.Team.WorkspaceMembers)
	mux.Handle("POST /api/workspaces/{id}/invite-link", limited("invite-link", h.Team.CreateInviteLink))
	mux.Handle("POST /api/invite-links/accept", limited("invite-accept", h.Team.AcceptInvite, middleware.RequireUser))

	mux.HandleFunc("GET /api/books", h.Book.List)
	mux.HandleFunc("POST /api/books", h.Book.Create)
	mux.HandleFunc("GET /api/books/{id}", h.Book.Get)
	mux.HandleFunc("PUT /api/books/{id}", h.Book.Update)
	mux.HandleFunc("DELETE /api/books/{id}", h.Book.Delete)
	mux.HandleFunc("GET /api/books/{bookId}/members", h.Team.BookMembers)
	mux.HandleFunc("POST /api/books/{bookId}/members", h.Team.AssignToBook)
	mux.HandleFunc("GET /api/books/{bookId}/publishingStages", h.Book.ListStages)
	mux.HandleFunc("POST /api/books/{bookId}/publishingStages", h.Book.CreateStage)
	mux.HandleFunc("PUT /api/publishing-stages/{id}", h.Book.UpdateStage)
	mux.HandleFunc("GET /api/books/{bookId}/royalties", h.Book.ListRoyalties)
	mux.HandleFunc("POST /api/books/{bookId}/royalties", h.Book.CreateRoyalty)
	mux.HandleFunc("GET /api/books/{bookId}/launchPlans", h.Book.ListLaunchPlans)
	mux.HandleFunc("POST /api/books/{bookId}/launchPlans", h.Book.CreateLaunchPlan)

	mux.HandleFunc("GET /api/books/{bookId}/tasks", h.Task.ListByBook)
	mux.HandleFunc("POST /api/books/{bookId}/tasks", h.Task.Create)
	mux.HandleFunc("GET /api/tasks/{taskId}", h.Task.Get)
	mux.HandleFunc("PUT /api/tasks/{taskId}", h.Task.Update)
	mux.HandleFunc("DELETE /api/tasks/{taskId}", h.Task.Delete)
	mux.HandleFunc("GET /api/tasks/{taskId}/comments", h.Task.ListComments)
	mux.HandleFunc("POST /api/tasks/{taskId}/comments", h.Task.AddComment)

	mux.HandleFunc("GET /api/team-members", h.Team.List)
	mux.Handle("POST /api/team-members", limited("invite", h.Team.Invite))
	mux.HandleFunc("GET /api/team-members/{id}", h.Team.Get)
	mux.HandleFunc("PUT /api/team-members/{id}", h.Team.Update)
	mux.HandleFunc("DELETE /api/team-members/{id}", h.Team.Delete)
	mux.HandleFunc("POST /api/books-team-members", h.Team.Assign)
	mux.HandleFunc("DELETE /api/books-team-members", h.Team.Unassign)

	mux.HandleFunc("GET /api/resources", h.Resource.List)
	mux.HandleFunc("POST /api/resources", h.Resource.Create)
	mux.HandleFunc("GET /api/resources/{id}", h.Resource.Get)
	mux.HandleFunc("PUT /api/resources/{id}", h.Resource.Update)
	mux.HandleFunc("DELETE /api/resources/{id}", h.Resource.Delete)
	mux.HandleFunc("PUT /api/resources/{id}/view", h.Resource.RecordView)

	mux.HandleFunc("GET /api/campaigns", h.Marketing.ListCampaigns)
	mux.HandleFunc("POST /api/campaigns", h.Marketing.CreateCampaign)
	mux.HandleFunc("GET /api/campaigns/{id}", h.Marketing.GetCampaign)
	mux.HandleFunc("PUT /api/campaigns/{id}", h.Marketing.UpdateCampaign)
	mux.HandleFunc("DELETE /api/campaigns/{id}", h.Marketing.DeleteCampaign)
	mux.HandleFunc("GET /api/book-sales", h.Marketing.ListSales)
	mux.HandleFunc("POST /api/book-sales", h.Marketing.RecordSale)

	mux.HandleFunc("POST /api/user-preferences", h.Account.SavePreferences)
	mux.HandleFunc("GET /api/user-preferences/{userId}", h.Account.GetPreferences)
	mux.HandleFunc("PUT /api/user-preferences/{userId}", h.Account.UpdatePreferences)
	mux.HandleFunc("POST /api/author-onboarding", h.Account.StartOnboarding)
	mux.HandleFunc("GET /api/author-onboarding/{userId}", h.Account.GetOnboarding)
	mux.HandleFunc("PUT /api/author-onboarding/{userId}", h.Account.UpdateOnboarding)

	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})

	return mux
}
