package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/inkhouse/publishing-backend/internal/domain"
	"github.com/inkhouse/publishing-backend/internal/service/team"
)

type teamService interface {
	List(ctx context.Context, filter domain.TeamMemberFilter) ([]domain.RosterEntry, error)
	Get(ctx context.Context, id string) (*domain.RosterEntry, error)
	Invite(ctx context.Context, input team.InviteInput) (*domain.InvitedMember, error)
	Update(ctx context.Context, input team.UpdateInput) (*domain.RosterEntry, error)
	Delete(ctx context.Context, id string) error
	Assign(ctx context.Context, input team.AssignInput) (*domain.BookAssignment, error)
	Unassign(ctx context.Context, input team.AssignInput) error
	CreateInviteLink(ctx context.Context, workspaceID, role string) (string, error)
	AcceptInvite(ctx context.Context, token string) (*domain.TeamMember, error)
}

// TeamHandler serves the merged roster, invitations and book assignments.
type TeamHandler struct {
	svc teamService
	log *slog.Logger
}

// NewTeamHandler creates a TeamHandler.
func NewTeamHandler(svc teamService, logger *slog.Logger) *TeamHandler {
	return &TeamHandler{svc: svc, log: logger.With("handler", "team")}
}

type inviteRequest struct {
	Email       string `json:"email"`
	WorkspaceID string `json:"workspace_id"`
	Role        string `json:"role"`
}

type updateMemberRequest struct {
	Role   *string `json:"role"`
	Status *string `json:"status"`
	UserID *string `json:"user_id"`
	Email  *string `json:"email"`
}

type assignmentRequest struct {
	BookID       string `json:"book_id"`
	TeamMemberID string `json:"team_member_id"`
}

type inviteLinkRequest struct {
	Role string `json:"role"`
}

type inviteLinkResponse struct {
	InviteLink string `json:"inviteLink"`
}

type acceptInviteRequest struct {
	Token string `json:"token"`
}

func (h *TeamHandler) writeRoster(w http.ResponseWriter, r *http.Request, filter domain.TeamMemberFilter) {
	entries, err := h.svc.List(r.Context(), filter)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyIfNil(entries))
}

// List handles GET /api/team-members.
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	h.writeRoster(w, r, domain.TeamMemberFilter{WorkspaceID: trimmedQuery(r, "workspace_id")})
}

// WorkspaceMembers handles GET /api/workspaces/{id}/members.
func (h *TeamHandler) WorkspaceMembers(w http.ResponseWriter, r *http.Request) {
	h.writeRoster(w, r, domain.TeamMemberFilter{WorkspaceID: r.PathValue("id")})
}

// BookMembers handles GET /api/books/{bookId}/members.
func (h *TeamHandler) BookMembers(w http.ResponseWriter, r *http.Request) {
	h.writeRoster(w, r, domain.TeamMemberFilter{BookID: r.PathValue("bookId")})
}

// Get handles GET /api/team-members/{id}.
func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// Invite handles POST /api/team-members.
func (h *TeamHandler) Invite(w http.ResponseWriter, r *http.Request) {
	var req inviteRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	invited, err := h.svc.Invite(r.Context(), team.InviteInput(req))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, invited)
}

// Update handles PUT /api/team-members/{id}.
func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateMemberRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entry, err := h.svc.Update(r.Context(), team.UpdateInput{
		ID:     r.PathValue("id"),
		Params: domain.TeamMemberUpdateParams(req),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// Delete handles DELETE /api/team-members/{id}.
func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AssignToBook handles POST /api/books/{bookId}/members.
func (h *TeamHandler) AssignToBook(w http.ResponseWriter, r *http.Request) {
	var req assignmentRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	req.BookID = r.PathValue("bookId")
	h.assign(w, r, req)
}

// Assign handles POST /api/books-team-members.
func (h *TeamHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req assignmentRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	h.assign(w, r, req)
}

func (h *TeamHandler) assign(w http.ResponseWriter, r *http.Request, req assignmentRequest) {
	a, err := h.svc.Assign(r.Context(), team.AssignInput(req))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

// Unassign handles DELETE /api/books-team-members. The pair may come from
// the body or from book_id / team_member_id query parameters.
func (h *TeamHandler) Unassign(w http.ResponseWriter, r *http.Request) {
	var req assignmentRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if req.BookID == "" {
		req.BookID = trimmedQuery(r, "book_id")
	}
	if req.TeamMemberID == "" {
		req.TeamMemberID = trimmedQuery(r, "team_member_id")
	}

	if err := h.svc.Unassign(r.Context(), team.AssignInput(req)); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateInviteLink handles POST /api/workspaces/{id}/invite-link.
func (h *TeamHandler) CreateInviteLink(w http.ResponseWriter, r *http.Request) {
	var req inviteLinkRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	link, err := h.svc.CreateInviteLink(r.Context(), r.PathValue("id"), req.Role)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, inviteLinkResponse{InviteLink: link})
}

// AcceptInvite handles POST /api/invite-links/accept.
func (h *TeamHandler) AcceptInvite(w http.ResponseWriter, r *http.Request) {
	var req acceptInviteRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	m, err := h.svc.AcceptInvite(r.Context(), req.Token)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}
