package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/inkhouse/publishing-backend/internal/domain"
	"github.com/inkhouse/publishing-backend/internal/service/workspace"
)

type workspaceService interface {
	List(ctx context.Context) ([]domain.Workspace, error)
	Get(ctx context.Context, id string) (*domain.Workspace, error)
	Create(ctx context.Context, input workspace.CreateInput) (*domain.Workspace, error)
	Update(ctx context.Context, input workspace.UpdateInput) (*domain.Workspace, error)
	Delete(ctx context.Context, id string) error
}

type overviewService interface {
	Overview(ctx context.Context, workspaceID string) (*domain.WorkspaceOverview, error)
}

// WorkspaceHandler serves workspace CRUD and the aggregated overview.
type WorkspaceHandler struct {
	svc      workspaceService
	overview overviewService
	log      *slog.Logger
}

// NewWorkspaceHandler creates a WorkspaceHandler.
func NewWorkspaceHandler(svc workspaceService, overview overviewService, logger *slog.Logger) *WorkspaceHandler {
	return &WorkspaceHandler{svc: svc, overview: overview, log: logger.With("handler", "workspace")}
}

type createWorkspaceRequest struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Description *string        `json:"description"`
	Settings    map[string]any `json:"settings"`
	OwnerID     *string        `json:"owner_id"`
	ImageURL    string         `json:"image_url"`
}

type updateWorkspaceRequest struct {
	Name        *string        `json:"name"`
	Slug        *string        `json:"slug"`
	Description *string        `json:"description"`
	ImageURL    *string        `json:"image_url"`
	Settings    map[string]any `json:"settings"`
}

// List handles GET /api/workspaces.
func (h *WorkspaceHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyIfNil(items))
}

// Get handles GET /api/workspaces/{id}.
func (h *WorkspaceHandler) Get(w http.ResponseWriter, r *http.Request) {
	ws, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, ws)
}

// Create handles POST /api/workspaces.
func (h *WorkspaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createWorkspaceRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	ws, err := h.svc.Create(r.Context(), workspace.CreateInput(req))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, ws)
}

// Update handles PUT /api/workspaces/{id}.
func (h *WorkspaceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateWorkspaceRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	ws, err := h.svc.Update(r.Context(), workspace.UpdateInput{
		ID:          r.PathValue("id"),
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Settings:    req.Settings,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, ws)
}

// Delete handles DELETE /api/workspaces/{id}.
func (h *WorkspaceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Overview handles GET /api/workspaces/{id}/overview.
func (h *WorkspaceHandler) Overview(w http.ResponseWriter, r *http.Request) {
	ov, err := h.overview.Overview(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, ov)
}
