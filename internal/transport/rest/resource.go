package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/inkhouse/publishing-backend/internal/domain"
	"github.com/inkhouse/publishing-backend/internal/service/resource"
)

type resourceService interface {
	List(ctx context.Context, filter domain.ResourceFilter) ([]domain.Resource, error)
	Get(ctx context.Context, id string) (*domain.Resource, error)
	Create(ctx context.Context, input resource.CreateInput) (*domain.Resource, error)
	Update(ctx context.Context, id string, params domain.ResourceUpdateParams) (*domain.Resource, error)
	RecordView(ctx context.Context, id string) (*domain.Resource, error)
	Delete(ctx context.Context, id string) error
}

// ResourceHandler serves the shared resource library.
type ResourceHandler struct {
	svc resourceService
	log *slog.Logger
}

// NewResourceHandler creates a ResourceHandler.
func NewResourceHandler(svc resourceService, logger *slog.Logger) *ResourceHandler {
	return &ResourceHandler{svc: svc, log: logger.With("handler", "resource")}
}

type resourceRequest struct {
	ID          string  `json:"id"`
	WorkspaceID string  `json:"workspace_id"`
	Title       *string `json:"title"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	URL         *string `json:"url"`
	UploadedBy  *string `json:"uploaded_by"`
}

// List handles GET /api/resources.
func (h *ResourceHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context(), domain.ResourceFilter{
		WorkspaceID: trimmedQuery(r, "workspace_id"),
		Category:    trimmedQuery(r, "category"),
		SearchTerm:  r.URL.Query().Get("search_term"),
		SortBy:      domain.ResourceSort(trimmedQuery(r, "sort_by")),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyIfNil(items))
}

// Get handles GET /api/resources/{id}.
func (h *ResourceHandler) Get(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Create handles POST /api/resources.
func (h *ResourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req resourceRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.Create(r.Context(), resource.CreateInput{
		ID:          req.ID,
		WorkspaceID: req.WorkspaceID,
		Title:       deref(req.Title),
		Category:    deref(req.Category),
		Description: req.Description,
		URL:         req.URL,
		UploadedBy:  req.UploadedBy,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

// Update handles PUT /api/resources/{id}.
func (h *ResourceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req resourceRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.Update(r.Context(), r.PathValue("id"), domain.ResourceUpdateParams{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		URL:         req.URL,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// RecordView handles PUT /api/resources/{id}/view.
func (h *ResourceHandler) RecordView(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.RecordView(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Delete handles DELETE /api/resources/{id}.
func (h *ResourceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
