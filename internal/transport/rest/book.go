package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/inkhouse/publishing-backend/internal/domain"
	"github.com/inkhouse/publishing-backend/internal/service/book"
)

type bookService interface {
	List(ctx context.Context, filter domain.BookFilter) ([]domain.Book, error)
	Get(ctx context.Context, id string) (*domain.Book, error)
	Create(ctx context.Context, input book.CreateInput) (*domain.Book, error)
	Update(ctx context.Context, input book.UpdateInput) (*domain.Book, error)
	Delete(ctx context.Context, id string) error

	ListStages(ctx context.Context, bookID string) ([]domain.PublishingStage, error)
	CreateStage(ctx context.Context, input book.CreateStageInput) (*domain.PublishingStage, error)
	UpdateStage(ctx context.Context, input book.UpdateStageInput) (*domain.PublishingStage, error)

	ListRoyalties(ctx context.Context, bookID string) ([]domain.Royalty, error)
	CreateRoyalty(ctx context.Context, input book.CreateRoyaltyInput) (*domain.Royalty, error)

	ListLaunchPlans(ctx context.Context, bookID string) ([]domain.LaunchPlan, error)
	CreateLaunchPlan(ctx context.Context, input book.CreateLaunchPlanInput) (*domain.LaunchPlan, error)
}

// BookHandler serves books and their per-book collections.
type BookHandler struct {
	svc bookService
	log *slog.Logger
}

// NewBookHandler creates a BookHandler.
func NewBookHandler(svc bookService, logger *slog.Logger) *BookHandler {
	return &BookHandler{svc: svc, log: logger.With("handler", "book")}
}

type bookRequest struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspace_id"`
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Priority    *string   `json:"priority"`
	Status      *string   `json:"status"`
	Type        *string   `json:"type"`
	StartDate   *jsonTime `json:"start_date"`
	EndDate     *jsonTime `json:"end_date"`
	TeamLead    *string   `json:"team_lead"`
	Progress    *int      `json:"progress"`
}

type stageRequest struct {
	ID          string    `json:"id"`
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Order       *int      `json:"order"`
	CompletedAt *jsonTime `json:"completed_at"`
}

type royaltyRequest struct {
	ID              string  `json:"id"`
	SharePercentage float64 `json:"share_percentage"`
	Earnings        float64 `json:"earnings"`
}

type launchPlanRequest struct {
	ID                string    `json:"id"`
	LaunchDate        *jsonTime `json:"launch_date"`
	Status            *string   `json:"status"`
	MarketingBudget   float64   `json:"marketing_budget"`
	PromotionChannels []string  `json:"promotion_channels"`
	Notes             *string   `json:"notes"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// List handles GET /api/books.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.List(r.Context(), domain.BookFilter{WorkspaceID: trimmedQuery(r, "workspace_id")})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyIfNil(books))
}

// Get handles GET /api/books/{id}.
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// Create handles POST /api/books.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	b, err := h.svc.Create(r.Context(), book.CreateInput{
		ID:          req.ID,
		WorkspaceID: req.WorkspaceID,
		Name:        deref(req.Name),
		Description: req.Description,
		Priority:    deref(req.Priority),
		Status:      deref(req.Status),
		Type:        req.Type,
		StartDate:   req.StartDate.ptr(),
		EndDate:     req.EndDate.ptr(),
		TeamLead:    req.TeamLead,
		Progress:    req.Progress,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

// Update handles PUT /api/books/{id}.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	b, err := h.svc.Update(r.Context(), book.UpdateInput{
		ID: r.PathValue("id"),
		Params: domain.BookUpdateParams{
			Name:        req.Name,
			Description: req.Description,
			Priority:    req.Priority,
			Status:      req.Status,
			Type:        req.Type,
			StartDate:   req.StartDate.ptr(),
			EndDate:     req.EndDate.ptr(),
			TeamLead:    req.TeamLead,
			Progress:    req.Progress,
		},
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// Delete handles DELETE /api/books/{id}.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListStages handles GET /api/books/{bookId}/publishingStages.
func (h *BookHandler) ListStages(w http.ResponseWriter, r *http.Request) {
	stages, err := h.svc.ListStages(r.Context(), r.PathValue("bookId"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyIfNil(stages))
}

// CreateStage handles POST /api/books/{bookId}/publishingStages.
func (h *BookHandler) CreateStage(w http.ResponseWriter, r *http.Request) {
	var req stageRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	order := 0
	if req.Order != nil {
		order = *req.Order
	}
	stage, err := h.svc.CreateStage(r.Context(), book.CreateStageInput{
		ID:          req.ID,
		BookID:      r.PathValue("bookId"),
		Name:        deref(req.Name),
		Description: req.Description,
		Order:       order,
		CompletedAt: req.CompletedAt.ptr(),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, stage)
}

// UpdateStage handles PUT /api/publishing-stages/{id}.
func (h *BookHandler) UpdateStage(w http.ResponseWriter, r *http.Request) {
	var req stageRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	stage, err := h.svc.UpdateStage(r.Context(), book.UpdateStageInput{
		ID: r.PathValue("id"),
		Params: domain.StageUpdateParams{
			Name:        req.Name,
			Description: req.Description,
			Order:       req.Order,
			CompletedAt: req.CompletedAt.ptr(),
		},
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, stage)
}

// ListRoyalties handles GET /api/books/{bookId}/royalties.
func (h *BookHandler) ListRoyalties(w http.ResponseWriter, r *http.Request) {
	royalties, err := h.svc.ListRoyalties(r.Context(), r.PathValue("bookId"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyIfNil(royalties))
}

// CreateRoyalty handles POST /api/books/{bookId}/royalties.
func (h *BookHandler) CreateRoyalty(w http.ResponseWriter, r *http.Request) {
	var req royaltyRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	royalty, err := h.svc.CreateRoyalty(r.Context(), book.CreateRoyaltyInput{
		ID:              req.ID,
		BookID:          r.PathValue("bookId"),
		SharePercentage: req.SharePercentage,
		Earnings:        req.Earnings,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, royalty)
}

// ListLaunchPlans handles GET /api/books/{bookId}/launchPlans.
func (h *BookHandler) ListLaunchPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.svc.ListLaunchPlans(r.Context(), r.PathValue("bookId"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyIfNil(plans))
}

// CreateLaunchPlan handles POST /api/books/{bookId}/launchPlans.
func (h *BookHandler) CreateLaunchPlan(w http.ResponseWriter, r *http.Request) {
	var req launchPlanRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	plan, err := h.svc.CreateLaunchPlan(r.Context(), book.CreateLaunchPlanInput{
		ID:                req.ID,
		BookID:            r.PathValue("bookId"),
		LaunchDate:        req.LaunchDate.ptr(),
		Status:            req.Status,
		MarketingBudget:   req.MarketingBudget,
		PromotionChannels: req.PromotionChannels,
		Notes:             req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, plan)
}
