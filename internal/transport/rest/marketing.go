package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/inkhouse/publishing-backend/internal/domain"
	"github.com/inkhouse/publishing-backend/internal/service/marketing"
)

type marketingService interface {
	ListCampaigns(ctx context.Context, filter domain.CampaignFilter) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	CreateCampaign(ctx context.Context, input marketing.CampaignInput) (*domain.Campaign, error)
	UpdateCampaign(ctx context.Context, id string, params domain.CampaignUpdateParams) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id string) error
	ListSales(ctx context.Context, filter domain.SaleFilter) ([]domain.BookSale, error)
	RecordSale(ctx context.Context, input marketing.SaleInput) (*domain.BookSale, error)
}

// MarketingHandler serves campaigns and book sales.
type MarketingHandler struct {
	svc marketingService
	log *slog.Logger
}

// NewMarketingHandler creates a MarketingHandler.
func NewMarketingHandler(svc marketingService, logger *slog.Logger) *MarketingHandler {
	return &MarketingHandler{svc: svc, log: logger.With("handler", "marketing")}
}

type campaignRequest struct {
	ID               string         `json:"id"`
	WorkspaceID      string         `json:"workspace_id"`
	Title            *string        `json:"title"`
	StartDate        *jsonTime      `json:"start_date"`
	EndDate          *jsonTime      `json:"end_date"`
	Status           *string        `json:"status"`
	Platforms        []string       `json:"platforms"`
	BudgetZAR        *float64       `json:"budget_zar"`
	Books            []string       `json:"books"`
	PerformanceStats map[string]any `json:"performance_stats"`
}

type saleRequest struct {
	ID         string    `json:"id"`
	BookID     string    `json:"book_id"`
	Platform   string    `json:"platform"`
	RevenueZAR float64   `json:"revenue_zar"`
	Units      int       `json:"units"`
	SaleDate   *jsonTime `json:"sale_date"`
}

// ListCampaigns handles GET /api/campaigns.
func (h *MarketingHandler) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListCampaigns(r.Context(), domain.CampaignFilter{
		WorkspaceID: trimmedQuery(r, "workspace_id"),
		Status:      trimmedQuery(r, "status"),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyIfNil(items))
}

// GetCampaign handles GET /api/campaigns/{id}.
func (h *MarketingHandler) GetCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetCampaign(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// CreateCampaign handles POST /api/campaigns.
func (h *MarketingHandler) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var budget float64
	if req.BudgetZAR != nil {
		budget = *req.BudgetZAR
	}
	c, err := h.svc.CreateCampaign(r.Context(), marketing.CampaignInput{
		ID:               req.ID,
		WorkspaceID:      req.WorkspaceID,
		Title:            deref(req.Title),
		StartDate:        req.StartDate.ptr(),
		EndDate:          req.EndDate.ptr(),
		Status:           req.Status,
		Platforms:        req.Platforms,
		BudgetZAR:        budget,
		Books:            req.Books,
		PerformanceStats: req.PerformanceStats,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// UpdateCampaign handles PUT /api/campaigns/{id}.
func (h *MarketingHandler) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	c, err := h.svc.UpdateCampaign(r.Context(), r.PathValue("id"), domain.CampaignUpdateParams{
		Title:            req.Title,
		StartDate:        req.StartDate.ptr(),
		EndDate:          req.EndDate.ptr(),
		Status:           req.Status,
		Platforms:        req.Platforms,
		BudgetZAR:        req.BudgetZAR,
		Books:            req.Books,
		PerformanceStats: req.PerformanceStats,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// DeleteCampaign handles DELETE /api/campaigns/{id}.
func (h *MarketingHandler) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCampaign(r.Context(), r.PathValue("id")); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListSales handles GET /api/book-sales.
func (h *MarketingHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	start, err := queryTime(r, "start_date")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	end, endIsDay, err := queryDay(r, "end_date")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	sales, err := h.svc.ListSales(r.Context(), domain.SaleFilter{
		BookID:    trimmedQuery(r, "book_id"),
		Platform:  trimmedQuery(r, "platform"),
		StartDate: start,
		EndDate:   end,
		EndIsDay:  endIsDay,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyIfNil(sales))
}

// RecordSale handles POST /api/book-sales.
func (h *MarketingHandler) RecordSale(w http.ResponseWriter, r *http.Request) {
	var req saleRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	input := marketing.SaleInput{
		ID:         req.ID,
		BookID:     req.BookID,
		Platform:   req.Platform,
		RevenueZAR: req.RevenueZAR,
		Units:      req.Units,
	}
	if req.SaleDate != nil {
		input.SaleDate = req.SaleDate.Time
	}

	sale, err := h.svc.RecordSale(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, sale)
}
