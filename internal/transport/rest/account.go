package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/inkhouse/publishing-backend/internal/domain"
	"github.com/inkhouse/publishing-backend/internal/service/account"
	"github.com/inkhouse/publishing-backend/pkg/ctxutil"
)

type accountService interface {
	Preferences(ctx context.Context, userID string) (*domain.UserPreferences, error)
	SavePreferences(ctx context.Context, input account.PreferencesInput) (*domain.UserPreferences, error)
	UpdatePreferences(ctx context.Context, userID string, params domain.PreferencesUpdateParams) (*domain.UserPreferences, error)
	Onboarding(ctx context.Context, userID string) (*domain.AuthorOnboarding, error)
	StartOnboarding(ctx context.Context, input account.OnboardingInput) (*domain.AuthorOnboarding, error)
	UpdateOnboarding(ctx context.Context, userID string, params domain.OnboardingUpdateParams) (*domain.AuthorOnboarding, error)
}

// AccountHandler serves per-user preferences and author onboarding.
type AccountHandler struct {
	svc accountService
	log *slog.Logger
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(svc accountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{svc: svc, log: logger.With("handler", "account")}
}

type preferencesRequest struct {
	UserID             string          `json:"user_id"`
	ThemePreference    *string         `json:"theme_preference"`
	LanguagePreference *string         `json:"language_preference"`
	Notifications      map[string]bool `json:"notifications"`
}

type onboardingRequest struct {
	UserID          string   `json:"user_id"`
	WorkspaceID     *string  `json:"workspace_id"`
	StepsCompleted  []string `json:"steps_completed"`
	ProgressPercent *int     `json:"progress_percent"`
}

// bodyUserID falls back to the session user when the body names none.
func bodyUserID(r *http.Request, fromBody string) string {
	if fromBody != "" {
		return fromBody
	}
	userID, _ := ctxutil.UserIDFromCtx(r.Context())
	return userID
}

// GetPreferences handles GET /api/user-preferences/{userId}.
func (h *AccountHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Preferences(r.Context(), r.PathValue("userId"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// SavePreferences handles POST /api/user-preferences.
func (h *AccountHandler) SavePreferences(w http.ResponseWriter, r *http.Request) {
	var req preferencesRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.SavePreferences(r.Context(), account.PreferencesInput{
		UserID:             bodyUserID(r, req.UserID),
		ThemePreference:    deref(req.ThemePreference),
		LanguagePreference: deref(req.LanguagePreference),
		Notifications:      req.Notifications,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// UpdatePreferences handles PUT /api/user-preferences/{userId}.
func (h *AccountHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var req preferencesRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	p, err := h.svc.UpdatePreferences(r.Context(), r.PathValue("userId"), domain.PreferencesUpdateParams{
		ThemePreference:    req.ThemePreference,
		LanguagePreference: req.LanguagePreference,
		Notifications:      req.Notifications,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// GetOnboarding handles GET /api/author-onboarding/{userId}.
func (h *AccountHandler) GetOnboarding(w http.ResponseWriter, r *http.Request) {
	o, err := h.svc.Onboarding(r.Context(), r.PathValue("userId"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

// StartOnboarding handles POST /api/author-onboarding.
func (h *AccountHandler) StartOnboarding(w http.ResponseWriter, r *http.Request) {
	var req onboardingRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	progress := 0
	if req.ProgressPercent != nil {
		progress = *req.ProgressPercent
	}
	o, err := h.svc.StartOnboarding(r.Context(), account.OnboardingInput{
		UserID:          bodyUserID(r, req.UserID),
		WorkspaceID:     req.WorkspaceID,
		StepsCompleted:  req.StepsCompleted,
		ProgressPercent: progress,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, o)
}

// UpdateOnboarding handles PUT /api/author-onboarding/{userId}.
func (h *AccountHandler) UpdateOnboarding(w http.ResponseWriter, r *http.Request) {
	var req onboardingRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	o, err := h.svc.UpdateOnboarding(r.Context(), r.PathValue("userId"), domain.OnboardingUpdateParams{
		WorkspaceID:     req.WorkspaceID,
		StepsCompleted:  req.StepsCompleted,
		ProgressPercent: req.ProgressPercent,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}
