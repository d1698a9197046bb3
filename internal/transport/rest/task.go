package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/inkhouse/publishing-backend/internal/domain"
	"github.com/inkhouse/publishing-backend/internal/service/task"
)

type taskService interface {
	ListByBook(ctx context.Context, bookID string) ([]domain.Task, error)
	Get(ctx context.Context, id string) (*domain.Task, error)
	Create(ctx context.Context, input task.CreateInput) (*domain.Task, error)
	Update(ctx context.Context, input task.UpdateInput) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
	ListComments(ctx context.Context, taskID string) ([]domain.Comment, error)
	AddComment(ctx context.Context, input task.CommentInput) (*domain.Comment, error)
}

// TaskHandler serves tasks and task comments.
type TaskHandler struct {
	svc taskService
	log *slog.Logger
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(svc taskService, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{svc: svc, log: logger.With("handler", "task")}
}

type taskRequest struct {
	ID                string    `json:"id"`
	PublishingStageID *string   `json:"publishing_stage_id"`
	Title             *string   `json:"title"`
	Description       *string   `json:"description"`
	Status            *string   `json:"status"`
	Type              *string   `json:"type"`
	Priority          *string   `json:"priority"`
	AssigneeID        *string   `json:"assignee_id"`
	DueDate           *jsonTime `json:"due_date"`
}

type commentRequest struct {
	ID      string `json:"id"`
	UserID  string `json:"user_id"`
	Content string `json:"content"`
}

// ListByBook handles GET /api/books/{bookId}/tasks.
func (h *TaskHandler) ListByBook(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.svc.ListByBook(r.Context(), r.PathValue("bookId"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyIfNil(tasks))
}

// Create handles POST /api/books/{bookId}/tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	t, err := h.svc.Create(r.Context(), task.CreateInput{
		ID:                req.ID,
		BookID:            r.PathValue("bookId"),
		PublishingStageID: req.PublishingStageID,
		Title:             deref(req.Title),
		Description:       req.Description,
		Status:            deref(req.Status),
		Type:              req.Type,
		Priority:          req.Priority,
		AssigneeID:        req.AssigneeID,
		DueDate:           req.DueDate.ptr(),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

// Get handles GET /api/tasks/{taskId}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.Get(r.Context(), r.PathValue("taskId"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// Update handles PUT /api/tasks/{taskId}.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	t, err := h.svc.Update(r.Context(), task.UpdateInput{
		ID: r.PathValue("taskId"),
		Params: domain.TaskUpdateParams{
			PublishingStageID: req.PublishingStageID,
			Title:             req.Title,
			Description:       req.Description,
			Status:            req.Status,
			Type:              req.Type,
			Priority:          req.Priority,
			AssigneeID:        req.AssigneeID,
			DueDate:           req.DueDate.ptr(),
		},
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// Delete handles DELETE /api/tasks/{taskId}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("taskId")); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListComments handles GET /api/tasks/{taskId}/comments.
func (h *TaskHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.svc.ListComments(r.Context(), r.PathValue("taskId"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, emptyIfNil(comments))
}

// AddComment handles POST /api/tasks/{taskId}/comments.
func (h *TaskHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := decodeBody(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	c, err := h.svc.AddComment(r.Context(), task.CommentInput{
		ID:      req.ID,
		TaskID:  r.PathValue("taskId"),
		UserID:  req.UserID,
		Content: req.Content,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}
