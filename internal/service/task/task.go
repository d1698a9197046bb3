package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

// ListByBook returns a book's tasks.
func (s *Service) ListByBook(ctx context.Context, bookID string) ([]domain.Task, error) {
	tasks, err := s.tasks.ListByBook(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Get returns a single task.
func (s *Service) Get(ctx context.Context, id string) (*domain.Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

// Create stores a new task. Status defaults to TODO.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Task, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.TaskStatusTodo.String()
	}

	t, err := s.tasks.Create(ctx, domain.Task{
		ID:                domain.DefaultID(input.ID),
		BookID:            input.BookID,
		PublishingStageID: input.PublishingStageID,
		Title:             strings.TrimSpace(input.Title),
		Description:       input.Description,
		Status:            status,
		Type:              input.Type,
		Priority:          input.Priority,
		AssigneeID:        input.AssigneeID,
		DueDate:           input.DueDate,
	})
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	s.log.InfoContext(ctx, "task created",
		slog.String("task_id", t.ID),
		slog.String("book_id", t.BookID),
	)

	return t, nil
}

// Update changes the provided fields of a task.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Task, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	t, err := s.tasks.Update(ctx, input.ID, input.Params)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	s.log.InfoContext(ctx, "task updated",
		slog.String("task_id", t.ID),
		slog.String("status", t.Status),
	)

	return t, nil
}

// Delete removes a task and its comments.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.tasks.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	s.log.InfoContext(ctx, "task deleted", slog.String("task_id", id))
	return nil
}
