package book

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

// List returns books, optionally restricted to one workspace.
func (s *Service) List(ctx context.Context, filter domain.BookFilter) ([]domain.Book, error) {
	books, err := s.books.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// Get returns a single book.
func (s *Service) Get(ctx context.Context, id string) (*domain.Book, error) {
	b, err := s.books.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}
	return b, nil
}

// Create stores a new book. Omitted status, priority and progress default
// to PLANNING, MEDIUM and 0.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Book, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	b := domain.Book{
		ID:          domain.DefaultID(input.ID),
		WorkspaceID: input.WorkspaceID,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Priority:    input.Priority,
		Status:      input.Status,
		Type:        input.Type,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		TeamLead:    input.TeamLead,
	}
	if b.Priority == "" {
		b.Priority = domain.BookPriorityMedium.String()
	}
	if b.Status == "" {
		b.Status = domain.BookStatusPlanning.String()
	}
	if input.Progress != nil {
		b.Progress = *input.Progress
	}

	created, err := s.books.Create(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	s.log.InfoContext(ctx, "book created",
		slog.String("book_id", created.ID),
		slog.String("workspace_id", created.WorkspaceID),
	)

	return created, nil
}

// Update changes the provided fields of a book.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Book, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	b, err := s.books.Update(ctx, input.ID, input.Params)
	if err != nil {
		return nil, fmt.Errorf("update book: %w", err)
	}

	s.log.InfoContext(ctx, "book updated", slog.String("book_id", b.ID))
	return b, nil
}

// Delete removes a book. Tasks, stages, royalties, launch plans, sales and
// assignments go with it.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.books.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}

	s.log.InfoContext(ctx, "book deleted", slog.String("book_id", id))
	return nil
}
