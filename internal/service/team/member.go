package team

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

// Update changes the provided fields of a team member and returns the
// merged roster entry.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.RosterEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	m, err := s.members.Update(ctx, input.ID, input.Params)
	if err != nil {
		return nil, fmt.Errorf("update team member: %w", err)
	}

	s.log.InfoContext(ctx, "team member updated", slog.String("team_member_id", m.ID))

	entry := s.mergeOne(ctx, *m)
	return &entry, nil
}

// Delete removes a team member and its book assignments.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.members.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete team member: %w", err)
	}

	s.log.InfoContext(ctx, "team member deleted", slog.String("team_member_id", id))
	return nil
}

// Assign links a team member to a book.
func (s *Service) Assign(ctx context.Context, input AssignInput) (*domain.BookAssignment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	a, err := s.members.Assign(ctx, input.BookID, input.TeamMemberID)
	if err != nil {
		return nil, fmt.Errorf("assign team member: %w", err)
	}

	s.log.InfoContext(ctx, "team member assigned",
		slog.String("book_id", a.BookID),
		slog.String("team_member_id", a.TeamMemberID),
	)

	return a, nil
}

// Unassign removes a team member from a book.
func (s *Service) Unassign(ctx context.Context, input AssignInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.members.Unassign(ctx, input.BookID, input.TeamMemberID); err != nil {
		return fmt.Errorf("unassign team member: %w", err)
	}

	s.log.InfoContext(ctx, "team member unassigned",
		slog.String("book_id", input.BookID),
		slog.String("team_member_id", input.TeamMemberID),
	)

	return nil
}
