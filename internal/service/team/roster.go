package team

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

// List returns the merged roster for the filter. A missing team_members
// table yields an empty roster.
func (s *Service) List(ctx context.Context, filter domain.TeamMemberFilter) ([]domain.RosterEntry, error) {
	rows, err := s.members.List(ctx, filter)
	if errors.Is(err, domain.ErrSchemaMissing) {
		s.log.WarnContext(ctx, "team_members table missing, returning empty roster")
		return []domain.RosterEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}

	return s.Merge(ctx, rows), nil
}

// Get returns one merged roster entry.
func (s *Service) Get(ctx context.Context, id string) (*domain.RosterEntry, error) {
	row, err := s.members.GetByID(ctx, id)
	if errors.Is(err, domain.ErrSchemaMissing) {
		return nil, domain.NewNotFound("team member", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get team member: %w", err)
	}

	entry := s.mergeOne(ctx, *row)
	return &entry, nil
}

// Merge resolves display data for each row concurrently. The result has the
// same length and order as rows.
func (s *Service) Merge(ctx context.Context, rows []domain.TeamMember) []domain.RosterEntry {
	entries := make([]domain.RosterEntry, len(rows))

	var g errgroup.Group
	g.SetLimit(s.cfg.RosterConcurrency)

	for i, row := range rows {
		g.Go(func() error {
			entries[i] = s.mergeOne(ctx, row)
			return nil
		})
	}
	_ = g.Wait()

	return entries
}

// mergeOne applies exactly one of the linked, pending or unknown shapes.
func (s *Service) mergeOne(ctx context.Context, row domain.TeamMember) domain.RosterEntry {
	switch {
	case row.IsLinked():
		p, err := s.identity.LookupUser(ctx, *row.UserID)
		if err != nil {
			s.log.WarnContext(ctx, "roster identity lookup failed",
				slog.String("team_member_id", row.ID),
				slog.String("user_id", *row.UserID),
				slog.String("error", err.Error()),
			)
			return unknownEntry(row)
		}
		return domain.RosterEntry{
			TeamMember:      row,
			FullName:        p.FullName(),
			Email:           p.Email,
			ProfileImageURL: p.ImageURL,
		}

	case row.IsPendingInvite():
		return domain.RosterEntry{
			TeamMember: row,
			FullName:   *row.Email,
			Email:      *row.Email,
			IsPending:  true,
		}

	default:
		return unknownEntry(row)
	}
}

func unknownEntry(row domain.TeamMember) domain.RosterEntry {
	email := domain.UnknownUserEmail
	if row.Email != nil && *row.Email != "" {
		email = *row.Email
	}
	return domain.RosterEntry{
		TeamMember: row,
		FullName:   domain.UnknownUserName,
		Email:      email,
	}
}
