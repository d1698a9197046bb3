package book

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

func (s *Service) ListRoyalties(ctx context.Context, bookID string) ([]domain.Royalty, error) {
	royalties, err := s.royalties.ListByBook(ctx, bookID)
	if err != nil {
		return nil, fmt.Errorf("list royalties: %w", err)
	}
	return royalties, nil
}

// CreateRoyalty adds a royalty share. The book's type is not checked.
func (s *Service) CreateRoyalty(ctx context.Context, input CreateRoyaltyInput) (*domain.Royalty, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	r, err := s.royalties.Create(ctx, domain.Royalty{
		ID:              domain.DefaultID(input.ID),
		BookID:          input.BookID,
		SharePercentage: input.SharePercentage,
		Earnings:        input.Earnings,
	})
	if err != nil {
		return nil, fmt.Errorf("create royalty: %w", err)
	}

	s.log.InfoContext(ctx, "royalty created",
		slog.String("royalty_id", r.ID),
		slog.String("book_id", r.BookID),
	)

	return r, nil
}
