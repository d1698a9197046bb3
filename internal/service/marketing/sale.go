package marketing

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

// ListSales returns sales matching the filter, newest first.
func (s *Service) ListSales(ctx context.Context, filter domain.SaleFilter) ([]domain.BookSale, error) {
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, domain.NewValidationError("end_date", "must not be before start_date")
	}

	sales, err := s.sales.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return sales, nil
}

func (s *Service) RecordSale(ctx context.Context, input SaleInput) (*domain.BookSale, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sale, err := s.sales.Create(ctx, domain.BookSale{
		ID:         domain.DefaultID(input.ID),
		BookID:     input.BookID,
		Platform:   strings.TrimSpace(input.Platform),
		RevenueZAR: input.RevenueZAR,
		Units:      input.Units,
		SaleDate:   input.SaleDate,
	})
	if err != nil {
		return nil, fmt.Errorf("record sale: %w", err)
	}

	s.log.InfoContext(ctx, "sale recorded",
		slog.String("sale_id", sale.ID),
		slog.String("book_id", sale.BookID),
		slog.String("platform", sale.Platform),
	)

	return sale, nil
}
