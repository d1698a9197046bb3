// Package sale implements the BookSale repository using PostgreSQL.
package sale

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/inkhouse/publishing-backend/internal/adapter/postgres"
	"github.com/inkhouse/publishing-backend/internal/domain"
)

var columns = []string{"id", "book_id", "platform", "revenue_zar", "units", "sale_date", "created_at"}

// Repo provides book sale persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new sales repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// List returns sales matching the filter, most recent sale first.
func (r *Repo) List(ctx context.Context, filter domain.SaleFilter) ([]domain.BookSale, error) {
	q := postgres.Builder.Select(columns...).
		From("book_sales").
		OrderBy("sale_date DESC", "created_at DESC")

	if filter.BookID != "" {
		q = q.Where(sq.Eq{"book_id": filter.BookID})
	}
	if filter.Platform != "" {
		q = q.Where(sq.Eq{"platform": filter.Platform})
	}
	if filter.StartDate != nil {
		q = q.Where(sq.GtOrEq{"sale_date": *filter.StartDate})
	}
	switch {
	case filter.EndDate != nil && filter.EndIsDay:
		q = q.Where(sq.Lt{"sale_date": filter.EndDate.AddDate(0, 0, 1)})
	case filter.EndDate != nil:
		q = q.Where(sq.LtOrEq{"sale_date": *filter.EndDate})
	}

	sales := []domain.BookSale{}
	if err := postgres.SelectAll(ctx, postgres.QuerierFromCtx(ctx, r.db), &sales, q); err != nil {
		return nil, postgres.MapError(err, "book sale", "list")
	}
	return sales, nil
}

// Create inserts a sale record.
func (r *Repo) Create(ctx context.Context, s domain.BookSale) (*domain.BookSale, error) {
	q := postgres.Builder.Insert("book_sales").
		Columns("id", "book_id", "platform", "revenue_zar", "units", "sale_date").
		Values(s.ID, s.BookID, s.Platform, s.RevenueZAR, s.Units, s.SaleDate).
		Suffix(postgres.Returning(columns))

	var out domain.BookSale
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "book sale", s.ID)
	}
	return &out, nil
}
