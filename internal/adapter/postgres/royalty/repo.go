// Package royalty implements the Royalty repository using PostgreSQL.
package royalty

import (
	"context"

	"github.com/inkhouse/publishing-backend/internal/adapter/postgres"
	"github.com/inkhouse/publishing-backend/internal/domain"
)

var columns = []string{"id", "book_id", "share_percentage", "earnings", "created_at", "updated_at"}

// Repo provides royalty persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new royalty repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ListByBook returns the royalties of a book.
func (r *Repo) ListByBook(ctx context.Context, bookID string) ([]domain.Royalty, error) {
	return r.ListByBookIDs(ctx, []string{bookID})
}

// ListByBookIDs returns royalties for several books (batch for DataLoader).
func (r *Repo) ListByBookIDs(ctx context.Context, bookIDs []string) ([]domain.Royalty, error) {
	royalties := []domain.Royalty{}
	if len(bookIDs) == 0 {
		return royalties, nil
	}

	q := postgres.Builder.Select(columns...).
		From("royalties").
		Where("book_id = ANY(?)", bookIDs).
		OrderBy("book_id", "created_at")

	if err := postgres.SelectAll(ctx, postgres.QuerierFromCtx(ctx, r.db), &royalties, q); err != nil {
		return nil, postgres.MapError(err, "royalty", "list")
	}
	return royalties, nil
}

// Create inserts a royalty.
func (r *Repo) Create(ctx context.Context, roy domain.Royalty) (*domain.Royalty, error) {
	q := postgres.Builder.Insert("royalties").
		Columns("id", "book_id", "share_percentage", "earnings").
		Values(roy.ID, roy.BookID, roy.SharePercentage, roy.Earnings).
		Suffix(postgres.Returning(columns))

	var out domain.Royalty
	if err := postgres.GetOne(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "royalty", roy.ID)
	}
	return &out, nil
}
