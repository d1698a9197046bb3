package postgres

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
)

// Builder is a squirrel statement builder using PostgreSQL placeholders.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Set adds "col = *v" to the update when v is non-nil.
func Set[T any](b sq.UpdateBuilder, col string, v *T) sq.UpdateBuilder {
	if v == nil {
		return b
	}
	return b.Set(col, *v)
}

// SetValue adds "col = v" when present is true. Used for slices and maps
// where nil means "leave as is".
func SetValue(b sq.UpdateBuilder, col string, v any, present bool) sq.UpdateBuilder {
	if !present {
		return b
	}
	return b.Set(col, v)
}

// Touch starts an UPDATE that always bumps updated_at and returns cols.
func Touch(table string, cols []string) sq.UpdateBuilder {
	return Builder.Update(table).
		Set("updated_at", sq.Expr("now()")).
		Suffix(Returning(cols))
}

// Returning renders a RETURNING clause for cols.
func Returning(cols []string) string {
	return "RETURNING " + strings.Join(cols, ", ")
}

// SelectAll runs a built SELECT and scans every row into dst.
func SelectAll(ctx context.Context, db Querier, dst any, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	return pgxscan.Select(ctx, db, dst, query, args...)
}

// GetOne runs a built statement and scans exactly one row into dst.
func GetOne(ctx context.Context, db Querier, dst any, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	return pgxscan.Get(ctx, db, dst, query, args...)
}
