package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

// Postgres error codes the repositories care about.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNotNullViolation    = "23502"
	codeInvalidText         = "22P02"
	codeUndefinedTable      = "42P01"
)

// MapError converts pgx/pgconn/scany errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
func MapError(err error, entity, id string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err) {
		return domain.NewNotFound(entity, id)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case codeForeignKeyViolation:
			return domain.NewNotFound(referencedEntity(pgErr.ConstraintName, entity), id)
		case codeCheckViolation, codeNotNullViolation, codeInvalidText:
			return fmt.Errorf("%s %s: %w", entity, id,
				domain.NewValidationError(columnOr(pgErr.ColumnName, entity), pgErr.Message))
		case codeUndefinedTable:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrSchemaMissing)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}

func columnOr(column, fallback string) string {
	if column != "" {
		return column
	}
	return fallback
}

// fkEntities maps foreign key columns to the entity they reference.
var fkEntities = map[string]string{
	"workspace_id":        "workspace",
	"book_id":             "book",
	"task_id":             "task",
	"team_member_id":      "team member",
	"publishing_stage_id": "publishing stage",
}

// referencedEntity derives the missing parent from a constraint named
// "<table>_<column>_fkey". Unknown names fall back to entity.
func referencedEntity(constraint, fallback string) string {
	for col, name := range fkEntities {
		if strings.HasSuffix(constraint, "_"+col+"_fkey") {
			return name
		}
	}
	return fallback
}
