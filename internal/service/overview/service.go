package overview

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

// Service serves workspace overviews from the database.
type Service struct {
	repos       *Repos
	concurrency int
	log         *slog.Logger
}

// NewService creates a new overview service.
func NewService(log *slog.Logger, repos *Repos, concurrency int) *Service {
	return &Service{
		repos:       repos,
		concurrency: concurrency,
		log:         log.With("service", "overview"),
	}
}

// Overview builds the overview of one workspace. Every call starts from an
// empty loader cache.
func (s *Service) Overview(ctx context.Context, workspaceID string) (*domain.WorkspaceOverview, error) {
	start := time.Now()

	agg := NewAggregator(NewBatchSource(s.repos), s.concurrency)
	out, err := agg.Build(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("build overview: %w", err)
	}

	s.log.DebugContext(ctx, "overview built",
		slog.String("workspace_id", workspaceID),
		slog.Int("books", len(out.Books)),
		slog.Duration("duration", time.Since(start)),
	)

	return out, nil
}
