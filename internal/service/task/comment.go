package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/inkhouse/publishing-backend/internal/domain"
	"github.com/inkhouse/publishing-backend/pkg/ctxutil"
)

// ListComments returns a task's comments with author display fields.
func (s *Service) ListComments(ctx context.Context, taskID string) ([]domain.Comment, error) {
	comments, err := s.comments.ListByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	s.FillAuthors(ctx, comments)
	return comments, nil
}

// AddComment stores a comment on a task. When no author is given, the
// authenticated caller is used.
func (s *Service) AddComment(ctx context.Context, input CommentInput) (*domain.Comment, error) {
	if strings.TrimSpace(input.UserID) == "" {
		if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
			input.UserID = userID
		}
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.comments.Create(ctx, domain.Comment{
		ID:      domain.DefaultID(input.ID),
		TaskID:  input.TaskID,
		UserID:  input.UserID,
		Content: input.Content,
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.InfoContext(ctx, "comment created",
		slog.String("comment_id", c.ID),
		slog.String("task_id", c.TaskID),
	)

	comments := []domain.Comment{*c}
	s.FillAuthors(ctx, comments)
	return &comments[0], nil
}

// FillAuthors resolves authors missing from the local users table through
// the identity provider. Lookup failures leave the fields empty.
func (s *Service) FillAuthors(ctx context.Context, comments []domain.Comment) {
	resolved := make(map[string]*domain.UserProfile)

	for i := range comments {
		c := &comments[i]
		if !c.NeedsAuthor() {
			continue
		}

		p, seen := resolved[c.UserID]
		if !seen {
			var err error
			p, err = s.profiles.LookupUser(ctx, c.UserID)
			if err != nil && !errors.Is(err, domain.ErrIdentityDisabled) {
				s.log.WarnContext(ctx, "comment author lookup failed",
					slog.String("user_id", c.UserID),
					slog.String("error", err.Error()),
				)
			}
			if err != nil {
				p = nil
			}
			resolved[c.UserID] = p
		}
		if p == nil {
			continue
		}

		name, email, image := p.FullName(), p.Email, p.ImageURL
		c.UserName = &name
		c.UserEmail = &email
		c.UserImage = &image
	}
}
