package task

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkhouse/publishing-backend/internal/domain"
	"github.com/inkhouse/publishing-backend/pkg/ctxutil"
)

func newTestService(tasks *taskRepoMock, comments *commentRepoMock, profiles *profileLookupMock) *Service {
	if tasks == nil {
		tasks = &taskRepoMock{}
	}
	if comments == nil {
		comments = &commentRepoMock{}
	}
	if profiles == nil {
		profiles = &profileLookupMock{
			LookupUserFunc: func(ctx context.Context, userID string) (*domain.UserProfile, error) {
				return nil, domain.ErrIdentityDisabled
			},
		}
	}
	return NewService(slog.Default(), tasks, comments, profiles)
}

func strPtr(s string) *string { return &s }

func TestCreate_DefaultsStatusAndID(t *testing.T) {
	t.Parallel()

	tasks := &taskRepoMock{
		CreateFunc: func(ctx context.Context, tk domain.Task) (*domain.Task, error) {
			return &tk, nil
		},
	}
	svc := newTestService(tasks, nil, nil)

	tk, err := svc.Create(context.Background(), CreateInput{BookID: "book-1", Title: " Write chapter 1 "})
	require.NoError(t, err)

	assert.NotEmpty(t, tk.ID)
	assert.Equal(t, "TODO", tk.Status)
	assert.Equal(t, "Write chapter 1", tk.Title)
}

func TestCreate_InvalidStatus(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil, nil, nil)

	_, err := svc.Create(context.Background(), CreateInput{BookID: "book-1", Title: "x", Status: "BLOCKED"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdate_NotFound(t *testing.T) {
	t.Parallel()

	tasks := &taskRepoMock{
		UpdateFunc: func(ctx context.Context, id string, p domain.TaskUpdateParams) (*domain.Task, error) {
			return nil, domain.NewNotFound("task", id)
		},
	}
	svc := newTestService(tasks, nil, nil)

	_, err := svc.Update(context.Background(), UpdateInput{ID: "t-x", Params: domain.TaskUpdateParams{Status: strPtr("DONE")}})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddComment_UsesCallerWhenUserMissing(t *testing.T) {
	t.Parallel()

	comments := &commentRepoMock{
		CreateFunc: func(ctx context.Context, c domain.Comment) (*domain.Comment, error) {
			c.UserName = strPtr("Local Name")
			return &c, nil
		},
	}
	svc := newTestService(nil, comments, nil)
	ctx := ctxutil.WithUserID(context.Background(), "user_7")

	c, err := svc.AddComment(ctx, CommentInput{TaskID: "t-1", Content: "Looks good"})
	require.NoError(t, err)

	assert.Equal(t, "user_7", c.UserID)
	assert.NotEmpty(t, c.ID)
}

func TestAddComment_AnonymousWithoutUserFails(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil, nil, nil)

	_, err := svc.AddComment(context.Background(), CommentInput{TaskID: "t-1", Content: "hi"})

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "user_id", ve.Errors[0].Field)
}

func TestListComments_FillsMissingAuthorsOncePerUser(t *testing.T) {
	t.Parallel()

	comments := &commentRepoMock{
		ListByTaskFunc: func(ctx context.Context, taskID string) ([]domain.Comment, error) {
			return []domain.Comment{
				{ID: "c1", UserID: "user_1"},
				{ID: "c2", UserID: "user_2", UserName: strPtr("Local")},
				{ID: "c3", UserID: "user_1"},
			}, nil
		},
	}
	profiles := &profileLookupMock{
		LookupUserFunc: func(ctx context.Context, userID string) (*domain.UserProfile, error) {
			return &domain.UserProfile{ID: userID, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}, nil
		},
	}
	svc := newTestService(nil, comments, profiles)

	got, err := svc.ListComments(context.Background(), "t-1")
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "Ada Lovelace", *got[0].UserName)
	assert.Equal(t, "Local", *got[1].UserName)
	assert.Equal(t, "ada@example.com", *got[2].UserEmail)
	assert.Len(t, profiles.LookupUserCalls(), 1)
}

func TestListComments_LookupFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	comments := &commentRepoMock{
		ListByTaskFunc: func(ctx context.Context, taskID string) ([]domain.Comment, error) {
			return []domain.Comment{{ID: "c1", UserID: "user_1"}}, nil
		},
	}
	profiles := &profileLookupMock{
		LookupUserFunc: func(ctx context.Context, userID string) (*domain.UserProfile, error) {
			return nil, errors.New("provider timeout")
		},
	}
	svc := newTestService(nil, comments, profiles)

	got, err := svc.ListComments(context.Background(), "t-1")
	require.NoError(t, err)
	assert.Nil(t, got[0].UserName)
}

func TestDelete_Success(t *testing.T) {
	t.Parallel()

	var deleted string
	tasks := &taskRepoMock{
		DeleteFunc: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	svc := newTestService(tasks, nil, nil)

	require.NoError(t, svc.Delete(context.Background(), "t-1"))
	assert.Equal(t, "t-1", deleted)
}
