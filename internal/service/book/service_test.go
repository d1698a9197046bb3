package book

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

type mocks struct {
	books       *bookRepoMock
	stages      *stageRepoMock
	royalties   *royaltyRepoMock
	launchPlans *launchPlanRepoMock
}

func newTestService(t *testing.T) (*Service, *mocks) {
	t.Helper()
	m := &mocks{
		books: &bookRepoMock{
			CreateFunc: func(ctx context.Context, b domain.Book) (*domain.Book, error) {
				return &b, nil
			},
		},
		stages: &stageRepoMock{
			CreateFunc: func(ctx context.Context, s domain.PublishingStage) (*domain.PublishingStage, error) {
				return &s, nil
			},
		},
		royalties: &royaltyRepoMock{
			CreateFunc: func(ctx context.Context, r domain.Royalty) (*domain.Royalty, error) {
				return &r, nil
			},
		},
		launchPlans: &launchPlanRepoMock{
			CreateFunc: func(ctx context.Context, p domain.LaunchPlan) (*domain.LaunchPlan, error) {
				return &p, nil
			},
		},
	}
	return NewService(slog.Default(), m.books, m.stages, m.royalties, m.launchPlans), m
}

func ptr[T any](v T) *T { return &v }

func TestCreate_AppliesDefaults(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	b, err := svc.Create(context.Background(), CreateInput{WorkspaceID: "ws-1", Name: "Draft One"})
	require.NoError(t, err)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "MEDIUM", b.Priority)
	assert.Equal(t, "PLANNING", b.Status)
	assert.Equal(t, 0, b.Progress)
}

func TestCreate_KeepsProvidedValues(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	b, err := svc.Create(context.Background(), CreateInput{
		ID:          "book-1",
		WorkspaceID: "ws-1",
		Name:        "Draft One",
		Status:      "PLANNING",
		Priority:    "LOW",
		Progress:    ptr(40),
	})
	require.NoError(t, err)

	assert.Equal(t, "book-1", b.ID)
	assert.Equal(t, "LOW", b.Priority)
	assert.Equal(t, 40, b.Progress)
}

func TestCreate_Validation(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, -1, 0)

	tests := []struct {
		name  string
		input CreateInput
		field string
	}{
		{"missing workspace", CreateInput{Name: "x"}, "workspace_id"},
		{"missing name", CreateInput{WorkspaceID: "ws"}, "name"},
		{"bad priority", CreateInput{WorkspaceID: "ws", Name: "x", Priority: "URGENT"}, "priority"},
		{"bad status", CreateInput{WorkspaceID: "ws", Name: "x", Status: "DRAFT"}, "status"},
		{"progress over 100", CreateInput{WorkspaceID: "ws", Name: "x", Progress: ptr(101)}, "progress"},
		{"end before start", CreateInput{WorkspaceID: "ws", Name: "x", StartDate: &start, EndDate: &end}, "end_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, m := newTestService(t)
			_, err := svc.Create(context.Background(), tt.input)

			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Errors[0].Field)
			assert.Empty(t, m.books.CreateCalls())
		})
	}
}

func TestCreate_MissingWorkspaceIsNotFound(t *testing.T) {
	t.Parallel()

	svc, m := newTestService(t)
	m.books.CreateFunc = func(ctx context.Context, b domain.Book) (*domain.Book, error) {
		return nil, domain.NewNotFound("workspace", b.WorkspaceID)
	}

	_, err := svc.Create(context.Background(), CreateInput{WorkspaceID: "ghost", Name: "x"})

	var nf *domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "workspace", nf.Entity)
}

func TestUpdate_RejectsInvalidStatus(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	_, err := svc.Update(context.Background(), UpdateInput{
		ID:     "book-1",
		Params: domain.BookUpdateParams{Status: ptr("SHELVED")},
	})
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestUpdate_Success(t *testing.T) {
	t.Parallel()

	svc, m := newTestService(t)
	m.books.UpdateFunc = func(ctx context.Context, id string, p domain.BookUpdateParams) (*domain.Book, error) {
		return &domain.Book{ID: id, Progress: *p.Progress}, nil
	}

	b, err := svc.Update(context.Background(), UpdateInput{
		ID:     "book-1",
		Params: domain.BookUpdateParams{Progress: ptr(75)},
	})
	require.NoError(t, err)
	assert.Equal(t, 75, b.Progress)
}

func TestCreateStage_DefaultsID(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	s, err := svc.CreateStage(context.Background(), CreateStageInput{BookID: "book-1", Name: "Editing", Order: 2})
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, 2, s.Order)
}

func TestCreateStage_NegativeOrder(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	_, err := svc.CreateStage(context.Background(), CreateStageInput{BookID: "book-1", Name: "Editing", Order: -1})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateRoyalty_ShareOutOfRange(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	_, err := svc.CreateRoyalty(context.Background(), CreateRoyaltyInput{BookID: "book-1", SharePercentage: 120})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateLaunchPlan_NilChannelsBecomeEmpty(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	p, err := svc.CreateLaunchPlan(context.Background(), CreateLaunchPlanInput{BookID: "book-1", MarketingBudget: 500})
	require.NoError(t, err)
	assert.NotNil(t, p.PromotionChannels)
	assert.Empty(t, p.PromotionChannels)
}

func TestListStages_WrapsError(t *testing.T) {
	t.Parallel()

	svc, m := newTestService(t)
	boom := errors.New("db down")
	m.stages.ListByBookFunc = func(ctx context.Context, bookID string) ([]domain.PublishingStage, error) {
		return nil, boom
	}

	_, err := svc.ListStages(context.Background(), "book-1")
	assert.ErrorIs(t, err, boom)
}
