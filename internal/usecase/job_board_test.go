package usecase_test

import (
	"context"
	"testing"

	"go-recruitment-console/internal/domain"
	"go-recruitment-console/internal/usecase"
	"go-recruitment-console/pkg/apperror"
	"go-recruitment-console/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBoard(repo *MockJobRepo, page, limit int) (*usecase.JobBoard, *usecase.RecordingNotifier) {
	notifier := &usecase.RecordingNotifier{}
	uc := usecase.NewJobUsecase(repo, validation.New())
	return usecase.NewJobBoard(uc, notifier, usecase.JobBoardOptions{InitialPage: page, InitialLimit: limit}), notifier
}

func validInput() *domain.JobInput {
	return &domain.JobInput{
		Title:       "Backend Developer",
		Description: "Build and run the matching services.",
		Location:    "Remoto",
		SalaryRange: "R$ 10k - 12k",
		Skills:      []string{"Go", "PostgreSQL"},
	}
}

func TestJobBoardFetchJobs(t *testing.T) {
	ctx := context.Background()

	t.Run("fills the list and recomputes total pages", func(t *testing.T) {
		repo := new(MockJobRepo)
		board, notifier := newBoard(repo, 1, 10)
		repo.On("Fetch", mock.Anything, 1, 10).Return(jobPage(makeJobs("j", 10), 25, 1, 10), nil).Once()

		board.FetchJobs(ctx)

		state := board.State()
		assert.Len(t, state.Jobs, 10)
		assert.Equal(t, 3, state.TotalPages)
		assert.Equal(t, 25, state.Total)
		assert.False(t, state.IsLoading)
		assert.Empty(t, notifier.Notifications())
	})

	t.Run("failure empties the list and notifies", func(t *testing.T) {
		repo := new(MockJobRepo)
		board, notifier := newBoard(repo, 1, 10)
		repo.On("Fetch", mock.Anything, 1, 10).Return(jobPage(makeJobs("j", 3), 3, 1, 10), nil).Once()
		repo.On("Fetch", mock.Anything, 1, 10).Return(nil, apperror.Network(errBackendDown)).Once()

		board.FetchJobs(ctx)
		require.Len(t, board.State().Jobs, 3)
		board.FetchJobs(ctx)

		state := board.State()
		assert.Empty(t, state.Jobs)
		assert.False(t, state.IsLoading)
		assert.Equal(t, []domain.Notification{
			{Level: domain.NotifyError, Message: "Erro ao carregar vagas: Network Error"},
		}, notifier.Notifications())
	})

	t.Run("fetch page moves the cursor only on success", func(t *testing.T) {
		repo := new(MockJobRepo)
		board, _ := newBoard(repo, 1, 10)
		repo.On("Fetch", mock.Anything, 2, 10).Return(jobPage(makeJobs("p2", 5), 15, 2, 10), nil).Once()
		repo.On("Fetch", mock.Anything, 3, 10).Return(nil, apperror.FromStatus(500, "")).Once()

		board.FetchPage(ctx, 2)
		assert.Equal(t, 2, board.State().Page)

		board.FetchPage(ctx, 3)
		assert.Equal(t, 2, board.State().Page)
	})

	t.Run("oversized pages are truncated to the limit", func(t *testing.T) {
		repo := new(MockJobRepo)
		board, _ := newBoard(repo, 1, 5)
		repo.On("Fetch", mock.Anything, 1, 5).Return(jobPage(makeJobs("j", 8), 8, 1, 5), nil).Once()

		board.FetchJobs(ctx)

		state := board.State()
		assert.Len(t, state.Jobs, 5)
		assert.Equal(t, 2, state.TotalPages)
	})

	t.Run("backend ignoring the page size is capped", func(t *testing.T) {
		repo := new(MockJobRepo)
		board, _ := newBoard(repo, 1, 10)
		repo.On("Fetch", mock.Anything, 1, 10).Return(jobPage(makeJobs("j", 15), 15, 1, 20), nil).Once()

		board.FetchJobs(ctx)

		state := board.State()
		assert.Len(t, state.Jobs, 10)
		assert.Equal(t, 10, state.Limit)
		assert.Equal(t, 2, state.TotalPages)
	})
}

func TestJobBoardCreateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("prepends on page one and keeps the limit", func(t *testing.T) {
		repo := new(MockJobRepo)
		board, notifier := newBoard(repo, 1, 10)
		repo.On("Fetch", mock.Anything, 1, 10).Return(jobPage(makeJobs("j", 10), 10, 1, 10), nil).Once()
		repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.JobInput")).
			Return(&domain.Job{ID: "new", Title: "Backend Developer"}, nil).Once()

		board.FetchJobs(ctx)
		job := board.CreateJob(ctx, validInput())

		require.NotNil(t, job)
		state := board.State()
		require.Len(t, state.Jobs, 10)
		assert.Equal(t, "new", state.Jobs[0].ID)
		assert.Equal(t, "j9", state.Jobs[9].ID)
		assert.False(t, state.IsSubmitting)
		assert.Equal(t, "Vaga criada com sucesso!", notifier.Notifications()[0].Message)
	})

	t.Run("leaves other pages alone", func(t *testing.T) {
		repo := new(MockJobRepo)
		board, _ := newBoard(repo, 2, 10)
		repo.On("Fetch", mock.Anything, 2, 10).Return(jobPage(makeJobs("p2", 4), 14, 2, 10), nil).Once()
		repo.On("Create", mock.Anything, mock.Anything).Return(&domain.Job{ID: "new"}, nil).Once()

		board.FetchJobs(ctx)
		board.CreateJob(ctx, validInput())

		state := board.State()
		assert.Len(t, state.Jobs, 4)
		assert.Equal(t, "p21", state.Jobs[0].ID)
	})

	t.Run("invalid input never reaches the backend", func(t *testing.T) {
		repo := new(MockJobRepo)
		board, notifier := newBoard(repo, 1, 10)

		input := validInput()
		input.Skills = []string{"  "}
		assert.Nil(t, board.CreateJob(ctx, input))

		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		require.Len(t, notifier.Notifications(), 1)
		assert.Equal(t, domain.NotifyError, notifier.Notifications()[0].Level)
		assert.False(t, board.State().IsSubmitting)
	})

	t.Run("backend failure keeps the list", func(t *testing.T) {
		repo := new(MockJobRepo)
		board, notifier := newBoard(repo, 1, 10)
		repo.On("Fetch", mock.Anything, 1, 10).Return(jobPage(makeJobs("j", 2), 2, 1, 10), nil).Once()
		repo.On("Create", mock.Anything, mock.Anything).Return(nil, apperror.FromStatus(409, "Vaga duplicada")).Once()

		board.FetchJobs(ctx)
		assert.Nil(t, board.CreateJob(ctx, validInput()))

		assert.Len(t, board.State().Jobs, 2)
		assert.Equal(t, "Erro ao criar vaga: Vaga duplicada", notifier.Notifications()[0].Message)
	})
}

func TestJobBoardUpdateJob(t *testing.T) {
	ctx := context.Background()
	repo := new(MockJobRepo)
	board, notifier := newBoard(repo, 1, 10)

	repo.On("Fetch", mock.Anything, 1, 10).Return(jobPage(makeJobs("j", 3), 3, 1, 10), nil).Once()
	repo.On("GetByID", mock.Anything, "j2").Return(&domain.Job{ID: "j2", Title: "Vaga 2"}, nil).Once()
	title := "Staff Engineer"
	repo.On("Update", mock.Anything, "j2", mock.AnythingOfType("*domain.JobPatch")).
		Return(&domain.Job{ID: "j2", Title: title}, nil).Once()

	board.FetchJobs(ctx)
	require.NotNil(t, board.FetchJobByID(ctx, "j2"))

	updated := board.UpdateJob(ctx, "j2", &domain.JobPatch{Title: &title})
	require.NotNil(t, updated)

	state := board.State()
	assert.Equal(t, title, state.Jobs[1].Title)
	assert.Equal(t, title, state.Current.Title)
	assert.Equal(t, "Vaga atualizada com sucesso!", notifier.Notifications()[0].Message)

	t.Run("empty skills are rejected", func(t *testing.T) {
		assert.Nil(t, board.UpdateJob(ctx, "j2", &domain.JobPatch{Skills: []string{" "}}))
		repo.AssertNumberOfCalls(t, "Update", 1)
	})
}

func TestJobBoardFetchJobByIDFailure(t *testing.T) {
	ctx := context.Background()
	repo := new(MockJobRepo)
	board, notifier := newBoard(repo, 1, 10)

	repo.On("GetByID", mock.Anything, "j1").Return(&domain.Job{ID: "j1"}, nil).Once()
	repo.On("GetByID", mock.Anything, "missing").Return(nil, apperror.FromStatus(404, "Vaga não encontrada")).Once()

	require.NotNil(t, board.FetchJobByID(ctx, "j1"))
	assert.Nil(t, board.FetchJobByID(ctx, "missing"))

	assert.Nil(t, board.State().Current)
	assert.Equal(t, "Erro ao carregar vaga: Vaga não encontrada", notifier.Notifications()[0].Message)
}

func TestJobBoardDeleteJob(t *testing.T) {
	ctx := context.Background()

	t.Run("removing the last item of page two steps back", func(t *testing.T) {
		repo := new(MockJobRepo)
		board, notifier := newBoard(repo, 2, 10)
		repo.On("Fetch", mock.Anything, 2, 10).Return(jobPage([]domain.Job{{ID: "last"}}, 11, 2, 10), nil).Once()
		repo.On("Delete", mock.Anything, "last").Return(nil).Once()
		repo.On("Fetch", mock.Anything, 1, 10).Return(jobPage(makeJobs("j", 10), 10, 1, 10), nil).Once()

		board.FetchJobs(ctx)
		assert.True(t, board.DeleteJob(ctx, "last"))

		state := board.State()
		assert.Equal(t, 1, state.Page)
		assert.Len(t, state.Jobs, 10)
		assert.Equal(t, 1, state.TotalPages)
		assert.False(t, state.IsDeleting)
		assert.Equal(t, "Vaga deletada com sucesso!", notifier.Notifications()[0].Message)
		repo.AssertExpectations(t)
	})

	t.Run("page one is not re-fetched", func(t *testing.T) {
		repo := new(MockJobRepo)
		board, _ := newBoard(repo, 1, 10)
		repo.On("Fetch", mock.Anything, 1, 10).Return(jobPage([]domain.Job{{ID: "only"}}, 1, 1, 10), nil).Once()
		repo.On("Delete", mock.Anything, "only").Return(nil).Once()

		board.FetchJobs(ctx)
		assert.True(t, board.DeleteJob(ctx, "only"))

		assert.Empty(t, board.State().Jobs)
		repo.AssertNumberOfCalls(t, "Fetch", 1)
	})

	t.Run("unloaded page does not step back", func(t *testing.T) {
		repo := new(MockJobRepo)
		board, notifier := newBoard(repo, 3, 10)
		repo.On("Fetch", mock.Anything, 3, 10).Return(nil, apperror.Network(errBackendDown)).Once()
		repo.On("Delete", mock.Anything, "j21").Return(nil).Once()

		assert.False(t, board.LoadPage(ctx))
		assert.True(t, board.DeleteJob(ctx, "j21"))

		assert.Equal(t, 3, board.State().Page)
		repo.AssertNumberOfCalls(t, "Fetch", 1)
		assert.Equal(t, []domain.Notification{
			{Level: domain.NotifySuccess, Message: "Vaga deletada com sucesso!"},
		}, notifier.Notifications())
	})

	t.Run("failure keeps the item and resets the flag", func(t *testing.T) {
		repo := new(MockJobRepo)
		board, notifier := newBoard(repo, 1, 10)
		repo.On("Fetch", mock.Anything, 1, 10).Return(jobPage(makeJobs("j", 2), 2, 1, 10), nil).Once()
		repo.On("Delete", mock.Anything, "j1").Return(apperror.FromStatus(403, "")).Once()

		board.FetchJobs(ctx)
		assert.False(t, board.DeleteJob(ctx, "j1"))

		state := board.State()
		assert.Len(t, state.Jobs, 2)
		assert.False(t, state.IsDeleting)
		assert.Equal(t, "Erro ao deletar vaga: Request failed with status code 403", notifier.Notifications()[0].Message)
	})
}

func TestJobUsecaseListJobsClampsArguments(t *testing.T) {
	repo := new(MockJobRepo)
	uc := usecase.NewJobUsecase(repo, validation.New())
	repo.On("Fetch", mock.Anything, 1, 10).Return(jobPage(nil, 0, 1, 10), nil).Once()

	_, err := uc.ListJobs(context.Background(), 0, -3)
	require.NoError(t, err)
	repo.AssertExpectations(t)

	_, err = uc.GetJob(context.Background(), " ")
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}
