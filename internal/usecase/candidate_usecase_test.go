package usecase_test

import (
	"context"
	"testing"

	"go-recruitment-console/internal/domain"
	"go-recruitment-console/internal/usecase"
	"go-recruitment-console/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name       string
		candidates []domain.Candidate
		want       usecase.MatchingSummary
	}{
		{"empty", nil, usecase.MatchingSummary{}},
		{
			"rounds the mean",
			[]domain.Candidate{{Score: 80, Invited: true}, {Score: 61}},
			usecase.MatchingSummary{Count: 2, InvitedCount: 1, AverageScore: 71},
		},
		{
			"rounds down",
			[]domain.Candidate{{Score: 70}, {Score: 70}, {Score: 71}},
			usecase.MatchingSummary{Count: 3, AverageScore: 70},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, usecase.Summarize(tt.candidates))
		})
	}
}

func TestMatchingBoardInvite(t *testing.T) {
	ctx := context.Background()

	t.Run("success re-fetches the ranking", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		notifier := &usecase.RecordingNotifier{}
		board := usecase.NewMatchingBoard(usecase.NewCandidateUsecase(repo), notifier, "job-1")

		repo.On("FetchMatching", mock.Anything, "job-1").
			Return([]domain.Candidate{{ID: "c1", Score: 90}}, nil).Once()
		repo.On("Invite", mock.Anything, domain.Invitation{JobID: "job-1", CandidateID: "c1"}).Return(nil).Once()
		repo.On("FetchMatching", mock.Anything, "job-1").
			Return([]domain.Candidate{{ID: "c1", Score: 90, Invited: true}}, nil).Once()

		assert.True(t, board.Loading())
		board.FetchCandidates(ctx)
		assert.False(t, board.Loading())

		assert.True(t, board.Invite(ctx, "c1"))
		assert.Empty(t, board.InvitingID())
		assert.True(t, board.Candidates()[0].Invited)
		assert.Equal(t, 1, board.Summary().InvitedCount)
		assert.Equal(t, "Candidato convidado com sucesso!", notifier.Notifications()[0].Message)
		repo.AssertNumberOfCalls(t, "FetchMatching", 2)
	})

	t.Run("failure clears the inviting id without re-fetching", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		notifier := &usecase.RecordingNotifier{}
		board := usecase.NewMatchingBoard(usecase.NewCandidateUsecase(repo), notifier, "job-1")

		repo.On("Invite", mock.Anything, mock.Anything).Return(apperror.FromStatus(409, "Candidato já convidado")).Once()

		assert.False(t, board.Invite(ctx, "c1"))
		assert.Empty(t, board.InvitingID())
		assert.Equal(t, "Não foi possível convidar o candidato: Candidato já convidado", notifier.Notifications()[0].Message)
		repo.AssertNotCalled(t, "FetchMatching", mock.Anything, mock.Anything)
	})

	t.Run("send invite leaves the ranking to the caller", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		notifier := &usecase.RecordingNotifier{}
		board := usecase.NewMatchingBoard(usecase.NewCandidateUsecase(repo), notifier, "job-1")

		repo.On("Invite", mock.Anything, domain.Invitation{JobID: "job-1", CandidateID: "c2"}).Return(nil).Once()

		assert.True(t, board.SendInvite(ctx, "c2"))
		assert.Empty(t, board.InvitingID())
		assert.Equal(t, "Candidato convidado com sucesso!", notifier.Notifications()[0].Message)
		repo.AssertNotCalled(t, "FetchMatching", mock.Anything, mock.Anything)
	})

	t.Run("fetch failure keeps the previous list", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		notifier := &usecase.RecordingNotifier{}
		board := usecase.NewMatchingBoard(usecase.NewCandidateUsecase(repo), notifier, "job-1")

		repo.On("FetchMatching", mock.Anything, "job-1").Return([]domain.Candidate{{ID: "c1"}}, nil).Once()
		repo.On("FetchMatching", mock.Anything, "job-1").Return(nil, apperror.Network(errBackendDown)).Once()

		board.FetchCandidates(ctx)
		board.FetchCandidates(ctx)

		assert.Len(t, board.Candidates(), 1)
		assert.Equal(t, domain.NotifyError, notifier.Notifications()[0].Level)
	})
}

func TestFilterByName(t *testing.T) {
	candidates := []domain.Candidate{
		{ID: "1", Name: "Ana Silva"},
		{ID: "2", Name: "Bruno Costa"},
		{ID: "3", Name: "João Añez"},
	}

	tests := []struct {
		term string
		want []string
	}{
		{"ana", []string{"1"}},
		{"ANA", []string{"1"}},
		{"  ", []string{"1", "2", "3"}},
		{"joao", []string{"3"}},
		{"anez", []string{"3"}},
		{"xyz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			got := []string{}
			for _, c := range usecase.FilterByName(candidates, tt.term) {
				got = append(got, c.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadCandidateDirectory(t *testing.T) {
	ctx := context.Background()

	t.Run("filters by term", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		repo.On("FetchAll", mock.Anything).
			Return([]domain.Candidate{{Name: "Ana Silva"}, {Name: "Bruno"}}, nil).Once()

		dir := usecase.LoadCandidateDirectory(ctx, usecase.NewCandidateUsecase(repo), &usecase.RecordingNotifier{}, " ana ")
		assert.Equal(t, "ana", dir.Term)
		assert.Len(t, dir.All, 2)
		require.Len(t, dir.Filtered, 1)
		assert.Equal(t, "Ana Silva", dir.Filtered[0].Name)
	})

	t.Run("failure notifies and yields nothing", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		notifier := &usecase.RecordingNotifier{}
		repo.On("FetchAll", mock.Anything).Return(nil, apperror.Network(errBackendDown)).Once()

		dir := usecase.LoadCandidateDirectory(ctx, usecase.NewCandidateUsecase(repo), notifier, "")
		assert.Empty(t, dir.All)
		assert.Empty(t, dir.Filtered)
		assert.Equal(t, "Erro ao carregar candidatos: Network Error", notifier.Notifications()[0].Message)
	})
}

func TestCandidateUsecaseRejectsBlankIDs(t *testing.T) {
	uc := usecase.NewCandidateUsecase(new(MockCandidateRepo))

	_, err := uc.Matching(context.Background(), "")
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	assert.Error(t, uc.Invite(context.Background(), "job", " "))
}
