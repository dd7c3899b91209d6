package usecase

import (
	"context"
	"math"
	"sync"

	"go-recruitment-console/internal/domain"
)

// MatchingSummary is the header panel of the matching view.
type MatchingSummary struct {
	Count        int
	InvitedCount int
	AverageScore int
}

// Summarize rounds the mean score to the nearest integer; no candidates
// yields zero.
func Summarize(candidates []domain.Candidate) MatchingSummary {
	s := MatchingSummary{Count: len(candidates)}
	if len(candidates) == 0 {
		return s
	}

	var sum float64
	for _, c := range candidates {
		sum += c.Score
		if c.Invited {
			s.InvitedCount++
		}
	}
	s.AverageScore = int(math.Round(sum / float64(len(candidates))))
	return s
}

// MatchingBoard is the candidate list for one job. A single inviting id
// drives the busy state of the invite buttons; it does not stop
// overlapping invites from being sent.
type MatchingBoard struct {
	candidates domain.CandidateUsecase
	notifier   domain.Notifier
	jobID      string

	mu         sync.Mutex
	list       []domain.Candidate
	loading    bool
	invitingID string
}

func NewMatchingBoard(candidates domain.CandidateUsecase, notifier domain.Notifier, jobID string) *MatchingBoard {
	return &MatchingBoard{
		candidates: candidates,
		notifier:   notifier,
		jobID:      jobID,
		list:       []domain.Candidate{},
		loading:    true,
	}
}

// FetchCandidates keeps the previous list when the request fails.
func (b *MatchingBoard) FetchCandidates(ctx context.Context) {
	b.mu.Lock()
	b.loading = true
	b.mu.Unlock()

	list, err := b.candidates.Matching(ctx, b.jobID)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.loading = false
	if err != nil {
		b.notifier.Error("Não foi possível carregar candidatos: " + err.Error())
		return
	}
	if list == nil {
		list = []domain.Candidate{}
	}
	b.list = list
}

// Invite records the invitation and re-fetches so the invited flag and
// scores reflect the backend.
func (b *MatchingBoard) Invite(ctx context.Context, candidateID string) bool {
	if !b.SendInvite(ctx, candidateID) {
		return false
	}
	b.FetchCandidates(ctx)
	return true
}

// SendInvite records the invitation without re-fetching, for callers
// that reload the ranking themselves.
func (b *MatchingBoard) SendInvite(ctx context.Context, candidateID string) bool {
	b.mu.Lock()
	b.invitingID = candidateID
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		b.invitingID = ""
		b.mu.Unlock()
	}()

	if err := b.candidates.Invite(ctx, b.jobID, candidateID); err != nil {
		b.notifier.Error("Não foi possível convidar o candidato: " + err.Error())
		return false
	}

	b.notifier.Success("Candidato convidado com sucesso!")
	return true
}

func (b *MatchingBoard) Candidates() []domain.Candidate {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.Candidate, len(b.list))
	copy(out, b.list)
	return out
}

func (b *MatchingBoard) Loading() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loading
}

func (b *MatchingBoard) InvitingID() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.invitingID
}

func (b *MatchingBoard) Summary() MatchingSummary {
	return Summarize(b.Candidates())
}
