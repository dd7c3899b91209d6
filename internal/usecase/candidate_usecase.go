package usecase

import (
	"context"
	"strings"

	"go-recruitment-console/internal/domain"
	"go-recruitment-console/pkg/apperror"
)

type candidateUsecase struct {
	repo domain.CandidateRepository
}

func NewCandidateUsecase(repo domain.CandidateRepository) domain.CandidateUsecase {
	return &candidateUsecase{repo: repo}
}

func (u *candidateUsecase) ListAll(ctx context.Context) ([]domain.Candidate, error) {
	return u.repo.FetchAll(ctx)
}

// Matching returns the backend's ranking as-is; scores are never
// recomputed or re-sorted here.
func (u *candidateUsecase) Matching(ctx context.Context, jobID string) ([]domain.Candidate, error) {
	if strings.TrimSpace(jobID) == "" {
		return nil, apperror.BadRequest("Invalid job ID")
	}
	return u.repo.FetchMatching(ctx, jobID)
}

func (u *candidateUsecase) Invite(ctx context.Context, jobID, candidateID string) error {
	if strings.TrimSpace(jobID) == "" || strings.TrimSpace(candidateID) == "" {
		return apperror.BadRequest("Invalid invitation")
	}
	return u.repo.Invite(ctx, domain.Invitation{JobID: jobID, CandidateID: candidateID})
}
