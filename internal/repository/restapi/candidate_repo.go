package restapi

import (
	"context"
	"net/url"

	"go-recruitment-console/internal/domain"
)

type candidateRepository struct {
	client *Client
}

func NewCandidateRepository(client *Client) domain.CandidateRepository {
	return &candidateRepository{client: client}
}

func (r *candidateRepository) FetchAll(ctx context.Context) ([]domain.Candidate, error) {
	candidates := []domain.Candidate{}
	if err := r.client.Get(ctx, "/candidates/all", nil, &candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}

// FetchMatching returns candidates already scored and sorted by the backend.
func (r *candidateRepository) FetchMatching(ctx context.Context, jobID string) ([]domain.Candidate, error) {
	candidates := []domain.Candidate{}
	path := "/candidates/jobs/" + url.PathEscape(jobID) + "/getMatchingCandidates"
	if err := r.client.Get(ctx, path, nil, &candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}

func (r *candidateRepository) Invite(ctx context.Context, invitation domain.Invitation) error {
	return r.client.Post(ctx, "/candidates/invitations", invitation, nil)
}
