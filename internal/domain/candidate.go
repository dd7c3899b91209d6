package domain

import "context"

type Candidate struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Skills          []string `json:"skills"`
	ExperienceYears float64  `json:"experienceYears"`
	Score           float64  `json:"score"`
	Invited         bool     `json:"invited"`
}

type Invitation struct {
	JobID       string `json:"jobId"`
	CandidateID string `json:"candidateId"`
}

type CandidateRepository interface {
	FetchAll(ctx context.Context) ([]Candidate, error)
	FetchMatching(ctx context.Context, jobID string) ([]Candidate, error)
	Invite(ctx context.Context, invitation Invitation) error
}

type CandidateUsecase interface {
	ListAll(ctx context.Context) ([]Candidate, error)
	Matching(ctx context.Context, jobID string) ([]Candidate, error)
	Invite(ctx context.Context, jobID, candidateID string) error
}
