package domain

import (
	"context"
	"time"
)

type Job struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	SalaryRange string    `json:"salaryRange"`
	Skills      []string  `json:"skills"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// JobInput is the job form as submitted for creation.
type JobInput struct {
	Title       string   `json:"title" form:"title" validate:"min=3"`
	Description string   `json:"description" form:"description" validate:"min=10"`
	Location    string   `json:"location" form:"location" validate:"min=2"`
	SalaryRange string   `json:"salaryRange" form:"salaryRange" validate:"min=1"`
	Skills      []string `json:"skills" form:"skills" validate:"min=1,unique,dive,not_blank"`
}

// JobPatch is a partial update; nil fields are left untouched upstream.
type JobPatch struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Location    *string  `json:"location,omitempty"`
	SalaryRange *string  `json:"salaryRange,omitempty"`
	Skills      []string `json:"skills,omitempty"`
}

// Patch turns a fully validated form into an update payload.
func (in *JobInput) Patch() *JobPatch {
	return &JobPatch{
		Title:       &in.Title,
		Description: &in.Description,
		Location:    &in.Location,
		SalaryRange: &in.SalaryRange,
		Skills:      in.Skills,
	}
}

// InputFromJob pre-fills the edit form.
func InputFromJob(job *Job) *JobInput {
	skills := make([]string, len(job.Skills))
	copy(skills, job.Skills)
	return &JobInput{
		Title:       job.Title,
		Description: job.Description,
		Location:    job.Location,
		SalaryRange: job.SalaryRange,
		Skills:      skills,
	}
}

type JobRepository interface {
	Fetch(ctx context.Context, page, limit int) (*Page[Job], error)
	GetByID(ctx context.Context, id string) (*Job, error)
	Create(ctx context.Context, input *JobInput) (*Job, error)
	Update(ctx context.Context, id string, patch *JobPatch) (*Job, error)
	Delete(ctx context.Context, id string) error
}

type JobUsecase interface {
	ListJobs(ctx context.Context, page, limit int) (*Page[Job], error)
	GetJob(ctx context.Context, id string) (*Job, error)
	CreateJob(ctx context.Context, input *JobInput) (*Job, error)
	UpdateJob(ctx context.Context, id string, patch *JobPatch) (*Job, error)
	DeleteJob(ctx context.Context, id string) error
}
