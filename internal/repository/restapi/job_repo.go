package restapi

import (
	"context"
	"net/url"
	"strconv"

	"go-recruitment-console/internal/domain"
)

type jobRepository struct {
	client *Client
}

func NewJobRepository(client *Client) domain.JobRepository {
	return &jobRepository{client: client}
}

func (r *jobRepository) Fetch(ctx context.Context, page, limit int) (*domain.Page[domain.Job], error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var out domain.Page[domain.Job]
	if err := r.client.Get(ctx, "/jobs/all", query, &out); err != nil {
		return nil, err
	}
	out.Normalize(page, limit)
	return &out, nil
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	var job domain.Job
	if err := r.client.Get(ctx, "/jobs/"+url.PathEscape(id), nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) Create(ctx context.Context, input *domain.JobInput) (*domain.Job, error) {
	var job domain.Job
	if err := r.client.Post(ctx, "/jobs/create", input, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) Update(ctx context.Context, id string, patch *domain.JobPatch) (*domain.Job, error) {
	var job domain.Job
	if err := r.client.Put(ctx, "/jobs/updateJob/"+url.PathEscape(id), patch, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, "/jobs/deleteJob/"+url.PathEscape(id))
}
