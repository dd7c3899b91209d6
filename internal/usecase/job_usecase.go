package usecase

import (
	"context"
	"strings"

	"go-recruitment-console/internal/domain"
	"go-recruitment-console/pkg/apperror"
	"go-recruitment-console/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const defaultPageSize = 10

type jobUsecase struct {
	jobRepo  domain.JobRepository
	validate *validator.Validate
}

func NewJobUsecase(jobRepo domain.JobRepository, validate *validator.Validate) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:  jobRepo,
		validate: validate,
	}
}

func (u *jobUsecase) ListJobs(ctx context.Context, page, limit int) (*domain.Page[domain.Job], error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	return u.jobRepo.Fetch(ctx, page, limit)
}

func (u *jobUsecase) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperror.BadRequest("Invalid job ID")
	}
	return u.jobRepo.GetByID(ctx, id)
}

// CreateJob re-checks the form schema; the backend owns every other rule.
func (u *jobUsecase) CreateJob(ctx context.Context, input *domain.JobInput) (*domain.Job, error) {
	input.Skills = validation.NormalizeSkills(input.Skills)
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.Validation("Dados da vaga inválidos", err)
	}
	return u.jobRepo.Create(ctx, input)
}

func (u *jobUsecase) UpdateJob(ctx context.Context, id string, patch *domain.JobPatch) (*domain.Job, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperror.BadRequest("Invalid job ID")
	}
	if patch.Skills != nil {
		patch.Skills = validation.NormalizeSkills(patch.Skills)
		if len(patch.Skills) == 0 {
			return nil, apperror.BadRequest("Adicione pelo menos uma habilidade")
		}
	}
	return u.jobRepo.Update(ctx, id, patch)
}

func (u *jobUsecase) DeleteJob(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperror.BadRequest("Invalid job ID")
	}
	return u.jobRepo.Delete(ctx, id)
}
