package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-recruitment-console/internal/domain"
	"go-recruitment-console/internal/repository/memory"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Fetch(ctx context.Context, page, limit int) (*domain.Page[domain.Job], error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page[domain.Job]), args.Error(1)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) Create(ctx context.Context, input *domain.JobInput) (*domain.Job, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) Update(ctx context.Context, id string, patch *domain.JobPatch) (*domain.Job, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}

func (m *MockJobRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) FetchAll(ctx context.Context) ([]domain.Candidate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) FetchMatching(ctx context.Context, jobID string) ([]domain.Candidate, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) Invite(ctx context.Context, invitation domain.Invitation) error {
	return m.Called(ctx, invitation).Error(0)
}

type MockAuthRepo struct {
	mock.Mock
}

func (m *MockAuthRepo) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoginResult), args.Error(1)
}

func (m *MockAuthRepo) Me(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var errBackendDown = errors.New("connection refused")

func newStore() *memory.SessionRepository {
	return memory.NewSessionRepository(time.Hour)
}

func makeJobs(prefix string, n int) []domain.Job {
	jobs := make([]domain.Job, n)
	for i := range jobs {
		jobs[i] = domain.Job{ID: fmt.Sprintf("%s%d", prefix, i+1), Title: fmt.Sprintf("Vaga %d", i+1)}
	}
	return jobs
}

func jobPage(jobs []domain.Job, total, page, limit int) *domain.Page[domain.Job] {
	return &domain.Page[domain.Job]{Data: jobs, Total: total, Page: page, Limit: limit}
}
