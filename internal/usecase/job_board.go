package usecase

import (
	"context"
	"sync"
	"sync/atomic"

	"go-recruitment-console/internal/domain"
)

type JobBoardOptions struct {
	InitialPage  int
	InitialLimit int
}

// JobBoard is the job listing state behind one view. Each operation
// has its own busy flag. Failures become notifications and never
// escape as errors.
type JobBoard struct {
	jobs     domain.JobUsecase
	notifier domain.Notifier

	mu         sync.Mutex
	list       []domain.Job
	current    *domain.Job
	page       int
	totalPages int
	total      int
	limit      int
	// loaded is true while list mirrors a successfully fetched page.
	loaded bool

	isLoading    atomic.Bool
	isSubmitting atomic.Bool
	isDeleting   atomic.Bool
}

// JobBoardState is a point-in-time copy for rendering.
type JobBoardState struct {
	Jobs         []domain.Job
	Current      *domain.Job
	Page         int
	TotalPages   int
	Total        int
	Limit        int
	IsLoading    bool
	IsSubmitting bool
	IsDeleting   bool
}

func NewJobBoard(jobs domain.JobUsecase, notifier domain.Notifier, opts JobBoardOptions) *JobBoard {
	if opts.InitialPage < 1 {
		opts.InitialPage = 1
	}
	if opts.InitialLimit < 1 {
		opts.InitialLimit = defaultPageSize
	}
	return &JobBoard{
		jobs:       jobs,
		notifier:   notifier,
		list:       []domain.Job{},
		page:       opts.InitialPage,
		totalPages: 1,
		limit:      opts.InitialLimit,
	}
}

func (b *JobBoard) State() JobBoardState {
	b.mu.Lock()
	defer b.mu.Unlock()

	jobs := make([]domain.Job, len(b.list))
	copy(jobs, b.list)
	return JobBoardState{
		Jobs:         jobs,
		Current:      b.current,
		Page:         b.page,
		TotalPages:   b.totalPages,
		Total:        b.total,
		Limit:        b.limit,
		IsLoading:    b.isLoading.Load(),
		IsSubmitting: b.isSubmitting.Load(),
		IsDeleting:   b.isDeleting.Load(),
	}
}

// FetchJobs loads the current page.
func (b *JobBoard) FetchJobs(ctx context.Context) {
	b.fetch(ctx, b.currentPage(), false, true)
}

// FetchPage loads page and makes it current on success.
func (b *JobBoard) FetchPage(ctx context.Context, page int) {
	b.fetch(ctx, page, true, true)
}

// RefreshCurrentPage re-fetches the page being shown.
func (b *JobBoard) RefreshCurrentPage(ctx context.Context) {
	b.fetch(ctx, b.currentPage(), true, true)
}

// LoadPage fetches the current page without notifying on failure and
// reports whether it succeeded.
func (b *JobBoard) LoadPage(ctx context.Context) bool {
	return b.fetch(ctx, b.currentPage(), false, false)
}

func (b *JobBoard) currentPage() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.page
}

func (b *JobBoard) fetch(ctx context.Context, page int, setPage, notify bool) bool {
	b.isLoading.Store(true)
	defer b.isLoading.Store(false)

	b.mu.Lock()
	limit := b.limit
	b.mu.Unlock()

	result, err := b.jobs.ListJobs(ctx, page, limit)

	b.mu.Lock()
	defer b.mu.Unlock()

	if err != nil {
		if notify {
			b.notifier.Error("Erro ao carregar vagas: " + err.Error())
		}
		b.list = []domain.Job{}
		b.loaded = false
		return false
	}

	result.Normalize(page, limit)
	b.list = result.Data
	b.loaded = true
	b.totalPages = result.TotalPages
	b.total = result.Total
	if setPage {
		b.page = page
	}
	return true
}

// FetchJobByID caches the job as current. Returns nil on failure.
func (b *JobBoard) FetchJobByID(ctx context.Context, id string) *domain.Job {
	b.isLoading.Store(true)
	defer b.isLoading.Store(false)

	job, err := b.jobs.GetJob(ctx, id)

	b.mu.Lock()
	defer b.mu.Unlock()

	if err != nil {
		b.notifier.Error("Erro ao carregar vaga: " + err.Error())
		b.current = nil
		return nil
	}
	b.current = job
	return job
}

// CreateJob posts a new job. While on page 1 the job is prepended
// locally instead of re-fetching, keeping at most limit items.
func (b *JobBoard) CreateJob(ctx context.Context, input *domain.JobInput) *domain.Job {
	b.isSubmitting.Store(true)
	defer b.isSubmitting.Store(false)

	job, err := b.jobs.CreateJob(ctx, input)
	if err != nil {
		b.notifier.Error("Erro ao criar vaga: " + err.Error())
		return nil
	}

	b.notifier.Success("Vaga criada com sucesso!")

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.page == 1 {
		keep := len(b.list)
		if keep > b.limit-1 {
			keep = b.limit - 1
		}
		list := make([]domain.Job, 0, keep+1)
		list = append(list, *job)
		list = append(list, b.list[:keep]...)
		b.list = list
	}
	return job
}

func (b *JobBoard) UpdateJob(ctx context.Context, id string, patch *domain.JobPatch) *domain.Job {
	b.isSubmitting.Store(true)
	defer b.isSubmitting.Store(false)

	job, err := b.jobs.UpdateJob(ctx, id, patch)
	if err != nil {
		b.notifier.Error("Erro ao atualizar vaga: " + err.Error())
		return nil
	}

	b.notifier.Success("Vaga atualizada com sucesso!")

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.list {
		if b.list[i].ID == id {
			b.list[i] = *job
		}
	}
	if b.current != nil && b.current.ID == id {
		b.current = job
	}
	return job
}

// DeleteJob removes the job. When that empties a loaded page other than
// the first, the board steps back one page and re-fetches.
func (b *JobBoard) DeleteJob(ctx context.Context, id string) bool {
	b.isDeleting.Store(true)
	defer b.isDeleting.Store(false)

	if err := b.jobs.DeleteJob(ctx, id); err != nil {
		b.notifier.Error("Erro ao deletar vaga: " + err.Error())
		return false
	}

	b.notifier.Success("Vaga deletada com sucesso!")

	b.mu.Lock()
	remaining := make([]domain.Job, 0, len(b.list))
	for _, job := range b.list {
		if job.ID != id {
			remaining = append(remaining, job)
		}
	}
	b.list = remaining
	if b.current != nil && b.current.ID == id {
		b.current = nil
	}
	stepBack := b.loaded && len(remaining) == 0 && b.page > 1
	if stepBack {
		b.page--
	}
	page := b.page
	b.mu.Unlock()

	if stepBack {
		b.FetchPage(ctx, page)
	}
	return true
}

func (b *JobBoard) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	b.mu.Lock()
	b.page = page
	b.mu.Unlock()
}

func (b *JobBoard) ClearCurrentJob() {
	b.mu.Lock()
	b.current = nil
	b.mu.Unlock()
}
