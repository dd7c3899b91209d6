package usecase

import (
	"context"

	"go-recruitment-console/internal/domain"
)

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, bool)
}

type healthUsecase struct {
	store     domain.SessionStore
	storeKind string
}

func NewHealthUsecase(store domain.SessionStore, storeKind string) HealthUsecase {
	return &healthUsecase{store: store, storeKind: storeKind}
}

// Check reports the console itself and its session store. The upstream
// API is not checked; its failures surface per request.
func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	status := map[string]string{
		"status":        "ok",
		"session_store": u.storeKind,
	}
	if err := u.store.Ping(ctx); err != nil {
		status["status"] = "degraded"
		status["session_store_error"] = err.Error()
		return status, false
	}
	return status, true
}
