package usecase

import (
	"context"
	"encoding/json"

	"go-recruitment-console/internal/domain"
	"go-recruitment-console/pkg/apperror"
	"go-recruitment-console/pkg/logger"
)

type authUsecase struct {
	repo  domain.AuthRepository
	store domain.SessionStore
}

func NewAuthUsecase(repo domain.AuthRepository, store domain.SessionStore) domain.AuthUsecase {
	return &authUsecase{
		repo:  repo,
		store: store,
	}
}

// Login exchanges credentials for a token and persists token and user
// before returning. Nothing is written when the backend rejects them.
func (u *authUsecase) Login(ctx context.Context, sessionID, email, password string) (*domain.LoginResult, error) {
	result, err := u.repo.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	userJSON, err := json.Marshal(result.User)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if err := u.store.Set(ctx, sessionID, domain.SessionKeyToken, result.Token); err != nil {
		return nil, err
	}
	if err := u.store.Set(ctx, sessionID, domain.SessionKeyUser, string(userJSON)); err != nil {
		_ = u.store.Delete(ctx, sessionID, domain.SessionKeyToken)
		return nil, err
	}

	return result, nil
}

// Logout clears both persisted keys. The backend is not involved.
func (u *authUsecase) Logout(ctx context.Context, sessionID string) error {
	return u.store.Delete(ctx, sessionID, domain.SessionKeyToken, domain.SessionKeyUser)
}

func (u *authUsecase) GetUser(ctx context.Context, sessionID string) (*domain.User, error) {
	raw, ok, err := u.store.Get(ctx, sessionID, domain.SessionKeyUser)
	if err != nil || !ok {
		return nil, err
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		logger.Log.Warn("Discarding unreadable session user", "error", err)
		return nil, nil
	}
	return &user, nil
}

func (u *authUsecase) GetToken(ctx context.Context, sessionID string) (string, error) {
	token, _, err := u.store.Get(ctx, sessionID, domain.SessionKeyToken)
	return token, err
}

func (u *authUsecase) IsAuthenticated(ctx context.Context, sessionID string) bool {
	token, err := u.GetToken(ctx, sessionID)
	return err == nil && token != ""
}

// CurrentUser asks the backend who the attached token belongs to.
func (u *authUsecase) CurrentUser(ctx context.Context) (*domain.User, error) {
	if domain.TokenFromContext(ctx) == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	return u.repo.Me(ctx)
}
