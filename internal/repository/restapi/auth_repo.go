package restapi

import (
	"context"
	"errors"

	"go-recruitment-console/internal/domain"
	"go-recruitment-console/pkg/apperror"
)

type authRepository struct {
	client *Client
}

func NewAuthRepository(client *Client) domain.AuthRepository {
	return &authRepository{client: client}
}

func (r *authRepository) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	body := map[string]string{"email": email, "password": password}

	var result domain.LoginResult
	if err := r.client.Post(ctx, "/auth/login", body, &result); err != nil {
		return nil, err
	}
	if result.Token == "" {
		return nil, apperror.New(502, apperror.KindServer, "Login response without token", errors.New("empty token"))
	}
	return &result, nil
}

func (r *authRepository) Me(ctx context.Context) (*domain.User, error) {
	var out struct {
		User *domain.User `json:"user"`
	}
	if err := r.client.Get(ctx, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	if out.User == nil {
		return nil, apperror.NotFound("User not found")
	}
	return out.User, nil
}
