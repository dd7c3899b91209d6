package domain

import (
	"context"
	"strings"
)

type User struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
}

// DisplayName falls back to the email when the backend has no name.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) != "" {
		return *u.Name
	}
	return u.Email
}

type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type AuthRepository interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Me(ctx context.Context) (*User, error)
}

// AuthUsecase persists the backend token and user record per session.
type AuthUsecase interface {
	Login(ctx context.Context, sessionID, email, password string) (*LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
	GetUser(ctx context.Context, sessionID string) (*User, error)
	GetToken(ctx context.Context, sessionID string) (string, error)
	IsAuthenticated(ctx context.Context, sessionID string) bool
	CurrentUser(ctx context.Context) (*User, error)
}
