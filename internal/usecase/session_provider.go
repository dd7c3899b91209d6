package usecase

import (
	"context"
	"sync"

	"go-recruitment-console/internal/domain"
)

const (
	PathLogin = "/login"
	PathHome  = "/jobs"
)

// Navigator performs the navigation side effects of login and logout.
type Navigator interface {
	Navigate(path string)
}

type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// SessionProvider is the per-session auth state handed to views: the
// current user and whether hydration has finished.
type SessionProvider struct {
	auth      domain.AuthUsecase
	sessionID string
	nav       Navigator

	mu      sync.RWMutex
	once    sync.Once
	user    *domain.User
	loading bool
}

func NewSessionProvider(auth domain.AuthUsecase, sessionID string, nav Navigator) *SessionProvider {
	if nav == nil {
		nav = NavigatorFunc(func(string) {})
	}
	return &SessionProvider{
		auth:      auth,
		sessionID: sessionID,
		nav:       nav,
		loading:   true,
	}
}

// Init hydrates the user from the session store exactly once.
func (p *SessionProvider) Init(ctx context.Context) error {
	var err error
	p.once.Do(func() {
		var user *domain.User
		user, err = p.auth.GetUser(ctx, p.sessionID)

		p.mu.Lock()
		p.user = user
		p.loading = false
		p.mu.Unlock()
	})
	return err
}

func (p *SessionProvider) SessionID() string {
	return p.sessionID
}

func (p *SessionProvider) User() *domain.User {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.user
}

func (p *SessionProvider) Loading() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loading
}

// NeedsLogin is true once hydration finished without a user.
func (p *SessionProvider) NeedsLogin() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return !p.loading && p.user == nil
}

// Login returns the backend error untouched so the form can show it.
func (p *SessionProvider) Login(ctx context.Context, email, password string) error {
	result, err := p.auth.Login(ctx, p.sessionID, email, password)
	if err != nil {
		return err
	}

	user := result.User
	p.mu.Lock()
	p.user = &user
	p.loading = false
	p.mu.Unlock()

	p.nav.Navigate(PathHome)
	return nil
}

func (p *SessionProvider) Logout(ctx context.Context) error {
	err := p.auth.Logout(ctx, p.sessionID)

	p.mu.Lock()
	p.user = nil
	p.loading = false
	p.mu.Unlock()

	p.nav.Navigate(PathLogin)
	return err
}

type sessionCtxKey struct{}

func WithSession(ctx context.Context, p *SessionProvider) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, p)
}

func SessionFrom(ctx context.Context) *SessionProvider {
	p, _ := ctx.Value(sessionCtxKey{}).(*SessionProvider)
	return p
}
