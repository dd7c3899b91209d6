package memory

import (
	"context"
	"sync"
	"time"

	"go-recruitment-console/internal/domain"
)

type sessionEntry struct {
	values    map[string]string
	expiresAt time.Time
}

// SessionRepository is the in-process session store used when no
// external backend is configured. Sessions die with the process.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry
	ttl      time.Duration
	now      func() time.Time
}

var _ domain.SessionStore = (*SessionRepository)(nil)

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]*sessionEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (r *SessionRepository) Get(_ context.Context, sessionID, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.sessions[sessionID]
	if !ok || !r.now().Before(entry.expiresAt) {
		return "", false, nil
	}
	value, ok := entry.values[key]
	return value, ok, nil
}

func (r *SessionRepository) Set(_ context.Context, sessionID, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	entry, ok := r.sessions[sessionID]
	if !ok || !now.Before(entry.expiresAt) {
		entry = &sessionEntry{values: make(map[string]string)}
		r.sessions[sessionID] = entry
	}
	entry.values[key] = value
	entry.expiresAt = now.Add(r.ttl)
	return nil
}

func (r *SessionRepository) Delete(_ context.Context, sessionID string, keys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.sessions[sessionID]
	if !ok {
		return nil
	}
	for _, key := range keys {
		delete(entry.values, key)
	}
	if len(entry.values) == 0 {
		delete(r.sessions, sessionID)
	}
	return nil
}

func (r *SessionRepository) Touch(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if entry, ok := r.sessions[sessionID]; ok && now.Before(entry.expiresAt) {
		entry.expiresAt = now.Add(r.ttl)
	}
	return nil
}

func (r *SessionRepository) Ping(context.Context) error {
	return nil
}

// PurgeExpired drops sessions past their expiry.
func (r *SessionRepository) PurgeExpired(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for id, entry := range r.sessions {
		if !now.Before(entry.expiresAt) {
			delete(r.sessions, id)
		}
	}
	return nil
}

// Len reports the number of live sessions.
func (r *SessionRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
