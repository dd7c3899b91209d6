package postgres

import (
	"context"
	"errors"
	"time"

	"go-recruitment-console/internal/domain"
	"go-recruitment-console/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createSessionTable = `
CREATE TABLE IF NOT EXISTS console_session_values (
    session_id TEXT        NOT NULL,
    key        TEXT        NOT NULL,
    value      TEXT        NOT NULL,
    expires_at TIMESTAMPTZ NOT NULL,
    PRIMARY KEY (session_id, key)
);
CREATE INDEX IF NOT EXISTS idx_console_session_values_expires ON console_session_values (expires_at);`

// touchSession only extends rows that are still live, so a write never
// revives values that expired before the janitor purged them.
const touchSession = `UPDATE console_session_values SET expires_at = $2
                      WHERE session_id = $1 AND expires_at > NOW()`

type SessionRepository struct {
	db  *pgxpool.Pool
	ttl time.Duration
}

// NewSessionRepository returns a Postgres-backed session store. Call
// Migrate once before use.
func NewSessionRepository(db *pgxpool.Pool, ttl time.Duration) *SessionRepository {
	return &SessionRepository{db: db, ttl: ttl}
}

var _ domain.SessionStore = (*SessionRepository)(nil)

func (r *SessionRepository) Migrate(ctx context.Context) error {
	_, err := r.db.Exec(ctx, createSessionTable)
	return err
}

func (r *SessionRepository) Get(ctx context.Context, sessionID, key string) (string, bool, error) {
	query := `SELECT value FROM console_session_values
              WHERE session_id = $1 AND key = $2 AND expires_at > NOW()`
	var value string
	err := r.db.QueryRow(ctx, query, sessionID, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, apperror.Internal(err)
	}
	return value, true, nil
}

// Set upserts the value and slides the expiry of the whole session.
func (r *SessionRepository) Set(ctx context.Context, sessionID, key, value string) error {
	expiresAt := time.Now().Add(r.ttl)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	upsert := `INSERT INTO console_session_values (session_id, key, value, expires_at)
               VALUES ($1, $2, $3, $4)
               ON CONFLICT (session_id, key) DO UPDATE SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at`
	if _, err := tx.Exec(ctx, upsert, sessionID, key, value, expiresAt); err != nil {
		return apperror.Internal(err)
	}

	if _, err := tx.Exec(ctx, touchSession, sessionID, expiresAt); err != nil {
		return apperror.Internal(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, sessionID string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	query := `DELETE FROM console_session_values WHERE session_id = $1 AND key = ANY($2)`
	if _, err := r.db.Exec(ctx, query, sessionID, keys); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *SessionRepository) Touch(ctx context.Context, sessionID string) error {
	if _, err := r.db.Exec(ctx, touchSession, sessionID, time.Now().Add(r.ttl)); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *SessionRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// PurgeExpired removes rows past their expiry.
func (r *SessionRepository) PurgeExpired(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM console_session_values WHERE expires_at <= NOW()`)
	return err
}
