package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"go-recruitment-console/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRepo needs a disposable database in TEST_DATABASE_URL.
func newTestRepo(t *testing.T, ttl time.Duration) *SessionRepository {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := database.NewPostgresConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	repo := NewSessionRepository(pool, ttl)
	require.NoError(t, repo.Migrate(ctx))
	return repo
}

func TestSessionRepositoryRoundTrip(t *testing.T) {
	repo := newTestRepo(t, time.Hour)
	ctx := context.Background()
	sid := uuid.NewString()

	_, ok, err := repo.Get(ctx, sid, "token")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Set(ctx, sid, "token", "abc"))
	require.NoError(t, repo.Set(ctx, sid, "token", "def"))

	value, ok, err := repo.Get(ctx, sid, "token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "def", value)

	require.NoError(t, repo.Delete(ctx, sid, "token"))
	_, ok, _ = repo.Get(ctx, sid, "token")
	assert.False(t, ok)
}

func TestSessionRepositoryDoesNotReviveExpiredValues(t *testing.T) {
	repo := newTestRepo(t, time.Hour)
	ctx := context.Background()
	sid := uuid.NewString()

	_, err := repo.db.Exec(ctx,
		`INSERT INTO console_session_values (session_id, key, value, expires_at)
		 VALUES ($1, 'token', 'stale', NOW() - INTERVAL '1 minute')`, sid)
	require.NoError(t, err)

	require.NoError(t, repo.Set(ctx, sid, "flash", "[]"))
	_, ok, err := repo.Get(ctx, sid, "token")
	require.NoError(t, err)
	assert.False(t, ok, "a write leaves expired rows expired")

	require.NoError(t, repo.Touch(ctx, sid))
	_, ok, _ = repo.Get(ctx, sid, "token")
	assert.False(t, ok, "touch leaves expired rows expired")

	_, ok, _ = repo.Get(ctx, sid, "flash")
	assert.True(t, ok)

	require.NoError(t, repo.PurgeExpired(ctx))
	var stale int
	require.NoError(t, repo.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM console_session_values WHERE session_id = $1 AND key = 'token'`, sid).Scan(&stale))
	assert.Zero(t, stale)
}
