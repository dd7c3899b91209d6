package redis

import (
	"context"
	"errors"
	"time"

	"go-recruitment-console/internal/domain"
	"go-recruitment-console/pkg/apperror"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "console:session:"

// sessionRepo keeps one hash per session; every write slides the TTL.
type sessionRepo struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRepository(client *redis.Client, ttl time.Duration) domain.SessionStore {
	return &sessionRepo{client: client, ttl: ttl}
}

func (r *sessionRepo) Get(ctx context.Context, sessionID, key string) (string, bool, error) {
	value, err := r.client.HGet(ctx, sessionKeyPrefix+sessionID, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, apperror.Internal(err)
	}
	return value, true, nil
}

func (r *sessionRepo) Set(ctx context.Context, sessionID, key, value string) error {
	hashKey := sessionKeyPrefix + sessionID

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, hashKey, key, value)
	pipe.Expire(ctx, hashKey, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *sessionRepo) Delete(ctx context.Context, sessionID string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.HDel(ctx, sessionKeyPrefix+sessionID, keys...).Err(); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// Touch relies on EXPIRE being a no-op for a missing key.
func (r *sessionRepo) Touch(ctx context.Context, sessionID string) error {
	if err := r.client.Expire(ctx, sessionKeyPrefix+sessionID, r.ttl).Err(); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *sessionRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
