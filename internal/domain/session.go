package domain

import "context"

// Keys held per session; together they replace the browser storage
// entries of a single-page client.
const (
	SessionKeyToken = "token"
	SessionKeyUser  = "user"
	SessionKeyFlash = "flash"
)

type SessionStore interface {
	Get(ctx context.Context, sessionID, key string) (string, bool, error)
	Set(ctx context.Context, sessionID, key, value string) error
	Delete(ctx context.Context, sessionID string, keys ...string) error
	// Touch slides the expiry of a live session. Expired or unknown
	// sessions are left alone.
	Touch(ctx context.Context, sessionID string) error
	Ping(ctx context.Context) error
}

// TokenFromContext returns the bearer token attached to ctx, if any.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(KeyToken).(string)
	return token
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)
	return id
}
