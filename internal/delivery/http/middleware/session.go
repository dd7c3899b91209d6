package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go-recruitment-console/internal/delivery/http/response"
	"go-recruitment-console/internal/domain"
	"go-recruitment-console/internal/usecase"
	"go-recruitment-console/pkg/logger"
	"go-recruitment-console/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// NotifierContextKey holds the request's *usecase.FlashNotifier.
const NotifierContextKey = "notifier"

type SessionConfig struct {
	CookieName string
	Secret     string
	TTL        time.Duration
	Secure     bool
}

// sessionClaims is the payload of the signed session cookie. The
// cookie only names the session; its values live in the store.
type sessionClaims struct {
	SID string `json:"sid"`
	jwt.RegisteredClaims
}

// SignSessionID returns the cookie value for sid.
func SignSessionID(secret, sid string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		SID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseSessionID validates the cookie value and returns its session id.
func ParseSessionID(secret, value string) (string, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(value, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}
	if _, err := uuid.Parse(claims.SID); err != nil {
		return "", fmt.Errorf("invalid session id: %w", err)
	}
	return claims.SID, nil
}

// SessionMiddleware resolves the browser's session, hydrates its
// SessionProvider and attaches the bearer token to the request context
// for the REST client. Notifications raised while handling the request
// are persisted as flash messages afterwards.
func SessionMiddleware(cfg SessionConfig, authUC domain.AuthUsecase, store domain.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		sid := ""
		if raw, err := c.Cookie(cfg.CookieName); err == nil && raw != "" {
			parsed, err := ParseSessionID(cfg.Secret, raw)
			if err != nil {
				security.DefaultLogger().Log(ctx, security.SecurityEvent{
					Event:       security.EventSessionInvalid,
					SubjectType: "ip",
					IP:          c.ClientIP(),
					UserAgent:   c.GetHeader("User-Agent"),
					RequestID:   c.GetString(string(domain.KeyRequestID)),
					Path:        c.Request.URL.Path,
					Details:     map[string]any{"error": err.Error()},
				})
			}
			sid = parsed
		}
		if sid == "" {
			sid = uuid.NewString()
		}

		signed, err := SignSessionID(cfg.Secret, sid, cfg.TTL)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cfg.CookieName, signed, int(cfg.TTL.Seconds()), "/", "", cfg.Secure, true)

		token, err := authUC.GetToken(ctx, sid)
		if err != nil {
			logger.Log.Warn("Session store read failed", "error", err, "request_id", c.GetString(string(domain.KeyRequestID)))
		}
		// the cookie was just re-signed; keep the stored session alive with it
		if token != "" {
			if err := store.Touch(ctx, sid); err != nil {
				logger.Log.Warn("Session touch failed", "error", err, "request_id", c.GetString(string(domain.KeyRequestID)))
			}
		}

		provider := usecase.NewSessionProvider(authUC, sid, usecase.NavigatorFunc(func(path string) {
			c.Redirect(http.StatusSeeOther, path)
		}))
		if err := provider.Init(ctx); err != nil {
			logger.Log.Warn("Session hydration failed", "error", err, "request_id", c.GetString(string(domain.KeyRequestID)))
		}

		ctx = context.WithValue(ctx, domain.KeySessionID, sid)
		ctx = context.WithValue(ctx, domain.KeyToken, token)
		ctx = usecase.WithSession(ctx, provider)
		c.Request = c.Request.WithContext(ctx)

		notifier := usecase.NewFlashNotifier(store, sid)
		c.Set(string(domain.KeySessionID), sid)
		c.Set(string(domain.KeySession), provider)
		c.Set(NotifierContextKey, notifier)

		c.Next()

		// detached so a client that already left still gets its flash
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := notifier.Flush(flushCtx); err != nil {
			logger.Log.Warn("Flash flush failed", "error", err)
		}
	}
}

// SessionFrom returns the provider installed by SessionMiddleware.
func SessionFrom(c *gin.Context) *usecase.SessionProvider {
	return usecase.SessionFrom(c.Request.Context())
}

// NotifierFrom returns the request's flash notifier.
func NotifierFrom(c *gin.Context) *usecase.FlashNotifier {
	if v, ok := c.Get(NotifierContextKey); ok {
		if n, ok := v.(*usecase.FlashNotifier); ok {
			return n
		}
	}
	return usecase.NewFlashNotifier(nil, "")
}

// RequireUser gates the console pages: a session without a user after
// hydration is sent to the login page (401 for JSON callers).
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		provider := SessionFrom(c)
		if provider == nil || provider.NeedsLogin() {
			security.DefaultLogger().Log(c.Request.Context(), security.SecurityEvent{
				Event:       security.EventUnauthorizedAccess,
				SubjectType: "ip",
				IP:          c.ClientIP(),
				UserAgent:   c.GetHeader("User-Agent"),
				RequestID:   c.GetString(string(domain.KeyRequestID)),
				Path:        c.Request.URL.Path,
			})
			if !response.WantsJSON(c) {
				c.Redirect(http.StatusSeeOther, usecase.PathLogin)
				c.Abort()
				return
			}
			abortWith(c, http.StatusUnauthorized, "Faça login para continuar.")
			return
		}
		c.Next()
	}
}

// RedirectIfAuthenticated keeps a logged-in session off the login page.
func RedirectIfAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if provider := SessionFrom(c); provider != nil && provider.User() != nil {
			c.Redirect(http.StatusSeeOther, usecase.PathHome)
			c.Abort()
			return
		}
		c.Next()
	}
}
