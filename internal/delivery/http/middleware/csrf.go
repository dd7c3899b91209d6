package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"time"

	"go-recruitment-console/internal/domain"
	"go-recruitment-console/pkg/security"

	"github.com/gin-gonic/gin"
)

const (
	// CSRFTokenCookieName is the name of the cookie that stores the CSRF token
	CSRFTokenCookieName = "csrf_token"
	// CSRFTokenHeaderName is the header alternative to the form field
	CSRFTokenHeaderName = "X-CSRF-Token"
	// CSRFTokenFormField is the hidden input every console form carries
	CSRFTokenFormField = "csrf_token"
	// CSRFTokenLength is the length of the generated token in bytes (32 bytes = 64 hex chars)
	CSRFTokenLength = 32
	// CSRFTokenExpiry is how long the token is valid
	CSRFTokenExpiry = 24 * time.Hour
	// CSRFContextKey exposes the token to templates
	CSRFContextKey = "csrf_token"
)

// generateCSRFToken creates a cryptographically secure random token
func generateCSRFToken() (string, error) {
	bytes := make([]byte, CSRFTokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// CSRFMiddleware implements the double-submit cookie pattern.
//
// Every response carries a csrf_token cookie. State-changing requests
// must echo its value in the csrf_token form field or the X-CSRF-Token
// header. A cross-site form can make the browser send the cookie but
// cannot read it, so it cannot fill the field.
func CSRFMiddleware(secure bool) gin.HandlerFunc {
	csrfExemptPaths := map[string]bool{
		"/health": true,
	}

	return func(c *gin.Context) {
		if csrfExemptPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		csrfCookie, err := c.Cookie(CSRFTokenCookieName)
		if err != nil || csrfCookie == "" {
			newToken, err := generateCSRFToken()
			if err != nil {
				c.Error(err)
				c.Abort()
				return
			}

			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(
				CSRFTokenCookieName,
				newToken,
				int(CSRFTokenExpiry.Seconds()),
				"/",
				"",
				secure,
				true, // forms read it from the page, never from JS
			)
			csrfCookie = newToken
		}
		c.Set(CSRFContextKey, csrfCookie)

		method := c.Request.Method
		if method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions {
			c.Next()
			return
		}

		submitted := c.GetHeader(CSRFTokenHeaderName)
		if submitted == "" {
			submitted = c.PostForm(CSRFTokenFormField)
		}

		if submitted == "" || subtle.ConstantTimeCompare([]byte(submitted), []byte(csrfCookie)) != 1 {
			security.DefaultLogger().Log(c.Request.Context(), security.SecurityEvent{
				Event:       security.EventCSRFRejected,
				SubjectType: "ip",
				IP:          c.ClientIP(),
				UserAgent:   c.GetHeader("User-Agent"),
				RequestID:   c.GetString(string(domain.KeyRequestID)),
				Path:        c.Request.URL.Path,
			})
			abortWith(c, http.StatusForbidden, "Sua sessão expirou. Recarregue a página e tente novamente.")
			return
		}

		c.Next()
	}
}
