package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeadersMiddleware adds essential security headers to all responses.
// These headers protect against common web vulnerabilities:
// - MITM attacks (HSTS)
// - XSS attacks (X-XSS-Protection, X-Content-Type-Options)
// - Clickjacking (X-Frame-Options)
// - Information leakage (Referrer-Policy, Permissions-Policy, Cache-Control)
func SecurityHeadersMiddleware(hsts bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		// HTTP Strict Transport Security (HSTS)
		// Only sent when the console is served over HTTPS
		if hsts {
			c.Header("Strict-Transport-Security", "max-age=63072000; includeSubDomains; preload")
		}

		// Prevent MIME type sniffing
		// Stops browsers from incorrectly interpreting files as different MIME types
		c.Header("X-Content-Type-Options", "nosniff")

		// Legacy XSS protection (for older browsers)
		// Modern browsers use CSP instead, but this doesn't hurt
		c.Header("X-XSS-Protection", "1; mode=block")

		// Prevent clickjacking by disallowing framing
		// DENY = never allow framing, SAMEORIGIN = only same origin can frame
		c.Header("X-Frame-Options", "DENY")

		// Control referrer information sent with requests
		// strict-origin-when-cross-origin = send full URL to same origin, only origin to cross-origin
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		// Restrict browser features access
		// Empty values = disable the feature entirely
		c.Header("Permissions-Policy", "camera=(), microphone=(), geolocation=(), payment=()")

		// Content Security Policy
		// Pages are server rendered with inline styles only; no scripts
		c.Header("Content-Security-Policy",
			"default-src 'self'; "+
				"script-src 'none'; "+
				"style-src 'self' 'unsafe-inline'; "+
				"img-src 'self' data:; "+
				"font-src 'self'; "+
				"connect-src 'self'; "+
				"frame-ancestors 'none'; "+
				"base-uri 'self'; "+
				"form-action 'self'")

		// Every console page is session bound
		c.Header("Cache-Control", "no-store, no-cache, must-revalidate, private")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")

		c.Next()
	}
}
