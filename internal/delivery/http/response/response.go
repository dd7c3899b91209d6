package response

import (
	"strings"

	"go-recruitment-console/internal/domain"

	"github.com/gin-gonic/gin"
)

// Response standardizes the JSON envelope of the console's API routes
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     interface{} `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, err interface{}) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     err,
		RequestID: requestID(c),
	})
}

// WantsJSON reports whether the caller expects the JSON envelope rather
// than an HTML page.
func WantsJSON(c *gin.Context) bool {
	path := c.Request.URL.Path
	if strings.HasPrefix(path, "/api/") || path == "/health" {
		return true
	}
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}

func requestID(c *gin.Context) string {
	if id := c.GetString(string(domain.KeyRequestID)); id != "" {
		return id
	}
	return domain.RequestIDFromContext(c.Request.Context())
}
