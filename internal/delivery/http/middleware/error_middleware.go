package middleware

import (
	"errors"
	"net/http"

	"go-recruitment-console/internal/delivery/http/response"
	"go-recruitment-console/internal/domain"
	"go-recruitment-console/pkg/apperror"
	"go-recruitment-console/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorPageTemplate is rendered for HTML requests that end in an error.
const ErrorPageTemplate = "error.html"

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		code := http.StatusInternalServerError
		message := "Ocorreu um erro inesperado. Tente novamente mais tarde."

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			code = appErr.Code
			if code < 400 || code > 599 {
				code = http.StatusBadGateway
			}
			if appErr.Kind != apperror.KindServer || appErr.Err == nil {
				message = appErr.Message
			}
		}
		if code >= http.StatusInternalServerError {
			// internal details stay in the log
			logger.Log.Error("Request failed",
				"request_id", c.GetString(string(domain.KeyRequestID)),
				"path", c.Request.URL.Path,
				"status", code,
				"error", err,
			)
		}

		render(c, code, message)
	}
}

// abortWith stops the chain with an error page or JSON envelope.
func abortWith(c *gin.Context, code int, message string) {
	render(c, code, message)
	c.Abort()
}

func render(c *gin.Context, code int, message string) {
	if response.WantsJSON(c) {
		response.Error(c, code, message, nil)
		return
	}
	c.HTML(code, ErrorPageTemplate, gin.H{
		"Title":   "Erro",
		"Status":  code,
		"Message": message,
	})
}
