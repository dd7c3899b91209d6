package web

import (
	"errors"
	"net/http"

	"go-recruitment-console/internal/delivery/http/middleware"
	"go-recruitment-console/internal/delivery/http/response"
	"go-recruitment-console/internal/domain"
	"go-recruitment-console/pkg/apperror"
	"go-recruitment-console/pkg/logger"
	"go-recruitment-console/pkg/security"
	"go-recruitment-console/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	authUC   domain.AuthUsecase
	validate *validator.Validate
}

func NewAuthHandler(public, protected *gin.RouterGroup, authUC domain.AuthUsecase, validate *validator.Validate, loginLimiter gin.HandlerFunc) {
	handler := &AuthHandler{authUC: authUC, validate: validate}

	public.GET("/login", middleware.RedirectIfAuthenticated(), handler.ShowLogin)
	public.POST("/login", loginLimiter, middleware.RedirectIfAuthenticated(), handler.Login)

	protected.POST("/logout", handler.Logout)
	protected.GET("/api/me", handler.Me)
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	renderPage(c, http.StatusOK, "login.html", gin.H{"Title": "Entrar", "Email": ""})
}

// Login authenticates through the session provider, which redirects to
// the job list on success. Failures are shown inside the form.
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(apperror.BadRequest("Formulário inválido"))
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		renderPage(c, http.StatusUnprocessableEntity, "login.html", gin.H{
			"Title":  "Entrar",
			"Email":  req.Email,
			"Errors": validation.FormatFieldErrors(err),
		})
		return
	}

	sl := security.DefaultLogger()
	reqID := c.GetString(string(domain.KeyRequestID))

	if err := middleware.SessionFrom(c).Login(c.Request.Context(), req.Email, req.Password); err != nil {
		sl.LogLoginFailed(c.Request.Context(), req.Email, c.ClientIP(), reqID, string(apperror.KindOf(err)))
		renderPage(c, statusOf(err), "login.html", gin.H{
			"Title":      "Entrar",
			"Email":      req.Email,
			"LoginError": err.Error(),
		})
		return
	}

	sl.LogLoginSuccess(c.Request.Context(), req.Email, c.ClientIP(), reqID)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	provider := middleware.SessionFrom(c)

	email := ""
	if user := provider.User(); user != nil {
		email = user.Email
	}

	if err := provider.Logout(c.Request.Context()); err != nil {
		logger.Log.Warn("Logout could not clear the session", "error", err)
	}
	security.DefaultLogger().LogLogout(c.Request.Context(), email, c.ClientIP(), c.GetString(string(domain.KeyRequestID)))
}

// Me asks the backend who the session's token belongs to.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authUC.CurrentUser(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Current user", user)
}

func statusOf(err error) int {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Code >= 400 && appErr.Code <= 599 {
		return appErr.Code
	}
	return http.StatusInternalServerError
}
