package web

import (
	"time"

	"go-recruitment-console/config"
	"go-recruitment-console/internal/delivery/http/middleware"
	"go-recruitment-console/internal/domain"
	"go-recruitment-console/internal/usecase"
	"go-recruitment-console/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type RouterDeps struct {
	AuthUC      domain.AuthUsecase
	JobUC       domain.JobUsecase
	CandidateUC domain.CandidateUsecase
	HealthUC    usecase.HealthUsecase
	Store       domain.SessionStore
	Validate    *validator.Validate
	Config      *config.Config
}

func NewRouter(deps RouterDeps) (*gin.Engine, error) {
	tmpl, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	cfg := deps.Config
	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second

	r := gin.New()
	r.SetHTMLTemplate(tmpl)

	// Global Middlewares
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(cfg.SecureCookies))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(cfg.RateLimitGlobalThreshold, window)))

	NewHealthHandler(r, deps.HealthUC)

	console := r.Group("")
	console.Use(middleware.CSRFMiddleware(cfg.SecureCookies))
	console.Use(middleware.SessionMiddleware(middleware.SessionConfig{
		CookieName: cfg.SessionCookieName,
		Secret:     cfg.SessionSecret,
		TTL:        cfg.SessionTTL,
		Secure:     cfg.SecureCookies,
	}, deps.AuthUC, deps.Store))

	protected := console.Group("")
	protected.Use(middleware.RequireUser())
	{
		loginLimiter := middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(cfg.RateLimitLoginThreshold, window))
		NewAuthHandler(console, protected, deps.AuthUC, deps.Validate, loginLimiter)
		NewJobHandler(protected, deps.JobUC, deps.Validate, cfg.JobsPageSize)
		NewCandidateHandler(protected, deps.CandidateUC, deps.JobUC)
	}

	r.NoRoute(func(c *gin.Context) {
		c.Error(apperror.NotFound("Página não encontrada"))
	})

	return r, nil
}
