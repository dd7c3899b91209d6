package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-recruitment-console/config"
	"go-recruitment-console/internal/delivery/http/web"
	"go-recruitment-console/internal/domain"
	"go-recruitment-console/internal/repository/memory"
	"go-recruitment-console/internal/repository/postgres"
	redisrepo "go-recruitment-console/internal/repository/redis"
	"go-recruitment-console/internal/repository/restapi"
	"go-recruitment-console/internal/usecase"
	"go-recruitment-console/pkg/database"
	"go-recruitment-console/pkg/logger"
	"go-recruitment-console/pkg/redis"
	"go-recruitment-console/pkg/security"
	"go-recruitment-console/pkg/validation"

	"github.com/gin-gonic/gin"
)

// sessionJanitorInterval is how often expired sessions are purged from
// stores that do not expire keys on their own.
const sessionJanitorInterval = 10 * time.Minute

type purger interface {
	PurgeExpired(ctx context.Context) error
}

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Loggers
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting recruitment console", "port", cfg.Port, "api", cfg.APIBaseURL, "session_store", cfg.SessionStore)

	securityLogger := security.InitSecurityLogger("recruitment-console", cfg.Release)
	defer securityLogger.Sync()

	if cfg.Release {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// 3. Setup Redis (rate limiting, optional session store)
	if cfg.UpstashRedisURL != "" {
		if _, err := redis.Connect(ctx, redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
			if cfg.SessionStore == config.SessionStoreRedis {
				logger.Log.Error("Failed to connect to Redis", "error", err)
				os.Exit(1)
			}
			logger.Log.Warn("Redis unavailable, rate limiting falls back to memory", "error", err)
		}
		defer redis.Close()
	}

	// 4. Setup Session Store
	store, cleanup, err := newSessionStore(ctx, cfg)
	if err != nil {
		logger.Log.Error("Failed to set up session store", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	if p, ok := store.(purger); ok {
		go runJanitor(ctx, p)
	}

	// 5. Setup Repositories
	client := restapi.NewClient(cfg.APIBaseURL, cfg.APITimeout)
	authRepo := restapi.NewAuthRepository(client)
	jobRepo := restapi.NewJobRepository(client)
	candidateRepo := restapi.NewCandidateRepository(client)

	// 6. Setup UseCases
	validate := validation.New()
	authUC := usecase.NewAuthUsecase(authRepo, store)
	jobUC := usecase.NewJobUsecase(jobRepo, validate)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo)
	healthUC := usecase.NewHealthUsecase(store, cfg.SessionStore)

	// 7. Setup Router
	router, err := web.NewRouter(web.RouterDeps{
		AuthUC:      authUC,
		JobUC:       jobUC,
		CandidateUC: candidateUC,
		HealthUC:    healthUC,
		Store:       store,
		Validate:    validate,
		Config:      cfg,
	})
	if err != nil {
		logger.Log.Error("Failed to build router", "error", err)
		os.Exit(1)
	}

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

// newSessionStore builds the configured backend. The returned cleanup
// releases its connections.
func newSessionStore(ctx context.Context, cfg *config.Config) (domain.SessionStore, func(), error) {
	switch cfg.SessionStore {
	case config.SessionStoreRedis:
		client := redis.Client()
		if client == nil {
			return nil, nil, fmt.Errorf("redis session store selected but no redis client is connected")
		}
		return redisrepo.NewSessionRepository(client, cfg.SessionTTL), func() {}, nil

	case config.SessionStorePostgres:
		pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			return nil, nil, err
		}
		repo := postgres.NewSessionRepository(pool, cfg.SessionTTL)
		if err := repo.Migrate(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("migrate session table: %w", err)
		}
		return repo, pool.Close, nil

	default:
		return memory.NewSessionRepository(cfg.SessionTTL), func() {}, nil
	}
}

func runJanitor(ctx context.Context, p purger) {
	ticker := time.NewTicker(sessionJanitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.PurgeExpired(ctx); err != nil {
				logger.Log.Warn("Session purge failed", "error", err)
			}
		}
	}
}
