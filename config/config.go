package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	SessionStoreMemory   = "memory"
	SessionStoreRedis    = "redis"
	SessionStorePostgres = "postgres"
)

// devSessionSecret is only accepted outside release mode.
const devSessionSecret = "console-dev-secret-change-me"

type Config struct {
	Port string
	// Upstream REST API
	APIBaseURL string
	APITimeout time.Duration
	// Session
	SessionSecret     string
	SessionCookieName string
	SessionTTL        time.Duration
	SessionStore      string
	SecureCookies     bool
	// Session store backends
	DBUrl                string
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Listing
	JobsPageSize int
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitLoginThreshold  int
	RateLimitGlobalThreshold int
	// Logging
	LogLevel string
	Release  bool
}

func LoadConfig() (*Config, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	release := os.Getenv("GIN_MODE") == "release"

	cfg := &Config{
		Port:                     getEnv("PORT", "8080"),
		APIBaseURL:               strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:3333"), "/"),
		APITimeout:               getEnvDuration("API_TIMEOUT", 30*time.Second),
		SessionSecret:            getEnv("SESSION_SECRET", ""),
		SessionCookieName:        getEnv("SESSION_COOKIE_NAME", "console_session"),
		SessionTTL:               getEnvDuration("SESSION_TTL", 24*time.Hour),
		SessionStore:             strings.ToLower(getEnv("SESSION_STORE", SessionStoreMemory)),
		SecureCookies:            getEnvBool("SECURE_COOKIES", release),
		DBUrl:                    getEnv("DATABASE_URL", ""),
		UpstashRedisURL:          getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword:     getEnv("UPSTASH_REDIS_PASSWORD", ""),
		JobsPageSize:             getEnvInt("JOBS_PAGE_SIZE", 10),
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitLoginThreshold:  getEnvInt("RATE_LIMIT_LOGIN_THRESHOLD", 10),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 300),
		LogLevel:                 getEnv("LOG_LEVEL", "info"),
		Release:                  release,
	}

	if cfg.SessionSecret == "" {
		if release {
			return nil, errors.New("SESSION_SECRET is required in release mode")
		}
		log.Println("WARNING: SESSION_SECRET is missing. Using the development secret.")
		cfg.SessionSecret = devSessionSecret
	}

	if cfg.JobsPageSize < 1 {
		cfg.JobsPageSize = 10
	}

	switch cfg.SessionStore {
	case SessionStoreMemory:
	case SessionStoreRedis:
		if cfg.UpstashRedisURL == "" {
			return nil, errors.New("SESSION_STORE=redis requires UPSTASH_REDIS_URL")
		}
	case SessionStorePostgres:
		if cfg.DBUrl == "" {
			return nil, errors.New("SESSION_STORE=postgres requires DATABASE_URL")
		}
	default:
		return nil, errors.New("SESSION_STORE must be one of memory, redis, postgres")
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
