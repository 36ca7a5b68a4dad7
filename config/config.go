package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string
	// Workflow execution API
	WorkflowURL     string
	WorkflowOrgID   int
	WorkflowExeName string
	WorkflowTimeout time.Duration // 0 keeps the transport default
	// Sessions and page state
	SessionSecret string
	SessionTTL    time.Duration
	PageCacheSize int
	CookieSecure  bool
	// Redis Configuration (optional)
	RedisURL      string
	RedisPassword string
	SkillsTTL     time.Duration
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitSubmitThreshold int
	RateLimitGlobalThreshold int
	// CORS
	AllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	// Load .env file when present (local development)
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		GinMode:  getEnv("GIN_MODE", "debug"),
		LogLevel: getEnv("LOG_LEVEL", "debug"),
		// Workflow
		WorkflowURL:     strings.TrimSpace(getEnv("WORKFLOW_URL", "https://agentic-ai.co.in/api/agentic-ai/workflow-exe")),
		WorkflowOrgID:   getEnvInt("WORKFLOW_ORG_ID", 1),
		WorkflowExeName: getEnv("WORKFLOW_EXE_NAME", "run1"),
		WorkflowTimeout: time.Duration(getEnvInt("WORKFLOW_TIMEOUT_SECONDS", 0)) * time.Second,
		// Sessions
		SessionSecret: getEnv("SESSION_SECRET", ""),
		SessionTTL:    time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		PageCacheSize: getEnvInt("PAGE_CACHE_SIZE", 5000),
		CookieSecure:  getEnvBool("COOKIE_SECURE", false),
		// Redis
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		SkillsTTL:     time.Duration(getEnvInt("SKILLS_TTL_HOURS", 24*30)) * time.Hour,
		// Rate Limiting
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitSubmitThreshold: getEnvInt("RATE_LIMIT_SUBMIT_THRESHOLD", 10),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		// CORS
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
	}

	if cfg.SessionSecret == "" {
		log.Println("WARNING: SESSION_SECRET is missing. Sessions will not survive a restart.")
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Skills cache and rate limiting will use in-memory fallback.")
	}

	if cfg.PageCacheSize <= 0 {
		cfg.PageCacheSize = 5000
	}

	return cfg, nil
}

// RateLimitWindow is the rate limiting window as a duration
func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
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

// getEnvList returns a comma-separated environment variable as a trimmed list
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var list []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimRight(strings.TrimSpace(item), "/"); item != "" {
			list = append(list, item)
		}
	}
	return list
}
