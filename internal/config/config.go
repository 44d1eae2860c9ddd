package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the catalog server.
type Config struct {
	DB        DBConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Port      string
}

// DBConfig holds SQLite configuration.
type DBConfig struct {
	Path string
}

// RedisConfig holds Redis configuration. Redis is optional; the server
// runs without caching or rate limiting when it is unreachable.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RateLimitConfig holds the per-IP rate limit window.
type RateLimitConfig struct {
	MaxRequests int
	WindowSec   int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	maxReqs, _ := strconv.Atoi(getEnv("RATE_LIMIT_MAX", "120"))
	windowSec, _ := strconv.Atoi(getEnv("RATE_LIMIT_WINDOW_SEC", "60"))

	cfg := &Config{
		DB: DBConfig{
			Path: getEnv("DB_PATH", "MainDb.sqlite"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		RateLimit: RateLimitConfig{
			MaxRequests: maxReqs,
			WindowSec:   windowSec,
		},
		Port: getEnv("SERVER_PORT", "8080"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
