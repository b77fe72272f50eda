package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrInvalidConfig is wrapped by every validation failure in New.
var ErrInvalidConfig = errors.New("invalid configuration")

// devSessionSecret is used when SESSION_SECRET is unset. Never use it in production.
const devSessionSecret = "cspnet-development-session-secret"

// Config holds all configuration for the application.
type Config struct {
	Addr                 string
	SessionSecret        string
	ContentPath          string
	ContentWatch         bool
	SessionIdleTimeout   time.Duration
	SessionSweepSchedule string
	SessionLimit         int
	NavRateLimit         int
	LogFormat            string
	LogLevel             string

	// notices are produced before logging is configured and are written by LogNotices.
	notices []notice
}

type notice struct {
	level slog.Level
	msg   string
}

// Load reads a .env file if one exists and then builds the configuration
// from the environment.
func Load() (*Config, error) {
	envErr := godotenv.Load()
	cfg, err := New()
	if err != nil {
		return nil, err
	}
	if envErr != nil {
		cfg.notices = append(cfg.notices, notice{slog.LevelDebug, "No .env file found, relying on environment variables"})
	}
	return cfg, nil
}

// LogNotices writes the messages gathered while loading through logger. Call
// it once logging has been configured from LogFormat and LogLevel.
func (c *Config) LogNotices(logger *slog.Logger) {
	for _, n := range c.notices {
		logger.Log(context.Background(), n.level, n.msg)
	}
}

// New builds the configuration from environment variables.
func New() (*Config, error) {
	idle, err := getEnvDuration("SESSION_IDLE_TIMEOUT", 30*time.Minute)
	if err != nil {
		return nil, err
	}
	rate, err := getEnvInt("NAV_RATE_LIMIT", 60)
	if err != nil {
		return nil, err
	}
	limit, err := getEnvInt("SESSION_LIMIT", 10000)
	if err != nil {
		return nil, err
	}
	watch, err := getEnvBool("CONTENT_WATCH", false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Addr:                 getEnv("CSPNET_ADDR", ":8080"),
		SessionSecret:        getEnv("SESSION_SECRET", ""),
		ContentPath:          os.Getenv("CONTENT_PATH"),
		ContentWatch:         watch,
		SessionIdleTimeout:   idle,
		SessionSweepSchedule: getEnv("SESSION_SWEEP_SCHEDULE", "@every 5m"),
		SessionLimit:         limit,
		NavRateLimit:         rate,
		LogFormat:            getEnv("LOG_FORMAT", "text"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
	}

	if cfg.SessionSecret == "" {
		cfg.notices = append(cfg.notices, notice{slog.LevelWarn, "SESSION_SECRET is not set, using the development secret"})
		cfg.SessionSecret = devSessionSecret
	}
	if cfg.NavRateLimit <= 0 {
		return nil, fmt.Errorf("%w: NAV_RATE_LIMIT must be positive, got %d", ErrInvalidConfig, cfg.NavRateLimit)
	}
	if cfg.SessionIdleTimeout <= 0 {
		return nil, fmt.Errorf("%w: SESSION_IDLE_TIMEOUT must be positive, got %s", ErrInvalidConfig, cfg.SessionIdleTimeout)
	}
	if cfg.SessionLimit < 0 {
		return nil, fmt.Errorf("%w: SESSION_LIMIT must not be negative, got %d", ErrInvalidConfig, cfg.SessionLimit)
	}
	if cfg.ContentWatch && cfg.ContentPath == "" {
		return nil, fmt.Errorf("%w: CONTENT_WATCH requires CONTENT_PATH", ErrInvalidConfig)
	}

	return cfg, nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
	}
	return b, nil
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
	}
	return n, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, key, err)
	}
	return d, nil
}
