package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"content-platform/internal/logger"
)

// Config holds all configuration for the application.
type Config struct {
	// Environment name; "local" requires the .env file to exist
	AppEnv string

	// Server configuration
	ServerPort   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Database configuration
	DBHost              string
	DBPort              int
	DBUser              string
	DBPassword          string
	DBName              string
	DBSSLMode           string
	DBMaxConns          int32
	DBMinConns          int32
	DBMaxConnLifetime   time.Duration
	DBMaxConnIdleTime   time.Duration
	DBHealthCheckPeriod time.Duration

	// Migrations
	MigrationsPath string
	MigrateOnStart bool

	// Logging configuration
	LogLevel  string
	LogFormat string

	// Rating tuning. A zero RatingStalenessWindow keeps the value of the
	// rating config file.
	RatingConfigPath      string
	RatingStalenessWindow time.Duration

	// Listing
	LatestArticlesLimit int
	DefaultPageSize     int
	MaxPageSize         int
}

// Load loads configuration from an optional .env file and environment variables.
func Load() (*Config, error) {
	// The process environment decides whether .env is required; the file
	// may still set APP_ENV for everything after it.
	if err := LoadDotEnv(getEnv("APP_ENV", ""), ".env"); err != nil {
		return nil, err
	}

	cfg := &Config{
		AppEnv:                getEnv("APP_ENV", ""),
		ServerPort:            getEnv("SERVER_PORT", "8080"),
		ReadTimeout:           getEnvDuration("HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:          getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:           getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		DBHost:                getEnv("DB_HOST", "localhost"),
		DBPort:                getEnvInt("DB_PORT", 5432),
		DBUser:                getEnv("DB_USER", "postgres"),
		DBPassword:            getEnv("DB_PASSWORD", "postgres"),
		DBName:                getEnv("DB_NAME", "content_platform"),
		DBSSLMode:             getEnv("DB_SSL_MODE", "disable"),
		DBMaxConns:            int32(getEnvInt("DB_MAX_CONNS", 25)),
		DBMinConns:            int32(getEnvInt("DB_MIN_CONNS", 5)),
		DBMaxConnLifetime:     getEnvDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		DBMaxConnIdleTime:     getEnvDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		DBHealthCheckPeriod:   getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		MigrationsPath:        getEnv("MIGRATIONS_PATH", "./migrations"),
		MigrateOnStart:        getEnvBool("MIGRATE_ON_START", true),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		LogFormat:             getEnv("LOG_FORMAT", "json"),
		RatingConfigPath:      getEnv("RATING_CONFIG_PATH", ""),
		RatingStalenessWindow: getEnvDuration("RATING_STALENESS_WINDOW", 0),
		LatestArticlesLimit:   getEnvInt("LATEST_ARTICLES_LIMIT", 10),
		DefaultPageSize:       getEnvInt("DEFAULT_PAGE_SIZE", 20),
		MaxPageSize:           getEnvInt("MAX_PAGE_SIZE", 100),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDotEnv loads variables from a .env file into the process environment.
// ENV_PATH overrides defaultPath. A missing file is only an error for the
// local environment. Variables already set are not overwritten.
func LoadDotEnv(env, defaultPath string) error {
	envPath := os.Getenv("ENV_PATH")
	if envPath == "" {
		envPath = defaultPath
	}

	if err := godotenv.Load(envPath); err != nil {
		if env == "local" {
			return fmt.Errorf("load %s: %w", envPath, err)
		}
		logger.Debug("Skipping .env file", slog.String("path", envPath))
	}
	return nil
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.DBHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.DBUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.MigrateOnStart && c.MigrationsPath == "" {
		return fmt.Errorf("MIGRATIONS_PATH is required when MIGRATE_ON_START is set")
	}
	if c.RatingStalenessWindow < 0 {
		return fmt.Errorf("RATING_STALENESS_WINDOW must not be negative")
	}
	if c.LatestArticlesLimit < 1 {
		return fmt.Errorf("LATEST_ARTICLES_LIMIT must be at least 1")
	}
	if c.DefaultPageSize < 1 {
		return fmt.Errorf("DEFAULT_PAGE_SIZE must be at least 1")
	}
	if c.MaxPageSize < c.DefaultPageSize {
		return fmt.Errorf("MAX_PAGE_SIZE must not be below DEFAULT_PAGE_SIZE")
	}
	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as bool with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
