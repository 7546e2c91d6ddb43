package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port               int
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	CORSAllowedOrigins []string
	MetricsEnabled     bool

	// Logging configuration
	LogLevel  string
	LogFormat string

	// Database configuration
	DatabaseURL   string
	DBMaxConns    int
	RunMigrations bool

	// Reporting configuration
	ReportTimezone    string
	ReportLocation    *time.Location
	ReportTopLimitMax int
	ReportCacheTTL    time.Duration
	RedisURL          string

	// Warnings collected while loading, logged once the logger exists
	Warnings []string
}

// LoadConfig loads the application configuration from environment variables
func LoadConfig() (*Config, error) {
	var warnings []string

	// Load .env from the project root first, then the current directory
	envPath := ""
	if execPath, err := os.Executable(); err == nil {
		envPath = filepath.Join(filepath.Dir(filepath.Dir(filepath.Dir(execPath))), ".env")
	}
	if envPath == "" || godotenv.Load(envPath) != nil {
		if err := godotenv.Load(); err != nil {
			warnings = append(warnings, "no .env file found, using environment variables")
		}
	}

	config := &Config{
		// Server configuration
		Port:               getEnvInt("PORT", 8080, &warnings),
		ReadTimeout:        getEnvDuration("READ_TIMEOUT", 15*time.Second, &warnings),
		WriteTimeout:       getEnvDuration("WRITE_TIMEOUT", 30*time.Second, &warnings),
		CORSAllowedOrigins: getEnvStringSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
		MetricsEnabled:     getEnvBool("METRICS_ENABLED", true),

		// Logging configuration
		LogLevel:  getEnvString("LOG_LEVEL", "info"),
		LogFormat: getEnvString("LOG_FORMAT", "json"),

		// Database configuration
		DatabaseURL:   os.Getenv("POSTGRES_DB_URL"),
		DBMaxConns:    getEnvInt("DB_MAX_CONNS", 10, &warnings),
		RunMigrations: getEnvBool("RUN_MIGRATIONS", false),

		// Reporting configuration
		ReportTimezone:    getEnvString("REPORT_TIMEZONE", "UTC"),
		ReportTopLimitMax: getEnvInt("REPORT_TOP_LIMIT_MAX", 100, &warnings),
		ReportCacheTTL:    getEnvDuration("REPORT_CACHE_TTL", 0, &warnings),
		RedisURL:          os.Getenv("REDIS_URL"),
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}
	config.Warnings = warnings
	return config, nil
}

// validateConfig rejects values the service cannot start with
func validateConfig(config *Config) error {
	var errs []error

	if config.Port <= 0 || config.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", config.Port))
	}
	if config.DBMaxConns <= 0 {
		errs = append(errs, fmt.Errorf("DB_MAX_CONNS must be positive, got %d", config.DBMaxConns))
	}
	if config.ReportTopLimitMax <= 0 {
		errs = append(errs, fmt.Errorf("REPORT_TOP_LIMIT_MAX must be positive, got %d", config.ReportTopLimitMax))
	}
	if config.ReportCacheTTL < 0 {
		errs = append(errs, fmt.Errorf("REPORT_CACHE_TTL must not be negative, got %s", config.ReportCacheTTL))
	}
	for _, origin := range config.CORSAllowedOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			errs = append(errs, fmt.Errorf("CORS_ALLOWED_ORIGINS entry %q must be \"*\" or start with http:// or https://", origin))
		}
	}

	loc, err := time.LoadLocation(config.ReportTimezone)
	if err != nil {
		errs = append(errs, fmt.Errorf("invalid REPORT_TIMEZONE %q: %w", config.ReportTimezone, err))
	}
	config.ReportLocation = loc

	return errors.Join(errs...)
}

// RequireDatabase returns an error when no database URL is configured
func (c *Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return errors.New("POSTGRES_DB_URL environment variable is not set")
	}
	return nil
}

// getEnvInt gets an integer from an environment variable with a default value
func getEnvInt(key string, defaultValue int, warnings *[]string) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		*warnings = append(*warnings, fmt.Sprintf("invalid value for %s: %s, using default: %d", key, valueStr, defaultValue))
		return defaultValue
	}

	return value
}

// getEnvDuration accepts Go durations ("30s") or a plain number of seconds
func getEnvDuration(key string, defaultValue time.Duration, warnings *[]string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	if seconds, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(seconds) * time.Second
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		*warnings = append(*warnings, fmt.Sprintf("invalid value for %s: %s, using default: %s", key, valueStr, defaultValue))
		return defaultValue
	}
	return value
}

// getEnvBool gets a boolean from an environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	valueStr = strings.ToLower(valueStr)
	return valueStr == "true" || valueStr == "1" || valueStr == "yes"
}

// getEnvString gets a string from an environment variable with a default value
func getEnvString(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvStringSlice gets a string slice from a comma-separated environment variable
func getEnvStringSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var values []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
