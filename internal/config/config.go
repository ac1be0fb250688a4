package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	Session    SessionConfig
	Attendance AttendanceConfig
	App        AppConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// SessionConfig holds credential gate configuration
type SessionConfig struct {
	SecretKey        string
	Duration         time.Duration
	LockoutThreshold int
	LockoutDuration  time.Duration
}

// AttendanceConfig holds the aggregation defaults used when an employee has no
// schedule of their own
type AttendanceConfig struct {
	DefaultToleranceMinutes int
	DefaultWorkHours        float64
	DefaultExpectedEntry    string
	MonthFanoutLimit        int
	StatusPollInterval      time.Duration
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

func Load() (*Config, error) {
	// A missing .env file is fine in containerized deployments; the
	// environment is already populated.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "timeclock"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	// Session configuration
	sessionDuration, err := time.ParseDuration(getEnv("SESSION_DURATION", "8h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_DURATION: %w", err)
	}
	lockoutThreshold, err := strconv.Atoi(getEnv("LOCKOUT_THRESHOLD", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOCKOUT_THRESHOLD: %w", err)
	}
	lockoutDuration, err := time.ParseDuration(getEnv("LOCKOUT_DURATION", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOCKOUT_DURATION: %w", err)
	}

	config.Session = SessionConfig{
		SecretKey:        getEnv("SESSION_SECRET_KEY", ""),
		Duration:         sessionDuration,
		LockoutThreshold: lockoutThreshold,
		LockoutDuration:  lockoutDuration,
	}

	// Attendance configuration
	tolerance, err := strconv.Atoi(getEnv("DEFAULT_TOLERANCE_MINUTES", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_TOLERANCE_MINUTES: %w", err)
	}
	workHours, err := strconv.ParseFloat(getEnv("DEFAULT_WORK_HOURS", "8"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_WORK_HOURS: %w", err)
	}
	fanout, err := strconv.Atoi(getEnv("MONTH_FANOUT_LIMIT", "4"))
	if err != nil {
		return nil, fmt.Errorf("invalid MONTH_FANOUT_LIMIT: %w", err)
	}
	pollInterval, err := time.ParseDuration(getEnv("STATUS_POLL_INTERVAL", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid STATUS_POLL_INTERVAL: %w", err)
	}

	config.Attendance = AttendanceConfig{
		DefaultToleranceMinutes: tolerance,
		DefaultWorkHours:        workHours,
		DefaultExpectedEntry:    getEnv("DEFAULT_EXPECTED_ENTRY", "08:00"),
		MonthFanoutLimit:        fanout,
		StatusPollInterval:      pollInterval,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Session.SecretKey == "" {
		return fmt.Errorf("SESSION_SECRET_KEY is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(key, fallback string) []string {
	value := getEnv(key, fallback)
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}
