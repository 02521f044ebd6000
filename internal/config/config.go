package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Auth        AuthConfig
	Deployment  DeploymentConfig
	RateLimit   RateLimitConfig
	Logging     LoggingConfig
	Tracing     TracingConfig
	Environment string
}

type ServerConfig struct {
	Host    string
	Port    int
	BaseURL string
}

type DatabaseConfig struct {
	URL            string
	EventsTable    string
	MaxConnections int
}

// AuthConfig holds the single shared credential pair plus the optional
// gateway API key. None of these are ever hardcoded.
type AuthConfig struct {
	Username string
	Password string
	APIKey   string
}

// DeploymentConfig identifies this deployment for grant scoping.
type DeploymentConfig struct {
	Region  string
	Account string
	API     string
	Stage   string
}

type RateLimitConfig struct {
	PerMinute int
	Burst     int
}

type LoggingConfig struct {
	Level  string
	Format string
}

type TracingConfig struct {
	Enabled      bool
	Exporter     string
	ServiceName  string
	OTLPEndpoint string
	SampleRate   float64
}

func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host:    getEnv("SERVER_HOST", "0.0.0.0"),
			Port:    getEnvInt("SERVER_PORT", 8080),
			BaseURL: getEnv("SERVER_BASE_URL", "http://localhost:8080"),
		},
		Database: DatabaseConfig{
			URL:            getEnv("DATABASE_URL", ""),
			EventsTable:    getEnv("EVENTS_TABLE_NAME", "events"),
			MaxConnections: getEnvInt("DATABASE_MAX_CONNECTIONS", 25),
		},
		Auth: AuthConfig{
			Username: getEnv("AUTH_USERNAME", ""),
			Password: getEnv("AUTH_PASSWORD", ""),
			APIKey:   getEnv("API_KEY", ""),
		},
		Deployment: DeploymentConfig{
			Region:  getEnv("DEPLOY_REGION", "local"),
			Account: getEnv("DEPLOY_ACCOUNT", "0"),
			API:     getEnv("DEPLOY_API", "eventlog"),
			Stage:   getEnv("DEPLOY_STAGE", "prod"),
		},
		RateLimit: RateLimitConfig{
			PerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 300),
			Burst:     getEnvInt("RATE_LIMIT_BURST", 50),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Tracing: TracingConfig{
			Enabled:      getEnvBool("TRACING_ENABLED", false),
			Exporter:     getEnv("TRACING_EXPORTER", "stdout"),
			ServiceName:  getEnv("TRACING_SERVICE_NAME", "eventlog"),
			OTLPEndpoint: getEnv("TRACING_OTLP_ENDPOINT", "localhost:4317"),
			SampleRate:   getEnvFloat("TRACING_SAMPLE_RATE", 1.0),
		},
		Environment: getEnv("ENVIRONMENT", "development"),
	}

	if cfg.Database.URL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.Auth.Username == "" {
		return Config{}, fmt.Errorf("AUTH_USERNAME is required")
	}
	if cfg.Auth.Password == "" {
		return Config{}, fmt.Errorf("AUTH_PASSWORD is required")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
