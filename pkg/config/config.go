package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Env            string
	Server         ServerConfig
	Database       DatabaseConfig
	Redis          RedisConfig
	OTEL           OTELConfig
	Recommendation RecommendationConfig
	RateLimit      RateLimitConfig
	CORS           CORSConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

// RecommendationConfig holds the result sizes of the recommendation and
// trending readers.
type RecommendationConfig struct {
	TopN               int
	PeerLimit          int
	ParallelReads      bool
	TrendingLimit      int
	TrendingWindowDays int
}

// TrendingWindow returns the trailing window used by the trending reader
func (c RecommendationConfig) TrendingWindow() time.Duration {
	return time.Duration(c.TrendingWindowDays) * 24 * time.Hour
}

// RateLimitConfig holds the per-client request budget for member endpoints.
// TrustedProxies lists the CIDRs whose forwarding headers identify the client.
type RateLimitConfig struct {
	RequestsPerMinute int
	TrustedProxies    []string
}

// CORSConfig holds the allowed browser origins
type CORSConfig struct {
	AllowedOrigins []string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Env: getEnv("ENV", "production"),
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "mishika"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		OTEL: OTELConfig{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "mishika-concierge"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
		Recommendation: RecommendationConfig{
			TopN:               getEnvAsInt("RECOMMENDATION_TOP_N", 6),
			PeerLimit:          getEnvAsInt("RECOMMENDATION_PEER_LIMIT", 5),
			ParallelReads:      getEnvAsBool("RECOMMENDATION_PARALLEL_READS", true),
			TrendingLimit:      getEnvAsInt("TRENDING_LIMIT", 4),
			TrendingWindowDays: getEnvAsInt("TRENDING_WINDOW_DAYS", 30),
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
			TrustedProxies:    getEnvAsList("TRUSTED_PROXIES", nil),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsList("ALLOWED_ORIGINS", []string{"*"}),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects limits that would make the readers return nothing
func (c *Config) Validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"RECOMMENDATION_TOP_N", c.Recommendation.TopN},
		{"RECOMMENDATION_PEER_LIMIT", c.Recommendation.PeerLimit},
		{"TRENDING_LIMIT", c.Recommendation.TrendingLimit},
		{"TRENDING_WINDOW_DAYS", c.Recommendation.TrendingWindowDays},
		{"RATE_LIMIT_PER_MINUTE", c.RateLimit.RequestsPerMinute},
	}
	for _, check := range checks {
		if check.value <= 0 {
			return fmt.Errorf("%s must be positive, got %d", check.name, check.value)
		}
	}
	return nil
}

// DatabaseDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
