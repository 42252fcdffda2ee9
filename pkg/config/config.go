// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines explicit configuration structures for server, cache, oracle, and renderer

package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Renderer modes
const (
	RendererStatic   = "static"
	RendererHeadless = "headless"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Oracle contains external inference service configuration
	Oracle OracleConfig

	// Renderer contains page rendering configuration
	Renderer RendererConfig

	// Logging contains logger configuration
	Logging LoggingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the number of requests allowed per IP per minute
	RateLimit int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string

	// ResultTTL is the analysis result TTL in seconds
	ResultTTL int

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the cache database file path
	Path string
}

// OracleConfig holds inference service configuration. An empty token
// disables the oracle; every analysis then uses the fallback classifier.
type OracleConfig struct {
	// Token is the service credential
	Token string

	// BaseURL is the service endpoint base
	BaseURL string

	// Model is the model identifier sent with each request
	Model string

	// TimeoutSeconds bounds each oracle call
	TimeoutSeconds int
}

// Enabled reports whether the oracle path should be used
func (o OracleConfig) Enabled() bool {
	return o.Token != ""
}

// Timeout returns the oracle timeout as a duration
func (o OracleConfig) Timeout() time.Duration {
	return time.Duration(o.TimeoutSeconds) * time.Second
}

// RendererConfig holds page rendering configuration
type RendererConfig struct {
	// Mode selects the renderer (static/headless)
	Mode string

	// NavTimeoutSeconds bounds page navigation
	NavTimeoutSeconds int
}

// NavTimeout returns the navigation timeout as a duration
func (r RendererConfig) NavTimeout() time.Duration {
	return time.Duration(r.NavTimeoutSeconds) * time.Second
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	// Backend selects the logger implementation (standard/logrus)
	Backend string

	// Level is the minimum logged level for the logrus backend
	Level string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:      getEnvOrDefault("PORT", "8000"),
			RateLimit: getEnvAsIntOrDefault("RATE_LIMIT", 100),
		},
		Cache: CacheConfig{
			Type:      getEnvOrDefault("CACHE_TYPE", "memory"),
			ResultTTL: getEnvAsIntOrDefault("CACHE_RESULT_TTL", 3600),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_CACHE_PATH", "pagesense-cache.db"),
			},
		},
		Oracle: OracleConfig{
			Token:          getEnvOrDefault("ORACLE_API_TOKEN", ""),
			BaseURL:        getEnvOrDefault("ORACLE_BASE_URL", "https://api.openai.com"),
			Model:          getEnvOrDefault("ORACLE_MODEL", "gpt-4o-mini"),
			TimeoutSeconds: getEnvAsIntOrDefault("ORACLE_TIMEOUT", 30),
		},
		Renderer: RendererConfig{
			Mode:              getEnvOrDefault("RENDERER_MODE", RendererStatic),
			NavTimeoutSeconds: getEnvAsIntOrDefault("RENDERER_NAV_TIMEOUT", 30),
		},
		Logging: LoggingConfig{
			Backend: getEnvOrDefault("LOG_BACKEND", "standard"),
			Level:   getEnvOrDefault("LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Cache.Type {
	case "memory", "redis", "sqlite":
	default:
		return errors.New("cache type must be 'memory', 'redis', or 'sqlite'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Oracle.Enabled() && c.Oracle.BaseURL == "" {
		return errors.New("oracle base URL cannot be empty when a token is set")
	}

	if c.Oracle.TimeoutSeconds < 1 {
		return errors.New("oracle timeout must be at least 1 second")
	}

	switch c.Renderer.Mode {
	case RendererStatic, RendererHeadless:
	default:
		return errors.New("renderer mode must be 'static' or 'headless'")
	}

	if c.Renderer.NavTimeoutSeconds < 1 {
		return errors.New("renderer navigation timeout must be at least 1 second")
	}

	return nil
}
