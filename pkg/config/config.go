// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, scripture API, tags and logging

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"scripture-tags/pkg/utils/duration"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Scripture contains upstream API configuration
	Scripture ScriptureConfig

	// Tags contains document scanning defaults
	Tags TagConfig

	// Log contains logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the sustained requests per second allowed per client
	RateLimit float64

	// RateBurst is the number of requests a client may make at once
	RateBurst int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig

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

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// CleanupInterval is how often expired entries are swept
	CleanupInterval time.Duration
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file
	Path string
}

// ScriptureConfig holds the upstream scripture API settings
type ScriptureConfig struct {
	Endpoint           string
	Timeout            time.Duration
	DefaultTranslation string
	LinkURL            string
}

// TagConfig holds document scanning settings
type TagConfig struct {
	// ClassName marks elements holding references
	ClassName string

	// Chrome names the UI framework provider, or "auto"
	Chrome string
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string
	File   string
}

// Cache backend names
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheSQLite = "sqlite"
)

var chromeNames = []string{"base", "uikit", "bootstrap", "foundation", "tailwind", "auto"}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:      getEnvOrDefault("PORT", "8000"),
			RateLimit: getEnvAsFloatOrDefault("RATE_LIMIT", 10),
			RateBurst: getEnvAsIntOrDefault("RATE_BURST", 20),
		},
		Cache: CacheConfig{
			Type: strings.ToLower(getEnvOrDefault("CACHE_TYPE", CacheMemory)),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				CleanupInterval: duration.OrDefault(os.Getenv("MEMORY_CACHE_CLEANUP"), 10*time.Minute),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_PATH", "scripture-cache.db"),
			},
		},
		Scripture: ScriptureConfig{
			Endpoint:           getEnvOrDefault("SCRIPTURE_ENDPOINT", "https://query.getbible.net/v2"),
			Timeout:            duration.OrDefault(os.Getenv("SCRIPTURE_TIMEOUT"), 10*time.Second),
			DefaultTranslation: strings.ToLower(getEnvOrDefault("DEFAULT_TRANSLATION", "kjv")),
			LinkURL:            getEnvOrDefault("LINK_URL", "https://getbible.net"),
		},
		Tags: TagConfig{
			ClassName: getEnvOrDefault("TAG_CLASS", "getBible"),
			Chrome:    strings.ToLower(getEnvOrDefault("CHROME_PROVIDER", "base")),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
			File:   getEnvOrDefault("LOG_FILE", ""),
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

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimit < 0 {
		return errors.New("rate limit cannot be negative")
	}

	switch c.Cache.Type {
	case CacheMemory:
	case CacheRedis:
		if c.Cache.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis cache")
		}
	case CacheSQLite:
		if c.Cache.SQLite.Path == "" {
			return errors.New("sqlite path cannot be empty when using sqlite cache")
		}
	default:
		return errors.New("cache type must be 'memory', 'redis' or 'sqlite'")
	}

	if c.Scripture.Endpoint == "" {
		return errors.New("scripture endpoint cannot be empty")
	}

	if c.Scripture.Timeout <= 0 {
		return errors.New("scripture timeout must be positive")
	}

	if c.Tags.ClassName == "" || strings.ContainsAny(c.Tags.ClassName, " .#") {
		return fmt.Errorf("invalid tag class %q", c.Tags.ClassName)
	}

	if !contains(chromeNames, c.Tags.Chrome) {
		return fmt.Errorf("chrome provider must be one of %s", strings.Join(chromeNames, ", "))
	}

	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
