// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for creating default service implementations

package scripture

import (
	"os"
	"time"

	"scripture-tags/core/interfaces"
	"scripture-tags/core/present"
	corescripture "scripture-tags/core/scripture"
	"scripture-tags/infrastructure/cache/memory"
	"scripture-tags/infrastructure/cache/sqlite"
	httpInfra "scripture-tags/infrastructure/http/standard"
	"scripture-tags/infrastructure/logger/structured"
)

// DefaultTimeout bounds each scripture API request
const DefaultTimeout = 10 * time.Second

// DefaultHTTPClient creates a default HTTP client with the given timeout
func DefaultHTTPClient(timeout time.Duration) interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClient(timeout)
}

// DefaultMemoryCache creates a default in-memory cache
func DefaultMemoryCache() interfaces.Cache {
	return memory.NewMemoryCache()
}

// DefaultSQLiteCache creates a SQLite cache with the given file path
func DefaultSQLiteCache(filePath string) (*sqlite.Client, error) {
	return sqlite.NewSQLiteCache(filePath)
}

// DefaultLogger creates a logger that writes warnings and errors to stderr
func DefaultLogger() interfaces.Logger {
	l := structured.New(structured.Options{Level: "warn"})
	l.SetOutput(os.Stderr)
	return l
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return interfaces.NopLogger{}
}

// CacheType represents the type of cache
type CacheType string

const (
	CacheTypeMemory CacheType = "memory"
	CacheTypeSQLite CacheType = "sqlite"
)

// CacheOption represents cache configuration options
type CacheOption struct {
	Type     CacheType
	FilePath string // For SQLite cache
}

// WithCacheOption creates a cache based on the provided options
func WithCacheOption(opt CacheOption) Option {
	return func(c *Config) error {
		switch opt.Type {
		case CacheTypeMemory:
			c.Cache = DefaultMemoryCache()
		case CacheTypeSQLite:
			if opt.FilePath == "" {
				opt.FilePath = sqlite.DefaultPath
			}
			cache, err := DefaultSQLiteCache(opt.FilePath)
			if err != nil {
				return NewError(ErrorTypeConfiguration, "failed to open sqlite cache").WithCause(err)
			}
			c.Cache = cache
			c.closers = append(c.closers, cache.Close)
		default:
			return NewError(ErrorTypeConfiguration, "invalid cache type").
				WithContext("type", string(opt.Type))
		}
		return nil
	}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return WithLogger(QuietLogger())
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		Cache:              DefaultMemoryCache(),
		Logger:             DefaultLogger(),
		Endpoint:           corescripture.DefaultEndpoint,
		ClassName:          "getBible",
		Chrome:             present.ChromeBase,
		DefaultTranslation: "kjv",
		LinkURL:            "https://getbible.net",
		Timeout:            DefaultTimeout,
	}
}
