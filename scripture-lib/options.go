// ABOUTME: Configuration options for the scripture library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package scripture

import (
	"time"

	"scripture-tags/core/interfaces"
	"scripture-tags/core/present"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// Config holds the configuration for the client
type Config struct {
	Cache      interfaces.Cache
	HTTPClient interfaces.HTTPClient
	Logger     interfaces.Logger

	// Endpoint is the scripture API base URL
	Endpoint string

	// ClassName marks elements holding references
	ClassName string

	// Chrome names the UI framework provider, or "auto"
	Chrome string

	DefaultTranslation string
	LinkURL            string
	Timeout            time.Duration

	// closers are released by Client.Close
	closers []func() error
}

// WithCache sets a custom cache implementation. A nil cache disables caching.
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		return nil
	}
}

// WithoutCache fetches every reference from the API
func WithoutCache() Option {
	return WithCache(nil)
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		if client == nil {
			return NewError(ErrorTypeConfiguration, "HTTP client is required")
		}
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		if logger == nil {
			logger = QuietLogger()
		}
		c.Logger = logger
		return nil
	}
}

// WithEndpoint points the client at another scripture API
func WithEndpoint(endpoint string) Option {
	return func(c *Config) error {
		c.Endpoint = endpoint
		return nil
	}
}

// WithClassName sets the class that marks tagged elements
func WithClassName(name string) Option {
	return func(c *Config) error {
		if name == "" {
			return NewError(ErrorTypeValidation, "class name must not be empty")
		}
		c.ClassName = name
		return nil
	}
}

// WithChrome selects the UI framework provider used for tooltips and modals
func WithChrome(name string) Option {
	return func(c *Config) error {
		if _, err := present.NewSelector(present.NewRegistry(), name); err != nil {
			return NewError(ErrorTypeConfiguration, "unknown chrome provider").
				WithCause(err).
				WithContext("chrome", name)
		}
		c.Chrome = name
		return nil
	}
}

// WithDefaultTranslation sets the translation for elements that name none
func WithDefaultTranslation(code string) Option {
	return func(c *Config) error {
		c.DefaultTranslation = code
		return nil
	}
}

// WithLinkURL sets the base URL of passage links
func WithLinkURL(url string) Option {
	return func(c *Config) error {
		c.LinkURL = url
		return nil
	}
}

// WithTimeout sets the per request timeout of the default HTTP client
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout <= 0 {
			return NewError(ErrorTypeValidation, "timeout must be positive")
		}
		c.Timeout = timeout
		return nil
	}
}
