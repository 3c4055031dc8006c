// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"scripture-tags/api/middleware"
	"scripture-tags/core/interfaces"
	"scripture-tags/pkg/featureflags"
)

const (
	apiTitle       = "Scripture Tags API"
	apiVersion     = "1.0.0"
	apiDescription = "Enriches HTML with scripture for tagged elements and serves verse lookups"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger    interfaces.Logger
	Flags     featureflags.Manager // nil leaves every flag at its default
	RateLimit float64              // requests per second per client, 0 disables limiting
	RateBurst int
}

// corsOptions allows any origin to post documents for enrichment
func corsOptions() cors.Options {
	return cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader, "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}
}

func newHuma(router chi.Router) huma.API {
	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = apiDescription

	// The OpenAPI spec is served at /openapi.json and the docs UI at /docs
	return humachi.New(router, config)
}

// NewAPI creates and configures a new Huma API instance
func NewAPI() (huma.API, chi.Router) {
	router := chi.NewRouter()
	router.Use(cors.Handler(corsOptions()))

	return newHuma(router), router
}

// NewAPIWithMiddleware creates a new API with middleware configured.
// The returned stop function releases the rate limiter's cleanup goroutine.
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router, func()) {
	router := chi.NewRouter()

	// CORS should be first so preflight requests are never limited
	router.Use(cors.Handler(corsOptions()))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.Flags != nil {
		router.Use(middleware.FeatureFlagsMiddleware(cfg.Flags))
	}

	stop := func() {}
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst <= 0 {
			burst = 1
		}
		limiter := middleware.NewRateLimiter(cfg.RateLimit, burst)
		router.Use(middleware.RateLimitMiddleware(limiter))
		stop = limiter.Stop
	}

	return newHuma(router), router, stop
}
