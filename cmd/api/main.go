// ABOUTME: Main entry point for the Scripture Tags API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scripture-tags/api"
	"scripture-tags/api/handlers"
	"scripture-tags/api/middleware"
	"scripture-tags/core/action"
	"scripture-tags/core/interfaces"
	"scripture-tags/core/loader"
	"scripture-tags/core/present"
	"scripture-tags/core/scripture"
	"scripture-tags/infrastructure/cache/memory"
	"scripture-tags/infrastructure/cache/redis"
	"scripture-tags/infrastructure/cache/sqlite"
	stdhttp "scripture-tags/infrastructure/http/standard"
	"scripture-tags/infrastructure/logger/structured"
	"scripture-tags/pkg/config"
	"scripture-tags/pkg/featureflags"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := structured.New(structured.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	defer logger.Close()

	flags := featureflags.NewEnvManager("")
	logger.Info("Starting Scripture Tags API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"chrome":     cfg.Tags.Chrome,
		"endpoint":   cfg.Scripture.Endpoint,
		"flags":      flags.GetAllFlags(),
	})

	ctx := context.Background()
	cache, closeCache := newCache(ctx, cfg, logger)
	defer closeCache()
	if !flags.IsEnabled(ctx, featureflags.CacheEnabled) {
		logger.Info("Scripture cache disabled by feature flag", nil)
		cache = nil
	}

	httpClient := stdhttp.NewStandardHTTPClientWithTransport(cfg.Scripture.Timeout, &middleware.LoggingRoundTripper{
		Transport: http.DefaultTransport,
		Logger:    logger,
	})

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	chrome := cfg.Tags.Chrome
	if !flags.IsEnabled(ctx, featureflags.FrameworkChrome) {
		chrome = present.ChromeBase
	}
	selector, err := present.NewSelector(present.NewRegistry(), chrome)
	if err != nil {
		log.Fatalf("Invalid chrome provider: %v", err)
	}

	fetcher := scripture.NewFetcher(deps, cfg.Scripture.Endpoint)
	tagLoader := loader.New(deps, fetcher,
		loader.WithClassName(cfg.Tags.ClassName),
		loader.WithSelector(selector),
		loader.WithActionOptions(
			action.WithDefaultTranslation(cfg.Scripture.DefaultTranslation),
			action.WithDefaultLinkURL(cfg.Scripture.LinkURL),
		),
	)

	apiConfig := api.APIConfig{Logger: logger, Flags: flags}
	if flags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
		apiConfig.RateLimit = cfg.Server.RateLimit
		apiConfig.RateBurst = cfg.Server.RateBurst
	}
	humaAPI, router, stopLimiter := api.NewAPIWithMiddleware(apiConfig)
	defer stopLimiter()

	handlers.NewRenderHandler(tagLoader).RegisterRoutes(humaAPI)
	handlers.NewScriptureHandler(fetcher, cfg.Scripture.LinkURL).RegisterRoutes(humaAPI)
	handlers.NewHealthHandler(cache, logger).RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Server stopped", nil)
}

// newCache builds the configured backend, falling back to memory when it cannot be reached
func newCache(ctx context.Context, cfg *config.Config, logger interfaces.Logger) (interfaces.Cache, func()) {
	noop := func() {}
	fallback := func(err error) (interfaces.Cache, func()) {
		logger.Error("Failed to create cache, falling back to memory", map[string]interface{}{
			"cache_type": cfg.Cache.Type,
			"error":      err.Error(),
		})
		return memory.NewMemoryCacheWithCleanup(cfg.Cache.Memory.CleanupInterval), noop
	}

	switch cfg.Cache.Type {
	case config.CacheRedis:
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			return fallback(err)
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache, func() { _ = redisCache.Close() }
	case config.CacheSQLite:
		sqliteCache, err := sqlite.NewSQLiteCacheWithLogger(cfg.Cache.SQLite.Path, logger)
		if err != nil {
			return fallback(err)
		}
		if err := sqliteCache.Ping(ctx); err != nil {
			_ = sqliteCache.Close()
			return fallback(err)
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return sqliteCache, func() { _ = sqliteCache.Close() }
	default:
		logger.Info("Using memory cache", map[string]interface{}{
			"cleanup_interval": cfg.Cache.Memory.CleanupInterval.String(),
		})
		return memory.NewMemoryCacheWithCleanup(cfg.Cache.Memory.CleanupInterval), noop
	}
}

func init() {
	fmt.Println(`
   _____           _       __                    ______
  / ___/__________(_)___  / /___  __________    /_  __/___ _____ ______
  \__ \/ ___/ ___/ / __ \/ __/ / / / ___/ _ \    / / / __ '/ __ '/ ___/
 ___/ / /__/ /  / / /_/ / /_/ /_/ / /  /  __/   / / / /_/ / /_/ (__  )
/____/\___/_/  /_/ .___/\__/\__,_/_/   \___/   /_/  \__,_/\__, /____/
                /_/                                      /____/
	`)
}
