// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: in-process cache on patrickmn/go-cache
// - cache/redis: shared cache on go-redis
// - cache/sqlite: persistent cache on mattn/go-sqlite3
// - http/standard: net/http client issuing one request per call
// - logger/structured: logrus logger with optional lumberjack rotation
//
// Every cache reports an absent key with interfaces.ErrCacheMiss so callers
// can tell a miss from a backend failure.
//
// # Cache Implementations
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "getBible-kjv-John 3:16", payload, 0)
//	value, err := cache.Get(ctx, "getBible-kjv-John 3:16")
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{Address: "localhost:6379"})
//
//	cache, err := sqlite.NewSQLiteCache("scripture-cache.db")
//	defer cache.Close()
//
// # HTTP Client
//
// Failed requests are not retried; timeouts come from the client:
//
//	client := standard.NewStandardHTTPClient(10 * time.Second)
//	resp, err := client.Get(ctx, "https://query.getbible.net/v2/kjv/John%203:16")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger := structured.New(structured.Options{Level: "info", Format: "json"})
//	logger.Info("Document loaded", map[string]interface{}{
//	    "elements": 3,
//	    "fetched":  2,
//	})
package infrastructure
