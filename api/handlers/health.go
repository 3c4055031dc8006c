// ABOUTME: Health handler reports service liveness and cache reachability

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"scripture-tags/core/interfaces"
	"scripture-tags/pkg/featureflags"
)

// Pinger is implemented by cache backends that can check their connection
type Pinger interface {
	Ping(ctx context.Context) error
}

// StatsReporter is implemented by cache backends that can describe their contents
type StatsReporter interface {
	Stats() (map[string]interface{}, error)
}

// Cache states reported by /health
const (
	CacheOK          = "ok"
	CacheUnreachable = "unreachable"
	CacheDisabled    = "disabled"
)

const pingTimeout = 2 * time.Second

// HealthHandler serves the health check
type HealthHandler struct {
	cache  interfaces.Cache
	logger interfaces.Logger
}

// NewHealthHandler creates a health handler. A nil cache is reported as disabled.
func NewHealthHandler(cache interfaces.Cache, logger interfaces.Logger) *HealthHandler {
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &HealthHandler{cache: cache, logger: logger}
}

// RegisterRoutes registers health routes
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, h.Health)
}

// HealthOutput defines the health response
type HealthOutput struct {
	Body struct {
		Status     string                 `json:"status" enum:"ok,degraded" doc:"Overall status"`
		Cache      string                 `json:"cache" enum:"ok,unreachable,disabled" doc:"Cache backend status"`
		CacheStats map[string]interface{} `json:"cache_stats,omitempty" doc:"Backend statistics when the cache reports them"`
		Features   map[string]bool        `json:"features" doc:"Feature flag states for this request"`
	}
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	output := &HealthOutput{}
	output.Body.Status = "ok"
	output.Body.Cache = h.cacheStatus(ctx)
	if output.Body.Cache == CacheUnreachable {
		output.Body.Status = "degraded"
	}
	if output.Body.Cache == CacheOK {
		output.Body.CacheStats = h.cacheStats()
	}

	output.Body.Features = make(map[string]bool)
	for flag, enabled := range featureflags.FromContext(ctx).GetAllFlags() {
		output.Body.Features[string(flag)] = enabled
	}
	return output, nil
}

func (h *HealthHandler) cacheStatus(ctx context.Context) string {
	if h.cache == nil {
		return CacheDisabled
	}
	pinger, ok := h.cache.(Pinger)
	if !ok {
		return CacheOK
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pinger.Ping(ctx); err != nil {
		h.logger.Warn("Cache ping failed", map[string]interface{}{
			"error": err.Error(),
		})
		return CacheUnreachable
	}
	return CacheOK
}

func (h *HealthHandler) cacheStats() map[string]interface{} {
	reporter, ok := h.cache.(StatsReporter)
	if !ok {
		return nil
	}
	stats, err := reporter.Stats()
	if err != nil {
		h.logger.Warn("Cache stats unavailable", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	return stats
}
