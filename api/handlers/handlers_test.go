package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scripture-tags/api/dto/responses"
	"scripture-tags/core/domain"
	coreerrors "scripture-tags/core/errors"
	"scripture-tags/core/interfaces"
	"scripture-tags/core/loader"
	"scripture-tags/pkg/featureflags"
)

// stubFetcher serves canned verse groups keyed by "translation|reference"
type stubFetcher struct {
	mu    sync.Mutex
	refs  map[string][]*domain.Reference
	errs  map[string]error
	calls []string
}

func (s *stubFetcher) Fetch(ctx context.Context, translation, reference string) ([]*domain.Reference, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := translation + "|" + reference
	s.calls = append(s.calls, key)
	if err, ok := s.errs[key]; ok {
		return nil, err
	}
	if refs, ok := s.refs[key]; ok {
		return refs, nil
	}
	return nil, &coreerrors.ExternalAPIError{StatusCode: 404, API: "getbible"}
}

func john316(t *testing.T) *domain.Reference {
	t.Helper()
	ref, err := domain.NewReference(domain.RawReference{
		Translation:  "King James Version",
		Abbreviation: "kjv",
		Language:     "English",
		LanguageCode: "en",
		Direction:    "LTR",
		BookNumber:   43,
		BookName:     "John",
		Chapter:      3,
		Name:         "John 3",
		Verses: []domain.Verse{
			{Chapter: 3, Number: 16, Name: "John 3:16", Text: "For God so loved the world"},
		},
	})
	require.NoError(t, err)
	return ref
}

func depsForTest() interfaces.Dependencies {
	return interfaces.Dependencies{Logger: interfaces.NopLogger{}}
}

func newStub(t *testing.T) *stubFetcher {
	return &stubFetcher{
		refs: map[string][]*domain.Reference{"kjv|John 3:16": {john316(t)}},
		errs: map[string]error{
			"kjv|John 3:17": &coreerrors.ExternalAPIError{StatusCode: 502, API: "getbible"},
		},
	}
}

func TestScriptureHandler_GetScripture(t *testing.T) {
	_, api := humatest.New(t)
	NewScriptureHandler(newStub(t), "").RegisterRoutes(api)

	resp := api.Get("/scripture/KJV/John%203:16?format=plain")

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body responses.ScriptureResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "kjv", body.Translation)
	assert.Equal(t, "John 3:16", body.Query)
	assert.Equal(t, "plain", body.Format)
	require.Len(t, body.References, 1)
	assert.Equal(t, "John 3:16", body.References[0].Reference)
	assert.Equal(t, "https://getbible.net/kjv/John/3/16", body.References[0].Link)
	assert.Contains(t, body.Rendered, "16. For God so loved the world")
	assert.Contains(t, body.Rendered, "[John 3:16]")
}

func TestScriptureHandler_DefaultFormatIsInline(t *testing.T) {
	_, api := humatest.New(t)
	NewScriptureHandler(newStub(t), "").RegisterRoutes(api)

	resp := api.Get("/scripture/kjv/John%203:16")

	require.Equal(t, http.StatusOK, resp.Code)
	var body responses.ScriptureResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "inline", body.Format)
	assert.Contains(t, body.Rendered, `class="getbible-reference"`)
}

func TestScriptureHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"no digit", "/scripture/kjv/John", http.StatusBadRequest},
		{"too long", "/scripture/kjv/" + strings.Repeat("a", 31) + "1", http.StatusBadRequest},
		{"several references", "/scripture/kjv/John%203:16;John%203:17", http.StatusBadRequest},
		{"unknown format", "/scripture/kjv/John%203:16?format=xml", http.StatusUnprocessableEntity},
		{"upstream 404", "/scripture/kjv/Jude%201:99", http.StatusNotFound},
		{"upstream 5xx", "/scripture/kjv/John%203:17", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, api := humatest.New(t)
			NewScriptureHandler(newStub(t), "").RegisterRoutes(api)

			resp := api.Get(tt.path)

			assert.Equal(t, tt.status, resp.Code, resp.Body.String())
		})
	}
}

func TestRenderHandler_Render(t *testing.T) {
	stub := newStub(t)
	_, api := humatest.New(t)
	NewRenderHandler(loader.New(depsForTest(), stub)).RegisterRoutes(api)

	resp := api.Post("/render", map[string]any{
		"html":     `<p><span class="getBible">John 3:16</span><span class="getBible">John 3:17</span><span class="getBible">???</span></p>`,
		"fragment": true,
	})

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body responses.RenderResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Elements)
	assert.Equal(t, 1, body.Abandoned)
	assert.Equal(t, 1, body.Fetched)
	assert.Equal(t, 1, body.Skipped)
	assert.Contains(t, body.HTML, "For God so loved the world")
	assert.True(t, strings.HasPrefix(body.HTML, "<p>"), "fragment output has no html wrapper")
	assert.Equal(t, []string{"kjv|John 3:16", "kjv|John 3:17"}, stub.calls)
}

func TestRenderHandler_CustomClass(t *testing.T) {
	stub := newStub(t)
	_, api := humatest.New(t)
	NewRenderHandler(loader.New(depsForTest(), stub)).RegisterRoutes(api)

	resp := api.Post("/render", map[string]any{
		"html":  `<div class="verse">John 3:16</div><div class="getBible">John 3:17</div>`,
		"class": "verse",
	})

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var body responses.RenderResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Elements)
	assert.Contains(t, body.HTML, "<html>")
	assert.Equal(t, []string{"kjv|John 3:16"}, stub.calls)
}

func TestRenderHandler_Disabled(t *testing.T) {
	flags := featureflags.NewDefaultManager()
	flags.SetEnabled(featureflags.RenderEnabled, false)
	_, api := humatest.New(t)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, featureflags.WithManager(ctx.Context(), flags)))
	})
	NewRenderHandler(loader.New(depsForTest(), newStub(t))).RegisterRoutes(api)

	resp := api.Post("/render", map[string]any{"html": "<p></p>"})

	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

func TestRenderHandler_EmptyHTMLRejected(t *testing.T) {
	_, api := humatest.New(t)
	NewRenderHandler(loader.New(depsForTest(), newStub(t))).RegisterRoutes(api)

	resp := api.Post("/render", map[string]any{"html": ""})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

type pingCache struct {
	err error
}

func (c *pingCache) Get(ctx context.Context, key string) ([]byte, error) { return nil, nil }
func (c *pingCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}
func (c *pingCache) Delete(ctx context.Context, key string) error { return nil }
func (c *pingCache) Ping(ctx context.Context) error               { return c.err }

type statsCache struct {
	pingCache
}

func (c *statsCache) Stats() (map[string]interface{}, error) {
	return map[string]interface{}{"total_entries": 3}, nil
}

func TestHealthHandler_StatsAndFeatures(t *testing.T) {
	flags := featureflags.NewDefaultManager()
	flags.SetEnabled(featureflags.RateLimitEnabled, false)
	_, api := humatest.New(t)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, featureflags.WithManager(ctx.Context(), flags)))
	})
	NewHealthHandler(&statsCache{}, nil).RegisterRoutes(api)

	resp := api.Get("/health")

	require.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Cache      string                 `json:"cache"`
		CacheStats map[string]interface{} `json:"cache_stats"`
		Features   map[string]bool        `json:"features"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, CacheOK, body.Cache)
	assert.Equal(t, float64(3), body.CacheStats["total_entries"])
	assert.False(t, body.Features["rate_limit_enabled"])
	assert.True(t, body.Features["render_enabled"])
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name   string
		cache  interfaces.Cache
		status string
		want   string
	}{
		{"disabled", nil, "ok", CacheDisabled},
		{"reachable", &pingCache{}, "ok", CacheOK},
		{"unreachable", &pingCache{err: errors.New("refused")}, "degraded", CacheUnreachable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, api := humatest.New(t)
			NewHealthHandler(tt.cache, nil).RegisterRoutes(api)

			resp := api.Get("/health")

			require.Equal(t, http.StatusOK, resp.Code)
			var body struct {
				Status string `json:"status"`
				Cache  string `json:"cache"`
			}
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			assert.Equal(t, tt.status, body.Status)
			assert.Equal(t, tt.want, body.Cache)
		})
	}
}
