package scripture

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const john316 = `{"kjv_43_3":{"translation":"King James Version","abbreviation":"kjv","lang":"en","language":"English","direction":"LTR","encoding":"UTF-8","book_nr":43,"book_name":"John","chapter":3,"name":"John 3","ref":["John 3:16"],"verses":[{"chapter":3,"verse":16,"name":"John 3:16","text":"For God so loved the world"}]}}`

func newAPI(t *testing.T) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		switch r.URL.Path {
		case "/kjv/John 3:16":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(john316))
		case "/kjv/John 3:17":
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server, &hits
}

func newTestClient(t *testing.T, opts ...Option) (*Client, *int32) {
	t.Helper()
	server, hits := newAPI(t)
	client, err := NewClient(append([]Option{WithEndpoint(server.URL), WithQuietMode()}, opts...)...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client, hits
}

func TestClient_Fetch(t *testing.T) {
	client, hits := newTestClient(t)

	passages, err := client.Fetch(context.Background(), "kjv", "  John   3:16 ")

	require.NoError(t, err)
	require.Len(t, passages, 1)
	assert.Equal(t, "John 3:16", passages[0].Reference)
	assert.Equal(t, "https://getbible.net/kjv/John/3/16", passages[0].Link)
	assert.Equal(t, "For God so loved the world", passages[0].Verses[0].Text)

	_, err = client.Fetch(context.Background(), "kjv", "John 3:16")
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits), "second fetch is served from cache")
}

func TestClient_FetchWithoutCache(t *testing.T) {
	client, hits := newTestClient(t, WithoutCache())

	for i := 0; i < 2; i++ {
		_, err := client.Fetch(context.Background(), "kjv", "John 3:16")
		require.NoError(t, err)
	}
	assert.Equal(t, int32(2), atomic.LoadInt32(hits))
}

func TestClient_FetchErrors(t *testing.T) {
	client, hits := newTestClient(t)

	_, err := client.Fetch(context.Background(), "kjv", "John")
	assert.True(t, IsValidationError(err), "got %v", err)
	assert.Equal(t, int32(0), atomic.LoadInt32(hits), "invalid references never reach the API")

	_, err = client.Fetch(context.Background(), "kjv", "Jude 1:99")
	assert.True(t, IsNotFoundError(err), "got %v", err)

	_, err = client.Fetch(context.Background(), "kjv", "John 3:17")
	assert.True(t, IsNetworkError(err), "got %v", err)
}

func TestClient_Render(t *testing.T) {
	client, _ := newTestClient(t)

	out, err := client.Render(context.Background(), "kjv", "John 3:16", "plain")

	require.NoError(t, err)
	assert.Equal(t, "[John 3:16]\n16. For God so loved the world", strings.TrimSpace(out))
}

func TestClient_EnrichFragment(t *testing.T) {
	client, _ := newTestClient(t, WithClassName("verse"))

	result, err := client.EnrichFragment(context.Background(),
		`<p><span class="verse">John 3:16</span> and <span class="verse" data-format="tooltip">John 3:17</span></p>`)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Elements)
	assert.Equal(t, 1, result.Fetched)
	assert.Equal(t, 1, result.Skipped)
	assert.Contains(t, result.HTML, "For God so loved the world")
	assert.NotContains(t, result.HTML, "<body>")
}

func TestClient_EnrichModalWithChrome(t *testing.T) {
	client, _ := newTestClient(t, WithChrome("bootstrap"))

	result, err := client.Enrich(context.Background(),
		`<html><body><a class="getBible" data-format="modal">John 3:16</a></body></html>`)

	require.NoError(t, err)
	assert.Contains(t, result.HTML, `data-bs-target="#getbible-modal-1"`)
	assert.Contains(t, result.HTML, `id="getbible-modal-1"`)
}

func TestClient_CancelledContext(t *testing.T) {
	client, hits := newTestClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := client.Enrich(ctx, `<span class="getBible">John 3:16</span>`)

	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, result)
	assert.Contains(t, result.HTML, "John 3:16")
	assert.Equal(t, int32(0), atomic.LoadInt32(hits))
}

func TestNewClient_InvalidOptions(t *testing.T) {
	_, err := NewClient(WithChrome("bulma"))
	assert.Error(t, err)

	_, err = NewClient(WithClassName(""))
	assert.True(t, IsValidationError(err))

	_, err = NewClient(WithCacheOption(CacheOption{Type: "disk"}))
	assert.Error(t, err)
}

func TestNewClient_SQLiteCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	client, hits := newTestClient(t, WithCacheOption(CacheOption{Type: CacheTypeSQLite, FilePath: path}))

	for i := 0; i < 2; i++ {
		_, err := client.Fetch(context.Background(), "kjv", "John 3:16")
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}

func TestClient_Closed(t *testing.T) {
	client, _ := newTestClient(t)
	require.NoError(t, client.Close())
	require.NoError(t, client.Close())

	_, err := client.Fetch(context.Background(), "kjv", "John 3:16")
	assert.ErrorIs(t, err, ErrClientClosed)
}

func TestClient_CacheStatsAndClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	client, hits := newTestClient(t, WithCacheOption(CacheOption{Type: CacheTypeSQLite, FilePath: path}))
	ctx := context.Background()

	_, err := client.Fetch(ctx, "kjv", "John 3:16")
	require.NoError(t, err)

	stats, err := client.CacheStats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats["total_entries"])
	assert.Equal(t, path, stats["file_path"])

	require.NoError(t, client.ClearCache(ctx))
	stats, err = client.CacheStats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats["total_entries"])

	_, err = client.Fetch(ctx, "kjv", "John 3:16")
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(hits), "cleared entry is fetched again")
}

func TestClient_ClearCacheWithoutCache(t *testing.T) {
	client, _ := newTestClient(t, WithoutCache())

	assert.NoError(t, client.ClearCache(context.Background()))
	stats, err := client.CacheStats()
	assert.NoError(t, err)
	assert.Nil(t, stats)
}
