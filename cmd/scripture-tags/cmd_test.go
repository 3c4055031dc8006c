package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const john316 = `{"kjv_43_3":{"translation":"King James Version","abbreviation":"kjv","lang":"en","language":"English","direction":"LTR","encoding":"UTF-8","book_nr":43,"book_name":"John","chapter":3,"name":"John 3","ref":["John 3:16"],"verses":[{"chapter":3,"verse":16,"name":"John 3:16","text":"For God so loved the world"}]}}`

func newAPI(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/kjv/John 3:16" {
			_, _ = w.Write([]byte(john316))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)
	return server
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestFetch_Plain(t *testing.T) {
	server := newAPI(t)

	out, _, err := run(t, "", "--endpoint", server.URL, "--cache", "none", "fetch", "John", "3:16")

	require.NoError(t, err)
	assert.Equal(t, "[John 3:16]\n16. For God so loved the world\n", out)
}

func TestFetch_JSON(t *testing.T) {
	server := newAPI(t)

	out, _, err := run(t, "", "--endpoint", server.URL, "fetch", "-f", "json", "John 3:16")

	require.NoError(t, err)
	var passages []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &passages))
	require.Len(t, passages, 1)
	assert.Equal(t, "16", passages[0]["verse_range"])
}

func TestFetch_InvalidFormat(t *testing.T) {
	_, _, err := run(t, "", "fetch", "-f", "xml", "John 3:16")

	assert.ErrorContains(t, err, "invalid format")
}

func TestFetch_NotFound(t *testing.T) {
	server := newAPI(t)

	_, _, err := run(t, "", "--endpoint", server.URL, "fetch", "Jude 1:99")

	assert.Error(t, err)
}

func TestRender_Stdin(t *testing.T) {
	server := newAPI(t)

	out, stderr, err := run(t, `<p><span class="getBible">John 3:16</span></p>`,
		"--endpoint", server.URL, "render", "--fragment")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<p>"))
	assert.Contains(t, out, "For God so loved the world")
	assert.Contains(t, stderr, "elements: 1, abandoned: 0, fetched: 1, skipped: 0")
}

func TestRender_FileToFile(t *testing.T) {
	server := newAPI(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "page.html")
	outPath := filepath.Join(dir, "out.html")
	require.NoError(t, os.WriteFile(in, []byte(`<html><body><b class="verse" data-format="tooltip">John 3:16</b></body></html>`), 0o644))

	_, _, err := run(t, "", "--endpoint", server.URL, "--class", "verse", "render", in, "-o", outPath, "-q")

	require.NoError(t, err)
	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `title="[John 3:16]`)
}

func TestEnvironmentBinding(t *testing.T) {
	server := newAPI(t)
	t.Setenv("SCRIPTURE_ENDPOINT", server.URL)
	t.Setenv("SCRIPTURE_CACHE", "none")

	out, _, err := run(t, "", "fetch", "John 3:16")

	require.NoError(t, err)
	assert.Contains(t, out, "For God so loved the world")
}

func TestConfigFile(t *testing.T) {
	server := newAPI(t)
	cfg := filepath.Join(t.TempDir(), "scripture.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("endpoint: "+server.URL+"\nchrome: tailwind\n"), 0o644))

	out, _, err := run(t, `<span class="getBible" data-format="tooltip">John 3:16</span>`,
		"--config", cfg, "render", "--fragment", "-q")

	require.NoError(t, err)
	assert.Contains(t, out, "getbible-tooltip")
}

func TestUnknownChrome(t *testing.T) {
	_, _, err := run(t, "<p></p>", "--chrome", "bulma", "render")

	assert.Error(t, err)
}

func TestCache_StatsAndClear(t *testing.T) {
	server := newAPI(t)
	db := filepath.Join(t.TempDir(), "cache.db")
	base := []string{"--endpoint", server.URL, "--cache", "sqlite", "--cache-path", db}

	_, _, err := run(t, "", append(base, "fetch", "John 3:16")...)
	require.NoError(t, err)

	out, _, err := run(t, "", append(base, "cache", "stats")...)
	require.NoError(t, err)
	assert.Contains(t, out, "total_entries: 1\n")
	assert.Contains(t, out, "file_path: "+db)

	_, stderr, err := run(t, "", append(base, "cache", "clear")...)
	require.NoError(t, err)
	assert.Contains(t, stderr, "cache cleared")

	out, _, err = run(t, "", append(base, "cache", "stats")...)
	require.NoError(t, err)
	assert.Contains(t, out, "total_entries: 0\n")
}

func TestCache_StatsWithoutCache(t *testing.T) {
	out, _, err := run(t, "", "--cache", "none", "cache", "stats")

	require.NoError(t, err)
	assert.Contains(t, out, "no cache statistics available")
}
