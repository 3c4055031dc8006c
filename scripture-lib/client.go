// ABOUTME: Main client for the scripture library providing document enrichment and lookups
// ABOUTME: Offers a clean API for using core functionality without HTTP dependencies

package scripture

import (
	"context"
	"io"
	"strings"
	"sync"

	"scripture-tags/core/action"
	"scripture-tags/core/domain"
	"scripture-tags/core/format"
	"scripture-tags/core/interfaces"
	"scripture-tags/core/loader"
	"scripture-tags/core/present"
	"scripture-tags/core/reference"
	corescripture "scripture-tags/core/scripture"
)

// Client is the main entry point for the scripture library
type Client struct {
	loader  *loader.Loader
	fetcher *corescripture.Fetcher
	config  Config

	mu     sync.RWMutex
	closed bool
}

// NewClient creates a new client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			_ = closeAll(config.closers)
			return nil, err
		}
	}

	if config.HTTPClient == nil {
		config.HTTPClient = DefaultHTTPClient(config.Timeout)
	}
	if config.Logger == nil {
		config.Logger = QuietLogger()
	}

	selector, err := present.NewSelector(present.NewRegistry(), config.Chrome)
	if err != nil {
		_ = closeAll(config.closers)
		return nil, NewError(ErrorTypeConfiguration, "unknown chrome provider").WithCause(err)
	}

	deps := interfaces.Dependencies{
		Cache:      config.Cache,
		HTTPClient: config.HTTPClient,
		Logger:     config.Logger,
	}
	fetcher := corescripture.NewFetcher(deps, config.Endpoint)

	l := loader.New(deps, fetcher,
		loader.WithClassName(config.ClassName),
		loader.WithSelector(selector),
		loader.WithActionOptions(
			action.WithDefaultTranslation(config.DefaultTranslation),
			action.WithDefaultLinkURL(config.LinkURL),
		),
	)

	return &Client{
		loader:  l,
		fetcher: fetcher,
		config:  config,
	}, nil
}

// Close releases resources opened by the client. It is safe to call more than once.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return closeAll(c.config.closers)
}

func (c *Client) checkOpen() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClientClosed
	}
	return nil
}

// Enrich injects scripture into every tagged element of a full HTML document.
// When ctx ends early the partially enriched document is returned with ctx.Err().
func (c *Client) Enrich(ctx context.Context, html string) (*Result, error) {
	return c.enrich(ctx, html, c.loader.Enrich)
}

// EnrichFragment is Enrich for markup without html and body wrappers
func (c *Client) EnrichFragment(ctx context.Context, html string) (*Result, error) {
	return c.enrich(ctx, html, c.loader.EnrichFragment)
}

func (c *Client) enrich(ctx context.Context, html string, fn func(context.Context, io.Reader) (string, interfaces.LoadResult, error)) (*Result, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}

	out, result, err := fn(ctx, strings.NewReader(html))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return toResult(out, result), ctxErr
		}
		return nil, NewError(ErrorTypeParsing, "failed to process document").WithCause(err)
	}
	return toResult(out, result), nil
}

// Fetch returns the verse groups for one reference in one translation
func (c *Client) Fetch(ctx context.Context, translation, ref string) ([]Passage, error) {
	refs, err := c.fetch(ctx, translation, ref)
	if err != nil {
		return nil, err
	}

	passages := make([]Passage, 0, len(refs))
	for _, r := range refs {
		passages = append(passages, toPassage(r, c.config.LinkURL))
	}
	return passages, nil
}

// Render fetches a reference and formats it with the named formatter (plain, inline or block)
func (c *Client) Render(ctx context.Context, translation, ref, formatName string) (string, error) {
	refs, err := c.fetch(ctx, translation, ref)
	if err != nil {
		return "", err
	}

	cfg := domain.NewTagConfig(domain.FormatInline, []string{translation},
		domain.Toggles{Reference: true}, c.config.LinkURL,
		domain.TagDefaults{Translation: c.config.DefaultTranslation, LinkURL: c.config.LinkURL})
	return format.ByName(formatName, format.SettingsFrom(cfg)).Format(refs), nil
}

func (c *Client) fetch(ctx context.Context, translation, ref string) ([]*domain.Reference, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}
	if translation == "" {
		translation = c.config.DefaultTranslation
	}
	ref = strings.Join(strings.Fields(ref), " ")
	if err := reference.Validate(ref); err != nil {
		return nil, fromCore(err)
	}

	refs, err := c.fetcher.Fetch(ctx, translation, ref)
	if err != nil {
		return nil, fromCore(err)
	}
	return refs, nil
}

type cacheClearer interface {
	Clear(ctx context.Context) error
}

type cacheStatser interface {
	Stats() (map[string]interface{}, error)
}

// ClearCache removes every cached passage. Without a cache it does nothing.
func (c *Client) ClearCache(ctx context.Context) error {
	if err := c.checkOpen(); err != nil {
		return err
	}
	if c.config.Cache == nil {
		return nil
	}
	clearer, ok := c.config.Cache.(cacheClearer)
	if !ok {
		return NewError(ErrorTypeConfiguration, "cache backend cannot be cleared")
	}
	if err := clearer.Clear(ctx); err != nil {
		return NewError(ErrorTypeInternal, "failed to clear cache").WithCause(err)
	}
	return nil
}

// CacheStats describes the cache contents. It returns nil without a cache
// or when the backend keeps no statistics.
func (c *Client) CacheStats() (map[string]interface{}, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}
	statser, ok := c.config.Cache.(cacheStatser)
	if !ok {
		return nil, nil
	}
	stats, err := statser.Stats()
	if err != nil {
		return nil, NewError(ErrorTypeInternal, "failed to read cache statistics").WithCause(err)
	}
	return stats, nil
}

func closeAll(closers []func() error) error {
	var first error
	for _, fn := range closers {
		if err := fn(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
