// ABOUTME: Registry of chrome providers keyed by name with document signature detection
// ABOUTME: Providers are registered explicitly and probed in a fixed priority order

package present

import (
	"fmt"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
)

// Registry holds the known chrome providers
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Chrome
}

// NewRegistry returns a registry holding the built-in providers
func NewRegistry() *Registry {
	r := &Registry{providers: make(map[string]Chrome)}
	r.Register(baseChrome{})
	r.Register(uikitChrome{})
	r.Register(bootstrapChrome{})
	r.Register(foundationChrome{})
	r.Register(tailwindChrome{})
	return r
}

// Register adds or replaces a provider under its name
func (r *Registry) Register(c Chrome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[strings.ToLower(c.Name())] = c
}

// Lookup returns the provider registered under name
func (r *Registry) Lookup(name string) (Chrome, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.providers[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Names returns the registered provider names
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	return names
}

// Selector picks the chrome for a document.
// A fixed provider is resolved once; auto mode detects per document.
type Selector struct {
	registry *Registry
	fixed    Chrome
	auto     bool
}

// NewSelector resolves mode against the registry. Empty mode means base.
func NewSelector(registry *Registry, mode string) (*Selector, error) {
	mode = strings.ToLower(strings.TrimSpace(mode))
	if mode == "" {
		mode = ChromeBase
	}
	if mode == ChromeAuto {
		return &Selector{registry: registry, auto: true}, nil
	}
	c, ok := registry.Lookup(mode)
	if !ok {
		return nil, fmt.Errorf("unknown chrome provider %q", mode)
	}
	return &Selector{registry: registry, fixed: c}, nil
}

// For returns the chrome to use for doc
func (s *Selector) For(doc *goquery.Document) Chrome {
	if !s.auto {
		return s.fixed
	}
	if c, ok := s.registry.Lookup(Detect(doc)); ok {
		return c
	}
	return baseChrome{}
}

type signature struct {
	name  string
	probe func(doc *goquery.Document) bool
}

// detectOrder is the priority in which framework signatures are probed
var detectOrder = []signature{
	{ChromeUIkit, func(doc *goquery.Document) bool {
		return assetMatches(doc, "uikit") || doc.Find("[uk-grid], [uk-modal], [uk-tooltip], [uk-toggle]").Length() > 0
	}},
	{ChromeBootstrap, func(doc *goquery.Document) bool {
		return assetMatches(doc, "bootstrap") || doc.Find("[data-bs-toggle], [data-bs-target]").Length() > 0
	}},
	{ChromeFoundation, func(doc *goquery.Document) bool {
		return assetMatches(doc, "foundation") || doc.Find("[data-reveal], [data-tooltip]").Length() > 0
	}},
	{ChromeTailwind, func(doc *goquery.Document) bool {
		return assetMatches(doc, "tailwind")
	}},
}

// Detect returns the name of the first framework whose signature appears in doc,
// or the base provider when none does
func Detect(doc *goquery.Document) string {
	for _, sig := range detectOrder {
		if sig.probe(doc) {
			return sig.name
		}
	}
	return ChromeBase
}

// assetMatches reports whether a script or stylesheet URL mentions needle
func assetMatches(doc *goquery.Document, needle string) bool {
	found := false
	doc.Find("script[src], link[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src := s.AttrOr("src", s.AttrOr("href", ""))
		if strings.Contains(strings.ToLower(src), needle) {
			found = true
			return false
		}
		return true
	})
	return found
}
