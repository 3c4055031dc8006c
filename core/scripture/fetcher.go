// ABOUTME: Scripture fetcher builds API URLs, performs GET requests and decodes verse groups
// ABOUTME: Serves from the timestamped store first and writes fresh payloads back to it

package scripture

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"scripture-tags/core/domain"
	"scripture-tags/core/errors"
	"scripture-tags/core/interfaces"
)

const (
	// DefaultEndpoint is the public scripture API
	DefaultEndpoint = "https://query.getbible.net/v2"

	// MaxBodySize caps the size of an API response. Its cache envelope must
	// stay under interfaces.MaxValueSize.
	MaxBodySize = 4 << 20
)

// Fetcher retrieves verse groups from the scripture API through the store
type Fetcher struct {
	deps     interfaces.Dependencies
	store    *Store
	endpoint string
}

// NewFetcher creates a fetcher for the given endpoint. An empty endpoint
// selects DefaultEndpoint.
func NewFetcher(deps interfaces.Dependencies, endpoint string) *Fetcher {
	if deps.Logger == nil {
		deps.Logger = interfaces.NopLogger{}
	}
	endpoint = strings.TrimRight(strings.TrimSpace(endpoint), "/")
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Fetcher{
		deps:     deps,
		store:    NewStore(deps.Cache, deps.Logger),
		endpoint: endpoint,
	}
}

// Store exposes the underlying payload store
func (f *Fetcher) Store() *Store {
	return f.store
}

// URL builds the request URL for a translation and reference
func (f *Fetcher) URL(translation, reference string) string {
	return f.endpoint + "/" + url.PathEscape(translation) + "/" + url.PathEscape(reference)
}

// Fetch returns the verse groups for one translation and reference in the
// order the API lists them.
func (f *Fetcher) Fetch(ctx context.Context, translation, reference string) ([]*domain.Reference, error) {
	translation = strings.ToLower(strings.TrimSpace(translation))
	reference = strings.TrimSpace(reference)
	if translation == "" {
		return nil, &errors.ValidationError{Field: "translation", Message: "is required"}
	}
	if reference == "" {
		return nil, &errors.ValidationError{Field: "reference", Message: "is required"}
	}

	cached, ok, err := f.store.Get(ctx, translation, reference)
	if err != nil {
		return nil, err
	}
	if ok {
		refs, err := Decode(cached)
		if err == nil {
			f.deps.Logger.Debug("Scripture cache hit", map[string]interface{}{
				"translation": translation,
				"reference":   reference,
			})
			return refs, nil
		}
		f.deps.Logger.Warn("Discarding undecodable cached payload", map[string]interface{}{
			"translation": translation,
			"reference":   reference,
			"error":       err.Error(),
		})
	}

	body, err := f.get(ctx, translation, reference)
	if err != nil {
		return nil, err
	}

	refs, err := Decode(body)
	if err != nil {
		return nil, errors.WrapError(err, fmt.Sprintf("decode %s %s", translation, reference))
	}
	if len(refs) == 0 {
		return nil, &errors.NotFoundError{Resource: "reference", ID: translation + "/" + reference}
	}

	if err := f.store.Set(ctx, translation, reference, body); err != nil {
		return nil, err
	}

	return refs, nil
}

// get performs the HTTP round trip and returns the response body
func (f *Fetcher) get(ctx context.Context, translation, reference string) ([]byte, error) {
	if f.deps.HTTPClient == nil {
		return nil, fmt.Errorf("no HTTP client configured")
	}

	target := f.URL(translation, reference)
	resp, err := f.deps.HTTPClient.Get(ctx, target)
	if err != nil {
		f.deps.Logger.Error("Scripture request failed", map[string]interface{}{
			"url":   target,
			"error": err.Error(),
		})
		return nil, errors.WrapError(err, "GET "+target)
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &errors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    fmt.Sprintf("unexpected status fetching %s %s", translation, reference),
			API:        "getbible",
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body(), MaxBodySize+1))
	if err != nil {
		return nil, errors.WrapError(err, "read response body")
	}
	if len(body) > MaxBodySize {
		f.deps.Logger.Warn("Scripture response too large", map[string]interface{}{
			"url":   target,
			"limit": MaxBodySize,
		})
		return nil, &errors.ExternalAPIError{
			StatusCode: http.StatusBadGateway,
			Message:    fmt.Sprintf("response too large: over %d bytes", MaxBodySize),
			API:        "getbible",
		}
	}
	return body, nil
}

// Decode parses an API response, a JSON object keyed by internal IDs,
// keeping the key order of the document.
func Decode(body []byte) ([]*domain.Reference, error) {
	dec := json.NewDecoder(bytes.NewReader(body))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, &errors.ValidationError{Field: "response", Message: "expected a JSON object"}
	}

	var refs []*domain.Reference
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := keyTok.(string)

		var raw domain.RawReference
		if err := dec.Decode(&raw); err != nil {
			return nil, errors.WrapError(err, "decode "+key)
		}

		ref, err := domain.NewReference(raw)
		if err != nil {
			return nil, errors.WrapError(err, "invalid reference "+key)
		}
		refs = append(refs, ref)
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return refs, nil
}
