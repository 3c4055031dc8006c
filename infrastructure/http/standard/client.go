// ABOUTME: Standard HTTP client implementation with timeout support
// ABOUTME: Issues a single JSON GET per call; callers decide what a failure means

package standard

import (
	"context"
	"io"
	"net/http"
	"time"

	"scripture-tags/core/interfaces"
)

// DefaultUserAgent identifies the service to the scripture API
const DefaultUserAgent = "ScriptureTags/1.0"

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client    *http.Client
	userAgent string
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent: DefaultUserAgent,
	}
}

// NewStandardHTTPClientWithTransport creates a client whose requests pass through rt
func NewStandardHTTPClientWithTransport(timeout time.Duration, rt http.RoundTripper) *StandardHTTPClient {
	c := NewStandardHTTPClient(timeout)
	c.client.Transport = rt
	return c
}

// WithUserAgent overrides the User-Agent header
func (c *StandardHTTPClient) WithUserAgent(ua string) *StandardHTTPClient {
	if ua != "" {
		c.userAgent = ua
	}
	return c
}

// Get performs an HTTP GET request. Failed requests are not retried.
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
