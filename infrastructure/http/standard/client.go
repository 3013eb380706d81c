// ABOUTME: HTTP client used to fetch RSS search results from the news provider
// ABOUTME: Retries transient failures with exponential backoff and caps response size

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"clipper-app-api/core/interfaces"
)

const (
	maxRetries   = 3
	userAgent    = "ClipperAPI/1.0"
	acceptHeader = "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8"

	// MaxBodyBytes caps how much of a provider response is read
	MaxBodyBytes = 5 << 20
)

// StandardHTTPClient implements the HTTPClient interface on net/http
type StandardHTTPClient struct {
	client *http.Client
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get performs an HTTP GET request, retrying network errors, 429 and 5xx responses
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			// 100ms, 200ms, 400ms
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", userAgent)
		req.Header.Set("Accept", acceptHeader)

		resp, err := c.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			continue
		}

		if !retryable(resp.StatusCode) || attempt == maxRetries-1 {
			return newResponse(resp), nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
	}

	return nil, lastErr
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

func newResponse(resp *http.Response) *httpResponse {
	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       limitedBody{Reader: io.LimitReader(resp.Body, MaxBodyBytes), Closer: resp.Body},
		headers:    resp.Header,
	}
}

// limitedBody reads from a size-capped reader but closes the underlying body
type limitedBody struct {
	io.Reader
	io.Closer
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
