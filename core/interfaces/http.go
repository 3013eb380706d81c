// ABOUTME: HTTP client contract for the article search provider
// ABOUTME: Responses expose status and body
package interfaces

import (
	"context"
	"io"
)

// HTTPClient fetches documents from the article search provider.
// The abstraction lets tests serve canned RSS without a network.
type HTTPClient interface {
	// Get performs an HTTP GET request to the specified URL.
	Get(ctx context.Context, url string) (Response, error)
}

// Response is the part of an HTTP response the services read
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body. The caller must close it.
	Body() io.ReadCloser

	// Header returns the value of the specified header, or an empty string.
	Header(key string) string
}
