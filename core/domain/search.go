// ABOUTME: Search domain models for article search results
// ABOUTME: Provides the identity factory used as a typed seam for raw provider output

package domain

// SearchResult represents one page of articles found for a query
type SearchResult struct {
	// Query is the normalized search query
	Query string `json:"query"`

	// Items are the articles on this page
	Items []Clipped `json:"items"`

	// Page is the 1-based page number
	Page int `json:"page"`

	// PageSize is the maximum number of items on a page
	PageSize int `json:"pageSize"`

	// Total is the number of articles found across all pages
	Total int `json:"total"`
}

// NewSearchResult returns option unchanged. It performs no validation or defaulting
// and only documents that option already has the search result shape.
func NewSearchResult(option SearchResult) SearchResult {
	return option
}
