// ABOUTME: Response DTOs for clip, search and indicator endpoints
// ABOUTME: Field names follow the snake_case convention used across the API

package responses

import "time"

// ClipResponse is one article, flagged with the owner's clip state
type ClipResponse struct {
	ID          string     `json:"id"`
	Publisher   string     `json:"publisher"`
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	Link        string     `json:"link,omitempty"`
	Thumbnail   string     `json:"thumbnail,omitempty"`
	Author      string     `json:"author,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	ClippedAt   *time.Time `json:"clipped_at,omitempty"`
	Clipped     bool       `json:"clipped"`
}

// ClipListResponse is an owner's clip list
type ClipListResponse struct {
	Owner string         `json:"owner"`
	Count int            `json:"count"`
	Clips []ClipResponse `json:"clips"`
}

// SearchResponse is one page of search results
type SearchResponse struct {
	Query    string         `json:"query"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
	Total    int            `json:"total"`
	Items    []ClipResponse `json:"items"`
}

// IndicatorResponse is the composite key of a clipped article
type IndicatorResponse struct {
	ID        string `json:"id"`
	Publisher string `json:"publisher"`
}

// IndicatorListResponse lists the keys of an owner's clips in order
type IndicatorListResponse struct {
	Owner      string              `json:"owner"`
	Indicators []IndicatorResponse `json:"indicators"`
}

// CheckResponse reports where an article sits in the owner's list; index is -1 when absent
type CheckResponse struct {
	Index   int  `json:"index"`
	Clipped bool `json:"clipped"`
}

// ToggleResponse reports the clip state after a toggle
type ToggleResponse struct {
	Clipped bool `json:"clipped"`
}

// ClipCreatedResponse reports whether a clip was newly added
type ClipCreatedResponse struct {
	Added bool `json:"added"`
}
