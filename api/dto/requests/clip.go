// ABOUTME: Request DTOs for clip and theme endpoints
// ABOUTME: Huma validates these tags before handlers run

package requests

import "time"

// ClipRequest is the article an owner wants to clip or toggle
type ClipRequest struct {
	// ID identifies the article within its publisher; maxLength mirrors domain.MaxKeyLength
	ID string `json:"id" minLength:"1" maxLength:"512" doc:"Article identifier, unique within the publisher"`

	// Publisher is the article's source
	Publisher string `json:"publisher" minLength:"1" maxLength:"255" doc:"Article publisher"`

	Title       string     `json:"title,omitempty" maxLength:"1024" doc:"Article title"`
	Description string     `json:"description,omitempty" maxLength:"4096" doc:"Article summary"`
	Link        string     `json:"link,omitempty" maxLength:"2048" doc:"Article URL"`
	Thumbnail   string     `json:"thumbnail,omitempty" maxLength:"2048" doc:"Thumbnail image URL"`
	Author      string     `json:"author,omitempty" maxLength:"255" doc:"Article author"`
	PublishedAt *time.Time `json:"published_at,omitempty" doc:"Publication time"`
}

// ThemeRequest selects an owner's theme
type ThemeRequest struct {
	Name string `json:"name" enum:"light,dark" doc:"Theme name"`
}
