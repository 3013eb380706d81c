// ABOUTME: Clip domain models for saved articles and their lightweight indicators
// ABOUTME: Defines the composite (publisher, id) key used to tell whether an article is clipped

package domain

import "time"

// MaxKeyLength bounds an owner, publisher or article id, in characters
const MaxKeyLength = 512

// Clipped represents an article that is either a search result or saved by a user
type Clipped struct {
	// ID identifies the article within its publisher. It is not globally unique.
	ID string `json:"id"`

	// Publisher identifies the source that published the article
	Publisher string `json:"publisher"`

	// Title is the article headline
	Title string `json:"title"`

	// Description is a plain text summary of the article
	Description string `json:"description,omitempty"`

	// Link is the URL to the full article
	Link string `json:"link,omitempty"`

	// Thumbnail is the article's image URL
	Thumbnail string `json:"thumbnail,omitempty"`

	// Author is the article's byline
	Author string `json:"author,omitempty"`

	// PublishedAt is when the publisher released the article
	PublishedAt *time.Time `json:"publishedAt,omitempty"`

	// ClippedAt is when the article was saved, nil for plain search results
	ClippedAt *time.Time `json:"clippedAt,omitempty"`
}

// Indicator projects the article onto its composite key
func (c Clipped) Indicator() ClippedIndicator {
	return ClippedIndicator{ID: c.ID, Publisher: c.Publisher}
}

// ClippedIndicator marks an article as already clipped without carrying the full record
type ClippedIndicator struct {
	ID        string `json:"id"`
	Publisher string `json:"publisher"`
}

// Indicator returns the indicator itself so indicators can be matched against each other
func (i ClippedIndicator) Indicator() ClippedIndicator {
	return i
}

// IsZero reports whether neither key field is set
func (i ClippedIndicator) IsZero() bool {
	return i.ID == "" && i.Publisher == ""
}

// Indicatable is any record that exposes an article's id and publisher
type Indicatable interface {
	Indicator() ClippedIndicator
}
