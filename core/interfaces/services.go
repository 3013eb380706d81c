// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Lets screens and handlers depend on behaviour rather than concrete services

package interfaces

import (
	"context"

	"clipper-app-api/core/domain"
)

// ArticleSearcher finds articles for a query
type ArticleSearcher interface {
	SearchArticles(ctx context.Context, query string, page, size int) (domain.SearchResult, error)
}

// ClipReader exposes an owner's clips and indicators
type ClipReader interface {
	List(ctx context.Context, owner string) ([]domain.Clipped, error)
	Indicators(ctx context.Context, owner string) ([]domain.ClippedIndicator, error)
}

// ThemeReader returns the theme selected by an owner
type ThemeReader interface {
	Get(ctx context.Context, owner string) (domain.Theme, error)
}

// ScreenRequest carries what a screen needs to render for one caller
type ScreenRequest struct {
	// Owner identifies whose clips and theme to use; empty for anonymous callers
	Owner string

	// Query is the search text, used by search screens
	Query string

	// Page and Size select a page of results; zero values mean defaults
	Page int
	Size int
}

// Screen renders a view model for a route
type Screen interface {
	Render(ctx context.Context, req ScreenRequest) (any, error)
}
