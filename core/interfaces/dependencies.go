// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the external collaborators shared by the search service

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Cache stores search result lists
	Cache Cache

	// HTTPClient fetches search provider responses
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger
}
