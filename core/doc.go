// ABOUTME: Package documentation for the core business logic
// ABOUTME: Lists the core sub-packages

// Package core contains the business logic for the Clipper API.
// It is framework-agnostic and can be used independently of any web
// framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (Clipped, ClippedIndicator, SearchResult, Theme)
// - clip: Indicator matching and the per-owner clip service
// - search: Article search against an RSS news provider
// - theme: Per-owner theme selection
// - constants: Read-only component and screen constants
// - router: The table of navigable screens
// - screen: Screens rendered as JSON view models
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, storage, HTTP, logger)
//
// # Design Principles
//
// - No web framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    Cache:      cache,
//	    HTTPClient: httpClient,
//	    Logger:     logger,
//	}
//
//	searchService := search.NewSearchService(deps, search.Options{})
//	clipService := clip.NewClipService(storage, logger)
//
//	result, err := searchService.SearchArticles(ctx, "golang", 1, 20)
//	annotated, err := clipService.Annotate(ctx, "alice", result.Items)
package core
