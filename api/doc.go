// ABOUTME: Package documentation for the HTTP API layer
// ABOUTME: Describes the huma setup and handler layout

// Package api provides the HTTP API layer for the Clipper application.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Key Features
//
// The JSON spec is served at /openapi.json and interactive docs at /docs.
// Request validation comes from struct tags:
//
//	type ClipRequest struct {
//	    ID        string `json:"id" minLength:"1"`
//	    Publisher string `json:"publisher" minLength:"1"`
//	}
//
// Feature flags travel in the request context. Rate limiting and the
// /metrics endpoint only take effect while their flags are on.
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:  logger,
//	    Flags:   flags,
//	    Limiter: middleware.NewRateLimiter(100, time.Minute),
//	})
//
//	handlers.NewClipHandler(clipService).RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8080", router)
//
// # Error Handling
//
// Errors use the RFC 7807 problem format:
//
//	{
//	    "status": 404,
//	    "title": "Not Found",
//	    "detail": "clip not found: daily.example.com/a1"
//	}
//
// Domain errors are mapped to HTTP status codes in handlers/errors.go.
package api
