// ABOUTME: Structured logger contract used across the application
// ABOUTME: Fields are passed as a map
package interfaces

// Logger is the structured logger used throughout the application.
// The production implementation is backed by zap.
//
// Example usage:
//
//	logger.Info("Article clipped", map[string]interface{}{
//		"owner":     "owner-1",
//		"publisher": "example.com",
//		"id":        "a1",
//	})
//
//	logger.Error("Search provider failed", map[string]interface{}{
//		"query": "golang",
//		"error": err.Error(),
//	})
type Logger interface {
	// Debug logs detailed troubleshooting information.
	Debug(msg string, fields map[string]interface{})

	// Info logs general informational messages.
	Info(msg string, fields map[string]interface{})

	// Warn logs potential issues that don't prevent operation.
	Warn(msg string, fields map[string]interface{})

	// Error logs failures that need attention.
	Error(msg string, fields map[string]interface{})
}
