// ABOUTME: Input validation for SQLite clip storage keys
// ABOUTME: Rejects oversized or null-byte keys and logs suspicious SQL fragments

package sqlite

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"clipper-app-api/core/domain"
	"clipper-app-api/core/errors"
	"clipper-app-api/core/interfaces"
)

var suspiciousPatterns = []string{"--", "/*", "*/", ";", "'", "\"", "\\"}

// ValidateKey checks a key column value. Queries are parameterized, so suspicious
// fragments are only logged.
func ValidateKey(field, value string, logger interfaces.Logger) error {
	if utf8.RuneCountInString(value) > domain.MaxKeyLength {
		return errors.NewValidation(field, fmt.Sprintf("cannot exceed %d characters", domain.MaxKeyLength))
	}

	if strings.Contains(value, "\x00") {
		return errors.NewValidation(field, "cannot contain null bytes")
	}

	if logger == nil {
		return nil
	}

	for _, pattern := range suspiciousPatterns {
		if strings.Contains(value, pattern) {
			logger.Warn("Suspicious pattern detected in clip key", map[string]interface{}{
				"field":         field,
				"pattern":       pattern,
				"value_length":  len(value),
				"value_preview": preview(value),
			})
		}
	}

	return nil
}

// preview returns a bounded prefix of value for logging
func preview(value string) string {
	const maxPreview = 50
	if len(value) <= maxPreview {
		return value
	}
	return value[:maxPreview] + "..."
}
