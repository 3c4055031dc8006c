// ABOUTME: Key and value checks applied before any SQLite statement runs
// ABOUTME: Statements are always parameterized; odd keys are logged, not rejected

package sqlite

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"scripture-tags/core/interfaces"
)

const (
	maxKeyLength   = 255
	maxValueLength = interfaces.MaxValueSize
)

// suspiciousPatterns never appear in scripture cache keys
var suspiciousPatterns = []string{"--", "/*", "*/", ";", "'", "\"", "\\", "\n", "\r", "\t"}

// ValidateKey rejects keys SQLite cannot store safely and warns on unusual ones
func ValidateKey(key string, logger interfaces.Logger) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}
	if len(key) > maxKeyLength {
		return fmt.Errorf("key too long: max %d characters", maxKeyLength)
	}
	if strings.Contains(key, "\x00") {
		return errors.New("key cannot contain null bytes")
	}

	if logger == nil {
		return nil
	}
	for _, pattern := range suspiciousPatterns {
		if strings.Contains(key, pattern) {
			logger.Warn("Suspicious pattern detected in cache key", map[string]interface{}{
				"pattern":     pattern,
				"key_length":  len(key),
				"key_preview": truncateKey(key),
			})
		}
	}
	return nil
}

// ValidateValue rejects empty and oversized payloads
func ValidateValue(value []byte) error {
	if len(value) == 0 {
		return errors.New("value cannot be empty")
	}
	if len(value) > maxValueLength {
		return fmt.Errorf("value too large: max %d bytes", maxValueLength)
	}
	return nil
}

// truncateKey shortens a key to 50 runes for log output
func truncateKey(key string) string {
	const maxPreview = 50
	if utf8.RuneCountInString(key) <= maxPreview {
		return key
	}
	runes := []rune(key)
	return string(runes[:maxPreview]) + "..."
}
