package errors

import (
	"strings"
	"unicode"
)

// Depth bounds accepted by [ValidateDepth].
const (
	MinDepth = 1
	MaxDepth = 10
)

// ValidatePackageName checks that name looks like a Maven coordinate.
// Only the presence of a colon is enforced here; the exact
// "groupId:artifactId" split is checked when the coordinate is parsed.
func ValidatePackageName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidConfig, "package name is not set")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "package name contains invalid control characters")
		}
	}
	if !strings.Contains(name, ":") {
		return New(ErrCodeInvalidConfig, "package name must have the form groupId:artifactId")
	}
	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidConfig, "repository URL is not set")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidConfig, "repository URL must start with http:// or https://")
	}

	return nil
}

// ValidateDepth checks that depth lies within [MinDepth, MaxDepth].
func ValidateDepth(depth int) error {
	switch {
	case depth < MinDepth:
		return New(ErrCodeInvalidConfig, "max dependency depth must be positive")
	case depth > MaxDepth:
		return New(ErrCodeInvalidConfig, "max dependency depth cannot exceed %d", MaxDepth)
	}
	return nil
}
