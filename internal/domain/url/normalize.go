// Package url provides URL manipulation utilities for the browser.
package url

import (
	"strings"
)

// Normalize adds https:// prefix if missing for URL-like inputs.
// Returns the input unchanged if it already has a scheme or doesn't look like a URL.
func Normalize(input string) string {
	if !LooksLikeURL(input) || hasKnownScheme(input) {
		return input
	}
	return "https://" + input
}

// LooksLikeURL checks if the input appears to be a URL rather than free text.
// Returns true for strings like "github.com", "google.com/search", etc.
func LooksLikeURL(input string) bool {
	if input == "" {
		return false
	}

	if hasKnownScheme(input) {
		return true
	}

	// Contains a dot and no spaces = likely a URL
	return strings.Contains(input, ".") && !strings.Contains(input, " ")
}

func hasKnownScheme(input string) bool {
	switch {
	case strings.HasPrefix(input, "http://"):
		return true
	case strings.HasPrefix(input, "https://"):
		return true
	case strings.HasPrefix(input, "file://"):
		return true
	case strings.HasPrefix(input, "about:"):
		return true
	}
	return false
}
