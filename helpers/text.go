package helpers

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var multiSpaceRegex = regexp.MustCompile(`\s+`)

// NormalizeText collapses runs of whitespace, trims, and converts the
// result to Unicode NFC so decomposed accents compare equal.
func NormalizeText(s string) string {
	if s == "" {
		return ""
	}
	s = multiSpaceRegex.ReplaceAllString(s, " ")
	return norm.NFC.String(strings.TrimSpace(s))
}

// TruncateText truncates text to at most maxLen runes, adding an ellipsis
// if needed.
func TruncateText(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}

	// Try to truncate at a word boundary
	truncated := string(runes[:maxLen-3])
	lastSpace := strings.LastIndex(truncated, " ")
	if lastSpace > len(truncated)/2 {
		truncated = truncated[:lastSpace]
	}

	return truncated + "..."
}
