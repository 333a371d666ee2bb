package text

import (
	"strings"
	"unicode"
)

// IsEmpty returns true if text has no characters
func IsEmpty(text string) bool {
	return len(text) == 0
}

// IsBlank returns true if text is empty or consists of white spaces only
func IsBlank(text string) bool {
	for _, r := range text {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Trim removes leading and trailing white spaces
func Trim(text string) string {
	return strings.TrimSpace(text)
}

// EqualFoldTrim compares trimmed texts ignoring case
func EqualFoldTrim(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
