package domain

import (
	"strings"
)

// NormalizeText prepares text for lookup keys and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
//
// Diacritics, hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	// Compress multiple spaces into one.
	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CleanWord strips leading and trailing non-word characters from a token.
// Word characters are ASCII letters, digits and underscore, matching the
// boundary rules used for vocabulary anchoring.
func CleanWord(token string) string {
	start, end := 0, len(token)
	for start < end && !isWordByte(token[start]) {
		start++
	}
	for end > start && !isWordByte(token[end-1]) {
		end--
	}
	return token[start:end]
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
