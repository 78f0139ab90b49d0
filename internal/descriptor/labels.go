package descriptor

import (
	"regexp"
	"strings"
)

var splitWordsPattern = regexp.MustCompile(`[_\-\s]+`)

// Label converts a field name into a human-friendly label. It splits on
// underscores/dashes, on lowercase-to-uppercase transitions, and on
// acronym-to-word transitions, then capitalizes the first letter of each
// segment while preserving the rest: "firstName" -> "First Name",
// "URLPath" -> "URL Path".
func Label(name string) string {
	if name == "" {
		return ""
	}

	words := splitWordsPattern.Split(name, -1)
	var segments []string
	for _, word := range words {
		if word == "" {
			continue
		}
		for _, part := range splitCamel(word) {
			segments = append(segments, capitalize(part))
		}
	}
	return strings.TrimSpace(strings.Join(segments, " "))
}

func splitCamel(input string) []string {
	runes := []rune(input)
	var parts []string
	start := 0
	for i := 1; i < len(runes); i++ {
		if isBoundary(runes, i) {
			parts = append(parts, string(runes[start:i]))
			start = i
		}
	}
	parts = append(parts, string(runes[start:]))
	return parts
}

func isBoundary(runes []rune, i int) bool {
	prev, cur := runes[i-1], runes[i]
	if isLower(prev) && isUpper(cur) {
		return true
	}
	// Acronym followed by a word: the last capital belongs to the word.
	if isUpper(prev) && isUpper(cur) && i+1 < len(runes) && isLower(runes[i+1]) {
		return true
	}
	if (isLetter(prev) && isDigit(cur)) || (isDigit(prev) && isLetter(cur)) {
		return true
	}
	return false
}

func isUpper(r rune) bool  { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool  { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return isUpper(r) || isLower(r) }

func capitalize(word string) string {
	if word == "" {
		return ""
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
