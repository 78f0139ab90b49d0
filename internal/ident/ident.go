// Package ident holds small helpers for the identifiers appearing in emitted
// source: bare-key detection, quoting, and type-alias derivation.
package ident

import "strings"

// fallbackAlias is used when stripping the "Schema" suffix leaves nothing.
const fallbackAlias = "FormValues"

// IsBare reports whether name can appear unquoted as an object key in the
// emitted source: a letter, `_` or `$` followed by letters, digits, `_` or `$`.
func IsBare(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_', r == '$':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// QuoteKey returns name as-is when it is a bare identifier, otherwise as a
// double-quoted string with backslashes and quotes escaped.
func QuoteKey(name string) string {
	if IsBare(name) {
		return name
	}
	escaped := strings.ReplaceAll(name, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	return `"` + escaped + `"`
}

// TypeAlias derives a type-alias name from a schema identifier by stripping a
// trailing case-insensitive "Schema" suffix and capitalizing the first
// letter: "profileSchema" -> "Profile". When nothing remains after stripping,
// a fixed generic name is returned.
func TypeAlias(identifier string) string {
	trimmed := identifier
	if len(trimmed) >= len("schema") && strings.EqualFold(trimmed[len(trimmed)-len("schema"):], "schema") {
		trimmed = trimmed[:len(trimmed)-len("schema")]
	}
	if trimmed == "" {
		return fallbackAlias
	}
	return UpperFirst(trimmed)
}

// UpperFirst capitalizes the first byte of s.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// LowerFirst lowercases the first byte of s.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
