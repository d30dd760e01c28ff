package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FormatValue renders a decoded JSON value as display text: nil becomes
// empty, booleans become Yes/No, lists are comma-joined, objects are
// compact JSON with sorted keys, numbers print verbatim.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case bool:
		if val {
			return "Yes"
		}
		return "No"
	case string:
		return val
	case json.Number:
		return val.String()
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, FormatValue(item))
		}
		return strings.Join(parts, ", ")
	case map[string]any:
		b, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(b)
	default:
		return fmt.Sprint(val)
	}
}

// FirstPresent returns the first non-empty value among the candidate keys.
func FirstPresent(entry map[string]any, keys []string) any {
	for _, key := range keys {
		if value, ok := entry[key]; ok && !isEmpty(value) {
			return value
		}
	}
	return nil
}

// NormalizeRGB canonicalizes an RGB string to six uppercase hex digits.
// Leading hashes are stripped and 3-digit shorthand is expanded; anything
// else yields an empty string.
func NormalizeRGB(value string) string {
	rgb := strings.TrimLeft(strings.TrimSpace(value), "#")
	if len(rgb) == 3 {
		var expanded strings.Builder
		for _, ch := range rgb {
			expanded.WriteRune(ch)
			expanded.WriteRune(ch)
		}
		rgb = expanded.String()
	}
	if len(rgb) != 6 {
		return ""
	}
	for _, ch := range rgb {
		if !isHexDigit(ch) {
			return ""
		}
	}
	return strings.ToUpper(rgb)
}

func isHexDigit(ch rune) bool {
	switch {
	case ch >= '0' && ch <= '9':
		return true
	case ch >= 'a' && ch <= 'f':
		return true
	case ch >= 'A' && ch <= 'F':
		return true
	}
	return false
}

func isEmpty(v any) bool {
	return v == nil || v == ""
}
