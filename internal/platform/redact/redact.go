// Package redact masks sensitive values before they reach logs.
//
// Matching is by key name, case-insensitively, on the fragments "key",
// "secret", "token", and "password". Redaction happens at the logging
// boundary so call sites never hand-roll their own masking.
package redact

import (
	"encoding/json"
	"strings"
)

// Mask replaces matched values in redacted output.
const Mask = "[REDACTED]"

var sensitiveFragments = []string{"key", "secret", "token", "password"}

// SensitiveKey reports whether a key name looks credential-bearing.
func SensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, fragment := range sensitiveFragments {
		if strings.Contains(lower, fragment) {
			return true
		}
	}
	return false
}

// Value returns a deep copy of v with values under sensitive keys masked.
// Maps and slices are walked recursively; scalars pass through unchanged.
func Value(v any) any {
	switch typed := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			if SensitiveKey(key) {
				out[key] = Mask
				continue
			}
			out[key] = Value(value)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, value := range typed {
			out[i] = Value(value)
		}
		return out
	default:
		return v
	}
}

// JSON redacts a JSON document, returning the masked re-encoding. Input that
// does not parse as JSON is returned unchanged; key-based masking needs
// structure to act on.
func JSON(raw []byte) []byte {
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return raw
	}
	masked, err := json.Marshal(Value(decoded))
	if err != nil {
		return raw
	}
	return masked
}
