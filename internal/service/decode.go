package service

import (
	"encoding/json"
	"fmt"
	"strings"
)

// The model output decoders below never return an error: anything that is
// not the expected shape degrades to an empty list so a malformed completion
// can't take down the endpoint that produced a usable primary result.

// decodeNameList parses raw completion text as a JSON object and extracts a
// list of product names, trying the given keys in order. Elements are
// stringified, truncated to maxLen characters, and capped at maxItems.
func decodeNameList(raw string, maxItems, maxLen int, keys ...string) []string {
	var obj map[string]any
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &obj); err != nil {
		return []string{}
	}

	for _, key := range keys {
		values, ok := obj[key].([]any)
		if !ok {
			continue
		}
		return clampNames(values, maxItems, maxLen)
	}
	return []string{}
}

// decodeStringList parses raw completion text as a JSON array of strings.
// Non-array output or any parse failure yields an empty list.
func decodeStringList(raw string) []string {
	var values []any
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &values); err != nil {
		return []string{}
	}

	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, stringify(v))
	}
	return out
}

func clampNames(values []any, maxItems, maxLen int) []string {
	if len(values) > maxItems {
		values = values[:maxItems]
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, truncateRunes(stringify(v), maxLen))
	}
	return out
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// stripCodeFences removes a surrounding markdown code block if the model
// wrapped its JSON in one.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
