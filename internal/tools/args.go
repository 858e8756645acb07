package tools

import (
	"strconv"
	"strings"
)

// UndefinedSentinel is the placeholder some models emit for parameters the
// user never supplied. It counts as missing.
const UndefinedSentinel = "undefined"

// Args is the merged tool-call argument map of one turn. Values are raw
// JSON-decoded types: string, float64, bool, []any, map[string]any.
type Args map[string]any

// String returns the value under key rendered as a string. Numbers are
// formatted without a trailing ".0"; absent or unsupported types yield "".
func (a Args) String(key string) string {
	switch v := a[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// Int returns the value under key as an int. Strings are parsed by their
// leading digits, so vote winners like "4 people" or "8+ people" resolve.
func (a Args) Int(key string) int {
	switch v := a[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		s := strings.TrimSpace(v)
		end := 0
		for end < len(s) && s[end] >= '0' && s[end] <= '9' {
			end++
		}
		n, err := strconv.Atoi(s[:end])
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// Strings returns the value under key as a string slice.
func (a Args) Strings(key string) []string {
	switch v := a[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// Missing reports which required fields are absent, empty, zero, or the
// literal "undefined" sentinel, in required order.
func (a Args) Missing(required []string) []string {
	var missing []string
	for _, key := range required {
		if a.isMissing(key) {
			missing = append(missing, key)
		}
	}
	return missing
}

func (a Args) isMissing(key string) bool {
	v, ok := a[key]
	if !ok || v == nil {
		return true
	}
	switch val := v.(type) {
	case string:
		return val == "" || val == UndefinedSentinel
	case float64:
		return val == 0
	case int:
		return val == 0
	case bool:
		return !val
	case []any:
		return len(val) == 0
	case []string:
		return len(val) == 0
	default:
		return false
	}
}
