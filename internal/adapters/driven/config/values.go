// Package config holds helpers shared by the configuration store adapters.
package config

// Values is a flat, dot-keyed configuration map with lenient typed access.
// Every accessor returns the zero value when the key is missing or holds
// an incompatible type.
type Values map[string]any

// String returns the string stored under key.
func (v Values) String(key string) string {
	s, _ := v[key].(string)
	return s
}

// Int returns the integer stored under key.
// TOML decodes integers as int64; whole floats are truncated.
func (v Values) Int(key string) int {
	switch n := v[key].(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}

// Float returns the number stored under key, widening integers.
func (v Values) Float(key string) float64 {
	switch n := v[key].(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}

// Bool returns the boolean stored under key.
func (v Values) Bool(key string) bool {
	b, _ := v[key].(bool)
	return b
}

// StringSlice returns the strings stored under key.
// Non-string items of a decoded TOML array are dropped.
func (v Values) StringSlice(key string) []string {
	switch items := v[key].(type) {
	case []string:
		return items
	case []any:
		out := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
