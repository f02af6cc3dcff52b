package lint

// GetOption extracts a typed option, falling back to defaultVal when the
// key is absent or holds a value of another type.
func GetOption[T any](opts map[string]any, key string, defaultVal T) T {
	v, ok := opts[key]
	if !ok {
		return defaultVal
	}
	typed, ok := v.(T)
	if !ok {
		return defaultVal
	}
	return typed
}

// GetStringOption extracts a string option.
func GetStringOption(opts map[string]any, key string, defaultVal string) string {
	return GetOption(opts, key, defaultVal)
}

// GetBoolOption extracts a bool option.
func GetBoolOption(opts map[string]any, key string, defaultVal bool) bool {
	return GetOption(opts, key, defaultVal)
}

// GetIntOption extracts an int option. YAML and JSON decoders may hand
// integers over as float64 or int64, so those are coerced.
func GetIntOption(opts map[string]any, key string, defaultVal int) int {
	switch n := opts[key].(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return defaultVal
}

// GetStringSliceOption extracts a string slice option. Decoded config
// often arrives as []any; non-string elements are dropped.
func GetStringSliceOption(opts map[string]any, key string, defaultVal []string) []string {
	switch s := opts[key].(type) {
	case []string:
		return s
	case []any:
		result := make([]string, 0, len(s))
		for _, item := range s {
			if str, ok := item.(string); ok {
				result = append(result, str)
			}
		}
		return result
	}
	return defaultVal
}
