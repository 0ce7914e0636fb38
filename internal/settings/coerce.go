package settings

import (
	"math"
	"strconv"
	"strings"
)

// FormatValue renders a stored configuration value for a widget
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		if val == math.Trunc(val) && math.Abs(val) < 1e15 {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return ""
	}
}

// keepsString reports keys whose values are never turned into numbers
func keepsString(key string) bool {
	return key == KeyCoverSize ||
		strings.Contains(key, "format") ||
		strings.Contains(key, "token") ||
		strings.Contains(key, "path")
}

// Coerce turns an edited string back into a typed value. Picker values "true"
// and "false" become booleans. Numeric strings become numbers unless the key
// holds sizes, formats, tokens or paths, or the value looks like "1:2" or "600x600".
func Coerce(key string, kind FieldKind, raw string) any {
	if kind != KindText && (raw == "true" || raw == "false") {
		return raw == "true"
	}
	if raw == "" || keepsString(key) || strings.ContainsAny(raw, ":x") {
		return raw
	}
	trimmed := strings.TrimSpace(raw)
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return f
	}
	return raw
}

// Serialize coerces every edited field into the update submitted to the backend.
// A boolean picker left unset is omitted so the backend keeps its own value.
func Serialize(fields []Field, values map[string]string) map[string]any {
	update := make(map[string]any, len(values))
	for _, f := range fields {
		raw, ok := values[f.Key]
		if !ok || (f.Kind == KindBoolean && raw == "") {
			continue
		}
		update[f.Key] = Coerce(f.Key, f.Kind, raw)
	}
	return update
}

// Fields flattens the schema
func Fields(sections []Section) []Field {
	var all []Field
	for _, s := range sections {
		all = append(all, s.Fields...)
	}
	return all
}
