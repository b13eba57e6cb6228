package enrich

import (
	"strconv"
	"strings"
)

// text renders a decoded JSON value as a trimmed string. Zero values
// (nil, "", 0, false) render as "".
func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		if t == 0 {
			return ""
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		if t == 0 {
			return ""
		}
		return strconv.Itoa(t)
	case int64:
		if t == 0 {
			return ""
		}
		return strconv.FormatInt(t, 10)
	case uint:
		if t == 0 {
			return ""
		}
		return strconv.FormatUint(uint64(t), 10)
	case bool:
		return ""
	default:
		return ""
	}
}

// firstOf returns the first non-empty value among keys.
func firstOf(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := text(raw[k]); s != "" {
			return s
		}
	}
	return ""
}
