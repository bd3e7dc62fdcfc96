package messages

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"
)

var placeholderRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// render substitutes %{name} placeholders. Unknown placeholders are kept.
func render(tmpl string, values map[string]any) string {
	if !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if v, ok := values[name]; ok {
			return formatValue(v)
		}
		return match
	})
}

// formatValue renders lists as comma-separated items and times as RFC 3339.
func formatValue(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, ", ")
	case time.Time:
		return v.Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		items := make([]string, rv.Len())
		for i := range items {
			items[i] = formatValue(rv.Index(i).Interface())
		}
		return strings.Join(items, ", ")
	}
	return fmt.Sprint(v)
}
