// internal/normalize/fields.go
package normalize

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Table maps a canonical field name to its candidate locations in a payload,
// most preferred first. A location is a dotted path into nested objects.
type Table map[string][]string

type Shape int

const (
	ShapeUnknown Shape = iota
	ShapeFlat
	ShapeNested
)

func (s Shape) String() string {
	switch s {
	case ShapeFlat:
		return "flat"
	case ShapeNested:
		return "nested"
	default:
		return "unknown"
	}
}

// DetectShape classifies obj by its discriminating fields: a flat field wins
// over a nested container.
func DetectShape(obj map[string]any, flatKey, nestedKey string) Shape {
	if v, ok := obj[flatKey]; ok && v != nil {
		return ShapeFlat
	}
	if _, ok := obj[nestedKey].(map[string]any); ok {
		return ShapeNested
	}
	return ShapeUnknown
}

// reader extracts typed values from one payload object through a Table.
// Missing or unconvertible values yield the zero value.
type reader struct {
	obj   map[string]any
	table Table
}

func (r reader) raw(field string) (any, bool) {
	for _, path := range r.table[field] {
		if v, ok := at(r.obj, path); ok {
			return v, true
		}
	}
	return nil, false
}

func (r reader) str(field string) string {
	v, _ := r.raw(field)
	return asString(v)
}

func (r reader) int(field string) int64 {
	v, _ := r.raw(field)
	return asInt(v)
}

func (r reader) float(field string) float64 {
	v, _ := r.raw(field)
	return asFloat(v)
}

func (r reader) bool(field string) bool {
	v, _ := r.raw(field)
	return asBool(v)
}

func (r reader) time(field string) time.Time {
	v, _ := r.raw(field)
	return asTime(v)
}

func at(obj map[string]any, path string) (any, bool) {
	cur := any(obj)
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[part]
		if !ok || cur == nil {
			return nil, false
		}
	}
	return cur, true
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func asFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case json.Number:
		f, _ := t.Float64()
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func asInt(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64); err == nil {
			return n
		}
	}
	return int64(asFloat(v))
}

func asBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "1", "yes", "y", "completed", "complete":
			return true
		}
		return false
	default:
		return asFloat(v) != 0
	}
}

var timeLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05", "2006-01-02"}

func asTime(v any) time.Time {
	s := asString(v)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
