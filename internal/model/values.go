package model

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Values maps field names to caller-supplied values for one document.
// Canonical entries are strings (text fields, select keys) and string slices
// (multiselect keys, code references); integer-like scalars from decoded JSON
// are tolerated and coerce through their canonical string form. Calculate
// fields must never appear as keys: their value is always derived.
//
// Values are owned by the caller and never retained by the engine.
type Values map[string]any

// StringFor returns the canonical string form of the value stored under name.
// The second result is false when no value is present.
func (v Values) StringFor(name string) (string, bool) {
	raw, ok := v[name]
	if !ok || raw == nil {
		return "", false
	}
	return canonicalString(raw), true
}

// StringsFor returns the value stored under name as a slice of canonical
// strings. A scalar value becomes a one-element slice, matching how the
// upstream pipeline supplies single-entry multiselects.
func (v Values) StringsFor(name string) []string {
	raw, ok := v[name]
	if !ok || raw == nil {
		return nil
	}
	switch val := raw.(type) {
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if item == nil {
				continue
			}
			out = append(out, canonicalString(item))
		}
		return out
	default:
		return []string{canonicalString(raw)}
	}
}

func canonicalString(raw any) string {
	switch val := raw.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		// JSON numbers decode as float64; option keys are integer-like.
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}
