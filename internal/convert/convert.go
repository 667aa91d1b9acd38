// Package convert holds the duck-typed coercions shared by type inference
// and dataset parsing. Every function reports failure through an error
// instead of panicking; callers decide how a failed cell is represented.
package convert

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order when a date column has no explicit format.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

var truthy = map[string]struct{}{
	"true": {}, "t": {}, "yes": {}, "y": {}, "1": {},
}

var falsy = map[string]struct{}{
	"false": {}, "f": {}, "no": {}, "n": {}, "0": {},
}

// IsNumber reports whether v already is a numeric value. Strings are not
// numbers here; reinterpretation is the caller's business.
func IsNumber(v any) bool {
	switch v.(type) {
	case float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		json.Number:
		return true
	}
	return false
}

// ToNumber coerces v into a float64. Booleans map to 1 and 0; strings are
// parsed as decimal numbers after trimming.
func ToNumber(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int16:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint:
		return float64(n), nil
	case uint8:
		return float64(n), nil
	case uint16:
		return float64(n), nil
	case uint32:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	case bool:
		if n {
			return 1, nil
		}
		return 0, nil
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, fmt.Errorf("convert: empty string is not a number")
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, err
		}
		return f, nil
	default:
		return 0, fmt.Errorf("convert: cannot interpret %T as number", v)
	}
}

// ToBool coerces v into a bool. Numbers map zero/non-zero; strings go
// through the usual truthy/falsy spellings (case-insensitive, trimmed).
func ToBool(v any) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		s := strings.ToLower(strings.TrimSpace(b))
		if _, ok := truthy[s]; ok {
			return true, nil
		}
		if _, ok := falsy[s]; ok {
			return false, nil
		}
		return false, fmt.Errorf("convert: %q is not a boolean", b)
	default:
		if IsNumber(v) {
			if f, err := ToNumber(v); err == nil {
				return f != 0, nil
			}
		}
		return false, fmt.Errorf("convert: cannot interpret %T as boolean", v)
	}
}

// ToTime coerces v into a UTC time. Strings are tried against RFC3339 and
// the common calendar layouts; numeric values are Unix milliseconds.
func ToTime(v any) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		return d.UTC(), nil
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return time.Time{}, fmt.Errorf("convert: empty string is not a date")
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC(), nil
			}
		}
		return time.Time{}, fmt.Errorf("convert: %q is not a recognized date", d)
	default:
		if IsNumber(v) {
			if f, err := ToNumber(v); err == nil {
				return time.UnixMilli(int64(f)).UTC(), nil
			}
		}
		return time.Time{}, fmt.Errorf("convert: cannot interpret %T as date", v)
	}
}
