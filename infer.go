package gotabular

import (
	"time"

	gojson "github.com/goccy/go-json"

	"github.com/reoring/gotabular/datefmt"
	"github.com/reoring/gotabular/internal/convert"
)

// InferTypes guesses a FieldType for every column appearing in data by a
// majority vote over per-value candidates.
//
// When strict is false, string values are first reinterpreted as JSON
// literals, so "3" votes number and "true" votes boolean; strings that do
// not parse keep their raw form. A string matching DefaultDateFormat votes
// for a date configured with that pattern. Candidates are tallied by their
// canonical Key, so differently configured dates never merge; ties resolve
// to the candidate seen first scanning rows top to bottom. Columns absent
// from a row contribute no candidate for it. A nil or empty dataset infers
// the empty TypeMap.
func InferTypes(data Dataset, strict bool) TypeMap {
	type tally struct {
		counts map[string]int
		order  []string // keys in first-seen order, for tie-breaking
	}
	votes := map[string]*tally{}
	for _, rec := range data {
		for column, raw := range rec {
			key := guessValueType(raw, strict).Key()
			tl := votes[column]
			if tl == nil {
				tl = &tally{counts: map[string]int{}}
				votes[column] = tl
			}
			if _, seen := tl.counts[key]; !seen {
				tl.order = append(tl.order, key)
			}
			tl.counts[key]++
		}
	}

	types := make(TypeMap, len(votes))
	for column, tl := range votes {
		best := tl.order[0]
		for _, key := range tl.order[1:] {
			if tl.counts[key] > tl.counts[best] {
				best = key
			}
		}
		types[column] = ParseKey(best)
	}
	return types
}

// guessValueType produces the candidate descriptor for a single value.
func guessValueType(raw any, strict bool) FieldType {
	v := raw
	if !strict {
		if s, ok := raw.(string); ok {
			var lit any
			if err := gojson.Unmarshal([]byte(s), &lit); err == nil {
				v = lit
			}
		}
	}
	if convert.IsNumber(v) {
		return Number()
	}
	if _, ok := v.(bool); ok {
		return Boolean()
	}
	// Date checks look at the original value, not the reinterpreted one.
	if _, ok := raw.(time.Time); ok {
		return Date()
	}
	if s, ok := raw.(string); ok {
		if _, err := datefmt.Parse(DefaultDateFormat, s); err == nil {
			return Date().Format(DefaultDateFormat)
		}
	}
	return String()
}
