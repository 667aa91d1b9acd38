// Package datefmt converts YYYY/MM/DD-style date patterns into Go reference
// layouts and parses values against them.
//
// Recognized tokens: YYYY YY MM M DD D HH H mm m ss s SSS. Any other rune is
// a literal. Parsing is strict: the value must re-render to itself under the
// same pattern, so "2020-1-1" does not satisfy "YYYY-MM-DD". Parsed times
// are UTC instants.
package datefmt

import (
	"fmt"
	"strings"
	"time"
)

// DefaultFormat is the canonical calendar-date pattern.
const DefaultFormat = "YYYY-MM-DD"

// tokens maps pattern tokens to reference-layout fragments. Order matters:
// the scanner takes the longest match first.
var tokens = []struct {
	pat    string
	layout string
}{
	{"YYYY", "2006"},
	{"YY", "06"},
	{"MM", "01"},
	{"M", "1"},
	{"DD", "02"},
	{"D", "2"},
	{"HH", "15"},
	{"H", "15"},
	{"mm", "04"},
	{"m", "4"},
	{"ss", "05"},
	{"s", "5"},
	{"SSS", "000"},
}

// Layout converts a date pattern into a Go reference layout.
func Layout(pattern string) string {
	var b strings.Builder
	i := 0
scan:
	for i < len(pattern) {
		for _, tok := range tokens {
			if strings.HasPrefix(pattern[i:], tok.pat) {
				b.WriteString(tok.layout)
				i += len(tok.pat)
				continue scan
			}
		}
		b.WriteByte(pattern[i])
		i++
	}
	return b.String()
}

// Parse interprets value against pattern and returns the UTC instant.
// The value must round-trip through Format unchanged; calendar validity
// (no February 30th) comes from time.Parse itself.
func Parse(pattern, value string) (time.Time, error) {
	layout := Layout(pattern)
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, err
	}
	t = t.UTC()
	if canonical := t.Format(layout); canonical != value {
		return time.Time{}, fmt.Errorf("datefmt: %q does not match pattern %q (canonical form is %q)", value, pattern, canonical)
	}
	return t, nil
}

// Format renders t, normalized to UTC, using pattern.
func Format(pattern string, t time.Time) string {
	return t.UTC().Format(Layout(pattern))
}
