package gotabular

import "strings"

// Record is one raw row: field path -> raw value. Keys may be dotted to
// address nested maps; values may be scalars, date instances, or nested
// structures as a source decoder produced them.
type Record map[string]any

// Dataset is an ordered sequence of raw records. Order and length are
// significant and preserved end-to-end.
type Dataset []Record

// Row is one parsed row. It carries exactly the key set of the TypeMap it
// was parsed with; nil marks a cell that was absent or failed conversion.
type Row map[string]any

// lookupPath resolves a column path against a record. A literal key wins;
// otherwise a dotted path walks nested maps. The boolean reports presence.
func lookupPath(rec Record, path string) (any, bool) {
	if v, ok := rec[path]; ok {
		return v, true
	}
	if !strings.Contains(path, ".") {
		return nil, false
	}
	var cur any = map[string]any(rec)
	for _, seg := range strings.Split(path, ".") {
		m, ok := asMap(cur)
		if !ok {
			return nil, false
		}
		if cur, ok = m[seg]; !ok {
			return nil, false
		}
	}
	return cur, true
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Record:
		return m, true
	}
	return nil, false
}
