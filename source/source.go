// Package source decodes external representations (JSON, YAML, CSV) into
// gotabular Datasets. Decoding stops at the transport: every cell keeps the
// shape the decoder gave it, and all typing is left to inference and
// parsing.
package source

// normalizeValue converts decoder output (which may contain map[any]any
// from YAML) into JSON-like values recursively.
func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		m, _ := normalizeMap(t)
		return m
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = normalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}

// normalizeMap converts a decoded mapping into map[string]any. Non-map
// input reports false; non-string keys are dropped.
func normalizeMap(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeValue(vv)
		}
		return out, true
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				continue
			}
			out[ks] = normalizeValue(vv)
		}
		return out, true
	default:
		return nil, false
	}
}
