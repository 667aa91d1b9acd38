package source

import (
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"

	gotabular "github.com/reoring/gotabular"
)

// JSONBytes decodes a JSON array of objects into a Dataset.
func JSONBytes(data []byte) (gotabular.Dataset, error) {
	var raw []any
	if err := gojson.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("source: decoding JSON dataset: %w", err)
	}
	return fromSlice(raw)
}

// JSONReader decodes a JSON array of objects from r.
func JSONReader(r io.Reader) (gotabular.Dataset, error) {
	var raw []any
	if err := gojson.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("source: decoding JSON dataset: %w", err)
	}
	return fromSlice(raw)
}

// fromSlice converts decoded elements into records; a non-object element is
// a structural error carrying its index.
func fromSlice(raw []any) (gotabular.Dataset, error) {
	ds := make(gotabular.Dataset, 0, len(raw))
	for i, el := range raw {
		m, ok := normalizeMap(el)
		if !ok {
			return nil, fmt.Errorf("source: element %d is not an object", i)
		}
		ds = append(ds, gotabular.Record(m))
	}
	return ds, nil
}
