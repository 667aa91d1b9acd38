package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	gotabular "github.com/reoring/gotabular"
)

// YAMLBytes decodes a YAML stream into a Dataset. Each mapping document is
// one record; a sequence document contributes its mapping elements in
// order. Empty documents are skipped.
func YAMLBytes(data []byte) (gotabular.Dataset, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	ds := gotabular.Dataset{}
	for {
		var node any
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("source: decoding YAML dataset: %w", err)
		}
		switch t := node.(type) {
		case nil:
			continue
		case []any:
			part, err := fromSlice(t)
			if err != nil {
				return nil, err
			}
			ds = append(ds, part...)
		default:
			m, ok := normalizeMap(node)
			if !ok {
				return nil, fmt.Errorf("source: YAML document is neither a mapping nor a sequence")
			}
			ds = append(ds, gotabular.Record(m))
		}
	}
	return ds, nil
}
