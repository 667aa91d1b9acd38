package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	gotabular "github.com/reoring/gotabular"
)

// CSVReader reads a header row plus data rows into a Dataset. Every cell
// stays a string; pair with non-strict inference to recover numbers and
// booleans. A short row leaves its trailing columns absent rather than
// empty.
func CSVReader(r io.Reader) (gotabular.Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return gotabular.Dataset{}, nil
		}
		return nil, fmt.Errorf("source: reading CSV header: %w", err)
	}

	ds := gotabular.Dataset{}
	for {
		cells, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("source: reading CSV row %d: %w", len(ds)+1, err)
		}
		rec := make(gotabular.Record, len(header))
		for i, column := range header {
			if i < len(cells) {
				rec[column] = cells[i]
			}
		}
		ds = append(ds, rec)
	}
	return ds, nil
}
