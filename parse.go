package gotabular

import (
	"errors"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/reoring/gotabular/datefmt"
	"github.com/reoring/gotabular/internal/convert"
)

// Result is the parser output triple: the typed dataset, the TypeMap that
// produced it, and the per-row error report.
type Result struct {
	Dataset []Row     `json:"dataset"`
	Types   TypeMap   `json:"dataTypes"`
	Errors  ErrorList `json:"errors"`
}

// ParseDataset converts every record of data into a typed Row.
//
// A nil types map defaults to InferTypes(data, false). Failures never abort
// the batch: a cell that cannot be converted becomes nil and is recorded in
// the Result's ErrorList under its row index and column. The output dataset
// has the same length and order as the input, every Row carries exactly the
// TypeMap's key set, and the call never panics and never returns an error
// value. Missing and null cells stay nil without an error entry.
func ParseDataset(data Dataset, types TypeMap, opts ...ParseOpt) Result {
	if types == nil {
		types = InferTypes(data, false)
	}
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[0]
	}
	return parseRows(data, types, opt)
}

// parseRows builds one reusable reader per column, then applies the whole
// reader table to every row. The table is never mutated once built, so rows
// may be converted on any goroutine.
func parseRows(data Dataset, types TypeMap, opt ParseOpt) Result {
	readers := make([]fieldReader, 0, len(types))
	for column, ft := range types {
		readers = append(readers, newFieldReader(column, ft))
	}

	rows := make([]Row, len(data))
	failed := make([]map[string]FieldError, len(data))
	convertRow := func(i int) {
		row := make(Row, len(readers))
		var cells map[string]FieldError
		for _, rd := range readers {
			v, cerr := rd.read(data[i])
			if cerr != nil {
				cells = AppendFieldError(cells, fieldError(rd.column, i, cerr.code, cerr.raw, cerr.cause))
				row[rd.column] = nil
				continue
			}
			row[rd.column] = v
		}
		rows[i] = row
		failed[i] = cells
	}

	if opt.Parallelism > 1 && len(data) > 1 {
		var g errgroup.Group
		g.SetLimit(opt.Parallelism)
		for i := range data {
			g.Go(func() error {
				convertRow(i)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := range data {
			convertRow(i)
		}
	}

	errs := ErrorList{}
	for i, cells := range failed {
		if len(cells) > 0 {
			errs = append(errs, RowErrors{Row: i, Fields: cells})
		}
	}
	return Result{Dataset: rows, Types: types, Errors: errs}
}

// cellError is the pre-row form of a cell failure; the row loop stamps the
// row index and resolves the message.
type cellError struct {
	code  string
	cause error
	raw   any
}

// fieldReader converts one column for any row: fetch, format, coerce,
// validate.
type fieldReader struct {
	column string
	typ    FieldType
	format func(any) (any, error) // nil means identity
}

func newFieldReader(column string, ft FieldType) fieldReader {
	rd := fieldReader{column: column, typ: ft}
	switch {
	case ft.Decode != nil:
		rd.format = decodeSafely(ft.Decode)
	case ft.Kind == KindDate && ft.DateFormat != "":
		pattern := ft.DateFormat
		rd.format = func(raw any) (any, error) {
			switch v := raw.(type) {
			case time.Time:
				return v.UTC(), nil
			case string:
				return datefmt.Parse(pattern, v)
			default:
				return nil, fmt.Errorf("cannot parse %T against %q", raw, pattern)
			}
		}
	}
	return rd
}

func (rd fieldReader) read(rec Record) (any, *cellError) {
	raw, ok := lookupPath(rec, rd.column)
	if !ok || raw == nil {
		// Absence is not a conversion failure.
		return nil, nil
	}
	v := raw
	if rd.format != nil {
		out, err := rd.format(v)
		if err != nil {
			code := CodeInvalidDate
			if rd.typ.Decode != nil {
				code = CodeDecodeFailed
			}
			return nil, &cellError{code: code, cause: err, raw: raw}
		}
		v = out
	}
	if rd.typ.Decode != nil {
		// A custom decoder's output is final; no built-in coercion applies.
		return v, nil
	}
	switch rd.typ.Kind {
	case KindNumber:
		n, err := convert.ToNumber(v)
		if err != nil {
			return nil, &cellError{code: CodeInvalidNumber, cause: err, raw: raw}
		}
		if math.IsNaN(n) {
			return nil, &cellError{code: CodeInvalidNumber, cause: errors.New("coerced to NaN"), raw: raw}
		}
		return n, nil
	case KindBoolean:
		b, err := convert.ToBool(v)
		if err != nil {
			return nil, &cellError{code: CodeInvalidBool, cause: err, raw: raw}
		}
		return b, nil
	case KindDate:
		t, err := convert.ToTime(v)
		if err != nil {
			return nil, &cellError{code: CodeInvalidDate, cause: err, raw: raw}
		}
		return t, nil
	default: // KindString: identity
		return v, nil
	}
}

// decodeSafely wraps a user decoder so that a panic marks the cell failed
// instead of unwinding the whole parse.
func decodeSafely(fn DecodeFunc) func(any) (any, error) {
	return func(raw any) (out any, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("decode panic: %v", r)
			}
		}()
		return fn(raw)
	}
}
