package gotabular

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/reoring/gotabular/i18n"
)

// Cell error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidNumber   = "invalid_number"
	CodeInvalidBool     = "invalid_bool"
	CodeInvalidDate     = "invalid_date"
	CodeInvalidFormat   = "invalid_format"
	CodeDecodeFailed    = "decode_failed"
	CodeNotSerializable = "not_serializable"
)

// FieldError records a single cell that failed coercion or validation.
// Failures are data: the parser returns these inside the Result instead of
// aborting the batch.
type FieldError struct {
	Column  string `json:"column"`          // Column name as written in the TypeMap.
	Row     int    `json:"rowIndex"`        // Zero-based row index in the input dataset.
	Code    string `json:"code"`            // One of the codes listed above.
	Message string `json:"message"`
	Cause   error  `json:"-"`               // Optional: underlying error.
	Value   any    `json:"value,omitempty"` // The offending raw value.
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s at row %d column %q: %s", e.Code, e.Row, e.Column, e.Message)
}

// Unwrap exposes the underlying cause to errors.Is/errors.As.
func (e FieldError) Unwrap() error { return e.Cause }

// RowErrors groups the failing cells of one row, keyed by column.
type RowErrors struct {
	Row    int                   `json:"rowIndex"`
	Fields map[string]FieldError `json:"errors"`
}

// ErrorList is the per-row error report of a parse, ordered by row index.
// It implements error so callers may propagate it, but ParseDataset itself
// never returns it as one.
type ErrorList []RowErrors

// Error summarizes the first few failing cells.
func (el ErrorList) Error() string {
	if len(el) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	total := 0
	shown := 0
	for _, re := range el {
		cols := make([]string, 0, len(re.Fields))
		for col := range re.Fields {
			cols = append(cols, col)
		}
		sort.Strings(cols)
		for _, col := range cols {
			total++
			if shown < maxShown {
				if shown > 0 {
					b.WriteString("; ")
				}
				fmt.Fprintf(b, "%s at row %d column %q", re.Fields[col].Code, re.Row, col)
				shown++
			}
		}
	}
	if total > shown {
		fmt.Fprintf(b, "; ... (total %d)", total)
	}
	return b.String()
}

// AppendFieldError records fe under its column, initializing the map when
// needed.
func AppendFieldError(dst map[string]FieldError, fe FieldError) map[string]FieldError {
	if dst == nil {
		dst = map[string]FieldError{}
	}
	dst[fe.Column] = fe
	return dst
}

// AsErrorList extracts an ErrorList from an error using errors.As internally.
func AsErrorList(err error) (ErrorList, bool) {
	if err == nil {
		return nil, false
	}
	var el ErrorList
	if errors.As(err, &el) {
		return el, true
	}
	return nil, false
}

// fieldError builds a FieldError whose message comes from the current
// translator.
func fieldError(column string, row int, code string, raw any, cause error) FieldError {
	return FieldError{
		Column:  column,
		Row:     row,
		Code:    code,
		Message: i18n.T(code, map[string]string{"column": column}),
		Cause:   cause,
		Value:   raw,
	}
}
