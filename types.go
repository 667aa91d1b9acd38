package gotabular

import (
	"strings"

	"github.com/reoring/gotabular/datefmt"
)

// DefaultDateFormat is the fixed calendar pattern recognized by inference.
const DefaultDateFormat = datefmt.DefaultFormat

// Kind identifies the primitive interpretation of a column.
type Kind int

const (
	KindString Kind = iota // Identity coercion; the zero descriptor.
	KindNumber
	KindBoolean
	KindDate
)

// String returns the canonical tag for the kind.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindDate:
		return "date"
	default:
		return "string"
	}
}

// DecodeFunc converts one raw cell into its final value. When a column's
// FieldType carries one, it replaces every built-in coercion for that column.
type DecodeFunc func(raw any) (any, error)

// FieldType describes how one column's raw values are interpreted.
//
// The variants are the four primitives (Number, Boolean, String, Date), a
// date configured with an explicit parse pattern, and a custom decoder. At
// most one of DateFormat/Decode is meaningful; Decode wins when both are
// set. The zero FieldType is the String descriptor.
type FieldType struct {
	Kind       Kind
	DateFormat string     // Explicit pattern; meaningful with KindDate only.
	Decode     DecodeFunc // Custom decoder; overrides built-in coercion.
}

// Number returns the numeric descriptor.
func Number() FieldType { return FieldType{Kind: KindNumber} }

// Boolean returns the boolean descriptor.
func Boolean() FieldType { return FieldType{Kind: KindBoolean} }

// String returns the identity descriptor.
func String() FieldType { return FieldType{Kind: KindString} }

// Date returns the date descriptor without an explicit pattern.
func Date() FieldType { return FieldType{Kind: KindDate} }

// Custom returns a descriptor whose cells are produced by fn alone.
func Custom(fn DecodeFunc) FieldType { return FieldType{Decode: fn} }

// Format returns a copy of t carrying an explicit date pattern
// (see datefmt for the token set).
func (t FieldType) Format(pattern string) FieldType {
	t.DateFormat = pattern
	return t
}

// IsCustom reports whether the descriptor carries a custom decoder.
func (t FieldType) IsCustom() bool { return t.Decode != nil }

// Key reduces the descriptor to its canonical, comparable form: "number",
// "boolean", "string", "date", "date:<format>" for a configured date, or
// "custom". Vote tallying and the wire form both build on it.
func (t FieldType) Key() string {
	if t.Decode != nil {
		return "custom"
	}
	if t.Kind == KindDate && t.DateFormat != "" {
		return "date:" + t.DateFormat
	}
	return t.Kind.String()
}

// ParseKey reconstructs a descriptor from a canonical key produced by Key.
// Unknown keys yield the String descriptor.
func ParseKey(key string) FieldType {
	if format, ok := strings.CutPrefix(key, "date:"); ok {
		return Date().Format(format)
	}
	switch key {
	case "number":
		return Number()
	case "boolean":
		return Boolean()
	case "date":
		return Date()
	default:
		return String()
	}
}

// TypeMap assigns a FieldType to every column of a dataset. Keys are column
// names (possibly dotted paths). A TypeMap handed to ParseDataset is treated
// as immutable and comes back in the Result for reuse.
type TypeMap map[string]FieldType

// ParseOpt bundles parsing options.
type ParseOpt struct {
	// Parallelism caps the number of rows converted concurrently.
	// Values below 2 keep the whole parse on the calling goroutine.
	Parallelism int
}
