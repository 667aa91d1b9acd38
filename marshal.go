package gotabular

import (
	"fmt"

	gojson "github.com/goccy/go-json"
)

// fieldTypeWire is the object form of a configured date on the wire.
type fieldTypeWire struct {
	Type       string `json:"type"`
	DateFormat string `json:"dateFormat,omitempty"`
}

// MarshalJSON renders primitives as bare strings ("number") and configured
// dates as {"type":"date","dateFormat":...}. Custom descriptors carry a
// function and have no wire form.
func (t FieldType) MarshalJSON() ([]byte, error) {
	if t.Decode != nil {
		return nil, fmt.Errorf("gotabular: %s: custom descriptors have no wire form", CodeNotSerializable)
	}
	if t.Kind == KindDate && t.DateFormat != "" {
		return gojson.Marshal(fieldTypeWire{Type: t.Kind.String(), DateFormat: t.DateFormat})
	}
	return gojson.Marshal(t.Kind.String())
}

// UnmarshalJSON accepts both shapes produced by MarshalJSON.
func (t *FieldType) UnmarshalJSON(b []byte) error {
	var tag string
	if err := gojson.Unmarshal(b, &tag); err == nil {
		ft, err := fieldTypeForTag(tag)
		if err != nil {
			return err
		}
		*t = ft
		return nil
	}
	var w fieldTypeWire
	if err := gojson.Unmarshal(b, &w); err != nil {
		return fmt.Errorf("gotabular: invalid field type: %w", err)
	}
	ft, err := fieldTypeForTag(w.Type)
	if err != nil {
		return err
	}
	if w.DateFormat != "" {
		if ft.Kind != KindDate {
			return fmt.Errorf("gotabular: %s: dateFormat is only valid for date, got %q", CodeInvalidFormat, w.Type)
		}
		ft = ft.Format(w.DateFormat)
	}
	*t = ft
	return nil
}

func fieldTypeForTag(tag string) (FieldType, error) {
	switch tag {
	case "number":
		return Number(), nil
	case "boolean":
		return Boolean(), nil
	case "string":
		return String(), nil
	case "date":
		return Date(), nil
	}
	return FieldType{}, fmt.Errorf("gotabular: %s: unknown field type %q", CodeInvalidFormat, tag)
}
