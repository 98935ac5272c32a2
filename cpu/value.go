package cpu

import (
	"strconv"
	"strings"
)

// ValueKind is the variant tag of a generic register value.
type ValueKind int

//go:generate go tool stringer -linecomment -type=ValueKind
const (
	VALUE_EMPTY   = ValueKind(0) // empty
	VALUE_INTEGER = ValueKind(1) // integer
	VALUE_TEXT    = ValueKind(2) // text
	VALUE_BOOLEAN = ValueKind(3) // boolean
)

// Value is the generic facet of a register.
type Value struct {
	Kind    ValueKind
	Integer int64
	Text    string
	Boolean bool
}

// Empty is the value read from an unknown register.
var Empty = Value{}

// Integer creates an integer value.
func Integer(v int64) Value {
	return Value{Kind: VALUE_INTEGER, Integer: v}
}

// Text creates a text value.
func Text(s string) Value {
	return Value{Kind: VALUE_TEXT, Text: s}
}

// Boolean creates a boolean value.
func Boolean(b bool) Value {
	return Value{Kind: VALUE_BOOLEAN, Boolean: b}
}

// IsEmpty returns true for the empty variant.
func (v Value) IsEmpty() bool {
	return v.Kind == VALUE_EMPTY
}

// Equal compares two values. Values of different kinds are never equal;
// two empty values are.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}

	switch v.Kind {
	case VALUE_INTEGER:
		return v.Integer == o.Integer
	case VALUE_TEXT:
		return v.Text == o.Text
	case VALUE_BOOLEAN:
		return v.Boolean == o.Boolean
	}

	return true
}

// AsBool interprets the value as a boolean: boolean values directly, text
// values spelled true or false in any case.
func (v Value) AsBool() (b bool, ok bool) {
	switch v.Kind {
	case VALUE_BOOLEAN:
		return v.Boolean, true
	case VALUE_TEXT:
		text := strings.TrimSpace(v.Text)
		switch {
		case strings.EqualFold(text, "true"):
			return true, true
		case strings.EqualFold(text, "false"):
			return false, true
		}
	}

	return
}

// String renders the value as program output.
func (v Value) String() string {
	switch v.Kind {
	case VALUE_INTEGER:
		return strconv.FormatInt(v.Integer, 10)
	case VALUE_TEXT:
		return v.Text
	case VALUE_BOOLEAN:
		if v.Boolean {
			return "True"
		}
		return "False"
	}

	return ""
}
