package xsdtypes

import (
	"strconv"

	"github.com/wt/xsd-types/internal/lexical"
)

// Boolean is an xsd:boolean value.
type Boolean bool

// ParseBoolean parses an xsd:boolean literal. The lexical space admits
// "true", "false", "1", and "0"; the canonical form uses the words.
func ParseBoolean(s string) (Boolean, error) {
	v, err := lexical.ParseBoolean(s)
	if err != nil {
		return false, wrapLexical(XSDBoolean, s, err)
	}
	return Boolean(v), nil
}

// Datatype returns XSDBoolean.
func (x Boolean) Datatype() Datatype {
	return XSDBoolean
}

// Canonical returns "true" or "false".
func (x Boolean) Canonical() string {
	return strconv.FormatBool(bool(x))
}

func (x Boolean) String() string {
	return x.Canonical()
}

// Bool returns the value as a native bool.
func (x Boolean) Bool() bool {
	return bool(x)
}
