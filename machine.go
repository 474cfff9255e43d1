package xsdtypes

import (
	"strconv"

	"github.com/wt/xsd-types/internal/lexical"
)

// The fixed-width rungs of the integer lattice are defined machine types.
// Their lexical grammar is the integer grammar; the width bound is a
// value-space constraint, so an in-grammar literal outside the width
// fails with a RangeError carrying the full value.

// Long is an xsd:long value, a 64-bit signed integer.
type Long int64

// Int is an xsd:int value, a 32-bit signed integer.
type Int int32

// Short is an xsd:short value, a 16-bit signed integer.
type Short int16

// Byte is an xsd:byte value, an 8-bit signed integer.
type Byte int8

// UnsignedLong is an xsd:unsignedLong value, a 64-bit unsigned integer.
type UnsignedLong uint64

// UnsignedInt is an xsd:unsignedInt value, a 32-bit unsigned integer.
type UnsignedInt uint32

// UnsignedShort is an xsd:unsignedShort value, a 16-bit unsigned integer.
type UnsignedShort uint16

// UnsignedByte is an xsd:unsignedByte value, an 8-bit unsigned integer.
type UnsignedByte uint8

// ParseLong parses an xsd:long literal.
func ParseLong(s string) (Long, error) {
	f, err := lexical.ParseInteger(s)
	if err != nil {
		return 0, wrapLexical(XSDLong, s, err)
	}
	return integerFromForm(f).Long()
}

// ParseInt parses an xsd:int literal.
func ParseInt(s string) (Int, error) {
	f, err := lexical.ParseInteger(s)
	if err != nil {
		return 0, wrapLexical(XSDInt, s, err)
	}
	return integerFromForm(f).Int()
}

// ParseShort parses an xsd:short literal.
func ParseShort(s string) (Short, error) {
	f, err := lexical.ParseInteger(s)
	if err != nil {
		return 0, wrapLexical(XSDShort, s, err)
	}
	return integerFromForm(f).Short()
}

// ParseByte parses an xsd:byte literal.
func ParseByte(s string) (Byte, error) {
	f, err := lexical.ParseInteger(s)
	if err != nil {
		return 0, wrapLexical(XSDByte, s, err)
	}
	return integerFromForm(f).Byte()
}

// ParseUnsignedLong parses an xsd:unsignedLong literal.
func ParseUnsignedLong(s string) (UnsignedLong, error) {
	f, err := lexical.ParseNonNegativeInteger(s)
	if err != nil {
		return 0, wrapLexical(XSDUnsignedLong, s, err)
	}
	return integerFromForm(f).UnsignedLong()
}

// ParseUnsignedInt parses an xsd:unsignedInt literal.
func ParseUnsignedInt(s string) (UnsignedInt, error) {
	f, err := lexical.ParseNonNegativeInteger(s)
	if err != nil {
		return 0, wrapLexical(XSDUnsignedInt, s, err)
	}
	return integerFromForm(f).UnsignedInt()
}

// ParseUnsignedShort parses an xsd:unsignedShort literal.
func ParseUnsignedShort(s string) (UnsignedShort, error) {
	f, err := lexical.ParseNonNegativeInteger(s)
	if err != nil {
		return 0, wrapLexical(XSDUnsignedShort, s, err)
	}
	return integerFromForm(f).UnsignedShort()
}

// ParseUnsignedByte parses an xsd:unsignedByte literal.
func ParseUnsignedByte(s string) (UnsignedByte, error) {
	f, err := lexical.ParseNonNegativeInteger(s)
	if err != nil {
		return 0, wrapLexical(XSDUnsignedByte, s, err)
	}
	return integerFromForm(f).UnsignedByte()
}

// Datatype returns the narrowest signed rung containing the value.
func (v Long) Datatype() Datatype { return narrowestSigned64(int64(v)) }

// Canonical returns the canonical lexical representation.
func (v Long) Canonical() string { return strconv.FormatInt(int64(v), 10) }

// Integer widens to Integer.
func (v Long) Integer() Integer { return IntegerFromInt64(int64(v)) }

// Datatype returns the narrowest signed rung containing the value.
func (v Int) Datatype() Datatype { return narrowestSigned64(int64(v)) }

// Canonical returns the canonical lexical representation.
func (v Int) Canonical() string { return strconv.FormatInt(int64(v), 10) }

// Integer widens to Integer.
func (v Int) Integer() Integer { return IntegerFromInt64(int64(v)) }

// Long widens to Long.
func (v Int) Long() Long { return Long(v) }

// Datatype returns the narrowest signed rung containing the value.
func (v Short) Datatype() Datatype { return narrowestSigned64(int64(v)) }

// Canonical returns the canonical lexical representation.
func (v Short) Canonical() string { return strconv.FormatInt(int64(v), 10) }

// Integer widens to Integer.
func (v Short) Integer() Integer { return IntegerFromInt64(int64(v)) }

// Int widens to Int.
func (v Short) Int() Int { return Int(v) }

// Datatype returns the narrowest signed rung containing the value.
func (v Byte) Datatype() Datatype { return narrowestSigned64(int64(v)) }

// Canonical returns the canonical lexical representation.
func (v Byte) Canonical() string { return strconv.FormatInt(int64(v), 10) }

// Integer widens to Integer.
func (v Byte) Integer() Integer { return IntegerFromInt64(int64(v)) }

// Short widens to Short.
func (v Byte) Short() Short { return Short(v) }

// Datatype returns the narrowest unsigned rung containing the value.
func (v UnsignedLong) Datatype() Datatype { return narrowestUnsigned64(uint64(v)) }

// Canonical returns the canonical lexical representation.
func (v UnsignedLong) Canonical() string { return strconv.FormatUint(uint64(v), 10) }

// Integer widens to Integer.
func (v UnsignedLong) Integer() Integer { return IntegerFromUint64(uint64(v)) }

// NonNegative widens to NonNegativeInteger.
func (v UnsignedLong) NonNegative() NonNegativeInteger {
	return NonNegativeIntegerFromUint64(uint64(v))
}

// Datatype returns the narrowest unsigned rung containing the value.
func (v UnsignedInt) Datatype() Datatype { return narrowestUnsigned64(uint64(v)) }

// Canonical returns the canonical lexical representation.
func (v UnsignedInt) Canonical() string { return strconv.FormatUint(uint64(v), 10) }

// Integer widens to Integer.
func (v UnsignedInt) Integer() Integer { return IntegerFromUint64(uint64(v)) }

// UnsignedLong widens to UnsignedLong.
func (v UnsignedInt) UnsignedLong() UnsignedLong { return UnsignedLong(v) }

// Datatype returns the narrowest unsigned rung containing the value.
func (v UnsignedShort) Datatype() Datatype { return narrowestUnsigned64(uint64(v)) }

// Canonical returns the canonical lexical representation.
func (v UnsignedShort) Canonical() string { return strconv.FormatUint(uint64(v), 10) }

// Integer widens to Integer.
func (v UnsignedShort) Integer() Integer { return IntegerFromUint64(uint64(v)) }

// UnsignedInt widens to UnsignedInt.
func (v UnsignedShort) UnsignedInt() UnsignedInt { return UnsignedInt(v) }

// Datatype returns the narrowest unsigned rung containing the value.
func (v UnsignedByte) Datatype() Datatype { return narrowestUnsigned64(uint64(v)) }

// Canonical returns the canonical lexical representation.
func (v UnsignedByte) Canonical() string { return strconv.FormatUint(uint64(v), 10) }

// Integer widens to Integer.
func (v UnsignedByte) Integer() Integer { return IntegerFromUint64(uint64(v)) }

// UnsignedShort widens to UnsignedShort.
func (v UnsignedByte) UnsignedShort() UnsignedShort { return UnsignedShort(v) }
