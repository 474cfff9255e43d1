package xsdtypes

import (
	"errors"
	"fmt"

	"github.com/wt/xsd-types/internal/lexical"
)

// ErrUnsupported is the sentinel wrapped by UnsupportedError. Datatypes
// the catalog names but the package cannot parse fail with it instead of
// returning a guessed value.
var ErrUnsupported = errors.New("unsupported datatype")

// ErrDivisionByZero reports integer division by zero.
var ErrDivisionByZero = errors.New("division by zero")

// LexicalErrorKind classifies a lexical-space violation.
type LexicalErrorKind uint8

const (
	LexicalInvalid LexicalErrorKind = iota
	LexicalEmpty
	LexicalBadChar
	LexicalMultipleSigns
	LexicalMultipleDots
	LexicalNoDigits
	LexicalBadExponent
	LexicalWrongSign
	LexicalZeroForbidden
	LexicalOddLength
	LexicalWhitespace
	LexicalFieldRange
	LexicalTooLong
)

// String returns a stable label for the violation kind.
func (k LexicalErrorKind) String() string {
	switch k {
	case LexicalEmpty:
		return "empty"
	case LexicalBadChar:
		return "bad character"
	case LexicalMultipleSigns:
		return "multiple signs"
	case LexicalMultipleDots:
		return "multiple dots"
	case LexicalNoDigits:
		return "no digits"
	case LexicalBadExponent:
		return "malformed exponent"
	case LexicalWrongSign:
		return "sign not permitted"
	case LexicalZeroForbidden:
		return "zero not permitted"
	case LexicalOddLength:
		return "odd number of digits"
	case LexicalWhitespace:
		return "whitespace not permitted"
	case LexicalFieldRange:
		return "component out of range"
	case LexicalTooLong:
		return "component too long"
	default:
		return "invalid"
	}
}

// LexicalError reports that a literal is not in a datatype's lexical
// space.
type LexicalError struct {
	Datatype Datatype
	Value    string
	Kind     LexicalErrorKind
	Offset   int // byte offset of the offending position, -1 when not positional
}

// Error returns the formatted error message.
func (e *LexicalError) Error() string {
	if e == nil {
		return ""
	}
	if e.Offset >= 0 {
		return fmt.Sprintf("invalid %s %q: %s at offset %d", e.Datatype, e.Value, e.Kind, e.Offset)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Datatype, e.Value, e.Kind)
}

func wrapLexical(dt Datatype, value string, err *lexical.Error) *LexicalError {
	return &LexicalError{
		Datatype: dt,
		Value:    value,
		Kind:     lexicalKind(err.Kind),
		Offset:   err.Offset,
	}
}

func lexicalKind(k lexical.Kind) LexicalErrorKind {
	switch k {
	case lexical.KindEmpty:
		return LexicalEmpty
	case lexical.KindBadChar:
		return LexicalBadChar
	case lexical.KindMultipleSigns:
		return LexicalMultipleSigns
	case lexical.KindMultipleDots:
		return LexicalMultipleDots
	case lexical.KindNoDigits:
		return LexicalNoDigits
	case lexical.KindExponent:
		return LexicalBadExponent
	case lexical.KindWrongSign:
		return LexicalWrongSign
	case lexical.KindZeroForbidden:
		return LexicalZeroForbidden
	case lexical.KindOddLength:
		return LexicalOddLength
	case lexical.KindWhitespace:
		return LexicalWhitespace
	case lexical.KindFieldRange:
		return LexicalFieldRange
	case lexical.KindTooLong:
		return LexicalTooLong
	}
	return LexicalInvalid
}

// RangeError reports a value outside the bounds of the target datatype.
// Value carries the rejected value unchanged, so callers can retry
// against a wider type.
type RangeError struct {
	Value  Value
	Target Datatype
}

// Error returns the formatted error message.
func (e *RangeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Value == nil {
		return fmt.Sprintf("value out of range for %s", e.Target)
	}
	return fmt.Sprintf("value %s out of range for %s", e.Value.Canonical(), e.Target)
}

// UnsupportedError reports a datatype the catalog names but the package
// does not parse. It wraps ErrUnsupported.
type UnsupportedError struct {
	Datatype Datatype
}

// Error returns the formatted error message.
func (e *UnsupportedError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("parsing %s: %s", e.Datatype, ErrUnsupported)
}

// Unwrap returns ErrUnsupported.
func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}
