package lexical

import "strconv"

// Error reports why a literal is outside a datatype's lexical space.
type Error struct {
	Kind   Kind
	Offset int // byte offset of the offending position, -1 when not positional
}

// Error returns the formatted error message.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Offset < 0 {
		return e.Kind.String()
	}
	return e.Kind.String() + " at offset " + strconv.Itoa(e.Offset)
}

// Kind identifies a lexical failure category.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindEmpty
	KindBadChar
	KindMultipleSigns
	KindMultipleDots
	KindNoDigits
	KindExponent
	KindWrongSign
	KindZeroForbidden
	KindOddLength
	KindWhitespace
	KindFieldRange
	KindTooLong
)

// String returns a stable label for the failure kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindBadChar:
		return "bad character"
	case KindMultipleSigns:
		return "multiple signs"
	case KindMultipleDots:
		return "multiple dots"
	case KindNoDigits:
		return "no digits"
	case KindExponent:
		return "malformed exponent"
	case KindWrongSign:
		return "sign not permitted"
	case KindZeroForbidden:
		return "zero not permitted"
	case KindOddLength:
		return "odd number of digits"
	case KindWhitespace:
		return "whitespace not permitted"
	case KindFieldRange:
		return "component out of range"
	case KindTooLong:
		return "component too long"
	default:
		return "invalid"
	}
}

func errAt(kind Kind, offset int) *Error {
	return &Error{Kind: kind, Offset: offset}
}

func errKind(kind Kind) *Error {
	return &Error{Kind: kind, Offset: -1}
}
