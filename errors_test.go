package xsdtypes

import (
	"errors"
	"testing"
)

func TestLexicalErrorMessage(t *testing.T) {
	_, err := ParseInteger("12a")
	var le *LexicalError
	if !errors.As(err, &le) {
		t.Fatalf("error = %v, want *LexicalError", err)
	}
	if got, want := le.Error(), `invalid integer "12a": bad character at offset 2`; got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}

	_, err = ParseNegativeInteger("0")
	if !errors.As(err, &le) {
		t.Fatalf("error = %v, want *LexicalError", err)
	}
	if le.Offset != -1 {
		t.Fatalf("offset = %d, want -1", le.Offset)
	}
	if got, want := le.Error(), `invalid negativeInteger "0": zero not permitted`; got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}
}

func TestRangeErrorMessage(t *testing.T) {
	_, err := IntegerFromInt64(300).Byte()
	var re *RangeError
	if !errors.As(err, &re) {
		t.Fatalf("error = %v, want *RangeError", err)
	}
	if got, want := re.Error(), "value 300 out of range for byte"; got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}

	empty := &RangeError{Target: XSDByte}
	if got, want := empty.Error(), "value out of range for byte"; got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}
}

func TestUnsupportedErrorMessage(t *testing.T) {
	_, err := XSDDuration.Parse("P1Y")
	var ue *UnsupportedError
	if !errors.As(err, &ue) {
		t.Fatalf("error = %v, want *UnsupportedError", err)
	}
	if got, want := ue.Error(), "parsing duration: unsupported datatype"; got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("errors.Is(err, ErrUnsupported) = false, want true")
	}
}
