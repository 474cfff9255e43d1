package xsdtypes

import (
	"errors"
	"testing"
)

func TestParseMachineBounds(t *testing.T) {
	tests := []struct {
		name      string
		parse     func(string) (Value, error)
		input     string
		canonical string
		wantErr   bool
	}{
		{name: "long max", parse: func(s string) (Value, error) { return parseAs(ParseLong, s) }, input: "9223372036854775807", canonical: "9223372036854775807"},
		{name: "long min", parse: func(s string) (Value, error) { return parseAs(ParseLong, s) }, input: "-9223372036854775808", canonical: "-9223372036854775808"},
		{name: "long over", parse: func(s string) (Value, error) { return parseAs(ParseLong, s) }, input: "9223372036854775808", wantErr: true},
		{name: "int max", parse: func(s string) (Value, error) { return parseAs(ParseInt, s) }, input: "2147483647", canonical: "2147483647"},
		{name: "int under", parse: func(s string) (Value, error) { return parseAs(ParseInt, s) }, input: "-2147483649", wantErr: true},
		{name: "short max", parse: func(s string) (Value, error) { return parseAs(ParseShort, s) }, input: "32767", canonical: "32767"},
		{name: "short over", parse: func(s string) (Value, error) { return parseAs(ParseShort, s) }, input: "32768", wantErr: true},
		{name: "byte min", parse: func(s string) (Value, error) { return parseAs(ParseByte, s) }, input: "-128", canonical: "-128"},
		{name: "byte under", parse: func(s string) (Value, error) { return parseAs(ParseByte, s) }, input: "-129", wantErr: true},
		{name: "unsignedLong max", parse: func(s string) (Value, error) { return parseAs(ParseUnsignedLong, s) }, input: "18446744073709551615", canonical: "18446744073709551615"},
		{name: "unsignedLong over", parse: func(s string) (Value, error) { return parseAs(ParseUnsignedLong, s) }, input: "18446744073709551616", wantErr: true},
		{name: "unsignedInt max", parse: func(s string) (Value, error) { return parseAs(ParseUnsignedInt, s) }, input: "4294967295", canonical: "4294967295"},
		{name: "unsignedShort max", parse: func(s string) (Value, error) { return parseAs(ParseUnsignedShort, s) }, input: "65535", canonical: "65535"},
		{name: "unsignedByte max", parse: func(s string) (Value, error) { return parseAs(ParseUnsignedByte, s) }, input: "255", canonical: "255"},
		{name: "unsignedByte over", parse: func(s string) (Value, error) { return parseAs(ParseUnsignedByte, s) }, input: "256", wantErr: true},
		{name: "unsignedByte neg zero", parse: func(s string) (Value, error) { return parseAs(ParseUnsignedByte, s) }, input: "-0", canonical: "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := tc.parse(tc.input)
			if tc.wantErr {
				var re *RangeError
				if !errors.As(err, &re) {
					t.Fatalf("error = %v, want *RangeError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := v.Canonical(); got != tc.canonical {
				t.Fatalf("canonical = %q, want %q", got, tc.canonical)
			}
		})
	}
}

func TestMachineUnsignedRejectsSign(t *testing.T) {
	_, err := ParseUnsignedInt("-1")
	var le *LexicalError
	if !errors.As(err, &le) {
		t.Fatalf("error = %v, want *LexicalError", err)
	}
	if le.Kind != LexicalWrongSign {
		t.Fatalf("error kind = %v, want %v", le.Kind, LexicalWrongSign)
	}
}

func TestMachineDatatype(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want Datatype
	}{
		{name: "long small", v: Long(1), want: XSDByte},
		{name: "long negative", v: Long(-1), want: XSDByte},
		{name: "long large", v: Long(1 << 40), want: XSDLong},
		{name: "int negative big", v: Int(-40000), want: XSDInt},
		{name: "short boundary", v: Short(-129), want: XSDShort},
		{name: "byte", v: Byte(-5), want: XSDByte},
		{name: "unsignedLong", v: UnsignedLong(1 << 63), want: XSDUnsignedLong},
		{name: "unsignedInt small", v: UnsignedInt(7), want: XSDUnsignedByte},
		{name: "unsignedShort", v: UnsignedShort(256), want: XSDUnsignedShort},
		{name: "unsignedByte", v: UnsignedByte(0), want: XSDUnsignedByte},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.Datatype(); got != tc.want {
				t.Fatalf("datatype = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMachineWiden(t *testing.T) {
	b := Byte(-7)
	if got := b.Short().Int().Long(); got != -7 {
		t.Fatalf("widened = %d, want -7", got)
	}
	if got := b.Integer().Canonical(); got != "-7" {
		t.Fatalf("integer = %q, want %q", got, "-7")
	}

	ub := UnsignedByte(200)
	if got := ub.UnsignedShort().UnsignedInt().UnsignedLong(); got != 200 {
		t.Fatalf("widened = %d, want 200", got)
	}
	nn := UnsignedLong(200).NonNegative()
	if got := nn.Canonical(); got != "200" {
		t.Fatalf("nonNegative = %q, want %q", got, "200")
	}

	if got := UnsignedLong(1 << 63).Integer().Canonical(); got != "9223372036854775808" {
		t.Fatalf("integer = %q, want %q", got, "9223372036854775808")
	}
}
