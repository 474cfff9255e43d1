package lexical

import "testing"

func TestParseInteger(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		sign    int
		digits  string
		errKind Kind
		wantErr bool
	}{
		{name: "zero", input: "0", sign: 0, digits: "0"},
		{name: "neg zero", input: "-0", sign: 0, digits: "0"},
		{name: "pos sign zero", input: "+000", sign: 0, digits: "0"},
		{name: "positive", input: "123", sign: 1, digits: "123"},
		{name: "negative", input: "-456", sign: -1, digits: "456"},
		{name: "leading zeros", input: "0007", sign: 1, digits: "7"},
		{name: "empty", input: "", wantErr: true, errKind: KindEmpty},
		{name: "sign only", input: "+", wantErr: true, errKind: KindNoDigits},
		{name: "bad char", input: "12a", wantErr: true, errKind: KindBadChar},
		{name: "double sign", input: "+-3", wantErr: true, errKind: KindMultipleSigns},
		{name: "inner dot", input: "1.0", wantErr: true, errKind: KindBadChar},
		{name: "whitespace", input: " 1", wantErr: true, errKind: KindBadChar},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseInteger(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				if err.Kind != tc.errKind {
					t.Fatalf("error kind = %v, want %v", err.Kind, tc.errKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Sign() != tc.sign {
				t.Fatalf("sign = %d, want %d", got.Sign(), tc.sign)
			}
			if got.Digits() != tc.digits {
				t.Fatalf("digits = %q, want %q", got.Digits(), tc.digits)
			}
			if got.String() != tc.input {
				t.Fatalf("text = %q, want %q", got.String(), tc.input)
			}
		})
	}
}

func TestParseIntegerFamilies(t *testing.T) {
	tests := []struct {
		name    string
		parse   func(string) (Integer, *Error)
		input   string
		errKind Kind
		wantErr bool
	}{
		{name: "nonNegative plain", parse: ParseNonNegativeInteger, input: "5"},
		{name: "nonNegative explicit plus", parse: ParseNonNegativeInteger, input: "+5"},
		{name: "nonNegative minus zero", parse: ParseNonNegativeInteger, input: "-0"},
		{name: "nonNegative negative", parse: ParseNonNegativeInteger, input: "-1", wantErr: true, errKind: KindWrongSign},
		{name: "positive one", parse: ParsePositiveInteger, input: "1"},
		{name: "positive padded", parse: ParsePositiveInteger, input: "+0009"},
		{name: "positive zero", parse: ParsePositiveInteger, input: "0", wantErr: true, errKind: KindZeroForbidden},
		{name: "positive minus zero", parse: ParsePositiveInteger, input: "-0", wantErr: true, errKind: KindWrongSign},
		{name: "positive negative", parse: ParsePositiveInteger, input: "-3", wantErr: true, errKind: KindWrongSign},
		{name: "nonPositive minus", parse: ParseNonPositiveInteger, input: "-7"},
		{name: "nonPositive zero", parse: ParseNonPositiveInteger, input: "0"},
		{name: "nonPositive plus zero", parse: ParseNonPositiveInteger, input: "+0"},
		{name: "nonPositive unsigned", parse: ParseNonPositiveInteger, input: "7", wantErr: true, errKind: KindWrongSign},
		{name: "negative", parse: ParseNegativeInteger, input: "-1"},
		{name: "negative zero", parse: ParseNegativeInteger, input: "-0", wantErr: true, errKind: KindZeroForbidden},
		{name: "negative unsigned", parse: ParseNegativeInteger, input: "4", wantErr: true, errKind: KindWrongSign},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.parse(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				if err.Kind != tc.errKind {
					t.Fatalf("error kind = %v, want %v", err.Kind, tc.errKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestIntegerErrorOffsets(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		offset int
	}{
		{name: "bad char", input: "12a", offset: 2},
		{name: "second sign", input: "+-3", offset: 1},
		{name: "empty", input: "", offset: 0},
		{name: "sign only", input: "-", offset: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseInteger(tc.input)
			if err == nil {
				t.Fatalf("expected error")
			}
			if err.Offset != tc.offset {
				t.Fatalf("offset = %d, want %d", err.Offset, tc.offset)
			}
		})
	}
}
