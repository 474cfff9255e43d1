package lexical

import "testing"

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		sign     int
		integer  string
		fraction string
		errKind  Kind
		wantErr  bool
	}{
		{name: "integer", input: "42", sign: 1, integer: "42"},
		{name: "fraction", input: "3.14", sign: 1, integer: "3", fraction: "14"},
		{name: "leading dot", input: ".5", sign: 1, fraction: "5"},
		{name: "trailing dot", input: "5.", sign: 1, integer: "5"},
		{name: "negative", input: "-0.5", sign: -1, fraction: "5"},
		{name: "explicit plus", input: "+1.5", sign: 1, integer: "1", fraction: "5"},
		{name: "zero", input: "0", sign: 0},
		{name: "zero point zero", input: "0.000", sign: 0},
		{name: "neg zero", input: "-0.0", sign: 0},
		{name: "trailing zeros trimmed", input: "1.200", sign: 1, integer: "1", fraction: "2"},
		{name: "leading zeros trimmed", input: "007.5", sign: 1, integer: "7", fraction: "5"},
		{name: "empty", input: "", wantErr: true, errKind: KindEmpty},
		{name: "dot only", input: ".", wantErr: true, errKind: KindNoDigits},
		{name: "sign dot", input: "+.", wantErr: true, errKind: KindNoDigits},
		{name: "two dots", input: "1.2.3", wantErr: true, errKind: KindMultipleDots},
		{name: "two signs", input: "+-1", wantErr: true, errKind: KindMultipleSigns},
		{name: "exponent", input: "1E5", wantErr: true, errKind: KindBadChar},
		{name: "bad char", input: "1,5", wantErr: true, errKind: KindBadChar},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDecimal(tc.input)
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
			if got.IntegerDigits() != tc.integer {
				t.Fatalf("integer digits = %q, want %q", got.IntegerDigits(), tc.integer)
			}
			if got.FractionDigits() != tc.fraction {
				t.Fatalf("fraction digits = %q, want %q", got.FractionDigits(), tc.fraction)
			}
		})
	}
}
