package lexical

import "testing"

func TestParseAnyURI(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		errKind Kind
		wantErr bool
	}{
		{name: "empty", input: ""},
		{name: "absolute", input: "http://example.com/path?q=1#frag"},
		{name: "relative", input: "../other/file.xml"},
		{name: "fragment only", input: "#section"},
		{name: "urn", input: "urn:isbn:0451450523"},
		{name: "percent encoded", input: "http://example.com/a%20b"},
		{name: "ipv6 host", input: "http://[::1]/x"},
		{name: "mailto", input: "mailto:user@example.com"},
		{name: "space", input: "http://example.com/a b", wantErr: true, errKind: KindWhitespace},
		{name: "tab", input: "a\tb", wantErr: true, errKind: KindWhitespace},
		{name: "backslash", input: "c:\\temp", wantErr: true, errKind: KindBadChar},
		{name: "curly brace", input: "http://example.com/{id}", wantErr: true, errKind: KindBadChar},
		{name: "caret", input: "http://example.com/^", wantErr: true, errKind: KindBadChar},
		{name: "bare percent", input: "100%", wantErr: true, errKind: KindBadChar},
		{name: "short escape", input: "a%2", wantErr: true, errKind: KindBadChar},
		{name: "bad escape", input: "a%zz", wantErr: true, errKind: KindBadChar},
		{name: "empty scheme", input: ":path", wantErr: true, errKind: KindBadChar},
		{name: "digit scheme", input: "1http://x", wantErr: true, errKind: KindBadChar},
		{name: "unterminated ipv6", input: "http://[::1", wantErr: true, errKind: KindInvalid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u, err := ParseAnyURI(tc.input)
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
			if u == nil {
				t.Fatalf("expected parsed URL")
			}
		})
	}
}
