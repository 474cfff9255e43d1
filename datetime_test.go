package xsdtypes

import (
	"errors"
	"testing"
	"time"
)

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		canonical string
		hasTZ     bool
		errKind   LexicalErrorKind
		wantErr   bool
	}{
		{name: "local", input: "2002-10-10T12:00:00", canonical: "2002-10-10T12:00:00"},
		{name: "utc", input: "2002-10-10T12:00:00Z", canonical: "2002-10-10T12:00:00Z", hasTZ: true},
		{name: "positive offset", input: "2001-10-26T21:32:52+02:00", canonical: "2001-10-26T19:32:52Z", hasTZ: true},
		{name: "negative offset", input: "2002-10-09T22:00:00-05:00", canonical: "2002-10-10T03:00:00Z", hasTZ: true},
		{name: "fraction", input: "2001-10-26T21:32:52.12679", canonical: "2001-10-26T21:32:52.12679"},
		{name: "fraction trailing zeros", input: "2001-10-26T21:32:52.1200", canonical: "2001-10-26T21:32:52.12"},
		{name: "hour 24 rolls over", input: "2004-03-31T24:00:00", canonical: "2004-04-01T00:00:00"},
		{name: "leap second rolls over", input: "1998-12-31T23:59:60Z", canonical: "1999-01-01T00:00:00Z", hasTZ: true},
		{name: "leap day", input: "2000-02-29T00:00:00", canonical: "2000-02-29T00:00:00"},
		{name: "max offset", input: "2002-01-01T00:00:00+14:00", canonical: "2001-12-31T10:00:00Z", hasTZ: true},
		{name: "missing time", input: "2002-10-10", wantErr: true, errKind: LexicalBadChar},
		{name: "month zero", input: "2002-00-10T12:00:00", wantErr: true, errKind: LexicalFieldRange},
		{name: "month thirteen", input: "2002-13-10T12:00:00", wantErr: true, errKind: LexicalFieldRange},
		{name: "day overflow", input: "2001-02-29T00:00:00", wantErr: true, errKind: LexicalFieldRange},
		{name: "year zero", input: "0000-01-01T00:00:00", wantErr: true, errKind: LexicalFieldRange},
		{name: "hour 24 nonzero minute", input: "2004-03-31T24:01:00", wantErr: true, errKind: LexicalFieldRange},
		{name: "offset hour overflow", input: "2002-01-01T00:00:00+15:00", wantErr: true, errKind: LexicalFieldRange},
		{name: "offset beyond max", input: "2002-01-01T00:00:00+14:01", wantErr: true, errKind: LexicalFieldRange},
		{name: "empty fraction", input: "2002-10-10T12:00:00.", wantErr: true, errKind: LexicalNoDigits},
		{name: "fraction too long", input: "2002-10-10T12:00:00.1234567890", wantErr: true, errKind: LexicalTooLong},
		{name: "lowercase z", input: "2002-10-10T12:00:00z", wantErr: true, errKind: LexicalBadChar},
		{name: "space separator", input: "2002-10-10 12:00:00", wantErr: true, errKind: LexicalBadChar},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDateTime(tc.input)
			if tc.wantErr {
				var le *LexicalError
				if !errors.As(err, &le) {
					t.Fatalf("error = %v, want *LexicalError", err)
				}
				if le.Kind != tc.errKind {
					t.Fatalf("error kind = %v, want %v", le.Kind, tc.errKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.HasTimezone() != tc.hasTZ {
				t.Fatalf("hasTimezone = %v, want %v", got.HasTimezone(), tc.hasTZ)
			}
			if c := got.Canonical(); c != tc.canonical {
				t.Fatalf("canonical = %q, want %q", c, tc.canonical)
			}
		})
	}
}

func TestDateTimeCompare(t *testing.T) {
	parse := func(s string) DateTime {
		t.Helper()
		v, err := ParseDateTime(s)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		return v
	}

	tests := []struct {
		name   string
		a, b   string
		want   int
		wantOK bool
	}{
		{name: "both zoned", a: "2000-01-15T00:00:00Z", b: "2000-01-15T01:00:00Z", want: -1, wantOK: true},
		{name: "offsets align", a: "2000-01-15T12:00:00Z", b: "2000-01-15T13:00:00+01:00", want: 0, wantOK: true},
		{name: "both local", a: "2000-01-15T12:00:00", b: "2000-01-15T11:00:00", want: 1, wantOK: true},
		{name: "mixed determinate earlier", a: "2000-01-14T00:00:00Z", b: "2000-01-15T12:00:00", want: -1, wantOK: true},
		{name: "mixed determinate later", a: "2000-01-17T00:00:00Z", b: "2000-01-15T12:00:00", want: 1, wantOK: true},
		{name: "mixed indeterminate", a: "2000-01-15T12:00:00Z", b: "2000-01-15T12:00:00", wantOK: false},
		{name: "mixed indeterminate reversed", a: "2000-01-15T12:00:00", b: "2000-01-15T12:00:00Z", wantOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, b := parse(tc.a), parse(tc.b)
			got, ok := a.Compare(b)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if !tc.wantOK {
				return
			}
			if got != tc.want {
				t.Fatalf("compare = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestDateTimeEqual(t *testing.T) {
	a, err := ParseDateTime("2001-10-26T21:32:52+02:00")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	b, err := ParseDateTime("2001-10-26T19:32:52Z")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !a.Equal(b) {
		t.Fatalf("same instant should be equal across offsets")
	}

	local, err := ParseDateTime("2001-10-26T19:32:52")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if a.Equal(local) {
		t.Fatalf("zoned and local values are distinct")
	}
}

func TestDateTimeOf(t *testing.T) {
	instant := time.Date(2020, time.June, 1, 10, 30, 0, 500000000, time.UTC)
	v := DateTimeOf(instant)
	if !v.HasTimezone() {
		t.Fatalf("constructed value should carry a timezone")
	}
	if got := v.Canonical(); got != "2020-06-01T10:30:00.5Z" {
		t.Fatalf("canonical = %q, want %q", got, "2020-06-01T10:30:00.5Z")
	}
	if !v.Time().Equal(instant) {
		t.Fatalf("instant should round trip")
	}
	if v.Datatype() != XSDDateTime {
		t.Fatalf("datatype = %v, want %v", v.Datatype(), XSDDateTime)
	}
}
