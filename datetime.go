package xsdtypes

import (
	"fmt"
	"strings"
	"time"

	"github.com/wt/xsd-types/internal/lexical"
)

// DateTime is an xsd:dateTime value: an instant on the timeline, or a
// timezone-less local instant. The two kinds are distinct values and
// only partially ordered against each other.
type DateTime struct {
	t     time.Time
	hasTZ bool
}

// ParseDateTime parses an xsd:dateTime literal. A trailing 24:00:00
// time or a leap-second 60 rolls over into the following minute or
// day, matching the value-space identities.
func ParseDateTime(s string) (DateTime, error) {
	t, hasTZ, err := lexical.ParseDateTime(s)
	if err != nil {
		return DateTime{}, wrapLexical(XSDDateTime, s, err)
	}
	return DateTime{t: t, hasTZ: hasTZ}, nil
}

// DateTimeOf returns the timezoned dateTime for an instant.
func DateTimeOf(t time.Time) DateTime {
	return DateTime{t: t, hasTZ: true}
}

// Datatype returns XSDDateTime.
func (x DateTime) Datatype() Datatype {
	return XSDDateTime
}

// Canonical returns the canonical lexical form. Timezoned values are
// normalized to UTC and written with a Z suffix; the seconds fraction
// carries no trailing zeros and is omitted when zero.
func (x DateTime) Canonical() string {
	t := x.t
	if x.hasTZ {
		t = t.UTC()
	}
	s := fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d",
		t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second())
	if ns := t.Nanosecond(); ns != 0 {
		s += "." + strings.TrimRight(fmt.Sprintf("%09d", ns), "0")
	}
	if x.hasTZ {
		s += "Z"
	}
	return s
}

func (x DateTime) String() string {
	return x.Canonical()
}

// Time returns the underlying instant.
func (x DateTime) Time() time.Time {
	return x.t
}

// HasTimezone reports whether the literal carried a timezone.
func (x DateTime) HasTimezone() bool {
	return x.hasTZ
}

// Equal reports whether x and y are the same instant with the same
// timezone presence.
func (x DateTime) Equal(y DateTime) bool {
	return x.hasTZ == y.hasTZ && x.t.Equal(y.t)
}

// Compare orders x and y and returns -1, 0, or +1. When exactly one
// side carries a timezone, the timezone-less side is evaluated at both
// extremes of the +/-14:00 offset range; inside that window the order
// is indeterminate and ok is false.
func (x DateTime) Compare(y DateTime) (cmp int, ok bool) {
	if x.hasTZ == y.hasTZ {
		switch {
		case x.t.Before(y.t):
			return -1, true
		case x.t.After(y.t):
			return 1, true
		}
		return 0, true
	}
	if x.hasTZ {
		return compareZonedToLocal(x.t, y.t)
	}
	cmp, ok = compareZonedToLocal(y.t, x.t)
	return -cmp, ok
}

func compareZonedToLocal(zoned, local time.Time) (int, bool) {
	z := zoned.UTC()
	u := local.UTC()
	if z.Before(u.Add(-14 * time.Hour)) {
		return -1, true
	}
	if z.After(u.Add(14 * time.Hour)) {
		return 1, true
	}
	return 0, false
}
