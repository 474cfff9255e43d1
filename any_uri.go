package xsdtypes

import (
	"net/url"

	"github.com/wt/xsd-types/internal/lexical"
)

// AnyURI is an xsd:anyURI value. It keeps the literal exactly as
// written, alongside the parsed form. The value space is the literal
// itself, so equality and the canonical form never rewrite escaping or
// case. The zero value is the empty URI reference.
type AnyURI struct {
	raw string
	u   *url.URL
}

// ParseAnyURI parses an xsd:anyURI literal. Both absolute URIs and
// relative references are accepted.
func ParseAnyURI(s string) (AnyURI, error) {
	u, err := lexical.ParseAnyURI(s)
	if err != nil {
		return AnyURI{}, wrapLexical(XSDAnyURI, s, err)
	}
	return AnyURI{raw: s, u: u}, nil
}

// Datatype returns XSDAnyURI.
func (x AnyURI) Datatype() Datatype {
	return XSDAnyURI
}

// Canonical returns the literal as written.
func (x AnyURI) Canonical() string {
	return x.raw
}

func (x AnyURI) String() string {
	return x.raw
}

// URL returns a copy of the parsed form.
func (x AnyURI) URL() *url.URL {
	if x.u == nil {
		return new(url.URL)
	}
	u := *x.u
	return &u
}

// IsAbsolute reports whether the URI carries a scheme.
func (x AnyURI) IsAbsolute() bool {
	return x.u != nil && x.u.IsAbs()
}

// Equal reports whether x and y are the same literal.
func (x AnyURI) Equal(y AnyURI) bool {
	return x.raw == y.raw
}
