package xsdtypes

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/wt/xsd-types/internal/lexical"
)

// HexBinary is an xsd:hexBinary value: an arbitrary byte sequence.
// Values are immutable; constructors and accessors copy.
type HexBinary struct {
	data []byte
}

// ParseHexBinary parses an xsd:hexBinary literal.
func ParseHexBinary(s string) (HexBinary, error) {
	data, err := lexical.ParseHexBinary(s)
	if err != nil {
		return HexBinary{}, wrapLexical(XSDHexBinary, s, err)
	}
	return HexBinary{data: data}, nil
}

// NewHexBinary returns the hexBinary value holding a copy of data.
func NewHexBinary(data []byte) HexBinary {
	return HexBinary{data: bytes.Clone(data)}
}

// Datatype returns XSDHexBinary.
func (x HexBinary) Datatype() Datatype {
	return XSDHexBinary
}

// Canonical returns the canonical lexical form: uppercase hex digits,
// two per byte.
func (x HexBinary) Canonical() string {
	return strings.ToUpper(hex.EncodeToString(x.data))
}

func (x HexBinary) String() string {
	return x.Canonical()
}

// Bytes returns a copy of the byte sequence.
func (x HexBinary) Bytes() []byte {
	return bytes.Clone(x.data)
}

// Len returns the number of bytes.
func (x HexBinary) Len() int {
	return len(x.data)
}

// Equal reports whether x and y hold the same bytes.
func (x HexBinary) Equal(y HexBinary) bool {
	return bytes.Equal(x.data, y.data)
}

// Base64Binary is an xsd:base64Binary value: an arbitrary byte
// sequence. Values are immutable; constructors and accessors copy.
type Base64Binary struct {
	data []byte
}

// ParseBase64Binary parses an xsd:base64Binary literal. The lexical
// space permits embedded whitespace; the canonical form has none.
func ParseBase64Binary(s string) (Base64Binary, error) {
	data, err := lexical.ParseBase64Binary(s)
	if err != nil {
		return Base64Binary{}, wrapLexical(XSDBase64Binary, s, err)
	}
	return Base64Binary{data: data}, nil
}

// NewBase64Binary returns the base64Binary value holding a copy of
// data.
func NewBase64Binary(data []byte) Base64Binary {
	return Base64Binary{data: bytes.Clone(data)}
}

// Datatype returns XSDBase64Binary.
func (x Base64Binary) Datatype() Datatype {
	return XSDBase64Binary
}

// Canonical returns the canonical lexical form: standard base64 with
// padding and no whitespace.
func (x Base64Binary) Canonical() string {
	return base64.StdEncoding.EncodeToString(x.data)
}

func (x Base64Binary) String() string {
	return x.Canonical()
}

// Bytes returns a copy of the byte sequence.
func (x Base64Binary) Bytes() []byte {
	return bytes.Clone(x.data)
}

// Len returns the number of bytes.
func (x Base64Binary) Len() int {
	return len(x.data)
}

// Equal reports whether x and y hold the same bytes.
func (x Base64Binary) Equal(y Base64Binary) bool {
	return bytes.Equal(x.data, y.data)
}
