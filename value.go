package xsdtypes

// Value is a typed XSD value, the result of parsing a literal against a
// datatype. Datatype reports the narrowest datatype whose value space
// contains the value; Canonical renders the canonical lexical
// representation, which parses back to an equal value.
//
// The implementations are this package's value types. Values are
// immutable: every operation returns a new value.
type Value interface {
	Datatype() Datatype
	Canonical() string
}
