// Package xsdtypes implements the built-in simple datatypes of XML
// Schema 1.0 Part 2. It validates literals against each datatype's
// exact lexical grammar, constructs typed values (arbitrary-precision
// integers, ordered floats, byte sequences, URIs), classifies numeric
// values into the narrowest derived datatype, and renders values back
// into their canonical lexical form.
package xsdtypes
