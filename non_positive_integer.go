package xsdtypes

import (
	"math/big"

	"github.com/wt/xsd-types/internal/lexical"
)

// NonPositiveInteger is an arbitrary-precision xsd:nonPositiveInteger
// value. The zero value is 0.
type NonPositiveInteger struct {
	n big.Int
}

// ParseNonPositiveInteger parses an xsd:nonPositiveInteger literal.
// Nonzero magnitudes require a minus sign.
func ParseNonPositiveInteger(s string) (NonPositiveInteger, error) {
	f, err := lexical.ParseNonPositiveInteger(s)
	if err != nil {
		return NonPositiveInteger{}, wrapLexical(XSDNonPositiveInteger, s, err)
	}
	return NonPositiveInteger{n: integerFromForm(f).n}, nil
}

// NonPositiveIntegerFromBig returns the value of v, which must not be
// positive. The big.Int is copied.
func NonPositiveIntegerFromBig(v *big.Int) (NonPositiveInteger, error) {
	if err := checkIntegerBounds(v, XSDNonPositiveInteger); err != nil {
		return NonPositiveInteger{}, err
	}
	var x NonPositiveInteger
	x.n.Set(v)
	return x, nil
}

// NonPositiveIntegerFromInt64 returns the value v, rejecting positive
// input.
func NonPositiveIntegerFromInt64(v int64) (NonPositiveInteger, error) {
	return IntegerFromInt64(v).NonPositive()
}

// NonPositiveIntegerFromBytesBE interprets b as the big-endian magnitude
// of the absolute value.
func NonPositiveIntegerFromBytesBE(b []byte) NonPositiveInteger {
	var x NonPositiveInteger
	x.n.SetBytes(b)
	x.n.Neg(&x.n)
	return x
}

// NonPositiveIntegerFromBytesLE interprets b as the little-endian
// magnitude of the absolute value.
func NonPositiveIntegerFromBytesLE(b []byte) NonPositiveInteger {
	return NonPositiveIntegerFromBytesBE(reverseBytes(b))
}

// Datatype returns XSDNegativeInteger for negative values and
// XSDNonPositiveInteger for zero.
func (x NonPositiveInteger) Datatype() Datatype {
	if x.n.Sign() < 0 {
		return XSDNegativeInteger
	}
	return XSDNonPositiveInteger
}

// Canonical returns the canonical lexical representation.
func (x NonPositiveInteger) Canonical() string {
	return x.n.String()
}

// String returns the canonical representation.
func (x NonPositiveInteger) String() string {
	return x.Canonical()
}

// BigInt returns a copy of the value as a big.Int.
func (x NonPositiveInteger) BigInt() *big.Int {
	return new(big.Int).Set(&x.n)
}

// IsZero reports whether the value is zero.
func (x NonPositiveInteger) IsZero() bool {
	return x.n.Sign() == 0
}

// Cmp compares x and y, returning -1, 0 or 1.
func (x NonPositiveInteger) Cmp(y NonPositiveInteger) int {
	return x.n.Cmp(&y.n)
}

// Equal reports whether x and y hold the same value.
func (x NonPositiveInteger) Equal(y NonPositiveInteger) bool {
	return x.n.Cmp(&y.n) == 0
}

// Integer widens to Integer.
func (x NonPositiveInteger) Integer() Integer {
	return Integer{n: x.n}
}

// Negative narrows to negativeInteger, rejecting zero.
func (x NonPositiveInteger) Negative() (NegativeInteger, error) {
	if err := checkIntegerBounds(&x.n, XSDNegativeInteger); err != nil {
		return NegativeInteger{}, err
	}
	return NegativeInteger{n: x.n}, nil
}

// Int64 returns the value as an int64 when it fits.
func (x NonPositiveInteger) Int64() (int64, error) {
	return x.Integer().Int64()
}

// BytesBE returns the big-endian magnitude of the absolute value. Zero
// yields the empty slice.
func (x NonPositiveInteger) BytesBE() []byte {
	return x.n.Bytes()
}

// BytesLE returns the little-endian magnitude of the absolute value.
func (x NonPositiveInteger) BytesLE() []byte {
	return reverseBytes(x.n.Bytes())
}

// NegativeInteger is an arbitrary-precision xsd:negativeInteger value.
// The zero value does not satisfy the datatype; construct values through
// ParseNegativeInteger or narrowing.
type NegativeInteger struct {
	n big.Int
}

// ParseNegativeInteger parses an xsd:negativeInteger literal.
func ParseNegativeInteger(s string) (NegativeInteger, error) {
	f, err := lexical.ParseNegativeInteger(s)
	if err != nil {
		return NegativeInteger{}, wrapLexical(XSDNegativeInteger, s, err)
	}
	return NegativeInteger{n: integerFromForm(f).n}, nil
}

// Datatype returns XSDNegativeInteger.
func (x NegativeInteger) Datatype() Datatype {
	return XSDNegativeInteger
}

// Canonical returns the canonical lexical representation.
func (x NegativeInteger) Canonical() string {
	return x.n.String()
}

// String returns the canonical representation.
func (x NegativeInteger) String() string {
	return x.Canonical()
}

// BigInt returns a copy of the value as a big.Int.
func (x NegativeInteger) BigInt() *big.Int {
	return new(big.Int).Set(&x.n)
}

// IsMinusOne reports whether the value is minus one.
func (x NegativeInteger) IsMinusOne() bool {
	return x.n.Cmp(bigMinusOne) == 0
}

// Cmp compares x and y, returning -1, 0 or 1.
func (x NegativeInteger) Cmp(y NegativeInteger) int {
	return x.n.Cmp(&y.n)
}

// Equal reports whether x and y hold the same value.
func (x NegativeInteger) Equal(y NegativeInteger) bool {
	return x.n.Cmp(&y.n) == 0
}

// NonPositive widens to NonPositiveInteger.
func (x NegativeInteger) NonPositive() NonPositiveInteger {
	return NonPositiveInteger{n: x.n}
}

// Integer widens to Integer.
func (x NegativeInteger) Integer() Integer {
	return Integer{n: x.n}
}

// Int64 returns the value as an int64 when it fits.
func (x NegativeInteger) Int64() (int64, error) {
	return x.Integer().Int64()
}
