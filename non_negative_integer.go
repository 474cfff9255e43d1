package xsdtypes

import (
	"math/big"

	"github.com/wt/xsd-types/internal/lexical"
)

// NonNegativeInteger is an arbitrary-precision xsd:nonNegativeInteger
// value. The zero value is 0.
type NonNegativeInteger struct {
	n big.Int
}

// ParseNonNegativeInteger parses an xsd:nonNegativeInteger literal. A
// minus sign is accepted only on zero.
func ParseNonNegativeInteger(s string) (NonNegativeInteger, error) {
	f, err := lexical.ParseNonNegativeInteger(s)
	if err != nil {
		return NonNegativeInteger{}, wrapLexical(XSDNonNegativeInteger, s, err)
	}
	return NonNegativeInteger{n: integerFromForm(f).n}, nil
}

// NonNegativeIntegerFromUint64 returns the value v.
func NonNegativeIntegerFromUint64(v uint64) NonNegativeInteger {
	var x NonNegativeInteger
	x.n.SetUint64(v)
	return x
}

// NonNegativeIntegerFromInt64 returns the value v, rejecting negative
// input.
func NonNegativeIntegerFromInt64(v int64) (NonNegativeInteger, error) {
	return IntegerFromInt64(v).NonNegative()
}

// NonNegativeIntegerFromBig returns the value of v, which must not be
// negative. The big.Int is copied.
func NonNegativeIntegerFromBig(v *big.Int) (NonNegativeInteger, error) {
	if err := checkIntegerBounds(v, XSDNonNegativeInteger); err != nil {
		return NonNegativeInteger{}, err
	}
	var x NonNegativeInteger
	x.n.Set(v)
	return x, nil
}

// NonNegativeIntegerFromBytesBE interprets b as an unsigned magnitude in
// big-endian byte order.
func NonNegativeIntegerFromBytesBE(b []byte) NonNegativeInteger {
	var x NonNegativeInteger
	x.n.SetBytes(b)
	return x
}

// NonNegativeIntegerFromBytesLE interprets b as an unsigned magnitude in
// little-endian byte order.
func NonNegativeIntegerFromBytesLE(b []byte) NonNegativeInteger {
	return NonNegativeIntegerFromBytesBE(reverseBytes(b))
}

// Datatype returns the narrowest rung of the non-negative branch
// containing the value. Zero narrows to unsignedByte.
func (x NonNegativeInteger) Datatype() Datatype {
	return narrowestNonNegative(&x.n)
}

// Canonical returns the canonical lexical representation.
func (x NonNegativeInteger) Canonical() string {
	return x.n.String()
}

// String returns the canonical representation.
func (x NonNegativeInteger) String() string {
	return x.Canonical()
}

// BigInt returns a copy of the value as a big.Int.
func (x NonNegativeInteger) BigInt() *big.Int {
	return new(big.Int).Set(&x.n)
}

// IsZero reports whether the value is zero.
func (x NonNegativeInteger) IsZero() bool {
	return x.n.Sign() == 0
}

// Cmp compares x and y, returning -1, 0 or 1.
func (x NonNegativeInteger) Cmp(y NonNegativeInteger) int {
	return x.n.Cmp(&y.n)
}

// Equal reports whether x and y hold the same value.
func (x NonNegativeInteger) Equal(y NonNegativeInteger) bool {
	return x.n.Cmp(&y.n) == 0
}

// Integer widens to Integer.
func (x NonNegativeInteger) Integer() Integer {
	return Integer{n: x.n}
}

// Positive narrows to positiveInteger, rejecting zero.
func (x NonNegativeInteger) Positive() (PositiveInteger, error) {
	if err := checkIntegerBounds(&x.n, XSDPositiveInteger); err != nil {
		return PositiveInteger{}, err
	}
	return PositiveInteger{n: x.n}, nil
}

// UnsignedLong narrows to the 64-bit unsigned rung.
func (x NonNegativeInteger) UnsignedLong() (UnsignedLong, error) {
	return x.Integer().UnsignedLong()
}

// UnsignedInt narrows to the 32-bit unsigned rung.
func (x NonNegativeInteger) UnsignedInt() (UnsignedInt, error) {
	return x.Integer().UnsignedInt()
}

// UnsignedShort narrows to the 16-bit unsigned rung.
func (x NonNegativeInteger) UnsignedShort() (UnsignedShort, error) {
	return x.Integer().UnsignedShort()
}

// UnsignedByte narrows to the 8-bit unsigned rung.
func (x NonNegativeInteger) UnsignedByte() (UnsignedByte, error) {
	return x.Integer().UnsignedByte()
}

// Uint64 returns the value as a uint64 when it fits.
func (x NonNegativeInteger) Uint64() (uint64, error) {
	return x.Integer().Uint64()
}

// BytesBE returns the magnitude in big-endian order without leading
// zeros. Zero yields the empty slice.
func (x NonNegativeInteger) BytesBE() []byte {
	return x.n.Bytes()
}

// BytesLE returns the magnitude in little-endian order.
func (x NonNegativeInteger) BytesLE() []byte {
	return reverseBytes(x.n.Bytes())
}

// PositiveInteger is an arbitrary-precision xsd:positiveInteger value.
// The zero value does not satisfy the datatype; construct values through
// ParsePositiveInteger or narrowing.
type PositiveInteger struct {
	n big.Int
}

// ParsePositiveInteger parses an xsd:positiveInteger literal.
func ParsePositiveInteger(s string) (PositiveInteger, error) {
	f, err := lexical.ParsePositiveInteger(s)
	if err != nil {
		return PositiveInteger{}, wrapLexical(XSDPositiveInteger, s, err)
	}
	return PositiveInteger{n: integerFromForm(f).n}, nil
}

// Datatype returns XSDPositiveInteger.
func (x PositiveInteger) Datatype() Datatype {
	return XSDPositiveInteger
}

// Canonical returns the canonical lexical representation.
func (x PositiveInteger) Canonical() string {
	return x.n.String()
}

// String returns the canonical representation.
func (x PositiveInteger) String() string {
	return x.Canonical()
}

// BigInt returns a copy of the value as a big.Int.
func (x PositiveInteger) BigInt() *big.Int {
	return new(big.Int).Set(&x.n)
}

// IsOne reports whether the value is one.
func (x PositiveInteger) IsOne() bool {
	return x.n.Cmp(bigOne) == 0
}

// Cmp compares x and y, returning -1, 0 or 1.
func (x PositiveInteger) Cmp(y PositiveInteger) int {
	return x.n.Cmp(&y.n)
}

// Equal reports whether x and y hold the same value.
func (x PositiveInteger) Equal(y PositiveInteger) bool {
	return x.n.Cmp(&y.n) == 0
}

// NonNegative widens to NonNegativeInteger.
func (x PositiveInteger) NonNegative() NonNegativeInteger {
	return NonNegativeInteger{n: x.n}
}

// Integer widens to Integer.
func (x PositiveInteger) Integer() Integer {
	return Integer{n: x.n}
}

// Uint64 returns the value as a uint64 when it fits.
func (x PositiveInteger) Uint64() (uint64, error) {
	return x.Integer().Uint64()
}
