package xsdtypes

import (
	"math/big"

	"github.com/wt/xsd-types/internal/lexical"
)

// Integer is an arbitrary-precision xsd:integer value. The zero value
// is 0 and ready to use. Values are immutable: every operation returns a
// new value.
type Integer struct {
	n big.Int
}

// ParseInteger parses an xsd:integer literal: an optional sign followed
// by digits.
func ParseInteger(s string) (Integer, error) {
	f, err := lexical.ParseInteger(s)
	if err != nil {
		return Integer{}, wrapLexical(XSDInteger, s, err)
	}
	return integerFromForm(f), nil
}

// integerFromForm builds the value from a proven lexical form. The digit
// span is already validated, so construction cannot fail.
func integerFromForm(f lexical.Integer) Integer {
	var x Integer
	x.n.SetString(f.Digits(), 10)
	if f.Sign() < 0 {
		x.n.Neg(&x.n)
	}
	return x
}

// IntegerFromBig returns the Integer holding v. The big.Int is copied.
func IntegerFromBig(v *big.Int) Integer {
	var x Integer
	x.n.Set(v)
	return x
}

// IntegerFromInt64 returns the Integer holding v.
func IntegerFromInt64(v int64) Integer {
	var x Integer
	x.n.SetInt64(v)
	return x
}

// IntegerFromUint64 returns the Integer holding v.
func IntegerFromUint64(v uint64) Integer {
	var x Integer
	x.n.SetUint64(v)
	return x
}

// IntegerZero returns the Integer zero.
func IntegerZero() Integer {
	return Integer{}
}

// Datatype returns the narrowest rung of the integer lattice containing
// the value.
func (x Integer) Datatype() Datatype {
	return NarrowestInteger(&x.n)
}

// Canonical returns the canonical lexical representation: an optional
// minus sign followed by digits without leading zeros.
func (x Integer) Canonical() string {
	return x.n.String()
}

// String returns the canonical representation.
func (x Integer) String() string {
	return x.Canonical()
}

// BigInt returns a copy of the value as a big.Int.
func (x Integer) BigInt() *big.Int {
	return new(big.Int).Set(&x.n)
}

// Sign returns -1 for negative values, 0 for zero and 1 for positive
// values.
func (x Integer) Sign() int {
	return x.n.Sign()
}

// IsZero reports whether the value is zero.
func (x Integer) IsZero() bool {
	return x.n.Sign() == 0
}

// Cmp compares x and y, returning -1, 0 or 1.
func (x Integer) Cmp(y Integer) int {
	return x.n.Cmp(&y.n)
}

// Equal reports whether x and y hold the same value.
func (x Integer) Equal(y Integer) bool {
	return x.n.Cmp(&y.n) == 0
}

// NonNegative narrows to nonNegativeInteger, rejecting negative values.
func (x Integer) NonNegative() (NonNegativeInteger, error) {
	if err := checkIntegerBounds(&x.n, XSDNonNegativeInteger); err != nil {
		return NonNegativeInteger{}, err
	}
	return NonNegativeInteger{n: x.n}, nil
}

// Positive narrows to positiveInteger, rejecting values below one.
func (x Integer) Positive() (PositiveInteger, error) {
	if err := checkIntegerBounds(&x.n, XSDPositiveInteger); err != nil {
		return PositiveInteger{}, err
	}
	return PositiveInteger{n: x.n}, nil
}

// NonPositive narrows to nonPositiveInteger, rejecting positive values.
func (x Integer) NonPositive() (NonPositiveInteger, error) {
	if err := checkIntegerBounds(&x.n, XSDNonPositiveInteger); err != nil {
		return NonPositiveInteger{}, err
	}
	return NonPositiveInteger{n: x.n}, nil
}

// Negative narrows to negativeInteger, rejecting values above minus one.
func (x Integer) Negative() (NegativeInteger, error) {
	if err := checkIntegerBounds(&x.n, XSDNegativeInteger); err != nil {
		return NegativeInteger{}, err
	}
	return NegativeInteger{n: x.n}, nil
}

// Long narrows to the 64-bit signed rung.
func (x Integer) Long() (Long, error) {
	if err := checkIntegerBounds(&x.n, XSDLong); err != nil {
		return 0, err
	}
	return Long(x.n.Int64()), nil
}

// Int narrows to the 32-bit signed rung.
func (x Integer) Int() (Int, error) {
	if err := checkIntegerBounds(&x.n, XSDInt); err != nil {
		return 0, err
	}
	return Int(x.n.Int64()), nil
}

// Short narrows to the 16-bit signed rung.
func (x Integer) Short() (Short, error) {
	if err := checkIntegerBounds(&x.n, XSDShort); err != nil {
		return 0, err
	}
	return Short(x.n.Int64()), nil
}

// Byte narrows to the 8-bit signed rung.
func (x Integer) Byte() (Byte, error) {
	if err := checkIntegerBounds(&x.n, XSDByte); err != nil {
		return 0, err
	}
	return Byte(x.n.Int64()), nil
}

// UnsignedLong narrows to the 64-bit unsigned rung.
func (x Integer) UnsignedLong() (UnsignedLong, error) {
	if err := checkIntegerBounds(&x.n, XSDUnsignedLong); err != nil {
		return 0, err
	}
	return UnsignedLong(x.n.Uint64()), nil
}

// UnsignedInt narrows to the 32-bit unsigned rung.
func (x Integer) UnsignedInt() (UnsignedInt, error) {
	if err := checkIntegerBounds(&x.n, XSDUnsignedInt); err != nil {
		return 0, err
	}
	return UnsignedInt(x.n.Uint64()), nil
}

// UnsignedShort narrows to the 16-bit unsigned rung.
func (x Integer) UnsignedShort() (UnsignedShort, error) {
	if err := checkIntegerBounds(&x.n, XSDUnsignedShort); err != nil {
		return 0, err
	}
	return UnsignedShort(x.n.Uint64()), nil
}

// UnsignedByte narrows to the 8-bit unsigned rung.
func (x Integer) UnsignedByte() (UnsignedByte, error) {
	if err := checkIntegerBounds(&x.n, XSDUnsignedByte); err != nil {
		return 0, err
	}
	return UnsignedByte(x.n.Uint64()), nil
}

// Int64 returns the value as an int64 when it fits.
func (x Integer) Int64() (int64, error) {
	if err := checkIntegerBounds(&x.n, XSDLong); err != nil {
		return 0, err
	}
	return x.n.Int64(), nil
}

// Uint64 returns the value as a uint64 when it fits.
func (x Integer) Uint64() (uint64, error) {
	if err := checkIntegerBounds(&x.n, XSDUnsignedLong); err != nil {
		return 0, err
	}
	return x.n.Uint64(), nil
}

// Add returns x + y.
func (x Integer) Add(y Integer) Integer {
	var r Integer
	r.n.Add(&x.n, &y.n)
	return r
}

// Sub returns x - y.
func (x Integer) Sub(y Integer) Integer {
	var r Integer
	r.n.Sub(&x.n, &y.n)
	return r
}

// Mul returns x * y.
func (x Integer) Mul(y Integer) Integer {
	var r Integer
	r.n.Mul(&x.n, &y.n)
	return r
}

// Div returns the quotient x / y truncated toward zero.
func (x Integer) Div(y Integer) (Integer, error) {
	if y.n.Sign() == 0 {
		return Integer{}, ErrDivisionByZero
	}
	var r Integer
	r.n.Quo(&x.n, &y.n)
	return r, nil
}

// Neg returns -x.
func (x Integer) Neg() Integer {
	var r Integer
	r.n.Neg(&x.n)
	return r
}

// Abs returns the absolute value of x.
func (x Integer) Abs() Integer {
	var r Integer
	r.n.Abs(&x.n)
	return r
}

// AddInt64 returns x + y.
func (x Integer) AddInt64(y int64) Integer {
	return x.Add(IntegerFromInt64(y))
}

// SubInt64 returns x - y.
func (x Integer) SubInt64(y int64) Integer {
	return x.Sub(IntegerFromInt64(y))
}

// MulInt64 returns x * y.
func (x Integer) MulInt64(y int64) Integer {
	return x.Mul(IntegerFromInt64(y))
}

// DivInt64 returns the quotient x / y truncated toward zero.
func (x Integer) DivInt64(y int64) (Integer, error) {
	return x.Div(IntegerFromInt64(y))
}

// IntegerFromSignedBytesBE interprets b as a big-endian two's-complement
// integer. The empty slice is zero.
func IntegerFromSignedBytesBE(b []byte) Integer {
	var x Integer
	if len(b) == 0 {
		return x
	}
	x.n.SetBytes(b)
	if b[0]&0x80 != 0 {
		shift := new(big.Int).Lsh(bigOne, uint(len(b)*8))
		x.n.Sub(&x.n, shift)
	}
	return x
}

// IntegerFromSignedBytesLE interprets b as a little-endian
// two's-complement integer.
func IntegerFromSignedBytesLE(b []byte) Integer {
	return IntegerFromSignedBytesBE(reverseBytes(b))
}

// SignedBytesBE renders the value in two's-complement big-endian form
// using the minimum number of bytes. Zero renders as the empty slice.
func (x Integer) SignedBytesBE() []byte {
	switch x.n.Sign() {
	case 0:
		return []byte{}
	case 1:
		b := x.n.Bytes()
		if b[0]&0x80 != 0 {
			b = append([]byte{0}, b...)
		}
		return b
	}
	abs := new(big.Int).Abs(&x.n)
	// the minimum width n satisfies abs <= 2^(8n-1)
	n := (abs.BitLen() + 8) / 8
	if n > 1 && abs.Cmp(new(big.Int).Lsh(bigOne, uint(8*(n-1)-1))) <= 0 {
		n--
	}
	tc := new(big.Int).Lsh(bigOne, uint(8*n))
	tc.Sub(tc, abs)
	return tc.Bytes()
}

// SignedBytesLE renders the value in two's-complement little-endian form.
func (x Integer) SignedBytesLE() []byte {
	return reverseBytes(x.SignedBytesBE())
}

func reverseBytes(b []byte) []byte {
	r := make([]byte, len(b))
	for i, v := range b {
		r[len(b)-1-i] = v
	}
	return r
}
