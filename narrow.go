package xsdtypes

import (
	"math"
	"math/big"
)

var (
	bigZero     = big.NewInt(0)
	bigOne      = big.NewInt(1)
	bigMinusOne = big.NewInt(-1)

	bigMinInt8  = big.NewInt(math.MinInt8)
	bigMaxInt8  = big.NewInt(math.MaxInt8)
	bigMinInt16 = big.NewInt(math.MinInt16)
	bigMaxInt16 = big.NewInt(math.MaxInt16)
	bigMinInt32 = big.NewInt(math.MinInt32)
	bigMaxInt32 = big.NewInt(math.MaxInt32)
	bigMinInt64 = big.NewInt(math.MinInt64)
	bigMaxInt64 = big.NewInt(math.MaxInt64)

	bigMaxUint8  = big.NewInt(math.MaxUint8)
	bigMaxUint16 = big.NewInt(math.MaxUint16)
	bigMaxUint32 = big.NewInt(math.MaxUint32)
	bigMaxUint64 = new(big.Int).SetUint64(math.MaxUint64)
)

// integerBounds holds the inclusive bounds of an integer datatype. A nil
// side is unbounded.
type integerBounds struct {
	min *big.Int
	max *big.Int
}

// datatypeIntegerBounds is the single source of truth for the integer
// lattice: the fixed-width rungs carry both bounds, the unbounded
// families only their sign constraint.
var datatypeIntegerBounds = map[Datatype]integerBounds{
	XSDInteger:            {},
	XSDNonNegativeInteger: {min: bigZero},
	XSDPositiveInteger:    {min: bigOne},
	XSDNonPositiveInteger: {max: bigZero},
	XSDNegativeInteger:    {max: bigMinusOne},
	XSDLong:               {min: bigMinInt64, max: bigMaxInt64},
	XSDInt:                {min: bigMinInt32, max: bigMaxInt32},
	XSDShort:              {min: bigMinInt16, max: bigMaxInt16},
	XSDByte:               {min: bigMinInt8, max: bigMaxInt8},
	XSDUnsignedLong:       {min: bigZero, max: bigMaxUint64},
	XSDUnsignedInt:        {min: bigZero, max: bigMaxUint32},
	XSDUnsignedShort:      {min: bigZero, max: bigMaxUint16},
	XSDUnsignedByte:       {min: bigZero, max: bigMaxUint8},
}

// checkIntegerBounds proves v against dt's bounds, returning a RangeError
// carrying v when it lies outside.
func checkIntegerBounds(v *big.Int, dt Datatype) error {
	b, ok := datatypeIntegerBounds[dt]
	if !ok {
		return &UnsupportedError{Datatype: dt}
	}
	if (b.min != nil && v.Cmp(b.min) < 0) || (b.max != nil && v.Cmp(b.max) > 0) {
		return &RangeError{Value: integerOf(v), Target: dt}
	}
	return nil
}

// integerOf copies v into an Integer.
func integerOf(v *big.Int) Integer {
	var x Integer
	x.n.Set(v)
	return x
}

// NarrowestInteger returns the narrowest integer datatype whose value
// space contains v. Values from zero upward narrow through the unsigned
// rungs, ending at positiveInteger beyond the unsignedLong maximum;
// negative values narrow through the signed rungs, ending at
// negativeInteger below the long minimum. The function is total: every
// integer has a narrowest rung.
func NarrowestInteger(v *big.Int) Datatype {
	if v.Sign() >= 0 {
		return narrowestNonNegative(v)
	}
	switch {
	case v.Cmp(bigMinInt8) >= 0:
		return XSDByte
	case v.Cmp(bigMinInt16) >= 0:
		return XSDShort
	case v.Cmp(bigMinInt32) >= 0:
		return XSDInt
	case v.Cmp(bigMinInt64) >= 0:
		return XSDLong
	}
	return XSDNegativeInteger
}

// narrowestNonNegative classifies v >= 0 within the non-negative branch.
func narrowestNonNegative(v *big.Int) Datatype {
	switch {
	case v.Cmp(bigMaxUint8) <= 0:
		return XSDUnsignedByte
	case v.Cmp(bigMaxUint16) <= 0:
		return XSDUnsignedShort
	case v.Cmp(bigMaxUint32) <= 0:
		return XSDUnsignedInt
	case v.Cmp(bigMaxUint64) <= 0:
		return XSDUnsignedLong
	}
	return XSDPositiveInteger
}

// narrowestSigned64 classifies a machine integer within the signed rungs.
func narrowestSigned64(v int64) Datatype {
	switch {
	case v >= math.MinInt8 && v <= math.MaxInt8:
		return XSDByte
	case v >= math.MinInt16 && v <= math.MaxInt16:
		return XSDShort
	case v >= math.MinInt32 && v <= math.MaxInt32:
		return XSDInt
	}
	return XSDLong
}

// narrowestUnsigned64 classifies a machine integer within the unsigned
// rungs.
func narrowestUnsigned64(v uint64) Datatype {
	switch {
	case v <= math.MaxUint8:
		return XSDUnsignedByte
	case v <= math.MaxUint16:
		return XSDUnsignedShort
	case v <= math.MaxUint32:
		return XSDUnsignedInt
	}
	return XSDUnsignedLong
}
