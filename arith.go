package xsdtypes

import "math/big"

// Checked arithmetic over the sign-constrained integer families. Every
// operation computes exactly in arbitrary precision and then proves the
// result against the result type's bounds, so overflow out of a family
// is a RangeError carrying the computed value, never an abort. Division
// truncates toward zero; dividing by zero reports ErrDivisionByZero.
//
// Operands come in three shapes per operation: the same family, the
// Integer carrier, and a machine integer. Wider or unsigned machine
// values widen through IntegerFromInt64/IntegerFromUint64.

func addBig(a, b *big.Int) *big.Int {
	return new(big.Int).Add(a, b)
}

func subBig(a, b *big.Int) *big.Int {
	return new(big.Int).Sub(a, b)
}

func mulBig(a, b *big.Int) *big.Int {
	return new(big.Int).Mul(a, b)
}

func quoBig(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	return new(big.Int).Quo(a, b), nil
}

func nonNegativeResult(r *big.Int) (NonNegativeInteger, error) {
	if err := checkIntegerBounds(r, XSDNonNegativeInteger); err != nil {
		return NonNegativeInteger{}, err
	}
	return NonNegativeInteger{n: *r}, nil
}

func positiveResult(r *big.Int) (PositiveInteger, error) {
	if err := checkIntegerBounds(r, XSDPositiveInteger); err != nil {
		return PositiveInteger{}, err
	}
	return PositiveInteger{n: *r}, nil
}

func nonPositiveResult(r *big.Int) (NonPositiveInteger, error) {
	if err := checkIntegerBounds(r, XSDNonPositiveInteger); err != nil {
		return NonPositiveInteger{}, err
	}
	return NonPositiveInteger{n: *r}, nil
}

func negativeResult(r *big.Int) (NegativeInteger, error) {
	if err := checkIntegerBounds(r, XSDNegativeInteger); err != nil {
		return NegativeInteger{}, err
	}
	return NegativeInteger{n: *r}, nil
}

// Add returns x + y.
func (x NonNegativeInteger) Add(y NonNegativeInteger) (NonNegativeInteger, error) {
	return nonNegativeResult(addBig(&x.n, &y.n))
}

// Sub returns x - y, which must remain non-negative.
func (x NonNegativeInteger) Sub(y NonNegativeInteger) (NonNegativeInteger, error) {
	return nonNegativeResult(subBig(&x.n, &y.n))
}

// Mul returns x * y.
func (x NonNegativeInteger) Mul(y NonNegativeInteger) (NonNegativeInteger, error) {
	return nonNegativeResult(mulBig(&x.n, &y.n))
}

// Div returns the quotient x / y truncated toward zero.
func (x NonNegativeInteger) Div(y NonNegativeInteger) (NonNegativeInteger, error) {
	r, err := quoBig(&x.n, &y.n)
	if err != nil {
		return NonNegativeInteger{}, err
	}
	return nonNegativeResult(r)
}

// AddInteger returns x + y.
func (x NonNegativeInteger) AddInteger(y Integer) (NonNegativeInteger, error) {
	return nonNegativeResult(addBig(&x.n, &y.n))
}

// SubInteger returns x - y.
func (x NonNegativeInteger) SubInteger(y Integer) (NonNegativeInteger, error) {
	return nonNegativeResult(subBig(&x.n, &y.n))
}

// MulInteger returns x * y.
func (x NonNegativeInteger) MulInteger(y Integer) (NonNegativeInteger, error) {
	return nonNegativeResult(mulBig(&x.n, &y.n))
}

// DivInteger returns the quotient x / y truncated toward zero.
func (x NonNegativeInteger) DivInteger(y Integer) (NonNegativeInteger, error) {
	r, err := quoBig(&x.n, &y.n)
	if err != nil {
		return NonNegativeInteger{}, err
	}
	return nonNegativeResult(r)
}

// AddInt64 returns x + y.
func (x NonNegativeInteger) AddInt64(y int64) (NonNegativeInteger, error) {
	return x.AddInteger(IntegerFromInt64(y))
}

// SubInt64 returns x - y.
func (x NonNegativeInteger) SubInt64(y int64) (NonNegativeInteger, error) {
	return x.SubInteger(IntegerFromInt64(y))
}

// MulInt64 returns x * y.
func (x NonNegativeInteger) MulInt64(y int64) (NonNegativeInteger, error) {
	return x.MulInteger(IntegerFromInt64(y))
}

// DivInt64 returns the quotient x / y truncated toward zero.
func (x NonNegativeInteger) DivInt64(y int64) (NonNegativeInteger, error) {
	return x.DivInteger(IntegerFromInt64(y))
}

// AddUint64 returns x + y.
func (x NonNegativeInteger) AddUint64(y uint64) (NonNegativeInteger, error) {
	return x.AddInteger(IntegerFromUint64(y))
}

// SubUint64 returns x - y.
func (x NonNegativeInteger) SubUint64(y uint64) (NonNegativeInteger, error) {
	return x.SubInteger(IntegerFromUint64(y))
}

// MulUint64 returns x * y.
func (x NonNegativeInteger) MulUint64(y uint64) (NonNegativeInteger, error) {
	return x.MulInteger(IntegerFromUint64(y))
}

// DivUint64 returns the quotient x / y truncated toward zero.
func (x NonNegativeInteger) DivUint64(y uint64) (NonNegativeInteger, error) {
	return x.DivInteger(IntegerFromUint64(y))
}

// Add returns x + y.
func (x PositiveInteger) Add(y PositiveInteger) (PositiveInteger, error) {
	return positiveResult(addBig(&x.n, &y.n))
}

// Sub returns x - y, which must remain positive.
func (x PositiveInteger) Sub(y PositiveInteger) (PositiveInteger, error) {
	return positiveResult(subBig(&x.n, &y.n))
}

// Mul returns x * y.
func (x PositiveInteger) Mul(y PositiveInteger) (PositiveInteger, error) {
	return positiveResult(mulBig(&x.n, &y.n))
}

// Div returns the quotient x / y truncated toward zero, which must
// remain positive.
func (x PositiveInteger) Div(y PositiveInteger) (PositiveInteger, error) {
	r, err := quoBig(&x.n, &y.n)
	if err != nil {
		return PositiveInteger{}, err
	}
	return positiveResult(r)
}

// AddInteger returns x + y.
func (x PositiveInteger) AddInteger(y Integer) (PositiveInteger, error) {
	return positiveResult(addBig(&x.n, &y.n))
}

// SubInteger returns x - y.
func (x PositiveInteger) SubInteger(y Integer) (PositiveInteger, error) {
	return positiveResult(subBig(&x.n, &y.n))
}

// MulInteger returns x * y.
func (x PositiveInteger) MulInteger(y Integer) (PositiveInteger, error) {
	return positiveResult(mulBig(&x.n, &y.n))
}

// DivInteger returns the quotient x / y truncated toward zero.
func (x PositiveInteger) DivInteger(y Integer) (PositiveInteger, error) {
	r, err := quoBig(&x.n, &y.n)
	if err != nil {
		return PositiveInteger{}, err
	}
	return positiveResult(r)
}

// AddInt64 returns x + y.
func (x PositiveInteger) AddInt64(y int64) (PositiveInteger, error) {
	return x.AddInteger(IntegerFromInt64(y))
}

// SubInt64 returns x - y.
func (x PositiveInteger) SubInt64(y int64) (PositiveInteger, error) {
	return x.SubInteger(IntegerFromInt64(y))
}

// MulInt64 returns x * y.
func (x PositiveInteger) MulInt64(y int64) (PositiveInteger, error) {
	return x.MulInteger(IntegerFromInt64(y))
}

// DivInt64 returns the quotient x / y truncated toward zero.
func (x PositiveInteger) DivInt64(y int64) (PositiveInteger, error) {
	return x.DivInteger(IntegerFromInt64(y))
}

// Add returns x + y.
func (x NonPositiveInteger) Add(y NonPositiveInteger) (NonPositiveInteger, error) {
	return nonPositiveResult(addBig(&x.n, &y.n))
}

// Sub returns x - y, which must remain non-positive.
func (x NonPositiveInteger) Sub(y NonPositiveInteger) (NonPositiveInteger, error) {
	return nonPositiveResult(subBig(&x.n, &y.n))
}

// Mul returns x * y, which must remain non-positive.
func (x NonPositiveInteger) Mul(y NonPositiveInteger) (NonPositiveInteger, error) {
	return nonPositiveResult(mulBig(&x.n, &y.n))
}

// Div returns the quotient x / y truncated toward zero, which must
// remain non-positive.
func (x NonPositiveInteger) Div(y NonPositiveInteger) (NonPositiveInteger, error) {
	r, err := quoBig(&x.n, &y.n)
	if err != nil {
		return NonPositiveInteger{}, err
	}
	return nonPositiveResult(r)
}

// AddInteger returns x + y.
func (x NonPositiveInteger) AddInteger(y Integer) (NonPositiveInteger, error) {
	return nonPositiveResult(addBig(&x.n, &y.n))
}

// SubInteger returns x - y.
func (x NonPositiveInteger) SubInteger(y Integer) (NonPositiveInteger, error) {
	return nonPositiveResult(subBig(&x.n, &y.n))
}

// MulInteger returns x * y.
func (x NonPositiveInteger) MulInteger(y Integer) (NonPositiveInteger, error) {
	return nonPositiveResult(mulBig(&x.n, &y.n))
}

// DivInteger returns the quotient x / y truncated toward zero.
func (x NonPositiveInteger) DivInteger(y Integer) (NonPositiveInteger, error) {
	r, err := quoBig(&x.n, &y.n)
	if err != nil {
		return NonPositiveInteger{}, err
	}
	return nonPositiveResult(r)
}

// AddInt64 returns x + y.
func (x NonPositiveInteger) AddInt64(y int64) (NonPositiveInteger, error) {
	return x.AddInteger(IntegerFromInt64(y))
}

// SubInt64 returns x - y.
func (x NonPositiveInteger) SubInt64(y int64) (NonPositiveInteger, error) {
	return x.SubInteger(IntegerFromInt64(y))
}

// MulInt64 returns x * y.
func (x NonPositiveInteger) MulInt64(y int64) (NonPositiveInteger, error) {
	return x.MulInteger(IntegerFromInt64(y))
}

// DivInt64 returns the quotient x / y truncated toward zero.
func (x NonPositiveInteger) DivInt64(y int64) (NonPositiveInteger, error) {
	return x.DivInteger(IntegerFromInt64(y))
}

// Add returns x + y.
func (x NegativeInteger) Add(y NegativeInteger) (NegativeInteger, error) {
	return negativeResult(addBig(&x.n, &y.n))
}

// Sub returns x - y, which must remain negative.
func (x NegativeInteger) Sub(y NegativeInteger) (NegativeInteger, error) {
	return negativeResult(subBig(&x.n, &y.n))
}

// Mul returns x * y, which must remain negative.
func (x NegativeInteger) Mul(y NegativeInteger) (NegativeInteger, error) {
	return negativeResult(mulBig(&x.n, &y.n))
}

// Div returns the quotient x / y truncated toward zero, which must
// remain negative.
func (x NegativeInteger) Div(y NegativeInteger) (NegativeInteger, error) {
	r, err := quoBig(&x.n, &y.n)
	if err != nil {
		return NegativeInteger{}, err
	}
	return negativeResult(r)
}

// AddInteger returns x + y.
func (x NegativeInteger) AddInteger(y Integer) (NegativeInteger, error) {
	return negativeResult(addBig(&x.n, &y.n))
}

// SubInteger returns x - y.
func (x NegativeInteger) SubInteger(y Integer) (NegativeInteger, error) {
	return negativeResult(subBig(&x.n, &y.n))
}

// MulInteger returns x * y.
func (x NegativeInteger) MulInteger(y Integer) (NegativeInteger, error) {
	return negativeResult(mulBig(&x.n, &y.n))
}

// DivInteger returns the quotient x / y truncated toward zero.
func (x NegativeInteger) DivInteger(y Integer) (NegativeInteger, error) {
	r, err := quoBig(&x.n, &y.n)
	if err != nil {
		return NegativeInteger{}, err
	}
	return negativeResult(r)
}

// AddInt64 returns x + y.
func (x NegativeInteger) AddInt64(y int64) (NegativeInteger, error) {
	return x.AddInteger(IntegerFromInt64(y))
}

// SubInt64 returns x - y.
func (x NegativeInteger) SubInt64(y int64) (NegativeInteger, error) {
	return x.SubInteger(IntegerFromInt64(y))
}

// MulInt64 returns x * y.
func (x NegativeInteger) MulInt64(y int64) (NegativeInteger, error) {
	return x.MulInteger(IntegerFromInt64(y))
}

// DivInt64 returns the quotient x / y truncated toward zero.
func (x NegativeInteger) DivInt64(y int64) (NegativeInteger, error) {
	return x.DivInteger(IntegerFromInt64(y))
}
