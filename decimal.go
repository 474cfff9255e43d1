package xsdtypes

import (
	"math/big"
	"strings"

	"github.com/wt/xsd-types/internal/lexical"
)

var bigTen = big.NewInt(10)

// Decimal is an xsd:decimal value. It stores an exact scaled integer:
// the value is coef / 10^scale with scale >= 0. The scale is kept
// minimal, so two equal values always have identical coefficient and
// scale. The zero value is the decimal 0.
type Decimal struct {
	coef  big.Int
	scale int
}

// ParseDecimal parses an xsd:decimal literal.
func ParseDecimal(s string) (Decimal, error) {
	form, err := lexical.ParseDecimal(s)
	if err != nil {
		return Decimal{}, wrapLexical(XSDDecimal, s, err)
	}
	return decimalFromForm(form), nil
}

// decimalFromForm builds the value for a proven lexical form. The form
// carries normalized digit spans, so the coefficient parse cannot fail
// and the resulting scale is already minimal.
func decimalFromForm(form lexical.Decimal) Decimal {
	var d Decimal
	digits := form.IntegerDigits() + form.FractionDigits()
	if digits == "" {
		return d
	}
	d.coef.SetString(digits, 10)
	if form.Sign() < 0 {
		d.coef.Neg(&d.coef)
	}
	d.scale = len(form.FractionDigits())
	return d
}

// DecimalFromInt64 returns the decimal with value n.
func DecimalFromInt64(n int64) Decimal {
	var d Decimal
	d.coef.SetInt64(n)
	return d
}

// DecimalFromInteger returns the decimal with the same value as n.
func DecimalFromInteger(n Integer) Decimal {
	var d Decimal
	d.coef.Set(&n.n)
	return d
}

// DecimalFromBig returns the decimal coef / 10^scale. A negative scale
// multiplies instead, and trailing zeros of the coefficient are folded
// into the scale so equal values compare identical.
func DecimalFromBig(coef *big.Int, scale int) Decimal {
	var d Decimal
	d.coef.Set(coef)
	if scale < 0 {
		d.coef.Mul(&d.coef, pow10(-scale))
		scale = 0
	}
	var rem big.Int
	for scale > 0 {
		var q big.Int
		q.QuoRem(&d.coef, bigTen, &rem)
		if rem.Sign() != 0 {
			break
		}
		d.coef.Set(&q)
		scale--
	}
	if d.coef.Sign() == 0 {
		scale = 0
	}
	d.scale = scale
	return d
}

// Datatype returns the narrowest datatype admitting the value. Values
// without a fractional part narrow into the integer ladder.
func (x Decimal) Datatype() Datatype {
	if x.scale == 0 {
		return NarrowestInteger(&x.coef)
	}
	return XSDDecimal
}

// Canonical returns the canonical lexical form: no leading zeros, no
// trailing fractional zeros, a sign only when negative, and no decimal
// point when the value is integral.
func (x Decimal) Canonical() string {
	if x.scale == 0 {
		return x.coef.String()
	}
	digits := new(big.Int).Abs(&x.coef).String()
	var b strings.Builder
	if x.coef.Sign() < 0 {
		b.WriteByte('-')
	}
	if len(digits) <= x.scale {
		b.WriteByte('0')
		b.WriteByte('.')
		for i := len(digits); i < x.scale; i++ {
			b.WriteByte('0')
		}
		b.WriteString(digits)
	} else {
		b.WriteString(digits[:len(digits)-x.scale])
		b.WriteByte('.')
		b.WriteString(digits[len(digits)-x.scale:])
	}
	return b.String()
}

func (x Decimal) String() string {
	return x.Canonical()
}

// Sign returns -1, 0, or +1 depending on the sign of the value.
func (x Decimal) Sign() int {
	return x.coef.Sign()
}

// IsInteger reports whether the value has no fractional part.
func (x Decimal) IsInteger() bool {
	return x.scale == 0
}

// Cmp compares x and y numerically and returns -1, 0, or +1.
func (x Decimal) Cmp(y Decimal) int {
	if x.scale == y.scale {
		return x.coef.Cmp(&y.coef)
	}
	a := new(big.Int).Mul(&x.coef, pow10(y.scale))
	b := new(big.Int).Mul(&y.coef, pow10(x.scale))
	return a.Cmp(b)
}

// Equal reports whether x and y are the same value.
func (x Decimal) Equal(y Decimal) bool {
	return x.scale == y.scale && x.coef.Cmp(&y.coef) == 0
}

// Integer converts the value to xsd:integer. Values with a fractional
// part are rejected with a RangeError carrying the value.
func (x Decimal) Integer() (Integer, error) {
	if x.scale != 0 {
		return Integer{}, &RangeError{Value: x, Target: XSDInteger}
	}
	return IntegerFromBig(&x.coef), nil
}

// Rat returns the value as an exact rational number.
func (x Decimal) Rat() *big.Rat {
	return new(big.Rat).SetFrac(&x.coef, pow10(x.scale))
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}
