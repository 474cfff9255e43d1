package xsdtypes

import (
	"math"

	"github.com/wt/xsd-types/internal/lexical"
)

// Double is an xsd:double value. It behaves like Float at 64-bit
// precision.
type Double float64

// ParseDouble parses an xsd:double literal, including the special
// values INF, -INF, and NaN.
func ParseDouble(s string) (Double, error) {
	f, _, err := lexical.ParseFloat(s, 64)
	if err != nil {
		return 0, wrapLexical(XSDDouble, s, err)
	}
	return Double(f), nil
}

// DoubleNaN returns the xsd:double NaN value.
func DoubleNaN() Double {
	return Double(math.NaN())
}

// DoubleInf returns positive infinity when sign >= 0, negative
// infinity otherwise.
func DoubleInf(sign int) Double {
	return Double(math.Inf(sign))
}

// Datatype returns XSDDouble.
func (x Double) Datatype() Datatype {
	return XSDDouble
}

// Canonical returns the canonical lexical form: forced scientific
// notation with an uppercase E and the shortest mantissa that parses
// back to the identical bit pattern.
func (x Double) Canonical() string {
	return canonicalFloat(float64(x), 64)
}

func (x Double) String() string {
	return x.Canonical()
}

// IsNaN reports whether the value is NaN.
func (x Double) IsNaN() bool {
	return math.IsNaN(float64(x))
}

// IsInf reports whether the value is an infinity, according to sign as
// in math.IsInf.
func (x Double) IsInf(sign int) bool {
	return math.IsInf(float64(x), sign)
}

// Compare orders x and y totally and returns -1, 0, or +1.
func (x Double) Compare(y Double) int {
	return compareFloats(float64(x), float64(y))
}

// Equal reports whether x and y are equal under the total order, so
// NaN equals NaN and negative zero equals positive zero.
func (x Double) Equal(y Double) bool {
	return compareFloats(float64(x), float64(y)) == 0
}

// Float64 returns the value as a native float64.
func (x Double) Float64() float64 {
	return float64(x)
}
