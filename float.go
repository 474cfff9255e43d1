package xsdtypes

import (
	"math"
	"strconv"
	"strings"

	"github.com/wt/xsd-types/internal/lexical"
)

// Float is an xsd:float value. Arithmetic on the underlying float32
// follows IEEE 754; comparisons through Compare use a total order in
// which NaN equals itself and exceeds every number.
type Float float32

// ParseFloat parses an xsd:float literal, including the special
// values INF, -INF, and NaN.
func ParseFloat(s string) (Float, error) {
	f, _, err := lexical.ParseFloat(s, 32)
	if err != nil {
		return 0, wrapLexical(XSDFloat, s, err)
	}
	return Float(f), nil
}

// FloatNaN returns the xsd:float NaN value.
func FloatNaN() Float {
	return Float(math.NaN())
}

// FloatInf returns positive infinity when sign >= 0, negative
// infinity otherwise.
func FloatInf(sign int) Float {
	return Float(math.Inf(sign))
}

// Datatype returns XSDFloat.
func (x Float) Datatype() Datatype {
	return XSDFloat
}

// Canonical returns the canonical lexical form: forced scientific
// notation with an uppercase E and the shortest mantissa that parses
// back to the identical bit pattern.
func (x Float) Canonical() string {
	return canonicalFloat(float64(x), 32)
}

func (x Float) String() string {
	return x.Canonical()
}

// IsNaN reports whether the value is NaN.
func (x Float) IsNaN() bool {
	return math.IsNaN(float64(x))
}

// IsInf reports whether the value is an infinity, according to sign as
// in math.IsInf.
func (x Float) IsInf(sign int) bool {
	return math.IsInf(float64(x), sign)
}

// Compare orders x and y totally and returns -1, 0, or +1.
func (x Float) Compare(y Float) int {
	return compareFloats(float64(x), float64(y))
}

// Equal reports whether x and y are equal under the total order, so
// NaN equals NaN and negative zero equals positive zero.
func (x Float) Equal(y Float) bool {
	return compareFloats(float64(x), float64(y)) == 0
}

// Float32 returns the value as a native float32.
func (x Float) Float32() float32 {
	return float32(x)
}

// Double widens the value to xsd:double.
func (x Float) Double() Double {
	return Double(x)
}

// compareFloats is the shared total order: NaN compares equal to
// itself and greater than every number, negative and positive zero
// compare equal.
func compareFloats(a, b float64) int {
	an, bn := math.IsNaN(a), math.IsNaN(b)
	switch {
	case an && bn:
		return 0
	case an:
		return 1
	case bn:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// canonicalFloat renders a float or double value in canonical form.
// The mantissa always carries a decimal point and the exponent has no
// sign or leading zeros. Zeros keep their sign, so negative zero
// renders as -0.0E0 and survives a round trip bit-exactly.
func canonicalFloat(value float64, bits int) string {
	if math.IsNaN(value) {
		return "NaN"
	}
	if math.IsInf(value, 1) {
		return "INF"
	}
	if math.IsInf(value, -1) {
		return "-INF"
	}
	raw := strconv.FormatFloat(value, 'E', -1, bits)
	mantissa, exponent, _ := strings.Cut(raw, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	exp, err := strconv.Atoi(exponent)
	if err != nil {
		return mantissa + "E" + exponent
	}
	return mantissa + "E" + strconv.Itoa(exp)
}
