package lexical

// Integer is a proven member of an integer datatype's lexical space.
// It records the accepted text together with the sign and the magnitude
// digits stripped of leading zeros, so value construction cannot fail.
type Integer struct {
	text   string
	sign   int    // -1, 0, or 1
	digits string // magnitude digits without leading zeros; "0" when zero
}

// String returns the accepted input text.
func (f Integer) String() string { return f.text }

// Sign returns -1 for negative values, 0 for zero and 1 for positive values.
func (f Integer) Sign() int { return f.sign }

// Digits returns the magnitude digits with leading zeros removed.
func (f Integer) Digits() string { return f.digits }

// signRule constrains which value signs an integer grammar admits.
type signRule uint8

const (
	signAny signRule = iota
	signNonNegative
	signPositive
	signNonPositive
	signNegative
)

func scanInteger(s string, rule signRule) (Integer, *Error) {
	if s == "" {
		return Integer{}, errAt(KindEmpty, 0)
	}
	i := 0
	explicit := byte(0)
	switch s[0] {
	case '+', '-':
		explicit = s[0]
		i++
	}
	if i == len(s) {
		return Integer{}, errAt(KindNoDigits, i)
	}
	if off := digitsOnly(s, i); off >= 0 {
		if explicit != 0 && (s[off] == '+' || s[off] == '-') {
			return Integer{}, errAt(KindMultipleSigns, off)
		}
		return Integer{}, errAt(KindBadChar, off)
	}
	digits := trimLeadingZeros(s[i:])
	sign := 1
	if digits == "0" {
		sign = 0
	} else if explicit == '-' {
		sign = -1
	}
	switch rule {
	case signNonNegative:
		if sign < 0 {
			return Integer{}, errAt(KindWrongSign, 0)
		}
	case signPositive:
		if sign < 0 {
			return Integer{}, errAt(KindWrongSign, 0)
		}
		if sign == 0 {
			return Integer{}, errKind(KindZeroForbidden)
		}
	case signNonPositive:
		if sign > 0 {
			return Integer{}, errKind(KindWrongSign)
		}
	case signNegative:
		if sign > 0 {
			return Integer{}, errKind(KindWrongSign)
		}
		if sign == 0 {
			return Integer{}, errKind(KindZeroForbidden)
		}
	}
	return Integer{text: s, sign: sign, digits: digits}, nil
}

// ParseInteger accepts an optional sign followed by one or more digits.
func ParseInteger(s string) (Integer, *Error) {
	return scanInteger(s, signAny)
}

// ParseNonNegativeInteger accepts integer literals denoting values >= 0.
// A minus sign is permitted only when every digit is zero.
func ParseNonNegativeInteger(s string) (Integer, *Error) {
	return scanInteger(s, signNonNegative)
}

// ParsePositiveInteger accepts integer literals denoting values >= 1.
func ParsePositiveInteger(s string) (Integer, *Error) {
	return scanInteger(s, signPositive)
}

// ParseNonPositiveInteger accepts integer literals denoting values <= 0.
// Nonzero magnitudes require a minus sign.
func ParseNonPositiveInteger(s string) (Integer, *Error) {
	return scanInteger(s, signNonPositive)
}

// ParseNegativeInteger accepts integer literals denoting values <= -1.
func ParseNegativeInteger(s string) (Integer, *Error) {
	return scanInteger(s, signNegative)
}
