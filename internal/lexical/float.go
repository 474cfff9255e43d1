package lexical

import (
	"errors"
	"math"
	"strconv"
)

// FloatClass identifies the ordering class of a float value.
type FloatClass uint8

const (
	FloatFinite FloatClass = iota
	FloatPosInf
	FloatNegInf
	FloatNaN
)

// ParseFloat proves membership in the float (bits=32) or double (bits=64)
// lexical space and returns the mapped value. The special literals INF,
// -INF and NaN are matched exactly; "+INF" is not part of the lexical
// space. Finite literals whose magnitude exceeds the type map to the
// infinities, following IEEE 754 rounding.
func ParseFloat(s string, bits int) (float64, FloatClass, *Error) {
	switch s {
	case "INF":
		return math.Inf(1), FloatPosInf, nil
	case "-INF":
		return math.Inf(-1), FloatNegInf, nil
	case "NaN":
		return math.NaN(), FloatNaN, nil
	}
	if err := scanFloat(s); err != nil {
		return 0, FloatFinite, err
	}
	v, err := strconv.ParseFloat(s, bits)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, FloatFinite, errKind(KindInvalid)
	}
	switch {
	case math.IsInf(v, 1):
		return v, FloatPosInf, nil
	case math.IsInf(v, -1):
		return v, FloatNegInf, nil
	}
	return v, FloatFinite, nil
}

// scanFloat checks the finite float grammar: an optional sign, digits with
// at most one decimal point, and an optional exponent.
func scanFloat(s string) *Error {
	if s == "" {
		return errAt(KindEmpty, 0)
	}
	i := 0
	explicit := false
	if s[i] == '+' || s[i] == '-' {
		explicit = true
		i++
	}
	digits := false
	for i < len(s) && isDigit(s[i]) {
		i++
		digits = true
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits = true
		}
	}
	if !digits {
		return errAt(KindNoDigits, i)
	}
	if i == len(s) {
		return nil
	}
	if s[i] != 'e' && s[i] != 'E' {
		switch s[i] {
		case '+', '-':
			if explicit {
				return errAt(KindMultipleSigns, i)
			}
		case '.':
			return errAt(KindMultipleDots, i)
		}
		return errAt(KindBadChar, i)
	}
	i++
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if i == len(s) {
		return errAt(KindExponent, i)
	}
	for ; i < len(s); i++ {
		if !isDigit(s[i]) {
			return errAt(KindExponent, i)
		}
	}
	return nil
}
