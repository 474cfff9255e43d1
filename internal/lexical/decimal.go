package lexical

// Decimal is a proven member of the decimal lexical space. The digit spans
// are normalized for value construction: leading zeros are removed from the
// integer part and trailing zeros from the fraction part, so equal values
// always yield equal spans.
type Decimal struct {
	text     string
	sign     int    // -1, 0, or 1
	integer  string // integer-part digits, leading zeros removed; "" when zero
	fraction string // fraction digits, trailing zeros removed; "" when zero
}

// String returns the accepted input text.
func (f Decimal) String() string { return f.text }

// Sign returns -1 for negative values, 0 for zero and 1 for positive values.
func (f Decimal) Sign() int { return f.sign }

// IntegerDigits returns the normalized integer-part digits.
func (f Decimal) IntegerDigits() string { return f.integer }

// FractionDigits returns the normalized fraction digits.
func (f Decimal) FractionDigits() string { return f.fraction }

// ParseDecimal accepts an optional sign, digits, and at most one decimal
// point. Digits may appear on either side of the point but at least one
// digit must be present.
func ParseDecimal(s string) (Decimal, *Error) {
	if s == "" {
		return Decimal{}, errAt(KindEmpty, 0)
	}
	i := 0
	explicit := byte(0)
	switch s[0] {
	case '+', '-':
		explicit = s[0]
		i++
	}
	intStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intPart := s[intStart:i]
	var fracPart string
	if i < len(s) && s[i] == '.' {
		i++
		fracStart := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		fracPart = s[fracStart:i]
	}
	if i < len(s) {
		switch s[i] {
		case '+', '-':
			if explicit != 0 {
				return Decimal{}, errAt(KindMultipleSigns, i)
			}
		case '.':
			return Decimal{}, errAt(KindMultipleDots, i)
		}
		return Decimal{}, errAt(KindBadChar, i)
	}
	if intPart == "" && fracPart == "" {
		return Decimal{}, errAt(KindNoDigits, i)
	}
	intPart = trimLeadingZeros(intPart)
	if intPart == "0" {
		intPart = ""
	}
	j := len(fracPart)
	for j > 0 && fracPart[j-1] == '0' {
		j--
	}
	fracPart = fracPart[:j]
	sign := 0
	if intPart != "" || fracPart != "" {
		sign = 1
		if explicit == '-' {
			sign = -1
		}
	}
	return Decimal{text: s, sign: sign, integer: intPart, fraction: fracPart}, nil
}
