// Package lexical implements the lexical spaces of the XML Schema built-in
// simple datatypes as single-pass scanners over the raw input.
//
// Each scanner either proves that the input belongs to the datatype's
// lexical space or reports the first violation with its byte offset.
// Whitespace facet processing is out of scope: callers pass literals
// exactly as they should be judged.
package lexical

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// digitsOnly reports the offset of the first non-digit byte in s[from:],
// or -1 when every byte is a decimal digit.
func digitsOnly(s string, from int) int {
	for i := from; i < len(s); i++ {
		if !isDigit(s[i]) {
			return i
		}
	}
	return -1
}

// trimLeadingZeros removes leading zero digits, keeping at least one digit.
func trimLeadingZeros(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}
