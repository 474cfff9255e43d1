package lexical

import (
	"net/url"
	"strings"
)

// ParseAnyURI checks the character rules for URI references and parses the
// result. The empty string is a valid reference. Resolution is never
// attempted: the literal only has to be syntactically well formed.
func ParseAnyURI(s string) (*url.URL, *Error) {
	for i, r := range s {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			return nil, errAt(KindWhitespace, i)
		case r < 0x20 || r == 0x7f:
			return nil, errAt(KindBadChar, i)
		case r == '\\' || r == '{' || r == '}' || r == '|' || r == '^' || r == '`':
			return nil, errAt(KindBadChar, i)
		}
	}
	// every '%' must introduce exactly two hex digits
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			continue
		}
		if i+2 >= len(s) || !isHexDigit(s[i+1]) || !isHexDigit(s[i+2]) {
			return nil, errAt(KindBadChar, i)
		}
		i += 2
	}
	if err := checkScheme(s); err != nil {
		return nil, err
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, errKind(KindInvalid)
	}
	return u, nil
}

// checkScheme validates the scheme shape when a colon precedes the first
// '/', '?' or '#'.
func checkScheme(s string) *Error {
	idx := strings.IndexByte(s, ':')
	if idx < 0 {
		return nil
	}
	if d := strings.IndexAny(s, "/?#"); d >= 0 && d < idx {
		// the colon belongs to a later component
		return nil
	}
	if idx == 0 || !isAlpha(s[0]) {
		return errAt(KindBadChar, 0)
	}
	for i := 1; i < idx; i++ {
		c := s[i]
		if isAlpha(c) || isDigit(c) || c == '+' || c == '.' || c == '-' {
			continue
		}
		return errAt(KindBadChar, i)
	}
	return nil
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
}
