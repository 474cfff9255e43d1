package lexical

import "strings"

// CheckNormalizedString rejects literals containing carriage return, line
// feed or tab.
func CheckNormalizedString(s string) *Error {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\r', '\n', '\t':
			return errAt(KindWhitespace, i)
		}
	}
	return nil
}

// CheckToken layers the collapsed-whitespace rules over normalizedString:
// no leading or trailing space and no consecutive spaces. The empty string
// is a valid token.
func CheckToken(s string) *Error {
	if err := CheckNormalizedString(s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	if s[0] == ' ' {
		return errAt(KindWhitespace, 0)
	}
	if s[len(s)-1] == ' ' {
		return errAt(KindWhitespace, len(s)-1)
	}
	if i := strings.Index(s, "  "); i >= 0 {
		return errAt(KindWhitespace, i)
	}
	return nil
}

// CheckLanguage checks the RFC 3066 shape [a-zA-Z]{1,8}(-[a-zA-Z0-9]{1,8})*.
func CheckLanguage(s string) *Error {
	if s == "" {
		return errAt(KindEmpty, 0)
	}
	i, n := 0, 0
	for i < len(s) && isAlpha(s[i]) {
		n++
		if n > 8 {
			return errAt(KindTooLong, i)
		}
		i++
	}
	if n == 0 {
		return errAt(KindBadChar, i)
	}
	for i < len(s) {
		if s[i] != '-' {
			return errAt(KindBadChar, i)
		}
		i++
		n = 0
		for i < len(s) && (isAlpha(s[i]) || isDigit(s[i])) {
			n++
			if n > 8 {
				return errAt(KindTooLong, i)
			}
			i++
		}
		if n == 0 {
			return errAt(KindBadChar, i)
		}
	}
	return nil
}

// CheckNMToken requires one or more name characters.
func CheckNMToken(s string) *Error {
	if s == "" {
		return errAt(KindEmpty, 0)
	}
	for i, r := range s {
		if !isNameChar(r) {
			return errAt(KindBadChar, i)
		}
	}
	return nil
}

// CheckName requires a name start character followed by name characters.
func CheckName(s string) *Error {
	if s == "" {
		return errAt(KindEmpty, 0)
	}
	for i, r := range s {
		if i == 0 {
			if !isNameStartChar(r) {
				return errAt(KindBadChar, 0)
			}
			continue
		}
		if !isNameChar(r) {
			return errAt(KindBadChar, i)
		}
	}
	return nil
}

// CheckNCName checks a non-colonized name.
func CheckNCName(s string) *Error {
	if err := CheckName(s); err != nil {
		return err
	}
	if i := strings.IndexByte(s, ':'); i >= 0 {
		return errAt(KindBadChar, i)
	}
	return nil
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isNameStartChar reports whether r can start an XML Name (XML 1.0 fifth
// edition production 4).
func isNameStartChar(r rune) bool {
	return r == ':' || r == '_' ||
		(r >= 'A' && r <= 'Z') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 0xC0 && r <= 0xD6) ||
		(r >= 0xD8 && r <= 0xF6) ||
		(r >= 0xF8 && r <= 0x2FF) ||
		(r >= 0x370 && r <= 0x37D) ||
		(r >= 0x37F && r <= 0x1FFF) ||
		(r >= 0x200C && r <= 0x200D) ||
		(r >= 0x2070 && r <= 0x218F) ||
		(r >= 0x2C00 && r <= 0x2FEF) ||
		(r >= 0x3001 && r <= 0xD7FF) ||
		(r >= 0xF900 && r <= 0xFDCF) ||
		(r >= 0xFDF0 && r <= 0xFFFD) ||
		(r >= 0x10000 && r <= 0xEFFFF)
}

// isNameChar reports whether r can appear after the first character of an
// XML Name (XML 1.0 fifth edition production 4a).
func isNameChar(r rune) bool {
	return isNameStartChar(r) ||
		r == '-' || r == '.' ||
		(r >= '0' && r <= '9') ||
		r == 0xB7 ||
		(r >= 0x0300 && r <= 0x036F) ||
		(r >= 0x203F && r <= 0x2040)
}
