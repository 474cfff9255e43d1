package lexical

import (
	"encoding/base64"
	"errors"
)

// ParseHexBinary proves membership in the hexBinary lexical space and
// returns the decoded octets. The empty string denotes zero octets.
func ParseHexBinary(s string) ([]byte, *Error) {
	if len(s)%2 != 0 {
		return nil, errKind(KindOddLength)
	}
	data := make([]byte, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		hi, ok := hexVal(s[i])
		if !ok {
			return nil, errAt(KindBadChar, i)
		}
		lo, ok := hexVal(s[i+1])
		if !ok {
			return nil, errAt(KindBadChar, i+1)
		}
		data[i/2] = hi<<4 | lo
	}
	return data, nil
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// ParseBase64Binary strips the whitespace permitted between encoding
// characters and strictly decodes the remainder, padding included.
// Reported offsets refer to the stripped text.
func ParseBase64Binary(s string) ([]byte, *Error) {
	stripped := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r':
			continue
		}
		stripped = append(stripped, s[i])
	}
	data, err := base64.StdEncoding.Strict().DecodeString(string(stripped))
	if err != nil {
		var corrupt base64.CorruptInputError
		if errors.As(err, &corrupt) {
			return nil, errAt(KindBadChar, int(corrupt))
		}
		return nil, errKind(KindBadChar)
	}
	return data, nil
}
