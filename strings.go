package xsdtypes

import "github.com/wt/xsd-types/internal/lexical"

// The string-derived datatypes are defined string types, so widening
// along the derivation chain is an ordinary Go conversion. Parsing
// proves lexical-space membership; it never rewrites the text, and the
// canonical form is the text itself.

// String is an xsd:string value. Every string is valid, so there is no
// parse function; convert directly.
type String string

// Datatype returns XSDString.
func (x String) Datatype() Datatype {
	return XSDString
}

// Canonical returns the value itself.
func (x String) Canonical() string {
	return string(x)
}

// NormalizedString is an xsd:normalizedString value: a string with no
// carriage return, line feed, or tab characters.
type NormalizedString string

// ParseNormalizedString parses an xsd:normalizedString literal.
func ParseNormalizedString(s string) (NormalizedString, error) {
	if err := lexical.CheckNormalizedString(s); err != nil {
		return "", wrapLexical(XSDNormalizedString, s, err)
	}
	return NormalizedString(s), nil
}

// Datatype returns XSDNormalizedString.
func (x NormalizedString) Datatype() Datatype {
	return XSDNormalizedString
}

// Canonical returns the value itself.
func (x NormalizedString) Canonical() string {
	return string(x)
}

// Token is an xsd:token value: a normalized string with no leading or
// trailing spaces and no internal space runs.
type Token string

// ParseToken parses an xsd:token literal.
func ParseToken(s string) (Token, error) {
	if err := lexical.CheckToken(s); err != nil {
		return "", wrapLexical(XSDToken, s, err)
	}
	return Token(s), nil
}

// Datatype returns XSDToken.
func (x Token) Datatype() Datatype {
	return XSDToken
}

// Canonical returns the value itself.
func (x Token) Canonical() string {
	return string(x)
}

// Language is an xsd:language value: a language tag of alphanumeric
// blocks of at most eight characters separated by hyphens.
type Language string

// ParseLanguage parses an xsd:language literal.
func ParseLanguage(s string) (Language, error) {
	if err := lexical.CheckLanguage(s); err != nil {
		return "", wrapLexical(XSDLanguage, s, err)
	}
	return Language(s), nil
}

// Datatype returns XSDLanguage.
func (x Language) Datatype() Datatype {
	return XSDLanguage
}

// Canonical returns the value itself.
func (x Language) Canonical() string {
	return string(x)
}

// NMToken is an xsd:NMTOKEN value: one or more XML name characters.
type NMToken string

// ParseNMToken parses an xsd:NMTOKEN literal.
func ParseNMToken(s string) (NMToken, error) {
	if err := lexical.CheckNMToken(s); err != nil {
		return "", wrapLexical(XSDNMTOKEN, s, err)
	}
	return NMToken(s), nil
}

// Datatype returns XSDNMTOKEN.
func (x NMToken) Datatype() Datatype {
	return XSDNMTOKEN
}

// Canonical returns the value itself.
func (x NMToken) Canonical() string {
	return string(x)
}

// Name is an xsd:Name value: an XML name.
type Name string

// ParseName parses an xsd:Name literal.
func ParseName(s string) (Name, error) {
	if err := lexical.CheckName(s); err != nil {
		return "", wrapLexical(XSDName, s, err)
	}
	return Name(s), nil
}

// Datatype returns XSDName.
func (x Name) Datatype() Datatype {
	return XSDName
}

// Canonical returns the value itself.
func (x Name) Canonical() string {
	return string(x)
}

// NCName is an xsd:NCName value: an XML name with no colon.
type NCName string

// ParseNCName parses an xsd:NCName literal.
func ParseNCName(s string) (NCName, error) {
	if err := lexical.CheckNCName(s); err != nil {
		return "", wrapLexical(XSDNCName, s, err)
	}
	return NCName(s), nil
}

// Datatype returns XSDNCName.
func (x NCName) Datatype() Datatype {
	return XSDNCName
}

// Canonical returns the value itself.
func (x NCName) Canonical() string {
	return string(x)
}

// ID is an xsd:ID value. The lexical space is that of NCName.
type ID string

// ParseID parses an xsd:ID literal.
func ParseID(s string) (ID, error) {
	if err := lexical.CheckNCName(s); err != nil {
		return "", wrapLexical(XSDID, s, err)
	}
	return ID(s), nil
}

// Datatype returns XSDID.
func (x ID) Datatype() Datatype {
	return XSDID
}

// Canonical returns the value itself.
func (x ID) Canonical() string {
	return string(x)
}

// IDRef is an xsd:IDREF value. The lexical space is that of NCName.
type IDRef string

// ParseIDRef parses an xsd:IDREF literal.
func ParseIDRef(s string) (IDRef, error) {
	if err := lexical.CheckNCName(s); err != nil {
		return "", wrapLexical(XSDIDREF, s, err)
	}
	return IDRef(s), nil
}

// Datatype returns XSDIDREF.
func (x IDRef) Datatype() Datatype {
	return XSDIDREF
}

// Canonical returns the value itself.
func (x IDRef) Canonical() string {
	return string(x)
}

// Entity is an xsd:ENTITY value. The lexical space is that of NCName.
type Entity string

// ParseEntity parses an xsd:ENTITY literal.
func ParseEntity(s string) (Entity, error) {
	if err := lexical.CheckNCName(s); err != nil {
		return "", wrapLexical(XSDENTITY, s, err)
	}
	return Entity(s), nil
}

// Datatype returns XSDENTITY.
func (x Entity) Datatype() Datatype {
	return XSDENTITY
}

// Canonical returns the value itself.
func (x Entity) Canonical() string {
	return string(x)
}
