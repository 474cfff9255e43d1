package xsdtypes

// Parse validates value against the datatype's lexical grammar and
// constructs the corresponding typed value. Datatypes whose grammars
// this package does not implement (durations, times and dates other
// than dateTime, the calendar fragments, QName, NOTATION) fail closed
// with an UnsupportedError instead of approximating.
func (d Datatype) Parse(value string) (Value, error) {
	switch d {
	case XSDString:
		return String(value), nil
	case XSDBoolean:
		return parseAs(ParseBoolean, value)
	case XSDDecimal:
		return parseAs(ParseDecimal, value)
	case XSDFloat:
		return parseAs(ParseFloat, value)
	case XSDDouble:
		return parseAs(ParseDouble, value)
	case XSDHexBinary:
		return parseAs(ParseHexBinary, value)
	case XSDBase64Binary:
		return parseAs(ParseBase64Binary, value)
	case XSDAnyURI:
		return parseAs(ParseAnyURI, value)
	case XSDDateTime:
		return parseAs(ParseDateTime, value)
	case XSDNormalizedString:
		return parseAs(ParseNormalizedString, value)
	case XSDToken:
		return parseAs(ParseToken, value)
	case XSDLanguage:
		return parseAs(ParseLanguage, value)
	case XSDNMTOKEN:
		return parseAs(ParseNMToken, value)
	case XSDName:
		return parseAs(ParseName, value)
	case XSDNCName:
		return parseAs(ParseNCName, value)
	case XSDID:
		return parseAs(ParseID, value)
	case XSDIDREF:
		return parseAs(ParseIDRef, value)
	case XSDENTITY:
		return parseAs(ParseEntity, value)
	case XSDInteger:
		return parseAs(ParseInteger, value)
	case XSDNonPositiveInteger:
		return parseAs(ParseNonPositiveInteger, value)
	case XSDNegativeInteger:
		return parseAs(ParseNegativeInteger, value)
	case XSDLong:
		return parseAs(ParseLong, value)
	case XSDInt:
		return parseAs(ParseInt, value)
	case XSDShort:
		return parseAs(ParseShort, value)
	case XSDByte:
		return parseAs(ParseByte, value)
	case XSDNonNegativeInteger:
		return parseAs(ParseNonNegativeInteger, value)
	case XSDUnsignedLong:
		return parseAs(ParseUnsignedLong, value)
	case XSDUnsignedInt:
		return parseAs(ParseUnsignedInt, value)
	case XSDUnsignedShort:
		return parseAs(ParseUnsignedShort, value)
	case XSDUnsignedByte:
		return parseAs(ParseUnsignedByte, value)
	case XSDPositiveInteger:
		return parseAs(ParsePositiveInteger, value)
	default:
		return nil, &UnsupportedError{Datatype: d}
	}
}

// parseAs adapts a typed parse function to the catalog signature,
// returning a nil Value rather than a typed zero value on failure.
func parseAs[T Value](parse func(string) (T, error), value string) (Value, error) {
	v, err := parse(value)
	if err != nil {
		return nil, err
	}
	return v, nil
}
