package xsdtypes

// Datatype identifies a built-in simple datatype of XML Schema 1.0
// Part 2. The catalog covers the atomic built-ins; the list types
// NMTOKENS, IDREFS and ENTITIES are not simple datatypes in this sense
// and have no Datatype. The zero value is XSDInvalid.
type Datatype uint8

const (
	XSDInvalid Datatype = iota

	// primitive datatypes
	XSDString
	XSDBoolean
	XSDDecimal
	XSDFloat
	XSDDouble
	XSDDuration
	XSDDateTime
	XSDTime
	XSDDate
	XSDGYearMonth
	XSDGYear
	XSDGMonthDay
	XSDGDay
	XSDGMonth
	XSDHexBinary
	XSDBase64Binary
	XSDAnyURI
	XSDQName
	XSDNOTATION

	// derived from string
	XSDNormalizedString
	XSDToken
	XSDLanguage
	XSDNMTOKEN
	XSDName
	XSDNCName
	XSDID
	XSDIDREF
	XSDENTITY

	// derived from decimal
	XSDInteger
	XSDNonPositiveInteger
	XSDNegativeInteger
	XSDLong
	XSDInt
	XSDShort
	XSDByte
	XSDNonNegativeInteger
	XSDUnsignedLong
	XSDUnsignedInt
	XSDUnsignedShort
	XSDUnsignedByte
	XSDPositiveInteger
)

var datatypeNames = map[Datatype]string{
	XSDString:             "string",
	XSDBoolean:            "boolean",
	XSDDecimal:            "decimal",
	XSDFloat:              "float",
	XSDDouble:             "double",
	XSDDuration:           "duration",
	XSDDateTime:           "dateTime",
	XSDTime:               "time",
	XSDDate:               "date",
	XSDGYearMonth:         "gYearMonth",
	XSDGYear:              "gYear",
	XSDGMonthDay:          "gMonthDay",
	XSDGDay:               "gDay",
	XSDGMonth:             "gMonth",
	XSDHexBinary:          "hexBinary",
	XSDBase64Binary:       "base64Binary",
	XSDAnyURI:             "anyURI",
	XSDQName:              "QName",
	XSDNOTATION:           "NOTATION",
	XSDNormalizedString:   "normalizedString",
	XSDToken:              "token",
	XSDLanguage:           "language",
	XSDNMTOKEN:            "NMTOKEN",
	XSDName:               "Name",
	XSDNCName:             "NCName",
	XSDID:                 "ID",
	XSDIDREF:              "IDREF",
	XSDENTITY:             "ENTITY",
	XSDInteger:            "integer",
	XSDNonPositiveInteger: "nonPositiveInteger",
	XSDNegativeInteger:    "negativeInteger",
	XSDLong:               "long",
	XSDInt:                "int",
	XSDShort:              "short",
	XSDByte:               "byte",
	XSDNonNegativeInteger: "nonNegativeInteger",
	XSDUnsignedLong:       "unsignedLong",
	XSDUnsignedInt:        "unsignedInt",
	XSDUnsignedShort:      "unsignedShort",
	XSDUnsignedByte:       "unsignedByte",
	XSDPositiveInteger:    "positiveInteger",
}

var datatypesByName = make(map[string]Datatype, len(datatypeNames))

func init() {
	for dt, name := range datatypeNames {
		datatypesByName[name] = dt
	}
}

// String returns the datatype's local name in the XML Schema namespace.
func (d Datatype) String() string {
	if name, ok := datatypeNames[d]; ok {
		return name
	}
	return "invalid"
}

// datatypeBases records the derivation-by-restriction lattice: each
// derived datatype maps to the datatype it restricts.
var datatypeBases = map[Datatype]Datatype{
	XSDNormalizedString:   XSDString,
	XSDToken:              XSDNormalizedString,
	XSDLanguage:           XSDToken,
	XSDNMTOKEN:            XSDToken,
	XSDName:               XSDToken,
	XSDNCName:             XSDName,
	XSDID:                 XSDNCName,
	XSDIDREF:              XSDNCName,
	XSDENTITY:             XSDNCName,
	XSDInteger:            XSDDecimal,
	XSDNonPositiveInteger: XSDInteger,
	XSDNegativeInteger:    XSDNonPositiveInteger,
	XSDLong:               XSDInteger,
	XSDInt:                XSDLong,
	XSDShort:              XSDInt,
	XSDByte:               XSDShort,
	XSDNonNegativeInteger: XSDInteger,
	XSDUnsignedLong:       XSDNonNegativeInteger,
	XSDUnsignedInt:        XSDUnsignedLong,
	XSDUnsignedShort:      XSDUnsignedInt,
	XSDUnsignedByte:       XSDUnsignedShort,
	XSDPositiveInteger:    XSDNonNegativeInteger,
}

// Base returns the datatype this datatype restricts, or XSDInvalid for
// primitives.
func (d Datatype) Base() Datatype {
	return datatypeBases[d]
}

// Primitive returns the primitive datatype at the root of d's derivation
// chain. Primitives return themselves.
func (d Datatype) Primitive() Datatype {
	for {
		base, ok := datatypeBases[d]
		if !ok {
			return d
		}
		d = base
	}
}

// IsPrimitive reports whether d is one of the nineteen primitive
// datatypes.
func (d Datatype) IsPrimitive() bool {
	_, derived := datatypeBases[d]
	return !derived && d != XSDInvalid
}

// DerivedFrom reports whether d is base itself or restricts it, directly
// or transitively.
func (d Datatype) DerivedFrom(base Datatype) bool {
	if d == XSDInvalid || base == XSDInvalid {
		return false
	}
	for {
		if d == base {
			return true
		}
		next, ok := datatypeBases[d]
		if !ok {
			return false
		}
		d = next
	}
}
