package xsdtypes

import "strings"

// Namespace is the XML Schema datatypes namespace.
const Namespace = "http://www.w3.org/2001/XMLSchema"

const iriPrefix = Namespace + "#"

// IRI returns the datatype's IRI in the XML Schema namespace, such as
// "http://www.w3.org/2001/XMLSchema#unsignedByte". XSDInvalid has no IRI.
func (d Datatype) IRI() string {
	if d == XSDInvalid {
		return ""
	}
	return iriPrefix + d.String()
}

// FromIRI resolves an XML Schema datatype IRI to its Datatype. IRIs
// outside the namespace, unknown local names and the list types NMTOKENS,
// IDREFS and ENTITIES all resolve to false.
func FromIRI(iri string) (Datatype, bool) {
	local, ok := strings.CutPrefix(iri, iriPrefix)
	if !ok {
		return XSDInvalid, false
	}
	dt, ok := datatypesByName[local]
	if !ok {
		return XSDInvalid, false
	}
	return dt, true
}
