// =============================================================================
// CBI Payment Export - Schema Descriptors
// =============================================================================
//
// A Schema identifies the target XML schema version a message renders
// against. The namespace attributes on the document root are derived from
// the descriptor name, never hand-maintained per message, so a new schema
// version is a new descriptor value and nothing else.
//
// =============================================================================

package sepa

import "github.com/treasuryops/cbi-export/internal/xmltree"

// Schema describes one supported target schema.
type Schema struct {
	// Name is the schema identification, e.g.
	// "CBI:xsd:CBIPaymentRequest.00.04.00".
	Name string

	// RootTag is the document root element name.
	RootTag string
}

// CBIPaymentRequest000400 is the CBI payment request schema, version
// 00.04.00. It is the schema current CBI payment request messages render
// against.
var CBIPaymentRequest000400 = Schema{
	Name:    "CBI:xsd:CBIPaymentRequest.00.04.00",
	RootTag: "CBIPaymentRequest",
}

// URN returns the schema's namespace URN.
func (s Schema) URN() string {
	return "urn:" + s.Name
}

// rootAttrs returns the namespace attributes the schema mandates on the
// document root, in canonical order.
func (s Schema) rootAttrs() []xmltree.Attr {
	return []xmltree.Attr{
		{Name: "xmlns:xs", Value: "http://www.w3.org/2001/XMLSchema"},
		{Name: "xmlns", Value: s.URN()},
		{Name: "targetNamespace", Value: s.URN()},
		{Name: "elementFormDefault", Value: "qualified"},
	}
}
