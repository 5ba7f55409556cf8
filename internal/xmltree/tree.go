// =============================================================================
// CBI Payment Export - XML Element Tree
// =============================================================================
//
// This module provides a small value type for building XML documents as an
// explicit tree of elements, plus a serializer that turns the tree into
// indented text. The banking schemas this tool targets are strict about tag
// order, conditional tag presence, and attribute placement, so the document
// is assembled as plain data first and serialized in a single pass. This
// keeps structure-building testable in isolation: two trees can be compared
// as values before any text is emitted.
//
// SERIALIZATION RULES:
//   - Attributes are written in the order they were added.
//   - An element with a text value is written on one line:
//       <Nm>ACME</Nm>
//   - An element with children is indented one level per depth:
//       <GrpHdr>
//         <MsgId>...</MsgId>
//       </GrpHdr>
//   - Text values and attribute values are XML-escaped.
//
// =============================================================================

package xmltree

import (
	"bytes"
	"fmt"
)

// Attr is a single XML attribute. Attributes keep insertion order; the
// target schemas treat attribute order as part of the document's canonical
// form for byte comparison in tests.
type Attr struct {
	Name  string
	Value string
}

// Element is one node of the document tree. An element carries either a
// Text value or Children, never both.
type Element struct {
	Name     string
	Attrs    []Attr
	Text     string
	Children []*Element
}

// New creates an element with the given child elements.
func New(name string, children ...*Element) *Element {
	return &Element{Name: name, Children: children}
}

// Text creates a leaf element containing a text value.
func Text(name, value string) *Element {
	return &Element{Name: name, Text: value}
}

// Attr adds an attribute and returns the element for chaining.
func (e *Element) Attr(name, value string) *Element {
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
	return e
}

// Append adds child elements. Nil children are skipped, which lets callers
// build conditional blocks with helper functions that return nil when the
// source field is absent.
func (e *Element) Append(children ...*Element) *Element {
	for _, c := range children {
		if c != nil {
			e.Children = append(e.Children, c)
		}
	}
	return e
}

// =============================================================================
// SERIALIZATION
// =============================================================================

// SerializeOptions controls the textual form of the output document.
type SerializeOptions struct {
	// Indent is the string used for one level of indentation.
	Indent string

	// IncludeXMLDeclaration determines whether an XML declaration is
	// written before the root element.
	IncludeXMLDeclaration bool

	// XMLVersion is the version for the declaration.
	XMLVersion string

	// Encoding is the encoding for the declaration.
	Encoding string
}

// DefaultSerializeOptions returns the options used for emitted payment
// files: two-space indent with a UTF-8 declaration.
func DefaultSerializeOptions() SerializeOptions {
	return SerializeOptions{
		Indent:                "  ",
		IncludeXMLDeclaration: true,
		XMLVersion:            "1.0",
		Encoding:              "UTF-8",
	}
}

// Serialize renders the tree rooted at root into indented XML text.
func Serialize(root *Element, options SerializeOptions) []byte {
	var buffer bytes.Buffer

	if options.IncludeXMLDeclaration {
		buffer.WriteString(fmt.Sprintf("<?xml version=\"%s\" encoding=\"%s\"?>\n",
			options.XMLVersion, options.Encoding))
	}

	writeElement(&buffer, root, options.Indent, 0)

	return buffer.Bytes()
}

// writeElement writes a single element and its subtree to the buffer.
func writeElement(buffer *bytes.Buffer, element *Element, indent string, level int) {
	for i := 0; i < level; i++ {
		buffer.WriteString(indent)
	}

	buffer.WriteString("<")
	buffer.WriteString(element.Name)

	for _, attr := range element.Attrs {
		buffer.WriteString(fmt.Sprintf(" %s=\"%s\"", attr.Name, escape(attr.Value)))
	}

	if len(element.Children) == 0 && element.Text == "" {
		buffer.WriteString("/>\n")
		return
	}

	buffer.WriteString(">")

	if len(element.Children) == 0 {
		buffer.WriteString(escape(element.Text))
	} else {
		buffer.WriteString("\n")

		for _, child := range element.Children {
			writeElement(buffer, child, indent, level+1)
		}

		for i := 0; i < level; i++ {
			buffer.WriteString(indent)
		}
	}

	buffer.WriteString("</")
	buffer.WriteString(element.Name)
	buffer.WriteString(">\n")
}

// escape escapes the characters XML reserves in text and attribute values.
func escape(s string) string {
	var buffer bytes.Buffer

	for _, r := range s {
		switch r {
		case '&':
			buffer.WriteString("&amp;")
		case '<':
			buffer.WriteString("&lt;")
		case '>':
			buffer.WriteString("&gt;")
		case '"':
			buffer.WriteString("&quot;")
		case '\'':
			buffer.WriteString("&apos;")
		default:
			buffer.WriteRune(r)
		}
	}

	return buffer.String()
}
