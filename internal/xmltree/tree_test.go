package xmltree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerializeTextElement(t *testing.T) {
	root := New("Doc", Text("Nm", "ACME"))

	out := string(Serialize(root, SerializeOptions{Indent: "  "}))
	assert.Equal(t, "<Doc>\n  <Nm>ACME</Nm>\n</Doc>\n", out)
}

func TestSerializeDeclaration(t *testing.T) {
	out := string(Serialize(Text("A", "x"), DefaultSerializeOptions()))
	assert.Equal(t, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<A>x</A>\n", out)
}

func TestSerializeAttributesKeepOrder(t *testing.T) {
	root := Text("Amt", "1.00").Attr("Ccy", "EUR").Attr("b", "2")

	out := string(Serialize(root, SerializeOptions{Indent: "  "}))
	assert.Equal(t, "<Amt Ccy=\"EUR\" b=\"2\">1.00</Amt>\n", out)
}

func TestSerializeNesting(t *testing.T) {
	root := New("A",
		New("B",
			Text("C", "v"),
		),
	)

	expected := "<A>\n  <B>\n    <C>v</C>\n  </B>\n</A>\n"
	assert.Equal(t, expected, string(Serialize(root, SerializeOptions{Indent: "  "})))
}

func TestSerializeEscaping(t *testing.T) {
	root := Text("Nm", `A & B <"quoted">`).Attr("x", "a'b")

	out := string(Serialize(root, SerializeOptions{Indent: "  "}))
	assert.Contains(t, out, "A &amp; B &lt;&quot;quoted&quot;&gt;")
	assert.Contains(t, out, `x="a&apos;b"`)
}

func TestAppendSkipsNil(t *testing.T) {
	root := New("A")
	root.Append(nil, Text("B", "x"), nil)

	assert.Len(t, root.Children, 1)
	assert.Equal(t, "B", root.Children[0].Name)
}

func TestSerializeEmptyElementSelfCloses(t *testing.T) {
	out := string(Serialize(New("A"), SerializeOptions{Indent: "  "}))
	assert.Equal(t, "<A/>\n", out)
}
