package serbench

import (
	"bytes"
)

// xmlBytesPerPerson approximates one compact <person> element; it only sizes
// the output buffer.
const xmlBytesPerPerson = 140

// xmlCodec encodes a Dataset as a <people> document holding one <person>
// element per record. Each person carries <name>, <age> and <address>, and
// each address carries <street> and <city>, always in that order.
type xmlCodec struct {
	indent string
}

func (c *xmlCodec) Name() string  { return "xml" }
func (c *xmlCodec) Label() string { return "XML" }

func (c *xmlCodec) setIndent(i string) error {
	c.indent = i
	return nil
}

func (c *xmlCodec) Encode(d Dataset) ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.Grow(len(xmlHEADER) + len(d)*xmlBytesPerPerson)

	g := newXMLDatasetGenerator(buf)
	g.Indent(c.indent)
	if err := g.generateDocument(d); err != nil {
		return nil, encodeError("XML", err)
	}
	return buf.Bytes(), nil
}

func (c *xmlCodec) Decode(data []byte) (Dataset, error) {
	return newXMLDatasetParser(bytes.NewReader(data)).parseDocument()
}
