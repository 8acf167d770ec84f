package serbench

import (
	"bufio"
	"encoding/xml"
	"errors"
	"io"
	"runtime"
	"strconv"
	"unicode/utf8"
)

const (
	xmlHEADER     string = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"
	xmlAddressTag        = "address"
	xmlAgeTag            = "age"
	xmlCityTag           = "city"
	xmlNameTag           = "name"
	xmlPeopleTag         = "people"
	xmlPersonTag         = "person"
	xmlStreetTag         = "street"
)

var errInvalidXMLText = errors.New("string contains characters that cannot appear in XML")

type xmlDatasetGenerator struct {
	*bufio.Writer

	indent     string
	depth      int
	putNewline bool
}

func (p *xmlDatasetGenerator) generateDocument(people Dataset) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); ok {
				panic(r)
			}
			err = r.(error)
		}
	}()

	p.WriteString(xmlHEADER)

	p.openTag(xmlPeopleTag)
	for i := range people {
		p.writePerson(&people[i])
	}
	p.closeTag(xmlPeopleTag)
	return p.Flush()
}

func (p *xmlDatasetGenerator) openTag(n string) {
	p.writeIndent(1)
	p.WriteByte('<')
	p.WriteString(n)
	p.WriteByte('>')
}

func (p *xmlDatasetGenerator) closeTag(n string) {
	p.writeIndent(-1)
	p.WriteString("</")
	p.WriteString(n)
	p.WriteByte('>')
}

func (p *xmlDatasetGenerator) element(n string, v string) {
	if !validXMLText(v) {
		panic(errInvalidXMLText)
	}

	p.writeIndent(0)
	if len(v) == 0 {
		p.WriteByte('<')
		p.WriteString(n)
		p.WriteString("/>")
		return
	}

	p.WriteByte('<')
	p.WriteString(n)
	p.WriteByte('>')

	err := xml.EscapeText(p.Writer, []byte(v))
	if err != nil {
		panic(err)
	}

	p.WriteString("</")
	p.WriteString(n)
	p.WriteByte('>')
}

func (p *xmlDatasetGenerator) writePerson(person *Person) {
	p.openTag(xmlPersonTag)
	p.element(xmlNameTag, person.Name)
	p.element(xmlAgeTag, strconv.Itoa(person.Age))
	p.openTag(xmlAddressTag)
	p.element(xmlStreetTag, person.Address.Street)
	p.element(xmlCityTag, person.Address.City)
	p.closeTag(xmlAddressTag)
	p.closeTag(xmlPersonTag)
}

func (p *xmlDatasetGenerator) writeIndent(delta int) {
	if len(p.indent) == 0 {
		return
	}

	if delta < 0 {
		p.depth--
	}

	if p.putNewline {
		// from encoding/xml/marshal.go; it seems to be intended
		// to suppress the first newline.
		p.WriteByte('\n')
	} else {
		p.putNewline = true
	}
	for i := 0; i < p.depth; i++ {
		p.WriteString(p.indent)
	}
	if delta > 0 {
		p.depth++
	}
}

func (p *xmlDatasetGenerator) Indent(i string) {
	p.indent = i
}

// validXMLText reports whether s survives an XML round trip unchanged.
// xml.EscapeText silently replaces invalid UTF-8 and characters outside the
// XML Char production.
func validXMLText(s string) bool {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return false
		}
		if !isInCharacterRange(r) {
			return false
		}
		i += size
	}
	return true
}

// isInCharacterRange is the XML 1.0 Char production.
func isInCharacterRange(r rune) bool {
	return r == 0x09 ||
		r == 0x0D ||
		r == 0x0A ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}

func newXMLDatasetGenerator(w io.Writer) *xmlDatasetGenerator {
	return &xmlDatasetGenerator{Writer: bufio.NewWriter(w)}
}
