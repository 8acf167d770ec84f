package serbench

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"
)

type xmlDatasetParser struct {
	xmlDecoder *xml.Decoder
}

func (p *xmlDatasetParser) error(e string, args ...interface{}) {
	panic(&ParseError{
		Format: "XML",
		Offset: p.xmlDecoder.InputOffset(),
		Err:    fmt.Errorf(e, args...),
	})
}

func (p *xmlDatasetParser) unexpected(token xml.Token) {
	switch token := token.(type) {
	case xml.StartElement:
		p.error("unexpected element <%s>", token.Name.Local)
	case xml.EndElement:
		p.error("unexpected closing tag </%s>", token.Name.Local)
	case xml.CharData:
		p.error("unexpected character data %q", string(token))
	default:
		p.error("unexpected XML token `%v`", token)
	}
}

func (p *xmlDatasetParser) parseDocument() (people Dataset, parseError error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); ok {
				panic(r)
			}
			people = nil
			if perr, ok := r.(*ParseError); ok {
				parseError = perr
			} else {
				parseError = &ParseError{Format: "XML", Offset: p.xmlDecoder.InputOffset(), Err: r.(error)}
			}
		}
	}()

	root, ok := p.nextElement()
	if !ok {
		p.error("no elements encountered")
	}
	if root.Name.Local != xmlPeopleTag {
		p.unexpected(root)
	}
	people = p.parsePeople()

	if extra, ok := p.nextElement(); ok {
		p.error("unexpected element <%s> after document root", extra.Name.Local)
	}
	return
}

// nextElement skips the prolog (or epilog) up to the next start element.
// It returns false when the input ends first.
func (p *xmlDatasetParser) nextElement() (xml.StartElement, bool) {
	for {
		token, err := p.xmlDecoder.Token()
		if err == io.EOF {
			return xml.StartElement{}, false
		} else if err != nil {
			p.error("%v", err)
		}

		switch token := token.(type) {
		case xml.StartElement:
			return token, true
		case xml.CharData:
			if !isBlank(token) {
				p.unexpected(token)
			}
		case xml.ProcInst, xml.Directive, xml.Comment:
			continue
		default:
			p.unexpected(token)
		}
	}
}

func (p *xmlDatasetParser) next() xml.Token {
	token, err := p.xmlDecoder.Token()
	if err == io.EOF {
		p.error("%v", io.ErrUnexpectedEOF)
	} else if err != nil {
		p.error("%v", err)
	}
	return token
}

// nextChild returns the next child element of the element whose opening tag
// has been consumed, or false once its closing tag is reached.
func (p *xmlDatasetParser) nextChild() (xml.StartElement, bool) {
	for {
		token := p.next()
		switch token := token.(type) {
		case xml.StartElement:
			return token, true
		case xml.EndElement:
			return xml.StartElement{}, false
		case xml.CharData:
			if !isBlank(token) {
				p.unexpected(token)
			}
		case xml.Comment:
			continue
		default:
			p.unexpected(token)
		}
	}
}

func isBlank(b []byte) bool {
	for _, c := range b {
		if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			return false
		}
	}
	return true
}

// opening tag has been consumed
func (p *xmlDatasetParser) getNextString(element xml.StartElement) string {
	var sb strings.Builder
outer:
	for {
		token := p.next()
		switch token := token.(type) {
		case xml.EndElement:
			break outer
		case xml.CharData:
			sb.Write(token)
		case xml.Comment:
			continue
		default:
			p.unexpected(token)
		}
	}
	return sb.String()
}

func (p *xmlDatasetParser) parseIntegerElement(element xml.StartElement) int {
	s := strings.TrimSpace(p.getNextString(element))
	if len(s) == 0 {
		p.error("empty <%s>", element.Name.Local)
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		var nerr *strconv.NumError
		if errors.As(err, &nerr) {
			err = nerr.Err
		}
		p.error("invalid <%s> %q: %v", element.Name.Local, s, err)
	}
	return n
}

func (p *xmlDatasetParser) parsePeople() Dataset {
	people := make(Dataset, 0, 32)
	for {
		child, ok := p.nextChild()
		if !ok {
			return people
		}
		if child.Name.Local != xmlPersonTag {
			p.unexpected(child)
		}
		people = append(people, p.parsePerson())
	}
}

func (p *xmlDatasetParser) parsePerson() Person {
	var (
		person                       Person
		haveName, haveAge, haveAddrs bool
	)
	for {
		child, ok := p.nextChild()
		if !ok {
			break
		}

		var seen *bool
		switch child.Name.Local {
		case xmlNameTag:
			seen = &haveName
			person.Name = p.getNextString(child)
		case xmlAgeTag:
			seen = &haveAge
			person.Age = p.parseIntegerElement(child)
		case xmlAddressTag:
			seen = &haveAddrs
			person.Address = p.parseAddress()
		default:
			p.unexpected(child)
		}
		if *seen {
			p.error("duplicate <%s> in <%s>", child.Name.Local, xmlPersonTag)
		}
		*seen = true
	}

	switch {
	case !haveName:
		panic(p.missing(xmlNameTag, xmlPersonTag))
	case !haveAge:
		panic(p.missing(xmlAgeTag, xmlPersonTag))
	case !haveAddrs:
		panic(p.missing(xmlAddressTag, xmlPersonTag))
	}
	return person
}

func (p *xmlDatasetParser) parseAddress() Address {
	var (
		address              Address
		haveStreet, haveCity bool
	)
	for {
		child, ok := p.nextChild()
		if !ok {
			break
		}

		var seen *bool
		switch child.Name.Local {
		case xmlStreetTag:
			seen = &haveStreet
			address.Street = p.getNextString(child)
		case xmlCityTag:
			seen = &haveCity
			address.City = p.getNextString(child)
		default:
			p.unexpected(child)
		}
		if *seen {
			p.error("duplicate <%s> in <%s>", child.Name.Local, xmlAddressTag)
		}
		*seen = true
	}

	switch {
	case !haveStreet:
		panic(p.missing(xmlStreetTag, xmlAddressTag))
	case !haveCity:
		panic(p.missing(xmlCityTag, xmlAddressTag))
	}
	return address
}

func (p *xmlDatasetParser) missing(field, parent string) *ParseError {
	return &ParseError{
		Format: "XML",
		Offset: p.xmlDecoder.InputOffset(),
		Err:    missingFieldError{field, parent},
	}
}

func newXMLDatasetParser(r io.Reader) *xmlDatasetParser {
	return &xmlDatasetParser{xml.NewDecoder(r)}
}
