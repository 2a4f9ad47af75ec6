// Package etree implements the enrzones markup query contract for XHTML
// and XML eAIP documents on top of github.com/beevik/etree.
package etree

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/enrzones"
)

// Compile-time interface verification.
var (
	_ enrzones.MarkupParser = (*Parser)(nil)
	_ enrzones.Markup       = (*Document)(nil)
	_ enrzones.Element      = (*Element)(nil)
)

// Parser parses well-formed XHTML or XML documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads an XML document from r. HTML named entities such as
// &nbsp; are accepted.
func (p *Parser) Parse(r io.Reader) (enrzones.Markup, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.Permissive = true
	doc.ReadSettings.Entity = xml.HTMLEntity
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, enrzones.Errorf(enrzones.EINVALID, "failed to parse XML: %v", err)
	}
	if doc.Root() == nil {
		return nil, enrzones.Errorf(enrzones.EINVALID, "document has no root element")
	}

	d := &Document{root: doc.Root(), positions: make(map[*etree.Element]string)}
	counts := make(map[string]int)
	walk(d.root, func(el *etree.Element) {
		tag := strings.ToLower(el.Tag)
		counts[tag]++
		d.positions[el] = fmt.Sprintf("%s[%d]", tag, counts[tag])
	})
	return d, nil
}

// Document is a parsed XML document.
type Document struct {
	root      *etree.Element
	positions map[*etree.Element]string
}

// FindAll returns elements whose tag is one of tags, in document order.
func (d *Document) FindAll(tags ...string) []enrzones.Element {
	return d.findAll(d.root, true, tags)
}

func (d *Document) findAll(from *etree.Element, self bool, tags []string) []enrzones.Element {
	want := make(map[string]bool, len(tags))
	for _, t := range tags {
		want[strings.ToLower(t)] = true
	}

	var elements []enrzones.Element
	walk(from, func(el *etree.Element) {
		if el == from && !self {
			return
		}
		if want[strings.ToLower(el.Tag)] {
			elements = append(elements, &Element{el: el, doc: d})
		}
	})
	return elements
}

// walk visits el and its descendants depth-first in document order.
func walk(el *etree.Element, fn func(*etree.Element)) {
	fn(el)
	for _, child := range el.ChildElements() {
		walk(child, fn)
	}
}

// Element is a single XML element.
type Element struct {
	el  *etree.Element
	doc *Document
}

// Tag returns the lower-case local element name.
func (e *Element) Tag() string {
	return strings.ToLower(e.el.Tag)
}

// Text returns all character data below the element. <br/> and block
// elements contribute line breaks.
func (e *Element) Text() string {
	var b strings.Builder
	writeText(&b, e.el)
	return b.String()
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	a := e.el.SelectAttr(name)
	if a == nil {
		return "", false
	}
	return a.Value, true
}

// Position returns the ordinal token "tag[N]".
func (e *Element) Position() string {
	return e.doc.positions[e.el]
}

// FindAll returns descendants whose tag is one of tags, in document order.
func (e *Element) FindAll(tags ...string) []enrzones.Element {
	return e.doc.findAll(e.el, false, tags)
}

var lineBreakTags = map[string]bool{
	"p": true, "div": true, "li": true, "tr": true, "td": true, "th": true,
	"table": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

func writeText(b *strings.Builder, el *etree.Element) {
	tag := strings.ToLower(el.Tag)
	if tag == "br" {
		b.WriteByte('\n')
		return
	}
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			writeText(b, t)
		}
	}
	if lineBreakTags[tag] {
		b.WriteByte('\n')
	}
}
