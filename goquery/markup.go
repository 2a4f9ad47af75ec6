// Package goquery implements the enrzones markup query contract for HTML
// documents on top of github.com/PuerkitoBio/goquery.
package goquery

import (
	"bytes"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/enrzones"
	"golang.org/x/net/html"
)

// Compile-time interface verification.
var (
	_ enrzones.MarkupParser = (*Parser)(nil)
	_ enrzones.Markup       = (*Document)(nil)
	_ enrzones.Element      = (*Element)(nil)
)

// Parser parses HTML documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads the whole of r and builds a queryable document. Element
// positions are resolved to source lines where the tokenizer allows.
func (p *Parser) Parse(r io.Reader) (enrzones.Markup, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, enrzones.Errorf(enrzones.EINVALID, "failed to parse HTML: %v", err)
	}

	return &Document{
		doc:       doc,
		positions: indexPositions(doc.Nodes, startTagLines(raw)),
	}, nil
}

// Document is a parsed HTML document.
type Document struct {
	doc       *goquery.Document
	positions map[*html.Node]string
}

// FindAll returns elements whose tag is one of tags, in document order.
func (d *Document) FindAll(tags ...string) []enrzones.Element {
	return d.wrap(d.doc.Find(selector(tags)))
}

func (d *Document) wrap(sel *goquery.Selection) []enrzones.Element {
	elements := make([]enrzones.Element, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		elements = append(elements, &Element{sel: s, doc: d})
	})
	return elements
}

// selector turns tag names into a CSS selector group.
func selector(tags []string) string {
	return strings.Join(tags, ", ")
}

// Element is a single HTML element.
type Element struct {
	sel *goquery.Selection
	doc *Document
}

// Tag returns the lower-case element name.
func (e *Element) Tag() string {
	return goquery.NodeName(e.sel)
}

// Text returns the text content with line breaks for <br> and block
// elements.
func (e *Element) Text() string {
	if len(e.sel.Nodes) == 0 {
		return ""
	}
	return renderText(e.sel.Nodes[0])
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

// Position returns "line N" or, failing that, "tag[N]".
func (e *Element) Position() string {
	if len(e.sel.Nodes) == 0 {
		return ""
	}
	return e.doc.positions[e.sel.Nodes[0]]
}

// FindAll returns descendants whose tag is one of tags, in document order.
func (e *Element) FindAll(tags ...string) []enrzones.Element {
	return e.doc.wrap(e.sel.Find(selector(tags)))
}
