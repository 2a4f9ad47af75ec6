package enrzones

import "io"

// Element is a node of a parsed markup document.
type Element interface {
	// Tag returns the lower-case element name, e.g. "tr".
	Tag() string

	// Text returns the concatenated text content of the element.
	Text() string

	// Attr returns the value of the named attribute.
	Attr(name string) (string, bool)

	// Position returns an opaque token locating the element in the
	// source, used for provenance only.
	Position() string

	// FindAll returns descendants whose tag is one of tags, in
	// document order.
	FindAll(tags ...string) []Element
}

// Markup is a parsed markup document.
type Markup interface {
	// FindAll returns elements whose tag is one of tags, in document order.
	FindAll(tags ...string) []Element
}

// MarkupParser parses raw markup into a queryable document.
type MarkupParser interface {
	Parse(r io.Reader) (Markup, error)
}
