package mock

import (
	"io"

	"github.com/fwojciec/enrzones"
)

var (
	_ enrzones.MarkupParser = (*MarkupParser)(nil)
	_ enrzones.Markup       = (*Markup)(nil)
	_ enrzones.Element      = (*Element)(nil)
)

// MarkupParser is a mock implementation of enrzones.MarkupParser.
type MarkupParser struct {
	ParseFn func(r io.Reader) (enrzones.Markup, error)
}

func (p *MarkupParser) Parse(r io.Reader) (enrzones.Markup, error) {
	return p.ParseFn(r)
}

// Markup is a mock implementation of enrzones.Markup.
type Markup struct {
	FindAllFn func(tags ...string) []enrzones.Element
}

func (m *Markup) FindAll(tags ...string) []enrzones.Element {
	return m.FindAllFn(tags...)
}

// Element is a static enrzones.Element. Children are searched depth
// first for FindAll.
type Element struct {
	TagName  string
	Content  string
	Attrs    map[string]string
	Pos      string
	Children []*Element
}

func (e *Element) Tag() string {
	return e.TagName
}

func (e *Element) Text() string {
	return e.Content
}

func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.Attrs[name]
	return v, ok
}

func (e *Element) Position() string {
	return e.Pos
}

func (e *Element) FindAll(tags ...string) []enrzones.Element {
	var found []enrzones.Element
	for _, c := range e.Children {
		for _, tag := range tags {
			if c.TagName == tag {
				found = append(found, c)
				break
			}
		}
		found = append(found, c.FindAll(tags...)...)
	}
	return found
}
