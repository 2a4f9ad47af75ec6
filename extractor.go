package enrzones

import (
	"context"
	"fmt"
)

// Extractor turns a source document into airspace records.
type Extractor interface {
	// Extract walks the document and returns every valid airspace plus a
	// warning per skipped row. Row failures never abort extraction; an
	// ECONFIG error or context cancellation does.
	Extract(ctx context.Context, doc *Document) (*Result, error)
}

// Result is the outcome of extracting one document.
type Result struct {
	Document  string      `json:"document"`
	Sections  []Section   `json:"sections"`
	Airspaces []*Airspace `json:"airspaces"`
	Warnings  []Warning   `json:"warnings,omitempty"`
}

// Warning records a row that was skipped and why.
type Warning struct {
	Section  string `json:"section,omitempty"`
	Airspace string `json:"airspace,omitempty"`

	// Row is the 1-based index of the row within its table body.
	Row int `json:"row"`

	Code    string `json:"code"`
	Message string `json:"message"`
}

// String returns e.g. "error parsing airspace `EG-D123 Alpha' at #3: geometry is not closed".
func (w Warning) String() string {
	name := w.Airspace
	if name == "" {
		name = "(unknown)"
	}
	return fmt.Sprintf("error parsing airspace `%s' at #%d: %s", name, w.Row, w.Message)
}
