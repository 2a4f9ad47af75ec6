package enrzones

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Document is one parsed source file, such as the ENR 5.1 page of an eAIP.
type Document struct {
	// Name identifies the document in provenance, e.g. "EG-ENR-5.1".
	Name string

	// Digest is a content hash of the raw markup.
	Digest string

	Markup Markup
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Name == "" {
		return Errorf(EINVALID, "document name required")
	}
	if d.Markup == nil {
		return Errorf(EINVALID, "document markup required")
	}
	return nil
}

// HashContent computes the xxHash of raw content as a hex string.
func HashContent(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}

// ResultWriter hands extraction results to a packaging layer.
type ResultWriter interface {
	WriteResult(ctx context.Context, result *Result) error
}
