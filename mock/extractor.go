package mock

import (
	"context"

	"github.com/fwojciec/enrzones"
)

var _ enrzones.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of enrzones.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, doc *enrzones.Document) (*enrzones.Result, error)
}

func (e *Extractor) Extract(ctx context.Context, doc *enrzones.Document) (*enrzones.Result, error) {
	return e.ExtractFn(ctx, doc)
}
