package mock

import (
	"context"

	"github.com/fwojciec/enrzones"
)

var _ enrzones.ResultWriter = (*ResultWriter)(nil)

// ResultWriter is a mock implementation of enrzones.ResultWriter.
type ResultWriter struct {
	WriteResultFn func(ctx context.Context, result *enrzones.Result) error
}

func (w *ResultWriter) WriteResult(ctx context.Context, result *enrzones.Result) error {
	return w.WriteResultFn(ctx, result)
}
