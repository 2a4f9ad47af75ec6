package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/enrzones"
)

// Ensure LoggingResultWriter implements enrzones.ResultWriter.
var _ enrzones.ResultWriter = (*LoggingResultWriter)(nil)

// LoggingResultWriter wraps a ResultWriter with debug logging.
type LoggingResultWriter struct {
	next   enrzones.ResultWriter
	logger *slog.Logger
}

// NewLoggingResultWriter creates a new LoggingResultWriter.
func NewLoggingResultWriter(next enrzones.ResultWriter, logger *slog.Logger) *LoggingResultWriter {
	return &LoggingResultWriter{next: next, logger: logger}
}

// WriteResult delegates to the wrapped writer and logs the operation.
func (w *LoggingResultWriter) WriteResult(ctx context.Context, result *enrzones.Result) (err error) {
	defer func(begin time.Time) {
		w.logger.Debug("write result",
			"document", result.Document,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteResult(ctx, result)
}
