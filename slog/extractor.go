package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/enrzones"
)

// Ensure LoggingExtractor implements enrzones.Extractor.
var _ enrzones.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with a summary log line per document.
type LoggingExtractor struct {
	next   enrzones.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next enrzones.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (x *LoggingExtractor) Extract(ctx context.Context, doc *enrzones.Document) (result *enrzones.Result, err error) {
	defer func(begin time.Time) {
		var sections, airspaces, warnings int
		if result != nil {
			sections, airspaces, warnings = len(result.Sections), len(result.Airspaces), len(result.Warnings)
		}
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelError
		}
		x.logger.Log(ctx, level, "extract",
			"document", doc.Name,
			"sections", sections,
			"airspaces", airspaces,
			"warnings", warnings,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return x.next.Extract(ctx, doc)
}
