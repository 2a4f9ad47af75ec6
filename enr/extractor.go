// Package enr extracts danger, prohibited, and restricted areas from the
// ENR 5.1 tables of an eAIP.
//
// The document is read as a sequence of section headings and table
// bodies. A heading switches table parsing on or off; within a parsed
// table body each row is a header (starts a new airspace), a comment (a
// single full-width cell appended to the current airspace's remarks), or
// a data row (geometry, vertical limits, timetable, and remarks of the
// current airspace). Failures are isolated per row.
package enr

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"

	"github.com/fwojciec/enrzones"
	"github.com/fwojciec/enrzones/eaip"
)

const (
	headingTag = "h4"
	headTag    = "thead"
	bodyTag    = "tbody"
	rowTag     = "tr"
	cellTag    = "td"
)

// Ensure Extractor implements enrzones.Extractor at compile time.
var _ enrzones.Extractor = (*Extractor)(nil)

// Extractor implements enrzones.Extractor for ENR 5.1 documents.
type Extractor struct {
	geometries enrzones.GeometryParser
	layers     enrzones.LayerParser
	timetables enrzones.TimetableParser
	logger     *slog.Logger

	config    *enrzones.Config
	sections  *enrzones.SectionIndex
	header    *regexp.Regexp
	footnotes *enrzones.FootnoteStripper
	remarks   *enrzones.RemarksAggregator
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithGeometryParser replaces the default eaip.GeometryParser.
func WithGeometryParser(p enrzones.GeometryParser) Option {
	return func(x *Extractor) {
		x.geometries = p
	}
}

// WithLayerParser replaces the default eaip.LayerParser.
func WithLayerParser(p enrzones.LayerParser) Option {
	return func(x *Extractor) {
		x.layers = p
	}
}

// WithTimetableParser replaces the default eaip.TimetableParser.
func WithTimetableParser(p enrzones.TimetableParser) Option {
	return func(x *Extractor) {
		x.timetables = p
	}
}

// WithLogger sets the logger for section traces and row warnings.
// Defaults to discarding all output.
func WithLogger(l *slog.Logger) Option {
	return func(x *Extractor) {
		x.logger = l
	}
}

// NewExtractor validates cfg and builds an extractor holding its own copy
// of the configuration.
func NewExtractor(cfg *enrzones.Config, opts ...Option) (*Extractor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg, err := cfg.Clone()
	if err != nil {
		return nil, enrzones.Errorf(enrzones.ECONFIG, "copy configuration: %v", err)
	}

	sections, err := enrzones.NewSectionIndex(cfg.SectionPattern, cfg.Sections)
	if err != nil {
		return nil, err
	}
	footnotes, err := enrzones.NewFootnoteStripper(cfg.FootnotePattern)
	if err != nil {
		return nil, err
	}

	x := &Extractor{
		geometries: eaip.NewGeometryParser(),
		layers:     eaip.NewLayerParser(),
		timetables: eaip.NewTimetableParser(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		config:     cfg,
		sections:   sections,
		header:     regexp.MustCompile(cfg.HeaderPattern),
		footnotes:  footnotes,
		remarks: &enrzones.RemarksAggregator{
			Titles:   cfg.RemarksTitles,
			Suppress: cfg.AlwaysActive,
		},
	}
	for _, opt := range opts {
		opt(x)
	}
	return x, nil
}

// Extract implements enrzones.Extractor.
func (x *Extractor) Extract(ctx context.Context, doc *enrzones.Document) (*enrzones.Result, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	result := &enrzones.Result{Document: doc.Name}
	out := enrzones.NewAirspaceSet()

	var (
		section enrzones.Section
		skip    bool
		prevTag string
		headed  bool
	)
	for _, el := range doc.Markup.FindAll(headingTag, headTag, bodyTag) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		switch el.Tag() {
		case headingTag:
			s, err := x.sections.Lookup(el.Text())
			if err != nil {
				return nil, fmt.Errorf("%s: %w", doc.Name, err)
			}
			section, skip = s, !s.Parse
			result.Sections = append(result.Sections, s)
			if skip {
				x.logger.Info("skipping section", "section", s.Number)
			} else {
				x.logger.Info("parsing section", "section", s.Number)
			}
			headed = false
		case headTag:
			headed = true
		case bodyTag:
			// Only bodies of tables with a header: <thead> ~ <tbody>.
			headed = headed && (prevTag == headTag || prevTag == bodyTag)
			if skip || !headed {
				break
			}
			t := &table{doc: doc, section: section.Number, out: out}
			result.Warnings = append(result.Warnings, x.extractTable(t, el)...)
		}
		prevTag = el.Tag()
	}

	result.Airspaces = out.Airspaces()
	return result, nil
}
