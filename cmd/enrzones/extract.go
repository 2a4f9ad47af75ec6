package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/enrzones"
	"github.com/fwojciec/enrzones/fs"
	enrslog "github.com/fwojciec/enrzones/slog"
	"golang.org/x/sync/errgroup"
)

// source is one document to extract: a local file or a URL.
type source struct {
	name string
	load func(ctx context.Context) ([]byte, error)
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	sources := make([]source, len(c.Files))
	for i, file := range c.Files {
		sources[i] = source{
			name: documentName(file),
			load: func(context.Context) ([]byte, error) {
				return os.ReadFile(file)
			},
		}
	}
	return c.OutputFlags.run(deps, sources)
}

// run extracts every source concurrently, then emits the results in the
// order the sources were given.
func (o *OutputFlags) run(deps *Dependencies, sources []source) error {
	parser, ok := deps.Parsers[o.Markup]
	if !ok {
		return fmt.Errorf("unsupported markup %q", o.Markup)
	}

	results := make([]*enrzones.Result, len(sources))
	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(max(o.Concurrency, 1))
	for i, src := range sources {
		g.Go(func() error {
			raw, err := src.load(ctx)
			if err != nil {
				return fmt.Errorf("%s: %w", src.name, err)
			}
			markup, err := parser.Parse(bytes.NewReader(raw))
			if err != nil {
				return fmt.Errorf("%s: %w", src.name, err)
			}
			result, err := deps.Extractor.Extract(ctx, &enrzones.Document{
				Name:   src.name,
				Digest: enrzones.HashContent(raw),
				Markup: markup,
			})
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", describe(err))
		return err
	}

	for _, result := range results {
		for _, w := range result.Warnings {
			fmt.Fprintf(deps.Stderr, "%s: %s\n", result.Document, w)
		}
	}

	switch {
	case deps.Writer != nil:
		return writeAll(deps.Ctx, deps.Writer, results)
	case o.Out != "":
		return o.commit(deps, results)
	case o.Format == "json":
		return writeJSON(deps.Stdout, results)
	default:
		return writeTable(deps.Stdout, results)
	}
}

// commit writes all results atomically into the --out directory.
func (o *OutputFlags) commit(deps *Dependencies, results []*enrzones.Result) error {
	dir := filepath.Clean(o.Out)
	store := fs.NewStore(filepath.Dir(dir), filepath.Base(dir))
	w := enrslog.NewLoggingResultWriter(store, deps.Logger)
	if err := writeAll(deps.Ctx, w, results); err != nil {
		_ = store.Abort()
		fmt.Fprintf(deps.Stderr, "error saving: %v\n", err)
		return err
	}
	if err := store.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error committing: %v\n", err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Saved %d documents to %s\n", len(results), dir)
	return nil
}

func writeAll(ctx context.Context, w enrzones.ResultWriter, results []*enrzones.Result) error {
	for _, result := range results {
		if err := w.WriteResult(ctx, result); err != nil {
			return err
		}
	}
	return nil
}

// documentName derives a document name from a file path or URL,
// e.g. "/tmp/EG-ENR-5.1-en-GB.html" → "EG-ENR-5.1-en-GB".
func documentName(p string) string {
	base := path.Base(filepath.ToSlash(p))
	switch ext := path.Ext(base); strings.ToLower(ext) {
	case ".html", ".htm", ".xhtml", ".xml":
		return strings.TrimSuffix(base, ext)
	}
	return base
}

// describe returns the message of application errors and the full text
// of anything else.
func describe(err error) string {
	if enrzones.ErrorCode(err) == enrzones.EINTERNAL {
		return err.Error()
	}
	return enrzones.ErrorMessage(err)
}
