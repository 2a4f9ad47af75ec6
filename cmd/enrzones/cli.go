package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/enrzones"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Now    func() time.Time

	Config    *enrzones.Config
	Extractor enrzones.Extractor
	Fetcher   enrzones.Fetcher

	// Parsers maps a --markup flavour to its parser.
	Parsers map[string]enrzones.MarkupParser

	// Writer overrides output for end-to-end testing. When nil, results
	// go to stdout or, with --out, to an output directory.
	Writer enrzones.ResultWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config   string        `short:"C" help:"YAML file overlaying the built-in ENR 5.1 tables"`
	LogLevel string        `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Minimum log level (debug, info, warn, error)"`
	LogFile  string        `name:"log-file" help:"Write JSON logs to a rotated file instead of stderr"`
	Timeout  time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Rate     float64       `default:"1" help:"Maximum fetches per second (0 disables limiting)"`

	Extract  ExtractCmd  `cmd:"" help:"Extract airspaces from local eAIP pages"`
	Fetch    FetchCmd    `cmd:"" help:"Download an eAIP page and extract airspaces"`
	URL      URLCmd      `cmd:"" name:"url" help:"Print the address of an eAIP page"`
	Sections SectionsCmd `cmd:"" help:"List configured sections and whether they are parsed"`
	Defaults DefaultsCmd `cmd:"" help:"Print the effective configuration as YAML"`
}

// OutputFlags are shared by commands that produce results.
type OutputFlags struct {
	Format      string `short:"f" default:"table" enum:"table,json" help:"Output format (table, json)"`
	Out         string `short:"o" help:"Write one JSON file per document into this directory"`
	Markup      string `short:"m" default:"html" enum:"html,xhtml" help:"Markup flavour (html, xhtml)"`
	Concurrency int    `short:"c" default:"4" help:"Documents processed in parallel"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Files []string `arg:"" help:"eAIP ENR 5.1 pages"`
	OutputFlags `embed:""`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	AIRAC   string   `name:"airac" help:"Any date within the wanted AIRAC cycle (YYYY-MM-DD); defaults to today"`
	BaseURL string   `name:"base-url" help:"Publication root; defaults to the NATS eAIP"`
	Pages   []string `arg:"" optional:"" help:"eAIP pages to fetch (default: ENR-5.1)"`
	OutputFlags `embed:""`
}

// URLCmd is the "url" subcommand.
type URLCmd struct {
	AIRAC string `name:"airac" help:"Any date within the wanted AIRAC cycle (YYYY-MM-DD); defaults to today"`
	Page  string `arg:"" optional:"" help:"eAIP page (default: ENR-5.1)"`
}

// SectionsCmd is the "sections" subcommand.
type SectionsCmd struct{}

// DefaultsCmd is the "defaults" subcommand.
type DefaultsCmd struct{}
