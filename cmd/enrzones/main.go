package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/enrzones"
	"github.com/fwojciec/enrzones/enr"
	"github.com/fwojciec/enrzones/etree"
	"github.com/fwojciec/enrzones/goquery"
	enrhttp "github.com/fwojciec/enrzones/http"
	enrslog "github.com/fwojciec/enrzones/slog"
	"github.com/fwojciec/enrzones/yaml"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	ctx := context.Background()

	m := NewMain()
	defer m.Close()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Now returns the current time. Used to pick the AIRAC cycle.
	Now func() time.Time

	// Fetcher overrides the HTTP fetcher, for end-to-end testing.
	Fetcher enrzones.Fetcher

	logFile *lumberjack.Logger
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Now: time.Now,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.logFile != nil {
		return m.logFile.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Now:    m.Now,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("enrzones"),
		kong.Description("Extract danger, prohibited, and restricted areas from eAIP ENR 5.1 pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'enrzones --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger, err = m.newLogger(cli.LogLevel, cli.LogFile, stderr)
	if err != nil {
		return err
	}

	if cli.Config != "" {
		deps.Config, err = yaml.LoadConfig(cli.Config)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", enrzones.ErrorMessage(err))
			return err
		}
	} else {
		deps.Config = enrzones.DefaultConfig()
	}

	x, err := enr.NewExtractor(deps.Config, enr.WithLogger(deps.Logger))
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", enrzones.ErrorMessage(err))
		return err
	}
	deps.Extractor = enrslog.NewLoggingExtractor(x, deps.Logger)

	deps.Parsers = map[string]enrzones.MarkupParser{
		"html":  goquery.NewParser(),
		"xhtml": etree.NewParser(),
	}

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = enrhttp.NewRetryFetcher(
			enrhttp.NewFetcher(
				enrhttp.WithTimeout(cli.Timeout),
				enrhttp.WithRateLimit(cli.Rate, 1),
			),
			enrhttp.DefaultRetryDelays(),
			deps.Logger,
		)
	}
	deps.Fetcher = enrslog.NewLoggingFetcher(fetcher, deps.Logger)
	defer deps.Fetcher.Close()

	return kongCtx.Run(deps)
}

// newLogger writes text logs to stderr, or JSON logs to a rotated file.
func (m *Main) newLogger(level, file string, stderr io.Writer) (*slog.Logger, error) {
	lvl := new(slog.LevelVar)
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if file == "" {
		return slog.New(slog.NewTextHandler(stderr, opts)), nil
	}

	m.logFile = &lumberjack.Logger{
		Filename:   file,
		MaxSize:    32, // MB
		MaxBackups: 3,
	}
	return slog.New(slog.NewJSONHandler(m.logFile, opts)), nil
}
