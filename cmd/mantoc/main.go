package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/mantoc"
	"github.com/fwojciec/mantoc/batch"
	"github.com/fwojciec/mantoc/gzip"
	"github.com/fwojciec/mantoc/manpath"
	"github.com/fwojciec/mantoc/roff"
	mslog "github.com/fwojciec/mantoc/slog"
	"github.com/google/uuid"
)

const version = "1.1.3"

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Manual search-path directories. Defaults to the MANPATH-derived
	// directories; set before calling Run() to override in tests.
	ManDirs []string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("mantoc"),
		kong.Description("Show the Manual table of contents without a whatis database"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Help and version are handled before parsing so they work without
	// a command.
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'mantoc --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}
	for _, arg := range args {
		if arg == "--version" {
			fmt.Fprintf(stdout, "mantoc - show Manual table of contents v%s\n", version)
			return nil
		}
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Debug || os.Getenv("MANTOC_DEBUG") != "" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With("run", uuid.NewString())

	opts := macroOptions(cli)

	dirs := m.ManDirs
	if dirs == nil {
		dirs = manpath.Directories()
	}

	// Wire the core pipeline: gzip-aware reading, classify-extract with
	// manpath-backed redirect resolution, per-page logging.
	reader := gzip.NewReader()
	processor := mslog.NewLoggingProcessor(&roff.Processor{
		Fetcher: &manpath.Fetcher{Dirs: dirs, Reader: reader},
		Options: opts,
	}, logger)

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Walker: &manpath.Walker{Dirs: dirs, Logger: logger},
		Runner: &batch.Runner{
			Reader:      reader,
			Processor:   processor,
			Options:     opts,
			Concurrency: cli.Concurrency,
		},
	}
	return kongCtx.Run(deps)
}

// macroOptions translates parsed flags into the run's macro options.
func macroOptions(cli *CLI) mantoc.MacroOptions {
	opts := mantoc.MacroOptions{
		InterpretDq: cli.Dq,
		InterpretXr: cli.Xr,
		ShowType:    cli.Type,
	}
	switch cli.Pa {
	case "single":
		opts.PathQuoting = mantoc.PathQuoteSingle
	case "double":
		opts.PathQuoting = mantoc.PathQuoteDouble
	}
	for _, dialect := range cli.No {
		switch dialect {
		case "man":
			opts.NoMan = true
		case "mdoc":
			opts.NoMdoc = true
		}
	}
	return opts
}
