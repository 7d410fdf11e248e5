package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/mantoc"
	"github.com/fwojciec/mantoc/batch"
	"github.com/fwojciec/mantoc/manpath"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Walker *manpath.Walker
	Runner *batch.Runner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Dq          bool     `help:"Interpret .Dq (double quote) macros"`
	Pa          string   `help:"Interpret .Pa (path) macros as quoted strings" enum:"none,single,double" default:"none"`
	Xr          bool     `help:"Interpret .Xr (cross reference) macros"`
	Type        bool     `short:"t" help:"Print the type of each page (man, mdoc, other, so(N))"`
	No          []string `short:"n" help:"Discard man or mdoc pages (repeatable)" enum:"man,mdoc"`
	Concurrency int      `short:"c" default:"10" help:"Concurrent page limit"`
	Debug       bool     `help:"Enable debug logging"`

	List   ListCmd   `cmd:"" help:"List the table of contents of manual sections"`
	Whatis WhatisCmd `cmd:"" help:"Summarize specific manual page files, like whatis(1)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Sections []string `arg:"" optional:"" help:"Manual section numbers to list"`
}

// WhatisCmd is the "whatis" subcommand.
type WhatisCmd struct {
	Files []string `arg:"" name:"file" type:"existingfile" help:"Manual page files to process"`
}

// runBatch processes the given page files and prints the resulting
// summary lines. A run with failed pages returns an error so the process
// exits non-zero, after the surviving lines have been printed.
func runBatch(deps *Dependencies, paths []string) error {
	res, err := deps.Runner.Run(deps.Ctx, paths)
	if err != nil {
		return err
	}

	for _, line := range res.Lines {
		fmt.Fprintln(deps.Stdout, line)
	}

	deps.Logger.Debug("batch finished",
		"records", len(res.Lines),
		"skipped", res.Skipped,
		"failed", res.Failed,
	)

	if res.Failed > 0 {
		return mantoc.Errorf(mantoc.EINTERNAL, "%d page(s) could not be processed", res.Failed)
	}
	return nil
}
