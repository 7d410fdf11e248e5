package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/mantoc"
)

// Run executes the list command. Without section arguments it prints the
// catalog of manual sections instead of a table of contents.
func (c *ListCmd) Run(deps *Dependencies) error {
	if len(c.Sections) == 0 {
		printSections(deps.Stdout)
		return nil
	}

	var paths []string
	for _, section := range c.Sections {
		paths = append(paths, deps.Walker.Section(section)...)
	}
	return runBatch(deps, paths)
}

func printSections(w io.Writer) {
	fmt.Fprintln(w, "Sections of the manual:")
	fmt.Fprintln(w, "=======================")
	for _, s := range mantoc.ManualSections() {
		fmt.Fprintf(w, "%s. %s\n", s.Number, s.Title)
	}
	fmt.Fprintln(w, "--")
	fmt.Fprintln(w, "Provide a section number as an argument to see its table of contents.")
}
