// Package batch orchestrates whatis-style processing of many manual pages.
// It coordinates page reading, the classify-extract pipeline, cross-page
// deduplication, and alphabetic ordering of the emitted summary lines.
package batch

import (
	"context"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/mantoc"
	"golang.org/x/sync/errgroup"
)

// defaultConcurrency bounds parallel page processing when the caller does
// not set a limit.
const defaultConcurrency = 10

// Runner processes batches of manual page files.
type Runner struct {
	Reader      mantoc.PageReader
	Processor   mantoc.PageProcessor
	Options     mantoc.MacroOptions
	Concurrency int
}

// Result aggregates one run. Lines are sorted alphabetically with exact
// duplicates removed. Failures never abort the batch; they are counted
// and reported through Diagnostics.
type Result struct {
	Lines       []string
	Skipped     int
	Failed      int
	Diagnostics []string
}

// pageResult holds the outcome of processing a single page file.
type pageResult struct {
	position int
	path     string
	line     string
	skip     bool
	diags    []string
	err      error
}

// Run processes the given page files, up to Concurrency at a time, and
// returns the aggregated result. Pages are processed independently; a
// page that fails is excluded from output while the batch continues.
func (r *Runner) Run(ctx context.Context, paths []string) (*Result, error) {
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	resultCh := make(chan pageResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, path := range paths {
			i, path := i, path
			g.Go(func() error {
				resultCh <- r.processPage(gctx, i, path)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect in submission order so dedup keeps the first occurrence.
	results := make([]pageResult, len(paths))
	for pr := range resultCh {
		results[pr.position] = pr
	}

	res := &Result{}
	seen := make(map[uint64]struct{})
	for _, pr := range results {
		res.Diagnostics = append(res.Diagnostics, pr.diags...)

		if pr.err != nil {
			res.Failed++
			res.Diagnostics = append(res.Diagnostics, pr.path+": "+mantoc.ErrorMessage(pr.err))
			continue
		}
		if pr.skip {
			res.Skipped++
		}
		if pr.line == "" {
			continue
		}

		h := xxhash.Sum64String(pr.line)
		if _, dup := seen[h]; dup {
			continue
		}
		seen[h] = struct{}{}
		res.Lines = append(res.Lines, pr.line)
	}

	sort.Strings(res.Lines)
	return res, nil
}

func (r *Runner) processPage(ctx context.Context, position int, path string) pageResult {
	if err := ctx.Err(); err != nil {
		return pageResult{position: position, path: path, err: mantoc.Errorf(mantoc.EINTERNAL, "canceled: %s", err)}
	}

	src, err := r.Reader.ReadPage(path)
	if err != nil {
		return pageResult{position: position, path: path, err: err}
	}

	out, err := r.Processor.Process(src)
	if err != nil {
		return pageResult{position: position, path: path, err: err}
	}

	pr := pageResult{position: position, path: path, diags: out.Diagnostics}
	if out.Skip() {
		pr.skip = true
		if r.Options.ShowType {
			pr.line = mantoc.FormatSkip(src.Basename)
		}
		return pr
	}

	pr.line = mantoc.FormatRecord(out.Record, out.Type, out.Depth, r.Options)
	return pr
}
