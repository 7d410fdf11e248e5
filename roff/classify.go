// Package roff implements the markup interpreter core: dialect
// classification of raw *roff page source, NAME-section extraction for the
// man and mdoc dialects, inline macro interpretation, and bounded .so
// redirect resolution.
package roff

import (
	"strings"

	"github.com/fwojciec/mantoc"
)

// Classify determines a page's dialect or redirect status. The first
// recognized top-level directive wins: .Sh marks an mdoc page, .SH marks a
// man page, and .so (or the non-standard .SO) marks a source redirection
// whose argument is returned untouched. A page with none of these
// classifies as other, which is a valid terminal outcome, not an error.
func Classify(src *mantoc.PageSource, opts mantoc.MacroOptions) mantoc.PageType {
	for _, raw := range src.Lines {
		line := stripComments(strings.TrimRight(raw, " \t"))
		switch {
		case strings.HasPrefix(line, ".Sh"):
			if !opts.NoMdoc {
				return mantoc.PageType{Kind: mantoc.KindMdoc}
			}
		case strings.HasPrefix(line, ".SH"):
			if !opts.NoMan {
				return mantoc.PageType{Kind: mantoc.KindMan}
			}
		case strings.HasPrefix(line, ".so ") || strings.HasPrefix(line, ".SO "):
			if fields := strings.Fields(line); len(fields) > 1 {
				return mantoc.PageType{Kind: mantoc.KindRedirect, Target: fields[1]}
			}
		}
	}
	return mantoc.PageType{Kind: mantoc.KindOther}
}
