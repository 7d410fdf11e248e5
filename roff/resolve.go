package roff

import (
	"github.com/fwojciec/mantoc"
)

// Ensure Processor implements mantoc.PageProcessor at compile time.
var _ mantoc.PageProcessor = (*Processor)(nil)

// maxRedirectDepth bounds .so redirect chains. The fourth hop fails the
// page with EREDIRECTLOOP; chains are depth-bounded, not cycle-detected.
const maxRedirectDepth = 3

// Processor runs the classify-extract pipeline for single pages. It holds
// no per-page state and performs no I/O beyond redirect fetches, so a
// single Processor may be shared across pages processed concurrently.
type Processor struct {
	// Fetcher resolves .so redirect targets. Pages that redirect fail
	// with EINVALID when no fetcher is configured.
	Fetcher mantoc.PageFetcher

	// Options configures macro interpretation. Read-only.
	Options mantoc.MacroOptions
}

// Process classifies src, follows .so redirections up to maxRedirectDepth,
// and extracts the summary record with the matching dialect extractor.
// The returned outcome carries the depth of the resolved chain for type
// tag rendering. A page that classifies as other, directly or through a
// redirect, yields a skip outcome with a nil record.
func (p *Processor) Process(src *mantoc.PageSource) (*mantoc.Outcome, error) {
	cur := src
	depth := 0
	for {
		typ := Classify(cur, p.Options)
		switch typ.Kind {
		case mantoc.KindRedirect:
			depth++
			if depth > maxRedirectDepth {
				return nil, mantoc.Errorf(mantoc.EREDIRECTLOOP, "too many .so source redirections for %s", src.Path)
			}
			if p.Fetcher == nil {
				return nil, mantoc.Errorf(mantoc.EINVALID, "page %s redirects to %s but no fetcher is configured", cur.Path, typ.Target)
			}
			next, err := p.Fetcher.FetchPage(typ.Target)
			if err != nil {
				return nil, err
			}
			cur = next
		case mantoc.KindMan:
			rec, diags := extractMan(cur, p.Options)
			return &mantoc.Outcome{Type: typ, Depth: depth, Record: rec, Diagnostics: diags}, nil
		case mantoc.KindMdoc:
			rec, diags := extractMdoc(cur, p.Options)
			return &mantoc.Outcome{Type: typ, Depth: depth, Record: rec, Diagnostics: diags}, nil
		default:
			return &mantoc.Outcome{Type: typ, Depth: depth}, nil
		}
	}
}
