package mantoc

// PageSource holds the raw source of one manual page: its lines in order,
// the path it was read from, and the section and basename derived from the
// filename. It is immutable once read; the core never modifies it.
type PageSource struct {
	Path     string
	Section  string
	Basename string
	Lines    []string
}

// PageKind identifies the markup dialect of a page, or its redirect status.
type PageKind int

// Page kinds produced by classification.
const (
	KindOther PageKind = iota
	KindMan
	KindMdoc
	KindRedirect
)

// String returns the kind's type tag as printed by the --type flag.
func (k PageKind) String() string {
	switch k {
	case KindMan:
		return "man"
	case KindMdoc:
		return "mdoc"
	case KindRedirect:
		return "so"
	default:
		return "other"
	}
}

// PageType is the result of classifying a page. Target is set only for
// KindRedirect and holds the .so argument exactly as written in the source.
type PageType struct {
	Kind   PageKind
	Target string
}

// PageReader loads a manual page file into a PageSource.
type PageReader interface {
	// ReadPage reads the file at path, transparently decompressing stored
	// pages. Returns ENOTFOUND if the file does not exist.
	ReadPage(path string) (*PageSource, error)
}

// PageFetcher resolves a .so redirect target to a page source.
// Targets are relative paths as written in the redirect directive.
type PageFetcher interface {
	// FetchPage returns the source of the page the target points at.
	// Returns ENOTFOUND if no candidate file exists on the search path.
	FetchPage(target string) (*PageSource, error)
}

// PageProcessor runs the classify-extract pipeline for a single page.
// Implementations are synchronous and perform no I/O beyond redirect
// fetches through a caller-supplied PageFetcher, so callers may process
// many pages in parallel.
type PageProcessor interface {
	// Process classifies src and extracts its summary record.
	// Returns EREDIRECTLOOP if the page redirects more than three times.
	Process(src *PageSource) (*Outcome, error)
}
