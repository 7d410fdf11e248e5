package mantoc

// PathQuoting selects how .Pa (path) macro arguments are quoted.
type PathQuoting int

// PathQuoting values.
const (
	PathQuoteNone PathQuoting = iota
	PathQuoteSingle
	PathQuoteDouble
)

// MacroOptions configures macro interpretation and record formatting for
// one run. The value is immutable and read-only to the core, so it may be
// shared freely across pages processed in parallel.
type MacroOptions struct {
	// InterpretDq renders .Dq arguments wrapped in double quotes.
	InterpretDq bool

	// PathQuoting selects quoting for the first .Pa argument.
	PathQuoting PathQuoting

	// InterpretXr renders .Xr NAME SECTION as "NAME(SECTION)".
	InterpretXr bool

	// ShowType appends a pipe-separated type tag to each output line.
	ShowType bool

	// NoMan suppresses recognition of man pages; they classify as other.
	NoMan bool

	// NoMdoc suppresses recognition of mdoc pages; they classify as other.
	NoMdoc bool
}
