package mantoc

import (
	"strconv"
	"strings"
)

// NameRecord is the summary extracted from one page: the page's alias
// names in the order they appear in source, and its one-line description.
// Incomplete marks a page whose NAME section carried no description (man
// pages missing the " - " separator, mdoc pages missing .Nd); such records
// are reported, never silently discarded.
type NameRecord struct {
	Names       []string
	Description string
	Section     string
	Incomplete  bool
}

// Outcome is the terminal result of one classify-and-extract call.
// Record is nil when the page classified as other, which is a valid
// skip outcome rather than an error. Depth counts the .so redirections
// followed to reach the final page (0 for a direct page).
type Outcome struct {
	Type        PageType
	Depth       int
	Record      *NameRecord
	Diagnostics []string
}

// Skip reports whether the outcome produced no record.
func (o *Outcome) Skip() bool {
	return o.Record == nil
}

// FormatRecord renders the canonical output line for a record:
// "alias1, alias2(section) - description". When opts.ShowType is set a
// pipe-separated type tag is appended: man, mdoc, or so(N) with N the
// redirect depth. Incomplete records render with whatever text is
// available; callers decide whether to surface them.
func FormatRecord(rec *NameRecord, typ PageType, depth int, opts MacroOptions) string {
	var b strings.Builder
	if len(rec.Names) > 0 {
		b.WriteString(strings.Join(rec.Names, ", "))
		if rec.Section != "" {
			b.WriteString("(" + rec.Section + ")")
		}
		b.WriteString(" - ")
	}
	b.WriteString(rec.Description)
	if opts.ShowType {
		b.WriteString("|")
		b.WriteString(typeTag(typ, depth))
	}
	return b.String()
}

// FormatSkip renders the placeholder line for a page that classified as
// other. It is only emitted when opts.ShowType is set.
func FormatSkip(basename string) string {
	return basename + " - |other"
}

func typeTag(typ PageType, depth int) string {
	if depth > 0 {
		return "so(" + strconv.Itoa(depth) + ")"
	}
	return typ.Kind.String()
}
