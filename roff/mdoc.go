package roff

import (
	"strings"

	"github.com/fwojciec/mantoc"
)

// extractMdoc produces a NameRecord from a page classified as mdoc.
// Aliases accumulate from .Nm macro lines in first-seen order; the
// description starts at .Nd and runs to the end of the NAME section, with
// inline macros substituted through Render. A page without .Nd yields an
// Incomplete record, reported rather than silently discarded.
func extractMdoc(src *mantoc.PageSource, opts mantoc.MacroOptions) (*mantoc.NameRecord, []string) {
	rec := &mantoc.NameRecord{Section: src.Section}
	if src.Basename != "" {
		rec.Names = append(rec.Names, src.Basename)
	}

	defs := map[string]string{}
	inName := false
	haveNd := false
	haveHeader := false
	var desc []string

	for _, raw := range src.Lines {
		line := stripComments(strings.TrimRight(raw, " \t"))
		if line == "" {
			continue
		}

		if !inName {
			switch {
			case strings.HasPrefix(line, ".ds "):
				if parts := strings.Fields(line); len(parts) >= 3 {
					defs[parts[1]] = parts[2]
				}
			case strings.HasPrefix(line, ".Dt") || strings.HasPrefix(line, ".TH"):
				if !haveHeader {
					haveHeader = true
					h := parseHeader(line, defs)
					if h.name != "" {
						appendUnique(&rec.Names, h.name)
					}
					rec.Section = mergeSection(rec.Section, h.section)
				}
			case strings.HasPrefix(line, ".Sh NAME") || strings.HasPrefix(line, `.Sh "NAME"`):
				inName = true
			}
			continue
		}

		// Next section or subsection ends the NAME block.
		if strings.HasPrefix(line, ".Sh") || strings.HasPrefix(line, ".Ss") {
			break
		}

		line = stripFontMacros(line)
		line = unescapeSpecials(line)
		line = expandDefinedStrings(line, defs)
		line = normalizeSpacing(line)

		switch {
		case strings.HasPrefix(line, ".Nm"):
			// Several .Nm lines accumulate for multi-command pages; a
			// bare .Nm refers back to the primary name and adds nothing.
			for _, name := range splitNames(strings.TrimPrefix(line, ".Nm")) {
				appendUnique(&rec.Names, name)
			}
		case strings.HasPrefix(line, ".Nd"):
			haveNd = true
			rest := strings.Trim(strings.TrimSpace(strings.TrimPrefix(line, ".Nd")), `"`)
			if rest != "" {
				desc = append(desc, rest)
			}
		case strings.HasPrefix(line, "."):
			name, args := splitMacro(line)
			if out := Render(name, args, opts); out != "" {
				desc = append(desc, out)
			}
		default:
			// Description continuation text, possibly double quoted.
			if text := strings.Trim(line, `"`); text != "" {
				desc = append(desc, text)
			}
		}
	}

	rec.Description = strings.Join(desc, " ")
	rec.Incomplete = !haveNd

	var diags []string
	if !haveNd {
		diags = append(diags, "no .Nd description in "+src.Path)
	}
	return rec, diags
}

// splitNames parses .Nm arguments: comma separated, possibly double
// quoted, possibly with a trailing comma linking to the next .Nm line.
func splitNames(s string) []string {
	s = strings.ReplaceAll(s, `"`, "")
	var names []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}
