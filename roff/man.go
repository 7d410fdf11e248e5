package roff

import (
	"strings"

	"github.com/fwojciec/mantoc"
)

// extractMan produces a NameRecord from a page classified as man. It runs
// the whatis-compatible stripping passes over the NAME section, joins the
// surviving text, and splits it at the first " - " separator: the left
// side, comma-split, becomes the alias list and the right side the
// description. Without a separator the record is Incomplete and the joined
// text is retained as an unstructured description for diagnostics.
func extractMan(src *mantoc.PageSource, opts mantoc.MacroOptions) (*mantoc.NameRecord, []string) {
	rec := &mantoc.NameRecord{Section: src.Section}
	var diags []string

	defs := map[string]string{}
	inName := false
	inRegion := false
	regionOpen := ""
	var header headerInfo
	var kept []string

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
			case strings.HasPrefix(line, ".TH") || strings.HasPrefix(line, ".Dt"):
				if header.name == "" {
					header = parseHeader(line, defs)
					rec.Section = mergeSection(rec.Section, header.section)
				}
			case strings.HasPrefix(line, ".SH NAME") || strings.HasPrefix(line, `.SH "NAME"`):
				inName = true
			}
			continue
		}

		// .ig and .de regions run through their two-dot terminator; an
		// unterminated region extends to end of input.
		if inRegion {
			if strings.HasPrefix(line, "..") {
				inRegion = false
			}
			continue
		}
		if strings.HasPrefix(line, ".ig") || strings.HasPrefix(line, ".de") {
			inRegion = true
			regionOpen = strings.Fields(line)[0]
			continue
		}

		line = stripFontMacros(line)
		line = unescapeSpecials(line)
		line = expandDefinedStrings(line, defs)
		line = normalizeSpacing(line)

		// Next section-start directive ends the NAME section.
		if strings.HasPrefix(line, ".SH") || strings.HasPrefix(line, ".SS") {
			break
		}

		// whatis-compatible: unknown single-line requests contribute nothing.
		if strings.HasPrefix(line, ".") {
			continue
		}

		// A dash with no leading space at line start opens the
		// description; give it the canonical spaced separator.
		if strings.HasPrefix(line, "-") {
			line = "- " + strings.TrimSpace(strings.TrimPrefix(line, "-"))
		}
		kept = append(kept, line)
	}

	if inRegion {
		diags = append(diags, "unterminated "+regionOpen+" region in "+src.Path)
	}

	joined := strings.TrimSpace(spaceRunRe.ReplaceAllString(strings.Join(kept, " "), " "))

	left, right, found := strings.Cut(joined, " - ")
	if !found {
		rec.Description = joined
		rec.Incomplete = true
		diags = append(diags, "no name/description separator in "+src.Path)
		return rec, diags
	}

	if src.Basename != "" {
		appendUnique(&rec.Names, src.Basename)
	}
	if header.name != "" {
		appendUnique(&rec.Names, header.name)
	}
	// Spaces are noise only in comma-separated alias lists; a single
	// multiword name keeps its spacing.
	if strings.Contains(left, ",") {
		left = strings.ReplaceAll(left, " ", "")
	}
	for _, name := range strings.Split(left, ",") {
		if name != "" {
			appendUnique(&rec.Names, name)
		}
	}
	rec.Description = strings.TrimSpace(right)
	return rec, diags
}
