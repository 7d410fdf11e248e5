package roff

import "strings"

// headerInfo carries the page name and section announced by a .TH or .Dt
// title line, which can both disagree with the values derived from the
// file name.
type headerInfo struct {
	name    string
	section string
}

// parseHeader reads a .TH or .Dt title line. The name is lowercased, the
// way whatis prints names, after defined strings and special character
// escapes are resolved.
func parseHeader(line string, defs map[string]string) headerInfo {
	line = expandDefinedStrings(line, defs)
	line = strings.ToLower(line)
	line = unescapeSpecials(line)
	line = strings.ReplaceAll(line, `\\_`, "_")

	var h headerInfo
	fields := splitArgs(line)
	if len(fields) >= 2 {
		h.name = fields[1]
	}
	if len(fields) >= 3 {
		h.section = fields[2]
	}
	return h
}

// mergeSection combines the file-derived section with a differing header
// section, lower section first, as in "1, 8".
func mergeSection(section, header string) string {
	switch {
	case header == "" || header == section:
		return section
	case section == "":
		return header
	case header < section:
		return header + ", " + section
	}
	return section + ", " + header
}
