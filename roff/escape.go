package roff

import (
	"regexp"
	"strings"
)

var (
	bareControlRe   = regexp.MustCompile(`^\.[ \t]*$`)
	commentLineRe   = regexp.MustCompile(`^\.\\".*`)
	inlineCommentRe = regexp.MustCompile(`\\".*`)
	gnuCommentRe    = regexp.MustCompile(`\\#.*`)

	fontMacroRe = regexp.MustCompile(`^\.(B|BI|BR|CB|CI|CR|CW|I|IB|IR|LG|NL|P|R|RB|RI|SB|SM) +`)

	fontEscapeLongRe  = regexp.MustCompile(`\\f\\\*\[[^\]]*\]`)
	fontEscapeRe      = regexp.MustCompile(`\\f[^\*]`)
	trailingBackslash = regexp.MustCompile(` *\\$`)

	spaceRunRe = regexp.MustCompile(`[ \t]+`)
	dashRunRe  = regexp.MustCompile(`-+`)
)

// stripComments removes *roff comments from a single line. A line holding
// only a control character, or starting with the .\" comment escape, is
// dropped entirely; text after an unescaped inline \" comment escape, or
// the \# GNU troff variant, is cut to the end of the line.
func stripComments(line string) string {
	line = bareControlRe.ReplaceAllString(line, "")
	line = commentLineRe.ReplaceAllString(line, "")
	line = inlineCommentRe.ReplaceAllString(line, "")
	line = gnuCommentRe.ReplaceAllString(line, "")
	return line
}

// stripFontMacros removes a leading font or style macro (the bold, italic,
// roman alternation family), keeping its arguments.
func stripFontMacros(line string) string {
	return fontMacroRe.ReplaceAllString(line, "")
}

// unescapeSpecials replaces the special character escapes that matter for
// one-line summaries and removes font escapes embedded mid-line.
// "\ " is not processed here as it may still be useful for spacing.
func unescapeSpecials(line string) string {
	if !strings.Contains(line, `\`) {
		return line
	}
	line = strings.ReplaceAll(line, `\&`, "")
	line = strings.ReplaceAll(line, `\.`, ".")
	line = strings.ReplaceAll(line, `\-`, "-")
	line = strings.ReplaceAll(line, `\(aq`, "'")
	line = strings.ReplaceAll(line, `\(em`, "")
	line = strings.ReplaceAll(line, `\(tm`, "tm")
	line = strings.ReplaceAll(line, `\(lq`, `"`)
	line = strings.ReplaceAll(line, `\(rq`, `"`)
	line = strings.ReplaceAll(line, `\[rg]`, "(R)")
	line = fontEscapeLongRe.ReplaceAllString(line, "")
	line = fontEscapeRe.ReplaceAllString(line, "")
	line = trailingBackslash.ReplaceAllString(line, "")
	return line
}

// normalizeSpacing collapses escaped backslashes and spaces, then
// whitespace runs and dash runs, the way whatis output does.
func normalizeSpacing(line string) string {
	line = strings.ReplaceAll(line, `\\`, `\`)
	line = strings.ReplaceAll(line, `\ `, " ")
	line = spaceRunRe.ReplaceAllString(line, " ")
	line = dashRunRe.ReplaceAllString(line, "-")
	return line
}

// expandDefinedStrings substitutes \*x, \*(xx and \*[xxx] user-defined
// string references using the strings collected from .ds requests.
// The predefined lq, rq, Tm and R strings have built-in fallbacks;
// anything else undefined expands to nothing.
func expandDefinedStrings(line string, defs map[string]string) string {
	if !strings.Contains(line, `\*`) {
		return line
	}

	var b strings.Builder
	var key []rune
	slash, star, inShort, inLong := false, false, false, false

	for _, ch := range line {
		switch {
		case slash:
			slash = false
			if ch == '*' {
				star = true
			} else {
				b.WriteRune(ch)
			}
		case star:
			star = false
			switch ch {
			case '(':
				inShort = true
				key = key[:0]
			case '[':
				inLong = true
				key = key[:0]
			default:
				b.WriteString(lookupDefined(string(ch), defs))
			}
		case inShort:
			key = append(key, ch)
			if len(key) == 2 {
				inShort = false
				b.WriteString(lookupDefined(string(key), defs))
			}
		case inLong:
			if ch == ']' {
				inLong = false
				b.WriteString(lookupDefined(string(key), defs))
			} else {
				key = append(key, ch)
			}
		case ch == '\\':
			slash = true
		default:
			b.WriteRune(ch)
		}
	}

	return b.String()
}

func lookupDefined(key string, defs map[string]string) string {
	if v, ok := defs[key]; ok {
		return v
	}
	switch key {
	case "lq", "rq":
		return `"`
	case "Tm":
		return "(TM)"
	case "R":
		return "(Reg.)"
	}
	return ""
}

// splitArgs splits macro arguments the way *roff does: fields separated by
// blanks, with double quotes grouping words into a single argument.
func splitArgs(s string) []string {
	var args []string
	var cur strings.Builder
	inQuote := false
	for _, ch := range s {
		switch {
		case ch == '"':
			inQuote = !inQuote
		case (ch == ' ' || ch == '\t') && !inQuote:
			if cur.Len() > 0 {
				args = append(args, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(ch)
		}
	}
	if cur.Len() > 0 {
		args = append(args, cur.String())
	}
	return args
}

// splitMacro splits a macro line into its name and arguments.
func splitMacro(line string) (string, []string) {
	fields := splitArgs(strings.TrimPrefix(line, "."))
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}

func appendUnique(names *[]string, name string) {
	for _, n := range *names {
		if n == name {
			return
		}
	}
	*names = append(*names, name)
}
