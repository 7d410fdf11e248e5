package roff

import (
	"strings"

	"github.com/fwojciec/mantoc"
)

// Render interprets a single inline macro call. It is a pure function of
// the macro name, its arguments, and the run options; output never depends
// on position in the document. Macros outside the recognized set fall back
// to dropping the macro token and passing the arguments through
// space-joined, matching their un-rendered source appearance.
func Render(name string, args []string, opts mantoc.MacroOptions) string {
	switch name {
	case "Dq":
		if opts.InterpretDq {
			return `"` + strings.Join(args, " ") + `"`
		}
		return strings.Join(args, " ")
	case "Pa":
		return renderPath(args, opts.PathQuoting)
	case "Xr":
		if len(args) >= 2 && opts.InterpretXr {
			return args[0] + "(" + args[1] + ")"
		}
		return strings.Join(args, " ")
	case "Ux":
		return "UNIX"
	case "At":
		return renderAtt(args)
	case "Bx":
		return renderBSD(args)
	case "Bsx":
		return versioned("BSD/OS", args)
	case "Nx":
		return versioned("NetBSD", args)
	case "Fx":
		return versioned("FreeBSD", args)
	case "Ox":
		return versioned("OpenBSD", args)
	case "Dx":
		return versioned("DragonFly", args)
	default:
		return strings.Join(args, " ")
	}
}

func renderPath(args []string, quoting mantoc.PathQuoting) string {
	if len(args) == 0 {
		return ""
	}
	var quote string
	switch quoting {
	case mantoc.PathQuoteSingle:
		quote = "'"
	case mantoc.PathQuoteDouble:
		quote = `"`
	}
	out := quote + args[0] + quote
	if len(args) > 1 {
		out += " " + strings.Join(args[1:], " ")
	}
	return out
}

// renderAtt expands the .At (AT&T UNIX) version forms.
func renderAtt(args []string) string {
	if len(args) == 0 {
		return "AT&T UNIX"
	}
	v := args[0]
	switch {
	case v == "32v":
		return "Version 32V AT&T UNIX"
	case v == "III":
		return "AT&T System III UNIX"
	case strings.HasPrefix(v, "V."):
		return "AT&T System V Release " + strings.TrimPrefix(v, "V.") + " UNIX"
	case strings.HasPrefix(v, "v"):
		return "Version " + strings.TrimPrefix(v, "v") + " AT&T UNIX"
	case strings.HasPrefix(v, "V"):
		return "AT&T System V UNIX"
	}
	return "AT&T UNIX"
}

// renderBSD expands the .Bx (BSD version) forms, e.g. "4.4 Lite2" renders
// as "4.4BSD-Lite2" per mdoc(7).
func renderBSD(args []string) string {
	if len(args) == 0 {
		return "BSD"
	}
	v := args[0]
	v = strings.ReplaceAll(v, "-alpha", " (currently in alpha test)")
	v = strings.ReplaceAll(v, "-beta", " (currently in beta test)")
	v = strings.ReplaceAll(v, "-devel", " (currently under development)")
	if len(args) > 1 {
		return v + "BSD-" + args[1]
	}
	return v + "BSD"
}

func versioned(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
