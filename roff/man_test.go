package roff_test

import (
	"testing"

	"github.com/fwojciec/mantoc"
	"github.com/fwojciec/mantoc/roff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func manPage(nameLines ...string) *mantoc.PageSource {
	lines := []string{
		`.\" Copyright notice.`,
		".TH FOO 1",
		".SH NAME",
	}
	lines = append(lines, nameLines...)
	lines = append(lines, ".SH SYNOPSIS", ".B foo")
	return &mantoc.PageSource{Path: "man1/foo.1.gz", Section: "1", Lines: lines}
}

func TestProcess_man_name_and_description(t *testing.T) {
	t.Parallel()

	p := &roff.Processor{}
	src := manPage(`foo \- does a thing`)

	out, err := p.Process(src)

	require.NoError(t, err)
	require.NotNil(t, out.Record)
	assert.Equal(t, mantoc.KindMan, out.Type.Kind)
	assert.Equal(t, []string{"foo"}, out.Record.Names)
	assert.Equal(t, "does a thing", out.Record.Description)
	assert.False(t, out.Record.Incomplete)
}

func TestProcess_man_comma_separated_aliases(t *testing.T) {
	t.Parallel()

	p := &roff.Processor{}
	src := manPage("foo, bar - does a thing")

	out, err := p.Process(src)

	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar"}, out.Record.Names)
	assert.Equal(t, "does a thing", out.Record.Description)
}

func TestProcess_man_quoted_NAME_heading(t *testing.T) {
	t.Parallel()

	p := &roff.Processor{}
	src := &mantoc.PageSource{Section: "1", Lines: []string{
		".TH FOO 1",
		`.SH "NAME"`,
		`foo \- does a thing`,
		".SH SYNOPSIS",
	}}

	out, err := p.Process(src)

	require.NoError(t, err)
	assert.Equal(t, []string{"foo"}, out.Record.Names)
}

func TestProcess_man_missing_separator_is_incomplete(t *testing.T) {
	t.Parallel()

	p := &roff.Processor{}
	src := manPage("foo a tool with no separator anywhere")

	out, err := p.Process(src)

	require.NoError(t, err)
	require.NotNil(t, out.Record)
	assert.True(t, out.Record.Incomplete)
	assert.Empty(t, out.Record.Names)
	assert.Equal(t, "foo a tool with no separator anywhere", out.Record.Description)
	assert.NotEmpty(t, out.Diagnostics)
}

func TestProcess_man_description_spanning_lines(t *testing.T) {
	t.Parallel()

	p := &roff.Processor{}
	src := manPage(`foo \- does a thing`, "with a continuation")

	out, err := p.Process(src)

	require.NoError(t, err)
	assert.Equal(t, "does a thing with a continuation", out.Record.Description)
}

func TestProcess_man_leading_dash_opens_description(t *testing.T) {
	t.Parallel()

	p := &roff.Processor{}
	src := manPage("foo", "- does a thing")

	out, err := p.Process(src)

	require.NoError(t, err)
	assert.Equal(t, []string{"foo"}, out.Record.Names)
	assert.Equal(t, "does a thing", out.Record.Description)
}

func TestProcess_man_strips_font_macros_keeping_arguments(t *testing.T) {
	t.Parallel()

	p := &roff.Processor{}
	src := manPage(".B foo", `\- does a thing`)

	out, err := p.Process(src)

	require.NoError(t, err)
	assert.Equal(t, []string{"foo"}, out.Record.Names)
	assert.Equal(t, "does a thing", out.Record.Description)
}

func TestProcess_man_strips_font_escapes(t *testing.T) {
	t.Parallel()

	p := &roff.Processor{}
	src := manPage(`\fBfoo\fR \- does a thing`)

	out, err := p.Process(src)

	require.NoError(t, err)
	assert.Equal(t, []string{"foo"}, out.Record.Names)
	assert.Equal(t, "does a thing", out.Record.Description)
}

func TestProcess_man_strips_trailing_comments(t *testing.T) {
	t.Parallel()

	p := &roff.Processor{}
	src := manPage(`foo \- does a thing \" trailing comment`)

	out, err := p.Process(src)

	require.NoError(t, err)
	assert.Equal(t, "does a thing", out.Record.Description)
}

func TestProcess_man_drops_unknown_requests(t *testing.T) {
	t.Parallel()

	p := &roff.Processor{}
	src := manPage(".PD 0", `foo \- does a thing`, ".TP 5")

	out, err := p.Process(src)

	require.NoError(t, err)
	assert.Equal(t, []string{"foo"}, out.Record.Names)
	assert.Equal(t, "does a thing", out.Record.Description)
}

func TestProcess_man_ignore_region(t *testing.T) {
	t.Parallel()

	t.Run("terminated region is dropped", func(t *testing.T) {
		t.Parallel()

		p := &roff.Processor{}
		src := manPage(".ig", "this text is ignored", "..", `foo \- does a thing`)

		out, err := p.Process(src)

		require.NoError(t, err)
		assert.Equal(t, "does a thing", out.Record.Description)
		assert.Empty(t, out.Diagnostics)
	})

	t.Run("unterminated region extends to end of input with a diagnostic", func(t *testing.T) {
		t.Parallel()

		p := &roff.Processor{}
		src := manPage(`foo \- does a thing`, ".ig", "swallowed", "also swallowed")

		out, err := p.Process(src)

		require.NoError(t, err)
		assert.Equal(t, "does a thing", out.Record.Description)
		require.Len(t, out.Diagnostics, 1)
		assert.Contains(t, out.Diagnostics[0], "unterminated")
	})

	t.Run("macro definition region is dropped", func(t *testing.T) {
		t.Parallel()

		p := &roff.Processor{}
		src := manPage(".de XX", "definition body", "..", `foo \- does a thing`)

		out, err := p.Process(src)

		require.NoError(t, err)
		assert.Equal(t, "does a thing", out.Record.Description)
	})
}

func TestProcess_man_header_contributes_name_and_section(t *testing.T) {
	t.Parallel()

	// A page installed as test(1) whose title line announces IF in
	// section 8 documents both names across both sections.
	p := &roff.Processor{}
	src := &mantoc.PageSource{
		Path:     "man1/test.1.gz",
		Basename: "test",
		Section:  "1",
		Lines: []string{
			".TH IF 8",
			".SH NAME",
			`test \- condition evaluation utility`,
			".SH SYNOPSIS",
		},
	}

	out, err := p.Process(src)

	require.NoError(t, err)
	assert.Equal(t, []string{"test", "if"}, out.Record.Names)
	assert.Equal(t, "1, 8", out.Record.Section)
}

func TestProcess_man_header_section_merges_lower_first(t *testing.T) {
	t.Parallel()

	p := &roff.Processor{}
	src := &mantoc.PageSource{
		Path:     "man8/reboot.8.gz",
		Basename: "reboot",
		Section:  "8",
		Lines: []string{
			".TH REBOOT 2",
			".SH NAME",
			`reboot \- reboot the system`,
			".SH SYNOPSIS",
		},
	}

	out, err := p.Process(src)

	require.NoError(t, err)
	assert.Equal(t, "2, 8", out.Record.Section)
}

func TestProcess_man_multiword_name_without_comma_keeps_spacing(t *testing.T) {
	t.Parallel()

	p := &roff.Processor{}
	src := &mantoc.PageSource{Section: "1", Lines: []string{
		".SH NAME",
		"foo bar - does a thing",
		".SH SYNOPSIS",
	}}

	out, err := p.Process(src)

	require.NoError(t, err)
	assert.Equal(t, []string{"foo bar"}, out.Record.Names)
	assert.Equal(t, "does a thing", out.Record.Description)
}

func TestProcess_man_seeds_alias_list_with_basename(t *testing.T) {
	t.Parallel()

	p := &roff.Processor{}
	src := manPage(`bar \- does a thing`)
	src.Basename = "foo"

	out, err := p.Process(src)

	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar"}, out.Record.Names)
}

func TestProcess_man_collapses_whitespace_and_dash_runs(t *testing.T) {
	t.Parallel()

	p := &roff.Processor{}
	src := manPage("foo  \t --- does   a thing")

	out, err := p.Process(src)

	require.NoError(t, err)
	assert.Equal(t, []string{"foo"}, out.Record.Names)
	assert.Equal(t, "does a thing", out.Record.Description)
}
