package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/mantoc"
	"github.com/fwojciec/mantoc/mock"
	mslog "github.com/fwojciec/mantoc/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingProcessor_passes_outcome_through(t *testing.T) {
	t.Parallel()

	want := &mantoc.Outcome{
		Type:   mantoc.PageType{Kind: mantoc.KindMan},
		Record: &mantoc.NameRecord{Names: []string{"foo"}, Description: "does a thing"},
	}
	next := &mock.PageProcessor{
		ProcessFn: func(src *mantoc.PageSource) (*mantoc.Outcome, error) {
			return want, nil
		},
	}

	var buf bytes.Buffer
	p := mslog.NewLoggingProcessor(next, newLogger(&buf))

	out, err := p.Process(&mantoc.PageSource{Path: "man1/foo.1.gz"})

	require.NoError(t, err)
	assert.Same(t, want, out)
	assert.Contains(t, buf.String(), "page processed")
	assert.Contains(t, buf.String(), "man1/foo.1.gz")
}

func TestLoggingProcessor_logs_diagnostics_at_warn(t *testing.T) {
	t.Parallel()

	next := &mock.PageProcessor{
		ProcessFn: func(src *mantoc.PageSource) (*mantoc.Outcome, error) {
			return &mantoc.Outcome{
				Type:        mantoc.PageType{Kind: mantoc.KindMan},
				Record:      &mantoc.NameRecord{Incomplete: true},
				Diagnostics: []string{"no name/description separator in man1/foo.1.gz"},
			}, nil
		},
	}

	var buf bytes.Buffer
	p := mslog.NewLoggingProcessor(next, newLogger(&buf))

	_, err := p.Process(&mantoc.PageSource{Path: "man1/foo.1.gz"})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "page diagnostic")
}

func TestLoggingProcessor_logs_and_propagates_errors(t *testing.T) {
	t.Parallel()

	next := &mock.PageProcessor{
		ProcessFn: func(src *mantoc.PageSource) (*mantoc.Outcome, error) {
			return nil, mantoc.Errorf(mantoc.EREDIRECTLOOP, "too many .so source redirections for %s", src.Path)
		},
	}

	var buf bytes.Buffer
	p := mslog.NewLoggingProcessor(next, newLogger(&buf))

	out, err := p.Process(&mantoc.PageSource{Path: "man1/loop.1.gz"})

	assert.Nil(t, out)
	assert.Equal(t, mantoc.EREDIRECTLOOP, mantoc.ErrorCode(err))
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "redirect_loop")
}
