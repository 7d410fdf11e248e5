// Package slog provides log/slog decorators for mantoc services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/mantoc"
)

// Ensure LoggingProcessor implements mantoc.PageProcessor.
var _ mantoc.PageProcessor = (*LoggingProcessor)(nil)

// LoggingProcessor wraps a PageProcessor with per-page logging: failures
// at error level, recoverable diagnostics at warn, and outcomes at debug.
type LoggingProcessor struct {
	next   mantoc.PageProcessor
	logger *slog.Logger
}

// NewLoggingProcessor creates a new LoggingProcessor.
func NewLoggingProcessor(next mantoc.PageProcessor, logger *slog.Logger) *LoggingProcessor {
	return &LoggingProcessor{next: next, logger: logger}
}

// Process delegates to the wrapped processor and logs the outcome.
func (p *LoggingProcessor) Process(src *mantoc.PageSource) (*mantoc.Outcome, error) {
	begin := time.Now()

	out, err := p.next.Process(src)
	if err != nil {
		p.logger.Error("page processing failed",
			"path", src.Path,
			"code", mantoc.ErrorCode(err),
			"error", mantoc.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}

	for _, d := range out.Diagnostics {
		p.logger.Warn("page diagnostic", "path", src.Path, "detail", d)
	}

	p.logger.Debug("page processed",
		"path", src.Path,
		"type", out.Type.Kind.String(),
		"depth", out.Depth,
		"skip", out.Skip(),
		"duration", time.Since(begin),
	)
	return out, nil
}
