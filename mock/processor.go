package mock

import "github.com/fwojciec/mantoc"

var _ mantoc.PageProcessor = (*PageProcessor)(nil)

// PageProcessor is a mock implementation of mantoc.PageProcessor.
type PageProcessor struct {
	ProcessFn func(src *mantoc.PageSource) (*mantoc.Outcome, error)
}

func (p *PageProcessor) Process(src *mantoc.PageSource) (*mantoc.Outcome, error) {
	return p.ProcessFn(src)
}
