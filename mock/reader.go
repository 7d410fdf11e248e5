package mock

import "github.com/fwojciec/mantoc"

var _ mantoc.PageReader = (*PageReader)(nil)

// PageReader is a mock implementation of mantoc.PageReader.
type PageReader struct {
	ReadPageFn func(path string) (*mantoc.PageSource, error)
}

func (r *PageReader) ReadPage(path string) (*mantoc.PageSource, error) {
	return r.ReadPageFn(path)
}
