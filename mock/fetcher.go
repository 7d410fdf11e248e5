package mock

import "github.com/fwojciec/mantoc"

var _ mantoc.PageFetcher = (*PageFetcher)(nil)

// PageFetcher is a mock implementation of mantoc.PageFetcher.
type PageFetcher struct {
	FetchPageFn func(target string) (*mantoc.PageSource, error)
}

func (f *PageFetcher) FetchPage(target string) (*mantoc.PageSource, error) {
	return f.FetchPageFn(target)
}
