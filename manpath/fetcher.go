package manpath

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/mantoc"
)

// Ensure Fetcher implements mantoc.PageFetcher at compile time.
var _ mantoc.PageFetcher = (*Fetcher)(nil)

// Fetcher resolves .so redirect targets against the manual search path.
// Targets are relative paths like "man1/foo.1"; stored pages carry a .gz
// suffix, which is appended when the target lacks one.
type Fetcher struct {
	Dirs   []string
	Reader mantoc.PageReader
}

// FetchPage returns the source of the first existing candidate for target.
func (f *Fetcher) FetchPage(target string) (*mantoc.PageSource, error) {
	name := target
	if !strings.HasSuffix(name, ".gz") {
		name += ".gz"
	}
	for _, dir := range f.Dirs {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		return f.Reader.ReadPage(candidate)
	}
	return nil, mantoc.Errorf(mantoc.ENOTFOUND, "redirect target %q not found in manual path", target)
}
