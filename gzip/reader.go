// Package gzip reads manual page files into page sources, transparently
// decompressing gzip-stored pages.
package gzip

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/mantoc"
)

// Ensure Reader implements mantoc.PageReader at compile time.
var _ mantoc.PageReader = (*Reader)(nil)

// maxLineSize bounds a single source line. Manual pages are line oriented;
// anything longer is not a page we can summarize.
const maxLineSize = 1024 * 1024

// Reader loads manual page files from the filesystem.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadPage reads the file at path into a PageSource, decompressing .gz
// files, with the section and basename derived from the filename.
func (r *Reader) ReadPage(path string) (*mantoc.PageSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, mantoc.Errorf(mantoc.ENOTFOUND, "page %q: %s", path, err)
	}
	defer f.Close()

	var src io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, mantoc.Errorf(mantoc.EINVALID, "page %q: %s", path, err)
		}
		defer zr.Close()
		src = zr
	}

	var lines []string
	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), " \t\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, mantoc.Errorf(mantoc.EINVALID, "page %q: %s", path, err)
	}

	basename, section := SplitName(filepath.Base(path))
	return &mantoc.PageSource{
		Path:     path,
		Section:  section,
		Basename: basename,
		Lines:    lines,
	}, nil
}

// SplitName derives the basename and section from a page filename,
// e.g. "ls.1.gz" yields ("ls", "1"). A filename without a section
// suffix yields an empty section.
func SplitName(name string) (basename, section string) {
	name = strings.TrimSuffix(name, ".gz")
	idx := strings.LastIndex(name, ".")
	if idx <= 0 {
		return name, ""
	}
	return name[:idx], name[idx+1:]
}
