package manpath

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/fwojciec/mantoc/bloom"
)

// Bloom filter sizing for page name deduplication across directories.
const (
	expectedPages     = 100000
	falsePositiveRate = 1e-6
)

// Walker lists candidate page files for manual sections across the
// search-path directories.
type Walker struct {
	Dirs   []string
	Logger *slog.Logger
}

// NewWalker creates a Walker over the MANPATH-derived directories.
func NewWalker() *Walker {
	return &Walker{Dirs: Directories()}
}

// Section returns the sorted candidate page files for one manual section.
// The same page name appearing under a later search-path directory is
// shadowed by the earlier one.
func (w *Walker) Section(section string) []string {
	seen := bloom.NewFilter(expectedPages, falsePositiveRate)
	var files []string
	for _, dir := range w.Dirs {
		entries, err := os.ReadDir(sectionDir(dir, section))
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if seen.Test(e.Name()) {
				continue
			}
			seen.Add(e.Name())
			files = append(files, filepath.Join(sectionDir(dir, section), e.Name()))
		}
	}
	sort.Strings(files)
	if w.Logger != nil {
		w.Logger.Debug("section walked",
			"section", section,
			"files", len(files),
			"distinct_names", seen.EstimatedCount(),
		)
	}
	return files
}
