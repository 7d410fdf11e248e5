// Package manpath enumerates manual search-path directories and the
// candidate page files inside them, and resolves .so redirect targets
// against the search path.
package manpath

import (
	"os"
	"path/filepath"
	"strings"
)

// defaultDirs are the standard manual locations tried when MANPATH is
// not set. Directories that do not exist are skipped.
var defaultDirs = []string{
	"/usr/share/man",
	"/usr/local/man",
	"/usr/local/share/man",
}

// Directories returns the manual search-path directories: the MANPATH
// environment variable split on the path list separator, or the standard
// defaults. Only existing directories are returned.
func Directories() []string {
	var candidates []string
	if env := os.Getenv("MANPATH"); env != "" {
		candidates = strings.Split(env, string(os.PathListSeparator))
	} else {
		candidates = defaultDirs
	}

	var dirs []string
	for _, dir := range candidates {
		if dir == "" {
			continue
		}
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// sectionDir returns the subdirectory holding one manual section's pages.
func sectionDir(dir, section string) string {
	return filepath.Join(dir, "man"+section)
}
