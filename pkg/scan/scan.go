// Package scan enumerates the .txt files under a root directory.
package scan

import (
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// Ext is the only file extension the tool operates on.
const Ext = ".txt"

// Scan returns the slash-separated paths, relative to root, of every .txt
// file under root. Non-recursive mode inspects only the immediate directory;
// recursive mode descends into all subdirectories. Matches are files only and
// the result is sorted lexicographically. An empty result is not an error.
func Scan(root string, recursive bool) ([]string, error) {
	pattern := "*" + Ext
	if recursive {
		pattern = "**/*" + Ext
	}

	files, err := doublestar.Glob(os.DirFS(root), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, errors.Errorf("globbing %s in %s: %w", pattern, root, err)
	}

	sort.Strings(files)
	return files, nil
}
