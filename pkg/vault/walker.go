// Package vault implements the operations that sweep a whole directory of
// Markdown notes: frontmatter auditing, frontmatter key renames, and tag
// removal. File discovery goes through doublestar glob patterns so callers
// can restrict a sweep to a subtree or naming convention.
package vault

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
)

// DefaultPattern matches every Markdown file under the vault root.
const DefaultPattern = "**/*.md"

// ListFiles returns the files under root matching pattern, as paths joined
// with root, in lexical order. The order keeps reports and tests stable.
func ListFiles(root, pattern string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot access directory %s", root)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("%s is not a directory", root)
	}

	if pattern == "" {
		pattern = DefaultPattern
	}

	matches, err := doublestar.Glob(os.DirFS(root), pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid glob pattern %q", pattern)
	}

	sort.Strings(matches)

	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		paths = append(paths, filepath.Join(root, filepath.FromSlash(m)))
	}
	return paths, nil
}
