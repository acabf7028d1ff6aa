package vault

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// RenameKeyInContent rewrites "oldKey:" lines to "newKey:" inside the
// frontmatter block only; the body is never touched. Indentation in front
// of the key is preserved so nested keys keep their position. Returns the
// rewritten content and whether anything changed.
func RenameKeyInContent(content, oldKey, newKey string) (string, bool) {
	if !strings.HasPrefix(content, "---") {
		return content, false
	}

	parts := strings.SplitN(content, "---", 3)
	if len(parts) < 3 {
		return content, false
	}

	frontmatter, body := parts[1], parts[2]

	keyRe := regexp.MustCompile(`(?m)^(\s*)` + regexp.QuoteMeta(oldKey) + `:`)
	if !keyRe.MatchString(frontmatter) {
		return content, false
	}

	renamed := keyRe.ReplaceAllString(frontmatter, "${1}"+newKey+":")
	if renamed == frontmatter {
		return content, false
	}

	return fmt.Sprintf("---%s---%s", renamed, body), true
}

// RenameKeyResult reports the outcome of a directory-wide key rename.
type RenameKeyResult struct {
	Scanned  int
	Affected []string
}

// RenameKey renames a frontmatter key across every Markdown file under
// root matching pattern, rewriting files in place. Per-file I/O failures
// are aggregated; the sweep continues past them.
func RenameKey(root, pattern, oldKey, newKey string) (*RenameKeyResult, error) {
	paths, err := ListFiles(root, pattern)
	if err != nil {
		return nil, err
	}

	result := &RenameKeyResult{}
	var walkErrs *multierror.Error

	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			walkErrs = multierror.Append(walkErrs, errors.Wrapf(err, "reading %s", path))
			continue
		}

		result.Scanned++

		renamed, changed := RenameKeyInContent(string(content), oldKey, newKey)
		if !changed {
			continue
		}

		if err := os.WriteFile(path, []byte(renamed), 0o644); err != nil {
			walkErrs = multierror.Append(walkErrs, errors.Wrapf(err, "writing %s", path))
			continue
		}

		result.Affected = append(result.Affected, path)
	}

	return result, walkErrs.ErrorOrNil()
}
