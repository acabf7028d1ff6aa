package vault

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

var blankLineRe = regexp.MustCompile(`\n\s*\n`)

// RemoveTagFromContent strips every occurrence of tag from one document and
// returns the new content plus the number of removals. Inside frontmatter
// it removes YAML list entries of the form "- tag", "- #tag" or the quoted
// variants; in the body only "#tag" occurrences count, and the tag must be
// preceded by whitespace (or start of text) and end at a word boundary.
// Matching is case-insensitive. Blank lines opened up in the frontmatter by
// a removal are collapsed.
func RemoveTagFromContent(content, tag string) (string, int) {
	quoted := regexp.QuoteMeta(tag)
	bodyRe := regexp.MustCompile(`(?i)(^|\s)#` + quoted + `\b`)

	replaceBody := func(s string) (string, int) {
		count := len(bodyRe.FindAllString(s, -1))
		return bodyRe.ReplaceAllString(s, "${1}"), count
	}

	if !strings.HasPrefix(content, "---") {
		out, n := replaceBody(content)
		return out, n
	}

	parts := strings.SplitN(content, "---", 3)
	if len(parts) < 3 {
		out, n := replaceBody(content)
		return out, n
	}

	frontmatter, body := parts[1], parts[2]
	total := 0

	fmRe := regexp.MustCompile(`(?im)^\s*-\s*["']?#?` + quoted + `["']?\s*$`)
	fmCount := len(fmRe.FindAllString(frontmatter, -1))
	if fmCount > 0 {
		frontmatter = fmRe.ReplaceAllString(frontmatter, "")
		frontmatter = blankLineRe.ReplaceAllString(frontmatter, "\n")
		total += fmCount
	}

	body, bodyCount := replaceBody(body)
	total += bodyCount

	return fmt.Sprintf("---%s---%s", frontmatter, body), total
}

// RemoveTagResult reports a directory-wide tag removal.
type RemoveTagResult struct {
	Scanned      int
	Modified     []string
	Replacements int
}

// RemoveTag strips a tag from every Markdown file under root matching
// pattern, rewriting modified files in place. Per-file failures are
// aggregated and do not stop the sweep.
func RemoveTag(root, pattern, tag string) (*RemoveTagResult, error) {
	paths, err := ListFiles(root, pattern)
	if err != nil {
		return nil, err
	}

	result := &RemoveTagResult{}
	var walkErrs *multierror.Error

	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			walkErrs = multierror.Append(walkErrs, errors.Wrapf(err, "reading %s", path))
			continue
		}

		result.Scanned++

		modified, count := RemoveTagFromContent(string(content), tag)
		if count == 0 {
			continue
		}

		if err := os.WriteFile(path, []byte(modified), 0o644); err != nil {
			walkErrs = multierror.Append(walkErrs, errors.Wrapf(err, "writing %s", path))
			continue
		}

		result.Modified = append(result.Modified, path)
		result.Replacements += count
	}

	return result, walkErrs.ErrorOrNil()
}
