// Package wikilink handles [[name]] wiki-style references between sibling
// Markdown files: pruning links whose target file does not exist, and
// transcluding (inlining) the target's content in place of the reference.
package wikilink

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var linkRe = regexp.MustCompile(`\[\[(.*?)\]\]`)

// targetFile resolves the file a link body points at: the alias part after
// '|' is display-only, and a missing .md extension is implied.
func targetFile(body string) string {
	name := body
	if i := strings.Index(name, `\|`); i >= 0 {
		name = name[:i]
	} else if j := strings.Index(name, "|"); j >= 0 {
		name = name[:j]
	}
	name = strings.TrimSpace(name)

	if !strings.HasSuffix(strings.ToLower(name), ".md") {
		name += ".md"
	}
	return name
}

// PruneDeadLinks unwraps every [[target]] reference in content whose target
// file does not exist next to dir, keeping the inner text. It returns the
// rewritten content and the link bodies that were unwrapped.
func PruneDeadLinks(content, dir string) (string, []string) {
	var pruned []string
	seen := map[string]bool{}

	for _, match := range linkRe.FindAllStringSubmatch(content, -1) {
		body := match[1]
		if seen[body] {
			continue
		}
		seen[body] = true

		candidate := filepath.Join(dir, targetFile(body))
		if _, err := os.Stat(candidate); err == nil {
			continue
		}

		content = strings.ReplaceAll(content, "[["+body+"]]", body)
		pruned = append(pruned, body)
	}

	return content, pruned
}
