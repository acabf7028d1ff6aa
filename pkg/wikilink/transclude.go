package wikilink

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mdvault/mdvault/pkg/markdown"
)

// Transclude replaces every [[name]] reference in content with the
// frontmatter-stripped content of the sibling file name.md, flattened so
// the result stays inside a single table cell: fenced code blocks become
// <pre><code> elements with &#10; newline markers, and remaining newlines
// become <br> tags. References whose target cannot be read are left
// untouched and reported in missing. The caller's own content is also
// frontmatter-stripped, matching how a transcluded note would render.
func Transclude(content, dir string) (result string, missing []string) {
	content = markdown.StripFrontmatter(content)

	result = linkRe.ReplaceAllStringFunc(content, func(match string) string {
		body := strings.TrimSpace(linkRe.FindStringSubmatch(match)[1])

		path := filepath.Join(dir, targetFile(body))
		raw, err := os.ReadFile(path)
		if err != nil {
			missing = append(missing, body)
			return match
		}

		inlined := markdown.StripFrontmatter(string(raw))
		return flattenForCell(strings.TrimSpace(inlined))
	})

	return result, missing
}

// flattenForCell rewrites multi-line Markdown into a single line. Fenced
// code blocks keep their formatting through literal &#10; entities inside
// <pre><code>; everything else is joined with <br>.
func flattenForCell(content string) string {
	var out []string
	var codeLines []string
	language := ""
	inCode := false

	for _, line := range strings.Split(content, "\n") {
		stripped := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(stripped, "```") && !inCode:
			inCode = true
			language = strings.TrimSpace(strings.TrimPrefix(stripped, "```"))
			codeLines = nil
		case strings.HasPrefix(stripped, "```") && inCode:
			inCode = false
			code := strings.Join(codeLines, "&#10;")
			if language != "" {
				out = append(out, fmt.Sprintf(`<pre><code class="language-%s">%s</code></pre>`, language, code))
			} else {
				out = append(out, fmt.Sprintf("<pre><code>%s</code></pre>", code))
			}
		case inCode:
			codeLines = append(codeLines, line)
		default:
			out = append(out, line)
		}
	}

	return strings.Join(out, "<br>")
}
