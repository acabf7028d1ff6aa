// Package markdown implements line-oriented transforms for Markdown
// documents: frontmatter extraction, pipe-table detection, and the table
// transforms (column reorder, row reversal, split-by-year) used by the
// mdvault table commands. Non-table lines are always passed through
// byte-identical.
package markdown

import "strings"

const fenceDelimiter = "---"

// ExtractFrontmatter splits a document's lines into the leading frontmatter
// block and the remaining body. The frontmatter block starts with a line
// equal to "---" (ignoring trailing whitespace) at index 0 and ends at the
// next such line; both delimiter lines belong to the block. When the first
// line is not a delimiter, or the block is never closed, the whole document
// is treated as body. The block content is opaque text; no YAML validation
// happens here.
func ExtractFrontmatter(lines []string) (frontmatter, body []string) {
	if len(lines) == 0 || strings.TrimRight(lines[0], " \t\r") != fenceDelimiter {
		return nil, lines
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], " \t\r") == fenceDelimiter {
			return lines[: i+1 : i+1], lines[i+1:]
		}
	}

	return nil, lines
}

// HasFrontmatter reports whether content begins with a closed frontmatter
// block.
func HasFrontmatter(content string) bool {
	fm, _ := ExtractFrontmatter(SplitLines(content))
	return len(fm) > 0
}

// StripFrontmatter returns content with its leading frontmatter block and
// any blank lines that immediately follow it removed. Content without a
// closed frontmatter block comes back unchanged.
func StripFrontmatter(content string) string {
	fm, body := ExtractFrontmatter(SplitLines(content))
	if len(fm) == 0 {
		return content
	}

	stripped := strings.Join(body, "\n")
	return strings.TrimLeft(stripped, "\n")
}

// SplitLines splits content on newlines. Carriage returns are left in
// place so untouched lines survive byte-identical; JoinLines is the
// inverse.
func SplitLines(content string) []string {
	return strings.Split(content, "\n")
}

// JoinLines reassembles lines produced by SplitLines.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
