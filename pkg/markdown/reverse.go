package markdown

import "strings"

// ReverseRows reverses the row order of a table block.
//
// With keepHeader set, the first row (header) and second row (separator)
// stay in place and only the data rows below them are reversed; blocks of
// two rows or fewer are returned unchanged.
//
// Without keepHeader the whole block is reversed, after which the
// separator row (recognized by its dash cells) is moved back to index 1
// if the reversal displaced it, so the result keeps a valid
// header/separator/data shape. Blocks of two rows or fewer are simply
// reversed.
func ReverseRows(block []string, keepHeader bool) []string {
	if len(block) <= 1 {
		return block
	}

	if keepHeader {
		if len(block) <= 2 {
			return block
		}

		out := make([]string, 0, len(block))
		out = append(out, block[0], block[1])
		for i := len(block) - 1; i >= 2; i-- {
			out = append(out, block[i])
		}
		return out
	}

	reversed := make([]string, 0, len(block))
	for i := len(block) - 1; i >= 0; i-- {
		reversed = append(reversed, block[i])
	}

	if len(reversed) <= 2 {
		return reversed
	}

	sepIdx := -1
	for i, line := range reversed {
		if looksLikeSeparator(line) {
			sepIdx = i
			break
		}
	}

	if sepIdx >= 0 && sepIdx != 1 {
		sep := reversed[sepIdx]
		reversed = append(reversed[:sepIdx], reversed[sepIdx+1:]...)
		rest := append([]string{sep}, reversed[1:]...)
		reversed = append(reversed[:1], rest...)
	}

	return reversed
}

// looksLikeSeparator is the permissive separator check used when
// repositioning after a full reversal: any row carrying a dash run or an
// alignment marker counts.
func looksLikeSeparator(line string) bool {
	return strings.Contains(line, "---") ||
		strings.Contains(line, ":-:") ||
		strings.Contains(line, ":--") ||
		strings.Contains(line, "--:")
}

// ReverseDocument reverses the rows of every table in content, preserving
// any leading frontmatter verbatim. Tables are detected with PipeAnywhere
// strictness, so partially formed rows containing a pipe still travel with
// their table.
func ReverseDocument(content string, keepHeader bool) (string, error) {
	lines := SplitLines(content)
	frontmatter, body := ExtractFrontmatter(lines)

	transformed, err := TransformTables(body, PipeAnywhere, func(block []string) ([]string, error) {
		return ReverseRows(block, keepHeader), nil
	})
	if err != nil {
		return "", err
	}

	return JoinLines(append(frontmatter, transformed...)), nil
}
