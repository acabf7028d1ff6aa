package markdown

import "github.com/pkg/errors"

// ReorderColumns permutes the columns of every row in a table block
// according to order, which must have been validated by ParseColumnOrder.
// Header, separator and data rows are all treated alike. A row whose cell
// count differs from len(order) is a structural error that aborts the
// transform; cell text is never modified, only repositioned.
func ReorderColumns(block []string, order []int) ([]string, error) {
	out := make([]string, 0, len(block))

	for _, line := range block {
		cells, ok := ParseRow(line)
		if !ok {
			out = append(out, line)
			continue
		}

		if len(cells) != len(order) {
			return nil, errors.Errorf(
				"column count mismatch: table row has %d columns, but order specifies %d",
				len(cells), len(order),
			)
		}

		reordered := make([]string, len(order))
		for i, idx := range order {
			reordered[i] = cells[idx]
		}
		out = append(out, FormatRow(reordered))
	}

	return out, nil
}

// ReorderDocument applies a column permutation to every table in content,
// preserving any leading frontmatter block verbatim. Tables are detected
// with PipeDelimited strictness: a reordered row is rewritten wrapped in
// boundary pipes, so only rows already shaped that way are touched.
func ReorderDocument(content string, order []int) (string, error) {
	lines := SplitLines(content)
	frontmatter, body := ExtractFrontmatter(lines)

	transformed, err := TransformTables(body, PipeDelimited, func(block []string) ([]string, error) {
		return ReorderColumns(block, order)
	})
	if err != nil {
		return "", err
	}

	return JoinLines(append(frontmatter, transformed...)), nil
}
