package markdown

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var separatorCellRe = regexp.MustCompile(`^:?-+:?$`)

// ParseRow splits a pipe-delimited table line into its cells. The line
// must start and end with '|' once stripped; the empty boundary cells
// produced by those pipes are discarded and the inner cells keep their
// original padding. ok is false for lines that are not delimited rows.
func ParseRow(line string) (cells []string, ok bool) {
	trimmed := strings.TrimRight(line, "\r")
	if !strings.Contains(trimmed, "|") {
		return nil, false
	}

	stripped := strings.TrimSpace(trimmed)
	if !strings.HasPrefix(stripped, "|") || !strings.HasSuffix(stripped, "|") {
		return nil, false
	}

	parts := strings.Split(trimmed, "|")
	if len(parts) > 0 && strings.TrimSpace(parts[0]) == "" {
		parts = parts[1:]
	}
	if len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) == 0 {
		return nil, false
	}

	return parts, true
}

// FormatRow is the inverse of ParseRow: cells rejoined with '|' and wrapped
// in boundary pipes. Cell text is emitted verbatim.
func FormatRow(cells []string) string {
	return "|" + strings.Join(cells, "|") + "|"
}

// IsSeparatorRow reports whether line is a table separator row, i.e. a
// delimited row whose every non-empty cell is dashes with optional
// alignment colons (---, :-:, :--, --:).
func IsSeparatorRow(line string) bool {
	cells, ok := ParseRow(line)
	if !ok {
		return false
	}

	sawCell := false
	for _, cell := range cells {
		c := strings.TrimSpace(cell)
		if c == "" {
			continue
		}
		if !separatorCellRe.MatchString(c) {
			return false
		}
		sawCell = true
	}

	return sawCell
}

// ParseColumnOrder parses a comma- or space-separated column order string
// such as "2,0,1" or "1 0 2" and verifies it is exactly a permutation of
// 0..n-1.
func ParseColumnOrder(spec string) ([]int, error) {
	fields := strings.Fields(strings.ReplaceAll(spec, ",", " "))
	if len(fields) == 0 {
		return nil, errors.New("column order is empty")
	}

	order := make([]int, 0, len(fields))
	for _, f := range fields {
		idx, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Errorf("invalid column index %q: must be an integer", f)
		}
		order = append(order, idx)
	}

	sorted := append([]int(nil), order...)
	sort.Ints(sorted)
	for i, idx := range sorted {
		if idx != i {
			return nil, errors.Errorf("column order %q must be a permutation of 0..%d", spec, len(order)-1)
		}
	}

	return order, nil
}
