package markdown

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// dateLayout matches dates written as "November 29, 2024".
const dateLayout = "January 2, 2006"

// ErrNoDateTable is returned when a document has no table header carrying
// both a Name and a date column.
var ErrNoDateTable = errors.New(`no table header with "Name" and "date" columns found`)

// YearBucket holds the data rows of one output file produced by a year
// split: either all rows of a single year, or the rows whose date column
// could not be parsed.
type YearBucket struct {
	Year    int
	Unknown bool
	Rows    []string
}

// Label returns the filename suffix for the bucket.
func (b YearBucket) Label() string {
	if b.Unknown {
		return "unknown_dates"
	}
	return fmt.Sprintf("%d", b.Year)
}

// SplitResult is the outcome of SplitByYear: the pieces shared by every
// output file plus one bucket per distinct year, in ascending year order
// with the unknown bucket last.
type SplitResult struct {
	Frontmatter []string
	Header      string
	Separator   string
	Buckets     []YearBucket
}

// SplitByYear partitions the data rows of a document's Name/date table by
// the year in the date column. The header is the first body line containing
// a pipe plus the literal substrings "Name" and "date"; the line after it
// is taken as the separator. Every following pipe-prefixed non-blank line
// is a data row whose third raw '|'-split field (index 2) is the date,
// format "Month D, Year"; a "→" range keeps only its left side. Rows whose
// date fails to parse land in the unknown bucket; rows with fewer than
// three fields are dropped. The input document is not modified.
func SplitByYear(content string) (*SplitResult, error) {
	lines := SplitLines(content)
	frontmatter, body := ExtractFrontmatter(lines)

	headerIdx := -1
	for i, line := range body {
		if strings.Contains(line, "|") && strings.Contains(line, "Name") && strings.Contains(line, "date") {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil, ErrNoDateTable
	}

	result := &SplitResult{
		Frontmatter: frontmatter,
		Header:      body[headerIdx],
	}
	if headerIdx+1 < len(body) {
		result.Separator = body[headerIdx+1]
	}

	byYear := map[int][]string{}
	var unknown []string

	for i := headerIdx + 2; i < len(body); i++ {
		line := body[i]
		stripped := strings.TrimSpace(line)
		if stripped == "" || !strings.HasPrefix(stripped, "|") {
			continue
		}

		fields := strings.Split(line, "|")
		if len(fields) < 3 {
			continue
		}

		year, ok := parseRowYear(fields[2])
		if ok {
			byYear[year] = append(byYear[year], line)
		} else {
			unknown = append(unknown, line)
		}
	}

	years := make([]int, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Ints(years)

	for _, year := range years {
		result.Buckets = append(result.Buckets, YearBucket{Year: year, Rows: byYear[year]})
	}
	if len(unknown) > 0 {
		result.Buckets = append(result.Buckets, YearBucket{Unknown: true, Rows: unknown})
	}

	return result, nil
}

// Render produces the full content of one output file: the original
// frontmatter verbatim followed by a blank line, then the table header,
// separator, and the bucket's rows in their original relative order.
func (r *SplitResult) Render(bucket YearBucket) string {
	var sb strings.Builder

	if len(r.Frontmatter) > 0 {
		sb.WriteString(JoinLines(r.Frontmatter))
		sb.WriteString("\n\n")
	}

	sb.WriteString(r.Header)
	sb.WriteString("\n")
	if r.Separator != "" {
		sb.WriteString(r.Separator)
		sb.WriteString("\n")
	}

	for _, row := range bucket.Rows {
		sb.WriteString(row)
		sb.WriteString("\n")
	}

	return sb.String()
}

// parseRowYear extracts the year from a date cell. Only the text before a
// "→" range marker is considered.
func parseRowYear(cell string) (int, bool) {
	s := strings.TrimSpace(cell)
	if i := strings.Index(s, "→"); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	if s == "" {
		return 0, false
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return 0, false
	}
	return t.Year(), true
}
