package markdown

import "strings"

// Strictness selects the rule deciding whether a line belongs to a table
// block. The loose rule groups any non-blank line containing a pipe; the
// delimited rule additionally requires the line to start and end with a
// pipe once surrounding whitespace is ignored. The two rules disagree on
// malformed rows such as "a | b"; callers pick one and stick with it.
type Strictness int

const (
	// PipeAnywhere treats any non-blank line containing '|' as a table line.
	PipeAnywhere Strictness = iota
	// PipeDelimited requires the stripped line to both start and end with '|'.
	PipeDelimited
)

// Segment is one run of consecutive document lines, either a table block
// or passthrough text. Segments tile the input: concatenating their lines
// in order reproduces the scanned lines exactly.
type Segment struct {
	Table bool
	Lines []string
}

// IsTableLine reports whether line qualifies as a table row under the
// given strictness.
func IsTableLine(line string, strictness Strictness) bool {
	if !strings.Contains(line, "|") {
		return false
	}

	stripped := strings.TrimSpace(line)
	if stripped == "" {
		return false
	}

	if strictness == PipeDelimited {
		return strings.HasPrefix(stripped, "|") && strings.HasSuffix(stripped, "|")
	}

	return true
}

// ScanSegments partitions lines into an ordered list of passthrough and
// table segments. Consecutive qualifying lines merge into a single table
// segment; the first disqualifying line closes it. Relative line order is
// preserved across all segments.
func ScanSegments(lines []string, strictness Strictness) []Segment {
	var segments []Segment

	appendLine := func(table bool, line string) {
		n := len(segments)
		if n > 0 && segments[n-1].Table == table {
			segments[n-1].Lines = append(segments[n-1].Lines, line)
			return
		}
		segments = append(segments, Segment{Table: table, Lines: []string{line}})
	}

	for _, line := range lines {
		appendLine(IsTableLine(line, strictness), line)
	}

	return segments
}

// FlattenSegments concatenates segment lines back into a single slice.
func FlattenSegments(segments []Segment) []string {
	var lines []string
	for _, seg := range segments {
		lines = append(lines, seg.Lines...)
	}
	return lines
}

// TransformTables applies fn to every table segment of body, leaving
// passthrough segments untouched. fn must return the same number of lines
// it was given; the transforms in this package only reorder. The first
// error aborts the whole pass so callers never see partial output.
func TransformTables(body []string, strictness Strictness, fn func(block []string) ([]string, error)) ([]string, error) {
	segments := ScanSegments(body, strictness)

	for i, seg := range segments {
		if !seg.Table {
			continue
		}

		transformed, err := fn(seg.Lines)
		if err != nil {
			return nil, err
		}
		segments[i].Lines = transformed
	}

	return FlattenSegments(segments), nil
}
