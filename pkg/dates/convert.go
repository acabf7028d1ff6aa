// Package dates rewrites date substrings in Markdown text from a set of
// recognized input notations to a single output layout. Substrings that do
// not parse as real calendar dates are left untouched.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Format tokens accepted by ResolveLayout, mapped to Go time layouts.
var formatTokens = map[string]string{
	"YYYY-MM-DD": "2006-01-02",
	"DD.MM.YYYY": "02.01.2006",
	"DD.MM":      "02.01",
	"MM-DD":      "01-02",
	"YYYY-MM":    "2006-01",
	"MM.DD":      "01.02",
}

// Input detector names accepted by Convert.
const (
	InputLongForm = "month-day-year" // "December 30, 2024"
	InputDotted   = "DD.MM.YYYY"     // "30.12.2024"
	InputISO      = "YYYY-MM-DD"     // "2024-12-30"
	InputUSDashes = "MM-DD-YYYY"     // "12-30-2024"
	InputAll      = "all"
)

var (
	longFormRe = regexp.MustCompile(`\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},\s+\d{4}\b`)
	dottedRe   = regexp.MustCompile(`\b(\d{1,2})\.(\d{1,2})\.(\d{4})\b`)
	isoRe      = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
	usDashRe   = regexp.MustCompile(`\b(\d{1,2})-(\d{1,2})-(\d{4})\b`)
)

// ResolveLayout maps a format token such as "YYYY-MM-DD" to its Go time
// layout. Unrecognized tokens are assumed to already be Go layouts, which
// lets callers pass arbitrary output formats.
func ResolveLayout(token string) string {
	if layout, ok := formatTokens[token]; ok {
		return layout
	}
	return token
}

// ValidInput reports whether name is a recognized input detector name.
func ValidInput(name string) bool {
	switch name {
	case InputLongForm, InputDotted, InputISO, InputUSDashes, InputAll:
		return true
	}
	return false
}

// Convert rewrites recognized date substrings in content to the output
// layout. inputs selects which notations to detect; empty or containing
// "all" enables every detector. Detectors run in a fixed order (long form,
// dotted, ISO, US dashes) so a rewritten date is not re-matched by a later
// detector in surprising ways. Substrings that match a pattern but are not
// valid calendar dates (e.g. 31.02.2024) are left as-is.
func Convert(content, outputLayout string, inputs []string) (string, error) {
	for _, in := range inputs {
		if !ValidInput(in) {
			return "", errors.Errorf("unknown input format %q", in)
		}
	}

	enabled := func(name string) bool {
		if len(inputs) == 0 {
			return true
		}
		for _, in := range inputs {
			if in == InputAll || in == name {
				return true
			}
		}
		return false
	}

	if enabled(InputLongForm) {
		content = longFormRe.ReplaceAllStringFunc(content, func(match string) string {
			t, err := time.Parse("January 2, 2006", match)
			if err != nil {
				return match
			}
			return t.Format(outputLayout)
		})
	}

	if enabled(InputDotted) {
		content = replaceNumeric(content, dottedRe, func(g []string) (int, int, int) {
			return atoi(g[3]), atoi(g[2]), atoi(g[1]) // year, month, day
		}, outputLayout)
	}

	if enabled(InputISO) {
		content = replaceNumeric(content, isoRe, func(g []string) (int, int, int) {
			return atoi(g[1]), atoi(g[2]), atoi(g[3])
		}, outputLayout)
	}

	if enabled(InputUSDashes) {
		content = replaceNumeric(content, usDashRe, func(g []string) (int, int, int) {
			return atoi(g[3]), atoi(g[1]), atoi(g[2])
		}, outputLayout)
	}

	return content, nil
}

// replaceNumeric rewrites every match of re whose captured groups form a
// valid calendar date. extract returns (year, month, day) from the match
// groups.
func replaceNumeric(content string, re *regexp.Regexp, extract func([]string) (year, month, day int), layout string) string {
	return re.ReplaceAllStringFunc(content, func(match string) string {
		groups := re.FindStringSubmatch(match)
		if groups == nil {
			return match
		}

		year, month, day := extract(groups)
		t, ok := makeDate(year, month, day)
		if !ok {
			return match
		}
		return t.Format(layout)
	})
}

// makeDate builds a time.Time and rejects inputs that time.Date would
// silently normalize, such as February 31.
func makeDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// DescribeTokens returns a human-readable list of the supported output
// format tokens for help text.
func DescribeTokens() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, or a Go time layout",
		"YYYY-MM-DD", "DD.MM.YYYY", "DD.MM", "MM-DD", "YYYY-MM", "MM.DD")
}
