package markdown

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverseRowsKeepHeader(t *testing.T) {
	block := []string{
		"| Name | date |",
		"| --- | --- |",
		"| a | 1 |",
		"| b | 2 |",
		"| c | 3 |",
	}

	out := ReverseRows(block, true)

	assert.Equal(t, []string{
		"| Name | date |",
		"| --- | --- |",
		"| c | 3 |",
		"| b | 2 |",
		"| a | 1 |",
	}, out)

	// Header and separator are byte-identical.
	assert.Equal(t, block[0], out[0])
	assert.Equal(t, block[1], out[1])
}

func TestReverseRowsKeepHeaderShortTables(t *testing.T) {
	two := []string{"| h |", "| --- |"}
	assert.Equal(t, two, ReverseRows(two, true))

	one := []string{"| h |"}
	assert.Equal(t, one, ReverseRows(one, true))
}

func TestReverseRowsNoHeaderRepositionsSeparator(t *testing.T) {
	block := []string{
		"| header |",
		"| --- |",
		"| row1 |",
		"| row2 |",
	}

	out := ReverseRows(block, false)

	// Naive reversal puts the separator at index 2; it is moved back to 1.
	assert.Equal(t, []string{
		"| row2 |",
		"| --- |",
		"| row1 |",
		"| header |",
	}, out)
}

func TestReverseRowsNoHeaderShortTableNoRepositioning(t *testing.T) {
	block := []string{"| h |", "| --- |"}
	assert.Equal(t, []string{"| --- |", "| h |"}, ReverseRows(block, false))
}

func TestReverseRowsPreservesRowMultiset(t *testing.T) {
	block := []string{"| h |", "| --- |", "| x |", "| y |", "| z |"}

	for _, keepHeader := range []bool{true, false} {
		out := ReverseRows(append([]string(nil), block...), keepHeader)

		sortedIn := append([]string(nil), block...)
		sortedOut := append([]string(nil), out...)
		sort.Strings(sortedIn)
		sort.Strings(sortedOut)
		assert.Equal(t, sortedIn, sortedOut, "keepHeader=%v", keepHeader)
	}
}

func TestReverseDocument(t *testing.T) {
	doc := `---
title: log
---
intro

| Name | date |
| --- | --- |
| a | 1 |
| b | 2 |

outro`

	out, err := ReverseDocument(doc, true)
	require.NoError(t, err)

	assert.Equal(t, `---
title: log
---
intro

| Name | date |
| --- | --- |
| b | 2 |
| a | 1 |

outro`, out)
}

func TestReverseDocumentLooseDetection(t *testing.T) {
	// A malformed row with a pipe but no boundary pipes still travels with
	// its table under the loose rule.
	doc := "| h |\n| --- |\n| a |\nb | trailing"

	out, err := ReverseDocument(doc, true)
	require.NoError(t, err)
	assert.Equal(t, "| h |\n| --- |\nb | trailing\n| a |", out)
}
