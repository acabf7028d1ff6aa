package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reorderDoc = `---
title: daily
tags:
  - log
---
# Daily log

| Name | date | Notes |
| --- | --- | --- |
| a | November 29, 2024 | first |
| b | December 31, 2023 | second |

Closing text.`

func TestReorderColumns(t *testing.T) {
	block := []string{
		"| Name | date | Notes |",
		"| --- | --- | --- |",
		"| a | b | c |",
	}

	out, err := ReorderColumns(block, []int{2, 0, 1})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"| Notes | Name | date |",
		"| --- | --- | --- |",
		"| c | a | b |",
	}, out)
}

func TestReorderColumnsCountMismatch(t *testing.T) {
	block := []string{"| a | b | c |"}

	_, err := ReorderColumns(block, []int{0, 1, 2, 3})
	require.Error(t, err)
	assert.ErrorContains(t, err, "row has 3 columns")
	assert.ErrorContains(t, err, "order specifies 4")
}

func TestReorderDocumentRoundTrip(t *testing.T) {
	// Applying a permutation and then its inverse restores the document.
	forward := []int{2, 0, 1}
	inverse := []int{1, 2, 0}

	once, err := ReorderDocument(reorderDoc, forward)
	require.NoError(t, err)
	assert.NotEqual(t, reorderDoc, once)

	back, err := ReorderDocument(once, inverse)
	require.NoError(t, err)
	assert.Equal(t, reorderDoc, back)
}

func TestReorderDocumentPreservesFrontmatterAndProse(t *testing.T) {
	out, err := ReorderDocument(reorderDoc, []int{1, 0, 2})
	require.NoError(t, err)

	assert.Contains(t, out, "---\ntitle: daily\ntags:\n  - log\n---")
	assert.Contains(t, out, "# Daily log")
	assert.Contains(t, out, "Closing text.")
	assert.Contains(t, out, "| date | Name | Notes |")
}

func TestReorderDocumentMismatchWritesNothing(t *testing.T) {
	// A 3-column table with a 4-index order must fail as a whole.
	_, err := ReorderDocument(reorderDoc, []int{0, 1, 2, 3})
	assert.Error(t, err)
}

func TestReorderDocumentRowCountPreserved(t *testing.T) {
	out, err := ReorderDocument(reorderDoc, []int{2, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, len(SplitLines(reorderDoc)), len(SplitLines(out)))
}
