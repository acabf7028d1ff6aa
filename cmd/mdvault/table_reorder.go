package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdvault/mdvault/pkg/markdown"
	"github.com/mdvault/mdvault/pkg/presenter"
)

var tableReorderCmd = &cobra.Command{
	Use:   "reorder <file> <order>",
	Short: "Reorder table columns according to a permutation",
	Long: `Reorder the columns of every table in a Markdown file. The order
argument is a comma- or space-separated permutation of 0-based column
indices; "2,0,1" moves the third column to the front. Every row of a
table, header and separator included, must have exactly as many columns
as the permutation has indices, otherwise the command fails before
writing anything.

Only rows that start and end with a pipe are treated as table rows.

Examples:
  # Swap the first two columns of a three-column table
  mdvault table reorder daily.md "1,0,2"

  # Move the last of four columns to the front
  mdvault table reorder daily.md "3,0,1,2"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, orderSpec := args[0], args[1]
		cfg := getEditConfigFromFlags(cmd)

		order, err := markdown.ParseColumnOrder(orderSpec)
		if err != nil {
			return err
		}

		content, err := readInputFile(path)
		if err != nil {
			return err
		}

		transformed, err := markdown.ReorderDocument(content, order)
		if err != nil {
			return err
		}

		if err := cfg.emit(path, content, transformed); err != nil {
			return err
		}

		if !cfg.DryRun {
			dest := cfg.OutputPath
			if dest == "" {
				dest = path
			}
			presenter.Success(fmt.Sprintf("Reordered columns in %s", dest))
		}
		return nil
	},
}

func init() {
	addEditFlags(tableReorderCmd.Flags())
}
