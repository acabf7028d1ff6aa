package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdvault/mdvault/pkg/markdown"
	"github.com/mdvault/mdvault/pkg/presenter"
)

var tableReverseCmd = &cobra.Command{
	Use:   "reverse <file>",
	Short: "Reverse the row order of tables",
	Long: `Reverse the data rows of every table in a Markdown file. By default
the header and separator rows stay at the top and only the rows below
them are reversed. With --no-header the whole table is reversed and the
separator row is then moved back under the new first row so the table
keeps a valid shape.

Any non-blank line containing a pipe counts as a table row here.

Examples:
  # Newest entries first, header stays put
  mdvault table reverse log.md

  # Reverse everything, including the header row
  mdvault table reverse log.md --no-header`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		cfg := getEditConfigFromFlags(cmd)
		noHeader, _ := cmd.Flags().GetBool("no-header")

		content, err := readInputFile(path)
		if err != nil {
			return err
		}

		transformed, err := markdown.ReverseDocument(content, !noHeader)
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
			mode := "with header preserved"
			if noHeader {
				mode = "including header"
			}
			presenter.Success(fmt.Sprintf("Table rows reversed %s in %s", mode, dest))
		}
		return nil
	},
}

func init() {
	tableReverseCmd.Flags().Bool("no-header", false, "Reverse all rows including header and separator")
	addEditFlags(tableReverseCmd.Flags())
}
