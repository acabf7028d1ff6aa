package main

import "github.com/spf13/cobra"

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Transform pipe-delimited Markdown tables",
	Long: `Transform the pipe-delimited tables of a Markdown document while
leaving frontmatter and all non-table lines untouched.`,
}

func init() {
	tableCmd.AddCommand(tableReorderCmd)
	tableCmd.AddCommand(tableReverseCmd)
	tableCmd.AddCommand(tableSplitCmd)
}
