package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdvault/mdvault/pkg/dates"
	"github.com/mdvault/mdvault/pkg/presenter"
)

var datesCmd = &cobra.Command{
	Use:   "dates",
	Short: "Rewrite date strings in Markdown files",
}

var datesConvertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert recognized date substrings to one output format",
	Long: `Convert date substrings in a Markdown file to a single output format.
Recognized input notations: "December 30, 2024", 30.12.2024, 2024-12-30
and 12-30-2024; restrict detection with repeated -i flags. Substrings
that do not form a real calendar date are left untouched.

The output format is one of the shorthand tokens (YYYY-MM-DD, DD.MM.YYYY,
DD.MM, MM-DD, YYYY-MM, MM.DD) or a Go time layout such as "2006/01/02".

Examples:
  mdvault dates convert notes.md
  mdvault dates convert notes.md -f DD.MM.YYYY
  mdvault dates convert notes.md -i DD.MM.YYYY -o out.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		cfg := getEditConfigFromFlags(cmd)
		format, _ := cmd.Flags().GetString("format")
		inputs, _ := cmd.Flags().GetStringArray("input")

		content, err := readInputFile(path)
		if err != nil {
			return err
		}

		transformed, err := dates.Convert(content, dates.ResolveLayout(format), inputs)
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
			presenter.Success(fmt.Sprintf("Date formats converted, output written to %s", dest))
		}
		return nil
	},
}

func init() {
	datesConvertCmd.Flags().StringP("format", "f", "YYYY-MM-DD", "Output format: "+dates.DescribeTokens())
	datesConvertCmd.Flags().StringArrayP("input", "i", nil, "Input format to detect (repeatable; default: all)")
	addEditFlags(datesConvertCmd.Flags())

	datesCmd.AddCommand(datesConvertCmd)
}
