package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mdvault/mdvault/pkg/markdown"
	"github.com/mdvault/mdvault/pkg/presenter"
)

var tableSplitCmd = &cobra.Command{
	Use:   "split-by-year <file>",
	Short: "Split a dated table into one file per year",
	Long: `Split the Name/date table of a Markdown file into sibling files, one
per year found in the date column, named <stem>_<year>.md. Rows whose
date does not parse as "Month D, Year" go to <stem>_unknown_dates.md.
Each output file starts with the original frontmatter, followed by the
table header and separator. The input file is left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		path := args[0]

		content, err := readInputFile(path)
		if err != nil {
			return err
		}

		result, err := markdown.SplitByYear(content)
		if err != nil {
			return err
		}

		dir := filepath.Dir(path)
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

		for _, bucket := range result.Buckets {
			outPath := filepath.Join(dir, fmt.Sprintf("%s_%s.md", stem, bucket.Label()))
			if err := os.WriteFile(outPath, []byte(result.Render(bucket)), 0o644); err != nil {
				return errors.Wrapf(err, "writing %s", outPath)
			}
			presenter.Info(fmt.Sprintf("Created: %s (%d rows)", outPath, len(bucket.Rows)))
		}

		years := 0
		unknownRows := 0
		for _, bucket := range result.Buckets {
			if bucket.Unknown {
				unknownRows = len(bucket.Rows)
			} else {
				years++
			}
		}

		presenter.Separator()
		presenter.Info(fmt.Sprintf("Total years: %d", years))
		if unknownRows > 0 {
			presenter.Warning(fmt.Sprintf("Rows with unknown dates: %d", unknownRows))
		}
		return nil
	},
}
