package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mdvault/mdvault/pkg/presenter"
	"github.com/mdvault/mdvault/pkg/wikilink"
)

var transcludeCmd = &cobra.Command{
	Use:   "transclude <file>",
	Short: "Inline [[referenced]] note content into a file",
	Long: `Replace every [[name]] reference in a Markdown file with the content
of the sibling file name.md, stripped of its frontmatter and flattened so
it fits inside a single table cell: fenced code blocks are converted to
<pre><code> elements with &#10; newline markers and remaining line breaks
become <br> tags. References that cannot be resolved are left as-is.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		cfg := getEditConfigFromFlags(cmd)

		content, err := readInputFile(path)
		if err != nil {
			return err
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}

		transformed, missing := wikilink.Transclude(content, filepath.Dir(abs))
		for _, body := range missing {
			presenter.Warning(fmt.Sprintf("Reference not found, left as-is: [[%s]]", body))
		}

		if err := cfg.emit(path, content, transformed); err != nil {
			return err
		}

		if !cfg.DryRun {
			presenter.Success(fmt.Sprintf("Successfully processed: %s", path))
		}
		return nil
	},
}

func init() {
	addEditFlags(transcludeCmd.Flags())
}
