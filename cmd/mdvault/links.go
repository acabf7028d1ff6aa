package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mdvault/mdvault/pkg/presenter"
	"github.com/mdvault/mdvault/pkg/wikilink"
)

var linksCmd = &cobra.Command{
	Use:   "links",
	Short: "Maintain wiki-style links between notes",
}

var linksPruneCmd = &cobra.Command{
	Use:   "prune <file>",
	Short: "Unwrap [[links]] whose target file does not exist",
	Long: `Remove the brackets from every [[target]] link in a Markdown file
whose target .md file does not exist in the same directory, keeping the
inner text. Links to existing files are left alone.`,
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

		transformed, pruned := wikilink.PruneDeadLinks(content, filepath.Dir(abs))
		for _, body := range pruned {
			presenter.Info(fmt.Sprintf("Removed link brackets for '[[%s]]' (target missing)", body))
		}

		if err := cfg.emit(path, content, transformed); err != nil {
			return err
		}

		if !cfg.DryRun {
			presenter.Success(fmt.Sprintf("Processing complete for %s (%d dead links)", path, len(pruned)))
		}
		return nil
	},
}

func init() {
	addEditFlags(linksPruneCmd.Flags())
	linksCmd.AddCommand(linksPruneCmd)
}
