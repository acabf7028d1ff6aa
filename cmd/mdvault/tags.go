package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mdvault/mdvault/pkg/presenter"
	"github.com/mdvault/mdvault/pkg/vault"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Manage tags across a vault",
}

var tagsRemoveCmd = &cobra.Command{
	Use:   "remove <dir> <tag>",
	Short: "Remove a tag from every Markdown file under a directory",
	Long: `Remove a tag from all Markdown files under a directory. Inside
frontmatter this strips list entries like "- daily" or "- #daily"; in the
body only "#daily" occurrences are removed. Pass the tag without the '#'.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, tag := args[0], args[1]

		pattern, _ := cmd.Flags().GetString("glob")
		if pattern == "" {
			pattern = viper.GetString("glob")
		}

		result, err := vault.RemoveTag(root, pattern, tag)
		if result != nil {
			for _, path := range result.Modified {
				presenter.Info(fmt.Sprintf("  - %s", path))
			}
			presenter.Separator()
			presenter.Info(fmt.Sprintf("Scan complete. Looked at %d Markdown files.", result.Scanned))
			presenter.Success(fmt.Sprintf("Removed %d instance(s) of '#%s' from %d files.",
				result.Replacements, tag, len(result.Modified)))
		}
		return err
	},
}

func init() {
	tagsRemoveCmd.Flags().String("glob", "", "Glob pattern selecting files (default \"**/*.md\")")
	tagsCmd.AddCommand(tagsRemoveCmd)
}
