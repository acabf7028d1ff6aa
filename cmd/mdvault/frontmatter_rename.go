package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdvault/mdvault/pkg/presenter"
	"github.com/mdvault/mdvault/pkg/vault"
)

var frontmatterRenameKeyCmd = &cobra.Command{
	Use:   "rename-key <dir> <old> <new>",
	Short: "Rename a frontmatter key across a vault",
	Long: `Rename a YAML frontmatter key in every Markdown file under a
directory. Only "key:" lines inside the frontmatter block are rewritten;
indentation and the rest of the document are preserved.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, oldKey, newKey := args[0], args[1], args[2]

		presenter.Info("Modifying files...")
		result, err := vault.RenameKey(root, globFromFlags(cmd), oldKey, newKey)
		if result != nil {
			for _, path := range result.Affected {
				presenter.Info(fmt.Sprintf("  - %s", path))
			}
			presenter.Separator()
			presenter.Success(fmt.Sprintf("Finished. Affected files: %d", len(result.Affected)))
		}
		return err
	},
}
