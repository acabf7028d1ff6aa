package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdvault/mdvault/pkg/presenter"
	"github.com/mdvault/mdvault/pkg/vault"
)

var frontmatterCheckCmd = &cobra.Command{
	Use:   "check <dir>",
	Short: "Report Markdown files missing or carrying broken frontmatter",
	Long: `Scan a directory tree for Markdown files and report which of them lack
a leading YAML frontmatter block (--- ... ---) and which carry a block
that is not valid YAML. No file is modified.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := vault.CheckFrontmatter(args[0], globFromFlags(cmd))
		if err != nil {
			return err
		}

		presenter.Info(fmt.Sprintf("Scan complete. Looked at %d Markdown files.", result.Total))
		presenter.Info(fmt.Sprintf("Files with frontmatter: %d", result.With))
		presenter.Info(fmt.Sprintf("Files without frontmatter: %d", len(result.Missing)))

		if len(result.Missing) > 0 {
			presenter.Section("Files missing frontmatter")
			for _, path := range result.Missing {
				presenter.Info(fmt.Sprintf("- %s", path))
			}
		}

		if len(result.Invalid) > 0 {
			presenter.Section("Files with invalid frontmatter")
			for _, issue := range result.Invalid {
				presenter.Warning(fmt.Sprintf("%s: %v", issue.Path, issue.Err))
			}
		}

		return nil
	},
}
