package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var frontmatterCmd = &cobra.Command{
	Use:     "frontmatter",
	Aliases: []string{"fm"},
	Short:   "Audit and rewrite YAML frontmatter across a vault",
}

func init() {
	frontmatterCmd.PersistentFlags().String("glob", "", "Glob pattern selecting files (default \"**/*.md\")")
	viper.BindPFlag("glob", frontmatterCmd.PersistentFlags().Lookup("glob"))

	frontmatterCmd.AddCommand(frontmatterCheckCmd)
	frontmatterCmd.AddCommand(frontmatterRenameKeyCmd)
}

// globFromFlags resolves the file selection pattern, falling back to the
// configured or built-in default.
func globFromFlags(cmd *cobra.Command) string {
	if pattern, _ := cmd.Flags().GetString("glob"); pattern != "" {
		return pattern
	}
	return viper.GetString("glob")
}
