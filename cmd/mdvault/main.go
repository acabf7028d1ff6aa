package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mdvault/mdvault/pkg/logger"
	"github.com/mdvault/mdvault/pkg/presenter"
)

func init() {
	// Environment variables
	viper.SetEnvPrefix("MDVAULT")
	viper.AutomaticEnv()

	// Config file support
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.mdvault")
	viper.AddConfigPath(".")

	// Load config file if it exists (ignore errors if it doesn't)
	_ = viper.ReadInConfig()
}

var rootCmd = &cobra.Command{
	Use:   "mdvault",
	Short: "Mechanical editing utilities for Markdown note vaults",
	Long: `mdvault is a collection of small, single-pass editing utilities for
Markdown note vaults: table column reordering, table row reversal,
splitting a table by year, frontmatter auditing and key renames, date
format conversion, tag removal, dead wiki-link pruning, transclusion
inlining, and JPEG recompression.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := logger.SetLogLevel(viper.GetString("log_level")); err != nil {
			return err
		}
		logger.SetLogFormat(viper.GetString("log_format"))
		presenter.SetQuiet(viper.GetBool("quiet"))

		mode, err := presenter.ParseColorMode(viper.GetString("color"))
		if err != nil {
			return err
		}
		presenter.SetColorMode(mode)
		return nil
	},
}

func main() {
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "fmt", "Log format (fmt, json)")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress non-error output")
	rootCmd.PersistentFlags().String("color", "auto", "Colorize output (auto, always, never)")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("color", rootCmd.PersistentFlags().Lookup("color"))

	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(frontmatterCmd)
	rootCmd.AddCommand(datesCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(linksCmd)
	rootCmd.AddCommand(transcludeCmd)
	rootCmd.AddCommand(imagesCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		presenter.Error(err, "")
		os.Exit(1)
	}
}
