package main

import (
	"fmt"
	"os"

	"github.com/aymanbagabas/go-udiff"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// editConfig is shared by the commands that rewrite a single file: where to
// write, and whether to preview instead of writing.
type editConfig struct {
	OutputPath string
	DryRun     bool
	ShowDiff   bool
}

// addEditFlags registers the common flags for single-file edit commands.
func addEditFlags(flags *pflag.FlagSet) {
	flags.StringP("output", "o", "", "Output file (default: modify file in place)")
	flags.BoolP("dry-run", "n", false, "Print the result without writing any file")
	flags.Bool("diff", false, "With --dry-run, print a unified diff instead of the result")
}

func getEditConfigFromFlags(cmd *cobra.Command) editConfig {
	cfg := editConfig{}
	cfg.OutputPath, _ = cmd.Flags().GetString("output")
	cfg.DryRun, _ = cmd.Flags().GetBool("dry-run")
	cfg.ShowDiff, _ = cmd.Flags().GetBool("diff")
	return cfg
}

// emit delivers the result of an edit: printed on a dry run (optionally as
// a unified diff against the original), otherwise written to the output
// path or back over the input.
func (c editConfig) emit(inputPath, original, transformed string) error {
	dest := c.OutputPath
	if dest == "" {
		dest = inputPath
	}

	if c.DryRun {
		if c.ShowDiff {
			fmt.Print(udiff.Unified(inputPath, dest, original, transformed))
		} else {
			fmt.Print(transformed)
		}
		return nil
	}

	if err := os.WriteFile(dest, []byte(transformed), 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", dest)
	}
	return nil
}

// readInputFile loads the file a command is about to transform.
func readInputFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}
	return string(content), nil
}
