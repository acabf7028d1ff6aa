package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mdvault/mdvault/pkg/images"
	"github.com/mdvault/mdvault/pkg/presenter"
)

var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "Maintain images referenced by a vault",
}

var imagesCompressCmd = &cobra.Command{
	Use:   "compress <dir>",
	Short: "Recompress JPEG files in place to reduce their size",
	Long: `Scan a directory tree for .jpg/.jpeg files and re-encode each at the
given quality, overwriting a file only when that actually shrinks it.
Files already below the minimum size are skipped, so repeated runs are
safe.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := args[0]
		opts := getCompressOptionsFromFlags(cmd)

		presenter.Info(fmt.Sprintf("Scanning for .jpg/.jpeg files in %s...", root))

		result, err := images.Compress(root, opts)
		if result != nil {
			for _, fr := range result.Files {
				if fr.Skipped {
					presenter.Info(fmt.Sprintf("Skipped %s (%s)", fr.Path, fr.SkipReason))
					continue
				}
				reduction := float64(fr.OriginalSize-fr.NewSize) / float64(fr.OriginalSize) * 100
				presenter.Info(fmt.Sprintf("Processed %s: %.2fMB -> %.2fMB (%.1f%% reduction)",
					fr.Path,
					float64(fr.OriginalSize)/1024/1024,
					float64(fr.NewSize)/1024/1024,
					reduction))
			}

			presenter.Section("Summary")
			presenter.Info(fmt.Sprintf("Total files found: %d", result.Found))
			presenter.Info(fmt.Sprintf("Files processed: %d", result.Processed))
			presenter.Info(fmt.Sprintf("Files skipped: %d", result.Skipped))
			if result.OriginalBytes > 0 {
				total := float64(result.OriginalBytes-result.NewBytes) / float64(result.OriginalBytes) * 100
				presenter.Success(fmt.Sprintf("Total size reduction: %.2fMB -> %.2fMB (%.1f%%)",
					float64(result.OriginalBytes)/1024/1024,
					float64(result.NewBytes)/1024/1024,
					total))
			}
		}
		return err
	},
}

func getCompressOptionsFromFlags(cmd *cobra.Command) images.CompressOptions {
	opts := images.CompressOptions{
		Quality:   images.DefaultQuality,
		MinSizeKB: images.DefaultMinSizeKB,
	}

	if viper.IsSet("images.quality") {
		opts.Quality = viper.GetInt("images.quality")
	}
	if viper.IsSet("images.min_size_kb") {
		opts.MinSizeKB = viper.GetInt("images.min_size_kb")
	}

	// Explicit flags win over config, including explicit zeros.
	if cmd.Flags().Changed("quality") {
		opts.Quality, _ = cmd.Flags().GetInt("quality")
	}
	if cmd.Flags().Changed("min-size") {
		opts.MinSizeKB, _ = cmd.Flags().GetInt("min-size")
	}

	return opts
}

func init() {
	imagesCompressCmd.Flags().Int("quality", images.DefaultQuality, "JPEG quality for re-encoded images (1-100)")
	imagesCompressCmd.Flags().Int("min-size", images.DefaultMinSizeKB, "Minimum file size in KB to consider a file")
	imagesCmd.AddCommand(imagesCompressCmd)
}
