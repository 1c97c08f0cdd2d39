package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "litsea",
	Short: "A compact word segmenter for Japanese",
	Long: `Litsea predicts the set of inter-character positions at which a word
boundary should be inserted, emitting the original characters with
single-space separators. It relies on a small pre-trained binary
classifier over local character context rather than a dictionary.

Available commands:
  extract - Derive feature instances from a whitespace-segmented corpus
  train   - Train a boosted ensemble from a feature instances file
  segment - Segment sentences read from standard input`,
	Example: `  # Derive feature instances from a training corpus
  litsea extract corpus.txt features.txt

  # Train a model
  litsea train -t 0.001 -i 10000 features.txt model.bin

  # Segment sentences from stdin
  echo "LitseaはTinySegmenterを参考に開発された。" | litsea segment model.bin`,
	SilenceUsage: true,
}

// versionCmd prints build version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("litsea version %s\n", version)
		if commit != "none" {
			fmt.Printf("  commit: %s\n", commit)
		}
		if buildDate != "unknown" {
			fmt.Printf("  built:  %s\n", buildDate)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newExtractCmd())
	rootCmd.AddCommand(newTrainCmd())
	rootCmd.AddCommand(newSegmentCmd())
}
