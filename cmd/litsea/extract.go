package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/syobocat/litsea/litsea"
)

// newExtractCmd creates the extract subcommand.
func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <corpus_file> <features_file>",
		Short: "Derive feature instances from a whitespace-segmented corpus",
		Long: `Reads a whitespace-segmented corpus and writes one feature instance per
candidate boundary to the features file, for later consumption by train.

The corpus format is UTF-8 text, one sentence per line, words separated
by one or more ASCII spaces. Empty lines are skipped.`,
		Example: `  litsea extract corpus.txt features.txt`,
		Args:    cobra.ExactArgs(2),
		RunE:    runExtract,
	}
	return cmd
}

func runExtract(_ *cobra.Command, args []string) error {
	corpusPath, featuresPath := args[0], args[1]

	in, err := os.Open(corpusPath)
	if err != nil {
		return fmt.Errorf("open corpus: %w", err)
	}
	defer in.Close()

	instances, err := litsea.ExtractCorpus(in)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	out, err := os.Create(featuresPath)
	if err != nil {
		return fmt.Errorf("create features file: %w", err)
	}
	defer out.Close()

	if err := litsea.WriteFeatures(out, instances); err != nil {
		return fmt.Errorf("write features: %w", err)
	}

	fmt.Printf("wrote %s feature instances to %s\n", humanize.Comma(int64(len(instances))), featuresPath)
	return nil
}
