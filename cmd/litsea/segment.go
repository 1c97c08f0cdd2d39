package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/syobocat/litsea/litsea"
)

var segmentCacheSize int

// newSegmentCmd creates the segment subcommand.
func newSegmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "segment <model_file>",
		Short: "Segment sentences read from standard input",
		Long: `Loads a trained model and reads sentences from standard input, one per
line, writing each sentence back out with single-space separators
inserted at predicted word boundaries.`,
		Example: `  echo "LitseaはTinySegmenterを参考に開発された。" | litsea segment model.bin`,
		Args:    cobra.ExactArgs(1),
		RunE:    runSegment,
	}

	cmd.Flags().IntVar(&segmentCacheSize, "cache-size", 0, "number of distinct input lines to cache (0 means unbounded)")

	return cmd
}

func runSegment(_ *cobra.Command, args []string) error {
	modelPath := args[0]

	model, err := litsea.LoadModelFile(modelPath)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}

	var opts []litsea.SegmenterOption
	if segmentCacheSize > 0 {
		opts = append(opts, litsea.WithCacheSize(segmentCacheSize))
	}
	seg := litsea.NewSegmenter(model, opts...)

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	scanner := seg.NewScanner(os.Stdin)
	for scanner.Scan() {
		if _, err := fmt.Fprintln(out, scanner.Text()); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	return nil
}
