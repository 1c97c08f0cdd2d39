package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/syobocat/litsea/litsea"
)

var (
	trainMinGain   float64
	trainMaxIter   int
	trainPriorPath string
	trainMetrics   bool
)

// newTrainCmd creates the train subcommand.
func newTrainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train [-t min_gain] [-i max_iter] [-m prior_model] <features_file> <model_file>",
		Short: "Train a boosted ensemble from a feature instances file",
		Long: `Runs discrete AdaBoost over the feature instances in features_file and
writes the resulting ensemble to model_file.

Training stops once the best candidate stump's edge falls at or below
min_gain, or after max_iter iterations, whichever comes first.`,
		Example: `  # Train with defaults (-t 0.001 -i 10000)
  litsea train features.txt model.bin

  # Resume training from a previously trained model
  litsea train -m model.bin -i 500 features.txt model2.bin`,
		Args: cobra.ExactArgs(2),
		RunE: runTrain,
	}

	cmd.Flags().Float64VarP(&trainMinGain, "min-gain", "t", 0.001, "stop when the best stump's edge falls at or below this")
	cmd.Flags().IntVarP(&trainMaxIter, "max-iter", "i", 10000, "hard cap on boosting iterations")
	cmd.Flags().StringVarP(&trainPriorPath, "prior-model", "m", "", "warm-start from a previously trained model")
	cmd.Flags().BoolVar(&trainMetrics, "metrics", false, "show wall-clock duration and instances/second")

	return cmd
}

func runTrain(_ *cobra.Command, args []string) error {
	featuresPath, modelPath := args[0], args[1]

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	f, err := os.Open(featuresPath)
	if err != nil {
		return fmt.Errorf("open features file: %w", err)
	}
	instances, err := litsea.ReadFeatures(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("read features: %w", err)
	}

	opts := []litsea.BoosterOption{
		litsea.WithMinGain(trainMinGain),
		litsea.WithMaxIter(trainMaxIter),
		litsea.WithIterationReporter(func(r litsea.IterationReport) {
			log.Info().
				Int("iter", r.Iteration).
				Str("atom", r.Atom).
				Float64("margin", r.Edge).
				Float64("alpha", r.Alpha).
				Float64("epsilon", r.Epsilon).
				Msg("stump added")
		}),
	}

	if trainPriorPath != "" {
		prior, err := litsea.LoadModelFile(trainPriorPath)
		if err != nil {
			return fmt.Errorf("load prior model: %w", err)
		}
		opts = append(opts, litsea.WithPriorModel(prior))
	}

	booster, err := litsea.NewBooster(opts...)
	if err != nil {
		return fmt.Errorf("configure booster: %w", err)
	}

	start := time.Now()
	model, metrics, err := booster.Train(instances)
	duration := time.Since(start)
	if err != nil {
		return fmt.Errorf("train: %w", err)
	}

	if err := model.SaveFile(modelPath); err != nil {
		return fmt.Errorf("save model: %w", err)
	}

	log.Info().
		Int("iterations", metrics.Iterations).
		Int("tp", metrics.TruePos).
		Int("fp", metrics.FalsePos).
		Int("fn", metrics.FalseNeg).
		Int("tn", metrics.TrueNeg).
		Float64("accuracy", metrics.Accuracy()).
		Float64("precision", metrics.Precision()).
		Float64("recall", metrics.Recall()).
		Msg("training complete")

	fmt.Printf("trained %d stumps over %s instances\n", model.Len(), humanize.Comma(int64(len(instances))))
	fmt.Printf("accuracy=%.4f precision=%.4f recall=%.4f\n", metrics.Accuracy(), metrics.Precision(), metrics.Recall())
	fmt.Printf("confusion: TP=%d FP=%d FN=%d TN=%d\n", metrics.TruePos, metrics.FalsePos, metrics.FalseNeg, metrics.TrueNeg)

	if trainMetrics {
		fmt.Printf("duration=%s instances/sec=%.0f\n", duration, float64(len(instances))/duration.Seconds())
	}

	return nil
}
