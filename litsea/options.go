package litsea

// BoosterOption is a functional option for configuring a Booster,
// following the same pattern as llama3.Option in the teacher tokenizer:
// each option validates its own input and returns a *ConfigError instead
// of panicking.
type BoosterOption func(*boosterConfig) error

type boosterConfig struct {
	minGain  float64
	maxIter  int
	prior    *Model
	reporter IterationReporter
}

func defaultBoosterConfig() boosterConfig {
	return boosterConfig{
		minGain: defaultMinGain,
		maxIter: defaultMaxIter,
	}
}

// WithMinGain sets the stopping threshold on a stump's edge (spec §4.2).
// Training halts once the best candidate stump's edge falls at or below
// minGain. Default 0.001.
func WithMinGain(minGain float64) BoosterOption {
	return func(cfg *boosterConfig) error {
		if minGain < 0 {
			return NewConfigError("min_gain", minGain, ErrInvalidInput)
		}
		cfg.minGain = minGain
		return nil
	}
}

// WithMaxIter sets the hard cap on boosting iterations. Default 10000.
func WithMaxIter(maxIter int) BoosterOption {
	return func(cfg *boosterConfig) error {
		if maxIter < 0 {
			return NewConfigError("max_iter", maxIter, ErrInvalidInput)
		}
		cfg.maxIter = maxIter
		return nil
	}
}

// WithPriorModel supplies a warm-start ensemble (spec §4.2). Training
// resumes as if the prior model had just been produced: its stumps are
// kept (in order) ahead of any newly trained ones, and instance weights
// are first updated by running every prior stump against every instance.
func WithPriorModel(prior *Model) BoosterOption {
	return func(cfg *boosterConfig) error {
		cfg.prior = prior
		return nil
	}
}

// IterationReporter receives one IterationReport per boosting iteration.
// The Booster never logs directly — it is the CLI layer's job to decide
// how (or whether) to surface this, matching the teacher's separation of
// library (returns values) from CLI (prints/logs them).
type IterationReporter func(IterationReport)

// IterationReport describes a single boosting iteration's chosen stump.
type IterationReport struct {
	Iteration int
	Atom      string
	Sign      int8
	Edge      float64
	Epsilon   float64
	Alpha     float64
}

// WithIterationReporter registers a callback invoked once per accepted
// boosting iteration, used by the train CLI subcommand to log progress
// via zerolog without the Booster itself depending on a logging library.
func WithIterationReporter(r IterationReporter) BoosterOption {
	return func(cfg *boosterConfig) error {
		cfg.reporter = r
		return nil
	}
}

// SegmenterOption configures a Segmenter.
type SegmenterOption func(*segmenterConfig)

type segmenterConfig struct {
	cacheSize int
}

func defaultSegmenterConfig() segmenterConfig {
	return segmenterConfig{cacheSize: defaultCacheSize}
}

// WithCacheSize sets the maximum number of rendered lines the Segmenter
// caches, keyed on the raw input line. 0 (the default) leaves the cache
// unbounded: every distinct line is kept and none is evicted. Sizes below
// 1 are ignored.
func WithCacheSize(size int) SegmenterOption {
	return func(cfg *segmenterConfig) {
		if size > 0 {
			cfg.cacheSize = size
		}
	}
}
