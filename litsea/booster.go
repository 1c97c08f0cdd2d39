package litsea

import (
	"github.com/syobocat/litsea/litsea/internal/boost"
)

// Booster runs discrete (SAMME-style) AdaBoost over decision stumps on
// categorical atoms (spec §4.2). It holds only hyperparameters; the
// working weight vector and inverted index live entirely inside a single
// Train call, matching spec §5's ownership rule ("the trainer
// exclusively owns the working ensemble and weight vector during a
// run").
type Booster struct {
	cfg boosterConfig
}

// NewBooster constructs a Booster from the given options. Unlike
// llama3.New(), construction cannot fail from missing external data, but
// an invalid hyperparameter still returns a *ConfigError.
func NewBooster(opts ...BoosterOption) (*Booster, error) {
	cfg := defaultBoosterConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	return &Booster{cfg: cfg}, nil
}

// Metrics summarizes a completed training run against its own training
// set (spec §4.2: "accuracy, precision, recall ... and the 2x2 confusion
// matrix. No cross-validation is performed.").
type Metrics struct {
	Iterations int
	TruePos    int
	FalsePos   int
	FalseNeg   int
	TrueNeg    int
}

// Accuracy returns (TP+TN)/total, or 0 if there were no instances.
func (m Metrics) Accuracy() float64 {
	total := m.TruePos + m.FalsePos + m.FalseNeg + m.TrueNeg
	if total == 0 {
		return 0
	}
	return float64(m.TruePos+m.TrueNeg) / float64(total)
}

// Precision returns TP/(TP+FP), or 0 if the model never predicted positive.
func (m Metrics) Precision() float64 {
	if m.TruePos+m.FalsePos == 0 {
		return 0
	}
	return float64(m.TruePos) / float64(m.TruePos+m.FalsePos)
}

// Recall returns TP/(TP+FN), or 0 if there were no positive instances.
func (m Metrics) Recall() float64 {
	if m.TruePos+m.FalseNeg == 0 {
		return 0
	}
	return float64(m.TruePos) / float64(m.TruePos+m.FalseNeg)
}

// Train runs the booster over instances, optionally warm-starting from
// b's configured prior model (WithPriorModel), and returns the resulting
// ensemble plus training-set Metrics.
//
// Zero instances is a hard failure (spec §4.2 "Failure modes"):
// ErrEmptyCorpus.
func (b *Booster) Train(instances []Instance) (*Model, Metrics, error) {
	if len(instances) == 0 {
		return nil, Metrics{}, ErrEmptyCorpus
	}

	n := len(instances)
	labels := make([]int8, n)
	for i, inst := range instances {
		labels[i] = inst.Label
	}

	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1.0 / float64(n)
	}

	idx := boost.BuildIndex(instances)
	scratch := make([]bool, n)

	var priorStumps []Stump
	if b.cfg.prior != nil {
		priorStumps = b.cfg.prior.Stumps()
		// Warm start: reweight as if every prior stump had just been
		// produced, in the order it was originally trained (spec §4.2
		// "Initialization").
		for _, s := range priorStumps {
			sign := int8(1)
			conf := s.Alpha
			if conf < 0 {
				sign = -1
				conf = -conf
			}
			present := presentForAtomString(idx, s.AtomString)
			boost.UpdateWeights(weights, labels, present, sign, conf, scratch)
		}
	}

	var trained []Stump
	for iter := 0; iter < b.cfg.maxIter; iter++ {
		cand, ok := boost.SelectStump(idx, labels, weights)
		if !ok {
			break
		}
		if cand.Edge <= b.cfg.minGain {
			break
		}

		alpha := cand.Alpha()
		trained = append(trained, Stump{AtomString: cand.Atom.String(), Alpha: alpha})

		if b.cfg.reporter != nil {
			b.cfg.reporter(IterationReport{
				Iteration: iter,
				Atom:      cand.Atom.String(),
				Sign:      cand.Sign,
				Edge:      cand.Edge,
				Epsilon:   cand.Epsilon,
				Alpha:     alpha,
			})
		}

		present := idx.Instances(cand.Atom)
		boost.UpdateWeights(weights, labels, present, cand.Sign, cand.Confidence, scratch)
	}

	allStumps := make([]Stump, 0, len(priorStumps)+len(trained))
	allStumps = append(allStumps, priorStumps...)
	allStumps = append(allStumps, trained...)
	model := NewModel(allStumps)

	metrics := evaluate(model, instances, len(trained))
	return model, metrics, nil
}

// presentForAtomString finds which instances contain the exact atom
// string s, using the index's per-atom instance lists. Prior-model
// atoms not produced by the current feature schema simply have no
// entry and are treated as opaque passthroughs (spec §9 "Warm start vs.
// schema drift"): they still score correctly via Model.Alpha, they just
// never fire during this training run's reweighting.
func presentForAtomString(idx *boost.Index, s string) []int {
	for _, a := range idx.Atoms() {
		if a.String() == s {
			return idx.Instances(a)
		}
	}
	return nil
}

// evaluate scores every instance with the final model and tallies the
// 2x2 confusion matrix (spec §4.2).
func evaluate(model *Model, instances []Instance, trainedIterations int) Metrics {
	m := Metrics{Iterations: trainedIterations}
	for _, inst := range instances {
		var score float64
		for _, a := range inst.Atoms {
			if alpha, ok := model.Alpha(a.String()); ok {
				score += alpha
			}
		}
		predicted := score > 0
		actual := inst.Label > 0
		switch {
		case predicted && actual:
			m.TruePos++
		case predicted && !actual:
			m.FalsePos++
		case !predicted && actual:
			m.FalseNeg++
		default:
			m.TrueNeg++
		}
	}
	return m
}
