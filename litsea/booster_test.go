package litsea

import "testing"

func sampleInstances() []Instance {
	sentence := []rune("あいうえお")
	return Extract(sentence, map[int]bool{2: true})
}

func TestBoosterEmptyCorpus(t *testing.T) {
	b, err := NewBooster()
	if err != nil {
		t.Fatalf("NewBooster: %v", err)
	}
	if _, _, err := b.Train(nil); err != ErrEmptyCorpus {
		t.Fatalf("Train(nil) error = %v, want ErrEmptyCorpus", err)
	}
}

func TestBoosterInvalidOptions(t *testing.T) {
	if _, err := NewBooster(WithMinGain(-1)); err == nil {
		t.Error("expected error for negative min gain")
	}
	if _, err := NewBooster(WithMaxIter(-1)); err == nil {
		t.Error("expected error for negative max iter")
	}
}

func TestBoosterTrainsAndTerminates(t *testing.T) {
	b, err := NewBooster(WithMinGain(0), WithMaxIter(50))
	if err != nil {
		t.Fatalf("NewBooster: %v", err)
	}
	instances := sampleInstances()
	model, metrics, err := b.Train(instances)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	if model.Len() == 0 {
		t.Error("expected at least one stump")
	}
	if metrics.Iterations == 0 {
		t.Error("expected at least one iteration")
	}
	if metrics.Iterations > 50 {
		t.Errorf("iterations = %d, exceeds max_iter cap", metrics.Iterations)
	}
}

func TestBoosterWarmStartIdentity(t *testing.T) {
	instances := sampleInstances()

	base, err := NewBooster(WithMinGain(0), WithMaxIter(5))
	if err != nil {
		t.Fatalf("NewBooster: %v", err)
	}
	prior, priorMetrics, err := base.Train(instances)
	if err != nil {
		t.Fatalf("Train (base): %v", err)
	}

	resumed, err := NewBooster(WithMaxIter(0), WithPriorModel(prior))
	if err != nil {
		t.Fatalf("NewBooster (warm start): %v", err)
	}
	got, gotMetrics, err := resumed.Train(instances)
	if err != nil {
		t.Fatalf("Train (warm start): %v", err)
	}

	if got.Len() != prior.Len() {
		t.Fatalf("warm-started model has %d stumps, want %d", got.Len(), prior.Len())
	}
	for i, s := range prior.Stumps() {
		gs := got.Stumps()[i]
		if gs.AtomString != s.AtomString || gs.Alpha != s.Alpha {
			t.Errorf("stump %d = %+v, want %+v", i, gs, s)
		}
	}
	if gotMetrics.TruePos != priorMetrics.TruePos ||
		gotMetrics.FalsePos != priorMetrics.FalsePos ||
		gotMetrics.FalseNeg != priorMetrics.FalseNeg ||
		gotMetrics.TrueNeg != priorMetrics.TrueNeg {
		t.Errorf("warm-start metrics = %+v, want %+v", gotMetrics, priorMetrics)
	}
}

func TestBoosterDeterministicTieBreak(t *testing.T) {
	instances := sampleInstances()
	b, err := NewBooster(WithMinGain(0), WithMaxIter(10))
	if err != nil {
		t.Fatalf("NewBooster: %v", err)
	}
	m1, _, err := b.Train(instances)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	m2, _, err := b.Train(instances)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	if m1.Len() != m2.Len() {
		t.Fatalf("repeated training produced different ensemble sizes: %d vs %d", m1.Len(), m2.Len())
	}
	for i, s := range m1.Stumps() {
		if s2 := m2.Stumps()[i]; s.AtomString != s2.AtomString || s.Alpha != s2.Alpha {
			t.Errorf("stump %d differs across runs: %+v vs %+v", i, s, s2)
		}
	}
}

func TestIterationReporter(t *testing.T) {
	var reports []IterationReport
	b, err := NewBooster(
		WithMinGain(0),
		WithMaxIter(3),
		WithIterationReporter(func(r IterationReport) { reports = append(reports, r) }),
	)
	if err != nil {
		t.Fatalf("NewBooster: %v", err)
	}
	if _, _, err := b.Train(sampleInstances()); err != nil {
		t.Fatalf("Train: %v", err)
	}
	if len(reports) == 0 {
		t.Error("expected at least one iteration report")
	}
}
