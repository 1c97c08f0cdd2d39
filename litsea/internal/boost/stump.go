package boost

import (
	"math"

	"github.com/syobocat/litsea/litsea/internal/features"
)

// maxAlpha bounds a stump's confidence so a perfectly (or near-perfectly)
// separating atom doesn't diverge to infinity (spec §4.2/§9).
const maxAlpha = 10.0

// Candidate is a scored decision stump candidate produced by SelectStump.
type Candidate struct {
	Atom       features.Atom
	Sign       int8    // +1 or -1: the class voted for when the atom is present.
	Edge       float64 // |WPos - WNeg|, the weighted separation (spec §4.2/GLOSSARY).
	Epsilon    float64 // weighted training error of this stump over all instances.
	Confidence float64 // 0.5*ln((1-eps)/eps), clamped; always >= 0.
}

// Alpha is the stump's final signed weight: Sign * Confidence, matching
// the Stump.Alpha convention in spec §3 ("sign indicates the class...;
// magnitude is the confidence").
func (c Candidate) Alpha() float64 { return float64(c.Sign) * c.Confidence }

// clampConfidence bounds the raw 0.5*ln((1-eps)/eps) confidence to
// [0, maxAlpha], treating eps<=0 or eps>=1 as the maximum — spec §4.2/§9's
// numeric-edge fix, without which perfectly separable atoms never
// terminate training.
func clampConfidence(eps float64) float64 {
	if eps <= 0 {
		return maxAlpha
	}
	if eps >= 1 {
		return maxAlpha
	}
	c := 0.5 * math.Log((1-eps)/eps)
	if c < 0 {
		c = -c
	}
	if c > maxAlpha {
		return maxAlpha
	}
	return c
}

// SelectStump scans every atom in idx and returns the one with the
// largest edge |W+ - W-|, breaking ties lexicographically on the atom's
// canonical string form (spec §5: deterministic, cross-platform
// reproducible tie-breaking). Returns ok=false if idx is empty.
func SelectStump(idx *Index, labels []int8, weights []float64) (Candidate, bool) {
	var totalPos, totalNeg float64
	for i, y := range labels {
		if y > 0 {
			totalPos += weights[i]
		} else {
			totalNeg += weights[i]
		}
	}

	var best Candidate
	bestSet := false

	// idx.Atoms() is already sorted lexicographically, so scanning in
	// order and only replacing on a strictly greater edge keeps the
	// lexicographically-smallest atom among ties.
	for _, atom := range idx.Atoms() {
		var wPos, wNeg float64
		for _, i := range idx.Instances(atom) {
			if labels[i] > 0 {
				wPos += weights[i]
			} else {
				wNeg += weights[i]
			}
		}

		sign := int8(1)
		if wNeg > wPos {
			sign = -1
		}
		edge := wPos - wNeg
		if edge < 0 {
			edge = -edge
		}

		var totalForSign float64
		if sign > 0 {
			totalForSign = totalPos
		} else {
			totalForSign = totalNeg
		}
		eps := totalForSign - edge
		if eps < 0 {
			eps = 0
		}

		if !bestSet || edge > best.Edge {
			best = Candidate{
				Atom:       atom,
				Sign:       sign,
				Edge:       edge,
				Epsilon:    eps,
				Confidence: clampConfidence(eps),
			}
			bestSet = true
		}
	}
	return best, bestSet
}
