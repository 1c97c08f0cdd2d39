package boost

import "math"

// UpdateWeights applies the AdaBoost multiplicative update for one chosen
// stump and renormalizes so the weights sum to 1 (spec §4.2 "Weight
// update"). present lists the instance indices containing the stump's
// atom; every other instance is treated as voting the opposite of sign
// (spec §4.2/§9's resolved convention for "atom absent" — the same flip
// SelectStump's epsilon formula already assumes, so the reported edge
// and the actual reweighting agree).
//
// scratch must be a []bool the same length as weights, used to test
// membership in present without allocating a set each call; its
// entries are restored to false before UpdateWeights returns.
func UpdateWeights(weights []float64, labels []int8, present []int, sign int8, confidence float64, scratch []bool) {
	for _, i := range present {
		scratch[i] = true
	}

	var total float64
	for i := range weights {
		h := -sign
		if scratch[i] {
			h = sign
		}
		weights[i] *= math.Exp(-confidence * float64(labels[i]) * float64(h))
		total += weights[i]
	}

	for _, i := range present {
		scratch[i] = false
	}

	if total == 0 {
		return
	}
	for i := range weights {
		weights[i] /= total
	}
}
