// Package litsea implements a compact word segmenter for Japanese and
// other scripts where whitespace is not a reliable word boundary.
//
// Given a raw sentence, litsea predicts the set of inter-character
// positions at which a word boundary should be inserted, and renders the
// original characters with single-space separators. Unlike
// dictionary-driven morphological analyzers, it relies solely on a small
// pre-trained binary classifier over local character context — there is
// no dictionary, no part-of-speech tagging, no lemmatization.
//
// # Overview
//
// Segmentation is driven by three cooperating pieces:
//
//  1. Feature extraction: a fixed schema of local character-context
//     features ("atoms") is derived around every candidate boundary,
//     identical whether the sentence is being used for training or for
//     inference.
//  2. An AdaBoost ensemble of decision stumps, each testing presence of
//     a single feature atom and voting with a learned confidence.
//  3. A compact serialized model and a scoring routine that sums the
//     votes of every stump whose atom is present, predicting a boundary
//     wherever the sum is strictly positive.
//
// # Architecture
//
//	┌──────────────┐
//	│   Sentence   │
//	└──────┬───────┘
//	       │
//	       ▼
//	┌──────────────────┐     ┌───────────────────┐
//	│ Feature Engine    │────▶│ Atom instances     │
//	│ (window + atoms)  │     │ per candidate      │
//	└──────────────────┘     └─────────┬──────────┘
//	                                   │
//	                                   ▼
//	                         ┌────────────────────┐
//	                         │ Ensemble scoring    │
//	                         │ (Σ alpha per atom)  │
//	                         └─────────┬──────────┘
//	                                   │
//	                                   ▼
//	                         ┌────────────────────┐
//	                         │ Segmented output   │
//	                         └────────────────────┘
//
// # Basic usage
//
//	model, err := litsea.LoadModelFile("RWCP.model")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	seg := litsea.NewSegmenter(model)
//	fmt.Println(seg.SegmentLine("LitseaはTinySegmenterを参考に開発された。"))
//
// Training a new model from a whitespace-segmented corpus:
//
//	instances, err := litsea.ExtractCorpus(corpusReader)
//	booster, err := litsea.NewBooster(litsea.WithMinGain(0.001), litsea.WithMaxIter(10000))
//	model, metrics, err := booster.Train(instances)
package litsea
