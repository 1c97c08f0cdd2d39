// Package litsea implements the core feature extraction, boosting and
// segmentation engine for the litsea word segmenter.
// This file contains all constants used throughout the implementation.
package litsea

// Boosting defaults (spec §4.2).
const (
	defaultMinGain = 0.001 // Stop when the best stump's edge falls at or below this.
	defaultMaxIter = 10000 // Hard cap on boosting iterations.
)

// Segmentation defaults.
const (
	defaultCacheSize = 0 // 0 means unlimited caching of rendered lines.
)
