package litsea

import (
	"bufio"
	"io"

	"github.com/syobocat/litsea/litsea/internal/corpus"
	"github.com/syobocat/litsea/litsea/internal/features"
)

// Family names the feature template an atom was derived from: UW1..UW6,
// BW1..BW3, TW1..TW4, UC1..UC6, BC1..BC3, TC1..TC4 (spec §4.1).
type Family = features.Family

// Atom is a single categorical feature: a family and the concrete value
// observed at that position (spec §3 "Feature instance").
type Atom = features.Atom

// Instance is the tuple (label, atoms) associated with one boundary
// candidate (spec §3).
type Instance = features.Instance

// Label values: LabelBoundary means a word boundary sits at this
// candidate; LabelNoBoundary means it does not.
const (
	LabelBoundary   = features.LabelBoundary
	LabelNoBoundary = features.LabelNoBoundary
)

// Extract builds one labeled Instance per candidate boundary (positions
// 1..N-1) in sentence, using boundaries to assign labels. Empty or
// single-character sentences yield zero instances, per spec §4.1 — this
// is not an error.
func Extract(sentence []rune, boundaries map[int]bool) []Instance {
	return features.Extract(sentence, boundaries)
}

// ExtractUnlabeled builds one unlabeled Instance per candidate boundary,
// for use at inference time. It shares its atom-construction code with
// Extract, so the two are guaranteed to emit byte-identical atoms for
// the same sentence (spec §8's determinism invariant).
func ExtractUnlabeled(sentence []rune) []Instance {
	return features.ExtractUnlabeled(sentence)
}

// ExtractCorpus reads a whitespace-segmented corpus (spec §6: one
// sentence per line, words separated by runs of ASCII spaces, empty
// lines skipped) and returns the labeled instances for every line.
func ExtractCorpus(r io.Reader) ([]Instance, error) {
	var out []Instance
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		sentence, boundaries, err := corpus.ParseLine(scanner.Text())
		if err != nil {
			return nil, NewConfigError("corpus_line", scanner.Text(), ErrInvalidInput)
		}
		if sentence == nil {
			continue // blank line
		}
		out = append(out, Extract(sentence, boundaries)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// WriteFeatures writes instances to w in the features-file text format
// (spec §6): one instance per line, "<label>\t<atom1>\t<atom2>\t...".
func WriteFeatures(w io.Writer, instances []Instance) error {
	return corpus.WriteFeatures(w, instances)
}

// ReadFeatures reads instances previously written by WriteFeatures.
func ReadFeatures(r io.Reader) ([]Instance, error) {
	return corpus.ReadFeatures(r)
}
