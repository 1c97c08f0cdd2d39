package litsea

import (
	"bufio"
	"io"
	"strings"
)

// Segmenter scores a sentence against a loaded Model and renders the
// segmented output (spec §4.3). A Segmenter is safe for concurrent use:
// its Model is immutable once loaded, and its line cache is internally
// synchronized (spec §5).
type Segmenter struct {
	model *Model
	cache *lineCache
}

// NewSegmenter builds a Segmenter over model. A nil model behaves as the
// empty ensemble: every position predicts "no boundary" (spec §8
// scenario 6).
func NewSegmenter(model *Model, opts ...SegmenterOption) *Segmenter {
	cfg := defaultSegmenterConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Segmenter{model: model, cache: newLineCache(cfg.cacheSize)}
}

// Score returns, for a sentence of N characters, a slice of length N-1
// where index i (0-based) reports whether a boundary is predicted
// between sentence[i] and sentence[i+1]. Sentences of fewer than two
// characters yield an empty slice (spec §4.1/§8 scenarios 1-2).
func (s *Segmenter) Score(sentence []rune) []bool {
	instances := ExtractUnlabeled(sentence)
	out := make([]bool, len(instances))
	for i, inst := range instances {
		var score float64
		for _, a := range inst.Atoms {
			if alpha, ok := s.model.Alpha(a.String()); ok {
				score += alpha
			}
		}
		// Threshold is exactly zero; ties (score == 0) predict no
		// boundary (spec §4.3).
		out[i] = score > 0
	}
	return out
}

// SegmentLine segments a single line of input, returning it as the
// original characters joined by a single ASCII space at every predicted
// boundary (spec §4.3 "Rendering"). Results are cached per exact input
// line (see cache.go); identical lines in a batch are scored once.
func (s *Segmenter) SegmentLine(line string) string {
	if cached, ok := s.cache.get(line); ok {
		return cached
	}

	sentence := []rune(line)
	boundaries := s.Score(sentence)

	var b strings.Builder
	b.Grow(len(line) + len(boundaries))
	for i, c := range sentence {
		if i > 0 && boundaries[i-1] {
			b.WriteByte(' ')
		}
		b.WriteRune(c)
	}
	out := b.String()
	s.cache.put(line, out)
	return out
}

// LineScanner streams SegmentLine over an io.Reader, one input line per
// output line, following the same bufio.Scanner-style pattern as
// llama3.Tokenizer.NewScanner.
type LineScanner struct {
	seg     *Segmenter
	scanner *bufio.Scanner
	current string
	err     error
}

// NewScanner creates a LineScanner reading sentences from r.
func (s *Segmenter) NewScanner(r io.Reader) *LineScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	return &LineScanner{seg: s, scanner: sc}
}

// Scan advances to the next segmented line. Returns false at EOF or on
// error; call Err to distinguish the two.
func (ls *LineScanner) Scan() bool {
	if !ls.scanner.Scan() {
		ls.err = ls.scanner.Err()
		return false
	}
	ls.current = ls.seg.SegmentLine(ls.scanner.Text())
	return true
}

// Text returns the most recently produced segmented line.
func (ls *LineScanner) Text() string { return ls.current }

// Err returns the first error encountered while scanning, if any.
func (ls *LineScanner) Err() error { return ls.err }
