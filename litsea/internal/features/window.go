// Package features builds the fixed feature-atom schema around a single
// candidate boundary. It is shared, byte-for-byte, between training and
// inference — that sharing is what makes the determinism invariant in
// spec.md §8 structural rather than incidental.
package features

// Sentinel is emitted for window positions that fall outside the sentence.
const Sentinel = '_'

// Window holds the six characters of context around a candidate boundary:
// c[-3], c[-2], c[-1], c[0], c[+1], c[+2]. Position p sits between c[-1]
// and c[0].
type Window [6]rune

// NewWindow extracts the window around boundary candidate p in sentence
// (a boundary sits between sentence[p-1] and sentence[p]). Positions
// outside [0, len(sentence)) are filled with Sentinel.
func NewWindow(sentence []rune, p int) Window {
	var w Window
	for i, offset := range [6]int{-3, -2, -1, 0, 1, 2} {
		idx := p + offset
		if idx >= 0 && idx < len(sentence) {
			w[i] = sentence[idx]
		} else {
			w[i] = Sentinel
		}
	}
	return w
}

// Candidates returns every boundary candidate position for a sentence of
// the given length: 1..N-1 inclusive. A sentence of fewer than two
// characters has none.
func Candidates(n int) []int {
	if n < 2 {
		return nil
	}
	out := make([]int, 0, n-1)
	for p := 1; p < n; p++ {
		out = append(out, p)
	}
	return out
}
