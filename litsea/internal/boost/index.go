// Package boost implements the arithmetic core of discrete (SAMME-style)
// AdaBoost over categorical atoms: the inverted index, per-atom edge
// computation, and the weight update. It holds no policy (termination,
// warm start) — that lives in the litsea.Booster wrapper — only the hot
// loop spec.md §9 calls out as dominating training cost.
package boost

import (
	"sort"

	"github.com/syobocat/litsea/litsea/internal/features"
)

// Index maps an atom's canonical string form to the indices of every
// instance containing it. It is built once per training run and never
// reconstructed mid-run (spec §9).
type Index struct {
	byAtom map[string][]int
	// atomValue holds the parsed (family, value) pair for each key, so
	// callers can report the atom without re-parsing the string.
	atomValue map[string]features.Atom
}

// BuildIndex constructs the inverted index over a set of instances.
func BuildIndex(instances []features.Instance) *Index {
	idx := &Index{
		byAtom:    make(map[string][]int),
		atomValue: make(map[string]features.Atom),
	}
	for i, inst := range instances {
		for _, a := range inst.Atoms {
			key := a.String()
			idx.byAtom[key] = append(idx.byAtom[key], i)
			if _, ok := idx.atomValue[key]; !ok {
				idx.atomValue[key] = a
			}
		}
	}
	return idx
}

// Atoms returns every distinct atom in the index, in lexicographic order
// by its canonical string form — the tie-breaking order spec §5
// prescribes for deterministic, cross-platform-reproducible training.
func (idx *Index) Atoms() []features.Atom {
	keys := make([]string, 0, len(idx.byAtom))
	for k := range idx.byAtom {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]features.Atom, len(keys))
	for i, k := range keys {
		out[i] = idx.atomValue[k]
	}
	return out
}

// Instances returns the instance indices containing the given atom.
func (idx *Index) Instances(a features.Atom) []int {
	return idx.byAtom[a.String()]
}

// Len reports the number of distinct atoms in the index.
func (idx *Index) Len() int { return len(idx.byAtom) }
