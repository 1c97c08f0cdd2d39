package features

// Label values (spec §3): +1 means a boundary sits at this candidate,
// -1 means no boundary.
const (
	LabelBoundary   int8 = 1
	LabelNoBoundary int8 = -1
)

// Instance is the tuple (label, atoms) associated with one boundary
// candidate. Label is 0 for unlabeled (inference-time) instances.
type Instance struct {
	Position int8 // not set by Extract or ExtractUnlabeled; not part of the schema
	Label    int8
	Atoms    []Atom
}

// Extract builds one Instance per candidate boundary in sentence, with
// labels drawn from boundaries (boundaries[p] == true means a word break
// sits between sentence[p-1] and sentence[p]).
func Extract(sentence []rune, boundaries map[int]bool) []Instance {
	cands := Candidates(len(sentence))
	out := make([]Instance, 0, len(cands))
	for _, p := range cands {
		label := LabelNoBoundary
		if boundaries[p] {
			label = LabelBoundary
		}
		out = append(out, Instance{
			Label: label,
			Atoms: Atoms(NewWindow(sentence, p)),
		})
	}
	return out
}

// ExtractUnlabeled builds one unlabeled Instance per candidate boundary,
// for use at inference time. It is guaranteed to emit byte-identical
// atoms, in the same order, as Extract would for the same sentence and
// position — this identity is the determinism invariant of spec.md §8.
func ExtractUnlabeled(sentence []rune) []Instance {
	cands := Candidates(len(sentence))
	out := make([]Instance, 0, len(cands))
	for _, p := range cands {
		out = append(out, Instance{
			Atoms: Atoms(NewWindow(sentence, p)),
		})
	}
	return out
}
