package features

// Family names the feature template an atom was derived from (spec §4.1).
// Families are mutually exclusive by construction: each emits exactly one
// atom per candidate, so an Instance contains at most one atom per family.
type Family string

// The fixed 26-family schema, in the order atoms are always emitted.
// This order, and the set of families, is part of the determinism
// invariant in spec.md §8 — reordering or adding a family is a breaking
// change to every model trained against the old schema.
const (
	FamilyUW1 Family = "UW1" // c[-3]
	FamilyUW2 Family = "UW2" // c[-2]
	FamilyUW3 Family = "UW3" // c[-1]
	FamilyUW4 Family = "UW4" // c[0]
	FamilyUW5 Family = "UW5" // c[+1]
	FamilyUW6 Family = "UW6" // c[+2]

	FamilyBW1 Family = "BW1" // c[-2]c[-1]
	FamilyBW2 Family = "BW2" // c[-1]c[0]
	FamilyBW3 Family = "BW3" // c[0]c[+1]

	FamilyTW1 Family = "TW1" // c[-3]c[-2]c[-1]
	FamilyTW2 Family = "TW2" // c[-2]c[-1]c[0]
	FamilyTW3 Family = "TW3" // c[-1]c[0]c[+1]
	FamilyTW4 Family = "TW4" // c[0]c[+1]c[+2]

	FamilyUC1 Family = "UC1"
	FamilyUC2 Family = "UC2"
	FamilyUC3 Family = "UC3"
	FamilyUC4 Family = "UC4"
	FamilyUC5 Family = "UC5"
	FamilyUC6 Family = "UC6"

	FamilyBC1 Family = "BC1"
	FamilyBC2 Family = "BC2"
	FamilyBC3 Family = "BC3"

	FamilyTC1 Family = "TC1"
	FamilyTC2 Family = "TC2"
	FamilyTC3 Family = "TC3"
	FamilyTC4 Family = "TC4"
)

// Atom is a single categorical feature: a family and the concrete value
// observed at that position. The pair is the logical identity; String
// renders the conventional FAMILY:VALUE encoding (spec §4.1).
type Atom struct {
	Family Family
	Value  string
}

// String renders the atom in its canonical FAMILY:VALUE form.
func (a Atom) String() string {
	return string(a.Family) + ":" + a.Value
}

// Atoms builds the fixed 26-atom schema for a window, in family order.
func Atoms(w Window) []Atom {
	cls := [6]CharClass{
		Classify(w[0]), Classify(w[1]), Classify(w[2]),
		Classify(w[3]), Classify(w[4]), Classify(w[5]),
	}

	out := make([]Atom, 0, 26)

	// Unigram characters: UW1..UW6.
	unigramFamilies := [6]Family{FamilyUW1, FamilyUW2, FamilyUW3, FamilyUW4, FamilyUW5, FamilyUW6}
	for i, f := range unigramFamilies {
		out = append(out, Atom{Family: f, Value: string(w[i])})
	}

	// Bigram characters: BW1..BW3.
	out = append(out,
		Atom{Family: FamilyBW1, Value: string([]rune{w[1], w[2]})}, // c[-2]c[-1]
		Atom{Family: FamilyBW2, Value: string([]rune{w[2], w[3]})}, // c[-1]c[0]
		Atom{Family: FamilyBW3, Value: string([]rune{w[3], w[4]})}, // c[0]c[+1]
	)

	// Trigram characters: TW1..TW4.
	out = append(out,
		Atom{Family: FamilyTW1, Value: string([]rune{w[0], w[1], w[2]})}, // c[-3]c[-2]c[-1]
		Atom{Family: FamilyTW2, Value: string([]rune{w[1], w[2], w[3]})}, // c[-2]c[-1]c[0]
		Atom{Family: FamilyTW3, Value: string([]rune{w[2], w[3], w[4]})}, // c[-1]c[0]c[+1]
		Atom{Family: FamilyTW4, Value: string([]rune{w[3], w[4], w[5]})}, // c[0]c[+1]c[+2]
	)

	// Unigram character classes: UC1..UC6.
	unigramClassFamilies := [6]Family{FamilyUC1, FamilyUC2, FamilyUC3, FamilyUC4, FamilyUC5, FamilyUC6}
	for i, f := range unigramClassFamilies {
		out = append(out, Atom{Family: f, Value: cls[i].String()})
	}

	// Bigram character classes: BC1..BC3.
	out = append(out,
		Atom{Family: FamilyBC1, Value: cls[1].String() + cls[2].String()},
		Atom{Family: FamilyBC2, Value: cls[2].String() + cls[3].String()},
		Atom{Family: FamilyBC3, Value: cls[3].String() + cls[4].String()},
	)

	// Trigram character classes: TC1..TC4.
	out = append(out,
		Atom{Family: FamilyTC1, Value: cls[0].String() + cls[1].String() + cls[2].String()},
		Atom{Family: FamilyTC2, Value: cls[1].String() + cls[2].String() + cls[3].String()},
		Atom{Family: FamilyTC3, Value: cls[2].String() + cls[3].String() + cls[4].String()},
		Atom{Family: FamilyTC4, Value: cls[3].String() + cls[4].String() + cls[5].String()},
	)

	return out
}
