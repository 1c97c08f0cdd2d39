package litsea

// Stump is a decision rule testing presence of a single feature atom and
// voting with a signed confidence (spec §3 "Decision stump"). Sign(Alpha)
// indicates the class voted for when AtomString is present in an
// instance; |Alpha| is the confidence derived from boosting.
//
// Stumps are plain data, not a classifier hierarchy — scoring sums
// Alpha values by exact atom-string lookup, which is what lets the
// ensemble stay a flat, serializable list instead of a tree of
// dynamically dispatched classifier objects (spec §9).
type Stump struct {
	AtomString string
	Alpha      float64
}
