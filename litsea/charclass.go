package litsea

import "github.com/syobocat/litsea/litsea/internal/features"

// CharClass is the closed, version-stable character classification used by
// the feature engine (spec §3): Hiragana, Katakana, Han, Latin/ASCII,
// Digit, Other, and the Sentinel used before sentence start / after
// sentence end. Any change to the classification is a breaking
// model-format change.
type CharClass = features.CharClass

// The seven character classes, re-exported from internal/features so
// callers never need to import the internal package directly.
const (
	ClassHiragana = features.ClassHiragana
	ClassKatakana = features.ClassKatakana
	ClassHan      = features.ClassHan
	ClassLatin    = features.ClassLatin
	ClassDigit    = features.ClassDigit
	ClassOther    = features.ClassOther
	ClassSentinel = features.ClassSentinel
)

// ClassifyRune maps a single Unicode scalar value to its character class.
func ClassifyRune(r rune) CharClass { return features.Classify(r) }
