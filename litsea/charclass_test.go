package litsea

import "testing"

func TestClassifyRune(t *testing.T) {
	cases := []struct {
		name string
		r    rune
		want CharClass
	}{
		{"hiragana", 'あ', ClassHiragana},
		{"katakana", 'ア', ClassKatakana},
		{"halfwidth katakana", 'ｱ', ClassKatakana},
		{"han", '漢', ClassHan},
		{"latin", 'L', ClassLatin},
		{"digit", '3', ClassDigit},
		{"fullwidth digit", '３', ClassDigit},
		{"punctuation", '、', ClassOther},
		{"ascii punctuation", '!', ClassOther},
		{"sentinel", '_', ClassSentinel},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyRune(tc.r); got != tc.want {
				t.Errorf("ClassifyRune(%q) = %v, want %v", tc.r, got, tc.want)
			}
		})
	}
}
