package litsea

import (
	"reflect"
	"testing"
)

func TestExtractAtomCountAndOrder(t *testing.T) {
	sentence := []rune("あい")
	instances := Extract(sentence, map[int]bool{1: true})
	if len(instances) != 1 {
		t.Fatalf("len(instances) = %d, want 1", len(instances))
	}
	inst := instances[0]
	if len(inst.Atoms) != 26 {
		t.Fatalf("len(atoms) = %d, want 26", len(inst.Atoms))
	}
	wantFamilies := []Family{
		"UW1", "UW2", "UW3", "UW4", "UW5", "UW6",
		"BW1", "BW2", "BW3",
		"TW1", "TW2", "TW3", "TW4",
		"UC1", "UC2", "UC3", "UC4", "UC5", "UC6",
		"BC1", "BC2", "BC3",
		"TC1", "TC2", "TC3", "TC4",
	}
	gotFamilies := make([]Family, len(inst.Atoms))
	for i, a := range inst.Atoms {
		gotFamilies[i] = a.Family
	}
	if !reflect.DeepEqual(gotFamilies, wantFamilies) {
		t.Errorf("family order = %v, want %v", gotFamilies, wantFamilies)
	}
	if inst.Label != LabelBoundary {
		t.Errorf("label = %d, want %d", inst.Label, LabelBoundary)
	}
}

func TestExtractDeterminism(t *testing.T) {
	sentence := []rune("LitseaはTinySegmenterを参考に開発された。")
	labeled := Extract(sentence, map[int]bool{})
	unlabeled := ExtractUnlabeled(sentence)

	if len(labeled) != len(unlabeled) {
		t.Fatalf("instance count differs: labeled=%d unlabeled=%d", len(labeled), len(unlabeled))
	}
	for i := range labeled {
		la := atomStrings(labeled[i].Atoms)
		ua := atomStrings(unlabeled[i].Atoms)
		if !reflect.DeepEqual(la, ua) {
			t.Fatalf("position %d: atoms differ\nlabeled:   %v\nunlabeled: %v", i, la, ua)
		}
	}
}

func TestExtractBoundaryScenarios(t *testing.T) {
	if got := Extract(nil, nil); len(got) != 0 {
		t.Errorf("empty sentence: len = %d, want 0", len(got))
	}
	if got := Extract([]rune("あ"), nil); len(got) != 0 {
		t.Errorf("single-character sentence: len = %d, want 0", len(got))
	}
}

func TestSentinelWindow(t *testing.T) {
	sentence := []rune("ab")
	instances := Extract(sentence, nil)
	if len(instances) != 1 {
		t.Fatalf("len(instances) = %d, want 1", len(instances))
	}
	byFamily := make(map[Family]string)
	for _, a := range instances[0].Atoms {
		byFamily[a.Family] = a.Value
	}
	// Window around position 1 of "ab": c[-3..-1] = _,_,a c[0..+1] = b,_
	if byFamily["UW1"] != "_" || byFamily["UW2"] != "_" || byFamily["UW3"] != "a" {
		t.Errorf("left sentinel padding wrong: %+v", byFamily)
	}
	if byFamily["UW4"] != "b" || byFamily["UW5"] != "_" || byFamily["UW6"] != "_" {
		t.Errorf("right sentinel padding wrong: %+v", byFamily)
	}
	if byFamily["UC1"] != "U" || byFamily["UC5"] != "U" {
		t.Errorf("sentinel class wrong: %+v", byFamily)
	}
}

func atomStrings(atoms []Atom) []string {
	out := make([]string, len(atoms))
	for i, a := range atoms {
		out[i] = a.String()
	}
	return out
}
