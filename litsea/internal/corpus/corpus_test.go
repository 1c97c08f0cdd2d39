package corpus

import (
	"reflect"
	"testing"
)

func TestParseLine(t *testing.T) {
	sentence, boundaries, err := ParseLine("Litsea は 単語")
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	want := []rune("Litseaは単語")
	if !reflect.DeepEqual(sentence, want) {
		t.Errorf("sentence = %q, want %q", string(sentence), string(want))
	}
	wantBoundaries := map[int]bool{6: true, 7: true}
	if !reflect.DeepEqual(boundaries, wantBoundaries) {
		t.Errorf("boundaries = %v, want %v", boundaries, wantBoundaries)
	}
}

func TestParseLineEmpty(t *testing.T) {
	sentence, boundaries, err := ParseLine("   ")
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	if sentence != nil || boundaries != nil {
		t.Errorf("expected nil sentence/boundaries for blank line, got %v %v", sentence, boundaries)
	}
}

func TestParseLineCollapsesRuns(t *testing.T) {
	_, boundaries, err := ParseLine("a   b")
	if err != nil {
		t.Fatalf("ParseLine: %v", err)
	}
	if !boundaries[1] {
		t.Errorf("expected boundary at position 1, got %v", boundaries)
	}
}
