package litsea

import (
	"bytes"
	"testing"
)

func TestModelRoundTrip(t *testing.T) {
	stumps := []Stump{
		{AtomString: "UW3:あ", Alpha: 1.25},
		{AtomString: "BC2:HK", Alpha: -0.5},
		{AtomString: "TC1:CCC", Alpha: 10},
	}
	model := NewModel(stumps)

	var buf bytes.Buffer
	if err := model.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadModel(&buf)
	if err != nil {
		t.Fatalf("LoadModel: %v", err)
	}

	got := loaded.Stumps()
	if len(got) != len(stumps) {
		t.Fatalf("len(stumps) = %d, want %d", len(got), len(stumps))
	}
	for i, want := range stumps {
		if got[i].AtomString != want.AtomString || got[i].Alpha != want.Alpha {
			t.Errorf("stump %d = %+v, want %+v", i, got[i], want)
		}
	}
}

func TestModelRoundTripEmpty(t *testing.T) {
	model := NewModel(nil)
	var buf bytes.Buffer
	if err := model.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := LoadModel(&buf)
	if err != nil {
		t.Fatalf("LoadModel: %v", err)
	}
	if loaded.Len() != 0 {
		t.Errorf("Len() = %d, want 0", loaded.Len())
	}
}

func TestLoadModelBadFormat(t *testing.T) {
	corrupt := bytes.NewReader([]byte("not a litsea model at all"))
	if _, err := LoadModel(corrupt); err == nil {
		t.Fatal("expected error loading corrupt model, got nil")
	}
}

func TestLoadModelTruncated(t *testing.T) {
	var buf bytes.Buffer
	model := NewModel([]Stump{{AtomString: "UW1:a", Alpha: 1}})
	if err := model.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}
	truncated := buf.Bytes()[:buf.Len()-2]
	if _, err := LoadModel(bytes.NewReader(truncated)); err == nil {
		t.Fatal("expected error loading truncated model, got nil")
	}
}

func TestEmptyEnsembleScoresNoBoundary(t *testing.T) {
	model := NewModel(nil)
	seg := NewSegmenter(model)
	sentence := []rune("あいうえお")
	for i, b := range seg.Score(sentence) {
		if b {
			t.Errorf("position %d: predicted boundary with empty ensemble", i)
		}
	}
	if got, want := seg.SegmentLine("あいうえお"), "あいうえお"; got != want {
		t.Errorf("SegmentLine = %q, want %q", got, want)
	}
}
