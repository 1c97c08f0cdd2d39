package litsea

import (
	"strings"
	"testing"
)

func TestSegmentLineBoundaryScenarios(t *testing.T) {
	model := NewModel([]Stump{
		{AtomString: "UC3:HUC4:O", Alpha: 0}, // unused placeholder atom, never matches
	})
	seg := NewSegmenter(model)

	if got := seg.SegmentLine(""); got != "" {
		t.Errorf("empty line: got %q, want %q", got, "")
	}
	if got := seg.SegmentLine("あ"); got != "あ" {
		t.Errorf("single character: got %q, want %q", got, "あ")
	}
}

func TestSegmentLineWithTrainedModel(t *testing.T) {
	// Mirrors spec.md §8 boundary scenario 4: this exact one-sentence
	// corpus, trained with the default hyperparameters (-t 0.001 -i
	// 10000), is reported to reach 100% training accuracy.
	b, err := NewBooster()
	if err != nil {
		t.Fatalf("NewBooster: %v", err)
	}
	corpus := "Litsea は TinySegmenter を 参考 に 開発 さ れ た 、 Rust で 実装 さ れ た 極めて コンパクト な 単語 分割 ソフトウェア です 。"
	instances, err := ExtractCorpus(strings.NewReader(corpus))
	if err != nil {
		t.Fatalf("ExtractCorpus: %v", err)
	}
	model, metrics, err := b.Train(instances)
	if err != nil {
		t.Fatalf("Train: %v", err)
	}
	if metrics.Accuracy() != 1.0 {
		t.Fatalf("training accuracy = %v, want 1.0 (acc=%v prec=%v rec=%v)",
			metrics.Accuracy(), metrics.Accuracy(), metrics.Precision(), metrics.Recall())
	}

	seg := NewSegmenter(model)
	unsegmented := strings.ReplaceAll(corpus, " ", "")
	got := seg.SegmentLine(unsegmented)
	if got != corpus {
		t.Errorf("SegmentLine = %q, want %q", got, corpus)
	}
}

func TestSegmentLineCaching(t *testing.T) {
	seg := NewSegmenter(NewModel(nil), WithCacheSize(1))
	first := seg.SegmentLine("あいう")
	second := seg.SegmentLine("あいう")
	if first != second {
		t.Errorf("cached result differs: %q vs %q", first, second)
	}
}

func TestLineScanner(t *testing.T) {
	seg := NewSegmenter(NewModel(nil))
	r := strings.NewReader("あいう\nえお\n")
	scanner := seg.NewScanner(r)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scanner error: %v", err)
	}
	want := []string{"あいう", "えお"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}
