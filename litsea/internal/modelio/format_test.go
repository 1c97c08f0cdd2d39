package modelio

import (
	"bytes"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	records := []Record{
		{AtomString: "UW3:日", Alpha: 3.5},
		{AtomString: "BC2:CH", Alpha: -2.25},
	}
	var buf bytes.Buffer
	if err := Encode(&buf, records); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(got) != len(records) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(records))
	}
	for i, want := range records {
		if got[i] != want {
			t.Errorf("record %d = %+v, want %+v", i, got[i], want)
		}
	}
}

func TestDecodeBadMagic(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("XXXX\x01\x00\x00\x00\x00")))
	if err == nil {
		t.Fatal("expected error for bad magic")
	}
}

func TestDecodeBadVersion(t *testing.T) {
	buf := append([]byte{}, Magic[:]...)
	buf = append(buf, 0xFF, 0, 0, 0, 0)
	_, err := Decode(bytes.NewReader(buf))
	if err == nil {
		t.Fatal("expected error for bad version")
	}
}
