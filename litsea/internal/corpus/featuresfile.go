package corpus

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/syobocat/litsea/litsea/internal/features"
)

// WriteFeatures writes instances to w in the features-file text format:
// one instance per line, "<label>\t<atom1>\t<atom2>\t...", label as
// "+1"/"-1" (spec §6).
func WriteFeatures(w io.Writer, instances []features.Instance) error {
	bw := bufio.NewWriter(w)
	for _, inst := range instances {
		if _, err := bw.WriteString(labelString(inst.Label)); err != nil {
			return err
		}
		for _, a := range inst.Atoms {
			if _, err := bw.WriteString("\t" + a.String()); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadFeatures reads instances previously written by WriteFeatures.
func ReadFeatures(r io.Reader) ([]features.Instance, error) {
	var out []features.Instance
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		label, err := parseLabel(fields[0])
		if err != nil {
			return nil, fmt.Errorf("features file line %d: %w", lineNo, err)
		}
		atoms := make([]features.Atom, 0, len(fields)-1)
		for _, f := range fields[1:] {
			fam, val, ok := strings.Cut(f, ":")
			if !ok {
				return nil, fmt.Errorf("features file line %d: malformed atom %q", lineNo, f)
			}
			atoms = append(atoms, features.Atom{Family: features.Family(fam), Value: val})
		}
		out = append(out, features.Instance{Label: label, Atoms: atoms})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func labelString(label int8) string {
	if label >= 0 {
		return "+1"
	}
	return "-1"
}

func parseLabel(s string) (int8, error) {
	switch s {
	case "+1":
		return features.LabelBoundary, nil
	case "-1":
		return features.LabelNoBoundary, nil
	default:
		return 0, fmt.Errorf("invalid label %q", s)
	}
}
