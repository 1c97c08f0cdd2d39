package litsea

import (
	"bytes"
	"io"
	"os"

	"github.com/syobocat/litsea/litsea/internal/modelio"
)

// Model is an ordered ensemble of stumps (spec §3 "Ensemble"). Order is
// informational only for scoring — which sums contributions regardless
// of order — but is preserved on serialize/deserialize so a round-tripped
// model is byte-identical to the original (spec §8).
//
// An empty Model predicts "no boundary" everywhere.
type Model struct {
	stumps []Stump
	lookup map[string]float64
}

// NewModel builds a Model from an ordered slice of stumps. If the same
// atom appears more than once (only possible when hand-constructing a
// Model outside the Booster), the last occurrence wins for scoring
// purposes while the full ordered list is kept for serialization.
func NewModel(stumps []Stump) *Model {
	lookup := make(map[string]float64, len(stumps))
	for _, s := range stumps {
		lookup[s.AtomString] = s.Alpha
	}
	return &Model{stumps: append([]Stump(nil), stumps...), lookup: lookup}
}

// Stumps returns the ensemble's stumps in their original order.
func (m *Model) Stumps() []Stump {
	if m == nil {
		return nil
	}
	return m.stumps
}

// Len reports the number of stumps in the ensemble.
func (m *Model) Len() int {
	if m == nil {
		return 0
	}
	return len(m.stumps)
}

// Alpha returns the stored weight for atomString and whether it is present.
func (m *Model) Alpha(atomString string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	a, ok := m.lookup[atomString]
	return a, ok
}

// Save serializes the model to w in the litsea binary format.
func (m *Model) Save(w io.Writer) error {
	return modelio.Encode(w, toRecords(m.Stumps()))
}

// SaveFile serializes the model to the file at path.
func (m *Model) SaveFile(path string) error {
	var buf bytes.Buffer
	if err := m.Save(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return NewModelLoadError("write", path, err)
	}
	return nil
}

// LoadModel deserializes a model previously written by Model.Save.
// Returns ErrBadFormat (wrapped with the failing field) if the magic,
// version, or any record fails to parse.
func LoadModel(r io.Reader) (*Model, error) {
	records, err := modelio.Decode(r)
	if err != nil {
		return nil, wrapDecodeError(err)
	}
	return NewModel(fromRecords(records)), nil
}

// LoadModelFile opens and deserializes the model file at path.
func LoadModelFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewModelLoadError("open", path, err)
	}
	defer f.Close()
	return LoadModel(f)
}

// LoadEmbeddedJEITA loads the JEITA_Genpaku_ChaSen_IPAdic.model shipped
// with litsea. It requires the binary to have been built with
// `-tags embed`; otherwise it returns an error directing the caller to
// LoadModelFile.
func LoadEmbeddedJEITA() (*Model, error) {
	data, ok := modelio.EmbeddedJEITA()
	if !ok {
		return nil, NewModelLoadError("embedded", "JEITA_Genpaku_ChaSen_IPAdic.model", errNotEmbedded)
	}
	return LoadModel(bytes.NewReader(data))
}

// LoadEmbeddedRWCP loads the RWCP.model shipped with litsea. Requires
// the `embed` build tag; see LoadEmbeddedJEITA.
func LoadEmbeddedRWCP() (*Model, error) {
	data, ok := modelio.EmbeddedRWCP()
	if !ok {
		return nil, NewModelLoadError("embedded", "RWCP.model", errNotEmbedded)
	}
	return LoadModel(bytes.NewReader(data))
}

var errNotEmbedded = simpleErr("model not embedded; rebuild with -tags embed or use LoadModelFile")

type simpleErr string

func (e simpleErr) Error() string { return string(e) }

func toRecords(stumps []Stump) []modelio.Record {
	out := make([]modelio.Record, len(stumps))
	for i, s := range stumps {
		out[i] = modelio.Record{AtomString: s.AtomString, Alpha: s.Alpha}
	}
	return out
}

func fromRecords(records []modelio.Record) []Stump {
	out := make([]Stump, len(records))
	for i, r := range records {
		out[i] = Stump{AtomString: r.AtomString, Alpha: r.Alpha}
	}
	return out
}

func wrapDecodeError(err error) error {
	if de, ok := err.(*modelio.DecodeError); ok {
		return NewFormatError(de.Op, de.Offset, ErrBadFormat)
	}
	return NewFormatError("decode", 0, ErrBadFormat)
}
