//go:build embed

package modelio

import _ "embed"

// The two pre-trained models shipped with litsea (spec §4.3): a model
// trained against the JEITA Genpaku / ChaSen IPAdic corpus, and one
// trained against RWCP. Built into the binary with -tags embed; without
// that tag, load them from disk via LoadFile instead (see loader.go).

//go:embed models/JEITA_Genpaku_ChaSen_IPAdic.model
var embeddedJEITA []byte

//go:embed models/RWCP.model
var embeddedRWCP []byte

// EmbeddedJEITA returns the bundled JEITA_Genpaku_ChaSen_IPAdic.model bytes.
func EmbeddedJEITA() ([]byte, bool) { return embeddedJEITA, len(embeddedJEITA) > 0 }

// EmbeddedRWCP returns the bundled RWCP.model bytes.
func EmbeddedRWCP() ([]byte, bool) { return embeddedRWCP, len(embeddedRWCP) > 0 }
