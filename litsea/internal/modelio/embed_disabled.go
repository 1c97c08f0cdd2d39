//go:build !embed

package modelio

// Without the embed build tag, the shipped models are not compiled into
// the binary; callers fall back to LoadFile against an on-disk copy
// (mirrors llama3/data_loader.go's !embed counterpart).

// EmbeddedJEITA reports that no embedded JEITA model is available.
func EmbeddedJEITA() ([]byte, bool) { return nil, false }

// EmbeddedRWCP reports that no embedded RWCP model is available.
func EmbeddedRWCP() ([]byte, bool) { return nil, false }
