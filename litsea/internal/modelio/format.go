// Package modelio implements the compact binary on-disk format for a
// litsea ensemble (spec §4.3, §6, §9): a magic prefix and version byte
// so a corrupted or foreign file fails fast, followed by an ordered
// sequence of (atom_string, alpha) records.
//
// Layout (all integers little-endian):
//
//	4 bytes   magic       "LTS1"
//	1 byte    version     1
//	4 bytes   count       uint32, number of records
//	per record:
//	  2 bytes   atom length   uint16
//	  N bytes   atom string   UTF-8, N = atom length
//	  8 bytes   alpha         float64 bit pattern
//
// This layout is frozen: the two shipped pre-trained models are stored
// in it, so it is a compatibility constraint (spec §4.3) and any future
// change to it is a model-format version bump.
package modelio

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
)

// Magic and Version identify the litsea model format.
var (
	Magic   = [4]byte{'L', 'T', 'S', '1'}
	Version = byte(1)
)

// Record is one on-disk (atom, alpha) pair.
type Record struct {
	AtomString string
	Alpha      float64
}

// maxAtomLen bounds a single record's atom length so a corrupted length
// field can't trigger a huge allocation before the format is otherwise
// validated.
const maxAtomLen = 1 << 16

// Encode writes records to w in the litsea binary model format, in the
// given order — order is preserved so re-serializing a loaded model is
// byte-identical (spec §8 "Round-trip" law).
func Encode(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.Write(Magic[:]); err != nil {
		return err
	}
	if err := bw.WriteByte(Version); err != nil {
		return err
	}

	var countBuf [4]byte
	binary.LittleEndian.PutUint32(countBuf[:], uint32(len(records)))
	if _, err := bw.Write(countBuf[:]); err != nil {
		return err
	}

	for _, rec := range records {
		atomBytes := []byte(rec.AtomString)
		var lenBuf [2]byte
		binary.LittleEndian.PutUint16(lenBuf[:], uint16(len(atomBytes)))
		if _, err := bw.Write(lenBuf[:]); err != nil {
			return err
		}
		if _, err := bw.Write(atomBytes); err != nil {
			return err
		}
		var alphaBuf [8]byte
		binary.LittleEndian.PutUint64(alphaBuf[:], math.Float64bits(rec.Alpha))
		if _, err := bw.Write(alphaBuf[:]); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Decode parses the litsea binary model format from r, returning a
// *DecodeError (naming the failing field and its byte offset) whenever
// the magic, version, or any record is malformed. The litsea package
// converts it to a FormatError wrapping ErrBadFormat.
func Decode(r io.Reader) ([]Record, error) {
	br := bufio.NewReader(r)

	var magic [4]byte
	if _, err := io.ReadFull(br, magic[:]); err != nil {
		return nil, &DecodeError{Op: "magic", Offset: 0, Err: err}
	}
	if magic != Magic {
		return nil, &DecodeError{Op: "magic", Offset: 0, Err: errBadMagic}
	}

	version, err := br.ReadByte()
	if err != nil {
		return nil, &DecodeError{Op: "version", Offset: 4, Err: err}
	}
	if version != Version {
		return nil, &DecodeError{Op: "version", Offset: 4, Err: errBadVersion}
	}

	var countBuf [4]byte
	if _, err := io.ReadFull(br, countBuf[:]); err != nil {
		return nil, &DecodeError{Op: "count", Offset: 5, Err: err}
	}
	count := binary.LittleEndian.Uint32(countBuf[:])

	offset := int64(9)
	records := make([]Record, 0, count)
	for i := uint32(0); i < count; i++ {
		var lenBuf [2]byte
		if _, err := io.ReadFull(br, lenBuf[:]); err != nil {
			return nil, &DecodeError{Op: "record_length", Offset: offset, Err: err}
		}
		atomLen := binary.LittleEndian.Uint16(lenBuf[:])
		offset += 2

		if int(atomLen) > maxAtomLen {
			return nil, &DecodeError{Op: "record_length", Offset: offset, Err: errRecordTooLarge}
		}
		atomBytes := make([]byte, atomLen)
		if _, err := io.ReadFull(br, atomBytes); err != nil {
			return nil, &DecodeError{Op: "record_atom", Offset: offset, Err: err}
		}
		offset += int64(atomLen)

		var alphaBuf [8]byte
		if _, err := io.ReadFull(br, alphaBuf[:]); err != nil {
			return nil, &DecodeError{Op: "record_alpha", Offset: offset, Err: err}
		}
		offset += 8

		alpha := math.Float64frombits(binary.LittleEndian.Uint64(alphaBuf[:]))
		records = append(records, Record{AtomString: string(atomBytes), Alpha: alpha})
	}

	return records, nil
}

// DecodeError reports where in the byte stream decoding failed.
type DecodeError struct {
	Op     string
	Offset int64
	Err    error
}

func (e *DecodeError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *DecodeError) Unwrap() error { return e.Err }

var (
	errBadMagic       = simpleError("bad magic prefix")
	errBadVersion     = simpleError("unsupported format version")
	errRecordTooLarge = simpleError("record atom length exceeds maximum")
)

type simpleError string

func (e simpleError) Error() string { return string(e) }
