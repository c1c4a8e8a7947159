// Package frame implements cydec's self-describing binary container: a
// fixed-layout header followed by a codec-kind-specific payload. It plays
// the role the teacher's section package plays for its blob format —
// Header.Parse/Bytes mirror NumericHeader's Parse/Bytes trio, and the
// per-field validity checks mirror NumericFlag's IsValidMagicNumber /
// IsValidEncoding / IsValidCompression, each producing one sentinel error
// instead of a single catch-all.
package frame

import (
	"encoding/binary"

	"github.com/tsdbkit/cydec/cyerr"
	"github.com/tsdbkit/cydec/format"
)

// Magic is the fixed 5-byte prefix every frame begins with.
var Magic = [5]byte{'C', 'Y', 'D', 'E', 'C'}

// CurrentVersion is the version this build writes.
const CurrentVersion uint8 = 1

// MaxSupportedVersion is the highest version byte this build accepts on read.
const MaxSupportedVersion uint8 = 1

// fixedHeaderLen is the byte length of the header up to but excluding the
// optional scale factor field: 5 (magic) + 1 (version) + 1 (codec kind) +
// 1 (element kind) + 8 (element count).
const fixedHeaderLen = 16

// scaleFieldLen is the byte length of the optional scale factor field,
// present iff the element kind is one of the floating kinds.
const scaleFieldLen = 8

// Header is the fixed-layout portion of a frame, preceding the payload.
type Header struct {
	Version      uint8
	CodecKind    format.CodecKind
	ElementKind  format.ElementKind
	ElementCount uint64

	// ScaleFactor is meaningful only when ElementKind.IsFloat(); it is the
	// power-of-ten exponent s such that the quantised value stored is
	// round(value * 10^s).
	ScaleFactor int64
}

// Len returns the serialized byte length of h: 16 bytes for integer and
// Bytes element kinds, 24 bytes for floating element kinds.
func (h Header) Len() int {
	if h.ElementKind.IsFloat() {
		return fixedHeaderLen + scaleFieldLen
	}

	return fixedHeaderLen
}

// Bytes serializes h into a newly allocated slice of exactly h.Len() bytes.
func (h Header) Bytes() []byte {
	b := make([]byte, h.Len())

	copy(b[0:5], Magic[:])
	b[5] = h.Version
	b[6] = byte(h.CodecKind)
	b[7] = byte(h.ElementKind)
	binary.LittleEndian.PutUint64(b[8:16], h.ElementCount)

	if h.ElementKind.IsFloat() {
		binary.LittleEndian.PutUint64(b[16:24], uint64(h.ScaleFactor))
	}

	return b
}

// ParseHeader validates and decodes the header at the front of data,
// returning the decoded Header and the remaining bytes (the payload).
//
// Validation order matches spec: magic, then version, then codec kind,
// then element kind, each against its own sentinel error, so a caller can
// distinguish exactly which field rejected the frame.
func ParseHeader(data []byte) (Header, []byte, error) {
	if len(data) < fixedHeaderLen {
		return Header{}, nil, cyerr.ErrTruncated
	}

	if [5]byte(data[0:5]) != Magic {
		return Header{}, nil, cyerr.ErrBadMagic
	}

	var h Header
	h.Version = data[5]
	if h.Version == 0 || h.Version > MaxSupportedVersion {
		return Header{}, nil, cyerr.ErrUnsupportedVersion
	}

	h.CodecKind = format.CodecKind(data[6])
	if h.CodecKind != format.CodecSingleBlock && h.CodecKind != format.CodecMultiChunk {
		return Header{}, nil, cyerr.ErrUnknownCodecKind
	}

	h.ElementKind = format.ElementKind(data[7])
	if !h.ElementKind.IsInteger() && !h.ElementKind.IsFloat() && h.ElementKind != format.KindBytes {
		return Header{}, nil, cyerr.ErrUnknownElementKind
	}

	h.ElementCount = binary.LittleEndian.Uint64(data[8:16])

	rest := data[fixedHeaderLen:]
	if h.ElementKind.IsFloat() {
		if len(rest) < scaleFieldLen {
			return Header{}, nil, cyerr.ErrTruncated
		}
		h.ScaleFactor = int64(binary.LittleEndian.Uint64(rest[0:scaleFieldLen]))
		rest = rest[scaleFieldLen:]
	}

	return h, rest, nil
}
