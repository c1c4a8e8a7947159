// Package varint implements the little-endian base-128 (LEB128) variable
// length encoding cydec uses to pack zigzagged deltas and quantised floats:
// the low 7 bits of each byte carry payload, the high bit signals another
// byte follows. Values under 128 take one byte; the widest u64 value takes
// ten.
//
// This is one of the few places cydec reaches for the standard library
// instead of a third-party package: encoding/binary already implements
// exactly this codec, and it's the same choice made throughout the pack
// this module is grounded on wherever a single LEB128 stream (not a
// SIMD-friendly structured integer block) is being written.
package varint

import (
	"encoding/binary"

	"github.com/tsdbkit/cydec/cyerr"
)

// MaxLen64 is the largest number of bytes a single u64 varint can occupy.
const MaxLen64 = binary.MaxVarintLen64

// AppendUint64 appends the varint encoding of v to dst and returns the
// extended slice.
func AppendUint64(dst []byte, v uint64) []byte {
	var buf [MaxLen64]byte
	n := binary.PutUvarint(buf[:], v)

	return append(dst, buf[:n]...)
}

// ReadUint64 decodes a single varint from the front of src.
//
// It returns cyerr.ErrMalformed if src ends with the continuation bit
// still set (buffer exhausted before a terminating byte) or if the
// encoding would overflow 64 bits (more than ten bytes, or a tenth byte
// with payload bits beyond bit 63); both are corrupt-payload conditions,
// not short reads. cyerr.ErrTruncated is reserved for a frame header cut
// short before this decoder ever runs.
func ReadUint64(src []byte) (v uint64, n int, err error) {
	v, n = binary.Uvarint(src)
	if n > 0 {
		return v, n, nil
	}

	return 0, 0, cyerr.ErrMalformed
}

// CountElements reports how many complete varints are packed into src,
// verifying there is no trailing partial varint and no leftover bytes once
// exactly want varints have been read. It returns cyerr.ErrMalformed if
// the count does not match or the stream is corrupt before that point.
func CountElements(src []byte, want int) error {
	rest := src
	for i := 0; i < want; i++ {
		_, n, err := ReadUint64(rest)
		if err != nil {
			return err
		}
		rest = rest[n:]
	}

	if len(rest) != 0 {
		return cyerr.ErrMalformed
	}

	return nil
}
