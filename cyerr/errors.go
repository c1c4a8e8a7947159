// Package cyerr defines the sentinel error values surfaced by cydec's
// codec, frame, and parallel-chunk layers.
//
// Callers should match on these with errors.Is rather than string
// comparison; call sites wrap them with fmt.Errorf("%w: ...", cyerr.ErrX, ...)
// to attach positional or value context without losing the sentinel.
package cyerr

import "errors"

var (
	// ErrBadMagic is returned when a frame does not begin with the magic bytes.
	ErrBadMagic = errors.New("cydec: bad magic")

	// ErrUnsupportedVersion is returned when a frame's version byte exceeds
	// the maximum version this build understands.
	ErrUnsupportedVersion = errors.New("cydec: unsupported version")

	// ErrUnknownCodecKind is returned when a frame's codec kind byte is not
	// one of the known enumeration values.
	ErrUnknownCodecKind = errors.New("cydec: unknown codec kind")

	// ErrUnknownElementKind is returned when a frame's element kind byte is
	// not one of the known enumeration values.
	ErrUnknownElementKind = errors.New("cydec: unknown element kind")

	// ErrKindMismatch is returned when a caller decodes a frame via a handle
	// for element kind X but the frame declares a different kind Y.
	ErrKindMismatch = errors.New("cydec: element kind mismatch")

	// ErrTruncated is returned when a read runs past the end of the buffer,
	// in the header or the payload.
	ErrTruncated = errors.New("cydec: truncated input")

	// ErrMalformed is returned for a varint whose continuation bit runs off
	// the end of the buffer, a varint that overflows 64 bits, a payload
	// whose varint count does not match the declared element count, or a
	// multi-chunk index whose offsets/lengths are inconsistent.
	ErrMalformed = errors.New("cydec: malformed payload")

	// ErrOverflow is returned when a quantised float value exceeds the
	// destination integer width.
	ErrOverflow = errors.New("cydec: float quantisation overflow")

	// ErrUnsupported is returned when a float input contains NaN or an
	// infinity, which this format cannot represent.
	ErrUnsupported = errors.New("cydec: unsupported value")

	// ErrBackendFailure wraps an error propagated from a ByteCompressor.
	ErrBackendFailure = errors.New("cydec: backend compressor failure")

	// ErrInvalidChunkSize is returned when a caller requests parallel
	// compression with a non-positive chunk size. This is a caller-usage
	// error, never a property of on-wire bytes, so it is distinct from
	// ErrMalformed.
	ErrInvalidChunkSize = errors.New("cydec: invalid chunk size")
)
