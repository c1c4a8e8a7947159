// Package format defines the tagged enumerations persisted in a cydec frame
// header, plus the compression-backend selector used to construct a
// ByteCompressor. The numeric identifiers are part of the on-wire contract:
// once a value ships, it must never be renumbered.
package format

// ElementKind identifies the logical element type an array frame carries.
// Its byte value is persisted in the frame header and MUST stay fixed
// across format versions.
type ElementKind uint8

const (
	KindI8 ElementKind = iota + 1
	KindI16
	KindI32
	KindI64
	KindU8
	KindU16
	KindU32
	KindU64
	KindF32
	KindF64
	KindBytes
)

// IsFloat reports whether the kind is one of the floating-point kinds that
// carries a scale factor in the frame header.
func (k ElementKind) IsFloat() bool {
	return k == KindF32 || k == KindF64
}

// IsInteger reports whether the kind is one of the signed/unsigned integer
// kinds that goes through the delta/zigzag/varint transform chain.
func (k ElementKind) IsInteger() bool {
	switch k {
	case KindI8, KindI16, KindI32, KindI64, KindU8, KindU16, KindU32, KindU64:
		return true
	default:
		return false
	}
}

func (k ElementKind) String() string {
	switch k {
	case KindI8:
		return "I8"
	case KindI16:
		return "I16"
	case KindI32:
		return "I32"
	case KindI64:
		return "I64"
	case KindU8:
		return "U8"
	case KindU16:
		return "U16"
	case KindU32:
		return "U32"
	case KindU64:
		return "U64"
	case KindF32:
		return "F32"
	case KindF64:
		return "F64"
	case KindBytes:
		return "Bytes"
	default:
		return "Unknown"
	}
}

// CodecKind distinguishes a single contiguous encoded payload from an
// indexed collection of independently-encoded chunks.
type CodecKind uint8

const (
	CodecSingleBlock CodecKind = iota + 1
	CodecMultiChunk
)

func (c CodecKind) String() string {
	switch c {
	case CodecSingleBlock:
		return "SingleBlock"
	case CodecMultiChunk:
		return "MultiChunk"
	default:
		return "Unknown"
	}
}

// CompressionType selects the concrete ByteCompressor a codec handle uses
// for its back-end compression step. Unlike ElementKind and CodecKind, this
// is not persisted in the frame: per the format's design, the back-end is
// fixed per codec build, not tagged on the wire.
type CompressionType uint8

const (
	CompressionNone CompressionType = iota + 1
	CompressionZstd
	CompressionS2
	CompressionLZ4
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
