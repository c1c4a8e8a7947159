// Package frame's Encode/Decode entry points assemble a full frame (header
// plus payload) for both codec kinds. The header/payload split keeps this
// package ignorant of numeric semantics: it never touches delta, zigzag,
// or varint bytes, only the compressed byte strings the transform package
// hands it.
package frame

import (
	"github.com/tsdbkit/cydec/format"
	"github.com/tsdbkit/cydec/internal/pool"
)

// EncodeSingleBlock builds a complete SingleBlock frame around an
// already-transformed-and-compressed payload. Assembly goes through the
// pooled frame buffer to avoid a transient allocation on every call.
func EncodeSingleBlock(kind format.ElementKind, count uint64, scale int64, payload []byte) []byte {
	h := Header{
		Version:      CurrentVersion,
		CodecKind:    format.CodecSingleBlock,
		ElementKind:  kind,
		ElementCount: count,
		ScaleFactor:  scale,
	}

	buf := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(buf)

	buf.MustWrite(h.Bytes())
	buf.MustWrite(payload)

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out
}

// EncodeMultiChunk builds a complete MultiChunk frame: the outer header,
// the chunk index, then the concatenated chunk payloads in input order.
// Each entry in chunkPayloads is itself a complete SingleBlock frame for
// that chunk, per spec.
func EncodeMultiChunk(kind format.ElementKind, totalCount uint64, scale int64, chunkSize uint64, chunkPayloads [][]byte) []byte {
	offsets := make([]uint64, len(chunkPayloads))
	lengths := make([]uint64, len(chunkPayloads))

	ci := ChunkIndex{ChunkSize: chunkSize, Offsets: offsets, Lengths: lengths}
	indexLen := uint64(ci.Len())

	pos := indexLen
	for i, p := range chunkPayloads {
		offsets[i] = pos
		lengths[i] = uint64(len(p))
		pos += uint64(len(p))
	}
	ci.Offsets = offsets
	ci.Lengths = lengths

	h := Header{
		Version:      CurrentVersion,
		CodecKind:    format.CodecMultiChunk,
		ElementKind:  kind,
		ElementCount: totalCount,
		ScaleFactor:  scale,
	}

	buf := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(buf)

	buf.MustWrite(h.Bytes())
	buf.MustWrite(ci.Bytes())
	for _, p := range chunkPayloads {
		buf.MustWrite(p)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out
}

// Decode parses the header at the front of data and returns it along with
// the remaining payload bytes: the raw compressed SingleBlock payload for
// CodecSingleBlock, or the chunk index followed by chunk payloads for
// CodecMultiChunk (see ParseChunkIndex).
func Decode(data []byte) (Header, []byte, error) {
	return ParseHeader(data)
}
