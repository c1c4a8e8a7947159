package frame

import (
	"encoding/binary"

	"github.com/tsdbkit/cydec/cyerr"
)

// chunkCountLen and chunkSizeLen are the fixed-width fields preceding a
// MultiChunk index's offsets/lengths arrays.
const (
	chunkCountLen = 4
	chunkSizeLen  = 8
	chunkFieldLen = 8 // width of each offsets[i] and lengths[i] entry
)

// ChunkIndex is the MultiChunk payload's index: a chunk_size and, per
// chunk, a byte offset and length into the concatenated chunk payload
// region that follows the index.
type ChunkIndex struct {
	ChunkSize uint64
	Offsets   []uint64
	Lengths   []uint64
}

// Len returns the serialized byte length of the index.
func (ci ChunkIndex) Len() int {
	n := len(ci.Offsets)

	return chunkCountLen + chunkSizeLen + n*chunkFieldLen*2
}

// Bytes serializes the index.
func (ci ChunkIndex) Bytes() []byte {
	b := make([]byte, ci.Len())

	n := len(ci.Offsets)
	binary.LittleEndian.PutUint32(b[0:4], uint32(n))
	binary.LittleEndian.PutUint64(b[4:12], ci.ChunkSize)

	off := 12
	for _, o := range ci.Offsets {
		binary.LittleEndian.PutUint64(b[off:off+8], o)
		off += 8
	}
	for _, l := range ci.Lengths {
		binary.LittleEndian.PutUint64(b[off:off+8], l)
		off += 8
	}

	return b
}

// ParseChunkIndex decodes a ChunkIndex from the front of data, validating
// the offset/length invariants from spec: offsets strictly increasing,
// offsets[i]+lengths[i] == offsets[i+1] for i < count-1, and offsets[0]
// equal to the index's own serialized length (the start of the chunk
// payload region). It returns the index and the remaining bytes.
func ParseChunkIndex(data []byte) (ChunkIndex, []byte, error) {
	if len(data) < chunkCountLen+chunkSizeLen {
		return ChunkIndex{}, nil, cyerr.ErrTruncated
	}

	count := int(binary.LittleEndian.Uint32(data[0:4]))
	chunkSize := binary.LittleEndian.Uint64(data[4:12])

	rest := data[12:]
	need := count*chunkFieldLen*2
	if len(rest) < need {
		return ChunkIndex{}, nil, cyerr.ErrTruncated
	}

	offsets := make([]uint64, count)
	lengths := make([]uint64, count)

	off := 0
	for i := 0; i < count; i++ {
		offsets[i] = binary.LittleEndian.Uint64(rest[off : off+8])
		off += 8
	}
	for i := 0; i < count; i++ {
		lengths[i] = binary.LittleEndian.Uint64(rest[off : off+8])
		off += 8
	}

	ci := ChunkIndex{ChunkSize: chunkSize, Offsets: offsets, Lengths: lengths}
	if err := ci.validate(); err != nil {
		return ChunkIndex{}, nil, err
	}

	return ci, rest[need:], nil
}

func (ci ChunkIndex) validate() error {
	n := len(ci.Offsets)
	if n == 0 {
		return nil
	}

	if ci.Offsets[0] != uint64(ci.Len()) {
		return cyerr.ErrMalformed
	}

	for i := 0; i < n-1; i++ {
		if ci.Offsets[i]+ci.Lengths[i] != ci.Offsets[i+1] {
			return cyerr.ErrMalformed
		}
		if ci.Offsets[i+1] <= ci.Offsets[i] {
			return cyerr.ErrMalformed
		}
	}

	return nil
}
