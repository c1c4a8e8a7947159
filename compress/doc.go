// Package compress implements the back-end byte compressors a cydec frame's
// chunk payloads are passed through after the delta/zigzag/varint transform
// (for integer kinds) or the quantised varint stream (for float kinds).
//
// # Two-stage pipeline
//
// cydec applies compression in two stages:
//
//  1. Transform: exploit numeric structure (delta, zigzag, varint) to turn
//     the array into a low-entropy byte stream.
//  2. Compress: run a general-purpose byte compressor over that stream for
//     whatever redundancy the transform left behind.
//
// This package implements the second stage. Supported back ends:
//   - None: passthrough, for data the transform already squeezed dry
//   - Zstd: best ratio, moderate speed
//   - S2: Snappy-family, fast with a respectable ratio
//   - LZ4: fastest decompression, used where read latency dominates
//
// # Interfaces
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Callers select a back end via format.CompressionType and construct it
// with CreateCodec, or look up a shared instance with GetCodec; the zero
// value of every Codec implementation in this package is ready to use.
//
// # Build tags
//
// zstd_pure.go (tag !nobuild) backs ZstdCompressor with the pure-Go
// klauspost/compress/zstd implementation and is the default build.
// zstd_cgo.go (tag nobuild) backs it with valyala/gozstd's cgo binding,
// which trades a cgo dependency for a faster encoder; it is disabled by
// default and opted into by build tag.
package compress
